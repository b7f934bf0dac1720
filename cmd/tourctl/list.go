package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tourdesk/export"
)

func listCmd() *cobra.Command {
	var xlsxOut string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your tours",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(true)
			if err != nil {
				return err
			}
			defer e.close()

			tours, err := fetchList(cmd.Context(), e)
			if err != nil {
				return err
			}

			if xlsxOut != "" {
				f, err := os.Create(xlsxOut)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := export.TourList(f, tours); err != nil {
					return err
				}
				fmt.Printf("Wrote %d tours to %s\n", len(tours), xlsxOut)
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tUPDATED")
			for _, t := range tours {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					t.TourID, t.Title, t.TourStatus, t.UpdatedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&xlsxOut, "xlsx", "", "write the list as a spreadsheet instead of printing")
	return cmd
}
