package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tourdesk/export"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render tours into shareable files",
	}
	cmd.AddCommand(exportPDFCmd(), exportXLSXCmd())
	return cmd
}

func exportXLSXCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "xlsx",
		Short: "Render the tour list as a spreadsheet",
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

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := export.TourList(f, tours); err != nil {
				return err
			}
			fmt.Printf("Wrote %d tours to %s\n", len(tours), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "tours.xlsx", "output path")
	return cmd
}

func exportPDFCmd() *cobra.Command {
	var out, publicURL string

	cmd := &cobra.Command{
		Use:   "pdf <tour-id>",
		Short: "Render a tour fact sheet as PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(true)
			if err != nil {
				return err
			}
			defer e.close()

			tour, err := fetchTour(cmd.Context(), e, args[0])
			if err != nil {
				return err
			}

			if out == "" {
				out = tour.TourID + ".pdf"
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := export.FactSheet(f, tour, publicURL); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default <tour-id>.pdf)")
	cmd.Flags().StringVar(&publicURL, "public-url", "", "public site base URL for the QR code")
	return cmd
}
