package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tourdesk/dehydrate"
	"tourdesk/form"
	"tourdesk/hydrate"
	"tourdesk/models"
	"tourdesk/preview"
	"tourdesk/schema"
	"tourdesk/tourfile"
)

// fetchTour goes through the query cache before hitting the API.
func fetchTour(ctx context.Context, e *env, id string) (*models.Tour, error) {
	if t, ok := e.cache.GetTour(ctx, id); ok {
		return t, nil
	}
	t, err := e.api.GetTour(ctx, id)
	if err != nil {
		return nil, err
	}
	e.cache.SetTour(ctx, t)
	return t, nil
}

func fetchList(ctx context.Context, e *env) ([]models.Tour, error) {
	if tours, ok := e.cache.GetList(ctx, e.cfg.UserID); ok {
		return tours, nil
	}
	tours, err := e.api.ListTours(ctx)
	if err != nil {
		return nil, err
	}
	e.cache.SetList(ctx, e.cfg.UserID, tours)
	return tours, nil
}

func getCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "get <tour-id>",
		Short: "Fetch a tour; print it, or hydrate it into an editable file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(true)
			if err != nil {
				return err
			}
			defer e.close()
			ctx := cmd.Context()

			tour, err := fetchTour(ctx, e, args[0])
			if err != nil {
				return err
			}

			if out != "" {
				catalogs := e.api.LoadCatalogs(ctx, e.cfg.UserID)
				f := hydrate.Snapshot(tour, catalogs)
				if err := tourfile.Save(out, f); err != nil {
					return err
				}
				fmt.Printf("Wrote %s\n", out)
				return nil
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(tour)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the hydrated form to this file (.yaml or .json)")
	return cmd
}

func createCmd() *cobra.Command {
	var file string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "create -f <file>",
		Short: "Create a tour from a form file",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(true)
			if err != nil {
				return err
			}
			defer e.close()
			ctx := cmd.Context()

			f, err := tourfile.Load(file)
			if err != nil {
				return err
			}
			f.TourID = "" // create never carries an identifier

			if errs := schema.Validate(&f, schema.ModeStrict); errs != nil {
				return errs
			}

			p, err := dehydrate.FullPayload(f)
			if err != nil {
				return err
			}
			if dryRun {
				preview.EnableColorsFor(os.Stdout)
				return preview.Render(os.Stdout, form.TourForm{}, p)
			}

			tour, err := e.submit.Submit(ctx, "", p)
			if err != nil {
				return fmt.Errorf("%s", messageOf(err))
			}
			fmt.Printf("Created tour %s\n", tour.TourID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "form file (.yaml or .json)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show the payload instead of sending it")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func editCmd() *cobra.Command {
	var file string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "edit <tour-id> -f <file>",
		Short: "Apply a form file to an existing tour, sending only what changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(true)
			if err != nil {
				return err
			}
			defer e.close()
			ctx := cmd.Context()
			id := args[0]

			tour, err := fetchTour(ctx, e, id)
			if err != nil {
				return err
			}
			catalogs := e.api.LoadCatalogs(ctx, e.cfg.UserID)
			orig := hydrate.Snapshot(tour, catalogs)

			desired, err := tourfile.Load(file)
			if err != nil {
				return err
			}
			desired.TourID = id

			if errs := schema.Validate(&desired, schema.ModePermissive); errs != nil {
				return errs
			}

			p, err := dehydrate.Build(orig, desired)
			if err != nil {
				return err
			}
			if dryRun {
				preview.EnableColorsFor(os.Stdout)
				return preview.Render(os.Stdout, orig, p)
			}
			if p.IsEmpty() {
				fmt.Println("No changes.")
				return nil
			}

			if _, err := e.submit.Submit(ctx, id, p); err != nil {
				return fmt.Errorf("%s", messageOf(err))
			}
			fmt.Printf("Updated tour %s (%d sections)\n", id, p.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "form file (.yaml or .json)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show the diff instead of sending it")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func publishCmd() *cobra.Command {
	return statusCmdFor("publish", models.StatusPublished)
}

// statusCmdFor builds the tiny status-transition commands (publish etc.).
func statusCmdFor(verb string, status models.TourStatus) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <tour-id>",
		Short: fmt.Sprintf("Set a tour's status to %q", status),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(true)
			if err != nil {
				return err
			}
			defer e.close()
			ctx := cmd.Context()
			id := args[0]

			tour, err := fetchTour(ctx, e, id)
			if err != nil {
				return err
			}
			catalogs := e.api.LoadCatalogs(ctx, e.cfg.UserID)
			orig := hydrate.Snapshot(tour, catalogs)

			cur := orig
			cur.TourStatus = string(status)

			p, err := dehydrate.Build(orig, cur)
			if err != nil {
				return err
			}
			if p.IsEmpty() {
				fmt.Printf("Tour %s is already %s\n", id, status)
				return nil
			}
			if _, err := e.submit.Submit(ctx, id, p); err != nil {
				return fmt.Errorf("%s", messageOf(err))
			}
			fmt.Printf("Tour %s is now %s\n", id, status)
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <tour-id>",
		Short: "Delete a tour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(true)
			if err != nil {
				return err
			}
			defer e.close()
			ctx := cmd.Context()
			id := args[0]

			if err := e.api.DeleteTour(ctx, id); err != nil {
				return err
			}
			_ = e.cache.Invalidate(ctx, e.cfg.UserID, id)
			fmt.Printf("Deleted tour %s\n", id)
			return nil
		},
	}
}
