package cli

import (
	"fmt"

	"github.com/alexanderramin/drift/internal/cli/formatter"
	"github.com/alexanderramin/drift/internal/domain"
	"github.com/spf13/cobra"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Update entries of a plan",
	}

	cmd.AddCommand(
		newEntryStatusCmd(app),
		newEntryNoteCmd(app),
	)

	return cmd
}

func newEntryStatusCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set an entry's status (pending, in_progress, completed, skipped)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveEntryID(ctx, app, date, args[0])
			if err != nil {
				return err
			}
			e, err := app.Entries.SetStatus(ctx, id, domain.EntryStatus(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.EntryStatusPill(e.Status), e.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Plan date (YYYY-MM-DD, default today)")

	return cmd
}

func newEntryNoteCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "note ID TEXT",
		Short: "Attach notes to an entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveEntryID(ctx, app, date, args[0])
			if err != nil {
				return err
			}
			e, err := app.Entries.SetNotes(ctx, id, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Noted on %s\n", e.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Plan date (YYYY-MM-DD, default today)")

	return cmd
}
