package cli

import (
	"fmt"

	"github.com/alexanderramin/drift/internal/cli/formatter"
	"github.com/alexanderramin/drift/internal/domain"
	"github.com/spf13/cobra"
)

func newJournalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Write and read journal entries",
	}

	cmd.AddCommand(
		newJournalAddCmd(app),
		newJournalListCmd(app),
	)

	return cmd
}

func newJournalAddCmd(app *App) *cobra.Command {
	var text string
	var energy, sleep int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			j := &domain.JournalEntry{Content: text}
			if cmd.Flags().Changed("energy") {
				j.Energy = &energy
			}
			if cmd.Flags().Changed("sleep") {
				j.Sleep = &sleep
			}

			if text == "" {
				if !app.interactive() {
					return fmt.Errorf("--text is required when not running in a terminal")
				}
				var v journalFormValues
				if err := journalForm(&v).Run(); err != nil {
					return err
				}
				var err error
				j.Content = v.Content
				if j.Energy, err = parseOptionalRating(v.Energy); err != nil {
					return err
				}
				if j.Sleep, err = parseOptionalRating(v.Sleep); err != nil {
					return err
				}
			}

			if err := app.Journal.Add(cmd.Context(), j); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Noted. %s\n", formatter.Ratings(j.Energy, j.Sleep))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Entry text (opens a form when omitted on a terminal)")
	cmd.Flags().IntVar(&energy, "energy", 0, "Energy rating 1-10")
	cmd.Flags().IntVar(&sleep, "sleep", 0, "Sleep rating 1-10")

	return cmd
}

func newJournalListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Journal.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatJournalList(entries, app.loc()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of entries")

	return cmd
}
