package cli

import (
	"fmt"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/spf13/cobra"
)

func newFeedbackCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Tell drift how a day's plan felt",
	}

	cmd.AddCommand(newFeedbackAddCmd(app))

	return cmd
}

func newFeedbackAddCmd(app *App) *cobra.Command {
	var date, rating, comment, category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record feedback for a plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := app.Feedback.Add(cmd.Context(), app.dateOrToday(date), domain.FeedbackRating(rating), comment, category)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Thanks. Recorded %q for %s\n", f.Rating, app.dateOrToday(date))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Plan date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&rating, "rating", "", "about_right, too_much or one_area")
	cmd.Flags().StringVar(&comment, "comment", "", "Optional comment")
	cmd.Flags().StringVar(&category, "category", "", "Category the feedback is about (for one_area)")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}
