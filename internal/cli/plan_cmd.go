package cli

import (
	"fmt"

	"github.com/alexanderramin/drift/internal/cli/formatter"
	"github.com/alexanderramin/drift/internal/contract"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and inspect daily plans",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
		newPlanShowCmd(app),
		newPlanPromptCmd(app),
	)

	return cmd
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	var date string
	var replace bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Ask the model for a plan and store it",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewGeneratePlanRequest(app.dateOrToday(date))
			req.Replace = replace

			resp, err := app.Plans.GeneratePlan(cmd.Context(), req)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatPlanError(err))
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGenerateResult(resp, app.today().Date()))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Plan date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&replace, "replace", false, "Replace an existing plan for the date")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored plan for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Plans.GetPlan(ctx, app.dateOrToday(date))
			if err != nil {
				return fmt.Errorf("no plan for %s: %w", app.dateOrToday(date), err)
			}
			names, err := categoryNames(ctx, app)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(p, names, app.loc(), app.today().Date()))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Plan date (YYYY-MM-DD, default today)")

	return cmd
}

func newPlanPromptCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt that generate would send, without calling the model",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := app.Plans.PreviewPrompt(cmd.Context(), app.dateOrToday(date))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPrompt(prompt))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Plan date (YYYY-MM-DD, default today)")

	return cmd
}
