package cli

import (
	"fmt"

	"github.com/alexanderramin/drift/internal/cli/formatter"
	"github.com/alexanderramin/drift/internal/domain"
	"github.com/spf13/cobra"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Manage the categories plans draw from",
	}

	cmd.AddCommand(
		newCategoryAddCmd(app),
		newCategoryListCmd(app),
		newCategoryToggleCmd(app, "enable", "Offer a category to future plans", true),
		newCategoryToggleCmd(app, "disable", "Keep a category out of future plans", false),
	)

	return cmd
}

func newCategoryAddCmd(app *App) *cobra.Command {
	var name string
	var rank int
	var disabled bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Category{Name: name, Rank: rank, Enabled: !disabled}
			if err := app.Categories.Create(cmd.Context(), c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created category %s\n", c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Category name")
	cmd.Flags().IntVar(&rank, "rank", 0, "Display order (lower first)")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "Create the category disabled")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := app.Categories.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCategoryList(cats))
			return nil
		},
	}
}

func newCategoryToggleCmd(app *App, use, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " NAME",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Categories.SetEnabled(cmd.Context(), args[0], enabled); err != nil {
				return fmt.Errorf("%s category %q: %w", use, args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Category %s %sd\n", args[0], use)
			return nil
		},
	}
}
