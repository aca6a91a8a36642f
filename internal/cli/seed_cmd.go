package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/drift/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed FILE",
		Short: "Import categories and pool items from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Seed.SeedFromFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d categories and %d pool items\n", result.CategoryCount, result.PoolItemCount)
			if len(result.SkippedCategories) > 0 {
				fmt.Fprintln(out, formatter.Dim("Already present: "+strings.Join(result.SkippedCategories, ", ")))
			}
			return nil
		},
	}
}
