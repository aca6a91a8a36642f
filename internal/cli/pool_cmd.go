package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/drift/internal/cli/formatter"
	"github.com/alexanderramin/drift/internal/domain"
	"github.com/spf13/cobra"
)

// eventTimeLayout is the local wall-clock format accepted for event times.
const eventTimeLayout = "2006-01-02 15:04"

func newPoolCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Manage the pool of tasks, events and aspirations",
	}

	cmd.AddCommand(
		newPoolAddCmd(app),
		newPoolListCmd(app),
		newPoolStatusCmd(app, "pause", "Pause a pool item so it is never suggested", domain.PoolPaused),
		newPoolStatusCmd(app, "resume", "Make a paused or completed pool item active again", domain.PoolActive),
		newPoolStatusCmd(app, "complete", "Retire a pool item for good", domain.PoolCompleted),
	)

	return cmd
}

func newPoolAddCmd(app *App) *cobra.Command {
	var itemType, title, notes, category, starts, ends string
	var cooldown int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := &domain.PoolItem{
				Type:  domain.PoolItemType(itemType),
				Title: title,
				Notes: notes,
			}

			if category != "" {
				id, err := categoryIDByName(ctx, app, category)
				if err != nil {
					return err
				}
				p.CategoryID = &id
			}
			if cmd.Flags().Changed("cooldown") {
				p.CooldownDays = &cooldown
			}
			if starts != "" {
				t, err := time.ParseInLocation(eventTimeLayout, starts, app.loc())
				if err != nil {
					return fmt.Errorf("invalid --starts %q (expected YYYY-MM-DD HH:MM): %w", starts, err)
				}
				utc := t.UTC()
				p.StartsAt = &utc
			}
			if ends != "" {
				t, err := time.ParseInLocation(eventTimeLayout, ends, app.loc())
				if err != nil {
					return fmt.Errorf("invalid --ends %q (expected YYYY-MM-DD HH:MM): %w", ends, err)
				}
				utc := t.UTC()
				p.EndsAt = &utc
			}

			if err := app.Pool.Create(ctx, p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q %s\n", p.Type, p.Title, formatter.TruncID(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&itemType, "type", string(domain.PoolTask), "Item type (task, event, aspiration)")
	cmd.Flags().StringVar(&title, "title", "", "Title")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&category, "category", "", "Category name")
	cmd.Flags().IntVar(&cooldown, "cooldown", 0, "Days to rest after use (overrides the type default)")
	cmd.Flags().StringVar(&starts, "starts", "", "Event start (YYYY-MM-DD HH:MM, local)")
	cmd.Flags().StringVar(&ends, "ends", "", "Event end (YYYY-MM-DD HH:MM, local)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newPoolListCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pool items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var filter *domain.PoolItemStatus
			if status != "" {
				if !domain.ValidPoolItemStatuses[status] {
					return fmt.Errorf("invalid status %q (valid: active, paused, completed)", status)
				}
				s := domain.PoolItemStatus(status)
				filter = &s
			}

			items, err := app.Pool.List(ctx, filter)
			if err != nil {
				return err
			}
			names, err := categoryNames(ctx, app)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPoolList(items, names, app.loc()))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only show items with this status")

	return cmd
}

func newPoolStatusCmd(app *App, use, short string, status domain.PoolItemStatus) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolvePoolItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Pool.SetStatus(ctx, id, status); err != nil {
				return err
			}
			return printPoolItem(ctx, cmd, app, id)
		},
	}
}

func printPoolItem(ctx context.Context, cmd *cobra.Command, app *App, id string) error {
	p, err := app.Pool.GetByID(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.PoolStatusPill(p.Status), p.Title)
	return nil
}
