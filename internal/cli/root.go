package cli

import (
	"time"

	"github.com/alexanderramin/drift/internal/config"
	"github.com/alexanderramin/drift/internal/scheduler"
	"github.com/alexanderramin/drift/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans      service.PlanService
	Pool       service.PoolService
	Categories service.CategoryService
	Journal    service.JournalService
	Feedback   service.FeedbackService
	Entries    service.EntryService
	Seed       service.SeedService

	Config     *config.Config
	ConfigPath string
	Location   *time.Location

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Now defaults to time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) loc() *time.Location {
	if a.Location != nil {
		return a.Location
	}
	return time.Local
}

// today is the current calendar date in the configured location.
func (a *App) today() scheduler.Day {
	return scheduler.NewDay(a.now(), a.loc())
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "drift" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "drift",
		Short:         "Gentle daily plans from your journal and a pool of things you might do",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlanCmd(app),
		newPoolCmd(app),
		newCategoryCmd(app),
		newJournalCmd(app),
		newFeedbackCmd(app),
		newEntryCmd(app),
		newSeedCmd(app),
		newConfigCmd(app),
	)

	return root
}
