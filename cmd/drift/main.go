package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/drift/internal/cli"
	"github.com/alexanderramin/drift/internal/config"
	"github.com/alexanderramin/drift/internal/contract"
	"github.com/alexanderramin/drift/internal/db"
	"github.com/alexanderramin/drift/internal/llm"
	"github.com/alexanderramin/drift/internal/logging"
	"github.com/alexanderramin/drift/internal/repository"
	"github.com/alexanderramin/drift/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		// Plan errors are already rendered by the command.
		if contract.PlanErrorCode(err) == "" {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Config file: DRIFT_CONFIG or ~/.drift/config.toml
	configPath := os.Getenv("DRIFT_CONFIG")
	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		configPath = p
	}

	cfg, err := config.Load(viper.New(), configPath)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Open database
	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	categoryRepo := repository.NewSQLiteCategoryRepo(database)
	poolRepo := repository.NewSQLitePoolItemRepo(database)
	journalRepo := repository.NewSQLiteJournalRepo(database)
	feedbackRepo := repository.NewSQLiteFeedbackRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	entryRepo := repository.NewSQLiteScheduleEntryRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LLM.LogCalls {
		observer = llm.NewLogObserver(logger)
	}
	llmClient, err := llm.NewClient(ctx, cfg.LLMClientConfig(), observer)
	if err != nil {
		return fmt.Errorf("creating %s client: %w", cfg.LLM.Provider, err)
	}

	useCases := service.NewLogUseCaseObserver(logger)
	settings := service.PlanSettings{
		Location:      loc,
		MaxOriginated: cfg.Plan.MaxOriginated,
		Temperature:   cfg.Plan.Temperature,
		MaxTokens:     cfg.Plan.MaxTokens,
	}
	settings.Cooldowns.Task = cfg.Plan.Cooldown.Task
	settings.Cooldowns.Aspiration = cfg.Plan.Cooldown.Aspiration

	app := &cli.App{
		Plans: service.NewPlanService(service.PlanDeps{
			Pool:       poolRepo,
			Categories: categoryRepo,
			Journal:    journalRepo,
			Feedback:   feedbackRepo,
			Plans:      planRepo,
			Entries:    entryRepo,
			UoW:        uow,
			LLM:        llmClient,
			Logger:     logger.Named("plan"),
		}, settings, useCases),
		Pool:       service.NewPoolService(poolRepo, categoryRepo),
		Categories: service.NewCategoryService(categoryRepo),
		Journal:    service.NewJournalService(journalRepo),
		Feedback:   service.NewFeedbackService(feedbackRepo, planRepo, categoryRepo, loc),
		Entries:    service.NewEntryService(entryRepo),
		Seed:       service.NewSeedService(uow, loc, useCases),

		Config:     cfg,
		ConfigPath: configPath,
		Location:   loc,
	}

	// Detect interactive terminal for the journal form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	logger.Debug("drift starting",
		zap.String("db", cfg.DB.Path),
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model),
		zap.String("timezone", loc.String()))

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
