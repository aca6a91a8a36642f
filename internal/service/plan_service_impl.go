package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/drift/internal/contract"
	"github.com/alexanderramin/drift/internal/db"
	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/intelligence"
	"github.com/alexanderramin/drift/internal/llm"
	"github.com/alexanderramin/drift/internal/repository"
	"github.com/alexanderramin/drift/internal/scheduler"
	"go.uber.org/zap"
)

// PlanDeps groups the collaborators of the plan service.
type PlanDeps struct {
	Pool       repository.PoolItemRepo
	Categories repository.CategoryRepo
	Journal    repository.JournalRepo
	Feedback   repository.FeedbackRepo
	Plans      repository.PlanRepo
	Entries    repository.ScheduleEntryRepo
	UoW        db.UnitOfWork
	LLM        llm.LLMClient
	Logger     *zap.Logger
}

type planService struct {
	loader    *PlanContextLoader
	committer *PlanCommitter
	plans     repository.PlanRepo
	entries   repository.ScheduleEntryRepo
	client    llm.LLMClient
	settings  PlanSettings
	observer  UseCaseObserver
}

func NewPlanService(deps PlanDeps, settings PlanSettings, observers ...UseCaseObserver) PlanService {
	if settings.Location == nil {
		settings.Location = time.Local
	}
	return &planService{
		loader:    NewPlanContextLoader(deps.Pool, deps.Categories, deps.Journal, deps.Feedback, deps.Entries, settings),
		committer: NewPlanCommitter(deps.UoW, deps.Logger),
		plans:     deps.Plans,
		entries:   deps.Entries,
		client:    deps.LLM,
		settings:  settings,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *planService) GeneratePlan(ctx context.Context, req contract.GeneratePlanRequest) (resp *contract.GeneratePlanResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"date":    req.Date,
		"replace": req.Replace,
	}
	defer func() {
		if code := contract.PlanErrorCode(err); code != "" {
			fields["error_code"] = string(code)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	day, err := scheduler.ParseDay(req.Date, s.settings.Location)
	if err != nil {
		return nil, &contract.GeneratePlanError{Code: contract.ErrInvalidDate, Message: "date must be YYYY-MM-DD", Err: err}
	}

	// Fail before spending a model call; the commit repeats this check
	// under its transaction.
	if !req.Replace {
		if err := s.ensureNoPlan(ctx, day); err != nil {
			return nil, err
		}
	}

	loaded, err := s.loader.Load(ctx, day)
	if err != nil {
		return nil, persistenceError("loading plan context", err)
	}
	fields["capacity"] = string(loaded.Capacity.Category)
	fields["candidates"] = len(loaded.Context.Tasks) + len(loaded.Context.Aspirations)
	fields["events"] = len(loaded.Context.Events)

	prompt := intelligence.CompilePlanPrompt(loaded.Context)
	temperature := s.settings.Temperature
	maxTokens := s.settings.MaxTokens
	genResp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlanGenerate,
		SystemPrompt: prompt.System,
		UserPrompt:   prompt.User,
		Temperature:  &temperature,
		MaxTokens:    &maxTokens,
	})
	if err != nil {
		return nil, &contract.GeneratePlanError{
			Code:    contract.ErrModelNoResponse,
			Message: "the model did not answer",
			Err:     err,
		}
	}

	parsed, err := intelligence.ParsePlanResponse(genResp.Text)
	if err != nil {
		return nil, &contract.GeneratePlanError{
			Code:    contract.ErrInvalidResponse,
			Message: "the model answer could not be used",
			Excerpt: excerpt(genResp.Text, contract.ExcerptLimit),
			Err:     err,
		}
	}

	committed, err := s.committer.Commit(ctx, CommitInput{
		Day:          day,
		Capacity:     loaded.Capacity.Category,
		Response:     parsed,
		Availability: loaded.Availability,
		Replace:      req.Replace,
	})
	if err != nil {
		if contract.PlanErrorCode(err) != "" {
			return nil, err
		}
		return nil, persistenceError("saving plan", err)
	}
	fields["entry_count"] = committed.EntryCount
	fields["dropped"] = len(committed.Dropped)

	return &contract.GeneratePlanResponse{
		PlanID:     committed.Plan.ID,
		Date:       committed.Plan.Date,
		Capacity:   committed.Plan.Capacity,
		Summary:    committed.Plan.Summary,
		EntryCount: committed.EntryCount,
		Dropped:    committed.Dropped,
		Replaced:   committed.Replaced,
		Model:      genResp.Model,
	}, nil
}

func (s *planService) ensureNoPlan(ctx context.Context, day scheduler.Day) error {
	_, err := s.plans.GetByDate(ctx, day.Date())
	switch {
	case err == nil:
		return planExists(day)
	case errors.Is(err, repository.ErrNotFound):
		return nil
	default:
		return persistenceError("checking existing plan", err)
	}
}

func (s *planService) GetPlan(ctx context.Context, date string) (*domain.PlanWithEntries, error) {
	day, err := scheduler.ParseDay(date, s.settings.Location)
	if err != nil {
		return nil, err
	}
	plan, err := s.plans.GetByDate(ctx, day.Date())
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.ListByPlan(ctx, plan.ID)
	if err != nil {
		return nil, err
	}

	out := &domain.PlanWithEntries{Plan: *plan, Entries: make([]domain.ScheduleEntry, 0, len(entries))}
	for _, e := range entries {
		out.Entries = append(out.Entries, *e)
	}
	return out, nil
}

func (s *planService) PreviewPrompt(ctx context.Context, date string) (*intelligence.PlanPrompt, error) {
	day, err := scheduler.ParseDay(date, s.settings.Location)
	if err != nil {
		return nil, err
	}
	loaded, err := s.loader.Load(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("loading plan context: %w", err)
	}
	prompt := intelligence.CompilePlanPrompt(loaded.Context)
	return &prompt, nil
}

func persistenceError(msg string, err error) error {
	return &contract.GeneratePlanError{Code: contract.ErrPersistence, Message: msg, Err: err}
}

// excerpt keeps the first limit runes of raw.
func excerpt(raw string, limit int) string {
	runes := []rune(raw)
	if len(runes) <= limit {
		return raw
	}
	return string(runes[:limit])
}
