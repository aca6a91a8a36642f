package service

import (
	"context"

	"github.com/alexanderramin/drift/internal/contract"
	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/importer"
	"github.com/alexanderramin/drift/internal/intelligence"
)

type PlanService interface {
	GeneratePlan(ctx context.Context, req contract.GeneratePlanRequest) (*contract.GeneratePlanResponse, error)
	// GetPlan returns the plan for date with entries ordered by scheduled
	// time, then suggested order.
	GetPlan(ctx context.Context, date string) (*domain.PlanWithEntries, error)
	// PreviewPrompt compiles the prompt for date without calling the model.
	PreviewPrompt(ctx context.Context, date string) (*intelligence.PlanPrompt, error)
}

type PoolService interface {
	Create(ctx context.Context, p *domain.PoolItem) error
	GetByID(ctx context.Context, id string) (*domain.PoolItem, error)
	List(ctx context.Context, status *domain.PoolItemStatus) ([]*domain.PoolItem, error)
	SetStatus(ctx context.Context, id string, status domain.PoolItemStatus) error
}

type CategoryService interface {
	Create(ctx context.Context, c *domain.Category) error
	List(ctx context.Context) ([]*domain.Category, error)
	SetEnabled(ctx context.Context, name string, enabled bool) error
}

type JournalService interface {
	Add(ctx context.Context, j *domain.JournalEntry) error
	ListRecent(ctx context.Context, limit int) ([]*domain.JournalEntry, error)
}

type FeedbackService interface {
	// Add records feedback for the plan of date. categoryName is optional.
	Add(ctx context.Context, date string, rating domain.FeedbackRating, comment, categoryName string) (*domain.DailyFeedback, error)
}

type EntryService interface {
	SetStatus(ctx context.Context, id string, status domain.EntryStatus) (*domain.ScheduleEntry, error)
	SetNotes(ctx context.Context, id string, notes string) (*domain.ScheduleEntry, error)
}

// SeedResult holds the outcome of a seed import.
type SeedResult struct {
	CategoryCount     int
	PoolItemCount     int
	SkippedCategories []string
}

type SeedService interface {
	SeedFromFile(ctx context.Context, filePath string) (*SeedResult, error)
	SeedFromSchema(ctx context.Context, schema *importer.SeedSchema) (*SeedResult, error)
}
