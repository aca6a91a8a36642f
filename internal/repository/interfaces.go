package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/drift/internal/domain"
)

// ErrNotFound is returned (wrapped) when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// CompletionStats counts schedule entries over a range of plan dates.
type CompletionStats struct {
	Scheduled int
	Completed int
}

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	ListEnabled(ctx context.Context) ([]*domain.Category, error)
	SetEnabled(ctx context.Context, id string, enabled bool) error
}

type PoolItemRepo interface {
	Create(ctx context.Context, p *domain.PoolItem) error
	GetByID(ctx context.Context, id string) (*domain.PoolItem, error)
	List(ctx context.Context) ([]*domain.PoolItem, error)
	ListByStatus(ctx context.Context, status domain.PoolItemStatus) ([]*domain.PoolItem, error)
	Update(ctx context.Context, p *domain.PoolItem) error
	// MarkUsed sets last_used_at to day and increments use_count for every id
	// in a single statement.
	MarkUsed(ctx context.Context, ids []string, day time.Time) error
}

type JournalRepo interface {
	Create(ctx context.Context, j *domain.JournalEntry) error
	// ListBetween returns entries created in [from, to), oldest first.
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.JournalEntry, error)
	// ListRecentBefore returns up to limit entries created before the given
	// instant, newest first.
	ListRecentBefore(ctx context.Context, before time.Time, limit int) ([]*domain.JournalEntry, error)
}

type FeedbackRepo interface {
	Create(ctx context.Context, f *domain.DailyFeedback) error
	// ListRecentBetween returns up to limit feedback records created in
	// [from, to), newest first, joined with plan date and category name.
	ListRecentBetween(ctx context.Context, from, to time.Time, limit int) ([]domain.FeedbackRecord, error)
}

type PlanRepo interface {
	Create(ctx context.Context, p *domain.DailyPlan) error
	GetByID(ctx context.Context, id string) (*domain.DailyPlan, error)
	GetByDate(ctx context.Context, day time.Time) (*domain.DailyPlan, error)
	Delete(ctx context.Context, id string) error
}

type ScheduleEntryRepo interface {
	Create(ctx context.Context, e *domain.ScheduleEntry) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleEntry, error)
	ListByPlan(ctx context.Context, planID string) ([]*domain.ScheduleEntry, error)
	Update(ctx context.Context, e *domain.ScheduleEntry) error
	DeleteByPlan(ctx context.Context, planID string) error
	// CompletionStatsBetween counts entries of plans dated in [from, to).
	CompletionStatsBetween(ctx context.Context, from, to time.Time) (CompletionStats, error)
}
