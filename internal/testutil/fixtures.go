package testutil

import (
	"time"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/google/uuid"
)

// Day returns midnight of the given date in UTC.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func NewTestCategory(name string, rank int) *domain.Category {
	return &domain.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Rank:      rank,
		Enabled:   true,
		CreatedAt: time.Now().UTC(),
	}
}

// Pool item options
type PoolItemOption func(*domain.PoolItem)

func WithLastUsed(d time.Time) PoolItemOption {
	return func(p *domain.PoolItem) {
		p.LastUsedAt = &d
	}
}

func WithUseCount(n int) PoolItemOption {
	return func(p *domain.PoolItem) {
		p.UseCount = n
	}
}

func WithCooldown(days int) PoolItemOption {
	return func(p *domain.PoolItem) {
		p.CooldownDays = &days
	}
}

func WithPoolCategory(id string) PoolItemOption {
	return func(p *domain.PoolItem) {
		p.CategoryID = &id
	}
}

func WithPoolStatus(s domain.PoolItemStatus) PoolItemOption {
	return func(p *domain.PoolItem) {
		p.Status = s
	}
}

func WithNotes(n string) PoolItemOption {
	return func(p *domain.PoolItem) {
		p.Notes = n
	}
}

func WithEventWindow(start time.Time, d time.Duration) PoolItemOption {
	return func(p *domain.PoolItem) {
		p.StartsAt = &start
		if d > 0 {
			end := start.Add(d)
			p.EndsAt = &end
		}
	}
}

func NewTestPoolItem(t domain.PoolItemType, title string, opts ...PoolItemOption) *domain.PoolItem {
	now := time.Now().UTC()
	p := &domain.PoolItem{
		ID:        uuid.New().String(),
		Type:      t,
		Title:     title,
		Status:    domain.PoolActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestEvent builds an event starting at start and lasting d (0 for open-ended).
func NewTestEvent(title string, start time.Time, d time.Duration, opts ...PoolItemOption) *domain.PoolItem {
	return NewTestPoolItem(domain.PoolEvent, title, append([]PoolItemOption{WithEventWindow(start, d)}, opts...)...)
}

// Journal options
type JournalOption func(*domain.JournalEntry)

func WithEnergy(v int) JournalOption {
	return func(j *domain.JournalEntry) {
		j.Energy = &v
	}
}

func WithSleep(v int) JournalOption {
	return func(j *domain.JournalEntry) {
		j.Sleep = &v
	}
}

func NewTestJournal(content string, createdAt time.Time, opts ...JournalOption) *domain.JournalEntry {
	j := &domain.JournalEntry{
		ID:        uuid.New().String(),
		Content:   content,
		CreatedAt: createdAt,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func NewTestPlan(day time.Time, capacity domain.Capacity) *domain.DailyPlan {
	return &domain.DailyPlan{
		ID:        uuid.New().String(),
		Date:      day,
		Capacity:  capacity,
		CreatedAt: time.Now().UTC(),
	}
}

// Entry options
type EntryOption func(*domain.ScheduleEntry)

func WithEntryStatus(s domain.EntryStatus) EntryOption {
	return func(e *domain.ScheduleEntry) {
		e.Status = s
	}
}

func WithEntryCategory(id string) EntryOption {
	return func(e *domain.ScheduleEntry) {
		e.CategoryID = &id
	}
}

func WithScheduledAt(t time.Time) EntryOption {
	return func(e *domain.ScheduleEntry) {
		e.ScheduledAt = &t
	}
}

func NewTestEntry(planID, title string, opts ...EntryOption) *domain.ScheduleEntry {
	now := time.Now().UTC()
	e := &domain.ScheduleEntry{
		ID:             uuid.New().String(),
		PlanID:         planID,
		Title:          title,
		SuggestedOrder: domain.OrderDefault,
		Status:         domain.EntryPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NewTestFeedback(plan *domain.DailyPlan, rating domain.FeedbackRating, comment string, createdAt time.Time) *domain.DailyFeedback {
	return &domain.DailyFeedback{
		ID:        uuid.New().String(),
		PlanID:    &plan.ID,
		PlanDate:  plan.Date,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: createdAt,
	}
}
