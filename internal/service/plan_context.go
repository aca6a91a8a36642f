package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/intelligence"
	"github.com/alexanderramin/drift/internal/repository"
	"github.com/alexanderramin/drift/internal/scheduler"
)

const (
	journalSummaryCount  = 3
	journalSummaryRunes  = 280
	feedbackWindowDays   = 14
	feedbackSummaryCount = 5
	feedbackCommentRunes = 160
)

// PlanSettings are the configured knobs for plan generation.
type PlanSettings struct {
	Location      *time.Location
	MaxOriginated int
	Cooldowns     scheduler.CooldownDefaults
	Temperature   float64
	MaxTokens     int
}

// DefaultPlanSettings mirrors the configuration defaults.
func DefaultPlanSettings() PlanSettings {
	return PlanSettings{
		Location:      time.Local,
		MaxOriginated: 2,
		Cooldowns:     scheduler.DefaultCooldowns(),
		Temperature:   0.7,
		MaxTokens:     2048,
	}
}

// LoadedPlanContext is the compiler input plus the snapshot the commit step
// resolves proposals against.
type LoadedPlanContext struct {
	Day          scheduler.Day
	Context      intelligence.PlanContext
	Capacity     scheduler.CapacityEstimate
	Availability scheduler.Availability
}

// PlanContextLoader reads everything a plan for one day depends on.
type PlanContextLoader struct {
	pool       repository.PoolItemRepo
	categories repository.CategoryRepo
	journal    repository.JournalRepo
	feedback   repository.FeedbackRepo
	entries    repository.ScheduleEntryRepo
	settings   PlanSettings
}

func NewPlanContextLoader(
	pool repository.PoolItemRepo,
	categories repository.CategoryRepo,
	journal repository.JournalRepo,
	feedback repository.FeedbackRepo,
	entries repository.ScheduleEntryRepo,
	settings PlanSettings,
) *PlanContextLoader {
	return &PlanContextLoader{
		pool:       pool,
		categories: categories,
		journal:    journal,
		feedback:   feedback,
		entries:    entries,
		settings:   settings,
	}
}

// Load is read-only and tolerates an empty history.
func (l *PlanContextLoader) Load(ctx context.Context, day scheduler.Day) (*LoadedPlanContext, error) {
	windowStart := day.AddDays(-scheduler.CapacityWindowDays)

	recent, err := l.journal.ListBetween(ctx, windowStart.Start(), day.Start())
	if err != nil {
		return nil, fmt.Errorf("loading journal window: %w", err)
	}
	stats, err := l.entries.CompletionStatsBetween(ctx, windowStart.Date(), day.Date())
	if err != nil {
		return nil, fmt.Errorf("loading completion stats: %w", err)
	}
	capacity := scheduler.EstimateCapacity(capacityInput(recent, stats))

	latest, err := l.journal.ListRecentBefore(ctx, day.Start(), journalSummaryCount)
	if err != nil {
		return nil, fmt.Errorf("loading recent journal: %w", err)
	}
	feedback, err := l.feedback.ListRecentBetween(ctx,
		day.AddDays(-feedbackWindowDays).Start(), day.Start(), feedbackSummaryCount)
	if err != nil {
		return nil, fmt.Errorf("loading feedback: %w", err)
	}

	allCategories, err := l.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}
	categoryNames := make(map[string]string, len(allCategories))
	var enabled []string
	for _, c := range allCategories {
		categoryNames[c.ID] = c.Name
		if c.Enabled {
			enabled = append(enabled, c.Name)
		}
	}

	active, err := l.pool.ListByStatus(ctx, domain.PoolActive)
	if err != nil {
		return nil, fmt.Errorf("loading pool: %w", err)
	}
	items := make([]domain.PoolItem, len(active))
	for i, p := range active {
		items[i] = *p
	}
	availability := scheduler.ResolveAvailability(items, day, l.settings.Cooldowns)

	loc := day.Location()
	pc := intelligence.PlanContext{
		Date:    day.String(),
		Weekday: day.Weekday().String(),
		Capacity: intelligence.CapacitySignal{
			Category:   capacity.Category,
			Score:      capacity.Score,
			Energy:     capacity.EnergyLevel,
			Sleep:      capacity.SleepLevel,
			Completion: capacity.CompletionLevel,
		},
		Journal:           summarizeJournal(latest, loc),
		Feedback:          summarizeFeedback(feedback),
		CompletionSummary: completionSummary(stats),
		Categories:        enabled,
		Tasks:             candidates(availability.Tasks, categoryNames),
		Aspirations:       candidates(availability.Aspirations, categoryNames),
		Events:            fixedEvents(availability.Events, categoryNames, loc),
		MaxOriginated:     l.settings.MaxOriginated,
	}

	return &LoadedPlanContext{
		Day:          day,
		Context:      pc,
		Capacity:     capacity,
		Availability: availability,
	}, nil
}

func capacityInput(journal []*domain.JournalEntry, stats repository.CompletionStats) scheduler.CapacityInput {
	in := scheduler.CapacityInput{Scheduled: stats.Scheduled, Completed: stats.Completed}
	for _, j := range journal {
		if j.Energy != nil {
			in.Energy = append(in.Energy, *j.Energy)
		}
		if j.Sleep != nil {
			in.Sleep = append(in.Sleep, *j.Sleep)
		}
	}
	return in
}

func summarizeJournal(entries []*domain.JournalEntry, loc *time.Location) []intelligence.JournalSummary {
	out := make([]intelligence.JournalSummary, 0, len(entries))
	for _, j := range entries {
		out = append(out, intelligence.JournalSummary{
			Date:   j.CreatedAt.In(loc).Format(domain.DateLayout),
			Text:   intelligence.Truncate(j.Content, journalSummaryRunes),
			Energy: j.Energy,
			Sleep:  j.Sleep,
		})
	}
	return out
}

func summarizeFeedback(records []domain.FeedbackRecord) []intelligence.FeedbackSummary {
	out := make([]intelligence.FeedbackSummary, 0, len(records))
	for _, r := range records {
		out = append(out, intelligence.FeedbackSummary{
			PlanDate: r.PlanDate.Format(domain.DateLayout),
			Rating:   r.Rating,
			Category: r.CategoryName,
			Comment:  intelligence.Truncate(r.Comment, feedbackCommentRunes),
		})
	}
	return out
}

func completionSummary(stats repository.CompletionStats) string {
	if stats.Scheduled == 0 {
		return fmt.Sprintf("Nothing was scheduled in the last %d days.", scheduler.CapacityWindowDays)
	}
	pct := 100 * stats.Completed / stats.Scheduled
	return fmt.Sprintf("Over the last %d days, %d of %d scheduled entries were done (%d%%).",
		scheduler.CapacityWindowDays, stats.Completed, stats.Scheduled, pct)
}

func candidates(items []domain.PoolItem, categoryNames map[string]string) []intelligence.Candidate {
	out := make([]intelligence.Candidate, 0, len(items))
	for _, p := range items {
		c := intelligence.Candidate{
			ID:       p.ID,
			Title:    p.Title,
			Notes:    p.Notes,
			UseCount: p.UseCount,
		}
		if p.CategoryID != nil {
			c.Category = categoryNames[*p.CategoryID]
		}
		if p.LastUsedAt != nil {
			c.LastUsed = p.LastUsedAt.Format(domain.DateLayout)
		}
		out = append(out, c)
	}
	return out
}

func fixedEvents(items []domain.PoolItem, categoryNames map[string]string, loc *time.Location) []intelligence.FixedEvent {
	out := make([]intelligence.FixedEvent, 0, len(items))
	for _, p := range items {
		ev := intelligence.FixedEvent{
			ID:          p.ID,
			Title:       p.Title,
			Start:       p.StartsAt.In(loc).Format("15:04"),
			DurationMin: p.DurationMin(),
		}
		if p.CategoryID != nil {
			ev.Category = categoryNames[*p.CategoryID]
		}
		out = append(out, ev)
	}
	return out
}
