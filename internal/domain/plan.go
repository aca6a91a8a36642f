package domain

import (
	"fmt"
	"time"
)

type DailyPlan struct {
	ID        string
	Date      time.Time
	Capacity  Capacity
	Summary   string
	CreatedAt time.Time
}

type ScheduleEntry struct {
	ID             string
	PlanID         string
	CategoryID     *string
	PoolItemID     *string
	Title          string
	Description    string
	ScheduledAt    *time.Time
	DurationMin    *int
	SuggestedOrder int
	Status         EntryStatus
	CompletedAt    *time.Time
	Notes          string
	Originated     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SetStatus changes the entry status and keeps CompletedAt in step with it.
func (e *ScheduleEntry) SetStatus(s EntryStatus, now time.Time) error {
	if !ValidEntryStatuses[string(s)] {
		return fmt.Errorf("invalid entry status %q (valid: pending, in_progress, completed, skipped)", s)
	}
	e.Status = s
	if s == EntryCompleted {
		if e.CompletedAt == nil {
			e.CompletedAt = &now
		}
	} else {
		e.CompletedAt = nil
	}
	e.UpdatedAt = now
	return nil
}

// PlanWithEntries is a plan together with its entries in display order.
type PlanWithEntries struct {
	Plan    DailyPlan
	Entries []ScheduleEntry
}
