package domain

import (
	"fmt"
	"strings"
	"time"
)

type PoolItem struct {
	ID           string
	Type         PoolItemType
	Title        string
	Notes        string
	CategoryID   *string
	Status       PoolItemStatus
	LastUsedAt   *time.Time
	UseCount     int
	CooldownDays *int

	// Only set for events.
	StartsAt *time.Time
	EndsAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the type/status vocabulary and the scheduling invariant:
// events carry a start time, everything else carries none.
func (p *PoolItem) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("pool item title is required")
	}
	if !ValidPoolItemTypes[string(p.Type)] {
		return fmt.Errorf("invalid pool item type %q (valid: task, event, aspiration)", p.Type)
	}
	if !ValidPoolItemStatuses[string(p.Status)] {
		return fmt.Errorf("invalid pool item status %q (valid: active, paused, completed)", p.Status)
	}
	if p.CooldownDays != nil && *p.CooldownDays < 0 {
		return fmt.Errorf("cooldown days must be >= 0, got %d", *p.CooldownDays)
	}
	if p.UseCount < 0 {
		return fmt.Errorf("use count must be >= 0, got %d", p.UseCount)
	}

	if p.Type != PoolEvent {
		if p.StartsAt != nil || p.EndsAt != nil {
			return fmt.Errorf("%s %q cannot carry a scheduled time; only events are fixed in time", p.Type, p.Title)
		}
		return nil
	}
	if p.StartsAt == nil {
		return fmt.Errorf("event %q requires a start time", p.Title)
	}
	if p.EndsAt != nil && !p.EndsAt.After(*p.StartsAt) {
		return fmt.Errorf("event %q must end after it starts", p.Title)
	}
	return nil
}

// IsEvent reports whether the item is a fixed-time event.
func (p *PoolItem) IsEvent() bool {
	return p.Type == PoolEvent
}

// DurationMin returns the event length in minutes, or nil when the item has
// no end time.
func (p *PoolItem) DurationMin() *int {
	if p.StartsAt == nil || p.EndsAt == nil {
		return nil
	}
	d := int(p.EndsAt.Sub(*p.StartsAt).Minutes())
	return &d
}

// MarkUsed advances reuse bookkeeping for selection into the plan on day.
// Status is left untouched.
func (p *PoolItem) MarkUsed(day time.Time, now time.Time) {
	d := day
	p.LastUsedAt = &d
	p.UseCount++
	p.UpdatedAt = now
}

// SetStatus moves the item between lifecycle states.
func (p *PoolItem) SetStatus(s PoolItemStatus, now time.Time) error {
	if !ValidPoolItemStatuses[string(s)] {
		return fmt.Errorf("invalid pool item status %q", s)
	}
	p.Status = s
	p.UpdatedAt = now
	return nil
}
