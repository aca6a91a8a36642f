package scheduler

import (
	"sort"

	"github.com/alexanderramin/drift/internal/domain"
)

// CooldownDefaults are the minimum whole days between uses when an item has
// no override of its own.
type CooldownDefaults struct {
	Task       int
	Aspiration int
}

func DefaultCooldowns() CooldownDefaults {
	return CooldownDefaults{Task: 1, Aspiration: 3}
}

// Availability is the candidate set for one day. The lists are disjoint and
// ordered by title then ID.
type Availability struct {
	Tasks       []domain.PoolItem
	Aspirations []domain.PoolItem
	Events      []domain.PoolItem
}

// Empty reports whether there is nothing to offer for the day.
func (a Availability) Empty() bool {
	return len(a.Tasks) == 0 && len(a.Aspirations) == 0 && len(a.Events) == 0
}

// ResolveAvailability filters active pool items down to what may appear on
// day. Events qualify when they start inside the day in the day's location;
// tasks and aspirations qualify once their cooldown has elapsed relative to
// day.
func ResolveAvailability(items []domain.PoolItem, day Day, defaults CooldownDefaults) Availability {
	var out Availability
	start, end := day.Start(), day.End()

	for _, item := range items {
		if item.Status != domain.PoolActive {
			continue
		}
		switch item.Type {
		case domain.PoolEvent:
			if item.StartsAt == nil {
				continue
			}
			if item.StartsAt.Before(start) || !item.StartsAt.Before(end) {
				continue
			}
			out.Events = append(out.Events, item)
		case domain.PoolTask:
			if offCooldown(item, day, defaults.Task) {
				out.Tasks = append(out.Tasks, item)
			}
		case domain.PoolAspiration:
			if offCooldown(item, day, defaults.Aspiration) {
				out.Aspirations = append(out.Aspirations, item)
			}
		}
	}

	sortByTitle(out.Tasks)
	sortByTitle(out.Aspirations)
	sortByTitle(out.Events)
	return out
}

// EffectiveCooldown returns the item's override or the type default.
func EffectiveCooldown(item domain.PoolItem, fallback int) int {
	return domain.IntFromPtrWithDefault(fallback, item.CooldownDays)
}

func offCooldown(item domain.PoolItem, day Day, fallback int) bool {
	if item.LastUsedAt == nil {
		return true
	}
	return day.DaysSince(*item.LastUsedAt) >= EffectiveCooldown(item, fallback)
}

func sortByTitle(items []domain.PoolItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Title != items[j].Title {
			return items[i].Title < items[j].Title
		}
		return items[i].ID < items[j].ID
	})
}
