package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/drift/internal/domain"
)

// eventTimeLayouts are accepted for starts_at/ends_at. Layouts without an
// offset are read in the configured location.
var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ValidateSeedSchema checks the seed for errors before conversion. known
// holds normalized names of categories already stored. Returns all errors
// found.
func ValidateSeedSchema(schema *SeedSchema, known map[string]bool, loc *time.Location) []error {
	var errs []error

	names := make(map[string]bool, len(known))
	for n := range known {
		names[n] = true
	}
	errs = append(errs, validateCategories(schema.Categories, names)...)
	errs = append(errs, validatePool(schema.Pool, names, loc)...)

	return errs
}

func validateCategories(cats []CategorySeed, names map[string]bool) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, c := range cats {
		prefix := fmt.Sprintf("categories[%d]", i)
		key := domain.NormalizeName(c.Name)
		if key == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
			continue
		}
		if seen[key] {
			errs = append(errs, fmt.Errorf("%s: duplicate category name %q", prefix, c.Name))
		}
		seen[key] = true
		names[key] = true
	}
	return errs
}

func validatePool(items []PoolItemSeed, names map[string]bool, loc *time.Location) []error {
	var errs []error

	for i, p := range items {
		prefix := fmt.Sprintf("pool[%d]", i)

		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if !domain.ValidPoolItemTypes[p.Type] {
			errs = append(errs, fmt.Errorf("%s.type %q is invalid (valid: task, event, aspiration)", prefix, p.Type))
		}
		if p.Status != "" && !domain.ValidPoolItemStatuses[p.Status] {
			errs = append(errs, fmt.Errorf("%s.status %q is invalid (valid: active, paused, completed)", prefix, p.Status))
		}
		if p.CooldownDays != nil && *p.CooldownDays < 0 {
			errs = append(errs, fmt.Errorf("%s.cooldown_days must be >= 0", prefix))
		}
		if p.Category != "" && !names[domain.NormalizeName(p.Category)] {
			errs = append(errs, fmt.Errorf("%s.category %q does not exist", prefix, p.Category))
		}
		errs = append(errs, validateEventTimes(prefix, p, loc)...)
	}
	return errs
}

func validateEventTimes(prefix string, p PoolItemSeed, loc *time.Location) []error {
	if p.Type != string(domain.PoolEvent) {
		if p.StartsAt != nil || p.EndsAt != nil {
			return []error{fmt.Errorf("%s: only events may set starts_at/ends_at", prefix)}
		}
		return nil
	}

	var errs []error
	if p.StartsAt == nil {
		return []error{fmt.Errorf("%s.starts_at is required for events", prefix)}
	}
	start, err := parseEventTime(*p.StartsAt, loc)
	if err != nil {
		errs = append(errs, fmt.Errorf("%s.starts_at: %w", prefix, err))
	}
	if p.EndsAt != nil {
		end, endErr := parseEventTime(*p.EndsAt, loc)
		switch {
		case endErr != nil:
			errs = append(errs, fmt.Errorf("%s.ends_at: %w", prefix, endErr))
		case err == nil && !end.After(start):
			errs = append(errs, fmt.Errorf("%s.ends_at must be after starts_at", prefix))
		}
	}
	return errs
}

func parseEventTime(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range eventTimeLayouts {
		if t, err := time.ParseInLocation(layout, strings.TrimSpace(s), loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q (expected RFC3339 or YYYY-MM-DD HH:MM)", s)
}
