package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/google/uuid"
)

// Seed is a validated seed converted to domain objects.
type Seed struct {
	Categories []*domain.Category
	PoolItems  []*domain.PoolItem
	// SkippedCategories lists seed categories that already exist.
	SkippedCategories []string
}

// Convert transforms a validated seed into domain objects. existing maps
// normalized names of stored categories to their IDs; those categories are
// reused rather than created again.
func Convert(schema *SeedSchema, existing map[string]string, loc *time.Location, now time.Time) (*Seed, error) {
	seed := &Seed{}
	categoryIDs := make(map[string]string, len(existing)+len(schema.Categories))
	for name, id := range existing {
		categoryIDs[name] = id
	}

	for _, c := range schema.Categories {
		key := domain.NormalizeName(c.Name)
		if _, ok := existing[key]; ok {
			seed.SkippedCategories = append(seed.SkippedCategories, c.Name)
			continue
		}
		cat := &domain.Category{
			ID:        uuid.New().String(),
			Name:      strings.TrimSpace(c.Name),
			Rank:      c.Rank,
			Enabled:   domain.BoolFromPtrWithDefault(true, c.Enabled),
			CreatedAt: now,
		}
		categoryIDs[key] = cat.ID
		seed.Categories = append(seed.Categories, cat)
	}

	for _, p := range schema.Pool {
		item := &domain.PoolItem{
			ID:           uuid.New().String(),
			Type:         domain.PoolItemType(p.Type),
			Title:        strings.TrimSpace(p.Title),
			Notes:        strings.TrimSpace(p.Notes),
			Status:       domain.PoolItemStatus(domain.CoalesceStr(p.Status, string(domain.PoolActive))),
			CooldownDays: p.CooldownDays,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if p.Category != "" {
			id, ok := categoryIDs[domain.NormalizeName(p.Category)]
			if !ok {
				return nil, fmt.Errorf("pool item %q: category %q not found", p.Title, p.Category)
			}
			item.CategoryID = &id
		}
		if p.StartsAt != nil {
			start, err := parseEventTime(*p.StartsAt, loc)
			if err != nil {
				return nil, fmt.Errorf("pool item %q: %w", p.Title, err)
			}
			item.StartsAt = &start
		}
		if p.EndsAt != nil {
			end, err := parseEventTime(*p.EndsAt, loc)
			if err != nil {
				return nil, fmt.Errorf("pool item %q: %w", p.Title, err)
			}
			item.EndsAt = &end
		}
		if err := item.Validate(); err != nil {
			return nil, err
		}
		seed.PoolItems = append(seed.PoolItems, item)
	}

	return seed, nil
}
