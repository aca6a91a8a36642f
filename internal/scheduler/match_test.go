package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPoolMatcher_Match(t *testing.T) {
	start := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)
	av := Availability{
		Tasks:       []domain.PoolItem{poolItem("t1", domain.PoolTask, "Water the Plants")},
		Aspirations: []domain.PoolItem{poolItem("a1", domain.PoolAspiration, "Sketch")},
		Events:      []domain.PoolItem{eventAt("e1", "Dentist", start)},
	}
	m := NewPoolMatcher(av)

	tests := []struct {
		name   string
		title  string
		id     string
		wantID string
		kind   MatchKind
	}{
		{"title ignores case and surrounding space", "  water the plants ", "", "t1", MatchCandidate},
		{"inner spacing is significant", "water  the plants", "", "", MatchNone},
		{"title beats id", "sketch", "t1", "a1", MatchCandidate},
		{"id fallback", "Doodle a bit", "a1", "a1", MatchCandidate},
		{"event by title", "DENTIST", "", "e1", MatchEvent},
		{"event by id", "Teeth", "e1", "e1", MatchEvent},
		{"unknown id", "Something new", "zzz", "", MatchNone},
		{"nothing", "Something new", "", "", MatchNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, kind := m.Match(tt.title, tt.id)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.wantID, item.ID)
		})
	}
}
