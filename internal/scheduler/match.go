package scheduler

import (
	"strings"

	"github.com/alexanderramin/drift/internal/domain"
)

// MatchKind says which part of the candidate set a proposal resolved to.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchCandidate
	MatchEvent
)

// PoolMatcher links proposed entries back to the day's candidates.
type PoolMatcher struct {
	byTitle      map[string]domain.PoolItem
	byID         map[string]domain.PoolItem
	eventByTitle map[string]domain.PoolItem
	eventByID    map[string]domain.PoolItem
}

func NewPoolMatcher(av Availability) *PoolMatcher {
	m := &PoolMatcher{
		byTitle:      map[string]domain.PoolItem{},
		byID:         map[string]domain.PoolItem{},
		eventByTitle: map[string]domain.PoolItem{},
		eventByID:    map[string]domain.PoolItem{},
	}
	for _, list := range [][]domain.PoolItem{av.Tasks, av.Aspirations} {
		for _, item := range list {
			key := NormalizeTitle(item.Title)
			if _, taken := m.byTitle[key]; !taken {
				m.byTitle[key] = item
			}
			m.byID[item.ID] = item
		}
	}
	for _, ev := range av.Events {
		key := NormalizeTitle(ev.Title)
		if _, taken := m.eventByTitle[key]; !taken {
			m.eventByTitle[key] = ev
		}
		m.eventByID[ev.ID] = ev
	}
	return m
}

// Match resolves a proposal by title first, then by the supplied pool item
// id. Task and aspiration candidates win over events.
func (m *PoolMatcher) Match(title, poolItemID string) (domain.PoolItem, MatchKind) {
	key := NormalizeTitle(title)
	id := strings.TrimSpace(poolItemID)

	if item, ok := m.byTitle[key]; ok {
		return item, MatchCandidate
	}
	if item, ok := m.byID[id]; ok && id != "" {
		return item, MatchCandidate
	}
	if ev, ok := m.eventByTitle[key]; ok {
		return ev, MatchEvent
	}
	if ev, ok := m.eventByID[id]; ok && id != "" {
		return ev, MatchEvent
	}
	return domain.PoolItem{}, MatchNone
}

// NormalizeTitle lowercases and trims surrounding whitespace.
func NormalizeTitle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
