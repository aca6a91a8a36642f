package intelligence

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func samplePlanContext() PlanContext {
	return PlanContext{
		Date:    "2026-03-10",
		Weekday: "Tuesday",
		Capacity: CapacitySignal{
			Category:   domain.CapacityMedium,
			Score:      0.55,
			Energy:     domain.FactorModerate,
			Sleep:      domain.FactorLow,
			Completion: domain.FactorHigh,
		},
		Journal: []JournalSummary{
			{Date: "2026-03-09", Text: "Slept badly, but the walk helped.", Energy: intPtr(5), Sleep: intPtr(3)},
		},
		Feedback: []FeedbackSummary{
			{PlanDate: "2026-03-08", Rating: domain.FeedbackTooMuch, Comment: "a lot of errands"},
		},
		CompletionSummary: "Over the last 7 days 4 of 6 entries were done.",
		Categories:        []string{"Home", "Exercise", "Creative"},
		Tasks: []Candidate{
			{ID: "t1", Title: "Water plants", Category: "Home", LastUsed: "2026-03-07", UseCount: 2},
		},
		Aspirations: []Candidate{
			{ID: "a1", Title: "Sketch a tree", Category: "Creative", Notes: "pencil only"},
		},
		Events: []FixedEvent{
			{ID: "e1", Title: "Dentist", Start: "11:00", DurationMin: intPtr(45)},
		},
		MaxOriginated: 2,
	}
}

// forbiddenWordsIn returns forbidden words found in text, ignoring the line
// that enumerates them.
func forbiddenWordsIn(text string) []string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "Never use these words") {
			continue
		}
		kept = append(kept, line)
	}
	body := strings.ToLower(strings.Join(kept, "\n"))

	var found []string
	for _, w := range ForbiddenWords {
		if regexp.MustCompile(`\b` + w + `\b`).MatchString(body) {
			found = append(found, w)
		}
	}
	return found
}

func TestCompilePlanPrompt_Deterministic(t *testing.T) {
	pc := samplePlanContext()
	first := CompilePlanPrompt(pc)
	second := CompilePlanPrompt(pc)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("prompt not deterministic (-first +second):\n%s", diff)
	}
}

func TestCompilePlanPrompt_NoObligationLanguage(t *testing.T) {
	p := CompilePlanPrompt(samplePlanContext())
	assert.Empty(t, forbiddenWordsIn(p.System))
	assert.Empty(t, forbiddenWordsIn(p.User))
}

func TestCompilePlanPrompt_SystemEncodesRules(t *testing.T) {
	p := CompilePlanPrompt(samplePlanContext())

	for _, w := range ForbiddenWords {
		assert.Contains(t, p.System, w)
	}
	for _, phrase := range InvitationalPhrases {
		assert.Contains(t, p.System, `"`+phrase+`"`)
	}
	assert.Contains(t, p.System, "at most 2 new suggestions")
	assert.Contains(t, p.System, "3-5 entries")
	assert.Contains(t, p.System, "```json")
	assert.Contains(t, p.System, `"pool_item_id"`)
	assert.Equal(t, 2, strings.Count(p.System, "```"))
}

func TestCompilePlanPrompt_CapacityGuidance(t *testing.T) {
	tests := map[domain.Capacity]string{
		domain.CapacityLow:    "2-3 simple, gentle entries",
		domain.CapacityMedium: "3-5 entries",
		domain.CapacityHigh:   "5-7 entries",
	}
	for capacity, want := range tests {
		pc := samplePlanContext()
		pc.Capacity.Category = capacity
		assert.Contains(t, CompilePlanPrompt(pc).System, want, capacity)
	}
}

func TestCompilePlanPrompt_UserListsContext(t *testing.T) {
	p := CompilePlanPrompt(samplePlanContext())

	assert.Contains(t, p.User, "Day: Tuesday, 2026-03-10")
	assert.Contains(t, p.User, "Estimated capacity: medium (score 0.55)")
	assert.Contains(t, p.User, "energy 5/10, sleep 3/10")
	assert.Contains(t, p.User, `felt like too much: "a lot of errands"`)
	assert.Contains(t, p.User, "- Home\n- Exercise\n- Creative\n")
	assert.Contains(t, p.User, "- 11:00 Dentist (45 min)")
	assert.Contains(t, p.User, "- [t1] Water plants (Home), last offered 2026-03-07")
	assert.Contains(t, p.User, "- [a1] Sketch a tree (Creative), not offered yet. Notes: pencil only")
	assert.Contains(t, p.User, "Originated suggestions allowed: 2")
}

func TestCompilePlanPrompt_EmptyContext(t *testing.T) {
	p := CompilePlanPrompt(PlanContext{Date: "2026-03-10", Weekday: "Tuesday"})

	assert.Contains(t, p.User, "(no recent entries)")
	assert.Contains(t, p.User, "TASK CANDIDATES\n(none available)")
	assert.Contains(t, p.System, "3-5 entries")
	assert.Contains(t, p.System, "at most 0 new suggestions")
}
