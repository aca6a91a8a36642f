package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/llm"
)

// PlanResponse is a validated model answer.
type PlanResponse struct {
	CapacityNote    string
	MentalStateNote string
	Entries         []ProposedEntry
}

// ProposedEntry is one entry as the model proposed it. Category names are
// not resolved here.
type ProposedEntry struct {
	Category       string `json:"category"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Time           string `json:"time"`
	DurationMin    *int   `json:"duration_min"`
	SuggestedOrder *int   `json:"suggested_order"`
	PoolItemID     string `json:"pool_item_id"`
	Originated     bool   `json:"originated"`
}

// planResponseWire distinguishes a missing or null entries key from an
// empty list.
type planResponseWire struct {
	CapacityNote    string           `json:"capacity_note"`
	MentalStateNote string           `json:"mental_state_note"`
	Entries         *[]ProposedEntry `json:"entries"`
}

// ParsePlanResponse extracts and validates the model's answer. Extraction
// failures surface as llm.ErrAmbiguousOutput, everything else as
// llm.ErrInvalidOutput. No partial acceptance.
func ParsePlanResponse(raw string) (*PlanResponse, error) {
	wire, err := llm.DecodeJSON[planResponseWire](raw, validatePlanResponse)
	if err != nil {
		return nil, err
	}
	return &PlanResponse{
		CapacityNote:    strings.TrimSpace(wire.CapacityNote),
		MentalStateNote: strings.TrimSpace(wire.MentalStateNote),
		Entries:         *wire.Entries,
	}, nil
}

func validatePlanResponse(r planResponseWire) error {
	if r.Entries == nil {
		return fmt.Errorf("entries is required")
	}
	for i, e := range *r.Entries {
		if strings.TrimSpace(e.Title) == "" {
			return fmt.Errorf("entries[%d]: title is required", i)
		}
		if e.SuggestedOrder != nil && (*e.SuggestedOrder < domain.OrderFirst || *e.SuggestedOrder > domain.OrderLast) {
			return fmt.Errorf("entries[%d]: suggested_order must be %d-%d, got %d",
				i, domain.OrderFirst, domain.OrderLast, *e.SuggestedOrder)
		}
		if e.DurationMin != nil && *e.DurationMin <= 0 {
			return fmt.Errorf("entries[%d]: duration_min must be > 0, got %d", i, *e.DurationMin)
		}
	}
	return nil
}

// Summary joins the non-empty notes with a blank line.
func (r *PlanResponse) Summary() string {
	var parts []string
	for _, s := range []string{r.CapacityNote, r.MentalStateNote} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}
