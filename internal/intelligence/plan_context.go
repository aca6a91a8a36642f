package intelligence

import "github.com/alexanderramin/drift/internal/domain"

// PlanContext is everything the prompt compiler knows about one target day.
// It is assembled by the context loader and is the compiler's sole input.
type PlanContext struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`

	Capacity CapacitySignal `json:"capacity"`

	Journal           []JournalSummary  `json:"journal"`
	Feedback          []FeedbackSummary `json:"feedback"`
	CompletionSummary string            `json:"completion_summary"`

	Categories  []string     `json:"categories"`
	Tasks       []Candidate  `json:"tasks"`
	Aspirations []Candidate  `json:"aspirations"`
	Events      []FixedEvent `json:"events"`

	MaxOriginated int `json:"max_originated"`
}

// CapacitySignal is the estimated capacity with its narrative factors.
type CapacitySignal struct {
	Category   domain.Capacity    `json:"category"`
	Score      float64            `json:"score"`
	Energy     domain.FactorLevel `json:"energy"`
	Sleep      domain.FactorLevel `json:"sleep"`
	Completion domain.FactorLevel `json:"completion"`
}

// JournalSummary is one recent journal entry, already truncated.
type JournalSummary struct {
	Date   string `json:"date"`
	Text   string `json:"text"`
	Energy *int   `json:"energy,omitempty"`
	Sleep  *int   `json:"sleep,omitempty"`
}

// FeedbackSummary is one recent piece of feedback on a past plan.
type FeedbackSummary struct {
	PlanDate string                `json:"plan_date"`
	Rating   domain.FeedbackRating `json:"rating"`
	Category string                `json:"category,omitempty"`
	Comment  string                `json:"comment,omitempty"`
}

// Candidate is a task or aspiration the model may pick or adapt.
type Candidate struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Notes    string `json:"notes,omitempty"`
	Category string `json:"category,omitempty"`
	UseCount int    `json:"use_count"`
	LastUsed string `json:"last_used,omitempty"`
}

// FixedEvent is an event already anchored in the day.
type FixedEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	DurationMin *int   `json:"duration_min,omitempty"`
	Category    string `json:"category,omitempty"`
}
