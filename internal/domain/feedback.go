package domain

import (
	"fmt"
	"time"
)

// DailyFeedback is the user's verdict on a day's plan. It keeps the plan
// date so it outlives a regenerated plan; PlanID is nil once that plan is gone.
type DailyFeedback struct {
	ID         string
	PlanID     *string
	PlanDate   time.Time
	Rating     FeedbackRating
	Comment    string
	CategoryID *string
	CreatedAt  time.Time
}

func (f *DailyFeedback) Validate() error {
	if f.PlanDate.IsZero() {
		return fmt.Errorf("feedback requires a plan date")
	}
	if !ValidFeedbackRatings[string(f.Rating)] {
		return fmt.Errorf("invalid feedback rating %q (valid: about_right, too_much, one_area)", f.Rating)
	}
	return nil
}

// FeedbackRecord is a feedback row joined with its category name, as consumed
// by plan generation.
type FeedbackRecord struct {
	DailyFeedback
	CategoryName string
}
