package domain

import (
	"fmt"
	"strings"
	"time"
)

type JournalEntry struct {
	ID        string
	Content   string
	Energy    *int // 1-10
	Sleep     *int // 1-10
	CreatedAt time.Time
}

func (j *JournalEntry) Validate() error {
	if strings.TrimSpace(j.Content) == "" {
		return fmt.Errorf("journal content is required")
	}
	if err := validateRating("energy", j.Energy); err != nil {
		return err
	}
	return validateRating("sleep", j.Sleep)
}

func validateRating(name string, v *int) error {
	if v == nil {
		return nil
	}
	if *v < 1 || *v > 10 {
		return fmt.Errorf("%s rating must be between 1 and 10, got %d", name, *v)
	}
	return nil
}
