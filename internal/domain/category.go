package domain

import (
	"fmt"
	"strings"
	"time"
)

type Category struct {
	ID        string
	Name      string
	Rank      int
	Enabled   bool
	CreatedAt time.Time
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("category name is required")
	}
	return nil
}

// NormalizeName folds a category or title for case- and whitespace-insensitive
// comparison.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
