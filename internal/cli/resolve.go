package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) dateOrToday(date string) string {
	if date != "" {
		return date
	}
	return a.today().String()
}

// resolveID matches input against ids: exact match first, then a unique
// prefix.
func resolveID(kind, input string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolvePoolItemID(ctx context.Context, app *App, input string) (string, error) {
	items, err := app.Pool.List(ctx, nil)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	return resolveID("pool item", input, ids)
}

// resolveEntryID looks the entry up among the entries of the plan for date.
func resolveEntryID(ctx context.Context, app *App, date, input string) (string, error) {
	p, err := app.Plans.GetPlan(ctx, app.dateOrToday(date))
	if err != nil {
		return "", fmt.Errorf("no plan for %s: %w", app.dateOrToday(date), err)
	}
	ids := make([]string, 0, len(p.Entries))
	for _, e := range p.Entries {
		ids = append(ids, e.ID)
	}
	return resolveID("entry", input, ids)
}

// categoryNames maps category IDs to display names.
func categoryNames(ctx context.Context, app *App) (map[string]string, error) {
	cats, err := app.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}
	return names, nil
}

// categoryIDByName resolves a category name case-insensitively.
func categoryIDByName(ctx context.Context, app *App, name string) (string, error) {
	cats, err := app.Categories.List(ctx)
	if err != nil {
		return "", err
	}
	for _, c := range cats {
		if strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(name)) {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("category not found: %q", name)
}
