package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/drift/internal/domain"
)

// FormatPoolList renders pool items as a table.
func FormatPoolList(items []*domain.PoolItem, categoryNames map[string]string, loc *time.Location) string {
	if len(items) == 0 {
		return Dim("The pool is empty. Add something with: drift pool add") + "\n"
	}

	rows := make([][]string, 0, len(items))
	for _, p := range items {
		cat := Dim("--")
		if p.CategoryID != nil {
			cat = StylePurple.Render(categoryNames[*p.CategoryID])
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			string(p.Type),
			StyleFg.Render(p.Title),
			cat,
			PoolStatusPill(p.Status),
			poolUsage(p, loc),
		})
	}
	return RenderTable([]string{"ID", "TYPE", "TITLE", "CATEGORY", "STATUS", "USAGE"}, rows)
}

func poolUsage(p *domain.PoolItem, loc *time.Location) string {
	if p.IsEvent() && p.StartsAt != nil {
		return StyleBlue.Render(p.StartsAt.In(loc).Format("2006-01-02 15:04"))
	}
	if p.LastUsedAt == nil {
		return Dim("never used")
	}
	return fmt.Sprintf("%dx, last %s", p.UseCount, p.LastUsedAt.Format(domain.DateLayout))
}

// FormatCategoryList renders categories in rank order.
func FormatCategoryList(cats []*domain.Category) string {
	if len(cats) == 0 {
		return Dim("No categories yet. Add one with: drift category add --name NAME") + "\n"
	}
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		state := StyleGreen.Render("enabled")
		if !c.Enabled {
			state = Dim("disabled")
		}
		rows = append(rows, []string{fmt.Sprintf("%d", c.Rank), StyleFg.Render(c.Name), state})
	}
	return RenderTable([]string{"RANK", "NAME", "STATE"}, rows)
}

// FormatJournalList renders journal entries newest first.
func FormatJournalList(entries []*domain.JournalEntry, loc *time.Location) string {
	if len(entries) == 0 {
		return Dim("No journal entries yet.") + "\n"
	}
	var b strings.Builder
	for i, j := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s  %s\n",
			StyleBlue.Render(j.CreatedAt.In(loc).Format("2006-01-02 15:04")), Ratings(j.Energy, j.Sleep)))
		b.WriteString(StyleFg.Render(j.Content))
		b.WriteString("\n")
	}
	return b.String()
}
