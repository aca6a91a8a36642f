package formatter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/drift/internal/contract"
	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/intelligence"
)

// FormatGenerateResult summarizes a freshly generated plan.
func FormatGenerateResult(resp *contract.GeneratePlanResponse, today time.Time) string {
	var b strings.Builder

	verb := "Planned"
	if resp.Replaced {
		verb = "Re-planned"
	}
	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		Bold(verb), StyleFg.Render(HumanDate(resp.Date, today)), CapacityBadge(resp.Capacity)))
	b.WriteString(fmt.Sprintf("%s %d %s\n",
		Dim("Entries:"), resp.EntryCount, Dim(fmt.Sprintf("(plan %s, model %s)", TruncID(resp.PlanID), resp.Model))))

	if len(resp.Dropped) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render(fmt.Sprintf("%d suggestion(s) left out:", len(resp.Dropped))))
		b.WriteString("\n")
		for _, d := range resp.Dropped {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				Dim("-"), StyleFg.Render(d.Title), Dim(droppedReason(d))))
		}
	}
	return b.String()
}

func droppedReason(d contract.DroppedEntry) string {
	switch d.Reason {
	case contract.DropUnknownCategory:
		return fmt.Sprintf("(no enabled category %q)", d.Category)
	case contract.DropDuplicateEvent:
		return "(already on the calendar)"
	default:
		return "(" + string(d.Reason) + ")"
	}
}

// FormatPlan renders a stored plan. categoryNames maps category IDs to names.
func FormatPlan(p *domain.PlanWithEntries, categoryNames map[string]string, loc *time.Location, today time.Time) string {
	var b strings.Builder

	title := fmt.Sprintf("%s · %s", p.Plan.Date.Format(domain.DateLayout), HumanDate(p.Plan.Date, today))
	b.WriteString(Header(title))
	b.WriteString("\n")
	b.WriteString(CapacityBadge(p.Plan.Capacity))
	b.WriteString("\n")
	if p.Plan.Summary != "" {
		b.WriteString("\n")
		b.WriteString(StyleFg.Render(p.Plan.Summary))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(p.Entries) == 0 {
		b.WriteString(Dim("Nothing planned. A free day."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(p.Entries))
	for _, e := range p.Entries {
		when := Dim("--:--")
		if e.ScheduledAt != nil {
			when = StyleBlue.Render(e.ScheduledAt.In(loc).Format("15:04"))
		}
		dur := ""
		if e.DurationMin != nil {
			dur = FormatMinutes(*e.DurationMin)
		}
		cat := Dim("--")
		if e.CategoryID != nil {
			if name, ok := categoryNames[*e.CategoryID]; ok {
				cat = StylePurple.Render(name)
			}
		}
		entryTitle := StyleFg.Render(e.Title)
		if e.Originated {
			entryTitle += StyleYellow.Render(" ✦")
		}
		rows = append(rows, []string{
			EntryStatusPill(e.Status),
			when,
			entryTitle,
			cat,
			dur,
			TruncID(e.ID),
		})
	}
	b.WriteString(RenderTable([]string{"", "TIME", "ENTRY", "CATEGORY", "LENGTH", "ID"}, rows))
	return b.String()
}

// FormatPrompt renders the compiled prompt for inspection.
func FormatPrompt(p *intelligence.PlanPrompt) string {
	var b strings.Builder
	b.WriteString(Header("System"))
	b.WriteString("\n")
	b.WriteString(p.System)
	b.WriteString("\n\n")
	b.WriteString(Header("User"))
	b.WriteString("\n")
	b.WriteString(p.User)
	b.WriteString("\n")
	return b.String()
}

// FormatPlanError explains a plan generation failure. Other errors are
// returned as their message.
func FormatPlanError(err error) string {
	var pe *contract.GeneratePlanError
	if !errors.As(err, &pe) {
		return err.Error()
	}

	var b strings.Builder
	b.WriteString(StyleRed.Render(string(pe.Code)))
	b.WriteString(" ")
	b.WriteString(pe.Message)
	if pe.Err != nil {
		b.WriteString(Dim(": " + pe.Err.Error()))
	}
	b.WriteString("\n")

	switch pe.Code {
	case contract.ErrModelNoResponse:
		b.WriteString(Dim("Check that the model backend is running (drift config show)."))
		b.WriteString("\n")
	case contract.ErrInvalidResponse:
		if pe.Excerpt != "" {
			b.WriteString(Dim("Model output began with:"))
			b.WriteString("\n")
			b.WriteString(pe.Excerpt)
			b.WriteString("\n")
		}
	}
	return b.String()
}
