package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/drift/internal/domain"
)

// ForbiddenWords is the achievement and obligation vocabulary plans never use.
var ForbiddenWords = []string{
	"goal", "must", "should", "achieve", "accomplish",
	"complete", "productive", "deadline", "target", "required",
}

// InvitationalPhrases are the framings plans are written in.
var InvitationalPhrases = []string{
	"you might", "perhaps", "an invitation to", "if it feels right",
}

// capacityGuidance is the entry count the model aims for per capacity.
var capacityGuidance = map[domain.Capacity]string{
	domain.CapacityLow:    "2-3 simple, gentle entries",
	domain.CapacityMedium: "3-5 entries",
	domain.CapacityHigh:   "5-7 entries",
}

// PlanPrompt is a compiled system/user prompt pair.
type PlanPrompt struct {
	System string
	User   string
}

// planSystemPrompt frames the model's role and output contract. The %s verbs
// are forbidden words, invitational phrases, capacity guidance and the
// originated budget, in that order.
const planSystemPrompt = `You are drift, a gentle companion that sketches one day at a time.
You are not a productivity coach. A day plan is a set of invitations, never a list of obligations.

LANGUAGE
- Never use these words in any title, description or note: %s.
- Phrase every description as an invitation, for example: %s.
- Suggested order expresses sequence within the day (1 = earliest or most time-bound, 5 = whenever). It never expresses importance.

SELECTION
- Prefer selecting or gently adapting the pool candidates you are given. Keep the candidate's id in pool_item_id when you use one.
- You may originate at most %d new suggestions that are not in the pool. Mark them with "originated": true.
- Every entry uses exactly one of the supplied category names, spelled as given. Never invent a category.
- Today's capacity calls for %s.
- Fixed events are already in the day. Plan around them. Never repeat, move or reschedule an event.

OUTPUT
Reply with exactly one fenced json code block and nothing else, following this contract:
` + "```json" + `
{
  "capacity_note": "optional string",
  "mental_state_note": "optional string",
  "entries": [
    {
      "category": "one of the supplied category names",
      "title": "string",
      "description": "optional string",
      "time": "morning | afternoon | evening | HH:MM (optional)",
      "duration_min": 30,
      "suggested_order": 1,
      "pool_item_id": "optional id of the pool candidate",
      "originated": false
    }
  ]
}
` + "```"

// CompilePlanPrompt renders a plan context into the prompt pair sent to the
// model. Output depends only on pc.
func CompilePlanPrompt(pc PlanContext) PlanPrompt {
	guidance, ok := capacityGuidance[pc.Capacity.Category]
	if !ok {
		guidance = capacityGuidance[domain.CapacityMedium]
	}

	quoted := make([]string, len(InvitationalPhrases))
	for i, p := range InvitationalPhrases {
		quoted[i] = fmt.Sprintf("%q", p)
	}

	system := fmt.Sprintf(planSystemPrompt,
		strings.Join(ForbiddenWords, ", "),
		strings.Join(quoted, ", "),
		pc.MaxOriginated,
		guidance,
	)
	return PlanPrompt{System: system, User: renderPlanContext(pc)}
}

func renderPlanContext(pc PlanContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Day: %s, %s\n\n", pc.Weekday, pc.Date)

	b.WriteString("CAPACITY\n")
	fmt.Fprintf(&b, "Estimated capacity: %s (score %.2f)\n", pc.Capacity.Category, pc.Capacity.Score)
	fmt.Fprintf(&b, "Energy lately: %s. Sleep lately: %s. Recent follow-through: %s.\n",
		pc.Capacity.Energy, pc.Capacity.Sleep, pc.Capacity.Completion)
	if pc.CompletionSummary != "" {
		b.WriteString(pc.CompletionSummary + "\n")
	}

	b.WriteString("\nRECENT JOURNAL\n")
	if len(pc.Journal) == 0 {
		b.WriteString("(no recent entries)\n")
	}
	for _, j := range pc.Journal {
		fmt.Fprintf(&b, "- %s: %s", j.Date, j.Text)
		if ratings := formatRatings(j.Energy, j.Sleep); ratings != "" {
			fmt.Fprintf(&b, " [%s]", ratings)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nRECENT FEEDBACK\n")
	if len(pc.Feedback) == 0 {
		b.WriteString("(none)\n")
	}
	for _, f := range pc.Feedback {
		fmt.Fprintf(&b, "- plan of %s felt %s", f.PlanDate, feedbackPhrase(f.Rating))
		if f.Category != "" {
			fmt.Fprintf(&b, " (area: %s)", f.Category)
		}
		if f.Comment != "" {
			fmt.Fprintf(&b, ": %q", f.Comment)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nCATEGORIES (use exactly these names)\n")
	if len(pc.Categories) == 0 {
		b.WriteString("(none)\n")
	}
	for _, c := range pc.Categories {
		fmt.Fprintf(&b, "- %s\n", c)
	}

	b.WriteString("\nFIXED EVENTS (already scheduled, do not include them)\n")
	if len(pc.Events) == 0 {
		b.WriteString("(none)\n")
	}
	for _, e := range pc.Events {
		fmt.Fprintf(&b, "- %s %s", e.Start, e.Title)
		if e.DurationMin != nil {
			fmt.Fprintf(&b, " (%d min)", *e.DurationMin)
		}
		b.WriteString("\n")
	}

	writeCandidates(&b, "TASK CANDIDATES", pc.Tasks)
	writeCandidates(&b, "ASPIRATION CANDIDATES", pc.Aspirations)

	fmt.Fprintf(&b, "\nOriginated suggestions allowed: %d\n", pc.MaxOriginated)
	return b.String()
}

func writeCandidates(b *strings.Builder, heading string, items []Candidate) {
	fmt.Fprintf(b, "\n%s\n", heading)
	if len(items) == 0 {
		b.WriteString("(none available)\n")
		return
	}
	for _, c := range items {
		fmt.Fprintf(b, "- [%s] %s", c.ID, c.Title)
		if c.Category != "" {
			fmt.Fprintf(b, " (%s)", c.Category)
		}
		if c.LastUsed != "" {
			fmt.Fprintf(b, ", last offered %s", c.LastUsed)
		} else {
			b.WriteString(", not offered yet")
		}
		if c.Notes != "" {
			fmt.Fprintf(b, ". Notes: %s", c.Notes)
		}
		b.WriteString("\n")
	}
}

func formatRatings(energy, sleep *int) string {
	var parts []string
	if energy != nil {
		parts = append(parts, fmt.Sprintf("energy %d/10", *energy))
	}
	if sleep != nil {
		parts = append(parts, fmt.Sprintf("sleep %d/10", *sleep))
	}
	return strings.Join(parts, ", ")
}

func feedbackPhrase(r domain.FeedbackRating) string {
	switch r {
	case domain.FeedbackAboutRight:
		return "about right"
	case domain.FeedbackTooMuch:
		return "like too much"
	case domain.FeedbackOneArea:
		return "focused on one area"
	default:
		return string(r)
	}
}
