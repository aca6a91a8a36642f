package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/drift/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// driftHuhTheme returns a huh theme that matches the formatter palette.
func driftHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// journalFormValues holds the raw strings collected by journalForm.
type journalFormValues struct {
	Content string
	Energy  string
	Sleep   string
}

func journalForm(v *journalFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("How are you, really?").
				Description("A few honest lines are plenty.").
				Value(&v.Content).
				Validate(validateRequired),
			ratingInput("Energy (1-10, blank to skip)", &v.Energy),
			ratingInput("Sleep (1-10, blank to skip)", &v.Sleep),
		),
	).WithTheme(driftHuhTheme()).WithShowHelp(false)
}

func ratingInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("7").
		Value(value).
		Validate(validateOptionalRating)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("write at least a few words")
	}
	return nil
}

// validateOptionalRating accepts empty or an integer between 1 and 10.
func validateOptionalRating(s string) error {
	_, err := parseOptionalRating(s)
	return err
}

func parseOptionalRating(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > 10 {
		return nil, fmt.Errorf("enter a number from 1 to 10")
	}
	return &v, nil
}
