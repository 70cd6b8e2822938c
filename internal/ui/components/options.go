package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/uxlab/internal/ui/theme"
)

// Choice is one labelled answer option.
type Choice struct {
	Label string
	Text  string
}

// OptionList renders a quiz's answer options. Before Reveal it shows a
// cursor; after Reveal it marks the correct option and the chosen one.
type OptionList struct {
	Choices []Choice
	Cursor  int

	revealed bool
	chosen   string
	correct  string
}

// NewOptionList creates an option list with the cursor on the first choice.
func NewOptionList(choices []Choice) OptionList {
	return OptionList{Choices: choices}
}

// Up moves the cursor up one row.
func (o *OptionList) Up() {
	if o.Cursor > 0 {
		o.Cursor--
	}
}

// Down moves the cursor down one row.
func (o *OptionList) Down() {
	if o.Cursor < len(o.Choices)-1 {
		o.Cursor++
	}
}

// CursorLabel returns the label under the cursor.
func (o OptionList) CursorLabel() string {
	if o.Cursor < 0 || o.Cursor >= len(o.Choices) {
		return ""
	}
	return o.Choices[o.Cursor].Label
}

// LabelForKey maps a key press to an option label. Both the label itself
// (case-insensitive) and the 1-based position are accepted.
func (o OptionList) LabelForKey(key string) (string, bool) {
	for i, c := range o.Choices {
		if strings.EqualFold(key, c.Label) || key == fmt.Sprint(i+1) {
			return c.Label, true
		}
	}
	return "", false
}

// Reveal switches the list to its answered rendering.
func (o *OptionList) Reveal(chosen, correct string) {
	o.revealed = true
	o.chosen = chosen
	o.correct = correct
}

// Revealed reports whether Reveal has been called.
func (o OptionList) Revealed() bool {
	return o.revealed
}

// View renders the options, wrapping text to width.
func (o OptionList) View(width int) string {
	textWidth := width - 6
	if textWidth < 20 {
		textWidth = 20
	}

	var b strings.Builder
	for i, c := range o.Choices {
		prefix := "  "
		if !o.revealed && i == o.Cursor {
			prefix = "▸ "
		}
		mark := ""
		style := theme.Unselected

		switch {
		case o.revealed && c.Label == o.correct:
			style, mark = theme.Correct, " ✓"
		case o.revealed && c.Label == o.chosen:
			style, mark = theme.Incorrect, " ✗"
		case o.revealed:
			style = theme.Disabled
		case i == o.Cursor:
			style = theme.Selected
		}

		text := lipgloss.NewStyle().Width(textWidth).Render(c.Text + mark)
		line := lipgloss.JoinHorizontal(lipgloss.Top, prefix+c.Label+")  ", text)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
