package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/uxlab/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int

	// Caption is drawn after the bar instead of the percentage when set.
	Caption string
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	p.Percent = max(0, min(p.Percent, 1))

	var result string
	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffix := ""
	switch {
	case p.Caption != "":
		suffix = "  " + p.Caption
	case p.ShowPercent:
		suffix = fmt.Sprintf("  %d%%", int(p.Percent*100))
	}

	barWidth := p.Width - lipgloss.Width(result) - lipgloss.Width(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if suffix != "" {
		result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
	}
	return result
}
