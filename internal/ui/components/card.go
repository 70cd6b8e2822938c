package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/uxlab/internal/ui/theme"
)

// ContentWidth returns the inner width used for stacked cards so that they
// line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 76 {
		w = 76
	}
	if w < 20 {
		w = 20
	}
	return w
}

func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
}

// Card wraps content in a rounded border. cw is the outer width, border
// and padding included.
func Card(content string, cw int) string {
	return cardStyle().Width(cw).Render(content)
}

// CardInnerWidth returns the columns left for content inside a Card of
// outer width cw.
func CardInnerWidth(cw int) int {
	return max(0, cw-cardStyle().GetHorizontalFrameSize())
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
