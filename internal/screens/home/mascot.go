package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/uxlab/internal/progress"
	"github.com/abhisek/uxlab/internal/ui/theme"
)

const mascotNovice = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ▭ ▭ │
└─────┘`

const mascotApprentice = `┌─────┐
│ ◉ ◉ │ ⚡
│  ◡  │
│ ▣ ▭ │
└─────┘`

const mascotArchitect = `┌─────┐
│ ★ ★ │
│  ◡  │
│ ▣ ▣ │
└─╥═╥─┘
  ╚═╝`

// RenderMascot returns the mascot art for a level. The mascot gains
// decorations as the learner levels up.
func RenderMascot(level progress.Level) string {
	art, fg := mascotNovice, theme.Primary

	switch level {
	case progress.LevelApprentice:
		art, fg = mascotApprentice, theme.Secondary
	case progress.LevelUXArchitect:
		art, fg = mascotArchitect, theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
