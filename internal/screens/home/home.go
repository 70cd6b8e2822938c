package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/uxlab/internal/progress"
	"github.com/abhisek/uxlab/internal/router"
	"github.com/abhisek/uxlab/internal/screen"
	chatscreen "github.com/abhisek/uxlab/internal/screens/chat"
	"github.com/abhisek/uxlab/internal/screens/lawlist"
	"github.com/abhisek/uxlab/internal/screens/placeholder"
	"github.com/abhisek/uxlab/internal/screens/stats"
	"github.com/abhisek/uxlab/internal/screens/welcome"
	"github.com/abhisek/uxlab/internal/ui/components"
	"github.com/abhisek/uxlab/internal/ui/layout"
	"github.com/abhisek/uxlab/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	deps screen.Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps screen.Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Laws", Hotkey: "l", Detail: "study and take quizzes", Action: func() tea.Cmd {
			return router.Push(lawlist.New(deps))
		}},
		{Label: "Progress", Hotkey: "p", Detail: "level, XP and results", Action: func() tea.Cmd {
			return router.Push(stats.New(deps))
		}},
		{Label: "Ask AI", Hotkey: "a", Detail: "chat with the UX tutor", Action: func() tea.Cmd {
			if deps.Assistant == nil || !deps.Assistant.Available() {
				return router.Push(placeholder.New("Ask AI", placeholder.AssistantOffline))
			}
			return router.Push(chatscreen.New(deps, ""))
		}},
		{Label: "Exit", Hotkey: "x", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "l/p/a/x", Description: "Jump"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactWidth(width) || layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight)
	cw := components.ContentWidth(width)

	var snap progress.Snapshot
	if h.deps.Progress != nil {
		snap = h.deps.Progress.Snapshot()
	} else {
		snap = progress.Snapshot{Level: progress.LevelNovice}
	}

	var sections []string
	sections = append(sections, renderBanner(cw, compact))
	if !compact {
		sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
			Render(RenderMascot(snap.Level)))
	}
	sections = append(sections, renderStats(snap, h.totalLaws(), cw))
	sections = append(sections, h.menu.View())

	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) totalLaws() int {
	if h.deps.Catalog == nil {
		return 0
	}
	return h.deps.Catalog.Len()
}

func renderBanner(cw int, compact bool) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(welcome.RenderBanner(cw, compact) + "\n\n" + theme.Tagline.Render(welcome.Tagline))
}

// renderStats draws the level line, the XP bar and the lesson count.
func renderStats(snap progress.Snapshot, total, cw int) string {
	level := theme.Heading.Render(fmt.Sprintf("%s %s", snap.Level.Icon(), snap.Level))
	xp := theme.XP.Render(fmt.Sprintf("%d XP", snap.Experience))
	done := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d laws complete", len(snap.CompletedLessons()), total))

	bar := components.NewProgressBar("", progress.LevelProgress(snap.Experience), false,
		components.CardInnerWidth(cw-2))
	if next, remaining, ok := progress.NextLevel(snap.Experience); ok {
		bar.Caption = fmt.Sprintf("%d XP to %s", remaining, next)
	} else {
		bar.Caption = "max level"
	}

	return components.Card(level+"   "+xp+"   "+done+"\n"+bar.View(), cw-2)
}
