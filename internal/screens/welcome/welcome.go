// Package welcome is the first-run introduction.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/uxlab/internal/router"
	"github.com/abhisek/uxlab/internal/screen"
	"github.com/abhisek/uxlab/internal/ui/theme"
)

const tickInterval = 400 * time.Millisecond

// steps are revealed one per tick.
var steps = []string{
	"1. Pick a law and read the short lesson.",
	"2. Answer its scenario quiz. Each correct answer is worth 100 XP.",
	"3. Get at least half right to complete the law.",
	"4. Level up: Novice → Apprentice (200 XP) → UX Architect (500 XP).",
	"5. Stuck? Ask the AI tutor about any law.",
}

type tickMsg time.Time

// WelcomeScreen introduces the app step by step, then hands over to the
// screen produced by next.
type WelcomeScreen struct {
	next         func() screen.Screen
	shown        int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will be replaced by next().
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Revealed reports whether every step is visible.
func (w *WelcomeScreen) Revealed() bool {
	return w.shown >= len(steps)
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.Revealed() {
			return w, nil
		}
		w.shown++
		return w, tick()

	case tea.KeyPressMsg:
		// The first key skips the reveal, the next one moves on.
		if !w.Revealed() {
			w.shown = len(steps)
			return w, nil
		}
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.Replace(w.next())
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		RenderBanner(width, height < 20),
		"",
		theme.Tagline.Render(Tagline),
		"",
	}

	body := lipgloss.NewStyle().Foreground(theme.Text)
	for _, s := range steps[:min(w.shown, len(steps))] {
		sections = append(sections, body.Render(s))
	}

	if w.Revealed() {
		sections = append(sections, "", theme.Hint.Render("press any key to start"))
	}

	content := lipgloss.NewStyle().Align(lipgloss.Left).Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
