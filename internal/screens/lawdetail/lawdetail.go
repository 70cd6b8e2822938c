// Package lawdetail shows one law's lesson text.
package lawdetail

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/uxlab/internal/laws"
	"github.com/abhisek/uxlab/internal/quiz"
	"github.com/abhisek/uxlab/internal/router"
	"github.com/abhisek/uxlab/internal/screen"
	chatscreen "github.com/abhisek/uxlab/internal/screens/chat"
	"github.com/abhisek/uxlab/internal/screens/placeholder"
	quizscreen "github.com/abhisek/uxlab/internal/screens/quiz"
	"github.com/abhisek/uxlab/internal/ui/components"
	"github.com/abhisek/uxlab/internal/ui/layout"
	"github.com/abhisek/uxlab/internal/ui/theme"
)

// LawDetailScreen renders a law's summary and takeaway.
type LawDetailScreen struct {
	deps screen.Deps
	law  laws.Law
}

var _ screen.Screen = (*LawDetailScreen)(nil)
var _ screen.KeyHintProvider = (*LawDetailScreen)(nil)

// New creates a detail screen for law.
func New(deps screen.Deps, law laws.Law) *LawDetailScreen {
	return &LawDetailScreen{deps: deps, law: law}
}

func (s *LawDetailScreen) Init() tea.Cmd {
	return nil
}

func (s *LawDetailScreen) Title() string {
	return s.law.Name
}

func (s *LawDetailScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if len(s.law.Questions) > 0 {
		hints = append(hints, layout.KeyHint{Key: "Q", Description: "Take quiz"})
	}
	return append(hints,
		layout.KeyHint{Key: "A", Description: "Ask AI about this"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *LawDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "q", "Q", "enter":
		if len(s.law.Questions) == 0 {
			return s, nil
		}
		return s, router.Push(quizscreen.New(s.deps, s.law))
	case "a", "A":
		if s.deps.Assistant == nil || !s.deps.Assistant.Available() {
			return s, router.Push(placeholder.New("Ask AI", placeholder.AssistantOffline))
		}
		return s, router.Push(chatscreen.New(s.deps, s.law.Name))
	}
	return s, nil
}

func (s *LawDetailScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	wrap := lipgloss.NewStyle().Width(cw)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render(s.law.Name))
	b.WriteString("\n")
	b.WriteString(theme.Tagline.Width(cw).Align(lipgloss.Center).Render(s.law.Tagline))
	b.WriteString("\n\n")
	b.WriteString(wrap.Foreground(theme.Text).Render(strings.TrimSpace(s.law.Summary)))

	if s.law.Takeaway != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Callout.Width(cw - 2).Render(
			theme.XP.Render("Takeaway") + "\n" + strings.TrimSpace(s.law.Takeaway)))
	}

	b.WriteString("\n\n")
	b.WriteString(s.statusLine())

	return components.Center(b.String(), width, height)
}

func (s *LawDetailScreen) statusLine() string {
	if s.deps.Progress == nil {
		return ""
	}
	snap := s.deps.Progress.Snapshot()

	status := theme.Hint.Render("Not completed yet")
	if snap.IsComplete(s.law.ID) {
		status = theme.Correct.Render("✓ Completed")
	}
	if passed, ok := snap.QuizResult(s.law.ID); ok {
		verdict := theme.Incorrect.Render("last quiz failed")
		if passed {
			verdict = theme.Correct.Render("last quiz passed")
		}
		status += "  ·  " + verdict
	}
	n := len(s.law.Questions)
	status += "  ·  " + theme.Hint.Render(fmt.Sprintf("%d question(s), pass with %d", n, quiz.PassThreshold(n)))
	return status
}
