// Package stats is the progress dashboard.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/uxlab/internal/laws"
	"github.com/abhisek/uxlab/internal/progress"
	"github.com/abhisek/uxlab/internal/screen"
	"github.com/abhisek/uxlab/internal/ui/components"
	"github.com/abhisek/uxlab/internal/ui/layout"
	"github.com/abhisek/uxlab/internal/ui/theme"
)

// StatsScreen shows level, XP and per-law results.
type StatsScreen struct {
	deps       screen.Deps
	confirming bool
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen.
func New(deps screen.Deps) *StatsScreen {
	return &StatsScreen{deps: deps}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Progress"
}

// Confirming reports whether the reset prompt is showing.
func (s *StatsScreen) Confirming() bool {
	return s.confirming
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Erase progress"},
			{Key: "N", Description: "Keep it"},
		}
	}
	return []layout.KeyHint{
		{Key: "X", Description: "Reset progress"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.deps.Progress == nil {
		return s, nil
	}

	key := kmsg.String()
	if s.confirming {
		switch key {
		case "y", "Y":
			s.deps.Progress.Reset(context.Background())
			s.confirming = false
		case "n", "N":
			s.confirming = false
		}
		return s, nil
	}

	if key == "x" || key == "X" {
		s.confirming = true
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if s.deps.Progress == nil {
		return components.Center(theme.Hint.Render("Progress tracking is disabled."), width, height)
	}
	snap := s.deps.Progress.Snapshot()

	sections := []string{
		renderLevel(snap, cw),
		renderLadder(snap),
	}
	if s.deps.Catalog != nil {
		sections = append(sections, renderLaws(snap, s.deps.Catalog.All()))
	}
	if s.confirming {
		sections = append(sections, theme.Incorrect.Render("Erase all XP, completions and quiz results? (y/n)"))
	}

	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

func renderLevel(snap progress.Snapshot, cw int) string {
	head := theme.Heading.Render(fmt.Sprintf("%s %s", snap.Level.Icon(), snap.Level)) +
		"   " + theme.XP.Render(fmt.Sprintf("%d XP", snap.Experience))

	bar := components.NewProgressBar("", progress.LevelProgress(snap.Experience), false,
		components.CardInnerWidth(cw-2))
	if next, remaining, ok := progress.NextLevel(snap.Experience); ok {
		bar.Caption = fmt.Sprintf("%d XP to %s", remaining, next)
	} else {
		bar.Caption = "top level reached"
	}
	return components.Card(head+"\n"+bar.View(), cw-2)
}

// renderLadder lists every level, highlighting the current one.
func renderLadder(snap progress.Snapshot) string {
	parts := make([]string, 0, len(progress.AllLevels()))
	for _, l := range progress.AllLevels() {
		label := fmt.Sprintf("%s %s", l.Icon(), l)
		if l == snap.Level {
			parts = append(parts, theme.Selected.Render(label))
		} else {
			parts = append(parts, theme.Disabled.Render(label))
		}
	}
	return strings.Join(parts, theme.Disabled.Render("  →  "))
}

func renderLaws(snap progress.Snapshot, all []laws.Law) string {
	nameWidth := 0
	for _, l := range all {
		nameWidth = max(nameWidth, lipgloss.Width(l.Name))
	}

	var b strings.Builder
	b.WriteString(theme.Heading.Render(fmt.Sprintf("Laws  %d/%d complete", len(snap.CompletedLessons()), len(all))))
	b.WriteString("\n")
	for _, l := range all {
		mark := theme.Disabled.Render("·")
		if snap.IsComplete(l.ID) {
			mark = theme.Correct.Render("✓")
		}

		verdict := theme.Disabled.Render("—")
		if passed, ok := snap.QuizResult(l.ID); ok {
			if passed {
				verdict = theme.Correct.Render("passed")
			} else {
				verdict = theme.Incorrect.Render("failed")
			}
		}

		fmt.Fprintf(&b, "%s %-*s  %s\n", mark, nameWidth, l.Name, verdict)
	}
	return strings.TrimRight(b.String(), "\n")
}
