// Package lawlist is the catalog browser.
package lawlist

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/uxlab/internal/laws"
	"github.com/abhisek/uxlab/internal/progress"
	"github.com/abhisek/uxlab/internal/router"
	"github.com/abhisek/uxlab/internal/screen"
	"github.com/abhisek/uxlab/internal/screens/lawdetail"
	"github.com/abhisek/uxlab/internal/ui/components"
	"github.com/abhisek/uxlab/internal/ui/layout"
	"github.com/abhisek/uxlab/internal/ui/theme"
)

// LawListScreen lists every law with its completion and quiz markers.
type LawListScreen struct {
	deps screen.Deps
	laws []laws.Law
	menu components.Menu
}

var _ screen.Screen = (*LawListScreen)(nil)
var _ screen.KeyHintProvider = (*LawListScreen)(nil)

// New creates a LawListScreen over the catalog in deps.
func New(deps screen.Deps) *LawListScreen {
	var all []laws.Law
	if deps.Catalog != nil {
		all = deps.Catalog.All()
	}

	items := make([]components.MenuItem, len(all))
	for i, l := range all {
		items[i] = components.MenuItem{
			Label: l.Name,
			Action: func() tea.Cmd {
				return router.Push(lawdetail.New(deps, l))
			},
		}
	}

	return &LawListScreen{
		deps: deps,
		laws: all,
		menu: components.NewMenu(items),
	}
}

func (s *LawListScreen) Init() tea.Cmd {
	return nil
}

func (s *LawListScreen) Title() string {
	return "Laws of UX"
}

func (s *LawListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LawListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// Selected returns the law under the cursor.
func (s *LawListScreen) Selected() (laws.Law, bool) {
	if s.menu.Selected < 0 || s.menu.Selected >= len(s.laws) {
		return laws.Law{}, false
	}
	return s.laws[s.menu.Selected], true
}

func (s *LawListScreen) View(width, height int) string {
	if len(s.laws) == 0 {
		return components.Center(theme.Hint.Render("The law catalog is empty."), width, height)
	}

	var snap progress.Snapshot
	if s.deps.Progress != nil {
		snap = s.deps.Progress.Snapshot()
	}

	// Markers reflect the store at render time, so returning from a quiz
	// shows the new verdict without a refresh message.
	labelWidth := 0
	for _, l := range s.laws {
		labelWidth = max(labelWidth, lipgloss.Width(l.Name))
	}
	for i, l := range s.laws {
		s.menu.Items[i].Label = fmt.Sprintf("%s %-*s", Marker(snap, l.ID), labelWidth, l.Name)
		s.menu.Items[i].Detail = QuizBadge(snap, l.ID)
	}

	done := len(snap.CompletedLessons())
	header := theme.Heading.Render(fmt.Sprintf("%d of %d complete", done, len(s.laws)))

	body := header + "\n\n" + s.menu.View()
	if l, ok := s.Selected(); ok && !layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) {
		body += "\n" + theme.Tagline.Render(l.Tagline)
	}

	return components.Center(strings.TrimRight(body, "\n"), width, height)
}

// Marker is the completion glyph for a law.
func Marker(snap progress.Snapshot, id string) string {
	if snap.IsComplete(id) {
		return "✓"
	}
	return "·"
}

// QuizBadge describes the stored quiz verdict for a law.
func QuizBadge(snap progress.Snapshot, id string) string {
	passed, ok := snap.QuizResult(id)
	switch {
	case !ok:
		return "quiz not taken"
	case passed:
		return "quiz passed"
	default:
		return "quiz failed"
	}
}
