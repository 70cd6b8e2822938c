package app

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/uxlab/internal/progress"
	"github.com/abhisek/uxlab/internal/router"
	"github.com/abhisek/uxlab/internal/screen"
	"github.com/abhisek/uxlab/internal/screens/home"
	"github.com/abhisek/uxlab/internal/screens/welcome"
	"github.com/abhisek/uxlab/internal/ui/layout"
)

// noticeDuration is how long a level-up notice stays in the header.
const noticeDuration = 4 * time.Second

// clearNoticeMsg expires the notice with the matching sequence number.
type clearNoticeMsg struct{ seq int }

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   screen.Deps
	router *router.Router
	watch  *levelWatch
	width  int
	height int

	notice    string
	noticeSeq int
}

// newAppModel creates a new AppModel. A fresh profile starts on the
// welcome screen, everyone else lands on home. The returned function
// detaches the level watcher from the store.
func newAppModel(deps screen.Deps) (AppModel, func()) {
	m := AppModel{
		deps:   deps,
		router: router.New(initialScreen(deps)),
	}
	stop := func() {}
	if deps.Progress != nil {
		m.watch = newLevelWatch(deps.Progress.Snapshot().Level)
		stop = deps.Progress.Subscribe(m.watch.observe)
	}
	return m, stop
}

func initialScreen(deps screen.Deps) screen.Screen {
	if deps.Progress == nil || !deps.Progress.Snapshot().IsFresh() {
		return home.New(deps)
	}
	return welcome.New(func() screen.Screen { return home.New(deps) })
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	if notice := m.collectLevelUp(); notice != nil {
		return m, tea.Batch(cmd, notice)
	}
	return m, cmd
}

// collectLevelUp turns a level change seen by the watcher into a header
// notice and schedules its removal.
func (m *AppModel) collectLevelUp() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	level, ok := m.watch.take()
	if !ok {
		return nil
	}
	m.deps.Log().Info("level up", zap.String("level", string(level)))
	m.noticeSeq++
	m.notice = fmt.Sprintf("%s Level up! %s", level.Icon(), level)
	seq := m.noticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

func (m AppModel) status() layout.Status {
	var snap progress.Snapshot
	if m.deps.Progress != nil {
		snap = m.deps.Progress.Snapshot()
	} else {
		snap.Level = progress.LevelNovice
	}
	return layout.Status{
		Level:  string(snap.Level),
		Icon:   snap.Level.Icon(),
		XP:     snap.Experience,
		Notice: m.notice,
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, deps screen.Deps) error {
	model, stop := newAppModel(deps)
	defer stop()

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
