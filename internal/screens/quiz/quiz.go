// Package quiz is the screen that plays a law's quiz.
package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/uxlab/internal/laws"
	qz "github.com/abhisek/uxlab/internal/quiz"
	"github.com/abhisek/uxlab/internal/router"
	"github.com/abhisek/uxlab/internal/screen"
	"github.com/abhisek/uxlab/internal/ui/components"
	"github.com/abhisek/uxlab/internal/ui/layout"
	"github.com/abhisek/uxlab/internal/ui/theme"
)

// QuizScreen drives one quiz attempt for a law.
type QuizScreen struct {
	law     laws.Law
	engine  *qz.Engine
	points  int
	options components.OptionList
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen for law. Results are recorded in deps.Progress
// when it is set.
func New(deps screen.Deps, law laws.Law) *QuizScreen {
	cfg := qz.DefaultConfig()
	cfg.Logger = deps.Log()

	var rec qz.Recorder
	if deps.Progress != nil {
		rec = deps.Progress
	}

	s := &QuizScreen{
		law:    law,
		engine: qz.New(law.ID, law.Questions, rec, cfg),
		points: cfg.PointsPerCorrect,
	}
	s.syncOptions()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz · " + s.law.Name
}

// State exposes the engine state.
func (s *QuizScreen) State() qz.State {
	return s.engine.State()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.engine.State().Phase {
	case qz.PhaseAnswered:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Leave quiz"},
		}
	case qz.PhaseFinished:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Enter", Description: "Done"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "A-D / 1-4", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Leave quiz"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()
	ctx := context.Background()

	switch s.engine.State().Phase {
	case qz.PhaseActive:
		switch key {
		case "up", "k":
			s.options.Up()
		case "down", "j":
			s.options.Down()
		case "enter":
			s.submit(ctx, s.options.CursorLabel())
		default:
			if label, ok := s.options.LabelForKey(key); ok {
				s.submit(ctx, label)
			}
		}

	case qz.PhaseAnswered:
		switch key {
		case "enter", "space", " ", "right", "n":
			s.engine.Advance(ctx)
			if s.engine.State().Phase == qz.PhaseActive {
				s.syncOptions()
			}
		}

	case qz.PhaseFinished:
		switch key {
		case "r", "R":
			s.engine.Reset()
			s.syncOptions()
		case "enter":
			return s, router.Pop()
		}
	}

	return s, nil
}

func (s *QuizScreen) submit(ctx context.Context, label string) {
	s.engine.Submit(ctx, label)
	st := s.engine.State()
	if st.Phase != qz.PhaseAnswered {
		return
	}
	q, _ := s.engine.Current()
	s.options.Reveal(st.Selected, q.CorrectAnswer)
}

func (s *QuizScreen) syncOptions() {
	q, ok := s.engine.Current()
	if !ok {
		s.options = components.NewOptionList(nil)
		return
	}
	choices := make([]components.Choice, len(q.Options))
	for i, o := range q.Options {
		choices[i] = components.Choice{Label: o.Label, Text: o.Text}
	}
	s.options = components.NewOptionList(choices)
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	st := s.engine.State()

	if st.Total == 0 {
		return components.Center(theme.Hint.Render("This law has no quiz yet."), width, height)
	}
	if st.Finished {
		return components.Center(s.renderResult(st, cw), width, height)
	}

	q, _ := s.engine.Current()
	wrap := lipgloss.NewStyle().Width(cw)

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Question %d of %d  ·  Score %d", st.Index+1, st.Total, st.Score)))
	b.WriteString("\n\n")
	if q.Scenario != "" {
		b.WriteString(wrap.Foreground(theme.TextDim).Render(strings.TrimSpace(q.Scenario)))
		b.WriteString("\n\n")
	}
	b.WriteString(wrap.Inherit(theme.Heading).Render(q.Prompt))
	b.WriteString("\n\n")
	b.WriteString(s.options.View(cw))

	if st.Phase == qz.PhaseAnswered {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(st, q, cw))
	}

	return components.Center(b.String(), width, height)
}

func (s *QuizScreen) renderFeedback(st qz.State, q qz.Question, cw int) string {
	var head string
	if st.Correct {
		head = theme.Correct.Render("Correct!") + "  " + theme.XP.Render(fmt.Sprintf("+%d XP", s.points))
	} else {
		head = theme.Incorrect.Render("Not quite.")
		if idx := q.OptionIndex(q.CorrectAnswer); idx >= 0 {
			head += " " + theme.Body.Render(fmt.Sprintf("The answer is %s.", q.CorrectAnswer))
		}
	}
	body := head
	if q.Feedback != "" {
		body += "\n" + strings.TrimSpace(q.Feedback)
	}
	return theme.Callout.Width(cw - 2).Render(body)
}

func (s *QuizScreen) renderResult(st qz.State, cw int) string {
	var head string
	if st.Passed {
		head = theme.Correct.Render("Quiz passed! 🎉")
	} else {
		head = theme.Incorrect.Render("Quiz not passed")
	}

	lines := []string{
		head,
		"",
		theme.Heading.Render(fmt.Sprintf("Score %d / %d", st.Score, st.Total)),
		theme.Hint.Render(fmt.Sprintf("Pass mark: %d", qz.PassThreshold(st.Total))),
		theme.XP.Render(fmt.Sprintf("+%d XP earned", st.Score*s.points)),
	}
	if st.Passed {
		lines = append(lines, "", theme.Body.Render(s.law.Name+" is marked complete."))
	} else {
		lines = append(lines, "", theme.Body.Render("Press R to try again."))
	}

	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}
