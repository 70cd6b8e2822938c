// Package chat is the AI tutor conversation screen.
package chat

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	ai "github.com/abhisek/uxlab/internal/chat"
	"github.com/abhisek/uxlab/internal/screen"
	"github.com/abhisek/uxlab/internal/ui/components"
	"github.com/abhisek/uxlab/internal/ui/layout"
	"github.com/abhisek/uxlab/internal/ui/theme"
)

const defaultTimeout = 45 * time.Second

// ChatScreen shows the conversation with the assistant and an input line.
type ChatScreen struct {
	assistant *ai.Assistant
	topic     string
	timeout   time.Duration
	logger    *zap.Logger

	input   components.TextInput
	pending string
	waiting bool
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a chat screen. topic is the law under discussion and may be
// empty for a general conversation.
func New(deps screen.Deps, topic string) *ChatScreen {
	timeout := deps.ChatTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ChatScreen{
		assistant: deps.Assistant,
		topic:     topic,
		timeout:   timeout,
		logger:    deps.Log().Named("chat-screen"),
		input:     components.NewTextInput("Ask about UX laws...", 500),
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	if s.assistant != nil {
		s.assistant.Open(s.topic)
	}
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	if s.topic == "" {
		return "Ask AI"
	}
	return "Ask AI · " + s.topic
}

// Waiting reports whether a reply is outstanding.
func (s *ChatScreen) Waiting() bool {
	return s.waiting
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+L", Description: "New conversation"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		s.waiting = false
		s.pending = ""
		if msg.err != nil {
			s.logger.Warn("assistant reply failed", zap.Error(msg.err))
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return s, s.send()
		case "ctrl+l":
			if s.assistant != nil && !s.waiting {
				s.assistant.Reset()
				s.assistant.Open(s.topic)
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// send starts an asynchronous round trip for the current input.
func (s *ChatScreen) send() tea.Cmd {
	if s.waiting || s.assistant == nil {
		return nil
	}
	text := s.input.Take()
	if text == "" {
		return nil
	}

	s.waiting = true
	s.pending = text
	a, timeout := s.assistant, s.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		reply, err := a.Send(ctx, text)
		return replyMsg{reply: reply, err: err}
	}
}

func (s *ChatScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	s.input.SetWidth(cw - 4)

	var history []ai.Message
	if s.assistant != nil {
		history = s.assistant.History()
	}
	// The user turn is appended inside the command goroutine, so show the
	// pending text until it lands in the history.
	if s.waiting && !endsWithUser(history, s.pending) {
		history = append(history, ai.Message{Role: ai.RoleUser, Content: s.pending})
	}

	blocks := make([]string, 0, len(history)+1)
	for _, m := range history {
		blocks = append(blocks, renderMessage(m, cw))
	}
	if s.waiting {
		blocks = append(blocks, theme.Hint.Render("Tutor is thinking…"))
	}
	if len(blocks) == 0 {
		blocks = append(blocks, theme.Hint.Render("Ask anything about the laws of UX."))
	}

	inputBox := components.Card(s.input.View(), cw-2)
	avail := height - lipgloss.Height(inputBox) - 1

	// Keep the newest messages that fit.
	var shown []string
	used := 0
	for i := len(blocks) - 1; i >= 0; i-- {
		h := lipgloss.Height(blocks[i]) + 1
		if used+h > avail && len(shown) > 0 {
			break
		}
		shown = append([]string{blocks[i]}, shown...)
		used += h
	}

	transcript := lipgloss.NewStyle().
		Width(cw).
		Height(max(avail, 0)).
		AlignVertical(lipgloss.Bottom).
		Render(strings.Join(shown, "\n\n"))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, transcript+"\n"+inputBox)
}

func endsWithUser(history []ai.Message, text string) bool {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == ai.RoleUser {
			return history[i].Content == text
		}
	}
	return false
}

func renderMessage(m ai.Message, cw int) string {
	body := lipgloss.NewStyle().Width(cw - 4).Render(renderBold(m.Content))
	switch {
	case m.Role == ai.RoleUser:
		return lipgloss.NewStyle().Width(cw).Align(lipgloss.Right).
			Render(theme.Selected.Render("You") + "\n" + theme.UserBubble.Render(body))
	case m.Failed:
		return theme.Incorrect.Render("Tutor") + "\n" + theme.AssistantBubble.Render(body)
	default:
		return theme.XP.Render("Tutor") + "\n" + theme.AssistantBubble.Render(body)
	}
}

// renderBold turns **text** spans into bold text.
func renderBold(s string) string {
	parts := strings.Split(s, "**")
	if len(parts) < 3 {
		return s
	}
	bold := lipgloss.NewStyle().Bold(true)
	var b strings.Builder
	for i, p := range parts {
		if i%2 == 1 && i < len(parts)-1 {
			b.WriteString(bold.Render(p))
			continue
		}
		if i%2 == 1 {
			b.WriteString("**")
		}
		b.WriteString(p)
	}
	return b.String()
}
