package lawdetail

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/uxlab/internal/chat"
	"github.com/abhisek/uxlab/internal/laws"
	"github.com/abhisek/uxlab/internal/llm"
	"github.com/abhisek/uxlab/internal/progress"
	"github.com/abhisek/uxlab/internal/router"
	"github.com/abhisek/uxlab/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func fitts(t *testing.T) laws.Law {
	t.Helper()
	c, err := laws.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	l, err := c.Get("fitts")
	if err != nil {
		t.Fatalf("get fitts: %v", err)
	}
	return l
}

func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	return push.Screen
}

func TestLawDetail_View(t *testing.T) {
	law := fitts(t)
	store := progress.Open(context.Background(), nil, progress.Config{})
	s := New(screen.Deps{Progress: store}, law)

	view := s.View(100, 40)
	if !strings.Contains(view, "Takeaway") {
		t.Error("expected takeaway callout")
	}
	if !strings.Contains(view, "Not completed yet") {
		t.Error("expected incomplete status")
	}

	store.RecordQuizResult(context.Background(), law.ID, true)
	store.MarkLessonComplete(context.Background(), law.ID)
	view = s.View(100, 40)
	if !strings.Contains(view, "Completed") || !strings.Contains(view, "last quiz passed") {
		t.Error("expected completed status")
	}
}

func TestLawDetail_QuizKey(t *testing.T) {
	s := New(screen.Deps{}, fitts(t))
	_, cmd := s.Update(keyPress('q'))
	if got := pushed(t, cmd).Title(); got != "Quiz · Fitts's Law" {
		t.Errorf("pushed %q", got)
	}
}

func TestLawDetail_NoQuestionsNoQuiz(t *testing.T) {
	s := New(screen.Deps{}, laws.Law{ID: "x", Name: "X"})
	if _, cmd := s.Update(keyPress('q')); cmd != nil {
		t.Error("expected no quiz for a law without questions")
	}
}

func TestLawDetail_AskKey(t *testing.T) {
	law := fitts(t)

	offline := New(screen.Deps{}, law)
	_, cmd := offline.Update(keyPress('a'))
	if got := pushed(t, cmd).Title(); got != "Ask AI" {
		t.Errorf("offline pushed %q", got)
	}

	a := chat.New(llm.NewMockProvider(), chat.DefaultConfig())
	online := New(screen.Deps{Assistant: a}, law)
	_, cmd = online.Update(keyPress('a'))
	if got := pushed(t, cmd).Title(); got != "Ask AI · Fitts's Law" {
		t.Errorf("online pushed %q", got)
	}
}
