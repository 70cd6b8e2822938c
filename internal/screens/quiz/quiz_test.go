package quiz

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/uxlab/internal/laws"
	"github.com/abhisek/uxlab/internal/progress"
	qz "github.com/abhisek/uxlab/internal/quiz"
	"github.com/abhisek/uxlab/internal/router"
	"github.com/abhisek/uxlab/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T, id string) (*QuizScreen, *progress.Store) {
	t.Helper()
	catalog, err := laws.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	law, err := catalog.Get(id)
	if err != nil {
		t.Fatalf("get %s: %v", id, err)
	}
	store := progress.Open(context.Background(), nil, progress.Config{})
	return New(screen.Deps{Progress: store, Catalog: catalog}, law), store
}

func update(t *testing.T, s *QuizScreen, msg tea.Msg) tea.Cmd {
	t.Helper()
	scr, cmd := s.Update(msg)
	if scr != s {
		t.Fatal("expected quiz screen to update in place")
	}
	return cmd
}

func TestQuizScreen_CorrectLetterPasses(t *testing.T) {
	s, store := testScreen(t, "fitts")

	update(t, s, keyPress('b'))
	st := s.State()
	if st.Phase != qz.PhaseAnswered || !st.Correct {
		t.Fatalf("state after answer = %+v", st)
	}
	if got := store.Snapshot().Experience; got != 100 {
		t.Errorf("experience = %d, want 100", got)
	}
	if !strings.Contains(s.View(100, 30), "+100 XP") {
		t.Error("expected XP feedback in view")
	}

	update(t, s, specialKey(tea.KeyEnter))
	st = s.State()
	if !st.Finished || !st.Passed {
		t.Fatalf("expected finished and passed, got %+v", st)
	}
	snap := store.Snapshot()
	if !snap.IsComplete("fitts") {
		t.Error("expected fitts to be complete")
	}
	if passed, ok := snap.QuizResult("fitts"); !ok || !passed {
		t.Error("expected a passing verdict")
	}
	if !strings.Contains(s.View(100, 30), "Quiz passed") {
		t.Error("expected result view")
	}
}

func TestQuizScreen_WrongAnswerFails(t *testing.T) {
	s, store := testScreen(t, "hicks")

	update(t, s, keyPress('1'))
	if s.State().Correct {
		t.Fatal("expected option A to be wrong for hicks")
	}
	if !strings.Contains(s.View(100, 30), "Not quite") {
		t.Error("expected corrective feedback")
	}

	update(t, s, specialKey(tea.KeyEnter))
	if !s.State().Finished || s.State().Passed {
		t.Fatalf("expected a failed finish, got %+v", s.State())
	}
	snap := store.Snapshot()
	if snap.IsComplete("hicks") {
		t.Error("failed quiz must not complete the lesson")
	}
	if snap.Experience != 0 {
		t.Errorf("experience = %d, want 0", snap.Experience)
	}
}

func TestQuizScreen_ArrowsThenEnter(t *testing.T) {
	s, _ := testScreen(t, "millers")

	update(t, s, specialKey(tea.KeyDown))
	update(t, s, specialKey(tea.KeyEnter))
	st := s.State()
	if st.Selected != "B" || !st.Correct {
		t.Fatalf("expected B selected and correct, got %+v", st)
	}
}

func TestQuizScreen_LockedAnswerIgnoresKeys(t *testing.T) {
	s, store := testScreen(t, "fitts")

	update(t, s, keyPress('b'))
	update(t, s, keyPress('a'))
	if s.State().Selected != "B" {
		t.Errorf("selection changed to %q after lock", s.State().Selected)
	}
	if store.Snapshot().Experience != 100 {
		t.Errorf("experience = %d, want 100", store.Snapshot().Experience)
	}
}

func TestQuizScreen_RetryAndDone(t *testing.T) {
	s, store := testScreen(t, "fitts")

	update(t, s, keyPress('a'))
	update(t, s, specialKey(tea.KeyEnter))
	if !s.State().Finished {
		t.Fatal("expected finished")
	}
	first := s.State().AttemptID

	update(t, s, keyPress('r'))
	st := s.State()
	if st.Phase != qz.PhaseActive || st.Score != 0 || st.AttemptID == first {
		t.Fatalf("expected a fresh attempt, got %+v", st)
	}

	update(t, s, keyPress('b'))
	update(t, s, specialKey(tea.KeyEnter))
	if !store.Snapshot().IsComplete("fitts") {
		t.Error("expected retry pass to complete the lesson")
	}

	cmd := update(t, s, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a pop command when done")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestQuizScreen_EmptyQuiz(t *testing.T) {
	s := New(screen.Deps{}, laws.Law{ID: "empty", Name: "Empty"})
	update(t, s, keyPress('a'))
	update(t, s, specialKey(tea.KeyEnter))
	if s.State().Phase != qz.PhaseActive {
		t.Errorf("empty quiz phase = %s, want active", s.State().Phase)
	}
	if !strings.Contains(s.View(100, 30), "no quiz") {
		t.Error("expected empty quiz message")
	}
}

func TestQuizScreen_Title(t *testing.T) {
	s, _ := testScreen(t, "fitts")
	if s.Title() != "Quiz · Fitts's Law" {
		t.Errorf("Title = %q", s.Title())
	}
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}
