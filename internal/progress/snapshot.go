package progress

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Snapshot is a read-only view of the learner's gamification state.
// Snapshots returned by Store are copies; mutating one has no effect on the
// store.
type Snapshot struct {
	Experience  int
	Level       Level
	completed   map[string]struct{}
	QuizResults map[string]bool
}

// defaultSnapshot is the zero state for a fresh profile.
func defaultSnapshot() Snapshot {
	return Snapshot{
		Experience:  0,
		Level:       LevelNovice,
		completed:   make(map[string]struct{}),
		QuizResults: make(map[string]bool),
	}
}

// CompletedLessons returns the completed lesson IDs in sorted order.
func (s Snapshot) CompletedLessons() []string {
	return slices.Sorted(maps.Keys(s.completed))
}

// IsComplete reports whether lessonID has been marked complete.
func (s Snapshot) IsComplete(lessonID string) bool {
	_, ok := s.completed[lessonID]
	return ok
}

// QuizResult returns the stored verdict for lessonID. ok is false when no
// quiz has been finished for it yet.
func (s Snapshot) QuizResult(lessonID string) (passed, ok bool) {
	passed, ok = s.QuizResults[lessonID]
	return passed, ok
}

// IsFresh reports whether nothing has been earned or attempted yet.
func (s Snapshot) IsFresh() bool {
	return s.Experience == 0 && len(s.completed) == 0 && len(s.QuizResults) == 0
}

func (s Snapshot) clone() Snapshot {
	c := Snapshot{
		Experience:  s.Experience,
		Level:       s.Level,
		completed:   make(map[string]struct{}, len(s.completed)),
		QuizResults: make(map[string]bool, len(s.QuizResults)),
	}
	maps.Copy(c.completed, s.completed)
	maps.Copy(c.QuizResults, s.QuizResults)
	return c
}

// record is the persisted layout of a snapshot. Level is cached for readers
// of the raw blob and always recomputed on load.
type record struct {
	Experience       int             `json:"experience"`
	Level            Level           `json:"level"`
	CompletedLessons []string        `json:"completedLessons"`
	QuizResults      map[string]bool `json:"quizResults"`
}

func encodeSnapshot(s Snapshot) ([]byte, error) {
	r := record{
		Experience:       s.Experience,
		Level:            s.Level,
		CompletedLessons: s.CompletedLessons(),
		QuizResults:      s.QuizResults,
	}
	if r.CompletedLessons == nil {
		r.CompletedLessons = []string{}
	}
	if r.QuizResults == nil {
		r.QuizResults = map[string]bool{}
	}
	return json.Marshal(r)
}

func decodeSnapshot(data []byte) (Snapshot, error) {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return Snapshot{}, fmt.Errorf("decode progress: %w", err)
	}

	snap := defaultSnapshot()
	if r.Experience > 0 {
		snap.Experience = r.Experience
	}
	snap.Level = LevelFor(snap.Experience)
	for _, id := range r.CompletedLessons {
		if id != "" {
			snap.completed[id] = struct{}{}
		}
	}
	maps.Copy(snap.QuizResults, r.QuizResults)
	return snap, nil
}
