package app

import (
	"slices"
	"sync"

	"github.com/abhisek/uxlab/internal/progress"
)

// levelWatch observes the progress store and remembers a level-up until
// the model collects it.
type levelWatch struct {
	mu      sync.Mutex
	current progress.Level
	pending progress.Level
}

func newLevelWatch(start progress.Level) *levelWatch {
	return &levelWatch{current: start}
}

// observe is the progress subscriber. Only upward moves produce a notice;
// a reset just re-baselines.
func (w *levelWatch) observe(snap progress.Snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if rank(snap.Level) > rank(w.current) {
		w.pending = snap.Level
	}
	w.current = snap.Level
}

// take returns and clears the pending level-up.
func (w *levelWatch) take() (progress.Level, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	l := w.pending
	w.pending = ""
	return l, l != ""
}

func rank(l progress.Level) int {
	return slices.Index(progress.AllLevels(), l)
}
