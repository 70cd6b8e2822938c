package progress

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Config holds optional Store dependencies.
type Config struct {
	// Logger receives persistence warnings. Nil means no logging.
	Logger *zap.Logger
}

// Store is the single owner of the learner's gamification state. Every
// mutation is written through to Storage before it returns. Write failures
// are logged and swallowed: gamification must never break the app.
type Store struct {
	mu      sync.Mutex
	storage Storage
	logger  *zap.Logger
	snap    Snapshot

	subMu   sync.Mutex
	subs    []subscriber
	nextSub int
}

// Open rehydrates a Store from storage. Missing or corrupt data yields the
// default snapshot.
func Open(ctx context.Context, storage Storage, cfg Config) *Store {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		storage: storage,
		logger:  logger.Named("progress"),
		snap:    defaultSnapshot(),
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	if s.storage == nil {
		return
	}
	data, err := s.storage.Load(ctx)
	if err != nil {
		s.logger.Warn("load progress failed, starting fresh", zap.Error(err))
		return
	}
	if len(data) == 0 {
		return
	}
	snap, err := decodeSnapshot(data)
	if err != nil {
		s.logger.Warn("stored progress is corrupt, starting fresh", zap.Error(err))
		return
	}
	s.snap = snap
	s.logger.Debug("progress loaded",
		zap.Int("experience", snap.Experience),
		zap.String("level", string(snap.Level)),
	)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.clone()
}

// AddExperience awards points and recomputes the level. Zero points still
// persists; negative points are ignored.
func (s *Store) AddExperience(ctx context.Context, points int) {
	if points < 0 {
		s.logger.Warn("ignoring negative experience award", zap.Int("points", points))
		return
	}
	s.mutate(ctx, "add_experience", func(snap *Snapshot) bool {
		snap.Experience += points
		snap.Level = LevelFor(snap.Experience)
		return true
	})
}

// MarkLessonComplete adds lessonID to the completed set. Repeated calls for
// the same lesson do nothing: no write, no notification.
func (s *Store) MarkLessonComplete(ctx context.Context, lessonID string) {
	s.mutate(ctx, "mark_complete", func(snap *Snapshot) bool {
		if _, done := snap.completed[lessonID]; done {
			return false
		}
		snap.completed[lessonID] = struct{}{}
		return true
	})
}

// RecordQuizResult overwrites the quiz verdict for lessonID.
func (s *Store) RecordQuizResult(ctx context.Context, lessonID string, passed bool) {
	s.mutate(ctx, "record_quiz", func(snap *Snapshot) bool {
		snap.QuizResults[lessonID] = passed
		return true
	})
}

// Reset returns the store to the default snapshot.
func (s *Store) Reset(ctx context.Context) {
	s.mutate(ctx, "reset", func(snap *Snapshot) bool {
		*snap = defaultSnapshot()
		return true
	})
}

// Subscribe registers fn to receive a snapshot after every effective
// mutation. Callbacks run synchronously on the mutating goroutine, after the
// write. The returned func unregisters fn.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool { return sub.id == id })
	}
}

// mutate applies fn under the lock, persists when fn reports a change, and
// then notifies subscribers outside the lock.
func (s *Store) mutate(ctx context.Context, op string, fn func(*Snapshot) bool) {
	s.mu.Lock()
	if !fn(&s.snap) {
		s.mu.Unlock()
		return
	}
	s.persist(ctx, op)
	snap := s.snap.clone()
	s.mu.Unlock()

	s.notify(snap)
}

// persist writes the current snapshot. Callers hold s.mu.
func (s *Store) persist(ctx context.Context, op string) {
	if s.storage == nil {
		return
	}
	data, err := encodeSnapshot(s.snap)
	if err != nil {
		s.logger.Warn("encode progress failed", zap.String("op", op), zap.Error(err))
		return
	}
	if err := s.storage.Save(ctx, data); err != nil {
		s.logger.Warn("persist progress failed, keeping in-memory state",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

// subscriber keeps registration order so callbacks run in a stable order.
type subscriber struct {
	id int
	fn func(Snapshot)
}

func (s *Store) notify(snap Snapshot) {
	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, sub := range s.subs {
		fns = append(fns, sub.fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap.clone())
	}
}
