package quiz

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder receives the side effects of a quiz attempt. *progress.Store
// satisfies it.
type Recorder interface {
	AddExperience(ctx context.Context, points int)
	RecordQuizResult(ctx context.Context, lessonID string, passed bool)
	MarkLessonComplete(ctx context.Context, lessonID string)
}

// Config tunes an Engine.
type Config struct {
	// PointsPerCorrect is awarded for each correct submission.
	PointsPerCorrect int

	Logger *zap.Logger
}

// DefaultConfig returns the standard scoring.
func DefaultConfig() Config {
	return Config{PointsPerCorrect: 100}
}

// Phase is the engine's position in the answer cycle.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseAnswered
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseAnswered:
		return "answered"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// State is a read-only view of an attempt.
type State struct {
	AttemptID string
	Index     int
	Total     int
	Selected  string
	Correct   bool
	Score     int
	Phase     Phase
	Finished  bool
	Passed    bool
}

// PassThreshold is the minimum score needed to pass n questions: ceil(n/2).
func PassThreshold(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + 1) / 2
}

// Engine drives one lesson's quiz. It is not safe for concurrent use; the
// UI calls it from a single goroutine.
type Engine struct {
	lessonID  string
	questions []Question
	recorder  Recorder
	points    int
	logger    *zap.Logger

	attemptID string
	index     int
	selected  string
	score     int
	phase     Phase
	passed    bool
}

// New creates an engine for lessonID. A zero PointsPerCorrect uses the
// default. recorder may be nil, in which case nothing is recorded.
func New(lessonID string, questions []Question, recorder Recorder, cfg Config) *Engine {
	if cfg.PointsPerCorrect == 0 {
		cfg.PointsPerCorrect = DefaultConfig().PointsPerCorrect
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		lessonID:  lessonID,
		questions: append([]Question(nil), questions...),
		recorder:  recorder,
		points:    cfg.PointsPerCorrect,
		logger:    logger.Named("quiz").With(zap.String("lesson", lessonID)),
	}
	e.Reset()
	return e
}

// LessonID returns the lesson this engine records against.
func (e *Engine) LessonID() string { return e.lessonID }

// Current returns the question at the current index.
func (e *Engine) Current() (Question, bool) {
	if e.index < 0 || e.index >= len(e.questions) {
		return Question{}, false
	}
	return e.questions[e.index], true
}

// State returns a snapshot of the attempt.
func (e *Engine) State() State {
	s := State{
		AttemptID: e.attemptID,
		Index:     e.index,
		Total:     len(e.questions),
		Selected:  e.selected,
		Score:     e.score,
		Phase:     e.phase,
		Finished:  e.phase == PhaseFinished,
		Passed:    e.passed,
	}
	if q, ok := e.Current(); ok && e.selected != "" {
		s.Correct = q.IsCorrect(e.selected)
	}
	return s
}

// Submit locks in label for the current question. A correct answer is
// scored and rewarded immediately. Submit outside the active phase, with an
// empty label, or on an empty quiz does nothing.
func (e *Engine) Submit(ctx context.Context, label string) {
	if e.phase != PhaseActive || label == "" {
		e.logger.Debug("submit ignored",
			zap.String("attempt", e.attemptID),
			zap.Stringer("phase", e.phase),
			zap.String("label", label),
		)
		return
	}
	q, ok := e.Current()
	if !ok {
		return
	}

	e.selected = label
	e.phase = PhaseAnswered
	correct := q.IsCorrect(label)
	if correct {
		e.score++
		if e.recorder != nil {
			e.recorder.AddExperience(ctx, e.points)
		}
	}
	e.logger.Debug("answer submitted",
		zap.String("attempt", e.attemptID),
		zap.Int("index", e.index),
		zap.String("label", label),
		zap.Bool("correct", correct),
	)
}

// Advance moves past an answered question. After the last question the
// verdict is recorded, then the lesson is marked complete if it passed.
func (e *Engine) Advance(ctx context.Context) {
	if e.phase != PhaseAnswered {
		e.logger.Debug("advance ignored",
			zap.String("attempt", e.attemptID),
			zap.Stringer("phase", e.phase),
		)
		return
	}

	if e.index < len(e.questions)-1 {
		e.index++
		e.selected = ""
		e.phase = PhaseActive
		return
	}

	e.passed = e.score >= PassThreshold(len(e.questions))
	e.phase = PhaseFinished
	e.logger.Info("quiz finished",
		zap.String("attempt", e.attemptID),
		zap.Int("score", e.score),
		zap.Int("total", len(e.questions)),
		zap.Bool("passed", e.passed),
	)
	if e.recorder == nil {
		return
	}
	e.recorder.RecordQuizResult(ctx, e.lessonID, e.passed)
	if e.passed {
		e.recorder.MarkLessonComplete(ctx, e.lessonID)
	}
}

// Reset starts a fresh attempt. Experience already awarded and verdicts
// already recorded are kept.
func (e *Engine) Reset() {
	e.attemptID = uuid.NewString()
	e.index = 0
	e.selected = ""
	e.score = 0
	e.phase = PhaseActive
	e.passed = false
}
