package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// Option is one labelled answer choice.
type Option struct {
	Label string `yaml:"label" json:"label"`
	Text  string `yaml:"text" json:"text"`
}

// Question is a single scenario question with exactly one correct label.
type Question struct {
	Scenario      string   `yaml:"scenario" json:"scenario"`
	Prompt        string   `yaml:"question" json:"question"`
	Options       []Option `yaml:"options" json:"options"`
	CorrectAnswer string   `yaml:"correctAnswer" json:"correctAnswer"`
	Feedback      string   `yaml:"feedback" json:"feedback"`
}

// IsCorrect reports whether label is the correct answer.
func (q Question) IsCorrect(label string) bool {
	return label != "" && label == q.CorrectAnswer
}

// OptionIndex returns the index of the option with the given label, or -1.
func (q Question) OptionIndex(label string) int {
	for i, o := range q.Options {
		if o.Label == label {
			return i
		}
	}
	return -1
}

// ErrInvalidQuestion is wrapped by every ValidateQuestion failure.
var ErrInvalidQuestion = errors.New("invalid question")

// ValidateQuestion reports authoring defects in q. The engine tolerates
// malformed questions; content loaders should reject them.
func ValidateQuestion(q Question) error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("%w: empty question text", ErrInvalidQuestion)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: need at least 2 options, got %d", ErrInvalidQuestion, len(q.Options))
	}
	seen := make(map[string]bool, len(q.Options))
	for i, o := range q.Options {
		if o.Label == "" {
			return fmt.Errorf("%w: option %d has empty label", ErrInvalidQuestion, i)
		}
		if seen[o.Label] {
			return fmt.Errorf("%w: duplicate option label %q", ErrInvalidQuestion, o.Label)
		}
		seen[o.Label] = true
	}
	if !seen[q.CorrectAnswer] {
		return fmt.Errorf("%w: correct answer %q matches no option", ErrInvalidQuestion, q.CorrectAnswer)
	}
	return nil
}
