package quiz

import (
	"errors"
	"testing"
)

func TestValidateQuestion(t *testing.T) {
	valid := Question{
		Prompt:        "Which button is easier to hit?",
		Options:       []Option{{Label: "A", Text: "small"}, {Label: "B", Text: "large"}},
		CorrectAnswer: "B",
	}

	tests := []struct {
		name    string
		mutate  func(q *Question)
		wantErr bool
	}{
		{"valid", func(q *Question) {}, false},
		{"empty prompt", func(q *Question) { q.Prompt = "  " }, true},
		{"one option", func(q *Question) { q.Options = q.Options[:1] }, true},
		{"empty label", func(q *Question) { q.Options = []Option{{Label: ""}, {Label: "B"}} }, true},
		{"duplicate label", func(q *Question) { q.Options = []Option{{Label: "B"}, {Label: "B"}} }, true},
		{"answer matches nothing", func(q *Question) { q.CorrectAnswer = "C" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid
			q.Options = append([]Option(nil), valid.Options...)
			tt.mutate(&q)

			err := ValidateQuestion(q)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateQuestion() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidQuestion) {
				t.Errorf("error %v does not wrap ErrInvalidQuestion", err)
			}
		})
	}
}

func TestOptionIndex(t *testing.T) {
	q := Question{Options: []Option{{Label: "A"}, {Label: "B"}}}
	if got := q.OptionIndex("B"); got != 1 {
		t.Errorf("OptionIndex(B) = %d, want 1", got)
	}
	if got := q.OptionIndex("Z"); got != -1 {
		t.Errorf("OptionIndex(Z) = %d, want -1", got)
	}
}
