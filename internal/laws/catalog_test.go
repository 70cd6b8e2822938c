package laws

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/uxlab/internal/quiz"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	want := []string{
		"fitts", "hicks", "millers", "von-restorff", "zeigarnik",
		"aesthetic-usability", "doherty", "proximity", "teslers", "peak-end",
	}
	assert.Equal(t, want, c.IDs())
	assert.Equal(t, 10, c.Len())

	for _, l := range c.All() {
		assert.NotEmpty(t, l.Name, l.ID)
		assert.NotEmpty(t, l.Summary, l.ID)
		require.NotEmpty(t, l.Questions, l.ID)
		for _, q := range l.Questions {
			assert.NoError(t, quiz.ValidateQuestion(q), l.ID)
		}
	}
}

func TestDefaultAnswers(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	fitts, err := c.Get("fitts")
	require.NoError(t, err)
	assert.Equal(t, "B", fitts.Questions[0].CorrectAnswer)

	hicks, err := c.Get("hicks")
	require.NoError(t, err)
	assert.Equal(t, "C", hicks.Questions[0].CorrectAnswer)
	assert.Len(t, hicks.Questions[0].Options, 3)
}

func TestGetUnknown(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = c.Get("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAllReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	all := c.All()
	all[0].Name = "changed"

	first, err := c.Get("fitts")
	require.NoError(t, err)
	assert.Equal(t, "Fitts's Law", first.Name)
}

const minimalLaw = `
laws:
  - id: %s
    name: Test
    tagline: t
    summary: s
    questions:
      - question: q?
        options:
          - {label: A, text: one}
          - {label: B, text: two}
        correctAnswer: %s
`

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", ``},
		{"not yaml", `laws: [`},
		{"no laws", `laws: []`},
		{"unknown field", "laws:\n  - id: x\n    name: n\n    tagline: t\n    summary: s\n    questions: []\n    color: red\n"},
		{"bad id", `laws: [{id: "Bad ID", name: n, tagline: t, summary: s, questions: []}]`},
		{"one option", `laws: [{id: x, name: n, tagline: t, summary: s, questions: [{question: q, options: [{label: A, text: a}], correctAnswer: A}]}]`},
		{"answer matches nothing", fmt.Sprintf(minimalLaw, "x", "Z")},
		{"duplicate id", fmt.Sprintf(minimalLaw, "x", "A") + `  - {id: x, name: n, tagline: t, summary: s, questions: []}` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseMinimal(t *testing.T) {
	c, err := Parse([]byte(fmt.Sprintf(minimalLaw, "custom", "A")))
	require.NoError(t, err)

	l, err := c.Get("custom")
	require.NoError(t, err)
	assert.Equal(t, "q?", l.Questions[0].Prompt)
	assert.Equal(t, "two", l.Questions[0].Options[1].Text)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "laws.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf(minimalLaw, "local", "B")), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"local"}, c.IDs())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEmptyPathUsesEmbedded(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 10, c.Len())
}

func TestCatalogQuizPlaysThrough(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, l := range c.All() {
		e := quiz.New(l.ID, l.Questions, nil, quiz.DefaultConfig())
		for range l.Questions {
			q, ok := e.Current()
			require.True(t, ok)
			e.Submit(context.Background(), q.CorrectAnswer)
			e.Advance(context.Background())
		}
		assert.True(t, e.State().Passed, l.ID)
	}
}
