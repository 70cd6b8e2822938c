package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiContents(t *testing.T) {
	contents := buildGeminiContents([]Message{
		{Role: RoleUser, Content: "What is Hick's Law?"},
		{Role: RoleAssistant, Content: "More choices, slower decisions."},
	})
	if len(contents) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(contents))
	}
	if contents[0].Role != "user" || contents[1].Role != "model" {
		t.Fatalf("unexpected roles %q, %q", contents[0].Role, contents[1].Role)
	}
	if contents[1].Parts[0].Text != "More choices, slower decisions." {
		t.Fatalf("unexpected text %q", contents[1].Parts[0].Text)
	}
}

func TestGeminiConfig(t *testing.T) {
	cfg := geminiConfig(Request{System: "tutor", MaxTokens: 300, Temperature: 0.5})
	if cfg.MaxOutputTokens != 300 {
		t.Fatalf("expected 300 max tokens, got %d", cfg.MaxOutputTokens)
	}
	if cfg.Temperature == nil || *cfg.Temperature != 0.5 {
		t.Fatalf("unexpected temperature %v", cfg.Temperature)
	}
	if cfg.SystemInstruction == nil || cfg.SystemInstruction.Parts[0].Text != "tutor" {
		t.Fatal("expected system instruction")
	}

	bare := geminiConfig(Request{})
	if bare.Temperature != nil || bare.SystemInstruction != nil {
		t.Fatal("expected no temperature or system instruction")
	}
}

func TestGeminiStopReason(t *testing.T) {
	truncated := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonMaxTokens}},
	}
	if got := mapGeminiStopReason(truncated); got != "max_tokens" {
		t.Fatalf("expected max_tokens, got %q", got)
	}
	if got := mapGeminiStopReason(&genai.GenerateContentResponse{}); got != "end" {
		t.Fatalf("expected end, got %q", got)
	}
}
