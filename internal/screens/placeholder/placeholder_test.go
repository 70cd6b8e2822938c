package placeholder

import (
	"strings"
	"testing"
)

func TestPlaceholder(t *testing.T) {
	p := New("Ask AI", AssistantOffline)
	if p.Title() != "Ask AI" {
		t.Errorf("Title = %q", p.Title())
	}
	if !strings.Contains(p.View(80, 20), "ANTHROPIC_API_KEY") {
		t.Error("expected setup instructions in view")
	}
	if _, cmd := p.Update(nil); cmd != nil {
		t.Error("expected no command")
	}
}
