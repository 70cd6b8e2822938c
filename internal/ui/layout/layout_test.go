package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRenderHeader_ShowsStatus(t *testing.T) {
	h := RenderHeader("Home", Status{Level: "Apprentice", Icon: "⚡", XP: 250}, 100)
	for _, want := range []string{"uxlab", "Home", "Apprentice", "250 XP"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q:\n%s", want, h)
		}
	}
}

func TestRenderHeader_NoticeReplacesBadge(t *testing.T) {
	h := RenderHeader("Quiz", Status{Level: "Novice", Icon: "★", XP: 200, Notice: "Level up! Apprentice"}, 100)
	if !strings.Contains(h, "Level up! Apprentice") {
		t.Errorf("expected notice in header:\n%s", h)
	}
	if strings.Contains(h, "200 XP") {
		t.Errorf("expected notice to replace the XP badge:\n%s", h)
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("Home", Status{Level: "Novice"}, 80)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(79, 24) || !IsTooSmall(80, 23) {
		t.Error("expected sizes below 80x24 to be too small")
	}
	if IsTooSmall(80, 24) {
		t.Error("expected 80x24 to fit")
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 30-HeaderHeight-FooterHeight {
		t.Errorf("ContentHeight(30) = %d", got)
	}
	if got := ContentHeight(2); got != 0 {
		t.Errorf("ContentHeight(2) = %d, want 0", got)
	}
}
