package screen

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/uxlab/internal/chat"
	"github.com/abhisek/uxlab/internal/laws"
	"github.com/abhisek/uxlab/internal/progress"
	"github.com/abhisek/uxlab/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Deps carries the long-lived collaborators screens are built from.
type Deps struct {
	Progress  *progress.Store
	Catalog   *laws.Catalog
	Assistant *chat.Assistant
	Logger    *zap.Logger

	// ChatTimeout bounds one assistant round trip. Zero means 45s.
	ChatTimeout time.Duration
}

// Log returns the logger, or a no-op logger when none is set.
func (d Deps) Log() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}
