package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/uxlab/internal/screen"
	"github.com/abhisek/uxlab/internal/ui/theme"
)

// PlaceholderScreen shows a static message for a feature that cannot run
// in the current configuration.
type PlaceholderScreen struct {
	title string
	body  string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// AssistantOffline is shown in place of the chat when no LLM provider is
// configured.
const AssistantOffline = "╌╌ AI assistant offline ╌╌\n\n" +
	"Set one of ANTHROPIC_API_KEY, OPENAI_API_KEY,\n" +
	"GEMINI_API_KEY or OPENROUTER_API_KEY\n" +
	"(or UXLAB_LLM_PROVIDER=mock) and restart uxlab."

// New creates a new PlaceholderScreen with the given title and message.
func New(title, body string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, body: body}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(p.body)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
