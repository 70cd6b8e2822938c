package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/uxlab/internal/ui/theme"
)

// MenuItem is one row of a Menu. Hotkey, when set, activates the item
// directly.
type MenuItem struct {
	Label    string
	Detail   string
	Hotkey   string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "home", "g":
		m.Selected = 0
		if m.Selected < len(m.Items) && m.Items[m.Selected].Disabled {
			m.move(1)
		}
	case "enter":
		return m, m.activate(m.Selected)
	default:
		for i, item := range m.Items {
			if item.Hotkey != "" && item.Hotkey == key {
				m.Selected = i
				return m, m.activate(i)
			}
		}
	}

	return m, nil
}

// move steps the cursor past disabled items, stopping at either end.
func (m *Menu) move(delta int) {
	for i := m.Selected + delta; i >= 0 && i < len(m.Items); i += delta {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Action == nil || item.Disabled {
		return nil
	}
	return item.Action()
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		label := item.Label
		if item.Hotkey != "" {
			label = "[" + item.Hotkey + "] " + label
		}

		var line string
		switch {
		case item.Disabled:
			line = theme.Disabled.Render("    " + label)
		case i == m.Selected:
			line = theme.Selected.Render("  ▸ " + label)
		default:
			line = theme.Unselected.Render("    " + label)
		}
		if item.Detail != "" {
			line += "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(item.Detail)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
