package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/tlevesque/amfprep/internal/ui/theme"
)

// MenuItem is one selectable entry. A Disabled item is shown but cannot
// be focused or activated; Note is rendered dimly after the label.
type MenuItem struct {
	Label    string
	Note     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions, navigated with the arrow keys or
// activated directly with a number key.
type Menu struct {
	Items []MenuItem
	Focus int
}

// NewMenu builds a menu focused on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	if len(items) > 0 && items[0].Disabled {
		m.move(1)
	}
	return m
}

// move shifts focus by delta, skipping disabled items. Focus stays put
// when no enabled item exists in that direction.
func (m *Menu) move(delta int) {
	for i := m.Focus + delta; i >= 0 && i < len(m.Items); i += delta {
		if !m.Items[i].Disabled {
			m.Focus = i
			return
		}
	}
}

// activate runs the item's action if it can be run.
func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		return m, m.activate(m.Focus)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			return m, m.activate(int(key[0] - '1'))
		}
	}

	return m, nil
}

// View renders the menu with numbered entries.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		line := fmt.Sprintf("%d. %s", i+1, item.Label)
		if item.Note != "" {
			line += "  " + theme.Hint.Render(item.Note)
		}

		switch {
		case item.Disabled:
			s += theme.Hint.Render("    "+line) + "\n"
		case i == m.Focus:
			s += theme.Selected.Render("  ▸ "+line) + "\n"
		default:
			s += theme.Unselected.Render("    "+line) + "\n"
		}
	}
	return s
}
