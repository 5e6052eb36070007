package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tlevesque/amfprep/internal/bank"
	"github.com/tlevesque/amfprep/internal/ui/theme"
)

// MultiChoice is a three-option answer selector. Unlike a grading widget
// it never knows the correct answer; it only records what was chosen.
type MultiChoice struct {
	Prompt   string
	Choices  []string // A, B, C texts
	Selected int
	Chosen   int // -1 until a choice is confirmed
}

// NewMultiChoice creates a selector for one question. chosen pre-selects
// an already-recorded answer (-1 for none), so revisiting a question
// shows the earlier choice.
func NewMultiChoice(prompt string, choices []string, chosen int) MultiChoice {
	selected := 0
	if chosen >= 0 {
		selected = chosen
	}
	return MultiChoice{
		Prompt:   prompt,
		Choices:  choices,
		Selected: selected,
		Chosen:   chosen,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Choices)-1 {
			m.Selected++
		}
	case "a", "b", "c":
		m.Selected = int(kmsg.String()[0] - 'a')
		m.Chosen = m.Selected
	case "enter":
		m.Chosen = m.Selected
	}

	return m, nil
}

// View renders the question and its three options.
func (m MultiChoice) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(m.Prompt) + "\n\n"

	for i, opt := range m.Choices {
		label := string(bank.Choices[i])
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}

		marker := " "
		if i == m.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		case i == m.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// HasChosen reports whether an option has been confirmed.
func (m MultiChoice) HasChosen() bool {
	return m.Chosen >= 0
}

// ChosenChoice returns the confirmed choice label.
func (m MultiChoice) ChosenChoice() bank.Choice {
	if m.Chosen < 0 || m.Chosen >= len(bank.Choices) {
		return ""
	}
	return bank.Choices[m.Chosen]
}
