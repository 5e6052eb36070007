package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tlevesque/amfprep/internal/router"
	"github.com/tlevesque/amfprep/internal/screen"
	"github.com/tlevesque/amfprep/internal/ui/components"
	"github.com/tlevesque/amfprep/internal/ui/layout"
	"github.com/tlevesque/amfprep/internal/ui/theme"
)

// WelcomeScreen asks for the user identity before anything else. The
// identity is only a ledger key; any non-empty text is accepted.
type WelcomeScreen struct {
	input       components.TextInput
	homeFactory func(user string) screen.Screen
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by
// homeFactory once a name is entered.
func New(homeFactory func(user string) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		input:       components.NewTextInput("your name", 40),
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		user := w.input.Value()
		if user == "" {
			w.input.MarkInvalid()
			return w, nil
		}
		home := w.homeFactory(user)
		return w, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: home}
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	title := theme.Title.Render("Révision AMF")
	subtitle := theme.Subtitle.Render("mock exams for the AMF certification")

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render("Who is revising today?")

	card := theme.Card.Render(strings.Join([]string{
		prompt,
		"",
		w.input.View(),
	}, "\n"))

	content := strings.Join([]string{title, subtitle, "", card}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
