package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tlevesque/amfprep/internal/bank"
	"github.com/tlevesque/amfprep/internal/exam"
	"github.com/tlevesque/amfprep/internal/router"
	"github.com/tlevesque/amfprep/internal/screen"
	"github.com/tlevesque/amfprep/internal/screens/home"
	"github.com/tlevesque/amfprep/internal/screens/welcome"
	"github.com/tlevesque/amfprep/internal/ui/layout"
)

// Options carries the wired dependencies for a run of the app.
type Options struct {
	Bank   *bank.Bank
	Ledger exam.Ledger
	Quotas exam.QuotaSet
	// User preselects the identity. Empty means ask on the welcome
	// screen.
	User string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	user   string
	width  int
	height int
}

// newAppModel creates a new AppModel. A known user lands directly on
// home; otherwise the welcome screen asks first.
func newAppModel(opts Options) AppModel {
	homeFor := func(user string) screen.Screen {
		return home.New(home.Deps{
			Bank:   opts.Bank,
			Ledger: opts.Ledger,
			Quotas: opts.Quotas,
			User:   user,
		})
	}

	var initial screen.Screen
	if opts.User != "" {
		initial = homeFor(opts.User)
	} else {
		initial = welcome.New(homeFor)
	}

	return AppModel{
		router: router.New(initial),
		user:   opts.User,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)

	// The welcome screen replaces itself with a user-bound home, so the
	// active screen is where the identity surfaces.
	if up, ok := m.router.Active().(screen.UserProvider); ok {
		m.user = up.User()
	}

	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.user, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
