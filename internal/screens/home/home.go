package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tlevesque/amfprep/internal/bank"
	"github.com/tlevesque/amfprep/internal/exam"
	"github.com/tlevesque/amfprep/internal/router"
	"github.com/tlevesque/amfprep/internal/screen"
	examscreen "github.com/tlevesque/amfprep/internal/screens/exam"
	"github.com/tlevesque/amfprep/internal/ui/components"
	"github.com/tlevesque/amfprep/internal/ui/theme"
)

// Deps carries everything the home screen and its children need.
type Deps struct {
	Bank   *bank.Bank
	Ledger exam.Ledger
	Quotas exam.QuotaSet
	User   string
}

// categoryStat is one row of the supply table.
type categoryStat struct {
	category  bank.Category
	available int
	unused    int
	required  int
}

// HomeScreen is the main menu: bank supply overview plus navigation.
type HomeScreen struct {
	deps    Deps
	menu    components.Menu
	stats   []categoryStat
	loadErr error
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. The ledger is read here so the supply
// overview reflects the latest completed exam.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	used, err := deps.Ledger.Load(context.Background(), deps.User)
	if err != nil {
		h.loadErr = err
		used = map[string]bool{}
	}

	for _, cat := range deps.Quotas.Categories() {
		questions := deps.Bank.ByCategory(cat)
		unused := 0
		for _, q := range questions {
			if !used[q.ID] {
				unused++
			}
		}
		h.stats = append(h.stats, categoryStat{
			category:  cat,
			available: len(questions),
			unused:    unused,
			required:  deps.Quotas[cat].Required,
		})
	}

	startNote := ""
	for _, st := range h.stats {
		if st.unused < st.required {
			startNote = "supply is short, the draw will fail"
			break
		}
	}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "Start mock exam", Note: startNote, Action: h.startExam},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) startExam() tea.Cmd {
	deps := h.deps
	sess := exam.NewSession(deps.Bank, deps.Ledger, deps.User, deps.Quotas)
	homeFn := func() screen.Screen { return New(deps) }
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: examscreen.New(sess, homeFn)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// User reports the identity this screen was opened for.
func (h *HomeScreen) User() string {
	return h.deps.User
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("Révision AMF"))
	sections = append(sections, theme.Subtitle.Render(
		fmt.Sprintf("question bank: %d questions", h.deps.Bank.Len())))
	sections = append(sections, "")

	for _, st := range h.stats {
		line := fmt.Sprintf("Category %s   %3d unused of %3d   (%d drawn per exam)",
			st.category, st.unused, st.available, st.required)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if st.unused < st.required {
			line += "   not enough for a full exam"
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		sections = append(sections, style.Render(line))
	}

	if h.loadErr != nil {
		sections = append(sections, theme.Hint.Render("history unavailable: "+h.loadErr.Error()))
	}

	sections = append(sections, "", h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
