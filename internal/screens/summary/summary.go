package summary

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tlevesque/amfprep/internal/exam"
	"github.com/tlevesque/amfprep/internal/router"
	"github.com/tlevesque/amfprep/internal/screen"
	"github.com/tlevesque/amfprep/internal/ui/components"
	"github.com/tlevesque/amfprep/internal/ui/layout"
	"github.com/tlevesque/amfprep/internal/ui/theme"
)

// visibleOutcomes is how many review rows fit on screen at once.
const visibleOutcomes = 8

// resetDoneMsg reports the outcome of clearing the question history.
type resetDoneMsg struct {
	Err error
}

// SummaryScreen shows the score report and the per-question review, and
// offers a fresh mock exam via the reset transition.
type SummaryScreen struct {
	session     *exam.Session
	report      *exam.Report
	persistWarn string
	homeFactory func() screen.Screen

	review          []exam.Outcome
	scroll          int
	confirmingReset bool
	errMsg          string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a finished session. persistWarn is a
// non-fatal message shown when marking questions used failed.
func New(session *exam.Session, report *exam.Report, persistWarn string, homeFactory func() screen.Screen) *SummaryScreen {
	s := &SummaryScreen{
		session:     session,
		report:      report,
		persistWarn: persistWarn,
		homeFactory: homeFactory,
	}
	// The review is grouped by category, not in draw order.
	for _, cs := range report.Categories {
		s.review = append(s.review, report.OutcomesFor(cs.Category)...)
	}
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.confirmingReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Clear history"},
			{Key: "N", Description: "Keep it"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Review"},
		{Key: "R", Description: "New exam (clears history)"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resetDoneMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.confirmingReset = false
			return s, nil
		}
		home := s.homeFactory()
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: home}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SummaryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.confirmingReset {
		switch msg.String() {
		case "y", "enter":
			return s, s.reset()
		case "n":
			s.confirmingReset = false
		}
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		if s.scroll < len(s.review)-visibleOutcomes {
			s.scroll++
		}
	case "r":
		s.confirmingReset = true
	}
	return s, nil
}

func (s *SummaryScreen) reset() tea.Cmd {
	return func() tea.Msg {
		return resetDoneMsg{Err: s.session.Reset(context.Background())}
	}
}

func (s *SummaryScreen) View(width, height int) string {
	if s.confirmingReset {
		return s.renderResetConfirm(width, height)
	}

	r := s.report
	var b strings.Builder

	verdict := theme.Correct.Render("PASSED")
	if !r.Passed {
		verdict = theme.Incorrect.Render("FAILED")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render("Exam finished: ")+verdict))
	b.WriteString("\n\n")

	totalLine := fmt.Sprintf("Total: %d/%d correct (%.1f%%)", r.Total, r.Required, r.Percent)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(totalLine)))
	b.WriteString("\n\n")

	barWidth := min(width-20, 50)
	for _, cs := range r.Categories {
		label := fmt.Sprintf("Category %s  %3d/%3d (need %.0f%%)",
			cs.Category, cs.Correct, cs.Required, cs.Threshold)
		bar := components.NewProgressBar(label, cs.Percent/100, true, barWidth)

		line := bar.View()
		if cs.Passed {
			line += "  " + theme.Correct.Render("✓")
		} else {
			line += "  " + theme.Incorrect.Render("✗")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
		answeredLine := theme.Hint.Render(
			fmt.Sprintf("answered %d of %d", cs.Answered, cs.Required))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, answeredLine))
		b.WriteString("\n")
	}

	if s.persistWarn != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(
				"history not saved: "+s.persistWarn)))
		b.WriteString("\n")
	}
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(s.errMsg)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Review")))
	b.WriteString("\n")
	b.WriteString(s.renderOutcomes(width))

	return b.String()
}

func (s *SummaryScreen) renderOutcomes(width int) string {
	end := min(s.scroll+visibleOutcomes, len(s.review))

	var b strings.Builder
	for i := s.scroll; i < end; i++ {
		o := s.review[i]

		mark := theme.Correct.Render("✓")
		if !o.Correct {
			mark = theme.Incorrect.Render("✗")
		}

		chosen := string(o.Chosen)
		if !o.Answered {
			chosen = "—"
		}

		prompt := o.Question.Prompt
		if maxw := width - 30; maxw > 10 && len(prompt) > maxw {
			prompt = prompt[:maxw-1] + "…"
		}

		line := fmt.Sprintf("%s [%s] %s   (yours: %s, correct: %s)",
			mark, o.Question.Category, prompt, chosen, o.Question.Correct)
		b.WriteString("  " + line + "\n")
	}

	if end < len(s.review) {
		b.WriteString(theme.Hint.Render(
			fmt.Sprintf("  … %d more (scroll with ↑↓)", len(s.review)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *SummaryScreen) renderResetConfirm(width, height int) string {
	content := theme.Card.Render(strings.Join([]string{
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Start another mock exam?"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Render(
			"This clears your question history, so any question"),
		lipgloss.NewStyle().Foreground(theme.Text).Render(
			"may be drawn again."),
		"",
		theme.Hint.Render("Y clear and continue · N keep history"),
	}, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
