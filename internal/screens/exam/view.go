package exam

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	examcore "github.com/tlevesque/amfprep/internal/exam"
	"github.com/tlevesque/amfprep/internal/ui/components"
	"github.com/tlevesque/amfprep/internal/ui/theme"
)

func (e *ExamScreen) View(width, height int) string {
	switch {
	case e.errMsg != "":
		return e.renderError(width, height)
	case e.session.Phase() == examcore.PhaseAwaitingValidation:
		return e.renderConfirmFinish(width, height)
	case e.session.Phase() == examcore.PhasePresenting:
		return e.renderQuestion(width, height)
	}
	return e.renderLoading(width, height)
}

func (e *ExamScreen) renderLoading(width, height int) string {
	msg := theme.Hint.Render("Drawing your exam questions...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

func (e *ExamScreen) renderError(width, height int) string {
	content := strings.Join([]string{
		theme.Incorrect.Render("Cannot run the exam"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Width(min(width-8, 70)).Render(e.errMsg),
		"",
		theme.Hint.Render("press Esc to go back"),
	}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (e *ExamScreen) renderConfirmFinish(width, height int) string {
	answered := e.session.AnsweredCount()
	total := e.session.Len()

	warn := ""
	if answered < total {
		warn = lipgloss.NewStyle().Foreground(theme.Accent).Render(
			fmt.Sprintf("%d questions are unanswered and will count as wrong.", total-answered))
	}

	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Finish the exam?"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("You answered %d of %d questions.", answered, total)),
	}
	if warn != "" {
		lines = append(lines, warn)
	}
	lines = append(lines, "", theme.Hint.Render("Y submit · N keep answering"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(strings.Join(lines, "\n")))
}

func (e *ExamScreen) renderQuestion(width, height int) string {
	total := e.session.Len()
	if total == 0 {
		return e.renderLoading(width, height)
	}

	header := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Question %d of %d · category %s", e.pos+1, total, e.view.Category))

	progress := components.NewProgressBar(
		"Answered",
		float64(e.session.AnsweredCount())/float64(total),
		true,
		min(width-8, 60),
	)

	card := theme.Card.Width(min(width-8, 76)).Render(e.mc.View())

	content := strings.Join([]string{header, "", card, "", progress.View()}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
