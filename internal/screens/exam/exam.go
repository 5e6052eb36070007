package exam

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/tlevesque/amfprep/internal/bank"
	examcore "github.com/tlevesque/amfprep/internal/exam"
	"github.com/tlevesque/amfprep/internal/router"
	"github.com/tlevesque/amfprep/internal/screen"
	"github.com/tlevesque/amfprep/internal/screens/summary"
	"github.com/tlevesque/amfprep/internal/ui/components"
	"github.com/tlevesque/amfprep/internal/ui/layout"
)

// ExamScreen presents one question at a time and drives the session
// state machine. All exam state lives in the session; the screen only
// tracks which position is on display.
type ExamScreen struct {
	session     *examcore.Session
	homeFactory func() screen.Screen

	pos    int
	view   examcore.QuestionView
	mc     components.MultiChoice
	errMsg string
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)

// New creates an ExamScreen for a not-yet-started session.
func New(session *examcore.Session, homeFactory func() screen.Screen) *ExamScreen {
	return &ExamScreen{
		session:     session,
		homeFactory: homeFactory,
	}
}

func (e *ExamScreen) Init() tea.Cmd {
	return func() tea.Msg {
		return sessionStartedMsg{Err: e.session.Start(context.Background())}
	}
}

func (e *ExamScreen) Title() string {
	return "Mock Exam"
}

func (e *ExamScreen) KeyHints() []layout.KeyHint {
	if e.session.Phase() == examcore.PhaseAwaitingValidation {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Keep answering"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Navigate"},
		{Key: "F", Description: "Finish"},
	}
}

func (e *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		return e.handleStarted(msg)
	case submittedMsg:
		return e.handleSubmitted(msg)
	case tea.KeyMsg:
		return e.handleKey(msg)
	}
	return e, nil
}

func (e *ExamScreen) handleStarted(msg sessionStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		e.errMsg = msg.Err.Error()
		return e, nil
	}
	return e, e.show(0)
}

func (e *ExamScreen) handleSubmitted(msg submittedMsg) (screen.Screen, tea.Cmd) {
	if msg.Report == nil {
		e.errMsg = msg.Err.Error()
		return e, nil
	}

	warn := ""
	if msg.Err != nil {
		warn = msg.Err.Error()
	}
	next := summary.New(e.session, msg.Report, warn, e.homeFactory)
	return e, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (e *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if e.errMsg != "" {
		return e, nil // only the global esc/quit keys apply
	}

	if e.session.Phase() == examcore.PhaseAwaitingValidation {
		switch msg.String() {
		case "y", "enter":
			return e, e.submit()
		case "n":
			if err := e.session.CancelValidation(); err != nil {
				e.errMsg = err.Error()
			}
			return e, nil
		}
		return e, nil
	}

	if e.session.Phase() != examcore.PhasePresenting {
		return e, nil
	}

	switch msg.String() {
	case "left", "h":
		return e, e.show(e.pos - 1)
	case "right", "l":
		return e, e.show(e.pos + 1)
	case "f":
		if err := e.session.RequestValidation(); err != nil {
			e.errMsg = err.Error()
		}
		return e, nil
	}

	var cmd tea.Cmd
	e.mc, cmd = e.mc.Update(msg)
	if e.mc.HasChosen() {
		if err := e.session.RecordAnswer(e.pos, e.mc.ChosenChoice()); err != nil {
			e.errMsg = err.Error()
			return e, nil
		}
	}

	// Enter confirms the highlighted option and moves on; the last
	// question rolls into the finish confirmation.
	if msg.String() == "enter" && e.mc.HasChosen() {
		if e.pos+1 < e.session.Len() {
			return e, e.show(e.pos + 1)
		}
		if err := e.session.RequestValidation(); err != nil {
			e.errMsg = err.Error()
		}
		return e, nil
	}

	return e, cmd
}

// show moves the display to a working-set position, clamped to range,
// and seeds the selector with any previously recorded answer.
func (e *ExamScreen) show(pos int) tea.Cmd {
	if pos < 0 || pos >= e.session.Len() {
		return nil
	}

	view, err := e.session.Present(pos)
	if err != nil {
		e.errMsg = err.Error()
		return nil
	}

	chosen := -1
	if c, ok := e.session.Answer(pos); ok {
		for i, label := range bank.Choices {
			if c == label {
				chosen = i
				break
			}
		}
	}

	e.pos = pos
	e.view = view
	e.mc = components.NewMultiChoice(view.Prompt, view.Choices, chosen)
	return nil
}

func (e *ExamScreen) submit() tea.Cmd {
	return func() tea.Msg {
		report, err := e.session.Submit(context.Background())
		return submittedMsg{Report: report, Err: err}
	}
}
