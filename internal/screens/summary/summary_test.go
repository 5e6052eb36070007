package summary

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/tlevesque/amfprep/internal/bank"
	"github.com/tlevesque/amfprep/internal/exam"
	"github.com/tlevesque/amfprep/internal/router"
	"github.com/tlevesque/amfprep/internal/screen"
)

type stubLedger struct {
	resetCalls int
}

func (l *stubLedger) Load(ctx context.Context, user string) (map[string]bool, error) {
	return map[string]bool{}, nil
}

func (l *stubLedger) MarkUsed(ctx context.Context, user string, ids []string) error {
	return nil
}

func (l *stubLedger) Reset(ctx context.Context, user string) error {
	l.resetCalls++
	return nil
}

func testBank(t *testing.T) *bank.Bank {
	t.Helper()
	csv := `ID;Categorie;Question;Réponse A;Réponse B;Réponse C;Bonne réponse
A-1;A;Question one?;yes;no;maybe;A
A-2;A;Question two?;yes;no;maybe;B
C-1;C;Question three?;yes;no;maybe;C
C-2;C;Question four?;yes;no;maybe;A
`
	b, err := bank.LoadReader(strings.NewReader(csv), bank.Options{})
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	return b
}

// finishedSession runs a two-question exam to completion: one answer
// right, one wrong, so the report fails the 100% threshold on C.
func finishedSession(t *testing.T) (*exam.Session, *exam.Report, *stubLedger) {
	t.Helper()
	quotas := exam.QuotaSet{
		bank.CategoryA: {Required: 1, Threshold: 50},
		bank.CategoryC: {Required: 1, Threshold: 100},
	}
	ledger := &stubLedger{}
	sess := exam.NewSession(testBank(t), ledger, "tester", quotas)

	ctx := context.Background()
	if err := sess.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for pos := 0; pos < sess.Len(); pos++ {
		view, err := sess.Present(pos)
		if err != nil {
			t.Fatalf("Present(%d): %v", pos, err)
		}
		choice := bank.ChoiceA
		if view.Category == bank.CategoryC {
			choice = bank.ChoiceB // wrong for both C questions
		}
		if err := sess.RecordAnswer(pos, choice); err != nil {
			t.Fatalf("RecordAnswer(%d): %v", pos, err)
		}
	}
	report, err := sess.Submit(ctx)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	return sess, report, ledger
}

func stubHome() screen.Screen {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestSummaryScreen_Title(t *testing.T) {
	sess, report, _ := finishedSession(t)
	s := New(sess, report, "", stubHome)
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_ShowsVerdictAndCategories(t *testing.T) {
	sess, report, _ := finishedSession(t)
	s := New(sess, report, "", stubHome)

	view := s.View(100, 40)
	if !strings.Contains(view, "FAILED") {
		t.Error("expected FAILED verdict in view")
	}
	if !strings.Contains(view, "Category A") || !strings.Contains(view, "Category C") {
		t.Error("expected one score line per category")
	}
}

func TestSummaryScreen_ShowsPersistWarning(t *testing.T) {
	sess, report, _ := finishedSession(t)
	s := New(sess, report, "disk full", stubHome)

	view := s.View(100, 40)
	if !strings.Contains(view, "history not saved") {
		t.Error("expected persist warning in view")
	}
}

func TestSummaryScreen_ResetConfirmation(t *testing.T) {
	sess, report, _ := finishedSession(t)
	s := New(sess, report, "", stubHome)

	s.Update(keyPress('r'))
	view := s.View(100, 40)
	if !strings.Contains(view, "Start another mock exam?") {
		t.Error("expected reset confirmation after r")
	}

	s.Update(keyPress('n'))
	view = s.View(100, 40)
	if strings.Contains(view, "Start another mock exam?") {
		t.Error("expected n to cancel the reset confirmation")
	}
}

func TestSummaryScreen_ResetClearsHistoryAndGoesHome(t *testing.T) {
	sess, report, ledger := finishedSession(t)
	s := New(sess, report, "", stubHome)

	s.Update(keyPress('r'))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a reset command on y")
	}

	msg := cmd()
	done, ok := msg.(resetDoneMsg)
	if !ok {
		t.Fatalf("expected resetDoneMsg, got %T", msg)
	}
	if done.Err != nil {
		t.Fatalf("reset failed: %v", done.Err)
	}
	if ledger.resetCalls != 1 {
		t.Errorf("reset calls = %d, want 1", ledger.resetCalls)
	}
	if sess.Phase() != exam.PhaseNotStarted {
		t.Errorf("phase after reset = %v, want NotStarted", sess.Phase())
	}

	_, cmd = s.Update(done)
	if cmd == nil {
		t.Fatal("expected a navigation command after reset")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg back to home")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	sess, report, _ := finishedSession(t)
	s := New(sess, report, "", stubHome)

	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(s.KeyHints()))
	}
	s.Update(keyPress('r'))
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length while confirming = %d, want 2", len(s.KeyHints()))
	}
}
