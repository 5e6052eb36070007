package exam

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tlevesque/amfprep/internal/bank"
)

// Phase is the lifecycle phase of an exam session.
type Phase int

const (
	PhaseNotStarted         Phase = iota // no working set drawn yet
	PhasePresenting                      // questions are being shown and answered
	PhaseAwaitingValidation              // user asked to finish, confirmation pending
	PhaseFinished                        // scored; report available
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhasePresenting:
		return "presenting"
	case PhaseAwaitingValidation:
		return "awaiting-validation"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// Ledger is the persistence interface for previously-used question ids.
// Implemented by store.Ledger.
type Ledger interface {
	Load(ctx context.Context, user string) (map[string]bool, error)
	MarkUsed(ctx context.Context, user string, ids []string) error
	Reset(ctx context.Context, user string) error
}

// QuestionView is what the UI gets to render for one position. It never
// carries the correct choice.
type QuestionView struct {
	Position int
	Total    int
	Category bank.Category
	Prompt   string
	Choices  []string // A, B, C texts in order
}

// Session is the exam state machine for a single user. All state lives
// here and is initialized exactly once, in Start; the UI drives the
// session through discrete commands and never mutates it directly.
//
// A Session is not safe for concurrent use; the application runs one
// synchronous session per user at a time.
type Session struct {
	id      string
	user    string
	bank    *bank.Bank
	ledger  Ledger
	quotas  QuotaSet
	sampler *Sampler

	phase   Phase
	working []bank.Question
	answers map[int]bank.Choice
	report  *Report
}

// Option configures a Session.
type Option func(*Session)

// WithSampler replaces the default sampler. Tests use this to inject a
// seeded random source.
func WithSampler(s *Sampler) Option {
	return func(sess *Session) { sess.sampler = s }
}

// NewSession creates a session in the not-started phase.
func NewSession(b *bank.Bank, l Ledger, user string, quotas QuotaSet, opts ...Option) *Session {
	s := &Session{
		user:    user,
		bank:    b,
		ledger:  l,
		quotas:  quotas,
		sampler: NewSampler(),
		phase:   PhaseNotStarted,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start draws the working set and begins presenting. On any failure the
// session stays in the not-started phase with no partial state.
func (s *Session) Start(ctx context.Context) error {
	if s.phase != PhaseNotStarted {
		return &IllegalTransitionError{From: s.phase, Attempted: "start"}
	}

	used, err := s.ledger.Load(ctx, s.user)
	if err != nil {
		return fmt.Errorf("load used questions: %w", err)
	}

	working, err := s.sampler.Draw(s.bank, used, s.quotas)
	if err != nil {
		return fmt.Errorf("sampling failed: %w", err)
	}

	s.id = uuid.NewString()
	s.working = working
	s.answers = make(map[int]bank.Choice, len(working))
	s.report = nil
	s.phase = PhasePresenting
	return nil
}

// Present returns the view for one working-set position.
func (s *Session) Present(pos int) (QuestionView, error) {
	if s.phase != PhasePresenting {
		return QuestionView{}, &IllegalTransitionError{From: s.phase, Attempted: "present"}
	}
	if pos < 0 || pos >= len(s.working) {
		return QuestionView{}, &OutOfRangeError{Position: pos, Length: len(s.working)}
	}
	q := s.working[pos]
	return QuestionView{
		Position: pos,
		Total:    len(s.working),
		Category: q.Category,
		Prompt:   q.Prompt,
		Choices:  []string{q.ChoiceA, q.ChoiceB, q.ChoiceC},
	}, nil
}

// RecordAnswer stores the choice for a position, overwriting any earlier
// answer. Re-answering is allowed until submission.
func (s *Session) RecordAnswer(pos int, choice bank.Choice) error {
	if s.phase != PhasePresenting {
		return &IllegalTransitionError{From: s.phase, Attempted: "record-answer"}
	}
	if pos < 0 || pos >= len(s.working) {
		return &OutOfRangeError{Position: pos, Length: len(s.working)}
	}
	if !choice.Valid() {
		return &InvalidChoiceError{Choice: choice}
	}
	s.answers[pos] = choice
	return nil
}

// RequestValidation moves the session into the confirmation step before
// final submission.
func (s *Session) RequestValidation() error {
	if s.phase != PhasePresenting {
		return &IllegalTransitionError{From: s.phase, Attempted: "request-validation"}
	}
	s.phase = PhaseAwaitingValidation
	return nil
}

// CancelValidation returns to presenting without scoring.
func (s *Session) CancelValidation() error {
	if s.phase != PhaseAwaitingValidation {
		return &IllegalTransitionError{From: s.phase, Attempted: "cancel-validation"}
	}
	s.phase = PhasePresenting
	return nil
}

// Submit scores the attempt and marks the working set as used. Unanswered
// positions are scored as incorrect; submission is never blocked on them.
//
// When persisting the used ids fails, the session still finishes and the
// report is returned alongside the error so the result is not lost.
func (s *Session) Submit(ctx context.Context) (*Report, error) {
	if s.phase != PhasePresenting && s.phase != PhaseAwaitingValidation {
		return nil, &IllegalTransitionError{From: s.phase, Attempted: "submit"}
	}

	report := Score(s.working, s.answers, s.quotas)
	report.SessionID = s.id
	report.User = s.user
	s.report = report
	s.phase = PhaseFinished

	ids := make([]string, len(s.working))
	for i, q := range s.working {
		ids[i] = q.ID
	}
	if err := s.ledger.MarkUsed(ctx, s.user, ids); err != nil {
		return report, fmt.Errorf("mark questions used: %w", err)
	}
	return report, nil
}

// Reset clears the persisted ledger and returns the session to the
// not-started phase, so a fresh exam can redraw any question.
func (s *Session) Reset(ctx context.Context) error {
	if s.phase != PhaseFinished {
		return &IllegalTransitionError{From: s.phase, Attempted: "reset"}
	}
	if err := s.ledger.Reset(ctx, s.user); err != nil {
		return fmt.Errorf("reset used questions: %w", err)
	}
	s.id = ""
	s.working = nil
	s.answers = nil
	s.report = nil
	s.phase = PhaseNotStarted
	return nil
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// ID returns the session id, empty before the first Start.
func (s *Session) ID() string { return s.id }

// User returns the identity the session was created for.
func (s *Session) User() string { return s.user }

// Len returns the working-set size.
func (s *Session) Len() int { return len(s.working) }

// Answer returns the recorded choice for a position, if any.
func (s *Session) Answer(pos int) (bank.Choice, bool) {
	c, ok := s.answers[pos]
	return c, ok
}

// AnsweredCount returns how many positions have a recorded answer.
func (s *Session) AnsweredCount() int { return len(s.answers) }

// Report returns the scoring result, nil until a successful Submit.
func (s *Session) Report() *Report { return s.report }
