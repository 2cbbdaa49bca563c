package quiz

import (
	"context"
	"errors"

	"github.com/abhisek/praclab/internal/answer"
)

// SetLoader loads a question set by identifier.
type SetLoader interface {
	Load(ctx context.Context, id string) ([]Question, error)
}

// Result is the outcome of a submission.
type Result struct {
	// Correct is true when the draft matched the canonical answer.
	Correct bool

	// Question is the record the draft was compared against.
	Question Question

	// WrongAttempts is the counter after the submission.
	WrongAttempts int
}

// Machine applies learner actions to a session State.
// It is not safe for concurrent use; one session has one owner.
type Machine struct {
	state  *State
	loader SetLoader
}

// NewMachine creates a Machine over state, loading sets through loader.
func NewMachine(state *State, loader SetLoader) *Machine {
	if state == nil {
		state = NewState()
	}
	return &Machine{state: state, loader: loader}
}

// SelectSet loads the set id and makes it active.
// Selecting the set that is already active is a no-op.
func (m *Machine) SelectSet(ctx context.Context, id string) error {
	if id != "" && id == m.state.ActiveSet {
		return nil
	}

	questions, err := m.loader.Load(ctx, id)

	m.state.Index = 0
	m.state.resetQuestion()

	if err != nil && !errors.Is(err, ErrNoRecords) {
		// An unreadable set leaves nothing active so the same id can be retried.
		m.state.ActiveSet = ""
		m.state.Questions = nil
		var loadErr *LoadError
		if !errors.As(err, &loadErr) {
			err = &LoadError{SetID: id, Err: err}
		}
		return err
	}

	m.state.ActiveSet = id
	m.state.Questions = questions
	if len(questions) == 0 {
		m.state.Questions = nil
		if err == nil {
			err = &LoadError{SetID: id, Err: ErrNoRecords}
		}
		return err
	}
	return nil
}

// GotoIndex moves to question i, where len(questions) means complete.
func (m *Machine) GotoIndex(i int) error {
	if i < 0 || i > len(m.state.Questions) {
		return ErrOutOfRange
	}
	if i == m.state.Index {
		return nil
	}
	m.state.Index = i
	m.state.resetQuestion()
	return nil
}

// Previous moves back one question. Returns false at the first question.
func (m *Machine) Previous() bool {
	if m.state.Index <= 0 {
		return false
	}
	return m.GotoIndex(m.state.Index-1) == nil
}

// Next moves forward one question. Returns false at the last question.
func (m *Machine) Next() bool {
	if m.state.Index >= len(m.state.Questions)-1 {
		return false
	}
	return m.GotoIndex(m.state.Index+1) == nil
}

// UpdateDraft replaces the in-progress answer.
func (m *Machine) UpdateDraft(text string) error {
	if m.state.Status() != StatusActive {
		return ErrNotAvailable
	}
	m.state.Draft = text
	return nil
}

// Submit checks the draft against the current question's answer.
// A correct answer advances to the next question, which may complete the set.
func (m *Machine) Submit() (Result, error) {
	q, err := m.CurrentQuestion()
	if err != nil {
		return Result{}, err
	}

	if !answer.IsCorrect(m.state.Draft, q.Answer) {
		m.state.WrongAttempts++
		return Result{Question: q, WrongAttempts: m.state.WrongAttempts}, nil
	}

	if err := m.GotoIndex(m.state.Index + 1); err != nil {
		return Result{}, err
	}
	return Result{Correct: true, Question: q}, nil
}

// ToggleShowAnswer reveals or hides the canonical answer.
func (m *Machine) ToggleShowAnswer() error {
	if m.state.Status() != StatusActive {
		return ErrNotAvailable
	}
	m.state.ShowAnswer = !m.state.ShowAnswer
	return nil
}

// CurrentQuestion returns the question being answered.
func (m *Machine) CurrentQuestion() (Question, error) {
	if m.state.Status() != StatusActive {
		return Question{}, ErrNotAvailable
	}
	return m.state.Questions[m.state.Index], nil
}

// Progress returns the 1-based current position and the set size.
func (m *Machine) Progress() (current, total int) {
	return m.state.Index + 1, len(m.state.Questions)
}

// IsFirst reports whether Previous is unavailable.
func (m *Machine) IsFirst() bool {
	return m.state.Index == 0
}

// IsLast reports whether Next is unavailable.
func (m *Machine) IsLast() bool {
	return m.state.Index >= len(m.state.Questions)-1
}

// ActiveSet returns the identifier of the selected set, or "" when none is.
func (m *Machine) ActiveSet() string {
	return m.state.ActiveSet
}

// Status reports the derived machine status.
func (m *Machine) Status() Status {
	return m.state.Status()
}

// Snapshot returns a copy of the session state.
func (m *Machine) Snapshot() State {
	s := *m.state
	s.Questions = append([]Question(nil), m.state.Questions...)
	return s
}
