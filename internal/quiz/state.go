package quiz

// DefaultExplanation is shown when a question carries no explanation.
const DefaultExplanation = "No explanation available."

// Question is a single question record of a question set.
type Question struct {
	// Text is the prompt shown to the learner.
	Text string

	// Answer is the canonical correct response.
	Answer string

	// Explanation is shown alongside the revealed answer.
	Explanation string
}

// Status is derived from the position of Index within Questions.
type Status int

const (
	StatusEmpty    Status = iota // No set loaded or the set has no records
	StatusActive                 // A question is being answered
	StatusComplete               // Every question in the set has been passed
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusActive:
		return "active"
	case StatusComplete:
		return "complete"
	}
	return "unknown"
}

// State holds one learner's in-memory session.
type State struct {
	// ActiveSet is the identifier of the loaded question set ("" when none).
	ActiveSet string

	// Questions is the loaded set, possibly empty.
	Questions []Question

	// Index is the current question; len(Questions) means the set is exhausted.
	Index int

	// Draft is the not-yet-submitted answer text for the current question.
	Draft string

	// WrongAttempts counts incorrect submissions since Index last changed.
	WrongAttempts int

	// ShowAnswer is true while the canonical answer is revealed.
	ShowAnswer bool
}

// NewState returns a session with all-default values.
func NewState() *State {
	return &State{}
}

// Status reports the derived machine status.
func (s *State) Status() Status {
	switch {
	case len(s.Questions) == 0:
		return StatusEmpty
	case s.Index >= len(s.Questions):
		return StatusComplete
	default:
		return StatusActive
	}
}

// resetQuestion clears the per-question fields.
func (s *State) resetQuestion() {
	s.Draft = ""
	s.WrongAttempts = 0
	s.ShowAnswer = false
}
