package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for navigation outside [0, len(questions)].
	ErrOutOfRange = errors.New("question index out of range")

	// ErrNotAvailable is returned when there is no current question.
	ErrNotAvailable = errors.New("no current question")

	// ErrNoRecords indicates a question set with zero usable records.
	ErrNoRecords = errors.New("no usable records")
)

// LoadError indicates a question set could not be loaded.
type LoadError struct {
	SetID string
	Err   error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load question set %q: %v", e.SetID, e.Err)
	}
	return fmt.Sprintf("load question set %q", e.SetID)
}

func (e *LoadError) Unwrap() error { return e.Err }
