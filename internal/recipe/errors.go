package recipe

import (
	"errors"
	"fmt"
)

var (
	ErrNoBase        = errors.New("recipe has no base image (from)")
	ErrUnknownFormat = errors.New("unknown recipe format")
	ErrStepShape     = errors.New("instruction must have exactly one keyword")
)

// StepError reports an invalid entry in a recipe's instruction list.
type StepError struct {
	Index int   // Position in the instruction list (0-indexed)
	Err   error // Underlying error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("instruction %d: %v", e.Index+1, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
