package picture

import (
	"errors"
	"fmt"
)

// Sentinel errors for picture construction and lifecycle failures.
var (
	// ErrNoCandidates indicates an empty candidate list was supplied.
	ErrNoCandidates = errors.New("no image candidates")

	// ErrNoDensityMatch indicates no raster candidate has the resolved density,
	// so initial selection has nothing to seed from.
	ErrNoDensityMatch = errors.New("no candidate matches resolved density")

	// ErrInvalidCandidate indicates a candidate is missing a required field or
	// carries a non-positive dimension.
	ErrInvalidCandidate = errors.New("invalid image candidate")

	// ErrAlreadyAttached indicates Attach was called on an attached controller.
	ErrAlreadyAttached = errors.New("picture already attached")

	// ErrDetached indicates an operation on a torn-down controller.
	ErrDetached = errors.New("picture detached")
)

// ConfigurationError reports a candidate set that cannot produce a selection.
// It unwraps to one of ErrNoCandidates, ErrNoDensityMatch or ErrInvalidCandidate.
type ConfigurationError struct {
	// Index is the offending candidate position, or -1 when the error concerns
	// the set as a whole.
	Index int

	// Field names the offending candidate field, if any.
	Field string

	// Density is the resolved density for ErrNoDensityMatch.
	Density float64

	Err error
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Index >= 0 && e.Field != "":
		return fmt.Sprintf("picture configuration: candidate %d: %s: %v", e.Index, e.Field, e.Err)
	case errors.Is(e.Err, ErrNoDensityMatch):
		return fmt.Sprintf("picture configuration: %v (%g)", e.Err, e.Density)
	default:
		return fmt.Sprintf("picture configuration: %v", e.Err)
	}
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
