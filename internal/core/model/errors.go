package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for pedigree validation. All are detected eagerly at load
// or reconstruction time; malformed input is a hard failure, never repaired.
var (
	// ErrDuplicateIdentifier is returned when two input rows share an id.
	ErrDuplicateIdentifier = errors.New("duplicate individual identifier")

	// ErrDanglingParentReference is returned when a parent id is referenced
	// but no row defines it.
	ErrDanglingParentReference = errors.New("parent referenced but never defined")

	// ErrInconsistentParentSex is returned when a parent's recorded sex
	// contradicts its role (a female father, a male mother).
	ErrInconsistentParentSex = errors.New("parent sex inconsistent with role")

	// ErrCyclicPedigree is returned when the parent relation contains a
	// cycle, i.e. some individual is their own ancestor.
	ErrCyclicPedigree = errors.New("pedigree contains a cycle")

	// ErrUnknownProband is returned when a reconstruction request names an
	// id absent from the source pedigree.
	ErrUnknownProband = errors.New("proband not present in pedigree")
)

// ValidationError wraps a sentinel error with the offending individual id.
type ValidationError struct {
	Ind string
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ind %q: %v", e.Ind, e.Err)
}

// Unwrap returns the sentinel error for errors.Is support.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(ind string, err error) *ValidationError {
	return &ValidationError{Ind: ind, Err: err}
}
