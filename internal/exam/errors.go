package exam

import (
	"fmt"

	"github.com/tlevesque/amfprep/internal/bank"
)

// InsufficientSupplyError is returned by the sampler when a category has
// fewer unused questions than its quota requires. The draw is all-or-nothing,
// so this aborts the whole sample.
type InsufficientSupplyError struct {
	Category bank.Category
	Have     int
	Need     int
}

func (e *InsufficientSupplyError) Error() string {
	return fmt.Sprintf("category %s: %d unused questions available, %d required", e.Category, e.Have, e.Need)
}

// IllegalTransitionError is returned when a session operation is invoked
// in a phase that does not allow it. Callers are expected to treat this
// as a programming error, not a recoverable condition.
type IllegalTransitionError struct {
	From      Phase
	Attempted string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition: %s while %s", e.Attempted, e.From)
}

// OutOfRangeError is returned when a working-set position does not exist.
type OutOfRangeError struct {
	Position int
	Length   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("position %d out of range (working set has %d questions)", e.Position, e.Length)
}

// InvalidChoiceError is returned when a submitted choice is not A, B or C.
type InvalidChoiceError struct {
	Choice bank.Choice
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid choice %q: must be one of A, B, C", string(e.Choice))
}
