package vector

import (
	"errors"
	"fmt"
)

// Conversion errors
var (
	// ErrArityMismatch is returned when a slice, sequence or binary payload
	// holds a different number of components than the target vector type.
	ErrArityMismatch = errors.New("vector: arity mismatch")
)

func checkArity(want, got int) error {
	if want != got {
		return fmt.Errorf("%w: want %d components, got %d", ErrArityMismatch, want, got)
	}
	return nil
}
