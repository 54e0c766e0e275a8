package nn

import (
	"errors"
	"fmt"
)

// ErrOutputUnwritten reports that a Model evaluation ran every step without
// any of them writing register "O".
var ErrOutputUnwritten = errors.New(`evaluation finished without writing register "O"`)

// WidthMismatchError reports an output register declared with two different
// widths across architecture steps.
type WidthMismatchError struct {
	Register string
	Got      int
	Want     int
}

func (e *WidthMismatchError) Error() string {
	return fmt.Sprintf("register %q width mismatch (got %d, expected %d)", e.Register, e.Got, e.Want)
}

// RegisterSpecError reports a step input spec that names neither a single
// register nor a pair of registers.
type RegisterSpecError struct {
	Spec []string
}

func (e *RegisterSpecError) Error() string {
	return fmt.Sprintf("input spec %q must name one register or a pair of registers", e.Spec)
}

// UnsetRegisterError reports a read from a register that no earlier step
// has written in the current evaluation.
type UnsetRegisterError struct {
	Register string
}

func (e *UnsetRegisterError) Error() string {
	return fmt.Sprintf("register %q read before any step wrote it", e.Register)
}

// InputWidthError reports an input vector whose length does not match the
// expected input width.
type InputWidthError struct {
	Got  int
	Want int
}

func (e *InputWidthError) Error() string {
	return fmt.Sprintf("input width mismatch (got %d values, expected %d)", e.Got, e.Want)
}
