// SPDX-License-Identifier: MIT
// Package rational: sentinel error set.
// Callers match with errors.Is; call sites may wrap with fmt.Errorf("ctx: %w", ErrX).

package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDenominator is returned when a fraction is built with a zero denominator
	// (the degenerate 0/0 input is normalised to 0/1 and is not an error).
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrSyntax indicates that Parse could not read the textual form.
	ErrSyntax = errors.New("rational: invalid syntax")

	// ErrOverflow signals that an intermediate value left the int64 range.
	ErrOverflow = errors.New("rational: int64 overflow")

	// ErrDivisionByZero is raised (as a panic payload) by Quo with a zero divisor.
	ErrDivisionByZero = errors.New("rational: division by zero")
)

// OverflowError is the panic payload used when int64 arithmetic overflows.
// It records the operation so the recovered error stays diagnosable.
type OverflowError struct {
	Op   string // "add", "mul", ...
	A, B int64  // operands that overflowed
}

// Error implements error.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("rational: %s(%d, %d): int64 overflow", e.Op, e.A, e.B)
}

// Unwrap exposes ErrOverflow for errors.Is.
func (e *OverflowError) Unwrap() error { return ErrOverflow }

// Recover converts a rational overflow or division-by-zero panic into *errp.
// Any other panic is re-raised untouched.
//
// Usage (named error result required):
//
//	func Op(...) (res T, err error) {
//		defer rational.Recover(&err)
//		...
//	}
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok && (errors.Is(e, ErrOverflow) || errors.Is(e, ErrDivisionByZero)) {
		*errp = e
		return
	}
	panic(r)
}
