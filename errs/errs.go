// Package errs defines the error taxonomy shared by every ecckit package.
//
// Errors are plain wrapped sentinels: callers compare with errors.Is against
// the Kind values below rather than type-asserting concrete structs.
package errs

import (
	"errors"
	"fmt"
)

// Kind identifies which of the taxonomy buckets an error belongs to.
type Kind error

var (
	// ParseError marks malformed hex/decimal/base64/WIF input.
	ParseError Kind = errors.New("parse error")

	// ScalarOutOfRange marks a private scalar that is zero or >= the group order.
	ScalarOutOfRange Kind = errors.New("scalar out of range")

	// ArithmeticError marks inversion of zero, a non-residue square root
	// requested as mandatory, or a violated bit-width precondition.
	ArithmeticError Kind = errors.New("arithmetic error")

	// CurveInvariantError marks a curve construction whose discriminant
	// condition fails.
	CurveInvariantError Kind = errors.New("curve invariant violated")

	// RngFailure marks a secure RNG that refused to supply bytes after
	// exhausting its retry budget.
	RngFailure Kind = errors.New("rng failure")

	// InternalInvariantError marks a violated programming precondition
	// (e.g. a zero denominator in the affine group law that its earlier
	// checks rule out). These are bugs, not recoverable conditions. The
	// montgomery conditional swap does not check for equal operands.
	InternalInvariantError Kind = errors.New("internal invariant violated")
)

// Wrap annotates kind with a message, preserving errors.Is(err, kind).
func Wrap(kind Kind, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), kind)
}
