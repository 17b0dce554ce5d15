// Package digitseq: sentinel error set and payload-carrying error types.
// Every fallible operation in this package surfaces exactly one member of
// this closed taxonomy. Callers match the kind via errors.Is against the
// sentinels and recover the offending payload via errors.As.

package digitseq

import (
	"errors"
	"fmt"

	num "github.com/shabbyrobe/go-num"
)

// Sentinel errors for digit-sequence operations.
var (
	// ErrNonDigitChar indicates a character outside '0'–'9' during parsing.
	ErrNonDigitChar = errors.New("digitseq: non-digit char")

	// ErrNonDigitNumber indicates a numeric element outside [0,9] during validation.
	ErrNonDigitNumber = errors.New("digitseq: non-digit number")

	// ErrNegativeNumber indicates an attempt to decompose a negative integer.
	ErrNegativeNumber = errors.New("digitseq: negative number")

	// ErrOverflow indicates that a reconstructed value, or one of its
	// intermediate magnitudes, exceeds the target unsigned width.
	ErrOverflow = errors.New("digitseq: overflow")
)

// NonDigitCharError reports the first character of a parsed string that
// does not represent a base-10 digit. It matches ErrNonDigitChar.
type NonDigitCharError struct {
	// Char is the offending character, exactly as scanned.
	Char rune
}

// Error implements the error interface.
func (e *NonDigitCharError) Error() string {
	return fmt.Sprintf("digitseq: non-digit char: %q", e.Char)
}

// Is reports whether target is ErrNonDigitChar, so that
// errors.Is(err, ErrNonDigitChar) matches regardless of payload.
func (e *NonDigitCharError) Is(target error) bool { return target == ErrNonDigitChar }

// NonDigitNumberError reports the first numeric element of a source that
// is not in [0,9]. The value is widened to uint64 so the payload is never
// truncated. It matches ErrNonDigitNumber.
type NonDigitNumberError struct {
	// Value is the offending element, widened.
	Value uint64
}

// Error implements the error interface.
func (e *NonDigitNumberError) Error() string {
	return fmt.Sprintf("digitseq: non-digit number: %d", e.Value)
}

// Is reports whether target is ErrNonDigitNumber.
func (e *NonDigitNumberError) Is(target error) bool { return target == ErrNonDigitNumber }

// NegativeNumberError reports a negative integer passed to a signed
// decomposition. The value is widened to a 128-bit signed integer,
// independent of the source width. It matches ErrNegativeNumber.
type NegativeNumberError struct {
	// Value is the offending integer, widened.
	Value num.I128
}

// Error implements the error interface.
func (e *NegativeNumberError) Error() string {
	return fmt.Sprintf("digitseq: cannot convert negative number: %s", e.Value)
}

// Is reports whether target is ErrNegativeNumber.
func (e *NegativeNumberError) Is(target error) bool { return target == ErrNegativeNumber }
