// Package digitseq: integer decomposition and reconstruction for native
// unsigned and signed widths. One generic routine per direction replaces
// the per-width boilerplate such conversions usually accumulate; the
// checked add/mul helpers are the only arithmetic primitives it needs.

package digitseq

import num "github.com/shabbyrobe/go-num"

// Uint constrains the native unsigned integer widths accepted by
// FromUint and ToUint.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Int constrains the native signed integer widths accepted by FromInt.
type Int interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// FromUint decomposes an unsigned integer into its digit sequence.
// It is infallible for every unsigned width and never produces leading
// zeros; as a special case, 0 decomposes to the single-digit sequence
// [0], never the empty sequence.
//
// Complexity: O(log10 v)
func FromUint[T Uint](v T) Sequence {
	// Collect least-significant-first, emit-then-test so v==0 yields one digit.
	buf := make([]uint8, 0, 20)
	for {
		buf = append(buf, uint8(v%10))
		v /= 10
		if v == 0 {
			break
		}
	}
	reverse(buf)

	return newOwned(buf)
}

// FromInt decomposes a signed integer into its digit sequence. Negative
// values fail with *NegativeNumberError carrying the value widened to a
// 128-bit signed integer; non-negative values delegate to the unsigned
// routine.
//
// Complexity: O(log10 v)
func FromInt[T Int](v T) (Sequence, error) {
	if v < 0 {
		return Sequence{}, &NegativeNumberError{Value: num.I128From64(int64(v))}
	}

	return FromUint(uint64(v)), nil
}

// ToUint reconstructs an unsigned integer from the sequence, treating it
// as a base-10 numeral (most-significant digit first). Digits are folded
// least-significant-first against a running power-of-ten magnitude; every
// multiply, add and magnitude advance is checked against the target
// width, and the first step that does not fit fails the whole conversion
// with ErrOverflow. The magnitude is advanced for every remaining
// position, so a sequence whose length alone exceeds the width overflows
// even under leading zero digits.
//
// Leading zeros never change the numeric result: [0,3,0] reconstructs
// to 30. The empty sequence reconstructs to 0.
//
// Complexity: O(n)
func ToUint[T Uint](s Sequence) (T, error) {
	var (
		acc  T
		term T
		ok   bool
	)
	mag := T(1)
	for i := len(s.digits) - 1; i >= 0; i-- {
		if term, ok = mulChecked(T(s.digits[i]), mag); !ok {
			return 0, ErrOverflow
		}
		if acc, ok = addChecked(acc, term); !ok {
			return 0, ErrOverflow
		}
		// Advance the magnitude only while further positions exist, so the
		// highest position never demands one power of ten more than it uses.
		if i > 0 {
			if mag, ok = mulChecked(mag, 10); !ok {
				return 0, ErrOverflow
			}
		}
	}

	return acc, nil
}

// addChecked returns a+b, reporting false on wraparound.
func addChecked[T Uint](a, b T) (T, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}

	return sum, true
}

// mulChecked returns a*b, reporting false on wraparound.
func mulChecked[T Uint](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}

	return prod, true
}

// reverse flips digits in place; decomposition collects them
// least-significant-first.
func reverse(digits []uint8) {
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
}
