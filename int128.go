// Package digitseq: 128-bit integer decomposition and reconstruction.
// Go has no native 128-bit integers, so these widths ride on the
// immutable U128/I128 value types from github.com/shabbyrobe/go-num.
// Semantics mirror integers.go exactly.

package digitseq

import num "github.com/shabbyrobe/go-num"

// FromUint128 decomposes an unsigned 128-bit integer into its digit
// sequence. Infallible; 0 decomposes to [0].
//
// Complexity: O(log10 v), at most 39 digits.
func FromUint128(v num.U128) Sequence {
	ten := num.U128From64(10)
	buf := make([]uint8, 0, 39)
	for {
		q, r := v.QuoRem(ten)
		buf = append(buf, uint8(r.AsUint64()))
		v = q
		if v.IsZero() {
			break
		}
	}
	reverse(buf)

	return newOwned(buf)
}

// FromInt128 decomposes a signed 128-bit integer into its digit
// sequence. Negative values fail with *NegativeNumberError carrying the
// value itself; non-negative values delegate to FromUint128.
func FromInt128(v num.I128) (Sequence, error) {
	if v.Sign() < 0 {
		return Sequence{}, &NegativeNumberError{Value: v}
	}

	return FromUint128(v.AsU128()), nil
}

// ToUint128 reconstructs an unsigned 128-bit integer from the sequence.
// Checked arithmetic throughout, as in ToUint: the first multiply, add
// or magnitude advance that exceeds 2^128-1 fails the whole conversion
// with ErrOverflow.
//
// Complexity: O(n)
func ToUint128(s Sequence) (num.U128, error) {
	var acc num.U128
	ten := num.U128From64(10)
	magCap := num.MaxU128.Quo(ten)
	mag := num.U128From64(1)
	for i := len(s.digits) - 1; i >= 0; i-- {
		if d := uint64(s.digits[i]); d != 0 {
			// term = digit × magnitude, checked against MaxU128/digit.
			if mag.Cmp(num.MaxU128.Quo(num.U128From64(d))) > 0 {
				return num.U128{}, ErrOverflow
			}
			sum := acc.Add(mag.Mul(num.U128From64(d)))
			if sum.Cmp(acc) < 0 {
				return num.U128{}, ErrOverflow
			}
			acc = sum
		}
		if i > 0 {
			if mag.Cmp(magCap) > 0 {
				return num.U128{}, ErrOverflow
			}
			mag = mag.Mul(ten)
		}
	}

	return acc, nil
}
