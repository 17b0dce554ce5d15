// Package digitseq: the Sequence value type and its constructors.
// This file declares Sequence, the empty constructor, the byte-source
// validator, accessors, cloning and textual rendering.

package digitseq

// Sequence is an immutable, ordered sequence of base-10 digits stored
// most-significant-first. Each element is in [0,9]; this invariant is
// enforced by every constructor and never silently clamped.
//
// Sequences are not canonical: leading zeros are preserved ([0,3,0] and
// [3,0] are distinct values), and the empty sequence is valid and
// distinct from [0].
//
// The zero value is the empty sequence, ready to use. The backing
// storage is exclusively owned: constructors copy their input, and
// exporting accessors copy their output, so a Sequence may be freely
// shared across goroutines once constructed.
type Sequence struct {
	digits []uint8
}

// New returns the empty Sequence.
//
// Complexity: O(1)
func New() Sequence {
	return Sequence{}
}

// FromDigits builds a Sequence from an ordered source of numeric digits.
// It succeeds iff every element is in [0,9], preserving source order and
// length exactly (no trimming, no reversal). The empty source yields the
// empty sequence. Elements are scanned left-to-right; the first element
// ≥ 10 fails the whole conversion with *NonDigitNumberError carrying
// that element.
//
// The input slice is copied and never retained, so fixed arrays, slices
// of larger buffers and dynamically grown slices are all acceptable.
//
// Complexity: O(n)
func FromDigits(digits []uint8) (Sequence, error) {
	var d uint8
	for _, d = range digits {
		if d >= 10 {
			return Sequence{}, &NonDigitNumberError{Value: uint64(d)}
		}
	}
	out := make([]uint8, len(digits))
	copy(out, digits)

	return Sequence{digits: out}, nil
}

// newOwned wraps digits that are already validated and exclusively owned
// by the caller. Internal constructor for the decomposers and decoders.
func newOwned(digits []uint8) Sequence {
	return Sequence{digits: digits}
}

// Len returns the number of digits in the sequence.
func (s Sequence) Len() int { return len(s.digits) }

// IsEmpty reports whether the sequence has no digits. The empty sequence
// is distinct from the single-digit zero sequence.
func (s Sequence) IsEmpty() bool { return len(s.digits) == 0 }

// Digits returns a copy of the digits in stored order. Mutating the
// returned slice does not affect the sequence.
//
// Complexity: O(n)
func (s Sequence) Digits() []uint8 {
	out := make([]uint8, len(s.digits))
	copy(out, s.digits)

	return out
}

// Clone returns a deep copy of the sequence with its own backing storage.
//
// Complexity: O(n)
func (s Sequence) Clone() Sequence {
	return newOwned(s.Digits())
}

// String renders the sequence as the concatenation of its digit
// characters in stored order: no separators, no grouping, and the empty
// sequence renders as "". Inverse of Parse for every sequence produced
// by this package's constructors.
//
// Complexity: O(n)
func (s Sequence) String() string {
	buf := make([]byte, len(s.digits))
	for i, d := range s.digits {
		buf[i] = '0' + d
	}

	return string(buf)
}
