// Package digitseq: structural equality and ordering.
// Every container shape (sequence, array, slice, grown slice) reduces to
// one ordered byte view, so the package needs exactly one equality
// routine and one comparison routine.

package digitseq

import "bytes"

// Equal reports whether two sequences have the same length and identical
// digit-by-digit content.
func (s Sequence) Equal(o Sequence) bool {
	return bytes.Equal(s.digits, o.digits)
}

// EqualDigits reports whether the sequence matches a raw digit slice
// element-for-element. Fixed arrays and dynamic containers compare via
// their slice views.
func (s Sequence) EqualDigits(d []uint8) bool {
	return bytes.Equal(s.digits, d)
}

// Compare orders sequences lexicographically over their structural
// representation, returning -1, 0 or +1. A sequence whose digits are a
// strict prefix of another's sorts first, otherwise the first differing
// digit decides. This is NOT numeric ordering: leading zeros are never
// collapsed, so [0,9] sorts before [9].
//
// Complexity: O(min(n, m))
func (s Sequence) Compare(o Sequence) int {
	return bytes.Compare(s.digits, o.digits)
}

// Less reports whether s orders strictly before o under Compare.
// Suitable for sort.Slice and slices.SortFunc.
func (s Sequence) Less(o Sequence) bool {
	return bytes.Compare(s.digits, o.digits) < 0
}
