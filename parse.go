// Package digitseq: text parsing.

package digitseq

// Parse builds a Sequence from a string of decimal digit characters.
// Only '0'–'9' are accepted: separators, signs, whitespace and letters
// all fail the conversion with *NonDigitCharError carrying the first
// offending character (left-to-right scan). In particular a leading '-'
// is itself a non-digit character, not a negation. The empty string
// yields the empty sequence.
//
// Complexity: O(n)
func Parse(s string) (Sequence, error) {
	digits := make([]uint8, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return Sequence{}, &NonDigitCharError{Char: r}
		}
		digits = append(digits, uint8(r-'0'))
	}

	return newOwned(digits), nil
}
