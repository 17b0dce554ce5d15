// Package digitseq: wire encodings.
// The sole structured representation is a JSON array of digit numbers,
// e.g. [9,7,8,6]; the textual encoding reuses Parse/String. Both decode
// paths run through the same [0,9] gate as every other constructor.

package digitseq

import "encoding/json"

// MarshalJSON encodes the sequence as a JSON array of digit numbers in
// stored order. The empty sequence encodes as "[]".
func (s Sequence) MarshalJSON() ([]byte, error) {
	out := make([]int, len(s.digits))
	for i, d := range s.digits {
		out[i] = int(d)
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes a JSON array of digit numbers. Elements outside
// [0,9] fail with *NonDigitNumberError carrying the first offender;
// anything that is not an array of small non-negative integers fails
// with the decoder's own error.
func (s *Sequence) UnmarshalJSON(data []byte) error {
	var raw []uint16
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	digits := make([]uint8, len(raw))
	for i, v := range raw {
		if v >= 10 {
			return &NonDigitNumberError{Value: uint64(v)}
		}
		digits[i] = uint8(v)
	}
	s.digits = digits

	return nil
}

// MarshalText encodes the sequence as its digit string, per String.
func (s Sequence) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a digit string, per Parse.
func (s *Sequence) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}
