package digitseq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digitseq"
)

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []uint8
	}{
		{"empty", "", []uint8{}},
		{"zero", "0", []uint8{0}},
		{"two_digits", "92", []uint8{9, 2}},
		{"inner_zero", "304", []uint8{3, 0, 4}},
		{"trailing_zero", "340", []uint8{3, 4, 0}},
		{"leading_zero", "034", []uint8{0, 3, 4}},
		{"long", "01294860", []uint8{0, 1, 2, 9, 4, 8, 6, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := digitseq.Parse(tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.want, s.Digits())
		})
	}
}

func TestParse_NonDigit(t *testing.T) {
	cases := []struct {
		name string
		text string
		want rune
	}{
		{"minus_sign", "-89", '-'},
		{"plus_sign", "+89", '+'},
		{"not_a_number", "<NOT A NUMBER>", '<'},
		{"partially_valid", "90xyz", 'x'},
		{"inner_space", "9 0", ' '},
		{"non_ascii", "12é3", 'é'},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := digitseq.Parse(tc.text)
			require.ErrorIs(t, err, digitseq.ErrNonDigitChar)

			var ndErr *digitseq.NonDigitCharError
			require.ErrorAs(t, err, &ndErr)
			require.Equal(t, tc.want, ndErr.Char)
		})
	}
}

func TestParse_FirstOffenderReported(t *testing.T) {
	_, err := digitseq.Parse("1a2b")
	var ndErr *digitseq.NonDigitCharError
	require.ErrorAs(t, err, &ndErr)
	require.Equal(t, 'a', ndErr.Char)
}

func TestParse_String_RoundTrip(t *testing.T) {
	for _, text := range []string{"", "0", "090", "340282366920938463463374607431768211456"} {
		s, err := digitseq.Parse(text)
		require.NoError(t, err)
		require.Equal(t, text, s.String())
	}
}
