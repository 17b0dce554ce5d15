// Package digitseq provides Sequence, an immutable sequence of base-10
// digits, together with a closed set of conversions to and from integers,
// strings and numeric slices.
//
// A Sequence stores digits most-significant-first, each in [0,9]. It is
// deliberately non-canonical: leading zeros are preserved, and the empty
// sequence is a valid value distinct from the single-digit zero sequence.
//
// The package offers:
//
//   - Decomposition: FromUint / FromInt / FromUint128 / FromInt128 turn an
//     integer into its digit sequence (signed variants reject negatives).
//   - Reconstruction: ToUint / ToUint128 turn a sequence back into an
//     unsigned integer with checked arithmetic, failing with ErrOverflow
//     when the value or any intermediate magnitude exceeds the target width.
//   - Validation: FromDigits builds a sequence from raw bytes, rejecting
//     any element ≥ 10; Parse does the same for text, rejecting any
//     character outside '0'–'9'.
//   - Structural equality and lexicographic ordering (Equal, EqualDigits,
//     Compare, Less), independent of numeric value.
//   - Repeatable read-only iteration (All, Values) and one-shot consuming
//     iteration (Drain) via range-over-func iterators.
//   - JSON ([9,7,8,6]) and plain-text marshalling.
//
// Every operation is a pure function over exclusively-owned storage:
// sequences never alias caller slices, never mutate after construction,
// and may be shared across goroutines without locking. 128-bit widths are
// supported through github.com/shabbyrobe/go-num.
//
// A small command-line front-end lives under cmd/digitseq.
//
//	go get github.com/katalvlaran/digitseq
package digitseq
