package digitseq_test

import (
	"encoding/json"
	"fmt"

	num "github.com/shabbyrobe/go-num"

	"github.com/katalvlaran/digitseq"
)

// ExampleFromUint demonstrates integer decomposition.
func ExampleFromUint() {
	s := digitseq.FromUint(uint32(985))
	fmt.Println(s.Digits())
	fmt.Println(s)

	// Zero decomposes to the single-digit sequence [0].
	fmt.Println(digitseq.FromUint(uint8(0)).Digits())

	// Output:
	// [9 8 5]
	// 985
	// [0]
}

// ExampleFromInt shows that signed decomposition rejects negatives.
func ExampleFromInt() {
	s, err := digitseq.FromInt(int32(3791))
	fmt.Println(s, err)

	_, err = digitseq.FromInt(-4)
	fmt.Println(err)

	// Output:
	// 3791 <nil>
	// digitseq: cannot convert negative number: -4
}

// ExampleParse demonstrates text parsing with preserved leading zeros.
func ExampleParse() {
	s, _ := digitseq.Parse("09240")
	fmt.Println(s.Digits())

	_, err := digitseq.Parse("90xyz")
	fmt.Println(err)

	// Output:
	// [0 9 2 4 0]
	// digitseq: non-digit char: 'x'
}

// ExampleToUint demonstrates checked reconstruction.
func ExampleToUint() {
	s, _ := digitseq.Parse("90")
	n, _ := digitseq.ToUint[uint64](s)
	fmt.Println(n)

	big, _ := digitseq.Parse("256")
	_, err := digitseq.ToUint[uint8](big)
	fmt.Println(err)

	// Output:
	// 90
	// digitseq: overflow
}

// ExampleToUint128 reconstructs the largest 128-bit value.
func ExampleToUint128() {
	s, _ := digitseq.Parse("340282366920938463463374607431768211455")
	v, _ := digitseq.ToUint128(s)
	fmt.Println(v.Equal(num.MaxU128))

	// Output:
	// true
}

// ExampleSequence_Values shows repeatable read-only iteration.
func ExampleSequence_Values() {
	s := digitseq.FromUint(uint64(1234567890))

	var even []uint8
	for d := range s.Values() {
		if d%2 == 0 {
			even = append(even, d)
		}
	}
	fmt.Println(even)

	// Output:
	// [2 4 6 8 0]
}

// ExampleSequence_Drain shows one-shot consuming iteration.
func ExampleSequence_Drain() {
	s := digitseq.FromUint(uint16(9502))

	var out []uint8
	for d := range s.Drain() {
		out = append(out, d)
	}
	fmt.Println(out, s.IsEmpty())

	// Output:
	// [9 5 0 2] true
}

// ExampleSequence_MarshalJSON shows the wire representation.
func ExampleSequence_MarshalJSON() {
	s := digitseq.FromUint(uint16(9786))

	data, _ := json.Marshal(s)
	fmt.Println(string(data))

	// Output:
	// [9,7,8,6]
}
