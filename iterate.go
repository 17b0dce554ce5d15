// Package digitseq: iteration strategies.
// Read-only iteration borrows the storage and is restartable; consuming
// iteration transfers ownership of the storage out of the sequence, so
// the "cannot reuse after consuming" rule holds by construction rather
// than by a runtime flag.

package digitseq

import "iter"

// All returns a lazy, finite, restartable iterator over (position,
// digit) pairs in stored order. The sequence is not modified and may be
// iterated any number of times.
func (s Sequence) All() iter.Seq2[int, uint8] {
	return func(yield func(int, uint8) bool) {
		for i, d := range s.digits {
			if !yield(i, d) {
				return
			}
		}
	}
}

// Values returns a lazy, finite, restartable iterator over the digits in
// stored order.
func (s Sequence) Values() iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for _, d := range s.digits {
			if !yield(d) {
				return
			}
		}
	}
}

// Drain returns a one-shot consuming iterator over the digits in stored
// order. It detaches the backing storage from the sequence, leaving it
// empty: after Drain the sequence has length 0, and a second Drain
// yields nothing. The returned iterator owns the detached storage and
// stays valid even if the sequence value goes out of scope.
func (s *Sequence) Drain() iter.Seq[uint8] {
	digits := s.digits
	s.digits = nil

	return func(yield func(uint8) bool) {
		for _, d := range digits {
			if !yield(d) {
				return
			}
		}
	}
}
