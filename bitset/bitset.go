// SPDX-License-Identifier: EPL-2.0

package bitset

import (
	"iter"
	"math/bits"
)

// Word is the set of native unsigned integers a bit set can be backed by.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Width returns the number of bits in W.
func Width[W Word]() int {
	return bits.Len64(uint64(^W(0)))
}

// trailingZeros returns the index of the lowest set bit of a non-zero word.
func trailingZeros[W Word](w W) int {
	return bits.TrailingZeros64(uint64(w))
}

// Set is a bit set backed by a single word. Bit i corresponds to item i, and
// the capacity is the bit width of W.
//
// The zero value is an empty set.
type Set[W Word] struct {
	bits W
}

// Empty returns a set with no bits set.
func Empty[W Word]() Set[W] {
	return Set[W]{}
}

// Full returns a set with every bit set.
func Full[W Word]() Set[W] {
	return Set[W]{bits: ^W(0)}
}

// FromWord returns a set holding the given bit pattern.
func FromWord[W Word](w W) Set[W] {
	return Set[W]{bits: w}
}

// Word returns the raw bit pattern.
func (s Set[W]) Word() W {
	return s.bits
}

// Cap returns the number of items the set can address.
func (s Set[W]) Cap() int {
	return Width[W]()
}

// Test reports whether index is set. Indices outside the capacity are never set.
func (s Set[W]) Test(index int) bool {
	if index < 0 || index >= Width[W]() {
		return false
	}

	return s.bits&(W(1)<<index) != 0
}

// Set sets index. Indices outside the capacity are ignored.
func (s *Set[W]) Set(index int) {
	if index < 0 || index >= Width[W]() {
		return
	}

	s.bits |= W(1) << index
}

// Clear clears index. Indices outside the capacity are ignored.
func (s *Set[W]) Clear(index int) {
	if index < 0 || index >= Width[W]() {
		return
	}

	s.bits &^= W(1) << index
}

// IsEmpty reports whether no bit is set.
func (s Set[W]) IsEmpty() bool {
	return s.bits == 0
}

// Count returns the number of set bits.
func (s Set[W]) Count() int {
	return bits.OnesCount64(uint64(s.bits))
}

// Iter yields the indices of all set bits in ascending order.
//
// The walk works on a copy of the pattern: it repeatedly takes the lowest set
// bit and clears it locally, so modifying the set while iterating has no
// effect on the sequence.
func (s Set[W]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		w := s.bits
		for w != 0 {
			index := trailingZeros(w)
			w &^= W(1) << index
			if !yield(index) {
				return
			}
		}
	}
}
