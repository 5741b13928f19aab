// SPDX-License-Identifier: EPL-2.0

package bitset

import "iter"

// Mask is a read-only set of item indices.
type Mask interface {
	// Test reports whether index is part of the mask.
	Test(index int) bool
	// Iter yields the indices of the mask in ascending order.
	Iter() iter.Seq[int]
}

// MutableMask is a mask whose members can be changed.
type MutableMask interface {
	Mask
	Set(index int)
	Clear(index int)
}

var (
	_ MutableMask = (*Set[uint64])(nil)
	_ MutableMask = (*Array[uint64])(nil)
	_ Mask        = All{}
	_ Mask        = None{}
)

// All is a mask that contains every index. Its Iter never ends on its own.
type All struct{}

func (All) Test(int) bool { return true }

func (All) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// None is a mask that contains nothing.
type None struct{}

func (None) Test(int) bool { return false }

func (None) Iter() iter.Seq[int] {
	return func(func(int) bool) {}
}

// Join pairs the ascending indices of m with the elements of src and yields
// only the elements whose position is in the mask.
//
// The source is advanced by the distance between consecutive indices, so it
// is never consumed past the last masked position. Iteration stops when
// either the mask or the source is exhausted.
func Join[E any](m Mask, src iter.Seq[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		next, stop := iter.Pull(src)
		defer stop()

		last := 0
		for index := range m.Iter() {
			var (
				v  E
				ok bool
			)
			for skip := index - last; skip >= 0; skip-- {
				if v, ok = next(); !ok {
					return
				}
			}

			last = index + 1
			if !yield(v) {
				return
			}
		}
	}
}

// JoinSlice is Join over a slice. Each step is a direct index, so the work
// is proportional to the number of set bits rather than the capacity.
// The yielded index is the element's position in src.
func JoinSlice[E any](m Mask, src []E) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for index := range m.Iter() {
			if index >= len(src) {
				return
			}
			if !yield(index, src[index]) {
				return
			}
		}
	}
}
