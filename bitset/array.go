// SPDX-License-Identifier: EPL-2.0

package bitset

import (
	"iter"
	"math/bits"
)

// Array is a bit set backed by a fixed number of words. Item i lives in word
// i / Width[W]() at bit i % Width[W](), so the capacity is the number of words
// times the word width.
//
// The number of words is fixed when the array is created; use Clone before
// handing an Array to code that must not observe later changes.
type Array[W Word] struct {
	words []W
}

// EmptyArray returns an array of n words with no bits set.
func EmptyArray[W Word](n int) Array[W] {
	return Array[W]{words: make([]W, n)}
}

// FullArray returns an array of n words with every bit set.
func FullArray[W Word](n int) Array[W] {
	a := EmptyArray[W](n)
	for i := range a.words {
		a.words[i] = ^W(0)
	}

	return a
}

// ArrayFor returns an empty array with enough words to address items
// indices. It always holds at least one word.
func ArrayFor[W Word](items int) Array[W] {
	width := Width[W]()
	return EmptyArray[W](max(1, (items+width-1)/width))
}

// FromWords returns an array over a copy of words.
func FromWords[W Word](words ...W) Array[W] {
	a := EmptyArray[W](len(words))
	copy(a.words, words)

	return a
}

// Words returns a copy of the backing words.
func (a Array[W]) Words() []W {
	out := make([]W, len(a.words))
	copy(out, a.words)

	return out
}

// Clone returns an independent copy of the array.
func (a Array[W]) Clone() Array[W] {
	return FromWords(a.words...)
}

// Cap returns the number of items the array can address.
func (a Array[W]) Cap() int {
	return len(a.words) * Width[W]()
}

func (a Array[W]) locate(index int) (int, int, bool) {
	if index < 0 {
		return 0, 0, false
	}

	width := Width[W]()
	word := index / width
	if word >= len(a.words) {
		return 0, 0, false
	}

	return word, index % width, true
}

// Test reports whether index is set. Indices outside the capacity are never set.
func (a Array[W]) Test(index int) bool {
	word, bit, ok := a.locate(index)
	if !ok {
		return false
	}

	return a.words[word]&(W(1)<<bit) != 0
}

// Set sets index. Indices outside the capacity are ignored.
func (a *Array[W]) Set(index int) {
	if word, bit, ok := a.locate(index); ok {
		a.words[word] |= W(1) << bit
	}
}

// Clear clears index. Indices outside the capacity are ignored.
func (a *Array[W]) Clear(index int) {
	if word, bit, ok := a.locate(index); ok {
		a.words[word] &^= W(1) << bit
	}
}

// IsEmpty reports whether no bit is set.
func (a Array[W]) IsEmpty() bool {
	for _, w := range a.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Count returns the number of set bits.
func (a Array[W]) Count() int {
	n := 0
	for _, w := range a.words {
		n += bits.OnesCount64(uint64(w))
	}

	return n
}

// Iter yields the indices of all set bits in ascending order. The pattern is
// snapshotted when Iter is called, the same way Set.Iter works.
func (a Array[W]) Iter() iter.Seq[int] {
	words := a.Words()

	return func(yield func(int) bool) {
		width := Width[W]()
		for o, w := range words {
			for w != 0 {
				index := trailingZeros(w)
				w &^= W(1) << index
				if !yield(o*width + index) {
					return
				}
			}
		}
	}
}
