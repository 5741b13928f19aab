// SPDX-License-Identifier: EPL-2.0

// Package bitset provides fixed-capacity bit sets used to mask channels.
//
// A Set is backed by one unsigned word, an Array by a fixed number of words:
//
//	mask := bitset.Empty[uint32]()
//	mask.Set(0)
//	mask.Set(3)
//
//	for index := range mask.Iter() {
//	    // 0, then 3
//	}
//
// Out-of-range indices are tolerated everywhere: Test reports false and
// Set/Clear do nothing. Masks are routinely built from channel counts that
// are only known at runtime.
//
// # Joining
//
// Join selects the elements of any sequence whose position is in a mask,
// without scanning positions that are not set:
//
//	mask := bitset.FromWord[uint8](0b1101)
//	picked := slices.Collect(bitset.Join(mask, slices.Values([]string{"a", "b", "c", "d"})))
//	// picked == []string{"a", "c", "d"}
package bitset
