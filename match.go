// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import (
	"encoding/binary"
	"math/bits"
)

// load32 and load64 are the unaligned little-endian loads the hot loops rely
// on. The bounds checks they imply never cross the fragment end: the match
// loop stops inputMargin bytes early.

func load32(b []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(b[i:])
}

func load64(b []byte, i int) uint64 {
	return binary.LittleEndian.Uint64(b[i:])
}

// findMatchLength returns the length of the longest common prefix of a and b.
// Compares 8 bytes per step; the first differing byte is located with a
// trailing-zero count over the xor of the two words, then the sub-word tail
// is compared bytewise.
func findMatchLength(a, b []byte) int {
	n := min(len(a), len(b))

	i := 0
	for ; i+8 <= n; i += 8 {
		x := binary.LittleEndian.Uint64(a[i:])
		y := binary.LittleEndian.Uint64(b[i:])
		if x != y {
			return i + bits.TrailingZeros64(x^y)>>3
		}
	}

	for ; i < n && a[i] == b[i]; i++ {
	}

	return i
}

// hashFingerprint folds a 4-byte fingerprint to a table index. shift is
// 32 - log2(tableSize), so the product's top bits select the bucket.
func hashFingerprint(u uint32, shift uint) uint32 {
	return (u * hashMul) >> shift
}
