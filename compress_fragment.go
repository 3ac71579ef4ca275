// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import "math/bits"

// compressFragment compresses one fragment of at most maxBlockSize bytes into
// dst and returns the number of bytes written. dst must have at least
// MaxCompressedLength(len(src)) free bytes. table is the zeroed power-of-two
// hash table from WorkingMemory.tableFor; slots map a 4-byte fingerprint to
// the most recent fragment position it was seen at.
//
// The parser is greedy first-match: one slot per bucket, no chains, no lazy
// matching. A collision is just a miss.
func compressFragment(dst, src []byte, table []uint16) int {
	if len(src) < minNonLiteralBlockSize {
		return emitLiteral(dst, src)
	}

	shift := uint(32 - bits.TrailingZeros(uint(len(table))))

	// sLimit is where the match loop stops; the remaining tail is emitted as
	// one literal so the unaligned loads below never cross the fragment end.
	sLimit := len(src) - inputMargin

	d := 0
	nextEmit := 0 // start of the pending literal run
	s := 1
	nextHash := hashFingerprint(load32(src, s), shift)

	for {
		// After 32 consecutive misses the scan starts striding: advance by
		// 1 + misses/32 so incompressible data stays O(len(src)).
		skip := 32

		nextS := s
		candidate := 0
		for {
			s = nextS
			bytesBetweenHashLookups := skip >> 5
			nextS = s + bytesBetweenHashLookups
			skip += bytesBetweenHashLookups
			if nextS > sLimit {
				goto emitRemainder
			}

			candidate = int(table[nextHash])
			table[nextHash] = uint16(s) //nolint:gosec // G115: fragment positions fit uint16
			nextHash = hashFingerprint(load32(src, nextS), shift)

			if load32(src, s) == load32(src, candidate) {
				break
			}
		}

		// 4-byte match at candidate. Flush the pending literal run, then keep
		// emitting copies as long as each match chains into the next.
		d += emitLiteral(dst[d:], src[nextEmit:s])

		for {
			base := s

			s += 4
			s += findMatchLength(src[candidate+4:], src[s:])

			d += emitCopy(dst[d:], base-candidate, s-base)
			nextEmit = s
			if s >= sLimit {
				goto emitRemainder
			}

			// Seed the table with the position one before the cursor, then
			// probe at the cursor itself; a hit continues the copy loop
			// without rescanning.
			x := load64(src, s-1)
			prevHash := hashFingerprint(uint32(x>>0), shift)
			table[prevHash] = uint16(s - 1) //nolint:gosec // G115: fragment positions fit uint16
			currHash := hashFingerprint(uint32(x>>8), shift)
			candidate = int(table[currHash])
			table[currHash] = uint16(s) //nolint:gosec // G115: fragment positions fit uint16

			if uint32(x>>8) != load32(src, candidate) {
				nextHash = hashFingerprint(uint32(x>>16), shift)
				s++
				break
			}
		}
	}

emitRemainder:
	if nextEmit < len(src) {
		d += emitLiteral(dst[d:], src[nextEmit:])
	}

	return d
}

// emitLiteral writes a literal element for lit into dst and returns the bytes
// written. Counts up to 60 live in the tag byte; longer runs store the count
// in 1..4 trailing little-endian bytes. lit must be non-empty.
func emitLiteral(dst, lit []byte) int {
	i, n := 0, len(lit)-1

	switch {
	case n < 60:
		dst[0] = byte(n)<<2 | tagLiteral
		i = 1
	case n < 1<<8:
		dst[0] = 60<<2 | tagLiteral
		dst[1] = byte(n)
		i = 2
	case n < 1<<16:
		dst[0] = 61<<2 | tagLiteral
		dst[1] = byte(n)
		dst[2] = byte(n >> 8)
		i = 3
	case n < 1<<24:
		dst[0] = 62<<2 | tagLiteral
		dst[1] = byte(n)
		dst[2] = byte(n >> 8)
		dst[3] = byte(n >> 16)
		i = 4
	default:
		dst[0] = 63<<2 | tagLiteral
		dst[1] = byte(n)
		dst[2] = byte(n >> 8)
		dst[3] = byte(n >> 16)
		dst[4] = byte(n >> 24)
		i = 5
	}

	return i + copy(dst[i:], lit)
}

// emitCopy writes copy elements covering a match of `length` bytes at
// `offset` into dst and returns the bytes written. A single copy caps at
// maxCopyLength; longer matches spill into more copies. A residual of
// 65..67 is split 60+tail so the final copy stays at least 4 bytes and can
// use either offset form.
func emitCopy(dst []byte, offset, length int) int {
	i := 0

	for length >= 68 {
		dst[i+0] = 63<<2 | tagCopy2
		dst[i+1] = byte(offset)
		dst[i+2] = byte(offset >> 8)
		i += 3
		length -= maxCopyLength
	}

	if length > maxCopyLength {
		dst[i+0] = 59<<2 | tagCopy2
		dst[i+1] = byte(offset)
		dst[i+2] = byte(offset >> 8)
		i += 3
		length -= 60
	}

	if length >= 12 || offset >= 2048 {
		dst[i+0] = byte(length-1)<<2 | tagCopy2
		dst[i+1] = byte(offset)
		dst[i+2] = byte(offset >> 8)

		return i + 3
	}

	// Narrow form: length 4..11, offset below 2048, one operand byte.
	dst[i+0] = byte(offset>>8)<<5 | byte(length-4)<<2 | tagCopy1
	dst[i+1] = byte(offset)

	return i + 2
}
