// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import "encoding/binary"

// IsValidCompressedBuffer reports whether src is a well-formed Snappy block:
// Decompress would succeed on it (up to output-size caps). It parses the tag
// stream by the same rules as the decompressor but only counts bytes, so it
// never allocates — a prefix declaring gigabytes is checked in O(len(src)) with zero memory.
func IsValidCompressedBuffer(src []byte) bool {
	outLen, headerLen, err := peekLength(src)
	if err != nil {
		return false
	}

	return validateElements(src[headerLen:], outLen)
}

// validateElements walks the element stream tracking only produced-byte and
// consumed-byte counts. Failure conditions mirror decompressCore exactly;
// counters are 64-bit so declared lengths above int range validate correctly
// on 32-bit targets too.
func validateElements(src []byte, outLen uint64) bool {
	var d uint64
	var s, length int
	var offset uint64

	for s < len(src) {
		switch src[s] & 0x03 {
		case tagLiteral:
			x := uint32(src[s] >> 2)
			switch {
			case x < 60:
				s++
			case x == 60:
				s += 2
				if s > len(src) {
					return false
				}
				x = uint32(src[s-1])
			case x == 61:
				s += 3
				if s > len(src) {
					return false
				}
				x = uint32(binary.LittleEndian.Uint16(src[s-2:]))
			case x == 62:
				s += 4
				if s > len(src) {
					return false
				}
				x = uint32(src[s-3]) | uint32(src[s-2])<<8 | uint32(src[s-1])<<16
			default: // x == 63
				s += 5
				if s > len(src) {
					return false
				}
				x = binary.LittleEndian.Uint32(src[s-4:])
			}

			n := uint64(x) + 1
			if n > outLen-d {
				return false
			}

			if n > uint64(len(src)-s) {
				return false
			}

			d += n
			s += int(n)

			continue

		case tagCopy1:
			s += 2
			if s > len(src) {
				return false
			}

			length = 4 + int(src[s-2])>>2&0x7
			offset = uint64(int(src[s-2])&0xe0<<3 | int(src[s-1]))

		case tagCopy2:
			s += 3
			if s > len(src) {
				return false
			}

			length = 1 + int(src[s-3])>>2
			offset = uint64(binary.LittleEndian.Uint16(src[s-2:]))

		default: // tagCopy4
			s += 5
			if s > len(src) {
				return false
			}

			length = 1 + int(src[s-5])>>2
			offset = uint64(binary.LittleEndian.Uint32(src[s-4:]))
		}

		if offset == 0 || offset > d {
			return false
		}

		if uint64(length) > outLen-d {
			return false
		}

		d += uint64(length)
	}

	return d == outLen
}
