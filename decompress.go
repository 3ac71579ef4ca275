// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import (
	"encoding/binary"
	"io"
)

// Decompress decompresses one Snappy block from src into a new buffer sized
// from the block's length prefix. opts may be nil; set
// DecompressOptions.MaxOutputSize when src is untrusted so a lying prefix
// cannot force a large allocation. Returns ErrEmptyInput if src is empty.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	outLen64, headerLen, err := peekLength(src)
	if err != nil {
		return nil, err
	}

	if outLen64 > uint64(maxInt) {
		return nil, ErrTooLarge
	}

	if opts.MaxOutputSize > 0 && outLen64 > uint64(opts.MaxOutputSize) {
		return nil, ErrTooLarge
	}

	dst := make([]byte, outLen64)
	if err := decompressCore(dst, src[headerLen:]); err != nil {
		return nil, err
	}

	return dst, nil
}

// DecompressInto decompresses one Snappy block from src into the
// caller-provided dst and returns the filled prefix of dst. No allocation
// happens. Returns ErrOutputOverrun when dst is smaller than the block's
// declared uncompressed length.
func DecompressInto(src, dst []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	outLen, headerLen, err := PeekUncompressedLength(src)
	if err != nil {
		return nil, err
	}

	if outLen > len(dst) {
		return nil, ErrOutputOverrun
	}

	out := dst[:outLen]
	if err := decompressCore(out, src[headerLen:]); err != nil {
		return nil, err
	}

	return out, nil
}

// DecompressFromReader reads the full stream then calls Decompress. No decoding logic of its own.
// If opts.MaxInputSize > 0 and more bytes are read, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	if opts.MaxInputSize > 0 && opts.MaxInputSize < maxInt {
		r = io.LimitReader(r, int64(opts.MaxInputSize)+1)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}

// DecompressToWriter decompresses one Snappy block from src and writes the
// output to w, returning the bytes written. Back-references address the whole
// produced output, so decoding happens into an internal buffer first; format
// errors surface as the usual sentinels, writer errors are returned as-is.
func DecompressToWriter(w io.Writer, src []byte, opts *DecompressOptions) (int, error) {
	out, err := Decompress(src, opts)
	if err != nil {
		return 0, err
	}

	return w.Write(out)
}

// decompressCore runs the tag state machine over the element stream src
// (length prefix already stripped), writing into dst, which the caller sized
// to exactly the declared uncompressed length. The block is well-formed only
// if the stream fills dst exactly and consumes all of src.
func decompressCore(dst, src []byte) error {
	var d, s, offset, length int

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
					return ErrInputOverrun
				}
				x = uint32(src[s-1])
			case x == 61:
				s += 3
				if s > len(src) {
					return ErrInputOverrun
				}
				x = uint32(binary.LittleEndian.Uint16(src[s-2:]))
			case x == 62:
				s += 4
				if s > len(src) {
					return ErrInputOverrun
				}
				x = uint32(src[s-3]) | uint32(src[s-2])<<8 | uint32(src[s-1])<<16
			default: // x == 63
				s += 5
				if s > len(src) {
					return ErrInputOverrun
				}
				x = binary.LittleEndian.Uint32(src[s-4:])
			}

			length = int(x) + 1
			if length <= 0 || length > len(dst)-d {
				return ErrOutputOverrun
			}

			if length > len(src)-s {
				return ErrInputOverrun
			}

			copy(dst[d:], src[s:s+length])
			d += length
			s += length

			continue

		case tagCopy1:
			s += 2
			if s > len(src) {
				return ErrInputOverrun
			}

			length = 4 + int(src[s-2])>>2&0x7
			offset = int(src[s-2])&0xe0<<3 | int(src[s-1])

		case tagCopy2:
			s += 3
			if s > len(src) {
				return ErrInputOverrun
			}

			length = 1 + int(src[s-3])>>2
			offset = int(binary.LittleEndian.Uint16(src[s-2:]))

		default: // tagCopy4
			s += 5
			if s > len(src) {
				return ErrInputOverrun
			}

			length = 1 + int(src[s-5])>>2
			u := binary.LittleEndian.Uint32(src[s-4:])
			if uint64(u) > uint64(d) {
				return ErrBadCopyOffset
			}
			offset = int(u)
		}

		if offset <= 0 || offset > d {
			return ErrBadCopyOffset
		}

		if length > len(dst)-d {
			return ErrOutputOverrun
		}

		copyBackRef(dst, d, offset, length)
		d += length
	}

	if d != len(dst) {
		return ErrOutputUnderrun
	}

	return nil
}
