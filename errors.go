// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import "errors"

// Sentinel errors for decompression, validation and compression.
var (
	// ErrEmptyInput is returned when the input slice or stream is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrMalformedVarint is returned when the length prefix is truncated,
	// unterminated, or encodes a value above 2^32-1.
	ErrMalformedVarint = errors.New("malformed length prefix")
	// ErrInputOverrun is returned when a tag declares more operand or payload
	// bytes than remain in the input.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when the element stream would produce more
	// bytes than the declared uncompressed length, or the caller's buffer is
	// smaller than that length.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrOutputUnderrun is returned when the input ends before producing the
	// declared uncompressed length.
	ErrOutputUnderrun = errors.New("output underrun")
	// ErrBadCopyOffset is returned when a back-reference offset is zero or
	// reaches before the start of the output.
	ErrBadCopyOffset = errors.New("invalid copy offset")
	// ErrTooLarge is returned when the declared uncompressed length exceeds
	// DecompressOptions.MaxOutputSize or the platform word size, or when a
	// compression input cannot be represented in the format.
	ErrTooLarge = errors.New("declared length too large")
	// ErrDstTooSmall is returned by CompressInto when dst is smaller than
	// MaxCompressedLength(len(src)).
	ErrDstTooSmall = errors.New("destination buffer too small")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than
	// MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
