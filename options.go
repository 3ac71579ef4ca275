// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

// CompressOptions configures compression.
type CompressOptions struct {
	// Memory is reusable compression scratch (the match-finder hash table).
	// If nil, scratch is taken from an internal pool for the duration of the
	// call. A WorkingMemory must not be used from multiple goroutines at once.
	Memory *WorkingMemory
}

// DefaultCompressOptions returns options with pool-managed working memory.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// DecompressOptions configures decompression.
// The block carries its own length, so both fields are safety caps, not
// required parameters.
type DecompressOptions struct {
	// MaxOutputSize rejects blocks whose declared uncompressed length exceeds
	// this many bytes, before any allocation (0 = no cap). Set it when
	// decoding untrusted input.
	MaxOutputSize int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with no size caps.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
