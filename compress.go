// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import "io"

// Compress compresses src as one Snappy block. opts may be nil
// (pool-managed working memory). Compress of an empty or nil src yields the
// one-byte block {0x00}.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	bound := MaxCompressedLength(len(src))
	if bound < 0 {
		return nil, ErrTooLarge
	}

	return CompressInto(src, make([]byte, bound), opts)
}

// CompressInto compresses src into the caller-provided dst and returns the
// filled prefix of dst. dst must be at least MaxCompressedLength(len(src))
// bytes, otherwise ErrDstTooSmall; no allocation happens on that path.
func CompressInto(src, dst []byte, opts *CompressOptions) ([]byte, error) {
	bound := MaxCompressedLength(len(src))
	if bound < 0 {
		return nil, ErrTooLarge
	}

	if len(dst) < bound {
		return nil, ErrDstTooSmall
	}

	if opts == nil {
		opts = DefaultCompressOptions()
	}

	mem := opts.Memory
	if mem == nil {
		mem = AcquireWorkingMemory()
		defer ReleaseWorkingMemory(mem)
	}

	d := putLength(dst, uint64(len(src)))
	for rest := src; len(rest) > 0; {
		block := rest
		if len(block) > maxBlockSize {
			block = block[:maxBlockSize]
		}
		rest = rest[len(block):]

		d += compressFragment(dst[d:], block, mem.tableFor(len(block)))
	}

	return dst[:d], nil
}

// CompressToWriter compresses src and streams the block to w: the length
// prefix first, then one chunk per fragment. Returns the total bytes written.
// The only failure modes are writer errors and an unrepresentable src length.
func CompressToWriter(w io.Writer, src []byte, opts *CompressOptions) (int, error) {
	if MaxCompressedLength(len(src)) < 0 {
		return 0, ErrTooLarge
	}

	if opts == nil {
		opts = DefaultCompressOptions()
	}

	mem := opts.Memory
	if mem == nil {
		mem = AcquireWorkingMemory()
		defer ReleaseWorkingMemory(mem)
	}

	var prefix [maxVarintLen32]byte
	total, err := w.Write(prefix[:putLength(prefix[:], uint64(len(src)))])
	if err != nil {
		return total, err
	}

	chunk := make([]byte, MaxCompressedLength(maxBlockSize))
	for rest := src; len(rest) > 0; {
		block := rest
		if len(block) > maxBlockSize {
			block = block[:maxBlockSize]
		}
		rest = rest[len(block):]

		n, err := w.Write(chunk[:compressFragment(chunk, block, mem.tableFor(len(block)))])
		total += n
		if err != nil {
			return total, err
		}
	}

	return total, nil
}
