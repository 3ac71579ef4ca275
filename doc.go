// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

/*
Package snappy implements the Snappy block compression format
(byte-compatible with the C++ reference implementation).

A compressed block is a varint-encoded uncompressed length followed by a
sequence of tagged elements: literals and back-references with 1-, 2- or
4-byte offsets. The format favors speed over ratio; worst-case expansion is
bounded by MaxCompressedLength. Suitable for RPC payloads, storage engines
and wire protocols that use raw Snappy blocks (no framing/CRC layer).

# Decompress

The block carries its own length, so no options are required. From a byte
slice:

	out, err := snappy.Decompress(compressed, nil)

To cap the declared length against untrusted input (recommended for network
data; allocation never exceeds the cap):

	out, err := snappy.Decompress(compressed, &snappy.DecompressOptions{MaxOutputSize: 1 << 20})

To reuse caller-managed output memory (no per-call output allocation):

	dst := make([]byte, expectedLen)
	out, err := snappy.DecompressInto(compressed, dst)

From an io.Reader:

	out, err := snappy.DecompressFromReader(r, nil)

To check a block without producing output (never allocates):

	ok := snappy.IsValidCompressedBuffer(compressed)

# Compress

Options may be nil. Pass reusable working memory to avoid per-call scratch
churn in tight loops:

	out, err := snappy.Compress(data, nil)

	mem := snappy.AcquireWorkingMemory()
	defer snappy.ReleaseWorkingMemory(mem)
	out, err := snappy.Compress(data, &snappy.CompressOptions{Memory: mem})
*/
package snappy
