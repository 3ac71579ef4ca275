// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

// copyBackRef copies length bytes from dst[outputPos-offset:] to
// dst[outputPos:]. If offset < length, source and destination overlap; the
// copy must run forward byte-by-byte so that bytes produced by the copy feed
// its own tail (RLE extension). The built-in copy has memmove semantics on
// overlap, which would not replicate the pattern. The caller has already
// validated offset and the output bound.
//
// A word-at-a-time overlap path would need ~10 writable bytes past the
// logical end of dst; exactly-sized destinations have no such margin, so
// overlapping copies always take the byte loop.
func copyBackRef(dst []byte, outputPos, offset, length int) {
	mPos := outputPos - offset

	if offset >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return
	}

	for i := 0; i < length; i++ {
		dst[outputPos+i] = dst[mPos+i]
	}
}
