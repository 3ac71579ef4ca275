// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import "sync"

// Hash table sizing: one 16-bit slot per bucket, power-of-two sized to the
// fragment, capped so the whole table stays cache-resident.
const (
	minHashTableSize = 1 << 8
	maxHashTableSize = 1 << 14
)

// WorkingMemory is caller-reusable compression scratch: the match-finder hash
// table. Slots hold positions relative to the current fragment start, so
// 16 bits suffice for 32 KiB fragments. A single instance serves any number
// of sequential Compress calls but must not be shared between goroutines.
type WorkingMemory struct {
	table [maxHashTableSize]uint16
}

// tableFor returns the zeroed table slice for a fragment of n bytes: the
// smallest power of two at or above n, clamped to [minHashTableSize,
// maxHashTableSize]. Only the returned prefix is zeroed, which keeps reuse
// cheap for small inputs.
func (m *WorkingMemory) tableFor(n int) []uint16 {
	size := minHashTableSize
	for size < maxHashTableSize && size < n {
		size <<= 1
	}

	t := m.table[:size]
	clear(t)

	return t
}

// workingMemoryPool recycles scratch for callers that do not manage their own.
var workingMemoryPool = sync.Pool{
	New: func() any {
		return &WorkingMemory{}
	},
}

// AcquireWorkingMemory acquires compression scratch from the pool.
// Pair with ReleaseWorkingMemory; pass via CompressOptions.Memory.
func AcquireWorkingMemory() *WorkingMemory {
	return workingMemoryPool.Get().(*WorkingMemory)
}

// ReleaseWorkingMemory returns scratch to the pool. Releasing nil is a no-op.
func ReleaseWorkingMemory(m *WorkingMemory) {
	if m == nil {
		return
	}

	workingMemoryPool.Put(m)
}
