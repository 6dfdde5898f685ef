// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// DefaultLaneWidth reports how many lanes LaneRng should process per batch
// on this machine. On amd64 it prefers 8 lanes when AVX2 integer shifts are
// available (each GF(2) matrix-vector product is independent per lane, so a
// wider batch amortizes the per-call overhead); it falls back to 4 lanes
// otherwise.
func DefaultLaneWidth() int {
	if cpu.X86.HasAVX2 {
		return 8
	}
	return 4
}
