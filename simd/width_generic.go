// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

//go:build !amd64

package simd

// DefaultLaneWidth reports how many lanes LaneRng should process per batch
// on this machine. Outside amd64 this module has no feature probe to
// consult, so it defaults to a single lane.
func DefaultLaneWidth() int {
	return 1
}
