// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package xsrecover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func produceMod24(rng *Rng, count int) []uint32 {
	out := make([]uint32, count)
	for i := range out {
		out[i] = rng.Rand() % 24
	}
	return out
}

// TestMod24RoundTrip is scenario S1: for seed = (i << 8) ^ 0x13371337 across
// a sample of the index range, run 40 steps, collect rand() % 24, solve, and
// check the recovered state against the seed masked by the forced bits.
func TestMod24RoundTrip(t *testing.T) {
	tc := newScenarioContext(t)

	for _, i := range []uint32{0, 1, 7, 255, 4096, 0xFFFF} {
		seed := (i << 8) ^ 0x13371337
		rng := NewSeeded(seed, seed, seed)
		samples := produceMod24(rng, 40)

		got, err := tc.mod24.Solve(samples)
		require.NoError(t, err, "seed %#x", seed)

		want := RngState{S1: seed, S2: seed, S3: seed}
		require.True(t, maskedStatesEqual(want, got), "seed %#x: want %+v got %+v", seed, want, got)
	}
}

// TestMod24Brute is scenario S2: seed = 0x13371337, solved across the
// under-constrained sample-length range 22..29.
func TestMod24Brute(t *testing.T) {
	tc := newScenarioContext(t)

	const seed = 0x13371337
	want := RngState{S1: seed, S2: seed, S3: seed}

	for count := 22; count < 30; count++ {
		rng := NewSeeded(seed, seed, seed)
		samples := produceMod24(rng, count)

		got, err := tc.mod24.Solve(samples)
		require.NoError(t, err, "count %d", count)
		require.True(t, maskedStatesEqual(want, got), "count %d: want %+v got %+v", count, want, got)
	}
}

func TestMod24SequenceTooShort(t *testing.T) {
	tc := newScenarioContext(t)
	_, err := tc.mod24.Solve(make([]uint32, 5))
	require.ErrorIs(t, err, ErrSequenceTooShort)
}

func TestMod24ValidationFailed(t *testing.T) {
	tc := newScenarioContext(t)
	// 30 or more samples fully determine the 88-bit state: garbage samples
	// must fail validation, not silently return a wrong state.
	samples := make([]uint32, 30)
	for i := range samples {
		samples[i] = uint32(i % 24)
	}
	_, err := tc.mod24.Solve(samples)
	require.ErrorIs(t, err, ErrValidationFailed)
}
