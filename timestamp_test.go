// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package xsrecover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFindRngTimestamp is scenario S5: seed with tick 0x1337, advance
// 10,000,000 steps, recover a step count and two tick candidates such that
// re-seeding from one of them and advancing that many steps reproduces the
// next observed output.
func TestFindRngTimestamp(t *testing.T) {
	if testing.Short() {
		t.Skip("10,000,000-step walk is slow under -short")
	}

	rng := NewFromTick(0x1337)
	const advance = 10_000_000
	for i := 0; i < advance; i++ {
		rng.Rand()
	}
	state := rng.State()
	wantNext := FromState(state).Rand()

	steps, ticks := FindRngTimestamp(state)

	matched := false
	for _, tick := range ticks {
		candidate := NewFromTick(tick)
		for i := 0; i < steps; i++ {
			candidate.Rand()
		}
		if candidate.Rand() == wantNext {
			matched = true
			break
		}
	}
	require.True(t, matched, "neither tick candidate %v reproduced the next output after %d steps", ticks, steps)
}
