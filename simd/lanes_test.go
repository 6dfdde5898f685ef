// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package simd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/xsrecover"
)

// TestLaneRngMatchesScalar is testable property 4: N consecutive scalar
// outputs equal the first N lanes of the SIMD RNG initialized from that
// state with interval=1.
func TestLaneRngMatchesScalar(t *testing.T) {
	state := xsrecover.NewSeeded(0x13371337, 0xCAFEBABE, 0xDEADBEEF).State()

	scalar := xsrecover.FromState(state)
	want := make([]uint32, 8)
	for i := range want {
		want[i] = scalar.Rand()
	}

	lanes, err := NewLaneRng(8, state, 1)
	require.NoError(t, err)
	got := lanes.Rand()

	require.Equal(t, want, got)
}

// TestLaneRngJumpInvertsBack is testable property 5: jump(n); jump(-n) is
// identity on the SIMD RNG's emitted sequence. The raw lane states are not
// compared: the back-step matrices return each register's low bits as zero,
// and a forward step never reads those bits.
func TestLaneRngJumpInvertsBack(t *testing.T) {
	state := xsrecover.NewSeeded(0x13371337, 0xCAFEBABE, 0xDEADBEEF).State()

	lanes, err := NewLaneRng(4, state, 1)
	require.NoError(t, err)
	ref, err := NewLaneRng(4, state, 1)
	require.NoError(t, err)

	lanes.Jump(0x1337)
	lanes.Jump(-0x1337)

	for i := 0; i < 16; i++ {
		require.Equal(t, ref.Rand(), lanes.Rand(), "output %d", i)
	}
}

// TestNewDefaultLaneRngUsesDefaultLaneWidth checks that the convenience
// constructor sizes its batch from DefaultLaneWidth rather than a fixed N.
func TestNewDefaultLaneRngUsesDefaultLaneWidth(t *testing.T) {
	state := xsrecover.NewSeeded(0x13371337, 0xCAFEBABE, 0xDEADBEEF).State()

	lanes, err := NewDefaultLaneRng(state, 1)
	require.NoError(t, err)
	require.Equal(t, DefaultLaneWidth(), len(lanes.Lanes()))
}

// TestLaneRngJumpMatchesScalar is scenario S6: lane 0 of jump(0x1337) must
// equal the scalar RNG's 0x1338-th output, for N=8 lanes.
func TestLaneRngJumpMatchesScalar(t *testing.T) {
	state := xsrecover.NewSeeded(0x13371337, 0xCAFEBABE, 0xDEADBEEF).State()

	scalar := xsrecover.FromState(state)
	var want uint32
	for i := 0; i < 0x1338; i++ {
		want = scalar.Rand()
	}

	lanes, err := NewLaneRng(8, state, 1)
	require.NoError(t, err)
	lanes.Jump(0x1337)
	got := lanes.Rand()

	require.Equal(t, want, got[0])
}
