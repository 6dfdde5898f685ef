// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package xsrecover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestStepBackInvertsForwardStep is testable property 3: for every register
// k and state s, prev_sk(next_sk(s)) == s on every bit above the forced low
// bits that register loses on a forward step.
func TestStepBackInvertsForwardStep(t *testing.T) {
	matrices := RngMatrix()
	masks := [3]uint32{^uint32(0x1), ^uint32(0x7), ^uint32(0xF)}
	prevFns := [3]func(uint32) uint32{PrevS1, PrevS2, PrevS3}

	for ii := uint32(0); ii < (1 << 16); ii++ {
		s := (ii << 8) | 0x13371337
		for k := 0; k < 3; k++ {
			next := matrices[k].VecMul(s)
			got := prevFns[k](next) & masks[k]
			want := s & masks[k]
			require.Equal(t, want, got, "register %d, seed %#x", k+1, s)
		}
	}
}
