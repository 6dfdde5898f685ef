// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

// Package simd provides an N-lane vectorized view of the RNG, used to search
// large state spaces in parallel (spec.md 4.7). Lanes are stepped via the
// precomputed forward/backward matrices from the root package rather than
// by re-running the scalar step formula per lane.
package simd

import "github.com/luxfi/xsrecover"

// LaneRng holds n independent RNG lanes, offset from each other by a fixed
// step interval, plus a memoized jump-size power matrix.
type LaneRng struct {
	n    int
	fwd  [3]xsrecover.BitMatrix32
	back [3]xsrecover.BitMatrix32

	lanes []xsrecover.RngState

	haveJump  bool
	lastJump  int64
	lastDelta [3]xsrecover.BitMatrix32
}

// NewLaneRng seeds n lanes from state, interval steps apart: lane i starts
// at state advanced by interval*i forward steps.
func NewLaneRng(n int, state xsrecover.RngState, interval uint64) (*LaneRng, error) {
	fwd := xsrecover.RngMatrix()
	back, err := xsrecover.RngBackMatrix()
	if err != nil {
		return nil, err
	}

	step := [3]xsrecover.BitMatrix32{
		fwd[0].Pow(interval),
		fwd[1].Pow(interval),
		fwd[2].Pow(interval),
	}

	lanes := make([]xsrecover.RngState, n)
	cur := state
	for i := 0; i < n; i++ {
		lanes[i] = cur
		cur = xsrecover.RngState{
			S1: step[0].VecMul(cur.S1),
			S2: step[1].VecMul(cur.S2),
			S3: step[2].VecMul(cur.S3),
		}
	}

	return &LaneRng{n: n, fwd: fwd, back: back, lanes: lanes}, nil
}

// NewDefaultLaneRng is NewLaneRng with n chosen by DefaultLaneWidth for the
// current machine, for callers that just want a batch sized for this CPU
// rather than a specific lane count.
func NewDefaultLaneRng(state xsrecover.RngState, interval uint64) (*LaneRng, error) {
	return NewLaneRng(DefaultLaneWidth(), state, interval)
}

// Lanes returns the current state of every lane.
func (l *LaneRng) Lanes() []xsrecover.RngState {
	out := make([]xsrecover.RngState, l.n)
	copy(out, l.lanes)
	return out
}

// Rand advances every lane by one forward step and returns their outputs.
func (l *LaneRng) Rand() []uint32 {
	out := make([]uint32, l.n)
	for i := range l.lanes {
		s := &l.lanes[i]
		s.S1 = l.fwd[0].VecMul(s.S1)
		s.S2 = l.fwd[1].VecMul(s.S2)
		s.S3 = l.fwd[2].VecMul(s.S3)
		out[i] = s.S1 ^ s.S2 ^ s.S3
	}
	return out
}

// RandBack steps every lane back by one step and returns the XOR of each
// lane's recovered prior registers. The back-step matrices return the low
// 1, 3 and 4 bits of s1, s2 and s3 as zero, so those bits of the recovered
// state, and the low bits of the returned value, are not the original ones.
func (l *LaneRng) RandBack() []uint32 {
	out := make([]uint32, l.n)
	for i := range l.lanes {
		s := &l.lanes[i]
		s.S1 = l.back[0].VecMul(s.S1)
		s.S2 = l.back[1].VecMul(s.S2)
		s.S3 = l.back[2].VecMul(s.S3)
		out[i] = s.S1 ^ s.S2 ^ s.S3
	}
	return out
}

// Jump advances (or, for negative steps, retreats) every lane by steps. The
// power matrix for the jump size is memoized; it is recomputed only when the
// sign or magnitude of steps changes from the previous call.
func (l *LaneRng) Jump(steps int64) {
	if !l.haveJump || steps != l.lastJump {
		n := steps
		if n < 0 {
			n = -n
		}
		if steps < 0 {
			l.lastDelta = [3]xsrecover.BitMatrix32{
				l.back[0].Pow(uint64(n)),
				l.back[1].Pow(uint64(n)),
				l.back[2].Pow(uint64(n)),
			}
		} else {
			l.lastDelta = [3]xsrecover.BitMatrix32{
				l.fwd[0].Pow(uint64(n)),
				l.fwd[1].Pow(uint64(n)),
				l.fwd[2].Pow(uint64(n)),
			}
		}
		l.lastJump = steps
		l.haveJump = true
	}

	for i := range l.lanes {
		s := &l.lanes[i]
		s.S1 = l.lastDelta[0].VecMul(s.S1)
		s.S2 = l.lastDelta[1].VecMul(s.S2)
		s.S3 = l.lastDelta[2].VecMul(s.S3)
	}
}
