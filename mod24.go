// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package xsrecover

import (
	"context"
	"fmt"
)

// mod24MaxIndex bounds both how many output-mod-24 samples contribute new
// information (3 bits each, 30*3 = 90 >= 88 live state bits) and how many
// forward-step power matrices the inverse-matrix construction precomputes.
const mod24MaxIndex = 30

// Mod24Solver recovers an RNG state from a sequence of output-mod-24
// samples, each of which leaks the low 3 bits of one output whenever that
// output happens to be less than 24*floor(2^32/24) (spec.md 4.5).
type Mod24Solver struct {
	inv BitMatrix128
}

// NewMod24Solver precomputes the rank-reduced 88-bit inverse matrix once.
// The matrix is a constant of the RNG's design: a construction failure here
// indicates a programming error, not a bad runtime input.
func NewMod24Solver() (*Mod24Solver, error) {
	inv, err := buildMod24InverseMatrix()
	if err != nil {
		return nil, fmt.Errorf("xsrecover: build mod24 inverse matrix: %w", err)
	}
	return &Mod24Solver{inv: inv}, nil
}

// Solve recovers the RNG state from a sequence of output-mod-24 samples.
func (s *Mod24Solver) Solve(sequence []uint32) (RngState, error) {
	return s.SolveContext(context.Background(), sequence)
}

// SolveContext is Solve with best-effort cancellation for the brute-force
// enumeration branch, which for short sequences can explore up to 2^28
// candidates (20 samples leave 88-60 bits unknown; spec.md 5).
func (s *Mod24Solver) SolveContext(ctx context.Context, sequence []uint32) (RngState, error) {
	if len(sequence) < 20 {
		return RngState{}, ErrSequenceTooShort
	}

	knownValues := len(sequence)
	if knownValues > mod24MaxIndex {
		knownValues = mod24MaxIndex
	}
	knownBits := knownValues * 3
	unknownBits := 88 - knownBits
	if unknownBits < 0 {
		unknownBits = 0
	}

	base := mod24ToVector(sequence)

	if unknownBits == 0 {
		if state, ok := decodeAndValidateMod24(s.inv, base, sequence); ok {
			return state, nil
		}
		return RngState{}, ErrValidationFailed
	}

	total := uint64(1) << uint(unknownBits)
	for brute := uint64(0); brute < total; brute++ {
		select {
		case <-ctx.Done():
			return RngState{}, ctx.Err()
		default:
		}
		candidate := base.Xor(U128FromUint64(brute).Shl(uint(knownBits)))
		if state, ok := decodeAndValidateMod24(s.inv, candidate, sequence); ok {
			return state, nil
		}
	}
	return RngState{}, ErrNotFound
}

func decodeAndValidateMod24(inv BitMatrix128, vector U128, sequence []uint32) (RngState, bool) {
	state := vectorToSeed(inv.VecMul(vector))
	rng := FromState(state)
	for _, want := range sequence {
		if rng.Rand()%24 != want {
			return RngState{}, false
		}
	}
	return state, true
}

// mod24ToVector packs the low 3 bits of each sample into consecutive 3-bit
// slots, up to mod24MaxIndex samples, masked to the low 88 bits.
func mod24ToVector(samples []uint32) U128 {
	var v U128
	limit := len(samples)
	if limit > mod24MaxIndex {
		limit = mod24MaxIndex
	}
	for i := 0; i < limit; i++ {
		bits := U128FromUint64(uint64(samples[i] & 7))
		v = v.Xor(bits.Shl(uint(3 * i)))
	}
	return v.And(liveStateMask)
}

// liveStateMask is the low-88-bits mask shared by both solvers' packed
// observation vectors.
var liveStateMask = U128{Hi: (uint64(1) << 24) - 1, Lo: ^uint64(0)}

// vectorToSeed decodes a 128-bit pre-image into the three register values it
// packs: 31 bits of s1, then 29 of s2, then 28 of s3, each shifted up to sit
// above the forced low bits the forward step discards (spec.md 4.5, 9). The
// forced bits themselves are not reinserted here.
func vectorToSeed(v U128) RngState {
	s1 := uint32(v.Shl(1).Uint64())
	v = v.Shr(31)
	s2 := uint32(v.Shl(3).Uint64())
	v = v.Shr(29)
	s3 := uint32(v.Shl(4).Uint64())
	return RngState{S1: s1, S2: s2, S3: s3}
}

// buildMod24InverseMatrix assembles the 128x128 frame matrix described in
// spec.md 4.5 and inverts it.
func buildMod24InverseMatrix() (BitMatrix128, error) {
	fwd := RngMatrix()
	raw := ZeroMatrix128()

	for regIdx := 0; regIdx < 3; regIdx++ {
		for p := 1; p <= mod24MaxIndex; p++ {
			mp := fwd[regIdx].Pow(uint64(p))
			for r := 0; r < 32; r++ {
				rowVal := mp.Row(r)
				row := 32*regIdx + r
				acc := raw.Row(row)
				for b := 0; b < 3; b++ {
					if (rowVal>>uint(b))&1 != 0 {
						col := 3*(p-1) + b
						acc = acc.Xor(U128FromUint64(1).Shl(uint(col)))
					}
				}
				raw.SetRow(row, acc)
			}
		}
	}

	// Drop the forced input rows. Order matters: each vskip compacts the
	// matrix the next one operates on.
	compact := raw.Vskip(64, 68).Vskip(32, 35).Vskip(0, 1)
	compact = compact.Hskip(88, 128)

	eye := EyeMatrix128()
	for i := 88; i < 128; i++ {
		compact.SetRow(i, eye.Row(i))
	}

	return compact.Inv()
}
