// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package xsrecover

import "fmt"

// u56Steps is the number of forward steps spanned by two 56-bit
// observations (spec.md 4.6): four consecutive outputs, the first 24 bits
// of each pair's first output and the full second output.
const u56Steps = 4

// U56ToSeed recovers an RNG state from two 56-bit observations, each formed
// as ((rand() & 0x00FFFFFF) << 32) | (rand() & 0xFFFFFFFF) for two
// consecutive output pairs.
type U56ToSeed struct {
	inv BitMatrix128
}

// NewU56ToSeed precomputes the rank-reduced 88-bit inverse matrix once.
func NewU56ToSeed() (*U56ToSeed, error) {
	inv, err := buildU56InverseMatrix()
	if err != nil {
		return nil, fmt.Errorf("xsrecover: build u56 inverse matrix: %w", err)
	}
	return &U56ToSeed{inv: inv}, nil
}

// Solve recovers the RNG state from two masked 56-bit observations. Both
// values must have their high 8 bits clear.
func (s *U56ToSeed) Solve(val1, val2 uint64) (RngState, error) {
	if val1>>56 != 0 || val2>>56 != 0 {
		return RngState{}, ErrMaskedInputNonZero
	}
	vector := twoU56ToVector(val1, val2)
	return vectorToSeed(s.inv.VecMul(vector)), nil
}

// twoU56ToVector packs two 56-bit observations into the 88-bit layout the
// inverse matrix expects (spec.md 4.6).
func twoU56ToVector(val1, val2 uint64) U128 {
	v0 := val1 >> 32
	v1 := (val1 << 32) >> 32
	v2 := val2 >> 32
	v3 := (val2 << 32) >> 36

	vector := U128FromUint64(v0).
		Xor(U128FromUint64(v1).Shl(24)).
		Xor(U128FromUint64(v2).Shl(56)).
		Xor(U128FromUint64(v3).Shl(80))

	return vector.And(liveStateMask)
}

// buildU56InverseMatrix assembles the 128x128 frame matrix described in
// spec.md 4.6: the same frame as Mod24Solver's, but spanning u56Steps
// forward steps with full 32-bit output rows rather than 3-bit slots.
func buildU56InverseMatrix() (BitMatrix128, error) {
	fwd := RngMatrix()
	raw := ZeroMatrix128()

	for regIdx := 0; regIdx < 3; regIdx++ {
		for p := 1; p <= u56Steps; p++ {
			mp := fwd[regIdx].Pow(uint64(p))
			for r := 0; r < 32; r++ {
				rowVal := mp.Row(r)
				row := 32*regIdx + r
				acc := raw.Row(row)
				for b := 0; b < 32; b++ {
					if (rowVal>>uint(b))&1 != 0 {
						col := (p-1)*32 + b
						acc = acc.Xor(U128FromUint64(1).Shl(uint(col)))
					}
				}
				raw.SetRow(row, acc)
			}
		}
	}

	compact := raw.Vskip(64, 68).Vskip(32, 35).Vskip(0, 1)
	// Three sequential column drops: bits 88..100 are beyond the 56-bit
	// range of the second observation or its masked-off high byte; bits
	// 24..32 are the masked-off high byte of the first observation's first
	// 24-bit half; the remainder beyond 88 is dropped last.
	compact = compact.Hskip(88, 100)
	compact = compact.Hskip(24, 32)
	compact = compact.Hskip(88, 128)

	eye := EyeMatrix128()
	for i := 88; i < 128; i++ {
		compact.SetRow(i, eye.Row(i))
	}

	return compact.Inv()
}
