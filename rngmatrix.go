// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package xsrecover

// RngMatrix returns the three 32x32 matrices M1, M2, M3 such that one
// forward step of register k equals s_k . M_k (spec.md 4.3). Each is
// assembled from Eye/And/Shift terms mirroring the scalar step formulas in
// rng.go's Rand method exactly.
func RngMatrix() [3]BitMatrix32 {
	eye := EyeMatrix32()

	m1 := eye.And(0xFFFFFFFE).ShiftLeft(12).
		Xor(eye.And(0x0007FFC0).ShiftRight(6)).
		Xor(eye.ShiftRight(19))

	m2 := eye.And(0xFFFFFFF8).ShiftLeft(4).
		Xor(eye.ShiftRight(25)).
		Xor(eye.And(0x3F800000).ShiftRight(23))

	m3 := eye.And(0xFFFFFFF0).ShiftLeft(17).
		Xor(eye.ShiftRight(11)).
		Xor(eye.And(0x1FFFFF00).ShiftRight(8))

	return [3]BitMatrix32{m1, m2, m3}
}

// RngBackMatrix returns the inverse step matrices. The forward matrices are
// singular: each forgets the register's low forced bits. Rank is borrowed by
// XORing in an identity restricted to those forced bits before inverting,
// then the recovered pre-image is masked back down to zero out the
// forced-bit guess the borrowed term introduced (spec.md 4.3, 9).
func RngBackMatrix() ([3]BitMatrix32, error) {
	fwd := RngMatrix()
	eye := EyeMatrix32()

	forcedMasks := [3]uint32{0x1, 0x7, 0xF}
	reMaskBits := [3]uint{1, 3, 4}

	var back [3]BitMatrix32
	for k := 0; k < 3; k++ {
		borrowed := fwd[k].Xor(eye.And(forcedMasks[k]))
		inv, err := borrowed.Inv()
		if err != nil {
			return [3]BitMatrix32{}, err
		}
		back[k] = inv.ShiftRight(reMaskBits[k]).ShiftLeft(reMaskBits[k])
	}
	return back, nil
}
