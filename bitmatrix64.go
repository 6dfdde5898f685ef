// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package xsrecover

// BitMatrix64 is a 64x64 square bit-matrix over GF(2).
type BitMatrix64 struct{ m genMatrix[w64] }

type XSOp64 struct {
	Op      xorShiftOp
	Amount  uint
	Mask    uint64
	HasMask bool
}

func ZeroMatrix64() BitMatrix64      { return BitMatrix64{genZero[w64](64)} }
func EyeMatrix64() BitMatrix64       { return BitMatrix64{genEye[w64](64)} }
func ShrMatrix64(k uint) BitMatrix64 { return BitMatrix64{genShr[w64](64, k)} }
func ShlMatrix64(k uint) BitMatrix64 { return BitMatrix64{genShl[w64](64, k)} }

func (a BitMatrix64) Xor(b BitMatrix64) BitMatrix64 { return BitMatrix64{a.m.xor(b.m)} }
func (a BitMatrix64) Mul(b BitMatrix64) BitMatrix64 { return BitMatrix64{a.m.mul(b.m)} }
func (a BitMatrix64) VecMul(v uint64) uint64        { return uint64(a.m.vecMul(w64(v))) }
func (a BitMatrix64) Pow(n uint64) BitMatrix64      { return BitMatrix64{a.m.pow(n)} }
func (a BitMatrix64) And(mask uint64) BitMatrix64   { return BitMatrix64{a.m.and(w64(mask))} }
func (a BitMatrix64) ShiftRight(k uint) BitMatrix64 { return BitMatrix64{a.m.shiftRight(k)} }
func (a BitMatrix64) ShiftLeft(k uint) BitMatrix64  { return BitMatrix64{a.m.shiftLeft(k)} }
func (a BitMatrix64) Shd(by int) BitMatrix64        { return BitMatrix64{a.m.shd(by)} }
func (a BitMatrix64) Shu(by int) BitMatrix64        { return BitMatrix64{a.m.shu(by)} }
func (a BitMatrix64) Select(r, e int) BitMatrix64   { return BitMatrix64{a.m.selectRange(r, e)} }
func (a BitMatrix64) Vskip(r, e int) BitMatrix64    { return BitMatrix64{a.m.vskip(r, e)} }
func (a BitMatrix64) Hskip(r, e int) BitMatrix64    { return BitMatrix64{a.m.hskip(r, e)} }

func (a BitMatrix64) Inv() (BitMatrix64, error) {
	inv, err := a.m.inv()
	if err != nil {
		return BitMatrix64{}, err
	}
	return BitMatrix64{inv}, nil
}

func (a BitMatrix64) Row(i int) uint64 { return uint64(a.m.rows[i]) }

func (a BitMatrix64) XorshiftForm() []XSOp64 {
	raw := a.m.xorshiftForm()
	out := make([]XSOp64, len(raw))
	for i, e := range raw {
		out[i] = XSOp64{Op: e.Op, Amount: e.Amount, Mask: uint64(e.Mask), HasMask: e.HasMask}
	}
	return out
}
