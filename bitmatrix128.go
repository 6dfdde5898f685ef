// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package xsrecover

// BitMatrix128 is a 128x128 square bit-matrix over GF(2). It backs the
// rank-reduced inverse matrices built by Mod24Solver and U56ToSeed, where
// the 88 live state bits are packed into a 128-bit observation vector.
type BitMatrix128 struct{ m genMatrix[u128] }

type XSOp128 struct {
	Op      xorShiftOp
	Amount  uint
	Mask    U128
	HasMask bool
}

// U128 is the exported 128-bit value type used at the BitMatrix128 API
// boundary (vectors in, vectors out); Go has no built-in 128-bit integer.
type U128 struct {
	Hi, Lo uint64
}

func u128ToPublic(v u128) U128 { return U128{Hi: v.hi, Lo: v.lo} }
func u128FromPublic(v U128) u128 { return u128{hi: v.Hi, lo: v.Lo} }

// U128FromUint64 lifts a plain uint64 into the low 64 bits of a U128.
func U128FromUint64(v uint64) U128 { return U128{Lo: v} }

func (v U128) Xor(o U128) U128 { return u128ToPublic(u128FromPublic(v).xor(u128FromPublic(o))) }
func (v U128) And(o U128) U128 { return u128ToPublic(u128FromPublic(v).and(u128FromPublic(o))) }
func (v U128) Shl(k uint) U128 { return u128ToPublic(u128FromPublic(v).shiftLeft(k)) }
func (v U128) Shr(k uint) U128 { return u128ToPublic(u128FromPublic(v).shiftRight(k)) }
func (v U128) Bit(i uint) bool { return u128FromPublic(v).bit(i) }

// Uint64 returns the low 64 bits.
func (v U128) Uint64() uint64 { return v.Lo }

func ZeroMatrix128() BitMatrix128      { return BitMatrix128{genZero[u128](128)} }
func EyeMatrix128() BitMatrix128       { return BitMatrix128{genEye[u128](128)} }
func ShrMatrix128(k uint) BitMatrix128 { return BitMatrix128{genShr[u128](128, k)} }
func ShlMatrix128(k uint) BitMatrix128 { return BitMatrix128{genShl[u128](128, k)} }

func (a BitMatrix128) Xor(b BitMatrix128) BitMatrix128 { return BitMatrix128{a.m.xor(b.m)} }
func (a BitMatrix128) Mul(b BitMatrix128) BitMatrix128 { return BitMatrix128{a.m.mul(b.m)} }
func (a BitMatrix128) VecMul(v U128) U128 {
	return u128ToPublic(a.m.vecMul(u128FromPublic(v)))
}
func (a BitMatrix128) Pow(n uint64) BitMatrix128     { return BitMatrix128{a.m.pow(n)} }
func (a BitMatrix128) And(mask U128) BitMatrix128    { return BitMatrix128{a.m.and(u128FromPublic(mask))} }
func (a BitMatrix128) ShiftRight(k uint) BitMatrix128 { return BitMatrix128{a.m.shiftRight(k)} }
func (a BitMatrix128) ShiftLeft(k uint) BitMatrix128  { return BitMatrix128{a.m.shiftLeft(k)} }
func (a BitMatrix128) Shd(by int) BitMatrix128        { return BitMatrix128{a.m.shd(by)} }
func (a BitMatrix128) Shu(by int) BitMatrix128        { return BitMatrix128{a.m.shu(by)} }
func (a BitMatrix128) Select(r, e int) BitMatrix128   { return BitMatrix128{a.m.selectRange(r, e)} }
func (a BitMatrix128) Vskip(r, e int) BitMatrix128    { return BitMatrix128{a.m.vskip(r, e)} }
func (a BitMatrix128) Hskip(r, e int) BitMatrix128    { return BitMatrix128{a.m.hskip(r, e)} }

func (a BitMatrix128) Inv() (BitMatrix128, error) {
	inv, err := a.m.inv()
	if err != nil {
		return BitMatrix128{}, err
	}
	return BitMatrix128{inv}, nil
}

func (a BitMatrix128) Row(i int) U128 { return u128ToPublic(a.m.rows[i]) }

// SetRow is used only by the solver matrix builders (mod24.go, u56.go) while
// assembling the 128x128 frame matrix row by row before inverting it.
func (a *BitMatrix128) SetRow(i int, v U128) { a.m.rows[i] = u128FromPublic(v) }

func (a BitMatrix128) XorshiftForm() []XSOp128 {
	raw := a.m.xorshiftForm()
	out := make([]XSOp128, len(raw))
	for i, e := range raw {
		out[i] = XSOp128{Op: e.Op, Amount: e.Amount, Mask: u128ToPublic(e.Mask), HasMask: e.HasMask}
	}
	return out
}
