// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package xsrecover

// BitMatrix32 is a 32x32 square bit-matrix over GF(2): the state-transition
// matrix of one register of the RNG.
type BitMatrix32 struct{ m genMatrix[w32] }

// XSOp32 is one entry of a BitMatrix32's XOR-shift decomposition.
type XSOp32 struct {
	Op      xorShiftOp
	Amount  uint
	Mask    uint32
	HasMask bool
}

func ZeroMatrix32() BitMatrix32 { return BitMatrix32{genZero[w32](32)} }
func EyeMatrix32() BitMatrix32  { return BitMatrix32{genEye[w32](32)} }
func ShrMatrix32(k uint) BitMatrix32 { return BitMatrix32{genShr[w32](32, k)} }
func ShlMatrix32(k uint) BitMatrix32 { return BitMatrix32{genShl[w32](32, k)} }

func (a BitMatrix32) Xor(b BitMatrix32) BitMatrix32 { return BitMatrix32{a.m.xor(b.m)} }
func (a BitMatrix32) Mul(b BitMatrix32) BitMatrix32 { return BitMatrix32{a.m.mul(b.m)} }
func (a BitMatrix32) VecMul(v uint32) uint32        { return uint32(a.m.vecMul(w32(v))) }
func (a BitMatrix32) Pow(n uint64) BitMatrix32       { return BitMatrix32{a.m.pow(n)} }
func (a BitMatrix32) And(mask uint32) BitMatrix32    { return BitMatrix32{a.m.and(w32(mask))} }
func (a BitMatrix32) ShiftRight(k uint) BitMatrix32  { return BitMatrix32{a.m.shiftRight(k)} }
func (a BitMatrix32) ShiftLeft(k uint) BitMatrix32   { return BitMatrix32{a.m.shiftLeft(k)} }
func (a BitMatrix32) Shd(by int) BitMatrix32         { return BitMatrix32{a.m.shd(by)} }
func (a BitMatrix32) Shu(by int) BitMatrix32         { return BitMatrix32{a.m.shu(by)} }
func (a BitMatrix32) Select(r, e int) BitMatrix32    { return BitMatrix32{a.m.selectRange(r, e)} }
func (a BitMatrix32) Vskip(r, e int) BitMatrix32     { return BitMatrix32{a.m.vskip(r, e)} }
func (a BitMatrix32) Hskip(r, e int) BitMatrix32     { return BitMatrix32{a.m.hskip(r, e)} }

func (a BitMatrix32) Inv() (BitMatrix32, error) {
	inv, err := a.m.inv()
	if err != nil {
		return BitMatrix32{}, err
	}
	return BitMatrix32{inv}, nil
}

// Row returns row i as a 32-bit word.
func (a BitMatrix32) Row(i int) uint32 { return uint32(a.m.rows[i]) }

func (a BitMatrix32) XorshiftForm() []XSOp32 {
	raw := a.m.xorshiftForm()
	out := make([]XSOp32, len(raw))
	for i, e := range raw {
		out[i] = XSOp32{Op: e.Op, Amount: e.Amount, Mask: uint32(e.Mask), HasMask: e.HasMask}
	}
	return out
}
