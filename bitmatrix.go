// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

// Package xsrecover recovers the internal state of a three-register
// XOR-shift pseudo-random generator from partial observations of its
// output, using linear algebra over GF(2).
package xsrecover

import "fmt"

// MatrixNotInvertibleError reports the column at which Gauss-Jordan
// elimination found no pivot row.
type MatrixNotInvertibleError struct {
	StuckAtCol int
}

func (e *MatrixNotInvertibleError) Error() string {
	return fmt.Sprintf("bit matrix not invertible: stuck at column %d", e.StuckAtCol)
}

// genMatrix is the shared GF(2) square bit-matrix engine. BitMatrix32,
// BitMatrix64 and BitMatrix128 are thin exported wrappers around
// genMatrix[w32], genMatrix[w64] and genMatrix[u128] respectively: one
// algorithm, three row widths.
type genMatrix[W word[W]] struct {
	rows  []W
	width int
}

func newGenMatrix[W word[W]](width int) genMatrix[W] {
	return genMatrix[W]{rows: make([]W, width), width: width}
}

func genZero[W word[W]](width int) genMatrix[W] {
	return newGenMatrix[W](width)
}

func genEye[W word[W]](width int) genMatrix[W] {
	m := newGenMatrix[W](width)
	var zero W
	one := zero.one()
	for i := 0; i < width; i++ {
		m.rows[i] = one.shiftLeft(uint(i))
	}
	return m
}

// genShr builds the matrix of the linear map v -> v>>k: the identity shifted
// right by k in the column coordinate.
func genShr[W word[W]](width int, k uint) genMatrix[W] {
	return genEye[W](width).shiftRight(k)
}

func genShl[W word[W]](width int, k uint) genMatrix[W] {
	return genEye[W](width).shiftLeft(k)
}

func (m genMatrix[W]) clone() genMatrix[W] {
	rows := make([]W, len(m.rows))
	copy(rows, m.rows)
	return genMatrix[W]{rows: rows, width: m.width}
}

// xor is componentwise row XOR.
func (m genMatrix[W]) xor(o genMatrix[W]) genMatrix[W] {
	out := newGenMatrix[W](m.width)
	for i := range m.rows {
		out.rows[i] = m.rows[i].xor(o.rows[i])
	}
	return out
}

// shiftRight/shiftLeft shift every row by k: this moves the column
// coordinate of the underlying linear map, not the row coordinate.
func (m genMatrix[W]) shiftRight(k uint) genMatrix[W] {
	out := newGenMatrix[W](m.width)
	for i := range m.rows {
		out.rows[i] = m.rows[i].shiftRight(k)
	}
	return out
}

func (m genMatrix[W]) shiftLeft(k uint) genMatrix[W] {
	out := newGenMatrix[W](m.width)
	for i := range m.rows {
		out.rows[i] = m.rows[i].shiftLeft(k)
	}
	return out
}

// shd/shu slide the row array itself by m, zero-filling the vacated rows;
// this moves the row coordinate, as opposed to shiftLeft/shiftRight above.
func (m genMatrix[W]) shd(by int) genMatrix[W] {
	out := newGenMatrix[W](m.width)
	for i := 0; i < m.width; i++ {
		src := i - by
		if src >= 0 && src < m.width {
			out.rows[i] = m.rows[src]
		}
	}
	return out
}

func (m genMatrix[W]) shu(by int) genMatrix[W] {
	return m.shd(-by)
}

func (m genMatrix[W]) and(mask W) genMatrix[W] {
	out := newGenMatrix[W](m.width)
	for i := range m.rows {
		out.rows[i] = m.rows[i].and(mask)
	}
	return out
}

// selectRange shifts every row right by r and then left by r + (e-r), that
// is by e. Bits below column r are cleared; a column j >= r moves to
// j - r + e, so the result is not an in-place mask of columns [r, e).
func (m genMatrix[W]) selectRange(r, e int) genMatrix[W] {
	return m.shiftRight(uint(r)).shiftLeft(uint(r + (e - r)))
}

// vskip deletes rows [r, e), sliding higher rows down and zero-filling the
// top. Used to drop under-constrained input bits.
func (m genMatrix[W]) vskip(r, e int) genMatrix[W] {
	n := e - r
	out := newGenMatrix[W](m.width)
	// Rows [0,r) keep position; rows [e,width) move down by n to [r, width-n);
	// the top n rows become zero.
	for i := 0; i < r; i++ {
		out.rows[i] = m.rows[i]
	}
	for i := e; i < m.width; i++ {
		out.rows[i-n] = m.rows[i]
	}
	return out
}

// hskip deletes column range [r, e), compacting higher columns down and
// zero-filling the top columns. Columns below r keep their position (masked
// out above r by a shift-left/shift-right round trip); columns at or above e
// shift down by (e-r) to start at r. When e == width the second term is
// naturally zero (shiftRight by the full width), so no special case is
// needed for "drop everything above".
func (m genMatrix[W]) hskip(r, e int) genMatrix[W] {
	low := m.shiftLeft(uint(m.width - r)).shiftRight(uint(m.width - r))
	high := m.shiftRight(uint(e)).shiftLeft(uint(r))
	return low.xor(high)
}

// mul computes m * o: each output row i is (in-row i of m) * o, i.e. the
// row-as-vector product against o.
func (m genMatrix[W]) mul(o genMatrix[W]) genMatrix[W] {
	out := newGenMatrix[W](m.width)
	for i := range m.rows {
		out.rows[i] = o.vecMul(m.rows[i])
	}
	return out
}

// vecMul computes v * m: XOR-accumulate rows of m gated by the bits of v,
// consuming v from bit 0 upward. This is the "column-major" bit action
// spec.md describes: it is not the ordinary matrix-vector product.
func (m genMatrix[W]) vecMul(v W) W {
	var acc W
	for i := 0; i < m.width; i++ {
		if v.bit(uint(i)) {
			acc = acc.xor(m.rows[i])
		}
	}
	return acc
}

// pow computes m^n by binary exponentiation.
func (m genMatrix[W]) pow(n uint64) genMatrix[W] {
	result := genEye[W](m.width)
	base := m
	for n > 0 {
		if n&1 == 1 {
			result = result.mul(base)
		}
		base = base.mul(base)
		n >>= 1
	}
	return result
}

// inv computes the Gauss-Jordan inverse over GF(2).
func (m genMatrix[W]) inv() (genMatrix[W], error) {
	tmp := m.clone()
	out := genEye[W](m.width)

	for i := 0; i < m.width; i++ {
		if !tmp.rows[i].bit(uint(i)) {
			pivot := -1
			for j := i + 1; j < m.width; j++ {
				if tmp.rows[j].bit(uint(i)) {
					pivot = j
					break
				}
			}
			if pivot == -1 {
				return genMatrix[W]{}, &MatrixNotInvertibleError{StuckAtCol: i}
			}
			tmp.rows[i], tmp.rows[pivot] = tmp.rows[pivot], tmp.rows[i]
			out.rows[i], out.rows[pivot] = out.rows[pivot], out.rows[i]
		}
		for j := i + 1; j < m.width; j++ {
			if tmp.rows[j].bit(uint(i)) {
				tmp.rows[j] = tmp.rows[j].xor(tmp.rows[i])
				out.rows[j] = out.rows[j].xor(out.rows[i])
			}
		}
	}

	for i := 0; i < m.width; i++ {
		for j := i + 1; j < m.width; j++ {
			if tmp.rows[i].bit(uint(j)) {
				tmp.rows[i] = tmp.rows[i].xor(tmp.rows[j])
				out.rows[i] = out.rows[i].xor(out.rows[j])
			}
		}
	}

	return out, nil
}

// xorShiftOp is the operation half of one XOR-shift-form entry.
type xorShiftOp int

const (
	opIdentity xorShiftOp = iota
	opShiftLeft
	opShiftRight
)

// genXSOp is one entry of a decomposed XOR-shift form: an operation and the
// shift amount it carries (zero for identity), with an explicit mask only
// when it differs from the operation's default mask.
type genXSOp[W word[W]] struct {
	Op      xorShiftOp
	Amount  uint
	Mask    W
	HasMask bool
}

// xorshiftForm decomposes m into a list of masked shift operations that
// reconstruct the same linear map. It scans diagonals: for each unvisited
// set bit (i, j) it finds the maximal run along that diagonal, XORs the run
// out of a working copy, and emits one entry per run. This is a
// debugging/export aid, not required by the solvers.
func (m genMatrix[W]) xorshiftForm() []genXSOp[W] {
	tmp := m.clone()
	var ops []genXSOp[W]

	for i := 0; i < m.width; i++ {
		for j := 0; j < m.width; j++ {
			if !tmp.rows[i].bit(uint(j)) {
				continue
			}
			// Find the maximal run along this diagonal starting at (i, j).
			ii, jj := i, j
			length := 0
			for ii < m.width && jj < m.width && tmp.rows[ii].bit(uint(jj)) {
				ii++
				jj++
				length++
			}

			var op xorShiftOp
			var amount uint
			switch {
			case i == j:
				op, amount = opIdentity, 0
			case j > i:
				op, amount = opShiftLeft, uint(j-i)
			default:
				op, amount = opShiftRight, uint(i-j)
			}

			var zero W
			allOnes := zero.allOnes()
			defaultMask := m.defaultMaskFor(op, amount, length)
			usedMask := allOnes.shiftRight(uint(m.width - length)).shiftLeft(uint(i))

			entry := genXSOp[W]{Op: op, Amount: amount}
			if !wordsEqual(usedMask, defaultMask) {
				entry.Mask = usedMask
				entry.HasMask = true
			}
			ops = append(ops, entry)

			// XOR the run out of tmp so it is not revisited.
			for k := 0; k < length; k++ {
				bitIdx := uint(j + k)
				row := i + k
				if tmp.rows[row].bit(bitIdx) {
					tmp.rows[row] = tmp.rows[row].xor(zero.one().shiftLeft(bitIdx))
				}
			}
		}
	}
	return ops
}

func (m genMatrix[W]) defaultMaskFor(op xorShiftOp, amount uint, _ int) W {
	var zero W
	allOnes := zero.allOnes()
	switch op {
	case opIdentity:
		return allOnes
	case opShiftLeft:
		return allOnes.shiftRight(amount)
	default: // opShiftRight
		return allOnes.shiftLeft(amount)
	}
}

func wordsEqual[W word[W]](a, b W) bool {
	return a.xor(b).isZero()
}
