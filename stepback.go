// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package xsrecover

// PrevS1 inverts one forward step of register 1, correct on every bit
// except bit 0, which the forward step discards and which is returned as
// zero (see spec.md 4.4).
//
//	s  = vuts rqpo nmlk jihg fedc ba98 7654 3210
//	XOR      jihg fedc ba98 7654 321
//	                                v utsr qpon mlkj
//	                                i hgfe dcba 9876
func PrevS1(s uint32) uint32 {
	bits19_01 := s >> 13
	bits31_20 := ((bits19_01 >> 6) & 0xfff) ^ (s >> 1)
	return (bits31_20 << 20) | (bits19_01 << 1)
}

// PrevS2 inverts one forward step of register 2.
//
//	s  = vuts rqpo nmlk jihg fedc ba98 7654 3210
//	XOR rqpo nmlk jihg fedc ba98 7654 3
//	                                    vut srqp
//	                                    tsr qpon
func PrevS2(s uint32) uint32 {
	bits27_03 := s >> 7
	bits29_28 := ((s >> 30) ^ (s >> 3)) & 0b11
	bits31_30 := (s >> 5) ^ bits29_28
	return (bits31_30 << 30) | (bits29_28 << 28) | (bits27_03 << 3)
}

// PrevS3 inverts one forward step of register 3. The forward step mixes a
// 3-bit feedback chunk through its low bits before it fully propagates, so
// inversion unrolls the same chunk six times.
//
//	s  = vuts rqpo nmlk jihg fedc ba98 7654 3210
//	XOR edcb a987 654
//	                  v utsr qpon mlkj ihgf edcb
//	                  s rqpo nmlk jihg fedc ba98
func PrevS3(s uint32) uint32 {
	bits14_04 := s >> 21
	window := s >> 4
	var bits31_15 uint32
	chunk := (bits14_04 >> 8) & 0b111
	for i := 0; i < 6; i++ {
		chunk = (window ^ chunk) & 0b111
		window >>= 3
		bits31_15 = (bits31_15 >> 3) | (chunk << 29)
	}
	return (bits31_15 << 1) | (bits14_04 << 4)
}
