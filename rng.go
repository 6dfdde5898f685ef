// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package xsrecover

// RngState is the triple of register values the RNG carries between steps.
// Forced bits (s1 bit 20, s2 bit 12, s3 bit 4) are set by NewFromTick and
// NewSeeded; FromState accepts whatever triple it is given, forced or not.
type RngState struct {
	S1, S2, S3 uint32
}

// Tick-to-seed hash constants (see NewFromTick and FindRngTimestamp).
const (
	tickToSeedMul = 1170746341
	tickToSeedSub = 755606699
	// seedToTickMul is the modular inverse of tickToSeedMul mod 2^32.
	seedToTickMul = 963516909
)

// Forced-bit masks applied at seeding.
const (
	forcedBitS1 = 0x100000
	forcedBitS2 = 0x1000
	forcedBitS3 = 0x10
)

// Rng is the reference scalar implementation of the three-register
// XOR-shift generator. It is deliberately straightforward: it exists to
// generate inputs for the solvers and to validate candidate states, not to
// be fast.
type Rng struct {
	s1, s2, s3 uint32
}

// NewFromTick derives a 32-bit seed from tick via the tick-to-seed hash and
// seeds all three registers from it.
func NewFromTick(tick uint32) *Rng {
	seed := tick*tickToSeedMul - tickToSeedSub
	return NewSeeded(seed, seed, seed)
}

// NewSeeded seeds the three registers independently, forcing bit 20 of s1,
// bit 12 of s2 and bit 4 of s3.
func NewSeeded(s1, s2, s3 uint32) *Rng {
	return &Rng{
		s1: s1 | forcedBitS1,
		s2: s2 | forcedBitS2,
		s3: s3 | forcedBitS3,
	}
}

// FromState restores an Rng from an explicit state triple, without forcing
// any bits; callers that recovered a state from a solver are expected to OR
// in the forced bits themselves if they want a "canonical" seeded state.
func FromState(state RngState) *Rng {
	return &Rng{s1: state.S1, s2: state.S2, s3: state.S3}
}

// State returns the current register triple.
func (r *Rng) State() RngState {
	return RngState{S1: r.s1, S2: r.s2, S3: r.s3}
}

// Rand advances all three registers by one step and returns the XOR of the
// new register values.
func (r *Rng) Rand() uint32 {
	r.s1 = ((r.s1 & 0xFFFFFFFE) << 12) ^ (((r.s1 & 0x0007FFC0) ^ (r.s1 >> 13)) >> 6)
	r.s2 = ((r.s2 & 0xFFFFFFF8) << 4) ^ (((r.s2 >> 2) ^ (r.s2 & 0x3F800000)) >> 23)
	r.s3 = ((r.s3 & 0xFFFFFFF0) << 17) ^ (((r.s3 >> 3) ^ (r.s3 & 0x1FFFFF00)) >> 8)
	return r.s1 ^ r.s2 ^ r.s3
}

// seedToTimestamp inverts NewFromTick's hash: given a seed, recover the tick
// that produced it.
func seedToTimestamp(seed uint32) uint32 {
	return (seed + tickToSeedSub) * seedToTickMul
}
