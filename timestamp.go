// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package xsrecover

// FindRngTimestamp walks state backward, one step of all three registers at
// a time, until the three registers agree on every bit the original seeding
// tick actually wrote (spec.md 4.8). It returns the number of steps taken
// and both tick candidates consistent with the recovered common seed (bit 0
// of the seed is destroyed by forcing and cannot be recovered, hence two
// candidates).
func FindRngTimestamp(state RngState) (steps int, ticks [2]uint32) {
	const (
		m1 = ^uint32(0x100001)
		m2 = ^uint32(0x1007)
		m3 = ^uint32(0x1F)
	)
	m12 := m1 & m2
	m13 := m1 & m3

	s1, s2, s3 := state.S1, state.S2, state.S3
	for (s1^s2)&m12 != 0 || (s1^s3)&m13 != 0 {
		s1 = PrevS1(s1)
		s2 = PrevS2(s2)
		s3 = PrevS3(s3)
		steps++
	}

	seed := (s1 & s2) &^ 1
	return steps, [2]uint32{seedToTimestamp(seed), seedToTimestamp(seed | 1)}
}
