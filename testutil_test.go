// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package xsrecover

import "testing"

// scenarioContext bundles the solvers, which are expensive to build (each
// precomputes and inverts a 128x128 matrix) and safe to reuse read-only
// across subtests once constructed.
type scenarioContext struct {
	mod24 *Mod24Solver
	u56   *U56ToSeed
}

func newScenarioContext(t testing.TB) *scenarioContext {
	t.Helper()

	mod24, err := NewMod24Solver()
	if err != nil {
		t.Fatalf("NewMod24Solver: %v", err)
	}
	u56, err := NewU56ToSeed()
	if err != nil {
		t.Fatalf("NewU56ToSeed: %v", err)
	}

	return &scenarioContext{mod24: mod24, u56: u56}
}

// maskedStatesEqual reports whether a and b agree on every bit the seeding
// tick actually wrote, ignoring the forced bits and the low 1, 3 and 4 bits
// of s1, s2 and s3, which a forward step discards and the solvers return as
// zero (spec.md 4.8, 8 S1/S2).
func maskedStatesEqual(a, b RngState) bool {
	const (
		m1 = ^uint32(0x100001)
		m2 = ^uint32(0x1007)
		m3 = ^uint32(0x1F)
	)
	return (a.S1^b.S1)&m1 == 0 && (a.S2^b.S2)&m2 == 0 && (a.S3^b.S3)&m3 == 0
}
