// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package xsrecover

import "errors"

// ErrSequenceTooShort is returned by Mod24Solver.Solve when fewer than 20
// mod-24 samples are supplied.
var ErrSequenceTooShort = errors.New("xsrecover: sequence too short, need at least 20 samples")

// ErrValidationFailed is returned when the sequence fully determines the
// 88-bit state (no brute-force residual) but the single candidate fails
// re-simulation against the observed samples.
var ErrValidationFailed = errors.New("xsrecover: candidate state failed validation against sequence")

// ErrNotFound is returned when every brute-force candidate over the
// under-constrained residual bits failed validation.
var ErrNotFound = errors.New("xsrecover: no candidate state matched the sequence")

// ErrMaskedInputNonZero is returned by U56ToSeed.Solve when an input value
// has nonzero bits above bit 55 (the caller was supposed to pass the
// already-masked 56-bit observation).
var ErrMaskedInputNonZero = errors.New("xsrecover: u56 observation has nonzero high byte")
