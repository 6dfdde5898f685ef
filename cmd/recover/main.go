// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

// Command recover is a thin driver around the xsrecover library: it reads a
// whitespace-separated list of output-mod-24 samples from its arguments and
// prints the recovered RNG state. It is not part of the library's tested
// surface (spec.md's Non-goals exclude any CLI); it exists only to give the
// library a runnable example entry point.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/luxfi/xsrecover"
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatal("usage: recover <mod24 sample> [mod24 sample ...]")
	}

	sequence := make([]uint32, 0, flag.NArg())
	for _, arg := range flag.Args() {
		for _, field := range strings.Fields(arg) {
			v, err := strconv.ParseUint(field, 10, 32)
			if err != nil {
				log.Fatalf("invalid mod24 sample %q: %v", field, err)
			}
			sequence = append(sequence, uint32(v))
		}
	}

	solver, err := xsrecover.NewMod24Solver()
	if err != nil {
		log.Fatalf("build solver: %v", err)
	}

	state, err := solver.Solve(sequence)
	if err != nil {
		log.Fatalf("solve: %v", err)
	}

	steps, ticks := xsrecover.FindRngTimestamp(state)
	fmt.Printf("state: s1=%#08x s2=%#08x s3=%#08x\n", state.S1, state.S2, state.S3)
	fmt.Printf("seeding tick: %d steps back, candidates [%d, %d]\n", steps, ticks[0], ticks[1])
}
