// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

//go:build !release

// Package assert checks internal invariants in development builds.
// Building with the `release` tag turns every check into a no-op.
package assert

func panicMessage(msg []string) {
	if len(msg) == 0 {
		panic("assert failed")
	}

	panic(msg[0])
}

func True(cond bool, msg ...string) {
	if !cond {
		panicMessage(msg)
	}
}
