// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package aoc fetches Advent of Code puzzle inputs, caches them under a local
// inputs/ directory so solvers only hit the network once per puzzle, and
// reports how many stars the session owner has earned on a puzzle.
//
// Typical use from a solver:
//
//	in, err := aoc.LoadOrFetchInput("5", "2017")
//	if err != nil {
//		log.Fatal(err)
//	}
//	nums, err := aoc.Split[int](in)
//
// LoadOrFetchInput reads the session token from AOC_SESSION only when the
// cache misses.
package aoc
