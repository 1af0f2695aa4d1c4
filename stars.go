// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aoc

// Stars is the number of completion stars earned on a single puzzle.
type Stars int

const (
	Zero Stars = iota
	One
	Two
)

func (s Stars) String() string {
	switch s {
	case Zero:
		return "Zero"
	case One:
		return "One"
	case Two:
		return "Two"
	default:
		return "Unknown"
	}
}
