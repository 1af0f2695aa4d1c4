// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aoc

// Date identifies a single puzzle. Neither field is validated; both are used
// verbatim in URLs and cache filenames.
type Date struct {
	Day  string
	Year string
}

func NewDate(day, year string) Date {
	return Date{Day: day, Year: year}
}

func (d Date) String() string {
	return d.Day + "-" + d.Year
}
