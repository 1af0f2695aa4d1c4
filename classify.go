// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aoc

import (
	"fmt"
	"strings"
)

// probe maps a set of body substrings to a failure. Any one substring
// matching is enough.
type probe struct {
	substrings []string
	kind       ErrorKind
	cause      func(d Date) string
}

func (p probe) matches(body string) bool {
	for _, s := range p.substrings {
		if strings.Contains(body, s) {
			return true
		}
	}
	return false
}

func fixed(s string) func(Date) string {
	return func(Date) string { return s }
}

// The pages are HTML meant for humans, so these strings are the only signal
// we get. Keep every probe in this file.
var (
	notLiveProbe = probe{
		substrings: []string{"Please don't repeatedly request", "Not Found"},
		kind:       KindNotLive,
		cause: func(d Date) string {
			return fmt.Sprintf("Puzzle for day %s is not live yet", d.Day)
		},
	}

	// Order matters, the first match wins.
	inputProbes = []probe{
		{
			substrings: []string{"Service Unavailable"},
			kind:       KindOutage,
			cause:      fixed("Advent of Code is dead"),
		},
		notLiveProbe,
		{
			substrings: []string{"log in"},
			kind:       KindAuth,
			cause:      fixed("Session cookie is invalid"),
		},
		{
			substrings: []string{"Internal Server Error"},
			kind:       KindUpstream,
			cause:      fixed("Internal Server Error, invalid session cookie perhaps?"),
		},
	}

	starProbes = []struct {
		substring string
		stars     Stars
	}{
		{"The first half of this puzzle is complete!", One},
		{"Both parts of this puzzle are complete!", Two},
	}
)

// classifyInput returns nil if body is a usable puzzle input.
func classifyInput(d Date, body string) error {
	for _, p := range inputProbes {
		if p.matches(body) {
			return newFetchError(p.kind, p.cause(d), nil)
		}
	}
	return nil
}

// classifyStars reads the star count off a puzzle description page. A page
// for a puzzle that is not live must fail rather than read as zero stars.
func classifyStars(d Date, body string) (Stars, error) {
	if notLiveProbe.matches(body) {
		return Zero, newFetchError(notLiveProbe.kind, notLiveProbe.cause(d), nil)
	}

	for _, p := range starProbes {
		if strings.Contains(body, p.substring) {
			return p.stars, nil
		}
	}

	return Zero, nil
}
