// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aoc

import (
	"errors"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/aoc/internal/cacheutil"
)

// Input is the raw puzzle input for one day, exactly as the site served it.
type Input struct {
	Day  string
	Year string
	Body string

	// dir is where SaveToFile writes. Empty means cacheutil.DefaultDir.
	dir string
}

func NewInput(day, year, body string) Input {
	return Input{Day: day, Year: year, Body: body}
}

func (in Input) Date() Date {
	return Date{Day: in.Day, Year: in.Year}
}

// String returns Body unchanged.
func (in Input) String() string {
	return in.Body
}

// Lines returns Body split on newlines, without the trailing empty line the
// site always appends.
func (in Input) Lines() []string {
	body := strings.TrimSuffix(in.Body, "\n")
	if body == "" {
		return []string{}
	}
	return strings.Split(body, "\n")
}

// Path is where this input is cached.
func (in Input) Path() string {
	return cacheutil.EntryPath(in.cacheDir(), in.Year, in.Day)
}

func (in Input) cacheDir() string {
	if in.dir == "" {
		return cacheutil.DefaultDir
	}
	return in.dir
}

// SaveToFile writes Body to the cache, creating the cache directory if needed
// and overwriting any existing file for the same puzzle.
func (in Input) SaveToFile() error {
	log.Infof("Saving input for day %s-%s to %s", in.Day, in.Year, in.cacheDir())

	err := cacheutil.Write(in.cacheDir(), in.Path(), []byte(in.Body))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cacheutil.ErrCreateDir):
		return newFetchError(KindCache, "Unable to create input directory", err)
	default:
		return newFetchError(KindCache, "Unable to write the file", err)
	}
}
