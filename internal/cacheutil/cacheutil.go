// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
)

// DefaultDir is the cache directory, relative to the working directory.
const DefaultDir = "inputs"

var (
	ErrCreateDir = errors.New("failed to create cache directory")
	ErrWrite     = errors.New("failed to write to cache")
	ErrRead      = errors.New("failed to read from cache")
)

// Entry is a cached puzzle input on disk.
type Entry struct {
	Path string
	Data []byte
}

// EntryPath returns where the input for year/day lives beneath dir. It does
// not touch the filesystem.
func EntryPath(dir, year, day string) string {
	return dir + "/" + year + "-" + day + ".txt"
}

// Exists reports whether something is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Read returns the entry at path exactly as stored. Contents are not trimmed
// or validated.
func Read(path string) (*Entry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	log.Debugf("cache hit: %s", path)
	return &Entry{Path: path, Data: b}, nil
}

// Write stores data at path, truncating any existing file. dir is created if
// missing, but its parents are not.
func Write(dir, path string, data []byte) error {
	if !Exists(dir) {
		if err := os.Mkdir(dir, 0o755); err != nil { //nolint:mnd
			return fmt.Errorf("%w: %w", ErrCreateDir, err)
		}
		log.Debugf("created cache directory %s", dir)
	}

	if err := os.WriteFile(path, data, os.FileMode(0o644)); err != nil { //nolint:mnd
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}
