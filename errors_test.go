// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aoc

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchError(t *testing.T) {
	err := newFetchError(KindCache, "Unable to read the file", fs.ErrPermission)

	assert.Equal(t, "Error fetching Advent of Code input: Unable to read the file", err.Error())
	assert.True(t, errors.Is(err, KindCache))
	assert.False(t, errors.Is(err, KindAuth))
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Equal(t, "Unable to read the file", CauseOf(err))
}

func TestCauseOf_NotAFetchError(t *testing.T) {
	assert.Equal(t, "", CauseOf(errors.New("boom")))
	assert.Equal(t, "", CauseOf(nil))
}

func TestParseError(t *testing.T) {
	inner := errors.New("invalid syntax")
	err := &ParseError{Index: 2, Token: "x", Err: inner}

	assert.True(t, errors.Is(err, ErrParse))
	assert.True(t, errors.Is(err, inner))
	assert.Equal(t, `unable to parse token "x" at position 2: invalid syntax`, err.Error())

	var fe *FetchError
	assert.False(t, errors.As(err, &fe))
}
