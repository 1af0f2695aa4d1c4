// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aoc

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_Ints(t *testing.T) {
	got, err := Split[int](NewInput("1", "2020", "1 2 3 4 5"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestSplit_Strings(t *testing.T) {
	got, err := Split[string](NewInput("1", "2020", "1 2 3 4 5"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, got)
}

func TestSplitBy_Ints(t *testing.T) {
	got, err := SplitBy[int](NewInput("1", "2020", "1,2,3,4,5"), ",")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestSplit_WhitespaceRuns(t *testing.T) {
	got, err := Split[int](NewInput("1", "2018", "  +1\n-2\t\t+3 \r\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, -2, 3}, got)
}

func TestSplit_OnlyASCIIWhitespace(t *testing.T) {
	got, err := Split[string](NewInput("1", "2020", "a b c\vd\f1\u00a02\u2028x"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c\vd", "1\u00a02\u2028x"}, got)
}

func TestSplit_Empty(t *testing.T) {
	got, err := Split[int](NewInput("1", "2018", " \n "))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSplit_Floats(t *testing.T) {
	got, err := Split[float64](NewInput("1", "2019", "1.5 -2 3e2"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2, 300}, got)
}

func TestSplit_OtherScalars(t *testing.T) {
	u, err := Split[uint8](NewInput("1", "2019", "0 255"))
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 255}, u)

	_, err = Split[uint8](NewInput("1", "2019", "256"))
	assert.True(t, errors.Is(err, ErrParse))

	f, err := Split[float32](NewInput("1", "2019", "0.25"))
	require.NoError(t, err)
	assert.Equal(t, []float32{0.25}, f)

	type mass int64
	m, err := Split[mass](NewInput("1", "2019", "12 14 1969"))
	require.NoError(t, err)
	assert.Equal(t, []mass{12, 14, 1969}, m)

	type word string
	w, err := SplitBy[word](NewInput("4", "2017", "aa bb"), " ")
	require.NoError(t, err)
	assert.Equal(t, []word{"aa", "bb"}, w)
}

func TestSplitBy_KeepsEmptyTokens(t *testing.T) {
	got, err := SplitBy[string](NewInput("1", "2020", "a,,b"), ",")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "b"}, got)
}

func TestSplitBy_TokenCount(t *testing.T) {
	tests := []struct {
		body  string
		delim string
	}{
		{"", ","},
		{",", ","},
		{"1,2,3", ","},
		{"a->b->->c", "->"},
		{"abc", "\n"},
		{"l1\nl2\n", "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			got, err := SplitBy[string](NewInput("1", "2020", tt.body), tt.delim)
			require.NoError(t, err)
			assert.Len(t, got, strings.Count(tt.body, tt.delim)+1)
		})
	}
}

func TestSplit_ParseFailure(t *testing.T) {
	got, err := Split[int](NewInput("1", "2020", "1 2 x 4"))
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, ErrParse))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Index)
	assert.Equal(t, "x", pe.Token)

	var fe *FetchError
	assert.False(t, errors.As(err, &fe))
}

func TestSplitBy_TrailingNewlineIsAToken(t *testing.T) {
	_, err := SplitBy[int](NewInput("1", "2020", "1,2,3\n"), ",")
	assert.True(t, errors.Is(err, ErrParse))
}

func TestMustSplit(t *testing.T) {
	assert.Equal(t, []int{1, 2}, MustSplit[int](NewInput("1", "2020", "1 2")))
	assert.Equal(t, []int{1, 2}, MustSplitBy[int](NewInput("1", "2020", "1|2"), "|"))

	assert.Panics(t, func() { MustSplit[int](NewInput("1", "2020", "one")) })
	assert.Panics(t, func() { MustSplitBy[float64](NewInput("1", "2020", "1,,2"), ",") })
}
