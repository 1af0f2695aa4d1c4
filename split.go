// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aoc

import (
	"reflect"
	"strconv"
	"strings"
)

// Scalar is any type a token can be parsed into.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~string
}

// Split breaks the input on runs of ASCII whitespace and parses every token
// as T. Empty tokens are dropped. Other Unicode spaces, and \v, stay inside
// their token.
func Split[T Scalar](in Input) ([]T, error) {
	return parseAll[T](strings.FieldsFunc(in.Body, isASCIISpace))
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// SplitBy breaks the input on every occurrence of delim and parses every
// token as T. Empty tokens are kept, so "a,,b" yields three.
func SplitBy[T Scalar](in Input, delim string) ([]T, error) {
	return parseAll[T](strings.Split(in.Body, delim))
}

// MustSplit is Split for solvers that treat bad input as fatal.
func MustSplit[T Scalar](in Input) []T {
	out, err := Split[T](in)
	if err != nil {
		panic(err)
	}
	return out
}

// MustSplitBy is SplitBy for solvers that treat bad input as fatal.
func MustSplitBy[T Scalar](in Input, delim string) []T {
	out, err := SplitBy[T](in, delim)
	if err != nil {
		panic(err)
	}
	return out
}

func parseAll[T Scalar](tokens []string) ([]T, error) {
	out := make([]T, 0, len(tokens))
	for i, tok := range tokens {
		v, err := parse[T](tok)
		if err != nil {
			return nil, &ParseError{Index: i, Token: tok, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// parse converts s according to T's underlying kind. Tokens are parsed as
// given, so surrounding whitespace is an error for numeric types.
func parse[T Scalar](s string) (T, error) {
	var out T
	v := reflect.ValueOf(&out).Elem()

	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return out, err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return out, err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return out, err
		}
		v.SetFloat(f)
	}

	return out, nil
}
