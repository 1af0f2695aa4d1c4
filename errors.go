// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aoc

import (
	"errors"
	"fmt"
)

// ErrorKind groups fetch failures so callers can branch with errors.Is
// without matching on the human-readable cause.
type ErrorKind int

const (
	// KindTransport covers send and body decode failures.
	KindTransport ErrorKind = iota + 1
	// KindOutage means the service answered "Service Unavailable".
	KindOutage
	// KindNotLive means the puzzle page does not exist yet, or the service
	// rate limited the request.
	KindNotLive
	// KindAuth means the session cookie was rejected.
	KindAuth
	// KindUpstream means the service failed with an internal error.
	KindUpstream
	// KindCache covers directory creation, write and read failures.
	KindCache
	// KindConfig means required configuration, such as AOC_SESSION, is
	// missing.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindOutage:
		return "outage"
	case KindNotLive:
		return "not live"
	case KindAuth:
		return "auth"
	case KindUpstream:
		return "upstream"
	case KindCache:
		return "cache"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error lets a bare ErrorKind act as an errors.Is target, e.g.
// errors.Is(err, aoc.KindAuth).
func (k ErrorKind) Error() string {
	return k.String()
}

// FetchError is returned by every fetch, cache and star operation.
type FetchError struct {
	Kind  ErrorKind
	Cause string
	// Err is the underlying error, if there was one.
	Err error
}

func newFetchError(kind ErrorKind, cause string, err error) *FetchError {
	return &FetchError{Kind: kind, Cause: cause, Err: err}
}

func (e *FetchError) Error() string {
	return "Error fetching Advent of Code input: " + e.Cause
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	if k, ok := target.(ErrorKind); ok {
		return e.Kind == k
	}
	return false
}

// CauseOf returns the cause string of the FetchError in err's chain, or "" if
// there is none.
func CauseOf(err error) string {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Cause
	}
	return ""
}

// ErrParse is wrapped by every ParseError.
var ErrParse = errors.New("unable to parse token")

// ParseError reports the first token a splitter could not convert.
type ParseError struct {
	Index int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v %q at position %d: %v", ErrParse, e.Token, e.Index, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
