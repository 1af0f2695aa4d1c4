// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package hitter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/go-resty/resty/v2"
)

var (
	// ErrSend means the request never produced a response.
	ErrSend = errors.New("failed to execute request")
	// ErrDecode means the response body could not be read as text.
	ErrDecode = errors.New("failed to read response body")
)

// Hitter issues authenticated GETs against the puzzle site.
type Hitter struct {
	http *resty.Client
}

// New returns a Hitter backed by client, or by a fresh resty client when
// client is nil. No timeout or retry policy is configured.
func New(client *resty.Client) *Hitter {
	if client == nil {
		client = resty.New()
	}
	return &Hitter{http: client}
}

// Get fetches url with the session cookie and returns the body. The status
// code is ignored; callers classify the body instead. Invalid UTF-8 sequences
// in the body come back as U+FFFD.
func (h *Hitter) Get(url, session string) (string, error) {
	resp, err := h.http.R().
		SetHeader("Cookie", "session="+session).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSend, err)
	}

	body := resp.RawBody()
	if body == nil {
		return "", ErrDecode
	}
	defer body.Close()

	log.Debugf("GET %s: %s", url, resp.Status())

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return strings.ToValidUTF8(string(data), "\uFFFD"), nil
}
