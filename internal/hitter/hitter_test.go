// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package hitter

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_SendsSessionCookie(t *testing.T) {
	var gotCookie, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		gotMethod = r.Method
		fmt.Fprint(w, "+1\n-2\n")
	}))
	defer srv.Close()

	body, err := New(nil).Get(srv.URL+"/2018/day/1/input", "abc")
	require.NoError(t, err)
	assert.Equal(t, "+1\n-2\n", body)
	assert.Equal(t, "session=abc", gotCookie)
	assert.Equal(t, http.MethodGet, gotMethod)
}

func TestGet_IgnoresStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusBadRequest, http.StatusInternalServerError, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				fmt.Fprint(w, http.StatusText(status))
			}))
			defer srv.Close()

			body, err := New(resty.New()).Get(srv.URL, "abc")
			require.NoError(t, err)
			assert.Equal(t, http.StatusText(status), body)
		})
	}
}

func TestGet_SendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(nil).Get(url, "abc")
	assert.True(t, errors.Is(err, ErrSend))
	assert.False(t, errors.Is(err, ErrDecode))
}

func TestGet_InvalidUTF8IsReplaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("caf\xe9 1\n"))
	}))
	defer srv.Close()

	body, err := New(nil).Get(srv.URL, "abc")
	require.NoError(t, err)
	assert.Equal(t, "caf\uFFFD 1\n", body)
}

func TestGet_DecodeFailure(t *testing.T) {
	t.Run("truncated body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Length", "100")
			fmt.Fprint(w, "short")
		}))
		defer srv.Close()

		_, err := New(nil).Get(srv.URL, "abc")
		assert.True(t, errors.Is(err, ErrDecode))
	})
}
