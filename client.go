// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aoc

import (
	"errors"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/aoc/internal/cacheutil"
	"github.com/staranto/aoc/internal/hitter"
)

const (
	// DefaultBaseURL is the puzzle site.
	DefaultBaseURL = "https://adventofcode.com"

	// SessionEnv names the environment variable holding the session token.
	SessionEnv = "AOC_SESSION"
)

// ErrDecode may be wrapped by a Getter to report that a response arrived but
// its body could not be read as text.
var ErrDecode = hitter.ErrDecode

// Getter performs one blocking, authenticated GET and returns the body as
// text. Errors wrapping ErrDecode are reported as decode failures, anything
// else as a send failure.
type Getter interface {
	Get(url, session string) (string, error)
}

// Client holds the collaborators behind the package level functions. The zero
// value is not usable; start from DefaultClient.
type Client struct {
	HTTP      Getter
	BaseURL   string
	CacheDir  string
	LookupEnv func(key string) (string, bool)
}

// DefaultClient talks to the real site and caches under ./inputs.
func DefaultClient() *Client {
	return &Client{
		HTTP:      hitter.New(nil),
		BaseURL:   DefaultBaseURL,
		CacheDir:  cacheutil.DefaultDir,
		LookupEnv: os.LookupEnv,
	}
}

// FetchInput downloads the input for day/year using session. It never reads
// or writes the cache.
func FetchInput(day, year, session string) (Input, error) {
	return DefaultClient().FetchInput(day, year, session)
}

// LoadOrFetchInput returns the cached input for day/year if there is one,
// otherwise fetches it with the AOC_SESSION token and caches it.
func LoadOrFetchInput(day, year string) (Input, error) {
	return DefaultClient().LoadOrFetchInput(day, year)
}

// GetStars reports how many stars the session owner has on the puzzle.
func GetStars(date Date, session string) (Stars, error) {
	return DefaultClient().GetStars(date, session)
}

func (c *Client) FetchInput(day, year, session string) (Input, error) {
	log.Infof("Fetching input for day %s-%s", day, year)

	d := NewDate(day, year)

	body, err := c.get(c.BaseURL+"/"+year+"/day/"+day+"/input", session)
	if err != nil {
		return Input{}, err
	}

	if err := classifyInput(d, body); err != nil {
		return Input{}, err
	}

	in := NewInput(day, year, body)
	in.dir = c.cacheDir()
	return in, nil
}

func (c *Client) LoadOrFetchInput(day, year string) (Input, error) {
	path := cacheutil.EntryPath(c.cacheDir(), year, day)

	if cacheutil.Exists(path) {
		log.Infof("Loading input for day %s-%s from %s", day, year, path)

		entry, err := cacheutil.Read(path)
		if err != nil {
			return Input{}, newFetchError(KindCache, "Unable to read the file", err)
		}

		in := NewInput(day, year, string(entry.Data))
		in.dir = c.cacheDir()
		return in, nil
	}

	session, err := c.session()
	if err != nil {
		return Input{}, err
	}

	in, err := c.FetchInput(day, year, session)
	if err != nil {
		return Input{}, err
	}

	if err := in.SaveToFile(); err != nil {
		return Input{}, err
	}

	return in, nil
}

func (c *Client) GetStars(date Date, session string) (Stars, error) {
	log.Debugf("Fetching star info for day %s-%s", date.Day, date.Year)

	body, err := c.get(c.BaseURL+"/"+date.Year+"/day/"+date.Day, session)
	if err != nil {
		return Zero, err
	}

	return classifyStars(date, body)
}

// get maps transport failures onto the fetch error taxonomy.
func (c *Client) get(url, session string) (string, error) {
	body, err := c.HTTP.Get(url, session)
	if err == nil {
		return body, nil
	}

	if errors.Is(err, ErrDecode) {
		return "", newFetchError(KindTransport, "Error converting input to string", err)
	}
	return "", newFetchError(KindTransport, "Error sending GET request", err)
}

func (c *Client) cacheDir() string {
	if c.CacheDir == "" {
		return cacheutil.DefaultDir
	}
	return c.CacheDir
}

// session is read on every call, never cached.
func (c *Client) session() (string, error) {
	lookup := c.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	s, ok := lookup(SessionEnv)
	if !ok || strings.TrimSpace(s) == "" {
		return "", newFetchError(KindConfig, SessionEnv+" is not set", nil)
	}
	return s, nil
}
