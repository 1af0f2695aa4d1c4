// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/staranto/aoc"
	"github.com/staranto/aoc/internal/config"
	"github.com/staranto/aoc/internal/meta"
)

func InitApp(args []string) (*cli.Command, error) {
	// A missing config file is normal; flags fall back to env and defaults.
	cfg, _ := config.Load()

	m := meta.Meta{
		Args:   args,
		Config: cfg,
		Stdout: os.Stdout,
	}

	return NewApp(m), nil
}

// NewApp builds the command tree around m.
func NewApp(m meta.Meta) *cli.Command {
	app := &cli.Command{
		Name:  "aocfetch",
		Usage: "Advent of Code input fetcher",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "aocfetch version info",
				HideDefault: true,
			},
		},
		Writer: m.Stdout,
	}

	app.Commands = append(app.Commands,
		InputCommandBuilder(m),
		StarsCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app
}

func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// puzzleDate pulls day and year off cmd, failing if either is missing.
func puzzleDate(cmd *cli.Command) (aoc.Date, error) {
	d := aoc.NewDate(cmd.String("day"), cmd.String("year"))
	if d.Day == "" {
		return d, errors.New("--day is required")
	}
	if d.Year == "" {
		return d, errors.New("--year is required")
	}
	return d, nil
}

// newClient builds an aoc.Client from the common flags. A --session value
// stands in for AOC_SESSION.
func newClient(cmd *cli.Command) *aoc.Client {
	c := aoc.DefaultClient()
	c.BaseURL = cmd.String("base-url")
	if dir := cmd.String("cache-dir"); dir != "" {
		c.CacheDir = dir
	}

	session := cmd.String("session")
	c.LookupEnv = func(key string) (string, bool) {
		if key == aoc.SessionEnv && session != "" {
			return session, true
		}
		return os.LookupEnv(key)
	}

	return c
}
