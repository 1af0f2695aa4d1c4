// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/aoc"
	"github.com/staranto/aoc/internal/cacheutil"
	"github.com/staranto/aoc/internal/meta"
	"github.com/staranto/aoc/internal/output"
)

// NewPuzzleFlags returns the flags shared by every subcommand. Values come
// from the command line, then the environment, then the config file.
func NewPuzzleFlags(m meta.Meta, ns string) (flags []cli.Flag) {
	src := altsrc.StringSourcer(m.Config.Source)

	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "day",
			Aliases: []string{"d"},
			Usage:   "puzzle day, usually 1-25",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AOC_DAY"),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.StringFlag{
			Name:    "year",
			Aliases: []string{"y"},
			Usage:   "puzzle year",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AOC_YEAR"),
				yaml.YAML(ns+".year", src),
				yaml.YAML("year", src),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.StringFlag{
			Name:    "session",
			Aliases: []string{"s"},
			Usage:   "session cookie value",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar(aoc.SessionEnv),
				yaml.YAML("session", src),
			),
		},
		&cli.StringFlag{
			Name:   "base-url",
			Usage:  "puzzle site base URL",
			Hidden: true,
			Sources: cli.NewValueSourceChain(
				yaml.YAML("base_url", src),
			),
			Value: aoc.DefaultBaseURL,
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".color", src),
				yaml.YAML("color", src),
			),
			Value: output.IsTerminal(os.Stdout),
		},
	}

	return flags
}

// NewCacheDirFlag is only offered by commands that touch the cache.
func NewCacheDirFlag(m meta.Meta) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "cache-dir",
		Usage: "directory holding cached inputs",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AOC_CACHE_DIR"),
			yaml.YAML("cache.dir", altsrc.StringSourcer(m.Config.Source)),
		),
		Value: cacheutil.DefaultDir,
	}
}
