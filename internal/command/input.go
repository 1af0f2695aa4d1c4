// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"time"

	"github.com/apex/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/aoc"
	"github.com/staranto/aoc/internal/meta"
	"github.com/staranto/aoc/internal/output"
)

// InputCommandAction loads the puzzle input from the cache, fetching and
// caching it first if needed, and writes it out raw or tokenised.
func InputCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	if err := InputCommandValidator(ctx, cmd); err != nil {
		return err
	}

	d, err := puzzleDate(cmd)
	if err != nil {
		return err
	}

	in, err := newClient(cmd).LoadOrFetchInput(d.Day, d.Year)
	if err != nil {
		return err
	}

	w := m.Stdout

	switch {
	case cmd.Bool("stat"):
		return output.Stat(w, in.Path(), time.Now())
	case cmd.Bool("split"):
		return spitTokens(cmd, in, nil)
	case cmd.IsSet("delim"):
		delim := cmd.String("delim")
		return spitTokens(cmd, in, &delim)
	default:
		return output.Body(w, in)
	}
}

// spitTokens splits on whitespace when delim is nil, otherwise on *delim, and
// parses every token as the --type flag asks.
func spitTokens(cmd *cli.Command, in aoc.Input, delim *string) error {
	w := GetMeta(cmd).Stdout

	switch cmd.String("type") {
	case "int":
		values, err := split[int](in, delim)
		if err != nil {
			return err
		}
		return output.Tokens(w, values)
	case "float":
		values, err := split[float64](in, delim)
		if err != nil {
			return err
		}
		return output.Tokens(w, values)
	case "string":
		values, err := split[string](in, delim)
		if err != nil {
			return err
		}
		return output.Tokens(w, values)
	default:
		return fmt.Errorf("unsupported type %q", cmd.String("type"))
	}
}

func split[T aoc.Scalar](in aoc.Input, delim *string) ([]T, error) {
	if delim == nil {
		return aoc.Split[T](in)
	}
	return aoc.SplitBy[T](in, *delim)
}

// InputCommandBuilder constructs the cli.Command for "input".
func InputCommandBuilder(m meta.Meta) *cli.Command {
	src := altsrc.StringSourcer(m.Config.Source)

	return &cli.Command{
		Name:      "input",
		Usage:     "print puzzle input, fetching it on a cache miss",
		UsageText: `aocfetch input --year YEAR --day DAY [options]`,
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: append(NewPuzzleFlags(m, "input"),
			NewCacheDirFlag(m),
			&cli.BoolFlag{
				Name:  "split",
				Usage: "print whitespace separated tokens one per line",
				Value: false,
			},
			&cli.StringFlag{
				Name:  "delim",
				Usage: "print tokens separated by this delimiter one per line",
			},
			&cli.StringFlag{
				Name:  "type",
				Usage: "parse tokens as string, int or float",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("input.type", src),
				),
				Value: "string",
				Validator: func(value string) error {
					return FlagValidators(value, TypeValidator)
				},
			},
			&cli.BoolFlag{
				Name:  "stat",
				Usage: "describe the cached file instead of printing it",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("input.stat", src),
				),
				Value: false,
			},
		),
		Action: InputCommandAction,
	}
}
