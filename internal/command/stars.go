// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/aoc"
	"github.com/staranto/aoc/internal/meta"
	"github.com/staranto/aoc/internal/output"
)

// StarsCommandAction reports the stars earned on a puzzle. It never reads or
// writes the input cache.
func StarsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	d, err := puzzleDate(cmd)
	if err != nil {
		return err
	}

	session := cmd.String("session")
	if session == "" {
		return errors.New("a session is required, set --session or " + aoc.SessionEnv)
	}

	stars, err := newClient(cmd).GetStars(d, session)
	if err != nil {
		return err
	}

	return output.Stars(m.Stdout, d, stars, cmd.Bool("color"))
}

// StarsCommandBuilder constructs the cli.Command for "stars".
func StarsCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "stars",
		Usage:     "show stars earned on a puzzle",
		UsageText: `aocfetch stars --year YEAR --day DAY [options]`,
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:  NewPuzzleFlags(m, "stars"),
		Action: StarsCommandAction,
	}
}
