// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/staranto/aoc"
	"github.com/staranto/aoc/internal/config"
)

// IsTerminal reports whether f is attached to a terminal. Color is only ever
// emitted when it is.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Body writes the puzzle input exactly as fetched.
func Body(w io.Writer, in aoc.Input) error {
	_, err := io.WriteString(w, in.String())
	return err
}

// Tokens writes one value per line.
func Tokens[T any](w io.Writer, values []T) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

// Stars writes a one line summary such as "2018 day 1: ** (Two)".
func Stars(w io.Writer, d aoc.Date, s aoc.Stars, color bool) error {
	earned := strings.Repeat("*", int(s))
	missing := strings.Repeat(".", int(aoc.Two-s))

	if color {
		gold, _ := config.GetString("colors.stars", "#f6be00")
		grey, _ := config.GetString("colors.missing", "#666666")
		earned = lipgloss.NewStyle().Foreground(lipgloss.Color(gold)).Bold(true).Render(earned)
		missing = lipgloss.NewStyle().Foreground(lipgloss.Color(grey)).Render(missing)
	}

	_, err := fmt.Fprintf(w, "%s day %s: %s%s (%s)\n", d.Year, d.Day, earned, missing, s)
	return err
}

// Stat writes a small table describing the cached file at path.
func Stat(w io.Writer, path string, now time.Time) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	rows := [][]string{
		{"path", path},
		{"size", humanize.Bytes(uint64(info.Size()))},
		{"cached", humanize.RelTime(info.ModTime(), now, "ago", "from now")},
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Align(lipgloss.Left)
			if col > 0 {
				style = style.PaddingLeft(1)
			}
			return style
		}).
		Rows(rows...)

	_, err = fmt.Fprintln(w, t)
	return err
}
