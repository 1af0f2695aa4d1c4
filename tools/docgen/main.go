// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/urfave/cli/v3"

	"github.com/staranto/aoc/internal/command"
	"github.com/staranto/aoc/internal/meta"
)

// Minimal doc generator:
// - Walks the aocfetch command tree
// - Generates:
//   - docs/commands/aocfetch-<cmd>.md
//   - docs/man/share/man1/aocfetch-<cmd>.1 via md2man

func main() {
	var (
		repoRoot           string
		writeOnlyIfChanged bool
	)

	flag.StringVar(&repoRoot, "root", ".", "repo root (default current dir)")
	flag.BoolVar(&writeOnlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.Parse()

	commandsDir := filepath.Join(repoRoot, "docs", "commands")
	manOutDir := filepath.Join(repoRoot, "docs", "man", "share", "man1")

	for _, dir := range []string{commandsDir, manOutDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatalf("creating output dir %s: %v", dir, err)
		}
	}

	app := command.NewApp(meta.Meta{Stdout: io.Discard})

	var processed int
	for _, cmd := range app.Commands {
		md := renderMarkdown(app.Name, cmd)

		mdPath := filepath.Join(commandsDir, fmt.Sprintf("%s-%s.md", app.Name, cmd.Name))
		if err := writeFileIfChanged(mdPath, []byte(md), writeOnlyIfChanged); err != nil {
			fatalf("writing markdown for %s: %v", cmd.Name, err)
		}

		manPath := filepath.Join(manOutDir, fmt.Sprintf("%s-%s.1", app.Name, cmd.Name))
		if err := writeFileIfChanged(manPath, md2man.Render([]byte(md)), writeOnlyIfChanged); err != nil {
			fatalf("writing man page for %s: %v", cmd.Name, err)
		}

		processed++
	}

	if processed == 0 {
		fatalf("no commands found")
	}
}

func fatalf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}

func writeFileIfChanged(path string, new []byte, onlyIfChanged bool) error {
	if !onlyIfChanged {
		return os.WriteFile(path, new, 0o644)
	}
	old, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return os.WriteFile(path, new, 0o644)
		}
		return err
	}
	if bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(new)) {
		return nil
	}
	return os.WriteFile(path, new, 0o644)
}

// renderMarkdown builds a man-style markdown page for a subcommand. Hidden
// flags are left out.
func renderMarkdown(app string, cmd *cli.Command) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s-%s 1\n\n", app, cmd.Name)

	b.WriteString("## NAME\n\n")
	fmt.Fprintf(&b, "%s-%s - %s\n\n", app, cmd.Name, cmd.Usage)

	if cmd.UsageText != "" {
		b.WriteString("## SYNOPSIS\n\n")
		fmt.Fprintf(&b, "`%s`\n\n", cmd.UsageText)
	}

	b.WriteString("## OPTIONS\n\n")
	for _, f := range cmd.Flags {
		if v, ok := f.(cli.VisibleFlag); ok && !v.IsVisible() {
			continue
		}
		fmt.Fprintf(&b, "**%s**\n", flagNames(f.Names()))
		if u, ok := f.(interface{ GetUsage() string }); ok {
			fmt.Fprintf(&b, ": %s\n", u.GetUsage())
		}
		b.WriteString("\n")
	}

	b.WriteString("## ENVIRONMENT\n\n")
	b.WriteString("**AOC_SESSION**\n: session cookie used when the cache misses\n\n")
	b.WriteString("**AOC_LOG**\n: log level, default ERROR\n\n")
	b.WriteString("**AOC_CFG**\n: path to aocfetch.yaml\n")

	return b.String()
}

func flagNames(names []string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if len(n) == 1 {
			parts = append(parts, "-"+n)
		} else {
			parts = append(parts, "--"+n)
		}
	}
	return strings.Join(parts, ", ")
}
