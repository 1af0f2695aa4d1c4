// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"io"

	"github.com/staranto/aoc/internal/config"
)

// Meta are the meta-options that are available on all commands.
type Meta struct {
	Args   []string
	Config config.Type
	// Stdout receives command output. Log lines go elsewhere.
	Stdout io.Writer
}
