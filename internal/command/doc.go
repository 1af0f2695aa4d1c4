// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package command defines the CLI command set for aocfetch. It wires flags,
// validators and actions for the input and stars subcommands.
package command
