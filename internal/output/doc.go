// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package output renders puzzle inputs, tokens, star counts and cache stats
// for the aocfetch command.
package output
