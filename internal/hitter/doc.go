// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package hitter performs the single authenticated GET used for both puzzle
// inputs and puzzle description pages.
package hitter
