// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package cacheutil stores fetched puzzle inputs as plain files, one per
// puzzle. Nothing here ever expires or removes an entry.
package cacheutil
