// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestCustomHandler_HandleLog(t *testing.T) {
	var buf bytes.Buffer
	h := &CustomHandler{Writer: &buf}

	err := h.HandleLog(&log.Entry{
		Level:     log.InfoLevel,
		Message:   "Fetching input for day 5-2017",
		Timestamp: time.Date(2017, 12, 5, 5, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, "2017-12-05 05:00:00 I Fetching input for day 5-2017\n", buf.String())
}

func TestInitLogger_Level(t *testing.T) {
	t.Setenv("AOC_LOG", "debug")
	InitLogger()
	l, ok := log.Log.(*log.Logger)
	assert.True(t, ok)
	assert.Equal(t, log.DebugLevel, l.Level)

	t.Setenv("AOC_LOG", "")
	InitLogger()
	assert.Equal(t, log.ErrorLevel, l.Level)
}
