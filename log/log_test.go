// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package log

import (
	"testing"

	"github.com/facebookgo/ensure"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger("test")
	ensure.NotNil(t, logger)
}

func TestSetLogLevel(t *testing.T) {
	logger := NewLogger("level")
	logger.SetLogLevel("debug")
	ensure.DeepEqual(t, logger.LogLevel(), "debug")

	ensure.True(t, SetLogLevel("warning"))
	ensure.DeepEqual(t, logger.LogLevel(), "warning")

	// invalid levels leave the current level in place
	ensure.False(t, SetLogLevel("chatty"))
	ensure.DeepEqual(t, logger.LogLevel(), "warning")
}
