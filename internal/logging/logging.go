// Copyright (c) 2025 Greetcalc Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package logging configures the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
)

// Setup builds a logger writing to w and installs it as the slog default.
// Format selects the handler: "json" for JSON output, anything else for
// text output. Debug lowers the level to slog.LevelDebug.
func Setup(w io.Writer, format string, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
