// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// contextKey is how we find [*slog.Logger] in a [context.Context].
type contextKey struct{}

// NewContext returns a new [context.Context], derived from ctx, which carries the provided [*slog.Logger].
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns a [slog.Logger] from ctx.
//
// If no [*slog.Logger] is found, this returns a logger with [slog.DiscardHandler].
// Standard output may be the MCP transport, so nothing is ever written there.
func FromContext(ctx context.Context) *slog.Logger {
	if v := ctx.Value(contextKey{}); v != nil {
		return v.(*slog.Logger)
	}
	return slog.New(slog.DiscardHandler)
}

// New returns a JSON [*slog.Logger] writing to standard error at level.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// ParseLevel parses one of "debug", "info", "warn" or "error", case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
