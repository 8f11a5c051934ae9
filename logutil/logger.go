// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"context"
	"log/slog"
)

// ComponentLogger provides component-scoped structured logging.
//
// It resolves the global logger on every call, so a ComponentLogger created at
// package init still follows a later SetupLogger.
type ComponentLogger struct {
	component string
	fields    []any
}

// NewLogger creates a logger scoped to a named component.
func NewLogger(component string) *ComponentLogger {
	return &ComponentLogger{
		component: component,
		fields:    []any{"component", component},
	}
}

// WithOperation returns a new logger with the operation context added.
func (l *ComponentLogger) WithOperation(name string) *ComponentLogger {
	return l.WithFields("operation", name)
}

// WithFields returns a new logger with additional fields.
// Fields are provided as alternating key-value pairs.
func (l *ComponentLogger) WithFields(fields ...any) *ComponentLogger {
	merged := make([]any, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &ComponentLogger{component: l.component, fields: merged}
}

// Component returns the component name for this logger.
func (l *ComponentLogger) Component() string {
	return l.component
}

// Debug logs a message at debug level. Arguments are not formatted when debug is off.
func (l *ComponentLogger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args)
}

// Info logs a message at info level.
func (l *ComponentLogger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args)
}

// Warn logs a message at warn level.
func (l *ComponentLogger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args)
}

// Error logs a message at error level.
func (l *ComponentLogger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args)
}

func (l *ComponentLogger) log(level slog.Level, msg string, args []any) {
	logger := Logger()
	if !logger.Enabled(context.Background(), level) {
		return
	}
	logger.With(l.fields...).Log(context.Background(), level, msg, args...)
}
