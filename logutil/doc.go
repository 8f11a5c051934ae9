// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides structured logging built on log/slog.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	logutil.Info("server started", "addr", addr)
//	logutil.Error("request failed", "error", err)
//
// Libraries log through a component logger so every record carries its origin:
//
//	var log = logutil.NewLogger("parseurl")
//	log.Debug("primary parser rejected url", "url", raw, "error", err)
//
// # Debug Mode
//
// Debug logging is enabled by passing debug=true to SetupLogger or by setting
// PARSEURL_DEBUG=true before SetupLogger runs.
//
// # Structured Logging
//
// When structured=true, logs are written as JSON:
//
//	{"time":"2026-01-15T10:30:00Z","level":"INFO","msg":"server started","addr":":8080"}
//
// Otherwise the slog text format is used:
//
//	time=2026-01-15T10:30:00Z level=INFO msg="server started" addr=:8080
package logutil
