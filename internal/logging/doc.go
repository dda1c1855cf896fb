// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package logging provides centralized zerolog-based structured logging for CineGraph.
//
// This package implements a unified logging layer using zerolog, providing
// zero-allocation structured JSON logging for scripted use and human-readable
// console output for interactive terminals.
//
// # Overview
//
// The package provides:
//   - Zero-allocation structured logging via zerolog
//   - JSON output format (machine-parseable)
//   - Console output format (human-readable, used by the interactive UI)
//   - Global logger configuration applied once at startup
//   - Test helpers that capture output into a buffer
//
// # Quick Start
//
//	import "github.com/tomtom215/cinegraph/internal/logging"
//
//	// Initialize at application startup
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	// Log messages
//	logging.Info().Int("movies", n).Msg("catalog loaded")
//	logging.Error().Err(err).Msg("load failed")
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
