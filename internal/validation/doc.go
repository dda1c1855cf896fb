// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package validation provides struct validation using go-playground/validator
// v10 behind a thread-safe singleton. The loader uses it to reject malformed
// rating records and the config package uses it to check tuning parameters.
//
// Example:
//
//	rec := catalog.Rating{UserID: 3, Title: "Inception", Value: 9.0}
//	if err := validation.ValidateStruct(&rec); err != nil {
//	    // err lists every failed field with a readable message
//	}
package validation
