// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package config resolves application configuration through three koanf
// layers, in ascending priority: struct defaults, an optional YAML file
// (cinegraph.yaml, config/cinegraph.yaml, or $CINEGRAPH_CONFIG), and
// CINEGRAPH_* environment variables mapped through an explicit table.
//
// The resolved Config is validated before being returned; a configuration
// that fails validation is an error, never a partially-applied state.
package config
