// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package viz renders the rating graph. A seeded Fruchterman-Reingold
// spring layout positions the bipartite snapshot, and the result is written
// either as a self-contained HTML page with an inline SVG or as JSON.
//
// The package consumes only graph.Snapshot views; it holds no reference to
// live engine state and performs no mutation.
package viz
