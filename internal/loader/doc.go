// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package loader ingests the CSV data sources: the 16-column IMDB-style
// movie catalog and the 4-column rating history.
//
// Loading is batch-oriented with skip-and-report semantics: a row with a
// malformed numeric field is skipped, logged, and counted in Stats, and the
// batch continues. Only structural problems abort a batch: an unreadable
// file, or a row whose column count contradicts the declared layout.
package loader
