// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package catalog defines the core domain model for CineGraph.

This package contains the movie catalog, the user directory, and the types
they are built from. It is the single source of truth for movie and user
data structures; every other package (graph construction, recommendation
scoring, session handling, rendering) consumes these types.

Key Components:

  - Movie: a catalog entry with the IMDB-style attribute set
  - MovieKey: identity key (title, year) used for equality and set membership
  - Catalog: title-keyed movie lookup with last-write-wins inserts
  - User: an account with an idempotent watched set
  - Directory: integer-ID user registry with sequential ID allocation

The catalog and directory are plain in-memory structures with no internal
locking. Callers that share them across goroutines are responsible for the
synchronization boundary.
*/
package catalog
