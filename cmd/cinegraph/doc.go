// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// The cinegraph command loads a movie catalog and rating history from CSV,
// builds the bipartite user-movie rating graph, and serves hybrid
// recommendations from it.
//
// Usage:
//
//	cinegraph                     interactive session (TUI on a terminal)
//	cinegraph recommend -u 3      top recommendations for user 3
//	cinegraph similar -u 3        users with similar taste
//	cinegraph visualize -u 3      render the graph with user 3 highlighted
//	cinegraph stats               catalog and graph statistics
//	cinegraph quiz                yes/no movie picker
//
// Configuration is resolved from defaults, an optional cinegraph.yaml, and
// CINEGRAPH_* environment variables; command-line flags override all three.
package main
