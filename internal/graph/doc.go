// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package graph implements the bipartite user-movie rating graph.

The graph holds two kinds of nodes, users and movies, joined by undirected
edges weighted with the user's rating of the movie. It is stored as an
explicit adjacency structure (node -> neighbor set) plus an edge-weight map
keyed by the unordered node pair, which keeps neighbor queries O(degree)
and weight lookups O(1).

Node identifiers are namespace-tagged so a user ID can never collide with
a movie title. Lookups on absent nodes return empty results rather than
errors; re-adding an edge overwrites its weight (last write wins).

The graph carries no locking of its own. The owning engine serializes
access.
*/
package graph
