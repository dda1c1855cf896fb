// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package tui implements the interactive session controller as a bubbletea
// program: a menu over the session state machine's operations (login, mark
// watched, recommendations, similar users, logout), a textinput watch
// prompt with trie-backed title completion, and styled presentation of the
// session's named error conditions.
package tui
