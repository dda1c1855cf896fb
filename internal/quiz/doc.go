// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package quiz implements the yes/no movie picker: a generic binary
// decision tree plus a builder that splits the catalog along a fixed
// question flow (recency, runtime, acclaim) into ranked shortlists.
package quiz
