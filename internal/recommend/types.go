// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package recommend

// SimilarUser pairs a user ID with its Jaccard similarity to the target.
type SimilarUser struct {
	UserID     int     `json:"user_id"`
	Similarity float64 `json:"similarity"`
}

// Recommendation is a single scored movie suggestion.
type Recommendation struct {
	Title string  `json:"title"`
	Genre string  `json:"genre,omitempty"`
	Year  int     `json:"year,omitempty"`
	Score float64 `json:"score"`
}

// Stats summarizes the engine's loaded state for status output.
type Stats struct {
	Movies  int `json:"movies"`
	Users   int `json:"users"`
	Ratings int `json:"ratings"`
	Nodes   int `json:"graph_nodes"`
	Edges   int `json:"graph_edges"`
}
