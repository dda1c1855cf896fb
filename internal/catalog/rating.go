// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package catalog

// Rating is one user-movie rating record from the ratings history. Genre
// travels with the record so graph construction does not depend on the
// title being present in the catalog.
type Rating struct {
	UserID int     `json:"user_id" validate:"gte=0"`
	Title  string  `json:"title" validate:"required"`
	Value  float64 `json:"rating" validate:"gte=0,lte=10"`
	Genre  string  `json:"genre"`
}
