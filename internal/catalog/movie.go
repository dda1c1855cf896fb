// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package catalog

import (
	"sort"
	"strings"
)

// Movie represents a single catalog entry with the IMDB-style attribute set.
// Genre holds only the first listed genre; the raw multi-genre string is
// collapsed during import.
type Movie struct {
	Title          string   `json:"title"`
	Year           int      `json:"year"`
	Certificate    string   `json:"certificate,omitempty"`
	RuntimeMinutes int      `json:"runtime_minutes"`
	Genre          string   `json:"genre"`
	Rating         float64  `json:"rating"` // 0-10 scale
	Overview       string   `json:"overview,omitempty"`
	MetaScore      int      `json:"meta_score,omitempty"`
	Director       string   `json:"director,omitempty"`
	LeadActors     []string `json:"lead_actors,omitempty"` // up to 4 names
	Votes          int      `json:"votes,omitempty"`
	Gross          int64    `json:"gross,omitempty"`
}

// MovieKey is the identity of a movie. Two catalog entries are the same
// movie exactly when title and year match.
type MovieKey struct {
	Title string
	Year  int
}

// Key returns the identity key for the movie.
func (m *Movie) Key() MovieKey {
	return MovieKey{Title: m.Title, Year: m.Year}
}

// GenreFold returns the movie's genre lowered for case-insensitive matching.
func (m *Movie) GenreFold() string {
	return strings.ToLower(m.Genre)
}

// Catalog is a title-keyed movie collection. Adding a movie whose title is
// already present replaces the previous entry (last write wins).
type Catalog struct {
	movies map[string]*Movie
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{movies: make(map[string]*Movie)}
}

// Add inserts or replaces the movie under its title.
func (c *Catalog) Add(m *Movie) {
	c.movies[m.Title] = m
}

// Get looks up a movie by title. A miss returns (nil, false), never an error.
func (c *Catalog) Get(title string) (*Movie, bool) {
	m, ok := c.movies[title]
	return m, ok
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Titles returns all catalog titles in sorted order.
func (c *Catalog) Titles() []string {
	titles := make([]string, 0, len(c.movies))
	for t := range c.movies {
		titles = append(titles, t)
	}
	sort.Strings(titles)
	return titles
}

// All returns every movie sorted by title. The slice is freshly allocated;
// the movie pointers are shared.
func (c *Catalog) All() []*Movie {
	out := make([]*Movie, 0, len(c.movies))
	for _, t := range c.Titles() {
		out = append(out, c.movies[t])
	}
	return out
}
