// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package search provides a case-folded prefix index over catalog titles
// for interactive title completion.
package search

import (
	"sort"
	"strings"
	"sync"

	"github.com/tomtom215/cinegraph/internal/catalog"
)

// node is one rune of the title trie.
type node struct {
	children map[rune]*node
	isEnd    bool
	title    string         // original-case title, set when isEnd
	movie    *catalog.Movie // catalog entry for the title
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Match is one title returned by a prefix lookup.
type Match struct {
	Title string
	Movie *catalog.Movie
}

// Index is a case-folded prefix tree over catalog titles, used for title
// completion in the interactive session. Lookups cost O(m) in the query
// length. The index is a read-mostly structure rebuilt from the catalog;
// a coarse RWMutex makes it safe to share with the TUI loop.
type Index struct {
	mu   sync.RWMutex
	root *node
	size int
}

// NewIndex returns an empty title index.
func NewIndex() *Index {
	return &Index{root: newNode()}
}

// BuildIndex indexes every title in the catalog.
func BuildIndex(cat *catalog.Catalog) *Index {
	idx := NewIndex()
	for _, m := range cat.All() {
		idx.Insert(m)
	}
	return idx
}

// Insert adds a movie under its title. Re-inserting a title replaces the
// stored movie, mirroring the catalog's last-write-wins behavior.
func (x *Index) Insert(m *catalog.Movie) {
	if m == nil || m.Title == "" {
		return
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	n := x.root
	for _, ch := range strings.ToLower(m.Title) {
		if n.children[ch] == nil {
			n.children[ch] = newNode()
		}
		n = n.children[ch]
	}

	if !n.isEnd {
		x.size++
	}
	n.isEnd = true
	n.title = m.Title
	n.movie = m
}

// Len returns the number of indexed titles.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.size
}

// Lookup finds the movie stored under an exact title, case-insensitively.
func (x *Index) Lookup(title string) (*catalog.Movie, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	n := x.walk(title)
	if n == nil || !n.isEnd {
		return nil, false
	}
	return n.movie, true
}

// Complete returns up to limit titles starting with prefix, sorted
// alphabetically. An empty prefix matches everything; a limit of zero or
// less means no cap.
func (x *Index) Complete(prefix string, limit int) []Match {
	x.mu.RLock()
	defer x.mu.RUnlock()

	n := x.walk(prefix)
	if n == nil {
		return nil
	}

	var matches []Match
	collect(n, &matches)

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Title < matches[j].Title
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// walk descends the trie along the case-folded key. Returns nil when the
// path does not exist.
func (x *Index) walk(key string) *node {
	n := x.root
	for _, ch := range strings.ToLower(key) {
		if n.children[ch] == nil {
			return nil
		}
		n = n.children[ch]
	}
	return n
}

// collect gathers every complete title below n.
func collect(n *node, out *[]Match) {
	if n.isEnd {
		*out = append(*out, Match{Title: n.title, Movie: n.movie})
	}
	for _, child := range n.children {
		collect(child, out)
	}
}
