// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package recommend

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinegraph/internal/cache"
	"github.com/tomtom215/cinegraph/internal/catalog"
	"github.com/tomtom215/cinegraph/internal/graph"
)

// Engine owns the loaded catalog, the user directory, and the rating graph,
// and produces similarity rankings and hybrid recommendations from them.
//
// Every exported operation passes through one coarse RWMutex; the scoring
// code below it is free of locking and goroutines.
type Engine struct {
	mu sync.RWMutex

	config *Config
	logger zerolog.Logger

	catalog *catalog.Catalog
	users   *catalog.Directory
	graph   *graph.Graph
	ratings int

	// respCache holds recent recommendation lists; nil when disabled.
	// Any mutation clears it, since one user's watch history feeds other
	// users' collaborative scores.
	respCache *cache.Cache
}

// NewEngine creates an engine with an empty catalog and graph.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config:  cfg,
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: catalog.NewCatalog(),
		users:   catalog.NewDirectory(),
		graph:   graph.New(),
	}
	if cfg.Cache.Enabled {
		e.respCache = cache.New(cfg.Cache.TTL)
	}
	return e, nil
}

// Load replaces the engine state with the given catalog and rating history.
// The rating graph is rebuilt from every record; watched sets gain only
// titles present in the catalog, while unknown titles still enter the graph
// carrying the genre from their rating row.
func (e *Engine) Load(cat *catalog.Catalog, ratings []catalog.Rating) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.catalog = cat
	e.users = catalog.NewDirectory()
	e.graph = graph.New()
	e.ratings = 0

	for _, r := range ratings {
		e.applyRating(r)
	}
	e.clearCache()

	e.logger.Info().
		Int("movies", cat.Len()).
		Int("users", e.users.Len()).
		Int("ratings", e.ratings).
		Int("graph_nodes", e.graph.NodeCount()).
		Int("graph_edges", e.graph.EdgeCount()).
		Msg("engine state loaded")
}

// AddRating records a single rating: graph edge, user registration, and
// watched set when the title is known. Re-rating overwrites the edge weight.
func (e *Engine) AddRating(r catalog.Rating) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.applyRating(r)
	e.clearCache()
}

// applyRating threads one rating record through graph and directory.
// Must be called with mu held.
func (e *Engine) applyRating(r catalog.Rating) {
	e.graph.AddRating(r.UserID, r.Title, r.Value, r.Genre)
	u := e.users.GetOrCreate(r.UserID)
	if m, ok := e.catalog.Get(r.Title); ok {
		u.Watch(m)
	}
	e.ratings++
}

// SimilarUsers ranks users by Jaccard similarity to the target. A topN of
// zero or less falls back to the configured neighbor count. An unknown
// target yields an empty slice.
func (e *Engine) SimilarUsers(userID, topN int) []SimilarUser {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if topN <= 0 {
		topN = e.config.SimilarUsers
	}
	return findSimilarUsers(e.graph, userID, topN)
}

// Recommend produces the hybrid recommendation list for a registered user.
func (e *Engine) Recommend(userID int) ([]Recommendation, error) {
	start := time.Now()

	e.mu.RLock()
	defer e.mu.RUnlock()

	user, ok := e.users.Get(userID)
	if !ok {
		return nil, fmt.Errorf("recommend for user %d: %w", userID, ErrUserNotFound)
	}

	key := e.cacheKey(userID)
	if recs, hit := e.cachedRecommendations(key); hit {
		e.logger.Debug().Int("user_id", userID).Msg("cache hit")
		return recs, nil
	}

	recs := scoreCandidates(e.catalog, e.users, e.graph, user, e.config)

	if e.respCache != nil {
		e.respCache.Set(key, recs)
	}

	e.logger.Debug().
		Int("user_id", userID).
		Int("returned", len(recs)).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("recommendation complete")

	return recs, nil
}

// LookupUser returns the registered user with the given ID.
func (e *Engine) LookupUser(id int) (*catalog.User, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.users.Get(id)
}

// CreateUser registers a new user under the next free ID.
func (e *Engine) CreateUser() *catalog.User {
	e.mu.Lock()
	defer e.mu.Unlock()

	u := e.users.Create()
	e.logger.Info().Int("user_id", u.ID).Msg("user created")
	return u
}

// RecordWatched adds the titled movie to the user's watched set. The title
// must exist in the catalog; re-watching is a no-op.
func (e *Engine) RecordWatched(userID int, title string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, ok := e.users.Get(userID)
	if !ok {
		return fmt.Errorf("record watched for user %d: %w", userID, ErrUserNotFound)
	}
	m, ok := e.catalog.Get(title)
	if !ok {
		return fmt.Errorf("record watched %q: %w", title, ErrMovieNotFound)
	}

	user.Watch(m)
	e.clearCache()

	e.logger.Debug().
		Int("user_id", userID).
		Str("title", title).
		Int("watched", user.WatchedCount()).
		Msg("watch recorded")
	return nil
}

// Catalog returns the loaded movie catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog
}

// Movie looks up a catalog entry by title.
func (e *Engine) Movie(title string) (*catalog.Movie, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.Get(title)
}

// Titles returns all catalog titles in sorted order.
func (e *Engine) Titles() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.Titles()
}

// UserIDs returns all registered user IDs in ascending order.
func (e *Engine) UserIDs() []int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.users.IDs()
}

// Stats reports the engine's loaded state.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return Stats{
		Movies:  e.catalog.Len(),
		Users:   e.users.Len(),
		Ratings: e.ratings,
		Nodes:   e.graph.NodeCount(),
		Edges:   e.graph.EdgeCount(),
	}
}

// GraphSnapshot returns a deterministic read-only view of the rating graph
// for rendering and export.
func (e *Engine) GraphSnapshot() graph.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.Snapshot()
}

// GetConfig returns a copy of the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// CacheStats reports response cache counters; zero values when disabled.
func (e *Engine) CacheStats() cache.Stats {
	if e.respCache == nil {
		return cache.Stats{}
	}
	return e.respCache.Stats()
}

// cacheKey builds the response cache key for a user. The result length is
// part of the key so a config change cannot serve stale list sizes.
func (e *Engine) cacheKey(userID int) string {
	return fmt.Sprintf("rec:%d:%d", userID, e.config.MaxResults)
}

// cachedRecommendations returns a copy of a cached list, if present.
func (e *Engine) cachedRecommendations(key string) ([]Recommendation, bool) {
	if e.respCache == nil {
		return nil, false
	}
	v, ok := e.respCache.Get(key)
	if !ok {
		return nil, false
	}
	recs, ok := v.([]Recommendation)
	if !ok {
		return nil, false
	}
	out := make([]Recommendation, len(recs))
	copy(out, recs)
	return out, true
}

// clearCache drops all cached responses. Must be called with mu held.
func (e *Engine) clearCache() {
	if e.respCache != nil {
		e.respCache.Clear()
	}
}
