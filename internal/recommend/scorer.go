// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package recommend

import (
	"sort"

	"github.com/tomtom215/cinegraph/internal/catalog"
	"github.com/tomtom215/cinegraph/internal/graph"
)

// scoreState accumulates candidate scores. The order slice remembers the
// first contribution per title so the final stable sort sees a
// deterministic input; that order carries no ranking meaning of its own.
type scoreState struct {
	scores map[string]float64
	order  []string
}

func newScoreState() *scoreState {
	return &scoreState{scores: make(map[string]float64)}
}

func (s *scoreState) add(title string, delta float64) {
	if _, seen := s.scores[title]; !seen {
		s.order = append(s.order, title)
	}
	s.scores[title] += delta
}

// scoreCandidates runs the hybrid scoring passes for the target user and
// returns the ranked, truncated recommendation list. Movies the target has
// watched never appear.
func scoreCandidates(cat *catalog.Catalog, dir *catalog.Directory, g *graph.Graph, target *catalog.User, cfg *Config) []Recommendation {
	state := newScoreState()

	// Collaborative pass: what similar users watched, weighted by how
	// similar they are and how good the movie is.
	for _, su := range findSimilarUsers(g, target.ID, cfg.SimilarUsers) {
		peer, ok := dir.Get(su.UserID)
		if !ok {
			continue
		}
		for _, m := range peer.Watched() {
			if target.HasWatched(m.Key()) {
				continue
			}
			state.add(m.Title, su.Similarity*m.Rating)
		}
	}

	// Content pass: every unwatched catalog movie, scaled by genre affinity.
	watchedGenres := target.WatchedGenres()
	for _, m := range cat.All() {
		if target.HasWatched(m.Key()) {
			continue
		}
		bonus := cfg.GenreOtherBonus
		if _, ok := watchedGenres[m.GenreFold()]; ok {
			bonus = cfg.GenreMatchBonus
		}
		state.add(m.Title, m.Rating*bonus)
	}

	recs := make([]Recommendation, 0, len(state.order))
	for _, title := range state.order {
		rec := Recommendation{Title: title, Score: state.scores[title]}
		if m, ok := cat.Get(title); ok {
			rec.Genre = m.Genre
			rec.Year = m.Year
		}
		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > cfg.MaxResults {
		recs = recs[:cfg.MaxResults]
	}
	return recs
}
