// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package recommend

import (
	"math"
	"testing"

	"github.com/tomtom215/cinegraph/internal/graph"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func TestJaccard(t *testing.T) {
	set := func(ids ...string) map[graph.NodeID]struct{} {
		s := make(map[graph.NodeID]struct{}, len(ids))
		for _, id := range ids {
			s[graph.MovieNodeID(id)] = struct{}{}
		}
		return s
	}

	tests := []struct {
		name string
		a, b map[graph.NodeID]struct{}
		want float64
	}{
		{name: "identical sets", a: set("A", "B"), b: set("A", "B"), want: 1.0},
		{name: "disjoint sets", a: set("A"), b: set("B"), want: 0.0},
		{name: "half overlap", a: set("A"), b: set("A", "B"), want: 0.5},
		{name: "both empty", a: set(), b: set(), want: 0.0},
		{name: "one empty", a: set(), b: set("A"), want: 0.0},
		{name: "third overlap", a: set("A", "B"), b: set("A", "C"), want: 1.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := jaccard(tt.a, tt.b); !almostEqual(got, tt.want) {
				t.Errorf("jaccard() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindSimilarUsersSharedMovie(t *testing.T) {
	// Users 1 and 2 both rated Inception; user 2 also rated The Matrix.
	// Their neighbor sets overlap in 1 of 2 union movies.
	g := graph.New()
	g.AddRating(1, "Inception", 9.0, "Sci-Fi")
	g.AddRating(2, "Inception", 9.0, "Sci-Fi")
	g.AddRating(2, "The Matrix", 8.0, "Action")

	got := findSimilarUsers(g, 1, 3)

	if len(got) != 1 {
		t.Fatalf("expected exactly one similar user, got %v", got)
	}
	if got[0].UserID != 2 {
		t.Errorf("expected user 2, got %d", got[0].UserID)
	}
	if !almostEqual(got[0].Similarity, 0.5) {
		t.Errorf("expected similarity 0.5, got %v", got[0].Similarity)
	}
}

func TestFindSimilarUsersAbsentTarget(t *testing.T) {
	g := graph.New()
	g.AddRating(1, "Inception", 9.0, "Sci-Fi")

	got := findSimilarUsers(g, 99, 3)
	if len(got) != 0 {
		t.Errorf("expected empty result for absent target, got %v", got)
	}
}

func TestFindSimilarUsersExcludesSelf(t *testing.T) {
	g := graph.New()
	g.AddRating(1, "Inception", 9.0, "Sci-Fi")

	got := findSimilarUsers(g, 1, 3)
	for _, su := range got {
		if su.UserID == 1 {
			t.Error("target user must not appear in its own similarity list")
		}
	}
}

func TestFindSimilarUsersOmitsZeroOverlap(t *testing.T) {
	g := graph.New()
	g.AddRating(1, "Inception", 9.0, "Sci-Fi")
	g.AddRating(2, "Heat", 8.0, "Crime")

	got := findSimilarUsers(g, 1, 3)
	if len(got) != 0 {
		t.Errorf("expected no similar users with zero overlap, got %v", got)
	}
}

func TestFindSimilarUsersDescendingOrder(t *testing.T) {
	// User 2 shares both of target's movies, user 3 only one of three.
	g := graph.New()
	g.AddRating(1, "A", 8.0, "Drama")
	g.AddRating(1, "B", 7.0, "Drama")
	g.AddRating(2, "A", 9.0, "Drama")
	g.AddRating(2, "B", 6.0, "Drama")
	g.AddRating(3, "A", 5.0, "Drama")
	g.AddRating(3, "C", 9.0, "Action")

	got := findSimilarUsers(g, 1, 3)

	if len(got) != 2 {
		t.Fatalf("expected 2 similar users, got %v", got)
	}
	if got[0].UserID != 2 || got[1].UserID != 3 {
		t.Errorf("expected order [2, 3], got [%d, %d]", got[0].UserID, got[1].UserID)
	}
	if got[0].Similarity <= got[1].Similarity {
		t.Errorf("expected descending similarity, got %v then %v", got[0].Similarity, got[1].Similarity)
	}
	if !almostEqual(got[0].Similarity, 1.0) {
		t.Errorf("expected full overlap similarity 1.0, got %v", got[0].Similarity)
	}
	if !almostEqual(got[1].Similarity, 0.25) {
		t.Errorf("expected similarity 1/4, got %v", got[1].Similarity)
	}
}

func TestFindSimilarUsersTruncatesToTopN(t *testing.T) {
	g := graph.New()
	g.AddRating(1, "A", 8.0, "Drama")
	for id := 2; id <= 6; id++ {
		g.AddRating(id, "A", 7.0, "Drama")
	}

	got := findSimilarUsers(g, 1, 2)
	if len(got) != 2 {
		t.Errorf("expected truncation to 2, got %d", len(got))
	}
}

func TestFindSimilarUsersIgnoresMovieNodes(t *testing.T) {
	// A movie node must never be ranked as a user, even when the movie
	// title looks numeric.
	g := graph.New()
	g.AddRating(1, "2", 8.0, "Drama")
	g.AddRating(3, "2", 7.0, "Drama")

	got := findSimilarUsers(g, 1, 5)

	if len(got) != 1 {
		t.Fatalf("expected one similar user, got %v", got)
	}
	if got[0].UserID != 3 {
		t.Errorf("expected user 3, got %d", got[0].UserID)
	}
}
