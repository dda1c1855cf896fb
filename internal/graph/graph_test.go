// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graph

import (
	"reflect"
	"testing"
)

func TestAddRatingCreatesEndpoints(t *testing.T) {
	g := New()
	g.AddRating(1, "Inception", 9.0, "Sci-Fi")

	if !g.HasNode(UserNodeID(1)) {
		t.Error("expected user node to be created")
	}
	if !g.HasNode(MovieNodeID("Inception")) {
		t.Error("expected movie node to be created")
	}
	if g.NodeCount() != 2 {
		t.Errorf("expected 2 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 1 {
		t.Errorf("expected 1 edge, got %d", g.EdgeCount())
	}

	w, ok := g.Weight(UserNodeID(1), MovieNodeID("Inception"))
	if !ok || w != 9.0 {
		t.Errorf("expected weight 9.0, got %v (ok=%v)", w, ok)
	}
}

func TestAddRatingLastWriteWins(t *testing.T) {
	g := New()
	g.AddRating(1, "Inception", 7.0, "Sci-Fi")
	g.AddRating(1, "Inception", 9.5, "Sci-Fi")

	if g.EdgeCount() != 1 {
		t.Fatalf("expected single edge after re-rating, got %d", g.EdgeCount())
	}
	w, _ := g.Weight(UserNodeID(1), MovieNodeID("Inception"))
	if w != 9.5 {
		t.Errorf("expected overwritten weight 9.5, got %v", w)
	}
}

func TestWeightIsUndirected(t *testing.T) {
	g := New()
	g.AddRating(2, "Heat", 8.0, "Crime")

	forward, ok1 := g.Weight(UserNodeID(2), MovieNodeID("Heat"))
	reverse, ok2 := g.Weight(MovieNodeID("Heat"), UserNodeID(2))

	if !ok1 || !ok2 {
		t.Fatal("expected weight lookup to succeed in both directions")
	}
	if forward != reverse {
		t.Errorf("expected symmetric weight, got %v and %v", forward, reverse)
	}
}

func TestNeighborsMissingNode(t *testing.T) {
	g := New()

	if got := g.Neighbors(UserNodeID(99)); len(got) != 0 {
		t.Errorf("expected empty neighbors for absent node, got %v", got)
	}
	if got := g.NeighborSet(MovieNodeID("Nope")); len(got) != 0 {
		t.Errorf("expected empty neighbor set for absent node, got %v", got)
	}
	if g.Degree(UserNodeID(99)) != 0 {
		t.Error("expected zero degree for absent node")
	}
}

func TestNeighborsSorted(t *testing.T) {
	g := New()
	g.AddRating(1, "Zodiac", 7.7, "Crime")
	g.AddRating(1, "Alien", 8.5, "Horror")
	g.AddRating(1, "Memento", 8.4, "Mystery")

	got := g.Neighbors(UserNodeID(1))
	want := []NodeID{MovieNodeID("Alien"), MovieNodeID("Memento"), MovieNodeID("Zodiac")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors() = %v, want %v", got, want)
	}
}

func TestAdjacencySymmetric(t *testing.T) {
	g := New()
	g.AddRating(1, "Inception", 9.0, "Sci-Fi")
	g.AddRating(2, "Inception", 8.0, "Sci-Fi")

	movieNeighbors := g.Neighbors(MovieNodeID("Inception"))
	if len(movieNeighbors) != 2 {
		t.Fatalf("expected movie to neighbor both users, got %v", movieNeighbors)
	}
	for _, u := range []int{1, 2} {
		userNeighbors := g.NeighborSet(UserNodeID(u))
		if _, ok := userNeighbors[MovieNodeID("Inception")]; !ok {
			t.Errorf("expected user %d to neighbor the movie", u)
		}
	}
}

func TestNodeNamespacesDoNotCollide(t *testing.T) {
	g := New()
	// A movie titled "1" must not collide with user 1.
	g.AddRating(1, "1", 5.0, "Drama")

	if g.NodeCount() != 2 {
		t.Fatalf("expected distinct user and movie nodes, got %d", g.NodeCount())
	}

	n, ok := g.Node(UserNodeID(1))
	if !ok || n.Kind != KindUser {
		t.Error("expected user node under the user namespace")
	}
	n, ok = g.Node(MovieNodeID("1"))
	if !ok || n.Kind != KindMovie {
		t.Error("expected movie node under the movie namespace")
	}
}

func TestAddMovieUpdatesGenre(t *testing.T) {
	g := New()
	g.AddMovie("Alien", "Horror")
	g.AddMovie("Alien", "Sci-Fi")

	n, ok := g.Node(MovieNodeID("Alien"))
	if !ok {
		t.Fatal("expected movie node")
	}
	if n.Genre != "Sci-Fi" {
		t.Errorf("expected genre updated to Sci-Fi, got %q", n.Genre)
	}
}

func TestUserIDsAndMovieTitles(t *testing.T) {
	g := New()
	g.AddRating(3, "B", 6.0, "Drama")
	g.AddRating(1, "A", 7.0, "Action")
	g.AddRating(2, "A", 8.0, "Action")

	if got, want := g.UserIDs(), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("UserIDs() = %v, want %v", got, want)
	}
	if got, want := g.MovieTitles(), []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("MovieTitles() = %v, want %v", got, want)
	}
}

func TestNodeAccessors(t *testing.T) {
	tests := []struct {
		name   string
		node   *Node
		wantID int
		okID   bool
		wantT  string
		okT    bool
	}{
		{
			name:   "user node",
			node:   &Node{ID: UserNodeID(42), Kind: KindUser},
			wantID: 42, okID: true,
			wantT: "", okT: false,
		},
		{
			name:   "movie node",
			node:   &Node{ID: MovieNodeID("Heat"), Kind: KindMovie},
			wantID: 0, okID: false,
			wantT: "Heat", okT: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tt.node.UserID()
			if ok != tt.okID || id != tt.wantID {
				t.Errorf("UserID() = (%d, %v), want (%d, %v)", id, ok, tt.wantID, tt.okID)
			}
			title, ok := tt.node.Title()
			if ok != tt.okT || title != tt.wantT {
				t.Errorf("Title() = (%q, %v), want (%q, %v)", title, ok, tt.wantT, tt.okT)
			}
		})
	}
}

func TestSnapshotDeterministic(t *testing.T) {
	g := New()
	g.AddRating(2, "The Matrix", 8.0, "Action")
	g.AddRating(1, "Inception", 9.0, "Sci-Fi")
	g.AddRating(2, "Inception", 9.0, "Sci-Fi")

	first := g.Snapshot()
	second := g.Snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical snapshots for an unchanged graph")
	}
	if len(first.Nodes) != 4 {
		t.Errorf("expected 4 nodes in snapshot, got %d", len(first.Nodes))
	}
	if len(first.Edges) != 3 {
		t.Errorf("expected 3 edges in snapshot, got %d", len(first.Edges))
	}

	// Nodes sorted by ID: movies (m:) precede users (u:).
	for i := 1; i < len(first.Nodes); i++ {
		if first.Nodes[i-1].ID >= first.Nodes[i].ID {
			t.Errorf("snapshot nodes not sorted at %d: %v >= %v", i, first.Nodes[i-1].ID, first.Nodes[i].ID)
		}
	}
}

func TestSnapshotLabels(t *testing.T) {
	g := New()
	g.AddRating(7, "Alien", 8.5, "Horror")

	snap := g.Snapshot()
	labels := make(map[NodeID]string, len(snap.Nodes))
	for _, n := range snap.Nodes {
		labels[n.ID] = n.Label
	}

	if labels[UserNodeID(7)] != "User 7" {
		t.Errorf("expected user label 'User 7', got %q", labels[UserNodeID(7)])
	}
	if labels[MovieNodeID("Alien")] != "Alien" {
		t.Errorf("expected movie label 'Alien', got %q", labels[MovieNodeID("Alien")])
	}
}
