// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graph

import (
	"sort"
	"strconv"
	"strings"
)

// NodeKind distinguishes the two sides of the bipartite graph.
type NodeKind int

const (
	// KindUser marks a user node.
	KindUser NodeKind = iota
	// KindMovie marks a movie node.
	KindMovie
)

// String returns the lowercase kind name.
func (k NodeKind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindMovie:
		return "movie"
	default:
		return "unknown"
	}
}

// NodeID is a namespace-tagged node identifier. User nodes use the "u:"
// prefix, movie nodes "m:", so the two ID spaces cannot collide.
type NodeID string

// UserNodeID builds the node ID for a user.
func UserNodeID(id int) NodeID {
	return NodeID("u:" + strconv.Itoa(id))
}

// MovieNodeID builds the node ID for a movie title.
func MovieNodeID(title string) NodeID {
	return NodeID("m:" + title)
}

// Node is a graph vertex. Genre is set only on movie nodes.
type Node struct {
	ID    NodeID
	Kind  NodeKind
	Genre string
}

// UserID extracts the integer user ID from a user node.
func (n *Node) UserID() (int, bool) {
	if n.Kind != KindUser {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimPrefix(string(n.ID), "u:"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// Title extracts the movie title from a movie node.
func (n *Node) Title() (string, bool) {
	if n.Kind != KindMovie {
		return "", false
	}
	return strings.TrimPrefix(string(n.ID), "m:"), true
}

// edgeKey identifies an undirected edge. The two endpoints are stored in
// lexicographic order so (a,b) and (b,a) map to the same key.
type edgeKey struct {
	a, b NodeID
}

func newEdgeKey(x, y NodeID) edgeKey {
	if x > y {
		x, y = y, x
	}
	return edgeKey{a: x, b: y}
}

// Graph is the bipartite user-movie rating graph.
type Graph struct {
	nodes   map[NodeID]*Node
	adj     map[NodeID]map[NodeID]struct{}
	weights map[edgeKey]float64
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes:   make(map[NodeID]*Node),
		adj:     make(map[NodeID]map[NodeID]struct{}),
		weights: make(map[edgeKey]float64),
	}
}

// AddUser inserts a user node. Re-adding an existing user is a no-op.
func (g *Graph) AddUser(id int) NodeID {
	nid := UserNodeID(id)
	if _, ok := g.nodes[nid]; !ok {
		g.nodes[nid] = &Node{ID: nid, Kind: KindUser}
		g.adj[nid] = make(map[NodeID]struct{})
	}
	return nid
}

// AddMovie inserts a movie node. Re-adding updates the genre attribute
// (last write wins), matching edge-weight semantics.
func (g *Graph) AddMovie(title, genre string) NodeID {
	nid := MovieNodeID(title)
	if n, ok := g.nodes[nid]; ok {
		n.Genre = genre
		return nid
	}
	g.nodes[nid] = &Node{ID: nid, Kind: KindMovie, Genre: genre}
	g.adj[nid] = make(map[NodeID]struct{})
	return nid
}

// AddRating records that the user rated the movie, creating either endpoint
// if missing and setting the undirected edge weight. Re-rating the same
// movie overwrites the previous weight.
func (g *Graph) AddRating(userID int, title string, rating float64, genre string) {
	u := g.AddUser(userID)
	m := g.AddMovie(title, genre)
	g.adj[u][m] = struct{}{}
	g.adj[m][u] = struct{}{}
	g.weights[newEdgeKey(u, m)] = rating
}

// HasNode reports whether the node exists.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node for the given ID.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Neighbors returns the neighbor IDs of a node in sorted order. An absent
// node yields an empty slice, never an error.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	set, ok := g.adj[id]
	if !ok {
		return nil
	}
	out := make([]NodeID, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NeighborSet returns a copy of the neighbor set of a node. An absent node
// yields an empty set.
func (g *Graph) NeighborSet(id NodeID) map[NodeID]struct{} {
	set, ok := g.adj[id]
	if !ok {
		return map[NodeID]struct{}{}
	}
	out := make(map[NodeID]struct{}, len(set))
	for n := range set {
		out[n] = struct{}{}
	}
	return out
}

// Degree returns the neighbor count of a node; zero when absent.
func (g *Graph) Degree(id NodeID) int {
	return len(g.adj[id])
}

// Weight returns the edge weight between two nodes.
func (g *Graph) Weight(a, b NodeID) (float64, bool) {
	w, ok := g.weights[newEdgeKey(a, b)]
	return w, ok
}

// NodeCount returns the total number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.weights)
}

// UserIDs returns the IDs of all user nodes in ascending order.
func (g *Graph) UserIDs() []int {
	ids := make([]int, 0, len(g.nodes))
	for _, n := range g.nodes {
		if id, ok := n.UserID(); ok {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// MovieTitles returns the titles of all movie nodes in sorted order.
func (g *Graph) MovieTitles() []string {
	titles := make([]string, 0, len(g.nodes))
	for _, n := range g.nodes {
		if t, ok := n.Title(); ok {
			titles = append(titles, t)
		}
	}
	sort.Strings(titles)
	return titles
}
