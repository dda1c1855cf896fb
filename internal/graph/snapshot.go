// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graph

import (
	"sort"
	"strconv"
)

// NodeView is a read-only projection of a node for rendering and export.
type NodeView struct {
	ID    NodeID   `json:"id"`
	Kind  NodeKind `json:"-"`
	Label string   `json:"label"`
	Genre string   `json:"genre,omitempty"`
}

// KindName carries the node kind as a string for serialized output.
func (v NodeView) KindName() string {
	return v.Kind.String()
}

// EdgeView is a read-only projection of an edge for rendering and export.
type EdgeView struct {
	From   NodeID  `json:"from"`
	To     NodeID  `json:"to"`
	Weight float64 `json:"weight"`
}

// Snapshot is a stable, deterministic view of the whole graph: nodes sorted
// by ID, edges sorted by endpoint pair. Renderers consume only this view,
// never the live graph.
type Snapshot struct {
	Nodes []NodeView `json:"nodes"`
	Edges []EdgeView `json:"edges"`
}

// Snapshot builds the read-only view of the graph.
func (g *Graph) Snapshot() Snapshot {
	snap := Snapshot{
		Nodes: make([]NodeView, 0, len(g.nodes)),
		Edges: make([]EdgeView, 0, len(g.weights)),
	}

	for _, n := range g.nodes {
		view := NodeView{ID: n.ID, Kind: n.Kind, Genre: n.Genre}
		switch n.Kind {
		case KindUser:
			if id, ok := n.UserID(); ok {
				view.Label = "User " + strconv.Itoa(id)
			}
		case KindMovie:
			if t, ok := n.Title(); ok {
				view.Label = t
			}
		}
		snap.Nodes = append(snap.Nodes, view)
	}
	sort.Slice(snap.Nodes, func(i, j int) bool { return snap.Nodes[i].ID < snap.Nodes[j].ID })

	for key, w := range g.weights {
		snap.Edges = append(snap.Edges, EdgeView{From: key.a, To: key.b, Weight: w})
	}
	sort.Slice(snap.Edges, func(i, j int) bool {
		if snap.Edges[i].From != snap.Edges[j].From {
			return snap.Edges[i].From < snap.Edges[j].From
		}
		return snap.Edges[i].To < snap.Edges[j].To
	})

	return snap
}
