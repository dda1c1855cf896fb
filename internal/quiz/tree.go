// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package quiz

// Tree is a binary yes/no decision tree. Interior nodes carry a question in
// their value; leaves carry an answer. A nil child means the branch ends.
type Tree[T any] struct {
	Value T
	Yes   *Tree[T]
	No    *Tree[T]
}

// New returns a single-node tree holding v.
func New[T any](v T) *Tree[T] {
	return &Tree[T]{Value: v}
}

// IsLeaf reports whether the node has no children.
func (t *Tree[T]) IsLeaf() bool {
	return t.Yes == nil && t.No == nil
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return 1 + t.Yes.Len() + t.No.Len()
}

// Depth returns the length of the longest root-to-leaf path.
func (t *Tree[T]) Depth() int {
	if t == nil {
		return 0
	}
	yes, no := t.Yes.Depth(), t.No.Depth()
	if yes > no {
		return 1 + yes
	}
	return 1 + no
}

// Traverse follows the answers from the root, taking the Yes branch for
// true and the No branch for false. It stops at the first leaf, or at the
// current node when the answers run out or the next branch is missing, and
// returns the node it stopped on.
func (t *Tree[T]) Traverse(answers []bool) *Tree[T] {
	node := t
	for _, yes := range answers {
		var next *Tree[T]
		if yes {
			next = node.Yes
		} else {
			next = node.No
		}
		if next == nil {
			return node
		}
		node = next
	}
	return node
}
