// SPDX-License-Identifier: MIT
// Package: treecast/tree
//
// adjacency.go - Adjacency, the read-only snapshot produced by Tree.Freeze.
// It exposes no mutators and hands out copies or single elements only, so
// holders of an *Adjacency cannot change what other holders observe.

package tree

import "slices"

// Adjacency is an immutable snapshot of a Tree.
type Adjacency[V comparable] struct {
	root      V
	adjacency map[V][]V
	order     []V
	edges     []Edge[V]
}

// Root returns the root captured at Freeze time.
func (a *Adjacency[V]) Root() V { return a.root }

// HasVertex reports whether v appears in at least one edge.
func (a *Adjacency[V]) HasVertex(v V) bool {
	_, ok := a.adjacency[v]
	return ok
}

// Degree returns the length of v's neighbor list (duplicates counted).
// Unknown vertices have degree 0.
func (a *Adjacency[V]) Degree(v V) int { return len(a.adjacency[v]) }

// NeighborAt returns the i-th entry of v's neighbor list.
// It panics if i is outside [0, Degree(v)), like a slice index.
func (a *Adjacency[V]) NeighborAt(v V, i int) V { return a.adjacency[v][i] }

// Neighbors returns a copy of v's neighbor list.
func (a *Adjacency[V]) Neighbors(v V) []V { return slices.Clone(a.adjacency[v]) }

// Vertices returns every vertex in first-seen order.
func (a *Adjacency[V]) Vertices() []V { return slices.Clone(a.order) }

// VertexCount returns the number of distinct vertices.
func (a *Adjacency[V]) VertexCount() int { return len(a.order) }

// Edges returns every stored insertion in call order.
func (a *Adjacency[V]) Edges() []Edge[V] { return slices.Clone(a.edges) }

// EdgeCount returns the number of stored insertions.
func (a *Adjacency[V]) EdgeCount() int { return len(a.edges) }
