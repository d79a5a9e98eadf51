// SPDX-License-Identifier: MIT
// Package: treecast/tree
//
// methods.go - mutation and query methods of Tree.
// Concurrency:
//   - AddEdge/SetRoot under the write lock.
//   - Every other method under the read lock; returned slices are copies.

package tree

import (
	"fmt"
	"slices"
)

// AddEdge inserts the undirected edge {u, w}.
//
// w is appended to u's neighbor list and u to w's, creating either list on
// first use. In the default mode no validation happens and the error is
// always nil: a repeated pair yields duplicate entries and AddEdge(v, v)
// stores v twice in its own list. With WithStrictEdges both cases are
// rejected and nothing is stored.
//
// Complexity: O(1) amortized; O(deg(u)) in strict mode.
func (t *Tree[V]) AddEdge(u, w V) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.strict {
		if u == w {
			return fmt.Errorf("AddEdge(%v, %v): %w", u, w, ErrSelfLoop)
		}
		if slices.Contains(t.adjacency[u], w) {
			return fmt.Errorf("AddEdge(%v, %v): %w", u, w, ErrDuplicateEdge)
		}
	}

	t.touch(u)
	t.touch(w)
	t.adjacency[w] = append(t.adjacency[w], u)
	t.adjacency[u] = append(t.adjacency[u], w)
	t.edges = append(t.edges, Edge[V]{U: u, W: w})

	return nil
}

// touch records v in first-seen order. Caller holds the write lock.
func (t *Tree[V]) touch(v V) {
	if _, ok := t.adjacency[v]; !ok {
		t.adjacency[v] = nil
		t.order = append(t.order, v)
	}
}

// SetRoot reassigns the broadcast origin. The root need not be present.
func (t *Tree[V]) SetRoot(root V) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.root = root
}

// Root returns the current broadcast origin.
func (t *Tree[V]) Root() V {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.root
}

// HasVertex reports whether v appears in at least one stored edge.
func (t *Tree[V]) HasVertex(v V) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.adjacency[v]
	return ok
}

// Neighbors returns a copy of v's neighbor list in insertion order,
// duplicates included. Unknown vertices yield nil.
func (t *Tree[V]) Neighbors(v V) []V {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return slices.Clone(t.adjacency[v])
}

// Degree returns the length of v's neighbor list (duplicates counted).
func (t *Tree[V]) Degree(v V) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.adjacency[v])
}

// Vertices returns every vertex in first-seen order.
func (t *Tree[V]) Vertices() []V {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return slices.Clone(t.order)
}

// VertexCount returns the number of distinct vertices in the store.
func (t *Tree[V]) VertexCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.order)
}

// Edges returns every stored insertion in call order.
func (t *Tree[V]) Edges() []Edge[V] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return slices.Clone(t.edges)
}

// EdgeCount returns the number of stored insertions.
func (t *Tree[V]) EdgeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.edges)
}

// Clone returns an independent deep copy with the same root and policy.
// Complexity: O(V + E).
func (t *Tree[V]) Clone() *Tree[V] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return &Tree[V]{
		strict:    t.strict,
		root:      t.root,
		adjacency: cloneAdjacency(t.adjacency),
		order:     slices.Clone(t.order),
		edges:     slices.Clone(t.edges),
	}
}

// Freeze takes an immutable snapshot of the store and its current root.
// Later AddEdge/SetRoot calls do not affect the snapshot.
// Complexity: O(V + E).
func (t *Tree[V]) Freeze() *Adjacency[V] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return &Adjacency[V]{
		root:      t.root,
		adjacency: cloneAdjacency(t.adjacency),
		order:     slices.Clone(t.order),
		edges:     slices.Clone(t.edges),
	}
}

// Validate reports whether the store is a tree reachable from its root.
// See Adjacency.Validate for the checks performed.
func (t *Tree[V]) Validate() error {
	return t.Freeze().Validate()
}

func cloneAdjacency[V comparable](src map[V][]V) map[V][]V {
	dst := make(map[V][]V, len(src))
	for v, nbrs := range src {
		dst[v] = slices.Clone(nbrs)
	}

	return dst
}
