// SPDX-License-Identifier: MIT
// Package: treecast/tree
//
// validate.go - opt-in structural validation of a snapshot.
//
// Order of checks (first failure wins):
//  1. Empty store            -> valid for any root (single-vertex tree).
//  2. Root present           -> ErrRootNotFound.
//  3. Per-edge scan          -> ErrSelfLoop, ErrDuplicateEdge.
//  4. |E| == |V|-1           -> ErrNotTree.
//  5. Breadth-first sweep    -> ErrDisconnected.

package tree

import "fmt"

// Validate reports whether the snapshot is a tree reachable from its root.
// It returns nil or an error wrapping one of ErrRootNotFound, ErrSelfLoop,
// ErrDuplicateEdge, ErrNotTree or ErrDisconnected.
//
// Complexity: O(V + E) time, O(V + E) space.
func (a *Adjacency[V]) Validate() error {
	if len(a.order) == 0 {
		return nil
	}
	if !a.HasVertex(a.root) {
		return fmt.Errorf("Validate: root %v: %w", a.root, ErrRootNotFound)
	}

	seen := make(map[Edge[V]]struct{}, 2*len(a.edges))
	for _, e := range a.edges {
		if e.U == e.W {
			return fmt.Errorf("Validate: edge {%v, %v}: %w", e.U, e.W, ErrSelfLoop)
		}
		if _, dup := seen[e]; dup {
			return fmt.Errorf("Validate: edge {%v, %v}: %w", e.U, e.W, ErrDuplicateEdge)
		}
		seen[e] = struct{}{}
		seen[Edge[V]{U: e.W, W: e.U}] = struct{}{}
	}

	if len(a.edges) != len(a.order)-1 {
		return fmt.Errorf("Validate: %d edges for %d vertices: %w", len(a.edges), len(a.order), ErrNotTree)
	}

	if reached := a.sweep(); reached != len(a.order) {
		return fmt.Errorf("Validate: reached %d of %d vertices from %v: %w",
			reached, len(a.order), a.root, ErrDisconnected)
	}

	return nil
}

// sweep runs a breadth-first search from the root and returns how many
// distinct vertices it reached.
func (a *Adjacency[V]) sweep() int {
	visited := make(map[V]bool, len(a.order))
	queue := make([]V, 0, len(a.order))

	visited[a.root] = true
	queue = append(queue, a.root)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, nbr := range a.adjacency[v] {
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}

	return len(visited)
}
