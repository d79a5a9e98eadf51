// SPDX-License-Identifier: MIT
// Package: treecast/tree
//
// types.go - Tree, Edge, Option and the sentinel errors of the package.

package tree

import (
	"errors"
	"sync"
)

// Sentinel errors for tree construction and validation.
var (
	// ErrSelfLoop indicates an edge whose endpoints are the same vertex.
	ErrSelfLoop = errors.New("tree: self-loop")

	// ErrDuplicateEdge indicates the same unordered pair was inserted twice.
	ErrDuplicateEdge = errors.New("tree: duplicate edge")

	// ErrRootNotFound indicates a non-empty store whose root has no edges.
	ErrRootNotFound = errors.New("tree: root not found")

	// ErrNotTree indicates |E| != |V|-1.
	ErrNotTree = errors.New("tree: edge count does not match vertex count")

	// ErrDisconnected indicates some vertex is unreachable from the root.
	ErrDisconnected = errors.New("tree: disconnected")
)

// Edge is one stored AddEdge insertion. U and W are kept in call order,
// but the edge itself is undirected.
type Edge[V comparable] struct {
	U V
	W V
}

// Option configures a Tree at construction time.
type Option func(*config)

type config struct {
	strict bool // reject self-loops and repeated pairs
}

// WithStrictEdges makes AddEdge return ErrSelfLoop or ErrDuplicateEdge
// instead of storing the offending edge.
func WithStrictEdges() Option {
	return func(c *config) { c.strict = true }
}

// Tree is an undirected adjacency store with a designated root.
//
// The zero value is not usable; construct with New.
type Tree[V comparable] struct {
	mu sync.RWMutex

	strict bool
	root   V

	// adjacency[v] lists v's neighbors in insertion order, duplicates kept.
	adjacency map[V][]V
	// order records vertices in the order they first appeared in an edge.
	order []V
	// edges records every stored insertion.
	edges []Edge[V]
}

// New creates an empty Tree rooted at root.
// Complexity: O(len(opts)).
func New[V comparable](root V, opts ...Option) *Tree[V] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Tree[V]{
		strict:    cfg.strict,
		root:      root,
		adjacency: make(map[V][]V),
	}
}
