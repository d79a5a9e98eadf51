// SPDX-License-Identifier: MIT
// Package: treecast/builder
//
// impl_random_tree.go - implementation of RandomTree(n) constructor.
//
// Canonical model: random recursive tree. Vertex i (i ≥ 1) attaches to a
// parent drawn uniformly from [0, i). Expected height is O(log n), but the
// shape varies widely across seeds, which makes it a good property-test
// source.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for n = 1.
//   - Edges parent–i, i ascending; exactly one rng.Intn draw per vertex.
//
// Determinism:
//   - Fixed seed ⇒ identical tree.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treecast/tree"
)

const (
	methodRandomTree   = "RandomTree"
	minRandomTreeNodes = 1
)

// RandomTree returns a Constructor that samples a random recursive tree on
// n vertices.
func RandomTree(n int) Constructor {
	return func(t *tree.Tree[string], cfg builderConfig) error {
		if n < minRandomTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomTree, n, minRandomTreeNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}

		var parentID, childID string
		for i := 1; i < n; i++ {
			parentID = cfg.idFn(cfg.rng.Intn(i))
			childID = cfg.idFn(i)
			if err := t.AddEdge(parentID, childID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s, %s): %w", methodRandomTree, parentID, childID, err)
			}
		}

		return nil
	}
}
