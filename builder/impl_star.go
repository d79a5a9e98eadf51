// SPDX-License-Identifier: MIT
// Package: treecast/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). Star(1) is the lone center.
//   - Center is cfg.idFn(0); leaves are cfg.idFn(i) for i = 1..n-1.
//   - Emits spokes in stable order center–leaf[i], i ascending.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treecast/tree"
)

const (
	methodStar   = "Star"
	minStarNodes = 1
)

// Star returns a Constructor that builds a star with n vertices:
// the center cfg.idFn(0) and n-1 leaves.
func Star(n int) Constructor {
	return func(t *tree.Tree[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		center := cfg.idFn(0)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := t.AddEdge(center, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%s, %s): %w", methodStar, center, leaf, err)
			}
		}

		return nil
	}
}
