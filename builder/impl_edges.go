// SPDX-License-Identifier: MIT
// Package: treecast/builder
//
// impl_edges.go - implementation of Edges(pairs) constructor.
//
// Contract:
//   - Every index ≥ 0 (else ErrInvalidIndex); checked before any insertion.
//   - Emits cfg.idFn(p[0])–cfg.idFn(p[1]) in slice order.
//   - Does not check that the pairs form a tree; use tree.Validate.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treecast/tree"
)

const methodEdges = "Edges"

// Edges returns a Constructor that inserts the given index pairs verbatim.
func Edges(pairs [][2]int) Constructor {
	return func(t *tree.Tree[string], cfg builderConfig) error {
		for i, p := range pairs {
			if p[0] < 0 || p[1] < 0 {
				return fmt.Errorf("%s: pair %d = %v: %w", methodEdges, i, p, ErrInvalidIndex)
			}
		}

		for _, p := range pairs {
			u, w := cfg.idFn(p[0]), cfg.idFn(p[1])
			if err := t.AddEdge(u, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s, %s): %w", methodEdges, u, w, err)
			}
		}

		return nil
	}
}
