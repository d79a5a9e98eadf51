// SPDX-License-Identifier: MIT
// Package: treecast/builder
//
// impl_kary.go - implementation of KAry(n, k) constructor.
//
// Layout (heap indexing, k = 3):
//
//	0               (L0)
//	1 2 3           (L1)
//	4 5 6 7 8 9 ... (L2)
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); k ≥ 1 (else ErrInvalidBranching).
//   - Vertex i > 0 hangs off parent (i-1)/k. Edges parent–i, i ascending.
//   - The last level may be partial; k = 1 yields Path(n).
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treecast/tree"
)

const (
	methodKAry   = "KAry"
	minKAryNodes = 1
	minBranching = 1
)

// KAry returns a Constructor that builds the first n vertices of a complete
// k-ary tree in breadth-first (heap) order.
func KAry(n, k int) Constructor {
	return func(t *tree.Tree[string], cfg builderConfig) error {
		if n < minKAryNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodKAry, n, minKAryNodes, ErrTooFewVertices)
		}
		if k < minBranching {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodKAry, k, minBranching, ErrInvalidBranching)
		}

		var parentID, childID string
		for i := 1; i < n; i++ {
			parentID = cfg.idFn((i - 1) / k)
			childID = cfg.idFn(i)
			if err := t.AddEdge(parentID, childID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s, %s): %w", methodKAry, parentID, childID, err)
			}
		}

		return nil
	}
}
