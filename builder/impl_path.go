// SPDX-License-Identifier: MIT
// Package: treecast/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). Path(1) is a single vertex.
//   - Emits edges (i-1)–i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treecast/tree"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(t *tree.Tree[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		var uID, vID string
		for i := 1; i < n; i++ {
			uID = cfg.idFn(i - 1)
			vID = cfg.idFn(i)
			if err := t.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s, %s): %w", methodPath, uID, vID, err)
			}
		}

		return nil
	}
}
