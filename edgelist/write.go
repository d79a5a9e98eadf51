// SPDX-License-Identifier: MIT
// Package: treecast/edgelist
//
// write.go - edge-list serializer.

package edgelist

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/treecast/tree"
)

// Write emits t as a root directive followed by one line per stored edge,
// in insertion order. Duplicate insertions are written once each. An empty
// root is not written. Vertex names must not contain whitespace, ',' or '#'.
func Write(w io.Writer, t *tree.Tree[string]) error {
	if t == nil {
		return ErrNilTree
	}

	bw := bufio.NewWriter(w)
	if root := t.Root(); root != "" {
		if _, err := fmt.Fprintf(bw, "%s %s\n", rootDirective, root); err != nil {
			return fmt.Errorf("edgelist: write: %w", err)
		}
	}
	for _, e := range t.Edges() {
		if _, err := fmt.Fprintf(bw, "%s %s\n", e.U, e.W); err != nil {
			return fmt.Errorf("edgelist: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}

	return nil
}
