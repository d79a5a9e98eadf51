// SPDX-License-Identifier: MIT
// Package: treecast/edgelist
//
// read.go - line-oriented edge-list parser.

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/treecast/tree"
)

const (
	commentMarker   = "#"
	rootDirective   = "root:"
	fieldsPerEdge   = 2
	maxLineCapacity = 1 << 20
)

// Read parses an edge list from r into a new tree rooted at root, unless
// the input carries a root directive. opts are passed to tree.New, so
// tree.WithStrictEdges() turns repeated pairs and self-loops into errors.
//
// Returns ErrMalformedLine (wrapped with the line number) for a line with
// the wrong number of fields or an empty root directive, any AddEdge error
// wrapped the same way, or the underlying read error.
func Read(r io.Reader, root string, opts ...tree.Option) (*tree.Tree[string], error) {
	t := tree.New(root, opts...)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineCapacity)

	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if i := strings.Index(line, commentMarker); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if rest, ok := strings.CutPrefix(line, rootDirective); ok {
			rest = strings.TrimSpace(rest)
			if len(strings.Fields(rest)) != 1 {
				return nil, fmt.Errorf("edgelist: line %d: %q: %w", n, sc.Text(), ErrMalformedLine)
			}
			t.SetRoot(rest)
			continue
		}

		tok := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(tok) != fieldsPerEdge {
			return nil, fmt.Errorf("edgelist: line %d: %q: %w", n, sc.Text(), ErrMalformedLine)
		}
		if err := t.AddEdge(tok[0], tok[1]); err != nil {
			return nil, fmt.Errorf("edgelist: line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}

	return t, nil
}

// ReadFile opens path and parses it with Read. The path "-" reads stdin.
func ReadFile(path, root string, opts ...tree.Option) (*tree.Tree[string], error) {
	if path == "-" {
		return Read(os.Stdin, root, opts...)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	return Read(f, root, opts...)
}
