// SPDX-License-Identifier: MIT
// Package: treecast/edgelist
//
// errors.go - sentinel errors of the edge-list codec.

package edgelist

import "errors"

var (
	// ErrMalformedLine indicates a line that is neither an edge, a
	// comment nor a root directive. Wrapped with the 1-based line number.
	ErrMalformedLine = errors.New("edgelist: malformed line")

	// ErrNilTree indicates Write was called with a nil tree.
	ErrNilTree = errors.New("edgelist: tree is nil")
)
