// SPDX-License-Identifier: MIT
// Package: treecast/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w:
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidBranching indicates a k-ary branching factor below 1.
var ErrInvalidBranching = errors.New("builder: invalid branching factor")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidIndex indicates a negative vertex index in an explicit edge list.
var ErrInvalidIndex = errors.New("builder: invalid vertex index")

// ErrConstructFailed indicates a construction that could not proceed, such
// as a nil constructor or a rejected edge insertion.
var ErrConstructFailed = errors.New("builder: construction failed")
