// SPDX-License-Identifier: MIT
// Package: treecast/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildTree(bopts, cons...). Creates t, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical trees.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treecast/tree"
)

// Constructor applies a deterministic mutation to t using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit edges in a stable, documented order.
//   - Derive vertex IDs from cfg.idFn only.
type Constructor func(t *tree.Tree[string], cfg builderConfig) error

// BuildTree creates a new tree rooted at cfg.idFn(0) (or the WithRoot
// override), resolves the builder configuration from bopts, and applies all
// constructors in order. Any constructor error is wrapped with the context
// "BuildTree: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildTree(bopts []BuilderOption, cons ...Constructor) (*tree.Tree[string], error) {
	cfg := newBuilderConfig(bopts...)

	root := cfg.idFn(0)
	if cfg.rootSet {
		root = cfg.root
	}
	t := tree.New(root)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildTree: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, fmt.Errorf("BuildTree: %w", err)
		}
	}

	return t, nil
}
