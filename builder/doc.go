// Package builder provides deterministic tree fixtures for tests, examples
// and benchmarks of the broadcast evaluator.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildTree(bopts, cons...): creates a tree.Tree[string], resolves the
//     configuration and applies constructors in order.
//   - Topology constructors (Constructor implementations):
//     – Star(n):        one center and n-1 leaves.
//     – Path(n):        0–1–…–(n-1).
//     – KAry(n, k):     heap-indexed complete k-ary tree, parent(i) = (i-1)/k.
//     – RandomTree(n):  random recursive tree, vertex i attaches to a uniform
//     parent in [0, i). Needs WithSeed or WithRand.
//     – Edges(pairs):   an explicit list of index pairs.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:      decimal strings ("0","1",…).
//     – SymbolIDFn:       single letters ("A","B",…).
//     – ExcelColumnIDFn:  Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn: prefix + decimal ("v0","v1",…).
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithIDScheme, WithSeed, WithRand, WithRoot and ID shortcuts.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical
//     edge sequences.
//   - Constructors validate their parameters and return wrapped sentinel
//     errors (errors.Is); they never panic. Option constructors panic on nil
//     functions to surface programmer error early.
//   - Every constructor emits a tree: n vertices and n-1 edges.
package builder
