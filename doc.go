// Package treecast computes how fast a message can spread through a tree
// when every informed vertex may pass it to one neighbor per step.
//
// 🚀 What is treecast?
//
//	A small, thread-safe library (plus a CLI) for the minimum broadcast time
//	problem on trees:
//		• Adjacency store: build a tree edge by edge, pick any root
//		• Evaluator: exact minimum broadcast time in O(n log n)
//		• Schedules: an optimal call plan and the step each vertex is informed
//		• Builders: stars, paths, k-ary and random trees for tests and demos
//		• Edge lists: read and write trees as plain text
//
// ✨ Why treecast?
//
//   - Generic vertex IDs: ints, strings or any comparable type
//   - No recursion limit: the default walker uses an explicit stack
//   - Read-only evaluation: algorithms run on a frozen snapshot
//   - Hooks: observe each subtree value as it completes
//
// Packages:
//
//	tree/       - Tree[V] adjacency store, Adjacency[V] snapshot, Validate
//	broadcast/  - MergeChildren, MBT, Evaluate, Result.Schedule
//	builder/    - deterministic tree constructors
//	edgelist/   - text codec for trees
//	render/     - ASCII rendering of an evaluated tree
//	cmd/treecast/ - command line driver
//
// Quick ASCII example:
//
//	    A
//	   / \
//	  B   C
//	      │
//	      D
//
//	rooted at A: A calls C (step 1), then B while C calls D (step 2),
//	so the minimum broadcast time is 2.
//
//	go get github.com/katalvlaran/treecast
package treecast
