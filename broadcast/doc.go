// Package broadcast computes the minimum broadcast time (MBT) of a tree.
//
// What:
//
//	A signal starts at the root of an undirected tree. In every discrete
//	step, each vertex that already holds the signal may forward it to at
//	most one neighbor that does not. The MBT is the least number of steps
//	after which every vertex holds the signal; the root's own possession
//	at step 0 is not counted.
//
// How:
//
//	Evaluation is a post-order walk. For a vertex v the walk collects the
//	values of v's children and combines them with MergeChildren:
//
//	  value(leaf)  = 1                            (the step that informs it)
//	  value(v)     = 1 + MergeChildren(values of v's children)
//	  MBT          = value(root) - 1              (the root is never informed)
//
//	MergeChildren sorts the child values in descending order and computes,
//	for position i of k, slack[i] = (k-i) - value[i]. If the smallest slack
//	is <= 0 the result is k + |min slack|, otherwise the largest value.
//	Serving children in that descending order is optimal, which is what
//	Result.Schedule emits.
//
// Strategies:
//
//   - Default: an explicit-stack walk. Depth is bounded by heap, not by the
//     goroutine stack, so degenerate (path-like) trees are safe.
//   - WithRecursive(): the direct recursive formulation. Observable results
//     are identical; it is kept as a reference.
//
// Options:
//
//   - WithContext(ctx)     cancellation, checked once per vertex.
//   - WithValidation()     reject non-trees up front (ErrInvalidTree).
//   - WithOnSubtree(fn)    post-order hook receiving (vertex, value).
//   - WithRecursive()      recursive strategy.
//
// Without WithValidation nothing about the input is checked: cycles,
// duplicate edges, self-loops or an absent root produce whatever the walk
// computes, never a panic and never an error.
//
// Complexity:
//
//   - Evaluate: O(V + E + Σ d·log d) time for vertex degrees d, O(V) space.
//   - Schedule: O(V log V).
package broadcast
