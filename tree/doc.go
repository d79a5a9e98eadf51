// Package tree provides the undirected adjacency store that broadcast
// evaluation runs on.
//
// A Tree[V] is built once by repeated AddEdge calls and carries a single
// designated root. Vertex identifiers are any comparable Go type, so the
// same store serves integer IDs, strings or small structs.
//
// The store is deliberately literal:
//
//   - AddEdge(u, w) appends w to u's neighbor list and u to w's, creating
//     the lists on first use. Neighbor order is insertion order.
//   - Repeating a pair stores a second entry on both sides; it is not
//     deduplicated.
//   - A self-loop AddEdge(v, v) stores v twice in its own list.
//   - SetRoot never checks that the root is present. An empty store with any
//     root is the single-vertex tree.
//
// Two opt-in hardenings exist for callers that want them:
//
//   - WithStrictEdges() makes AddEdge reject self-loops (ErrSelfLoop) and
//     repeated pairs (ErrDuplicateEdge) instead of storing them.
//   - Validate() checks that the store is a tree reachable from the root and
//     reports the first violation as a wrapped sentinel.
//
// Freeze() copies the store into an Adjacency[V], which has no mutators.
// Algorithms take an *Adjacency so they cannot modify the tree they walk.
//
// Concurrency:
//
//	Tree guards its state with a sync.RWMutex: AddEdge/SetRoot take the write
//	lock, every query the read lock. Adjacency is immutable after Freeze and
//	needs no locking.
//
// Complexity:
//
//   - AddEdge:  O(1) amortized (O(deg) in strict mode).
//   - Freeze:   O(V + E).
//   - Validate: O(V + E).
package tree
