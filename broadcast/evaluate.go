// Package broadcast evaluates the minimum broadcast time with a post-order
// walk over a frozen tree.Adjacency.
//
// Key features:
//   - Evaluate(adj, opts...): full Result with per-vertex values.
//   - MBT(t, opts...): the scalar, evaluated on a fresh snapshot of t.
//   - Explicit-stack walk by default; WithRecursive for the recursion.
//
// Errors:
//
//   - ErrTreeNil / ErrAdjacencyNil   nil input.
//   - ErrInvalidTree                 under WithValidation, wraps the tree sentinel.
//   - context.Canceled               if ctx is done.
//   - any error returned by the OnSubtree hook.
package broadcast

import (
	"fmt"

	"github.com/katalvlaran/treecast/tree"
)

// walker holds the state of one evaluation. The visited set lives here and
// is discarded with the walker.
type walker[V comparable] struct {
	adj     *tree.Adjacency[V]
	opts    Options
	root    V
	visited map[V]bool
	res     *Result[V]
}

// frame is one vertex on the explicit stack.
type frame[V comparable] struct {
	v      V
	leaf   bool  // non-root vertex with no child slot: value 1, no scan
	next   int   // cursor into v's neighbor list
	values []int // values of the children finished so far
}

// MBT returns the minimum broadcast time of t from its current root.
// The tree is frozen first, so concurrent AddEdge calls do not affect a
// running evaluation.
func MBT[V comparable](t *tree.Tree[V], opts ...Option) (int, error) {
	if t == nil {
		return 0, ErrTreeNil
	}

	res, err := Evaluate(t.Freeze(), opts...)
	if err != nil {
		return 0, err
	}

	return res.Time, nil
}

// Evaluate walks adj from its root and returns the full Result.
func Evaluate[V comparable](adj *tree.Adjacency[V], opts ...Option) (*Result[V], error) {
	// 1. Validate input
	if adj == nil {
		return nil, ErrAdjacencyNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Optional structural check
	if o.Validate {
		if err := adj.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTree, err)
		}
	}

	// 4. Walk
	n := adj.VertexCount()
	w := &walker[V]{
		adj:     adj,
		opts:    o,
		root:    adj.Root(),
		visited: make(map[V]bool, n),
		res: &Result[V]{
			Root:     adj.Root(),
			Value:    make(map[V]int, n),
			Parent:   make(map[V]V, n),
			Children: make(map[V][]V, n),
			Order:    make([]V, 0, n),
		},
	}

	var (
		value int
		err   error
	)
	if o.Recursive {
		value, err = w.visit(w.root)
	} else {
		value, err = w.walk()
	}
	if err != nil {
		return nil, err
	}

	// 5. The root is never informed, so its receive step is dropped.
	w.res.Time = value - 1

	return w.res, nil
}

// enter marks v visited and reports whether v is a leaf: a non-root vertex
// whose neighbor list holds nothing beyond its parent entry.
func (w *walker[V]) enter(v V) (bool, error) {
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	w.visited[v] = true
	children := w.adj.Degree(v)
	if v != w.root {
		children--
	}

	return v != w.root && children == 0, nil
}

// link records u as a child of v in traversal order.
func (w *walker[V]) link(v, u V) {
	w.res.Parent[u] = v
	w.res.Children[v] = append(w.res.Children[v], u)
}

// finish computes v's value, records it and runs the post-order hook.
func (w *walker[V]) finish(v V, leaf bool, values []int) (int, error) {
	value := 1
	if !leaf {
		value += MergeChildren(values)
	}

	w.res.Value[v] = value
	w.res.Order = append(w.res.Order, v)

	if w.opts.onSubtree != nil {
		if err := w.opts.onSubtree(v, value); err != nil {
			return 0, fmt.Errorf("broadcast: OnSubtree hook for %v: %w", v, err)
		}
	}

	return value, nil
}

// walk is the explicit-stack post-order traversal. Each frame scans its
// neighbor list from a cursor; a still-unvisited neighbor is pushed and
// the scan resumes after that child's frame is popped, exactly where a
// recursive call would return.
func (w *walker[V]) walk() (int, error) {
	leaf, err := w.enter(w.root)
	if err != nil {
		return 0, err
	}
	stack := []*frame[V]{{v: w.root, leaf: leaf}}

	for {
		top := stack[len(stack)-1]

		// Advance the cursor to the next unvisited neighbor, if any.
		var (
			child  V
			pushed bool
		)
		if !top.leaf {
			for top.next < w.adj.Degree(top.v) {
				u := w.adj.NeighborAt(top.v, top.next)
				top.next++
				if !w.visited[u] {
					child, pushed = u, true
					break
				}
			}
		}

		if pushed {
			w.link(top.v, child)
			if leaf, err = w.enter(child); err != nil {
				return 0, err
			}
			stack = append(stack, &frame[V]{v: child, leaf: leaf})
			continue
		}

		// Completion phase: every child of top is done.
		value, err := w.finish(top.v, top.leaf, top.values)
		if err != nil {
			return 0, err
		}
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return value, nil
		}
		parent := stack[len(stack)-1]
		parent.values = append(parent.values, value)
	}
}

// visit is the recursive formulation of walk.
func (w *walker[V]) visit(v V) (int, error) {
	leaf, err := w.enter(v)
	if err != nil {
		return 0, err
	}
	if leaf {
		return w.finish(v, true, nil)
	}

	var values []int
	for i := 0; i < w.adj.Degree(v); i++ {
		u := w.adj.NeighborAt(v, i)
		if w.visited[u] {
			continue
		}
		w.link(v, u)
		value, err := w.visit(u)
		if err != nil {
			return 0, err
		}
		values = append(values, value)
	}

	return w.finish(v, false, values)
}
