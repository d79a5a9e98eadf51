package broadcast

import (
	"cmp"
	"slices"
)

// ServingOrder returns v's children in the order v should inform them:
// descending Value, ties kept in traversal order. This is the order
// MergeChildren assumes.
func (r *Result[V]) ServingOrder(v V) []V {
	kids := slices.Clone(r.Children[v])
	slices.SortStableFunc(kids, func(a, b V) int {
		return cmp.Compare(r.Value[b], r.Value[a])
	})

	return kids
}

// Schedule returns an optimal sequence of calls. Every informed vertex
// calls its children in ServingOrder, one per step, starting the step after
// it was informed. Calls are sorted by step; within a step they keep the
// breadth-first emission order.
//
// The last call happens at step Time and no vertex appears twice as From
// in the same step.
func (r *Result[V]) Schedule() []Call[V] {
	calls, _ := r.plan()
	return calls
}

// InformedAt returns the step at which each vertex receives the signal
// under Schedule. The root maps to 0.
func (r *Result[V]) InformedAt() map[V]int {
	_, informed := r.plan()
	return informed
}

func (r *Result[V]) plan() ([]Call[V], map[V]int) {
	calls := make([]Call[V], 0, len(r.Parent))
	informed := make(map[V]int, len(r.Value))
	informed[r.Root] = 0

	queue := []V{r.Root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for i, c := range r.ServingOrder(v) {
			step := informed[v] + i + 1
			informed[c] = step
			calls = append(calls, Call[V]{Step: step, From: v, To: c})
			queue = append(queue, c)
		}
	}

	slices.SortStableFunc(calls, func(a, b Call[V]) int {
		return cmp.Compare(a.Step, b.Step)
	})

	return calls, informed
}
