package broadcast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treecast/broadcast"
	"github.com/katalvlaran/treecast/tree"
)

// referenceEdges is the 22-vertex demonstration tree.
var referenceEdges = [][2]int{
	{1, 4}, {1, 3}, {2, 7}, {2, 12}, {3, 8}, {5, 17}, {6, 19}, {5, 13},
	{6, 20}, {7, 10}, {7, 13}, {8, 12}, {8, 18}, {9, 22}, {11, 16},
	{11, 14}, {14, 21}, {15, 18}, {15, 22}, {18, 20}, {21, 22},
}

// referenceMBT is the broadcast time of the reference tree from every root.
var referenceMBT = map[int]int{
	1: 9, 2: 9, 3: 8, 4: 10, 5: 12, 6: 9, 7: 10, 8: 7, 9: 10, 10: 11, 11: 12,
	12: 8, 13: 11, 14: 11, 15: 8, 16: 13, 17: 13, 18: 7, 19: 10, 20: 8,
	21: 10, 22: 9,
}

// buildTree inserts edges into a fresh tree rooted at root.
func buildTree[V comparable](t testing.TB, root V, edges [][2]V) *tree.Tree[V] {
	t.Helper()
	tr := tree.New(root)
	for _, e := range edges {
		require.NoError(t, tr.AddEdge(e[0], e[1]))
	}

	return tr
}

// requireValidSchedule checks that res.Schedule() informs every visited
// vertex exactly once, only from already informed senders, with at most one
// call per sender per step, and finishes at res.Time.
func requireValidSchedule[V comparable](t *testing.T, res *broadcast.Result[V]) {
	t.Helper()
	calls := res.Schedule()
	require.Len(t, calls, len(res.Value)-1, "one call per non-root vertex")

	informed := map[V]int{res.Root: 0}
	busy := make(map[V]map[int]bool)
	last := 0
	for _, c := range calls {
		at, ok := informed[c.From]
		require.True(t, ok, "sender %v not informed before step %d", c.From, c.Step)
		require.Less(t, at, c.Step, "sender %v informed at %d calls at %d", c.From, at, c.Step)

		_, dup := informed[c.To]
		require.False(t, dup, "%v informed twice", c.To)
		informed[c.To] = c.Step

		if busy[c.From] == nil {
			busy[c.From] = make(map[int]bool)
		}
		require.False(t, busy[c.From][c.Step], "%v sends twice at step %d", c.From, c.Step)
		busy[c.From][c.Step] = true

		require.GreaterOrEqual(t, c.Step, last, "calls sorted by step")
		last = c.Step
	}

	require.Equal(t, res.Time, last, "schedule length equals MBT")
	require.Equal(t, informed, res.InformedAt())
}
