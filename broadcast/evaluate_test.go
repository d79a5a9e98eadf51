package broadcast_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treecast/broadcast"
	"github.com/katalvlaran/treecast/tree"
)

// strategies runs every check against both walkers.
var strategies = []struct {
	name string
	opts []broadcast.Option
}{
	{"iterative", nil},
	{"recursive", []broadcast.Option{broadcast.WithRecursive()}},
}

func TestMBT_NilInputs(t *testing.T) {
	_, err := broadcast.MBT[int](nil)
	assert.ErrorIs(t, err, broadcast.ErrTreeNil)

	res, err := broadcast.Evaluate[int](nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, broadcast.ErrAdjacencyNil)
}

func TestMBT_SingleVertex(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			got, err := broadcast.MBT(tree.New("solo"), s.opts...)
			require.NoError(t, err)
			assert.Zero(t, got)
		})
	}
}

func TestMBT_RootNotInStore(t *testing.T) {
	tr := buildTree(t, 1, [][2]int{{1, 2}})
	tr.SetRoot(7)
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			got, err := broadcast.MBT(tr, s.opts...)
			require.NoError(t, err)
			assert.Zero(t, got, "an absent root has nobody to inform")
		})
	}
}

func TestMBT_Star(t *testing.T) {
	for n := 1; n <= 12; n++ {
		tr := tree.New(0)
		for leaf := 1; leaf <= n; leaf++ {
			require.NoError(t, tr.AddEdge(0, leaf))
		}
		for _, s := range strategies {
			got, err := broadcast.MBT(tr, s.opts...)
			require.NoError(t, err)
			assert.Equal(t, n, got, "%s star with %d leaves", s.name, n)
		}
	}
}

func TestMBT_Path(t *testing.T) {
	tr := buildTree(t, 0, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}})

	got, err := broadcast.MBT(tr)
	require.NoError(t, err)
	assert.Equal(t, 5, got, "rooted at an end")

	tr.SetRoot(2)
	got, err = broadcast.MBT(tr)
	require.NoError(t, err)
	assert.Equal(t, 3, got, "rooted inside")
}

func TestMBT_ReferenceTree(t *testing.T) {
	tr := buildTree(t, 16, referenceEdges)

	got, err := broadcast.MBT(tr)
	require.NoError(t, err)
	assert.Equal(t, 13, got)

	tr.SetRoot(18)
	got, err = broadcast.MBT(tr)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestMBT_ReferenceTreeEveryRoot(t *testing.T) {
	tr := buildTree(t, 16, referenceEdges)
	for root, want := range referenceMBT {
		tr.SetRoot(root)
		for _, s := range strategies {
			got, err := broadcast.MBT(tr, append(s.opts, broadcast.WithValidation())...)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s root %d", s.name, root)
		}
	}
}

func TestMBT_Idempotent(t *testing.T) {
	tr := buildTree(t, 16, referenceEdges)
	first, err := broadcast.MBT(tr)
	require.NoError(t, err)
	second, err := broadcast.MBT(tr)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMBT_EdgeOrientationIrrelevant(t *testing.T) {
	reversed := make([][2]int, len(referenceEdges))
	for i, e := range referenceEdges {
		reversed[i] = [2]int{e[1], e[0]}
	}
	fwd := buildTree(t, 16, referenceEdges)
	rev := buildTree(t, 16, reversed)

	for root := range referenceMBT {
		fwd.SetRoot(root)
		rev.SetRoot(root)
		a, err := broadcast.MBT(fwd)
		require.NoError(t, err)
		b, err := broadcast.MBT(rev)
		require.NoError(t, err)
		assert.Equal(t, a, b, "root %d", root)
	}
}

func TestMBT_DuplicateEdgesKeepResult(t *testing.T) {
	doubled := append(append([][2]int{}, referenceEdges...), referenceEdges...)
	tr := buildTree(t, 16, doubled)
	require.Equal(t, 2*len(referenceEdges), tr.EdgeCount())

	for _, s := range strategies {
		got, err := broadcast.MBT(tr, s.opts...)
		require.NoError(t, err)
		assert.Equal(t, 13, got, s.name)
	}

	_, err := broadcast.MBT(tr, broadcast.WithValidation())
	assert.ErrorIs(t, err, broadcast.ErrInvalidTree)
	assert.ErrorIs(t, err, tree.ErrDuplicateEdge)
}

func TestMBT_MalformedInputDoesNotFail(t *testing.T) {
	cycle := buildTree(t, "a", [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	loop := buildTree(t, "a", [][2]string{{"a", "b"}, {"b", "b"}})

	for _, s := range strategies {
		got, err := broadcast.MBT(cycle, s.opts...)
		require.NoError(t, err)
		assert.Equal(t, 2, got, "%s cycle", s.name)

		got, err = broadcast.MBT(loop, s.opts...)
		require.NoError(t, err)
		assert.Equal(t, 1, got, "%s self-loop", s.name)
	}

	_, err := broadcast.MBT(cycle, broadcast.WithValidation())
	assert.ErrorIs(t, err, broadcast.ErrInvalidTree)
	assert.ErrorIs(t, err, tree.ErrNotTree)

	_, err = broadcast.MBT(loop, broadcast.WithValidation())
	assert.ErrorIs(t, err, tree.ErrSelfLoop)
}

func TestEvaluate_ResultDetail(t *testing.T) {
	//	0
	//	├── 1
	//	└── 2
	//	    └── 3
	//	        └── 4
	tr := buildTree(t, 0, [][2]int{{0, 1}, {0, 2}, {2, 3}, {3, 4}})

	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			res, err := broadcast.Evaluate(tr.Freeze(), s.opts...)
			require.NoError(t, err)

			assert.Equal(t, 0, res.Root)
			assert.Equal(t, 3, res.Time)
			assert.Equal(t, map[int]int{0: 4, 1: 1, 2: 3, 3: 2, 4: 1}, res.Value)
			assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 2, 4: 3}, res.Parent)
			assert.Equal(t, []int{1, 2}, res.Children[0])
			assert.Equal(t, []int{1, 4, 3, 2, 0}, res.Order)
			assert.Equal(t, []int{2, 1}, res.ServingOrder(0))
		})
	}
}

func TestEvaluate_OnSubtreeHook(t *testing.T) {
	tr := buildTree(t, "r", [][2]string{{"r", "a"}, {"r", "b"}, {"b", "c"}})

	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			var seen []string
			values := make(map[string]int)
			hook := broadcast.WithOnSubtree(func(v string, value int) error {
				seen = append(seen, v)
				values[v] = value
				return nil
			})

			res, err := broadcast.Evaluate(tr.Freeze(), append(s.opts, hook)...)
			require.NoError(t, err)
			assert.Equal(t, res.Order, seen, "hook runs in post-order")
			assert.Equal(t, res.Value, values)
		})
	}
}

func TestEvaluate_OnSubtreeHookAborts(t *testing.T) {
	tr := buildTree(t, 16, referenceEdges)
	stop := errors.New("stop")

	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			calls := 0
			hook := broadcast.WithOnSubtree(func(v, value int) error {
				calls++
				if v == 22 {
					return stop
				}
				return nil
			})

			res, err := broadcast.Evaluate(tr.Freeze(), append(s.opts, hook)...)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, stop)
			assert.Less(t, calls, len(referenceMBT))
		})
	}
}

func TestEvaluate_OnSubtreeHookTypeMismatch(t *testing.T) {
	tr := buildTree(t, 1, [][2]int{{1, 2}})
	hook := broadcast.WithOnSubtree(func(v string, value int) error { return nil })

	_, err := broadcast.MBT(tr, hook)
	assert.ErrorIs(t, err, broadcast.ErrHookType)
}

func TestEvaluate_ContextCanceled(t *testing.T) {
	tr := buildTree(t, 16, referenceEdges)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, s := range strategies {
		_, err := broadcast.MBT(tr, append(s.opts, broadcast.WithContext(ctx))...)
		assert.ErrorIs(t, err, context.Canceled, s.name)
	}
}

func TestEvaluate_SnapshotIgnoresLaterEdges(t *testing.T) {
	tr := buildTree(t, 0, [][2]int{{0, 1}})
	adj := tr.Freeze()
	require.NoError(t, tr.AddEdge(0, 2))

	res, err := broadcast.Evaluate(adj)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Time)

	got, err := broadcast.MBT(tr)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestMBT_DeepPath(t *testing.T) {
	const n = 200_000
	tr := tree.New(0)
	for i := 1; i < n; i++ {
		require.NoError(t, tr.AddEdge(i-1, i))
	}

	got, err := broadcast.MBT(tr)
	require.NoError(t, err)
	assert.Equal(t, n-1, got)
}
