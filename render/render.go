// SPDX-License-Identifier: MIT
// Package: treecast/render
//
// render.go - ASCII rendering of an evaluated broadcast tree.

// Package render draws an evaluated broadcast tree as indented ASCII art.
//
// Each vertex is labelled with the step at which it is informed under the
// optimal schedule and its subtree value, and children are listed in the
// order their parent calls them:
//
//	hq (t=0, value=4)
//	├── south (t=1, value=3)
//	│   └── s1 (t=2, value=2)
//	│       └── s2 (t=3, value=1)
//	└── north (t=2, value=1)
package render

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/katalvlaran/treecast/broadcast"
)

// Label formats one vertex line.
func Label[V comparable](v V, informed, value int) string {
	return fmt.Sprintf("%v (t=%d, value=%d)", v, informed, value)
}

// Tree renders res rooted at res.Root. A nil result renders as "".
//
// The walk uses an explicit stack, so arbitrarily deep trees render
// without growing the goroutine stack.
func Tree[V comparable](res *broadcast.Result[V]) string {
	if res == nil {
		return ""
	}

	informed := res.InformedAt()
	out := treeprint.NewWithRoot(Label(res.Root, informed[res.Root], res.Value[res.Root]))

	type item struct {
		v      V
		branch treeprint.Tree
	}
	stack := []item{{v: res.Root, branch: out}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, c := range res.ServingOrder(top.v) {
			label := Label(c, informed[c], res.Value[c])
			if len(res.Children[c]) == 0 {
				top.branch.AddNode(label)
				continue
			}
			stack = append(stack, item{v: c, branch: top.branch.AddBranch(label)})
		}
	}

	return out.String()
}
