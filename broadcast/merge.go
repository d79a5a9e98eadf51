package broadcast

import (
	"cmp"
	"slices"
)

// MergeChildren combines the values of a vertex's children into the number
// of steps the vertex needs, after being informed, until every child subtree
// is done. Each child value counts the step that informs that child.
//
// The values are sorted descending (on a copy; values is not modified) and
// slack[i] = (k-i) - value[i] is computed for each position. If min(slack)
// is <= 0 the result is k + |min(slack)|; otherwise it is max(values).
// An empty input yields 0.
//
//	MergeChildren([]int{1, 1, 1})                 == 3
//	MergeChildren([]int{3, 2, 1})                 == 3
//	MergeChildren([]int{3, 3, 3})                 == 5
//	MergeChildren([]int{10, 10, 10, 3, 3, 3, 3, 3}) == 12
//
// Complexity: O(k log k).
func MergeChildren(values []int) int {
	k := len(values)
	if k == 0 {
		return 0
	}

	sorted := slices.Clone(values)
	slices.SortFunc(sorted, func(a, b int) int { return cmp.Compare(b, a) })

	minSlack := k - sorted[0]
	for i := 1; i < k; i++ {
		if slack := (k - i) - sorted[i]; slack < minSlack {
			minSlack = slack
		}
	}

	if minSlack <= 0 {
		return k - minSlack
	}

	return sorted[0]
}
