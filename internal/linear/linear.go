// Package linear implements the index-arithmetic algorithms (C2) that operate
// directly on the two parallel arrays of the linear tree encoding:
//
//	structure[i] = number of direct children of node i
//	values[i]    = head value of node i
//
// The encoding is post-order: node i's k direct children are the k subtree
// roots found by scanning left from i-1, in reverse sibling order (rightmost
// child first); the whole tree's root is always the last index, len-1. See
// ordtree's package doc and spec.md/SPEC_FULL.md §3.2 for the full layout
// rule and the I1-I5 invariants every function here must preserve or reject.
//
// Every exported function is a pure function over its input slices, or
// mutates only the buffers it is handed; nothing in this package retains a
// reference to caller-owned memory beyond the duration of a single call.
package linear

import (
	"fmt"

	"github.com/gaissmai/ordtree/internal/xerr"
)

// invalidf wraps xerr.ErrInvalidStructure with a call-site detail.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{xerr.ErrInvalidStructure}, args...)...)
}

func outOfBoundsf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{xerr.ErrOutOfBounds}, args...)...)
}

// SubtreeSize returns the number of nodes in the subtree rooted at i,
// strictly enforcing I3/I5: a child-count scan that runs past the start of
// the array is reported as ErrInvalidStructure.
//
// The algorithm never recurses and never allocates: it tracks, as a single
// integer "need", how many more subtree roots remain to be found at the
// current nesting level. Consuming a node satisfies one need but introduces
// its own child count as additional need - need becomes need-1+structure[pos]
// - which is the same balance invariant a post-order-serialized tree must
// satisfy, read right to left.
func SubtreeSize(i int, structure []int32) (int, error) {
	if i < 0 || i >= len(structure) {
		return 0, outOfBoundsf("SubtreeSize: index %d, length %d", i, len(structure))
	}

	need := int(structure[i])
	if need < 0 {
		return 0, invalidf("negative child count %d at index %d", need, i)
	}

	pos := i - 1
	visited := 0

	for need > 0 {
		if pos < 0 {
			return 0, invalidf("child scan from index %d overran the array", i)
		}

		c := int(structure[pos])
		if c < 0 {
			return 0, invalidf("negative child count %d at index %d", c, pos)
		}

		visited++
		pos--
		need = need - 1 + c
	}

	return visited + 1, nil
}

// lenientSubtreeSize is SubtreeSize's tolerant twin, used by CalculateHeight:
// a child-count scan that runs off the start of the array simply stops,
// treating the still-unscanned children as absent rather than malformed.
func lenientSubtreeSize(i int, structure []int32) int {
	if i < 0 || i >= len(structure) {
		return 0
	}

	need := int(structure[i])
	if need <= 0 {
		return 1
	}

	pos := i - 1
	visited := 0

	for need > 0 && pos >= 0 {
		c := int(structure[pos])
		if c < 0 {
			c = 0
		}

		visited++
		pos--
		need = need - 1 + c
	}

	return visited + 1
}

// ChildrenIndexes returns the structure[i] direct children of node i, in
// reverse-sibling (storage) order: the rightmost child first, as encountered
// scanning left from i-1. An empty slice is returned for a leaf.
func ChildrenIndexes(i int, structure []int32) ([]int32, error) {
	if i < 0 || i >= len(structure) {
		return nil, outOfBoundsf("ChildrenIndexes: index %d, length %d", i, len(structure))
	}

	k := int(structure[i])
	if k < 0 {
		return nil, invalidf("negative child count %d at index %d", k, i)
	}
	if k == 0 {
		return nil, nil
	}

	out := make([]int32, 0, k)
	pos := i - 1

	for c := 0; c < k; c++ {
		if pos < 0 {
			return nil, invalidf("child scan from index %d overran the array", i)
		}

		out = append(out, int32(pos))

		sz, err := SubtreeSize(pos, structure)
		if err != nil {
			return nil, err
		}

		pos -= sz
	}

	return out, nil
}

// WriteChildrenIndexes appends the children of i into out starting at
// writePos, growing out if necessary, and returns the number of indices
// written.
func WriteChildrenIndexes(i int, structure []int32, out []int32, writePos int) (int, []int32, error) {
	children, err := ChildrenIndexes(i, structure)
	if err != nil {
		return 0, out, err
	}

	needed := writePos + len(children)
	if needed > len(out) {
		grown := make([]int32, needed)
		copy(grown, out)
		out = grown
	}

	copy(out[writePos:needed], children)
	return len(children), out, nil
}

// ParentIndex returns the parent of i, or -1 if i is the root (n-1) or the
// tree is empty. Descends from the root one level at a time using O(1) extra
// space; at each level it measures the subtree size of every sibling it
// scans past, so time is linear in the tree size in the worst case.
func ParentIndex(i, n int, structure []int32) (int, error) {
	if n == 0 {
		return -1, nil
	}
	if i < 0 || i >= n {
		return -1, outOfBoundsf("ParentIndex: index %d, length %d", i, n)
	}
	if i == n-1 {
		return -1, nil
	}

	current := n - 1

	for {
		k := int(structure[current])
		pos := current - 1
		found := false

		for c := 0; c < k; c++ {
			if pos < 0 {
				return -1, invalidf("child scan from index %d overran the array", current)
			}

			sz, err := SubtreeSize(pos, structure)
			if err != nil {
				return -1, err
			}

			childStart := pos - sz + 1

			if i == pos {
				return current, nil
			}
			if i >= childStart && i < pos {
				current = pos
				found = true
				break
			}

			pos -= sz
		}

		if !found {
			return -1, invalidf("index %d is not a descendant of the root %d", i, n-1)
		}
	}
}

// CalculateHeight returns the longest root-to-leaf path length, in nodes,
// within the subtree rooted at i. An empty tree (i == -1) has height 0; a
// leaf has height 1. Unlike SubtreeSize, a declared child count that runs
// past the start of the array is tolerated: the missing children simply
// contribute nothing to the maximum, matching the "incomplete tree" leniency
// called out in spec.md §4.2.1/§9.
//
// Heights are computed bottom-up in a single forward pass over [0, i]; since
// every child of a node lies at a strictly smaller index, no recursion and no
// explicit stack are needed.
func CalculateHeight(i int, structure []int32) int {
	if i < 0 {
		return 0
	}
	if i >= len(structure) {
		return 0
	}

	heights := make([]int, i+1)

	for idx := 0; idx <= i; idx++ {
		k := int(structure[idx])
		if k <= 0 {
			heights[idx] = 1
			continue
		}

		pos := idx - 1
		maxChild := 0

		for c := 0; c < k && pos >= 0; c++ {
			if heights[pos] > maxChild {
				maxChild = heights[pos]
			}
			pos -= lenientSubtreeSize(pos, structure)
		}

		heights[idx] = 1 + maxChild
	}

	return heights[i]
}
