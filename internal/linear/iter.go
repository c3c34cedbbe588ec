package linear

import "iter"

// indexItem is one entry of the explicit work list shared by
// NodeIndexIterator and NodeIndexIteratorWithLimit: the node's index and its
// depth (root is depth 1).
type indexItem struct{ idx, depth int }

// nextIndexItem pops the next item to visit: the top (LIFO) for depth-first,
// the front (FIFO) for breadth-first.
func nextIndexItem(queue []indexItem, depthFirst bool) (indexItem, []indexItem) {
	if depthFirst {
		top := queue[len(queue)-1]
		return top, queue[:len(queue)-1]
	}
	front := queue[0]
	return front, queue[1:]
}

// pushChildIndexes appends idx's children to queue in the order that, once
// dequeued by nextIndexItem, yields them left to right. ChildrenIndexes
// returns children rightmost-first (storage order): depth-first pushes them
// as-is so popping the top re-reverses them to leftmost-first; breadth-first
// must reverse them itself since the front is dequeued in append order.
func pushChildIndexes(queue []indexItem, idx, depth int, structure []int32, depthFirst bool) ([]indexItem, error) {
	children, err := ChildrenIndexes(idx, structure)
	if err != nil {
		return queue, err
	}
	if depthFirst {
		for _, c := range children {
			queue = append(queue, indexItem{int(c), depth})
		}
		return queue, nil
	}
	for i := len(children) - 1; i >= 0; i-- {
		queue = append(queue, indexItem{int(children[i]), depth})
	}
	return queue, nil
}

// NodeIndexIterator yields indices starting at root, then its subtree, in the
// given traversal order: depth-first is top-down left to right,
// breadth-first is by strictly increasing depth and, within a depth, left to
// right among a shared parent's children. It uses an explicit work list
// bounded by the current frontier rather than recursion.
func NodeIndexIterator(root int, structure []int32, depthFirst bool) iter.Seq2[int, error] {
	return NodeIndexIteratorWithLimit(root, structure, depthFirst, 0)
}

// NodeIndexIteratorWithLimit is NodeIndexIterator cut off at maxDepth; root
// is depth 1. maxDepth <= 0 means unlimited.
func NodeIndexIteratorWithLimit(root int, structure []int32, depthFirst bool, maxDepth int) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		if root < 0 {
			return
		}

		queue := []indexItem{{root, 1}}

		for len(queue) > 0 {
			var top indexItem
			top, queue = nextIndexItem(queue, depthFirst)

			if !yield(top.idx, nil) {
				return
			}

			if maxDepth > 0 && top.depth >= maxDepth {
				continue
			}

			var err error
			queue, err = pushChildIndexes(queue, top.idx, top.depth+1, structure, depthFirst)
			if err != nil {
				yield(0, err)
				return
			}
		}
	}
}

// branchFrame is one level of the explicit recursion stack used by the
// branch iterators: the node at idx, and its not-yet-descended children in
// left-to-right order.
type branchFrame struct {
	idx      int
	children []int32
	next     int
}

// branches drives the shared branch-enumeration state machine; unlimited is
// selected by maxDepth <= 0.
func branches(root int, structure []int32, maxDepth int, yield func([]int, error) bool) {
	if root < 0 {
		return
	}

	var stack []branchFrame
	var path []int

	push := func(idx int) error {
		path = append(path, idx)

		if maxDepth > 0 && len(path) >= maxDepth {
			stack = append(stack, branchFrame{idx: idx})
			return nil
		}

		children, err := ChildrenIndexes(idx, structure)
		if err != nil {
			return err
		}

		// children is rightmost-first; reverse into left-to-right descent order.
		ltr := make([]int32, len(children))
		for i, c := range children {
			ltr[len(children)-1-i] = c
		}

		stack = append(stack, branchFrame{idx: idx, children: ltr})
		return nil
	}

	if err := push(root); err != nil {
		yield(nil, err)
		return
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next >= len(top.children) {
			if len(top.children) == 0 {
				branch := append([]int(nil), path...)
				if !yield(branch, nil) {
					return
				}
			}

			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]
			continue
		}

		child := int(top.children[top.next])
		top.next++

		if err := push(child); err != nil {
			yield(nil, err)
			return
		}
	}
}

// BranchesIndexListIterator yields each root-to-leaf index list as a slice,
// depth-first left to right.
func BranchesIndexListIterator(root int, structure []int32) iter.Seq2[[]int, error] {
	return func(yield func([]int, error) bool) {
		branches(root, structure, 0, yield)
	}
}

// BranchesIndexListIteratorWithLimit is BranchesIndexListIterator where a
// node at depth maxDepth is treated as a leaf regardless of its declared
// children.
func BranchesIndexListIteratorWithLimit(root int, structure []int32, maxDepth int) iter.Seq2[[]int, error] {
	return func(yield func([]int, error) bool) {
		if maxDepth <= 0 {
			return
		}
		branches(root, structure, maxDepth, yield)
	}
}

// FoldLeftBranchesIndexLists strictly folds fn over every branch of the
// subtree rooted at root, left to right. maxDepth <= 0 means unlimited.
func FoldLeftBranchesIndexLists[A any](root int, structure []int32, init A, fn func(A, []int) A, maxDepth int) (A, error) {
	acc := init

	for branch, err := range branches2(root, structure, maxDepth) {
		if err != nil {
			return acc, err
		}
		acc = fn(acc, branch)
	}

	return acc, nil
}

// FoldLeftBranchesLengths is FoldLeftBranchesIndexLists but passes only each
// branch's length, avoiding the cost of materializing the index lists.
func FoldLeftBranchesLengths[A any](root int, structure []int32, init A, fn func(A, int) A) (A, error) {
	acc := init

	for branch, err := range branches2(root, structure, 0) {
		if err != nil {
			return acc, err
		}
		acc = fn(acc, len(branch))
	}

	return acc, nil
}

func branches2(root int, structure []int32, maxDepth int) iter.Seq2[[]int, error] {
	return func(yield func([]int, error) bool) {
		branches(root, structure, maxDepth, yield)
	}
}
