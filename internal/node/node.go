// Package node implements the recursive node encoding (C3) of an ordered
// tree: Node[T] mirrors the linear encoding's semantics one-for-one (same
// invariants, same distinct-merge rule) but expressed as ordinary Go structs
// and recursion rather than index arithmetic over parallel arrays. The
// public ordtree facade keeps a tree in whichever of the two representations
// is cheaper for the operation at hand and converts between them with
// ToArrays/FromArrays.
package node

import (
	"iter"

	"github.com/gaissmai/ordtree/internal/xerr"
)

// Node is one node of a rooted ordered tree: a head value and its direct
// children, left to right.
type Node[T any] struct {
	Head     T
	Children []Node[T]
}

// NewLeaf returns a childless node.
func NewLeaf[T any](head T) Node[T] {
	return Node[T]{Head: head}
}

// Size returns the number of nodes in the subtree rooted at n.
func (n Node[T]) Size() int {
	size := 1
	for _, c := range n.Children {
		size += c.Size()
	}
	return size
}

// Height returns the longest root-to-leaf path length, in nodes.
func (n Node[T]) Height() int {
	max := 0
	for _, c := range n.Children {
		if h := c.Height(); h > max {
			max = h
		}
	}
	return 1 + max
}

// ToArrays serializes n into the linear post-order encoding: structure[i] is
// i's direct child count, values[i] its head, and the tree's root is always
// the last index.
func ToArrays[T any](n Node[T]) ([]int32, []T) {
	structure := make([]int32, 0, n.Size())
	values := make([]T, 0, n.Size())
	appendPostOrder(n, &structure, &values)
	return structure, values
}

func appendPostOrder[T any](n Node[T], structure *[]int32, values *[]T) {
	for i := 0; i < len(n.Children); i++ {
		appendPostOrder(n.Children[i], structure, values)
	}
	*structure = append(*structure, int32(len(n.Children)))
	*values = append(*values, n.Head)
}

// FromArrays reconstructs the Node rooted at index i of a linear post-order
// encoding.
func FromArrays[T any](i int, structure []int32, values []T) (Node[T], error) {
	if i < 0 || i >= len(structure) {
		return Node[T]{}, xerr.ErrOutOfBounds
	}

	k := int(structure[i])
	if k < 0 {
		return Node[T]{}, xerr.ErrInvalidStructure
	}
	if k == 0 {
		return NewLeaf(values[i]), nil
	}

	children := make([]Node[T], k)
	pos := i - 1

	for c := 0; c < k; c++ {
		if pos < 0 {
			return Node[T]{}, xerr.ErrInvalidStructure
		}

		child, err := FromArrays(pos, structure, values)
		if err != nil {
			return Node[T]{}, err
		}

		children[k-1-c] = child
		pos -= child.Size()
	}

	return Node[T]{Head: values[i], Children: children}, nil
}

// FromArraysHead reconstructs a node tree from the root-first (pre-order)
// encoding: structure[pos] is the node at pos's child count, and its
// children's subtrees follow immediately afterward, left to right. It
// returns the parsed node and the index just past its subtree.
func FromArraysHead[T any](pos int, structure []int32, values []T) (Node[T], int, error) {
	if pos < 0 || pos >= len(structure) {
		return Node[T]{}, pos, xerr.ErrOutOfBounds
	}

	k := int(structure[pos])
	if k < 0 {
		return Node[T]{}, pos, xerr.ErrInvalidStructure
	}

	children := make([]Node[T], k)
	next := pos + 1
	for c := 0; c < k; c++ {
		child, afterChild, err := FromArraysHead(next, structure, values)
		if err != nil {
			return Node[T]{}, pos, err
		}
		children[c] = child
		next = afterChild
	}

	return Node[T]{Head: values[pos], Children: children}, next, nil
}

// treeItem is one entry of the explicit work list shared by the values/trees
// walkers: the node itself and its depth (root is depth 1).
type treeItem[T any] struct {
	n     Node[T]
	depth int
}

// nextItem pops the next item to visit from queue: the top (LIFO) for
// depth-first, the front (FIFO) for breadth-first. Depth-first pushes
// children in reverse so popping the top restores left-to-right order;
// breadth-first pushes them in natural order since the front is dequeued in
// the order items were appended.
func nextItem[T any](queue []treeItem[T], depthFirst bool) (treeItem[T], []treeItem[T]) {
	if depthFirst {
		top := queue[len(queue)-1]
		return top, queue[:len(queue)-1]
	}
	front := queue[0]
	return front, queue[1:]
}

// pushChildren appends n's children to queue in the order that, once
// dequeued by nextItem, yields them left to right: depth-first pushes them
// in reverse so popping the top restores left-to-right order; breadth-first
// pushes them as-is since the front is dequeued in append order.
func pushChildren[T any](queue []treeItem[T], n Node[T], depth int, depthFirst bool) []treeItem[T] {
	if depthFirst {
		for i := len(n.Children) - 1; i >= 0; i-- {
			queue = append(queue, treeItem[T]{n.Children[i], depth})
		}
		return queue
	}
	for i := 0; i < len(n.Children); i++ {
		queue = append(queue, treeItem[T]{n.Children[i], depth})
	}
	return queue
}

// ValuesIterator yields every value in the subtree, in the given traversal
// order, using an explicit work list rather than recursion: depth-first is
// top-down left to right, breadth-first is by strictly increasing depth and,
// within a depth, left to right among a shared ancestor's children.
func ValuesIterator[T any](n Node[T], depthFirst bool) iter.Seq[T] {
	return ValuesIteratorWithFilterAndLimit(n, depthFirst, 0, nil)
}

// ValuesIteratorWithLimit is ValuesIterator cut off at maxDepth (root is
// depth 1); maxDepth <= 0 yields nothing.
func ValuesIteratorWithLimit[T any](n Node[T], depthFirst bool, maxDepth int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if maxDepth <= 0 {
			return
		}
		ValuesIteratorWithFilterAndLimit[T](n, depthFirst, maxDepth, nil)(yield)
	}
}

// ValuesIteratorWithFilter is ValuesIterator restricted to values satisfying
// filter; skipped values are not yielded but their children are still
// descended into.
func ValuesIteratorWithFilter[T any](n Node[T], depthFirst bool, filter func(T) bool) iter.Seq[T] {
	return ValuesIteratorWithFilterAndLimit(n, depthFirst, 0, filter)
}

// ValuesIteratorWithFilterAndLimit combines ValuesIteratorWithLimit and
// ValuesIteratorWithFilter: maxDepth <= 0 means unlimited, filter == nil
// means unfiltered.
func ValuesIteratorWithFilterAndLimit[T any](n Node[T], depthFirst bool, maxDepth int, filter func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		queue := []treeItem[T]{{n, 1}}
		for len(queue) > 0 {
			var top treeItem[T]
			top, queue = nextItem(queue, depthFirst)

			if filter == nil || filter(top.n.Head) {
				if !yield(top.n.Head) {
					return
				}
			}

			if maxDepth > 0 && top.depth >= maxDepth {
				continue
			}
			queue = pushChildren(queue, top.n, top.depth+1, depthFirst)
		}
	}
}

// TreesIterator yields every subtree (not just its head value), in the given
// traversal order, including n itself first.
func TreesIterator[T any](n Node[T], depthFirst bool) iter.Seq[Node[T]] {
	return TreesIteratorWithFilterAndLimit(n, depthFirst, 0, nil)
}

// TreesIteratorWithFilter is TreesIterator restricted to subtrees whose root
// satisfies filter; skipped subtrees' own children are still descended into.
func TreesIteratorWithFilter[T any](n Node[T], depthFirst bool, filter func(Node[T]) bool) iter.Seq[Node[T]] {
	return TreesIteratorWithFilterAndLimit(n, depthFirst, 0, filter)
}

// TreesIteratorWithFilterAndLimit combines a depth limit and a filter over
// TreesIterator: maxDepth <= 0 means unlimited, filter == nil means
// unfiltered.
func TreesIteratorWithFilterAndLimit[T any](n Node[T], depthFirst bool, maxDepth int, filter func(Node[T]) bool) iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		queue := []treeItem[T]{{n, 1}}
		for len(queue) > 0 {
			var top treeItem[T]
			top, queue = nextItem(queue, depthFirst)

			if filter == nil || filter(top.n) {
				if !yield(top.n) {
					return
				}
			}

			if maxDepth > 0 && top.depth >= maxDepth {
				continue
			}
			queue = pushChildren(queue, top.n, top.depth+1, depthFirst)
		}
	}
}

// BranchesIterator yields every root-to-leaf branch of n as a slice of
// values, depth-first left to right.
func BranchesIterator[T any](n Node[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		var walk func(node Node[T], path []T) bool
		walk = func(node Node[T], path []T) bool {
			path = append(path, node.Head)
			if len(node.Children) == 0 {
				return yield(append([]T(nil), path...))
			}
			for _, c := range node.Children {
				if !walk(c, path) {
					return false
				}
			}
			return true
		}
		walk(n, nil)
	}
}

// InsertBranch attaches path as a new leftmost-descendant chain below n:
// path[0] becomes n's new leftmost child, path[1] its sole child, and so on.
// An empty path leaves n unchanged.
func InsertBranch[T any](n Node[T], path []T) Node[T] {
	if len(path) == 0 {
		return n
	}

	chain := NewLeaf(path[len(path)-1])
	for i := len(path) - 2; i >= 0; i-- {
		chain = Node[T]{Head: path[i], Children: []Node[T]{chain}}
	}

	children := make([]Node[T], 0, len(n.Children)+1)
	children = append(children, chain)
	children = append(children, n.Children...)

	return Node[T]{Head: n.Head, Children: children}
}

// EnsureChildDistinct inserts child as a new direct child of n, merging it
// into an existing same-head sibling instead of duplicating one: if
// appendSide, child is placed rightmost and matched against the rightmost
// same-head sibling; otherwise leftmost and matched leftmost. A match merges
// child's own children into the sibling recursively, under the same rule.
func EnsureChildDistinct[T comparable](n Node[T], child Node[T], appendSide bool) Node[T] {
	idx := -1
	if appendSide {
		for i := len(n.Children) - 1; i >= 0; i-- {
			if n.Children[i].Head == child.Head {
				idx = i
				break
			}
		}
	} else {
		for i := 0; i < len(n.Children); i++ {
			if n.Children[i].Head == child.Head {
				idx = i
				break
			}
		}
	}

	if idx < 0 {
		children := make([]Node[T], 0, len(n.Children)+1)
		if appendSide {
			children = append(children, n.Children...)
			children = append(children, child)
		} else {
			children = append(children, child)
			children = append(children, n.Children...)
		}
		return Node[T]{Head: n.Head, Children: children}
	}

	merged := n.Children[idx]
	order := child.Children
	if !appendSide {
		order = make([]Node[T], len(child.Children))
		for i, c := range child.Children {
			order[len(child.Children)-1-i] = c
		}
	}
	for _, grandchild := range order {
		merged = EnsureChildDistinct(merged, grandchild, appendSide)
	}

	children := append([]Node[T](nil), n.Children...)
	children[idx] = merged
	return Node[T]{Head: n.Head, Children: children}
}

// InsertChildrenBeforeDistinct inserts each of children as a new leftmost
// direct child of n, in order, applying the distinct merge rule to each.
func InsertChildrenBeforeDistinct[T comparable](n Node[T], children []Node[T]) Node[T] {
	result := n
	for i := len(children) - 1; i >= 0; i-- {
		result = EnsureChildDistinct(result, children[i], false)
	}
	return result
}

// InsertChildrenAfterDistinct inserts each of children as a new rightmost
// direct child of n, in order, applying the distinct merge rule to each.
func InsertChildrenAfterDistinct[T comparable](n Node[T], children []Node[T]) Node[T] {
	result := n
	for _, c := range children {
		result = EnsureChildDistinct(result, c, true)
	}
	return result
}

// MakeChildrenDistinct merges duplicate-headed direct children of n into one
// another, left to right, so that no two direct children share a head.
func MakeChildrenDistinct[T comparable](n Node[T]) Node[T] {
	result := Node[T]{Head: n.Head}
	for _, c := range n.Children {
		result = EnsureChildDistinct(result, c, true)
	}
	return result
}

// MakeTreeDistinct applies the distinct-merge rule top-down, counting n
// itself as level 1: maxLookupLevel of 0 or 1 leaves n unchanged, 2
// distinctifies only n's direct children, 3 additionally distinctifies the
// grandchildren, and so on. A negative maxLookupLevel distinctifies every
// level (the whole tree).
func MakeTreeDistinct[T comparable](n Node[T], maxLookupLevel int) Node[T] {
	if maxLookupLevel == 0 || maxLookupLevel == 1 {
		return n
	}

	merged := MakeChildrenDistinct(n)

	nextLevel := maxLookupLevel - 1
	if maxLookupLevel < 0 {
		nextLevel = maxLookupLevel
	}

	children := make([]Node[T], len(merged.Children))
	for i, c := range merged.Children {
		children[i] = MakeTreeDistinct(c, nextLevel)
	}

	return Node[T]{Head: merged.Head, Children: children}
}

// Partial is one entry of the depth-annotated stack consumed by
// BuildTreeFromPartials: a node that is ready to be attached to its parent
// (ReadyChildren already resolved) but does not yet know who that parent is.
type Partial[T any] struct {
	Depth         int
	Head          T
	ReadyChildren []Node[T]
}

// BuildTreeFromPartials merges a depth-annotated stack of partially built
// nodes into whole trees: entries must be given leftmost-deepest-first.
// Walking left to right, an entry at depth d pops every pending entry deeper
// than d and attaches them, left to right, as additional children after its
// own ReadyChildren before it is itself pushed; whatever remains on the
// stack once the input is exhausted becomes a completed top-level tree, in
// the order it was opened. tail carries over pending entries from a
// previous, not-yet-closed call (streaming partial input) and is processed
// before stack; pass nil for a self-contained stack. The returned pending
// list is always empty, since every remaining entry becomes a root.
func BuildTreeFromPartials[T any](stack []Partial[T], tail []Partial[T]) ([]Node[T], []Partial[T]) {
	open := append(append([]Partial[T](nil), tail...), stack...)

	var pending []Partial[T]
	var roots []Node[T]

	for _, p := range open {
		cut := len(pending)
		for cut > 0 && pending[cut-1].Depth > p.Depth {
			cut--
		}
		children := append([]Node[T](nil), p.ReadyChildren...)
		for _, q := range pending[cut:] {
			children = append(children, Node[T]{Head: q.Head, Children: q.ReadyChildren})
		}
		pending = append(pending[:cut], Partial[T]{Depth: p.Depth, Head: p.Head, ReadyChildren: children})
	}

	for _, q := range pending {
		roots = append(roots, Node[T]{Head: q.Head, Children: q.ReadyChildren})
	}

	return roots, nil
}
