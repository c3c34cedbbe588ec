package ordtree

import (
	"iter"

	"github.com/gaissmai/ordtree/internal/linear"
	"github.com/gaissmai/ordtree/internal/node"
)

// TraversalMode selects the order in which Values, ValuesWithLimit, and
// Trees visit a tree's nodes.
type TraversalMode int

const (
	// DepthFirst visits the root, then recursively each child's subtree in
	// left-to-right order.
	DepthFirst TraversalMode = iota
	// BreadthFirst visits nodes by strictly increasing depth; within a
	// depth, by the left-to-right order of their shared ancestor's
	// children.
	BreadthFirst
)

func (m TraversalMode) depthFirst() bool {
	return m == DepthFirst
}

// Values yields every head value in t in the given traversal order. An
// empty tree yields nothing. A deflated t is walked directly off its arrays
// via an explicit work list, without converting to the recursive encoding
// first.
func (t Tree[T]) Values(mode TraversalMode) iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.IsEmpty() {
			return
		}
		if t.kind == reprDeflated {
			for idx, err := range linear.NodeIndexIterator(len(t.structure)-1, t.structure, mode.depthFirst()) {
				if err != nil {
					return
				}
				if !yield(t.values[idx]) {
					return
				}
			}
			return
		}
		n, err := t.toNode()
		if err != nil {
			return
		}
		for v := range node.ValuesIterator(n, mode.depthFirst()) {
			if !yield(v) {
				return
			}
		}
	}
}

// ValuesWithLimit is Values cut off at maxDepth (the root is depth 1);
// maxDepth <= 0 yields nothing.
func (t Tree[T]) ValuesWithLimit(mode TraversalMode, maxDepth int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.IsEmpty() || maxDepth <= 0 {
			return
		}
		if t.kind == reprDeflated {
			for idx, err := range linear.NodeIndexIteratorWithLimit(len(t.structure)-1, t.structure, mode.depthFirst(), maxDepth) {
				if err != nil {
					return
				}
				if !yield(t.values[idx]) {
					return
				}
			}
			return
		}
		n, err := t.toNode()
		if err != nil {
			return
		}
		for v := range node.ValuesIteratorWithLimit(n, mode.depthFirst(), maxDepth) {
			if !yield(v) {
				return
			}
		}
	}
}

// ValuesFiltered is Values restricted to values satisfying filter; values
// that filter rejects are not yielded, but their children are still
// descended into. The walk stays single-pass and lazy: filter is applied as
// each node is visited, not after materializing the full traversal.
func (t Tree[T]) ValuesFiltered(mode TraversalMode, filter func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.IsEmpty() {
			return
		}
		n, err := t.toNode()
		if err != nil {
			return
		}
		for v := range node.ValuesIteratorWithFilter(n, mode.depthFirst(), filter) {
			if !yield(v) {
				return
			}
		}
	}
}

// ValuesFilteredWithLimit combines ValuesWithLimit and ValuesFiltered;
// maxDepth <= 0 yields nothing.
func (t Tree[T]) ValuesFilteredWithLimit(mode TraversalMode, maxDepth int, filter func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.IsEmpty() || maxDepth <= 0 {
			return
		}
		n, err := t.toNode()
		if err != nil {
			return
		}
		for v := range node.ValuesIteratorWithFilterAndLimit(n, mode.depthFirst(), maxDepth, filter) {
			if !yield(v) {
				return
			}
		}
	}
}

// Trees yields every subtree of t (including t itself first) in the given
// traversal order.
func (t Tree[T]) Trees(mode TraversalMode) iter.Seq[Tree[T]] {
	return func(yield func(Tree[T]) bool) {
		if t.IsEmpty() {
			return
		}
		n, err := t.toNode()
		if err != nil {
			return
		}
		for sub := range node.TreesIterator(n, mode.depthFirst()) {
			if !yield(fromNode(sub)) {
				return
			}
		}
	}
}

// TreesFiltered is Trees restricted to subtrees whose root value satisfies
// filter; rejected subtrees' own children are still descended into.
func (t Tree[T]) TreesFiltered(mode TraversalMode, filter func(Tree[T]) bool) iter.Seq[Tree[T]] {
	return func(yield func(Tree[T]) bool) {
		if t.IsEmpty() {
			return
		}
		n, err := t.toNode()
		if err != nil {
			return
		}
		nodeFilter := func(sub node.Node[T]) bool { return filter(fromNode(sub)) }
		for sub := range node.TreesIteratorWithFilter(n, mode.depthFirst(), nodeFilter) {
			if !yield(fromNode(sub)) {
				return
			}
		}
	}
}

// TreesFilteredWithLimit combines a depth limit and a filter over Trees;
// maxDepth <= 0 yields nothing.
func (t Tree[T]) TreesFilteredWithLimit(mode TraversalMode, maxDepth int, filter func(Tree[T]) bool) iter.Seq[Tree[T]] {
	return func(yield func(Tree[T]) bool) {
		if t.IsEmpty() || maxDepth <= 0 {
			return
		}
		n, err := t.toNode()
		if err != nil {
			return
		}
		nodeFilter := func(sub node.Node[T]) bool { return filter(fromNode(sub)) }
		for sub := range node.TreesIteratorWithFilterAndLimit(n, mode.depthFirst(), maxDepth, nodeFilter) {
			if !yield(fromNode(sub)) {
				return
			}
		}
	}
}

// Branches yields every root-to-leaf branch of t as a slice of values,
// depth-first left to right.
func (t Tree[T]) Branches() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if t.IsEmpty() {
			return
		}
		if t.kind == reprDeflated {
			for idxs, err := range linear.BranchesIndexListIterator(len(t.structure)-1, t.structure) {
				if err != nil {
					return
				}
				branch := make([]T, len(idxs))
				for i, idx := range idxs {
					branch[i] = t.values[idx]
				}
				if !yield(branch) {
					return
				}
			}
			return
		}
		n, err := t.toNode()
		if err != nil {
			return
		}
		for b := range node.BranchesIterator(n) {
			if !yield(b) {
				return
			}
		}
	}
}

// Children returns t's direct children, left to right: an empty slice if t
// is a leaf, nil if t is empty. A deflated t answers directly off its arrays, without
// converting the whole tree to the recursive encoding first.
func (t Tree[T]) Children() []Tree[T] {
	if t.kind == reprDeflated {
		idxs, err := t.childIndexes()
		if err != nil {
			return nil
		}
		out := make([]Tree[T], len(idxs))
		for i, idx := range idxs {
			child, err := childSlice(int(idx), t.structure, t.values)
			if err != nil {
				return nil
			}
			out[i] = child
		}
		return out
	}

	n, err := t.toNode()
	if err != nil {
		return nil
	}

	out := make([]Tree[T], len(n.Children))
	for i, c := range n.Children {
		out[i] = fromNode(c)
	}
	return out
}

// ChildrenValues returns the head values of t's direct children, left to
// right: an empty slice if t is a leaf, nil if t is empty.
func (t Tree[T]) ChildrenValues() []T {
	if t.kind == reprDeflated {
		idxs, err := t.childIndexes()
		if err != nil {
			return nil
		}
		out := make([]T, len(idxs))
		for i, idx := range idxs {
			out[i] = t.values[idx]
		}
		return out
	}

	n, err := t.toNode()
	if err != nil {
		return nil
	}

	out := make([]T, len(n.Children))
	for i, c := range n.Children {
		out[i] = c.Head
	}
	return out
}

// IsLeaf reports whether t is a single node with no children. An empty tree
// is not a leaf.
func (t Tree[T]) IsLeaf() bool {
	if t.kind == reprDeflated {
		return t.structure[len(t.structure)-1] == 0
	}
	n, err := t.toNode()
	if err != nil {
		return false
	}
	return len(n.Children) == 0
}

// Width returns the largest number of nodes found at any single depth (the
// tree's maximum breadth); 0 for an empty tree.
func (t Tree[T]) Width() int {
	n, err := t.toNode()
	if err != nil {
		return 0
	}

	level := []node.Node[T]{n}
	max := 0
	for len(level) > 0 {
		if len(level) > max {
			max = len(level)
		}
		var next []node.Node[T]
		for _, l := range level {
			next = append(next, l.Children...)
		}
		level = next
	}
	return max
}

// Paths yields every non-empty prefix of every branch of t, depth-first,
// left to right - a superset of Branches that also yields internal nodes.
func (t Tree[T]) Paths() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if t.IsEmpty() {
			return
		}
		n, err := t.toNode()
		if err != nil {
			return
		}

		var walk func(node.Node[T], []T) bool
		walk = func(cur node.Node[T], prefix []T) bool {
			prefix = append(prefix, cur.Head)
			if !yield(append([]T(nil), prefix...)) {
				return false
			}
			for _, c := range cur.Children {
				if !walk(c, prefix) {
					return false
				}
			}
			return true
		}
		walk(n, nil)
	}
}

// Map returns a new tree with fn applied to every head value, preserving
// shape.
func Map[T, U comparable](t Tree[T], fn func(T) U) Tree[U] {
	n, err := t.toNode()
	if err != nil {
		return Empty[U]()
	}
	return fromNode(mapNode(n, fn))
}

func mapNode[T, U comparable](n node.Node[T], fn func(T) U) node.Node[U] {
	children := make([]node.Node[U], len(n.Children))
	for i, c := range n.Children {
		children[i] = mapNode(c, fn)
	}
	return node.Node[U]{Head: fn(n.Head), Children: children}
}

// FlatMap replaces every node's head with the head of the tree fn returns,
// and merges fn's children in underneath that node's own children,
// preserving shape at the head level and grafting fn's structure below it.
func FlatMap[T comparable](t Tree[T], fn func(T) Tree[T]) Tree[T] {
	n, err := t.toNode()
	if err != nil {
		return t
	}
	return fromNode(flatMapNode(n, fn))
}

func flatMapNode[T comparable](n node.Node[T], fn func(T) Tree[T]) node.Node[T] {
	mapped := fn(n.Head)
	mn, err := mapped.toNode()
	if err != nil {
		mn = node.NewLeaf(n.Head)
	}

	// n's own children, each themselves flatMapped, are spliced in under
	// f(n.Head) first; f(n.Head)'s own children are grafted on after them.
	// The two sides can introduce duplicate-headed neighbors at the seam,
	// so both folds go through the distinct-merge rule.
	result := node.Node[T]{Head: mn.Head}
	for _, c := range n.Children {
		result = node.EnsureChildDistinct(result, flatMapNode(c, fn), true)
	}
	for _, c := range mn.Children {
		result = node.EnsureChildDistinct(result, c, true)
	}

	return result
}
