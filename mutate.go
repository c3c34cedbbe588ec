package ordtree

import (
	"github.com/gaissmai/ordtree/internal/buffer"
	"github.com/gaissmai/ordtree/internal/linear"
	"github.com/gaissmai/ordtree/internal/node"
)

// deflatedBuffers rents mutable scratch buffers preloaded with t's arrays,
// for the internal/linear splicing primitives to operate on in place.
func deflatedBuffers[T comparable](t Tree[T]) (*buffer.IntBuffer, *buffer.Buffer[T]) {
	return buffer.IntBufferFromSlice(t.structure), buffer.BufferFromSlice(t.values)
}

// freezeDeflated reads the buffers back into an immutable deflated Tree, or
// Empty if the splice emptied them entirely.
func freezeDeflated[T comparable](sBuf *buffer.IntBuffer, vBuf *buffer.Buffer[T]) Tree[T] {
	if sBuf.Len() == 0 {
		return Empty[T]()
	}
	return Tree[T]{kind: reprDeflated, structure: sBuf.IntoFrozen(), values: vBuf.IntoFrozen()}
}

// UpdateHead replaces t's root value, leaving structure untouched. An empty
// tree is returned unchanged.
func (t Tree[T]) UpdateHead(newHead T) Tree[T] {
	n, err := t.toNode()
	if err != nil {
		return t
	}
	n.Head = newHead
	return fromNode(n)
}

// InsertChild inserts subtree as a direct child of t, distinct: if t already
// has a direct child sharing subtree's head, subtree's own children are
// merged into that sibling instead of creating a duplicate-headed sibling.
// An empty subtree is a no-op; an empty receiver becomes subtree.
func (t Tree[T]) InsertChild(subtree Tree[T], appendSide bool) Tree[T] {
	if subtree.IsEmpty() {
		return t
	}

	if t.kind == reprDeflated {
		if subS, subV, err := subtree.toArrays(); err == nil {
			sBuf, vBuf := deflatedBuffers(t)
			if _, _, err := linear.InsertSubtreeDistinct(len(t.structure)-1, subS, subV, appendSide, sBuf, vBuf); err == nil {
				return freezeDeflated(sBuf, vBuf)
			}
		}
	}

	child, _ := subtree.toNode()

	if t.IsEmpty() {
		return fromNode(child)
	}

	n, _ := t.toNode()
	return fromNode(node.EnsureChildDistinct(n, child, appendSide))
}

// InsertChildLax is InsertChild without the distinct merge: subtree always
// becomes a new, possibly duplicate-headed, sibling.
func (t Tree[T]) InsertChildLax(subtree Tree[T], appendSide bool) Tree[T] {
	if subtree.IsEmpty() {
		return t
	}

	if t.kind == reprDeflated {
		if subS, subV, err := subtree.toArrays(); err == nil {
			sBuf, vBuf := deflatedBuffers(t)
			if _, _, _, err := linear.InsertSubtreeAsChild(len(t.structure)-1, subS, subV, appendSide, sBuf, vBuf); err == nil {
				return freezeDeflated(sBuf, vBuf)
			}
		}
	}

	child, _ := subtree.toNode()

	if t.IsEmpty() {
		return fromNode(child)
	}

	n, _ := t.toNode()
	children := make([]node.Node[T], 0, len(n.Children)+1)
	if appendSide {
		children = append(children, n.Children...)
		children = append(children, child)
	} else {
		children = append(children, child)
		children = append(children, n.Children...)
	}
	n.Children = children
	return fromNode(n)
}

// InsertChildren folds InsertChild over subtrees, in order; empty subtrees
// are skipped.
func (t Tree[T]) InsertChildren(subtrees []Tree[T], appendSide bool) Tree[T] {
	result := t
	for _, s := range subtrees {
		result = result.InsertChild(s, appendSide)
	}
	return result
}

// InsertChildrenLax is InsertChildren using InsertChildLax.
func (t Tree[T]) InsertChildrenLax(subtrees []Tree[T], appendSide bool) Tree[T] {
	result := t
	for _, s := range subtrees {
		result = result.InsertChildLax(s, appendSide)
	}
	return result
}

// InsertLeaf inserts a single-node child headed value, distinct.
func (t Tree[T]) InsertLeaf(value T, appendSide bool) Tree[T] {
	return t.InsertChild(Leaf(value), appendSide)
}

// InsertLeafLax inserts a single-node child headed value, lax.
func (t Tree[T]) InsertLeafLax(value T, appendSide bool) Tree[T] {
	return t.InsertChildLax(Leaf(value), appendSide)
}

// InsertLeaves folds InsertLeaf over values, in order.
func (t Tree[T]) InsertLeaves(values []T, appendSide bool) Tree[T] {
	result := t
	for _, v := range values {
		result = result.InsertLeaf(v, appendSide)
	}
	return result
}

// InsertLeavesLax is InsertLeaves using InsertLeafLax.
func (t Tree[T]) InsertLeavesLax(values []T, appendSide bool) Tree[T] {
	result := t
	for _, v := range values {
		result = result.InsertLeafLax(v, appendSide)
	}
	return result
}

// InsertBranch inserts path at its first point of divergence from t: the
// longest prefix of path that already matches a root-to-node walk is left
// alone, and the remaining suffix is attached as a new leftmost-descendant
// chain at the point of divergence. An empty receiver is bootstrapped from
// path directly.
func (t Tree[T]) InsertBranch(path []T) Tree[T] {
	if len(path) == 0 {
		return t
	}
	if t.IsEmpty() {
		n := node.NewLeaf(path[len(path)-1])
		for i := len(path) - 2; i >= 0; i-- {
			n = node.Node[T]{Head: path[i], Children: []node.Node[T]{n}}
		}
		return fromNode(n)
	}

	n, _ := t.toNode()
	if n.Head != path[0] {
		return t
	}

	return fromNode(insertBranchInto(n, path[1:]))
}

func insertBranchInto[T comparable](n node.Node[T], rest []T) node.Node[T] {
	if len(rest) == 0 {
		return n
	}

	for i, c := range n.Children {
		if c.Head == rest[0] {
			children := append([]node.Node[T](nil), n.Children...)
			children[i] = insertBranchInto(c, rest[1:])
			return node.Node[T]{Head: n.Head, Children: children}
		}
	}

	return node.InsertBranch(n, rest)
}

// UpdateChild replaces the first direct child of t whose head equals old
// with newSubtree, distinct (the replacement is then merged into any
// same-headed sibling). If no child matches old, t is returned unchanged.
func (t Tree[T]) UpdateChild(old T, newSubtree Tree[T]) Tree[T] {
	n, err := t.toNode()
	if err != nil {
		return t
	}

	idx := -1
	for i, c := range n.Children {
		if c.Head == old {
			idx = i
			break
		}
	}
	if idx < 0 {
		return t
	}

	replacement, _ := newSubtree.toNode()
	rest := append([]node.Node[T](nil), n.Children[:idx]...)
	rest = append(rest, n.Children[idx+1:]...)

	collides := false
	for _, c := range rest {
		if c.Head == replacement.Head {
			collides = true
			break
		}
	}
	if !collides {
		children := append([]node.Node[T](nil), n.Children...)
		children[idx] = replacement
		return fromNode(node.Node[T]{Head: n.Head, Children: children})
	}

	merged := node.Node[T]{Head: n.Head, Children: rest}
	return fromNode(node.EnsureChildDistinct(merged, replacement, true))
}

// UpdateChildLax is UpdateChild without the distinct merge.
func (t Tree[T]) UpdateChildLax(old T, newSubtree Tree[T]) Tree[T] {
	n, err := t.toNode()
	if err != nil {
		return t
	}

	replacement, _ := newSubtree.toNode()
	for i, c := range n.Children {
		if c.Head == old {
			children := append([]node.Node[T](nil), n.Children...)
			children[i] = replacement
			n.Children = children
			return fromNode(n)
		}
	}
	return t
}

// UpdateChildValue replaces the head of the first direct child whose head
// equals old with newHead, distinct: if newHead collides with another
// existing child's head, the targeted child merges into that one.
func (t Tree[T]) UpdateChildValue(old, newHead T) Tree[T] {
	n, err := t.toNode()
	if err != nil {
		return t
	}

	idx := -1
	for i, c := range n.Children {
		if c.Head == old {
			idx = i
			break
		}
	}
	if idx < 0 {
		return t
	}

	retargeted := n.Children[idx]
	retargeted.Head = newHead

	rest := append([]node.Node[T](nil), n.Children[:idx]...)
	rest = append(rest, n.Children[idx+1:]...)

	collides := false
	for _, c := range rest {
		if c.Head == newHead {
			collides = true
			break
		}
	}
	if !collides {
		children := append([]node.Node[T](nil), n.Children...)
		children[idx] = retargeted
		return fromNode(node.Node[T]{Head: n.Head, Children: children})
	}

	merged := node.Node[T]{Head: n.Head, Children: rest}
	return fromNode(node.EnsureChildDistinct(merged, retargeted, true))
}

// UpdateChildValueLax is UpdateChildValue without the distinct merge.
func (t Tree[T]) UpdateChildValueLax(old, newHead T) Tree[T] {
	n, err := t.toNode()
	if err != nil {
		return t
	}

	for i, c := range n.Children {
		if c.Head == old {
			children := append([]node.Node[T](nil), n.Children...)
			children[i].Head = newHead
			n.Children = children
			return fromNode(n)
		}
	}
	return t
}

// ModifyValue applies f to the head of the first direct child whose head
// equals old, distinct.
func (t Tree[T]) ModifyValue(old T, f func(T) T) Tree[T] {
	n, err := t.toNode()
	if err != nil {
		return t
	}
	for _, c := range n.Children {
		if c.Head == old {
			return t.UpdateChildValue(old, f(c.Head))
		}
	}
	return t
}

// ModifyValueLax is ModifyValue without the distinct merge.
func (t Tree[T]) ModifyValueLax(old T, f func(T) T) Tree[T] {
	n, err := t.toNode()
	if err != nil {
		return t
	}
	for _, c := range n.Children {
		if c.Head == old {
			return t.UpdateChildValueLax(old, f(c.Head))
		}
	}
	return t
}

// RemoveChildValue removes the leftmost direct child of t whose head equals
// value; that child's own children are re-parented to t, and if doing so
// creates duplicate-headed siblings they are merged (distinct form).
func (t Tree[T]) RemoveChildValue(value T) (Tree[T], bool) {
	if t.kind == reprDeflated {
		root := len(t.structure) - 1
		idx, found, err := linear.LeftmostIndexOfChildValue(value, root, t.structure, t.values)
		if err == nil && found {
			sBuf, vBuf := deflatedBuffers(t)
			if _, err := linear.RemoveValue(idx, root, sBuf, vBuf); err == nil {
				newRoot := root
				if root > idx {
					newRoot--
				}
				if _, err := linear.MakeChildrenDistinct(newRoot, sBuf, vBuf); err == nil {
					return freezeDeflated(sBuf, vBuf), true
				}
			}
		}
	}

	n, err := t.toNode()
	if err != nil {
		return t, false
	}

	idx := -1
	for i, c := range n.Children {
		if c.Head == value {
			idx = i
			break
		}
	}
	if idx < 0 {
		return t, false
	}

	removed := n.Children[idx]
	rest := append([]node.Node[T](nil), n.Children[:idx]...)
	rest = append(rest, removed.Children...)
	rest = append(rest, n.Children[idx+1:]...)

	merged := node.MakeChildrenDistinct(node.Node[T]{Head: n.Head, Children: rest})
	return fromNode(merged), true
}

// RemoveChildValueLax is RemoveChildValue without the distinct merge pass.
func (t Tree[T]) RemoveChildValueLax(value T) (Tree[T], bool) {
	if t.kind == reprDeflated {
		root := len(t.structure) - 1
		idx, found, err := linear.LeftmostIndexOfChildValue(value, root, t.structure, t.values)
		if err == nil && found {
			sBuf, vBuf := deflatedBuffers(t)
			if _, err := linear.RemoveValue(idx, root, sBuf, vBuf); err == nil {
				return freezeDeflated(sBuf, vBuf), true
			}
		}
	}

	n, err := t.toNode()
	if err != nil {
		return t, false
	}

	idx := -1
	for i, c := range n.Children {
		if c.Head == value {
			idx = i
			break
		}
	}
	if idx < 0 {
		return t, false
	}

	removed := n.Children[idx]
	rest := append([]node.Node[T](nil), n.Children[:idx]...)
	rest = append(rest, removed.Children...)
	rest = append(rest, n.Children[idx+1:]...)

	return fromNode(node.Node[T]{Head: n.Head, Children: rest}), true
}

// RemoveValue is RemoveChildValue: it operates on direct children only.
func (t Tree[T]) RemoveValue(value T) (Tree[T], bool) {
	return t.RemoveChildValue(value)
}

// RemoveValueLax is RemoveChildValueLax.
func (t Tree[T]) RemoveValueLax(value T) (Tree[T], bool) {
	return t.RemoveChildValueLax(value)
}

// MakeDistinct merges every pair of duplicate-headed direct children,
// recursively, throughout the whole tree.
func (t Tree[T]) MakeDistinct() Tree[T] {
	n, err := t.toNode()
	if err != nil {
		return t
	}
	return fromNode(node.MakeTreeDistinct(n, -1))
}

// MakeChildrenDistinct merges only t's own direct children, one level deep.
func (t Tree[T]) MakeChildrenDistinct() Tree[T] {
	if t.kind == reprDeflated {
		sBuf, vBuf := deflatedBuffers(t)
		if _, err := linear.MakeChildrenDistinct(len(t.structure)-1, sBuf, vBuf); err == nil {
			return freezeDeflated(sBuf, vBuf)
		}
	}

	n, err := t.toNode()
	if err != nil {
		return t
	}
	return fromNode(node.MakeChildrenDistinct(n))
}
