package ordtree

import (
	"github.com/gaissmai/ordtree/internal/linear"
	"github.com/gaissmai/ordtree/internal/node"
)

func identity[T any](v T) T { return v }

// locateNode walks path against n: path[0] must equal keyFn(n.Head), path[1]
// the key of a direct child, and so on. It returns the node path resolves to
// and whether the whole path matched.
func locateNode[T comparable, K comparable](n node.Node[T], path []K, keyFn func(T) K) (node.Node[T], bool) {
	if len(path) == 0 || keyFn(n.Head) != path[0] {
		return node.Node[T]{}, false
	}
	if len(path) == 1 {
		return n, true
	}
	for _, c := range n.Children {
		if keyFn(c.Head) == path[1] {
			return locateNode(c, path[1:], keyFn)
		}
	}
	return node.Node[T]{}, false
}

// replaceAtNode applies replace to the node path resolves to and rebuilds
// the path back up to the root with the replacement spliced in.
func replaceAtNode[T comparable, K comparable](n node.Node[T], path []K, keyFn func(T) K, replace func(node.Node[T]) node.Node[T]) (node.Node[T], bool) {
	if len(path) == 0 || keyFn(n.Head) != path[0] {
		return n, false
	}
	if len(path) == 1 {
		return replace(n), true
	}
	for i, c := range n.Children {
		if keyFn(c.Head) == path[1] {
			newChild, ok := replaceAtNode(c, path[1:], keyFn, replace)
			if !ok {
				return n, false
			}
			children := append([]node.Node[T](nil), n.Children...)
			children[i] = newChild
			return node.Node[T]{Head: n.Head, Children: children}, true
		}
	}
	return n, false
}

// replaceAtParent locates the parent and child index path resolves to (path
// must name at least a root and one direct descendant) and applies
// transform to that (parent, childIndex) pair.
func replaceAtParent[T comparable, K comparable](n node.Node[T], path []K, keyFn func(T) K, transform func(parent node.Node[T], idx int) node.Node[T]) (node.Node[T], bool) {
	if len(path) < 2 || keyFn(n.Head) != path[0] {
		return n, false
	}

	idx := -1
	for i, c := range n.Children {
		if keyFn(c.Head) == path[1] {
			idx = i
			break
		}
	}
	if idx < 0 {
		return n, false
	}

	if len(path) == 2 {
		return transform(n, idx), true
	}

	newChild, ok := replaceAtParent(n.Children[idx], path[1:], keyFn, transform)
	if !ok {
		return n, false
	}
	children := append([]node.Node[T](nil), n.Children...)
	children[idx] = newChild
	return node.Node[T]{Head: n.Head, Children: children}, true
}

func pathResult[T comparable](t Tree[T], n node.Node[T], matched bool) Result[T] {
	if !matched {
		return errResult(t)
	}
	return okResult(fromNode(n))
}

// ContainsPath reports whether path names a node reachable by walking
// direct children from the root, root included as path[0]. A deflated t is
// matched directly against its arrays via linear.FollowPath.
func (t Tree[T]) ContainsPath(path []T) bool {
	if t.kind == reprDeflated && len(path) > 0 {
		res, err := linear.FollowPath(path, len(t.structure)-1, len(t.structure), t.structure, t.values)
		if err == nil {
			return res.FullyMatched
		}
	}
	return ContainsPathBy(t, path, identity[T])
}

// ContainsPathBy is ContainsPath with a key extractor.
func ContainsPathBy[T comparable, K comparable](t Tree[T], path []K, keyFn func(T) K) bool {
	n, err := t.toNode()
	if err != nil {
		return false
	}
	_, ok := locateNode(n, path, keyFn)
	return ok
}

// ContainsBranch reports whether path is exactly a root-to-leaf branch of t.
func (t Tree[T]) ContainsBranch(path []T) bool {
	n, err := t.toNode()
	if err != nil {
		return false
	}
	target, ok := locateNode(n, path, identity[T])
	return ok && len(target.Children) == 0
}

// ModifyValueAt applies f to the head of the node at path, distinct: if the
// new head collides with a sibling's head, the node merges into that
// sibling per the §4.2.6 rule. Err(t) if path does not fully match a node;
// a path naming only the root replaces the root's head.
func (t Tree[T]) ModifyValueAt(path []T, f func(T) T) Result[T] {
	return ModifyValueAtBy(t, path, identity[T], f)
}

// ModifyValueAtBy is ModifyValueAt with a key extractor.
func ModifyValueAtBy[T comparable, K comparable](t Tree[T], path []K, keyFn func(T) K, f func(T) T) Result[T] {
	n, err := t.toNode()
	if err != nil {
		return errResult(t)
	}
	target, ok := locateNode(n, path, keyFn)
	if !ok {
		return errResult(t)
	}
	return UpdateValueAtBy(t, path, keyFn, f(target.Head))
}

// ModifyValueAtLax is ModifyValueAt without the distinct merge.
func (t Tree[T]) ModifyValueAtLax(path []T, f func(T) T) Result[T] {
	return ModifyValueAtLaxBy(t, path, identity[T], f)
}

// ModifyValueAtLaxBy is ModifyValueAtLax with a key extractor.
func ModifyValueAtLaxBy[T comparable, K comparable](t Tree[T], path []K, keyFn func(T) K, f func(T) T) Result[T] {
	n, err := t.toNode()
	if err != nil {
		return errResult(t)
	}
	target, ok := locateNode(n, path, keyFn)
	if !ok {
		return errResult(t)
	}
	return UpdateValueAtLaxBy(t, path, keyFn, f(target.Head))
}

// UpdateValueAt replaces the head of the node at path with newHead,
// distinct.
func (t Tree[T]) UpdateValueAt(path []T, newHead T) Result[T] {
	return UpdateValueAtBy(t, path, identity[T], newHead)
}

// UpdateValueAtBy is UpdateValueAt with a key extractor.
func UpdateValueAtBy[T comparable, K comparable](t Tree[T], path []K, keyFn func(T) K, newHead T) Result[T] {
	n, err := t.toNode()
	if err != nil {
		return errResult(t)
	}

	if len(path) == 1 {
		if keyFn(n.Head) != path[0] {
			return errResult(t)
		}
		n.Head = newHead
		return okResult(fromNode(n))
	}

	result, matched := replaceAtParent(n, path, keyFn, func(parent node.Node[T], idx int) node.Node[T] {
		retargeted := parent.Children[idx]
		retargeted.Head = newHead
		rest := append([]node.Node[T](nil), parent.Children[:idx]...)
		rest = append(rest, parent.Children[idx+1:]...)
		for _, c := range rest {
			if c.Head == newHead {
				merged := node.Node[T]{Head: parent.Head, Children: rest}
				return node.EnsureChildDistinct(merged, retargeted, true)
			}
		}
		children := append([]node.Node[T](nil), parent.Children...)
		children[idx] = retargeted
		return node.Node[T]{Head: parent.Head, Children: children}
	})
	return pathResult(t, result, matched)
}

// UpdateValueAtLax is UpdateValueAt without the distinct merge.
func (t Tree[T]) UpdateValueAtLax(path []T, newHead T) Result[T] {
	return UpdateValueAtLaxBy(t, path, identity[T], newHead)
}

// UpdateValueAtLaxBy is UpdateValueAtLax with a key extractor.
func UpdateValueAtLaxBy[T comparable, K comparable](t Tree[T], path []K, keyFn func(T) K, newHead T) Result[T] {
	n, err := t.toNode()
	if err != nil {
		return errResult(t)
	}
	result, matched := replaceAtNode(n, path, keyFn, func(target node.Node[T]) node.Node[T] {
		target.Head = newHead
		return target
	})
	return pathResult(t, result, matched)
}

// ModifyTreeAt replaces the subtree at path with f(subtree), distinct: the
// replacement is merged into a same-headed sibling of the original's
// parent's children, if any.
func (t Tree[T]) ModifyTreeAt(path []T, f func(Tree[T]) Tree[T]) Result[T] {
	return ModifyTreeAtBy(t, path, identity[T], f)
}

// ModifyTreeAtBy is ModifyTreeAt with a key extractor.
func ModifyTreeAtBy[T comparable, K comparable](t Tree[T], path []K, keyFn func(T) K, f func(Tree[T]) Tree[T]) Result[T] {
	n, err := t.toNode()
	if err != nil {
		return errResult(t)
	}
	target, ok := locateNode(n, path, keyFn)
	if !ok {
		return errResult(t)
	}
	return UpdateTreeAtBy(t, path, keyFn, f(fromNode(target)))
}

// ModifyTreeAtLax is ModifyTreeAt without the distinct merge.
func (t Tree[T]) ModifyTreeAtLax(path []T, f func(Tree[T]) Tree[T]) Result[T] {
	return ModifyTreeAtLaxBy(t, path, identity[T], f)
}

// ModifyTreeAtLaxBy is ModifyTreeAtLax with a key extractor.
func ModifyTreeAtLaxBy[T comparable, K comparable](t Tree[T], path []K, keyFn func(T) K, f func(Tree[T]) Tree[T]) Result[T] {
	n, err := t.toNode()
	if err != nil {
		return errResult(t)
	}
	target, ok := locateNode(n, path, keyFn)
	if !ok {
		return errResult(t)
	}
	return UpdateTreeAtLaxBy(t, path, keyFn, f(fromNode(target)))
}

// UpdateTreeAt replaces the subtree at path with newSubtree, distinct.
func (t Tree[T]) UpdateTreeAt(path []T, newSubtree Tree[T]) Result[T] {
	return UpdateTreeAtBy(t, path, identity[T], newSubtree)
}

// UpdateTreeAtBy is UpdateTreeAt with a key extractor.
func UpdateTreeAtBy[T comparable, K comparable](t Tree[T], path []K, keyFn func(T) K, newSubtree Tree[T]) Result[T] {
	n, err := t.toNode()
	if err != nil {
		return errResult(t)
	}
	replacement, rerr := newSubtree.toNode()
	if rerr != nil {
		return errResult(t)
	}

	if len(path) == 1 {
		if keyFn(n.Head) != path[0] {
			return errResult(t)
		}
		return okResult(fromNode(replacement))
	}

	result, matched := replaceAtParent(n, path, keyFn, func(parent node.Node[T], idx int) node.Node[T] {
		rest := append([]node.Node[T](nil), parent.Children[:idx]...)
		rest = append(rest, parent.Children[idx+1:]...)
		for _, c := range rest {
			if c.Head == replacement.Head {
				merged := node.Node[T]{Head: parent.Head, Children: rest}
				return node.EnsureChildDistinct(merged, replacement, true)
			}
		}
		children := append([]node.Node[T](nil), parent.Children...)
		children[idx] = replacement
		return node.Node[T]{Head: parent.Head, Children: children}
	})
	return pathResult(t, result, matched)
}

// UpdateTreeAtLax is UpdateTreeAt without the distinct merge.
func (t Tree[T]) UpdateTreeAtLax(path []T, newSubtree Tree[T]) Result[T] {
	return UpdateTreeAtLaxBy(t, path, identity[T], newSubtree)
}

// UpdateTreeAtLaxBy is UpdateTreeAtLax with a key extractor.
func UpdateTreeAtLaxBy[T comparable, K comparable](t Tree[T], path []K, keyFn func(T) K, newSubtree Tree[T]) Result[T] {
	n, err := t.toNode()
	if err != nil {
		return errResult(t)
	}
	replacement, rerr := newSubtree.toNode()
	if rerr != nil {
		return errResult(t)
	}
	result, matched := replaceAtNode(n, path, keyFn, func(node.Node[T]) node.Node[T] {
		return replacement
	})
	return pathResult(t, result, matched)
}

// InsertChildAt inserts subtree as a direct child of the node at path,
// distinct.
func (t Tree[T]) InsertChildAt(path []T, subtree Tree[T], appendSide bool) Result[T] {
	return InsertChildAtBy(t, path, identity[T], subtree, appendSide)
}

// InsertChildAtBy is InsertChildAt with a key extractor.
func InsertChildAtBy[T comparable, K comparable](t Tree[T], path []K, keyFn func(T) K, subtree Tree[T], appendSide bool) Result[T] {
	n, err := t.toNode()
	if err != nil {
		return errResult(t)
	}
	child, cerr := subtree.toNode()
	if cerr != nil {
		return errResult(t)
	}
	result, matched := replaceAtNode(n, path, keyFn, func(target node.Node[T]) node.Node[T] {
		return node.EnsureChildDistinct(target, child, appendSide)
	})
	return pathResult(t, result, matched)
}

// InsertChildAtLax is InsertChildAt without the distinct merge.
func (t Tree[T]) InsertChildAtLax(path []T, subtree Tree[T], appendSide bool) Result[T] {
	return InsertChildAtLaxBy(t, path, identity[T], subtree, appendSide)
}

// InsertChildAtLaxBy is InsertChildAtLax with a key extractor.
func InsertChildAtLaxBy[T comparable, K comparable](t Tree[T], path []K, keyFn func(T) K, subtree Tree[T], appendSide bool) Result[T] {
	n, err := t.toNode()
	if err != nil {
		return errResult(t)
	}
	child, cerr := subtree.toNode()
	if cerr != nil {
		return errResult(t)
	}
	result, matched := replaceAtNode(n, path, keyFn, func(target node.Node[T]) node.Node[T] {
		children := make([]node.Node[T], 0, len(target.Children)+1)
		if appendSide {
			children = append(children, target.Children...)
			children = append(children, child)
		} else {
			children = append(children, child)
			children = append(children, target.Children...)
		}
		target.Children = children
		return target
	})
	return pathResult(t, result, matched)
}

// InsertLeafAt inserts leaf as a child of the node at path, distinct. If
// path does not fully exist, missing intermediate nodes are created along
// the way (each holding the corresponding path value) and leaf is placed at
// the end. Value-form only. If t is non-empty and path[0] is not the root's
// head, t is returned unchanged.
func (t Tree[T]) InsertLeafAt(path []T, leaf T) Tree[T] {
	if len(path) == 0 {
		return t.InsertLeaf(leaf, true)
	}
	if t.IsEmpty() {
		chain := node.NewLeaf(leaf)
		for i := len(path) - 1; i >= 0; i-- {
			chain = node.Node[T]{Head: path[i], Children: []node.Node[T]{chain}}
		}
		return fromNode(chain)
	}

	n, _ := t.toNode()
	if n.Head != path[0] {
		return t
	}
	return fromNode(insertLeafAtNode(n, path[1:], leaf))
}

func insertLeafAtNode[T comparable](n node.Node[T], rest []T, leaf T) node.Node[T] {
	if len(rest) == 0 {
		return node.EnsureChildDistinct(n, node.NewLeaf(leaf), true)
	}
	for i, c := range n.Children {
		if c.Head == rest[0] {
			children := append([]node.Node[T](nil), n.Children...)
			children[i] = insertLeafAtNode(c, rest[1:], leaf)
			return node.Node[T]{Head: n.Head, Children: children}
		}
	}

	chain := node.NewLeaf(leaf)
	for i := len(rest) - 1; i >= 0; i-- {
		chain = node.Node[T]{Head: rest[i], Children: []node.Node[T]{chain}}
	}
	children := append([]node.Node[T](nil), n.Children...)
	children = append(children, chain)
	return node.Node[T]{Head: n.Head, Children: children}
}

// InsertLeafLaxAt is InsertLeafAt without the distinct merge at the final
// insertion point.
func (t Tree[T]) InsertLeafLaxAt(path []T, leaf T) Tree[T] {
	if len(path) == 0 {
		return t.InsertLeafLax(leaf, true)
	}
	if t.IsEmpty() {
		return t.InsertLeafAt(path, leaf)
	}

	n, _ := t.toNode()
	if n.Head != path[0] {
		return t
	}
	return fromNode(insertLeafLaxAtNode(n, path[1:], leaf))
}

func insertLeafLaxAtNode[T comparable](n node.Node[T], rest []T, leaf T) node.Node[T] {
	if len(rest) == 0 {
		n.Children = append(append([]node.Node[T](nil), n.Children...), node.NewLeaf(leaf))
		return n
	}
	for i, c := range n.Children {
		if c.Head == rest[0] {
			children := append([]node.Node[T](nil), n.Children...)
			children[i] = insertLeafLaxAtNode(c, rest[1:], leaf)
			return node.Node[T]{Head: n.Head, Children: children}
		}
	}

	chain := node.NewLeaf(leaf)
	for i := len(rest) - 1; i >= 1; i-- {
		chain = node.Node[T]{Head: rest[i], Children: []node.Node[T]{chain}}
	}
	chain = node.Node[T]{Head: rest[0], Children: []node.Node[T]{chain}}
	children := append([]node.Node[T](nil), n.Children...)
	children = append(children, chain)
	return node.Node[T]{Head: n.Head, Children: children}
}

// InsertLeafAtBy is the extractor-parameterized InsertLeafAt: since missing
// keys cannot be synthesized from a key alone, an unmatched path returns
// Err(unchanged) instead of extending the tree.
func InsertLeafAtBy[T comparable, K comparable](t Tree[T], path []K, keyFn func(T) K, leaf T) Result[T] {
	n, err := t.toNode()
	if err != nil {
		return errResult(t)
	}
	result, matched := replaceAtNode(n, path, keyFn, func(target node.Node[T]) node.Node[T] {
		return node.EnsureChildDistinct(target, node.NewLeaf(leaf), true)
	})
	return pathResult(t, result, matched)
}

// RemoveValueAt removes the node at path, re-parenting its children to its
// parent (leftmost insertion, distinct form merges any resulting duplicate
// siblings). path must name a node below the root.
func (t Tree[T]) RemoveValueAt(path []T) Result[T] {
	return RemoveValueAtBy(t, path, identity[T])
}

// RemoveValueAtBy is RemoveValueAt with a key extractor.
func RemoveValueAtBy[T comparable, K comparable](t Tree[T], path []K, keyFn func(T) K) Result[T] {
	n, err := t.toNode()
	if err != nil {
		return errResult(t)
	}
	result, matched := replaceAtParent(n, path, keyFn, func(parent node.Node[T], idx int) node.Node[T] {
		removed := parent.Children[idx]
		rest := append([]node.Node[T](nil), parent.Children[:idx]...)
		rest = append(rest, parent.Children[idx+1:]...)
		base := node.Node[T]{Head: parent.Head, Children: rest}
		return node.InsertChildrenBeforeDistinct(base, removed.Children)
	})
	return pathResult(t, result, matched)
}

// RemoveValueAtLax is RemoveValueAt without the distinct merge: the removed
// node's children are spliced in at its former position among its siblings.
func (t Tree[T]) RemoveValueAtLax(path []T) Result[T] {
	return RemoveValueAtLaxBy(t, path, identity[T])
}

// RemoveValueAtLaxBy is RemoveValueAtLax with a key extractor.
func RemoveValueAtLaxBy[T comparable, K comparable](t Tree[T], path []K, keyFn func(T) K) Result[T] {
	n, err := t.toNode()
	if err != nil {
		return errResult(t)
	}
	result, matched := replaceAtParent(n, path, keyFn, func(parent node.Node[T], idx int) node.Node[T] {
		removed := parent.Children[idx]
		children := append([]node.Node[T](nil), parent.Children[:idx]...)
		children = append(children, removed.Children...)
		children = append(children, parent.Children[idx+1:]...)
		return node.Node[T]{Head: parent.Head, Children: children}
	})
	return pathResult(t, result, matched)
}

// RemoveTreeAt removes the node at path and its whole subtree. path must
// name a node below the root. A deflated t with a fully-matched path is
// spliced directly via linear.RemoveTree.
func (t Tree[T]) RemoveTreeAt(path []T) Result[T] {
	if t.kind == reprDeflated && len(path) >= 2 {
		root := len(t.structure) - 1
		res, err := linear.FollowPath(path, root, len(t.structure), t.structure, t.values)
		if err == nil && res.FullyMatched && len(res.Matched) >= 2 {
			targetIdx := res.Matched[len(res.Matched)-1]
			parentIdx := res.Matched[len(res.Matched)-2]
			sBuf, vBuf := deflatedBuffers(t)
			if _, err := linear.RemoveTree(targetIdx, parentIdx, sBuf, vBuf); err == nil {
				return okResult(freezeDeflated(sBuf, vBuf))
			}
		}
	}
	return RemoveTreeAtBy(t, path, identity[T])
}

// RemoveTreeAtBy is RemoveTreeAt with a key extractor.
func RemoveTreeAtBy[T comparable, K comparable](t Tree[T], path []K, keyFn func(T) K) Result[T] {
	n, err := t.toNode()
	if err != nil {
		return errResult(t)
	}
	result, matched := replaceAtParent(n, path, keyFn, func(parent node.Node[T], idx int) node.Node[T] {
		children := append([]node.Node[T](nil), parent.Children[:idx]...)
		children = append(children, parent.Children[idx+1:]...)
		return node.Node[T]{Head: parent.Head, Children: children}
	})
	return pathResult(t, result, matched)
}

// RemoveTreeAtLax is an alias of RemoveTreeAt: removing a whole subtree
// never produces duplicate siblings, so lax and distinct coincide.
func (t Tree[T]) RemoveTreeAtLax(path []T) Result[T] {
	return t.RemoveTreeAt(path)
}

// RemoveChildrenAt removes every direct child of the node at path, leaving
// it a leaf.
func (t Tree[T]) RemoveChildrenAt(path []T) Result[T] {
	return RemoveChildrenAtBy(t, path, identity[T])
}

// RemoveChildrenAtBy is RemoveChildrenAt with a key extractor.
func RemoveChildrenAtBy[T comparable, K comparable](t Tree[T], path []K, keyFn func(T) K) Result[T] {
	n, err := t.toNode()
	if err != nil {
		return errResult(t)
	}
	result, matched := replaceAtNode(n, path, keyFn, func(target node.Node[T]) node.Node[T] {
		target.Children = nil
		return target
	})
	return pathResult(t, result, matched)
}
