package linear

import (
	"sort"

	"github.com/gaissmai/ordtree/internal/buffer"
)

// tnode is a throwaway recursive view used only to stage the multi-step
// splicing that the insertion helpers below perform; it never escapes this
// package. The buffers remain the one public mutable representation.
type tnode[T any] struct {
	head     T
	children []tnode[T] // left to right
}

// toTNode materializes the subtree rooted at i into a tnode, reversing each
// level's storage-order (rightmost-first) children into left-to-right order.
func toTNode[T any](i int, structure []int32, values []T) (tnode[T], error) {
	children, err := ChildrenIndexes(i, structure)
	if err != nil {
		return tnode[T]{}, err
	}

	ltr := make([]tnode[T], len(children))
	for idx, c := range children {
		child, err := toTNode(int(c), structure, values)
		if err != nil {
			return tnode[T]{}, err
		}
		ltr[len(children)-1-idx] = child
	}

	return tnode[T]{head: values[i], children: ltr}, nil
}

// fromTNode serializes a tnode back into post-order (structure, values)
// arrays: leftmost child's whole subtree emitted first (smallest indices),
// rightmost child's whole subtree last (immediately before the node itself),
// matching the "rightmost child first when scanning back from the parent"
// rule ChildrenIndexes relies on.
func fromTNode[T any](n tnode[T]) ([]int32, []T) {
	structure := make([]int32, 0, 1)
	values := make([]T, 0, 1)

	for i := 0; i < len(n.children); i++ {
		cs, cv := fromTNode(n.children[i])
		structure = append(structure, cs...)
		values = append(values, cv...)
	}

	structure = append(structure, int32(len(n.children)))
	values = append(values, n.head)
	return structure, values
}

// subtreeSlice is one root's (structure, values) pair carved out of a
// multi-root forest block.
type subtreeSlice[T any] struct {
	structure []int32
	values    []T
}

// splitForest decomposes a storage-order forest block (a concatenation of
// whole subtrees, as found e.g. in a node's children range) into its
// individual subtrees, left to right.
func splitForest[T any](structure []int32, values []T) ([]subtreeSlice[T], error) {
	var rightmostFirst []subtreeSlice[T]

	pos := len(structure) - 1
	for pos >= 0 {
		sz, err := SubtreeSize(pos, structure)
		if err != nil {
			return nil, err
		}

		start := pos - sz + 1
		rightmostFirst = append(rightmostFirst, subtreeSlice[T]{
			structure: structure[start : pos+1 : pos+1],
			values:    values[start : pos+1 : pos+1],
		})
		pos = start - 1
	}

	for i, j := 0, len(rightmostFirst)-1; i < j; i, j = i+1, j-1 {
		rightmostFirst[i], rightmostFirst[j] = rightmostFirst[j], rightmostFirst[i]
	}

	return rightmostFirst, nil
}

// spliceSubtree replaces the subtree of size size rooted at i (i == -1,
// size == 0 denotes bootstrapping an empty tree) with newStructure/newValues,
// and returns the size delta and the new root index of the replacement.
func spliceSubtree[T any](i, size int, newStructure []int32, newValues []T, structureBuf *buffer.IntBuffer, valuesBuf *buffer.Buffer[T]) (delta int, newIdx int) {
	start := i - size + 1

	structureBuf.RemoveRange(start, start+size)
	valuesBuf.RemoveRange(start, start+size)
	structureBuf.InsertSliceAt(start, newStructure)
	valuesBuf.InsertSliceAt(start, newValues)

	delta = len(newStructure) - size
	newIdx = start + len(newStructure) - 1
	return delta, newIdx
}

// chainArrays serializes a value chain path[0] -> path[1] -> ... -> path[n-1]
// (each the sole child of its predecessor) into post-order arrays.
func chainArrays[T any](path []T) ([]int32, []T) {
	n := len(path)
	structure := make([]int32, n)
	values := make([]T, n)

	for i := 0; i < n; i++ {
		values[i] = path[n-1-i]
		if i > 0 {
			structure[i] = 1
		}
	}

	return structure, values
}

// leftmostChildBoundary returns the array index immediately to the left of
// parentI's children range - parentI itself when it has no children.
func leftmostChildBoundary(parentI int, structure []int32) (int, error) {
	k := int(structure[parentI])
	if k == 0 {
		return parentI, nil
	}

	children, err := ChildrenIndexes(parentI, structure)
	if err != nil {
		return 0, err
	}

	leftmost := int(children[len(children)-1])
	sz, err := SubtreeSize(leftmost, structure)
	if err != nil {
		return 0, err
	}

	return leftmost - sz + 1, nil
}

// InsertSubtreeAsChild splices a whole subtree (subStructure, subValues) in
// as a new direct child of parentI, without regard to sibling uniqueness
// (the "lax" primitive). appendSide selects the rightmost (true) or leftmost
// (false) position. parentI == -1 bootstraps an empty tree.
func InsertSubtreeAsChild[T any](parentI int, subStructure []int32, subValues []T, appendSide bool, structureBuf *buffer.IntBuffer, valuesBuf *buffer.Buffer[T]) (delta, newParentI, newChildIdx int, err error) {
	if parentI < 0 {
		structureBuf.InsertSliceAt(0, subStructure)
		valuesBuf.InsertSliceAt(0, subValues)
		d := len(subStructure)
		return d, -1, d - 1, nil
	}

	var boundary int
	if appendSide {
		boundary = parentI
	} else {
		structureSnap := structureBuf.Slice(0, structureBuf.Len())
		boundary, err = leftmostChildBoundary(parentI, structureSnap)
		if err != nil {
			return 0, parentI, 0, err
		}
	}

	structureBuf.InsertSliceAt(boundary, subStructure)
	valuesBuf.InsertSliceAt(boundary, subValues)

	d := len(subStructure)
	newParentI = parentI + d
	structureBuf.Set(newParentI, structureBuf.Get(newParentI)+1)
	newChildIdx = boundary + d - 1

	return d, newParentI, newChildIdx, nil
}

// InsertSubtreeDistinct inserts subStructure/subValues as a new direct child
// of parentI, enforcing the distinct merge rule (spec.md §4.2.4): if a direct
// child already shares the new subtree's head, the new subtree's children are
// merged into that sibling recursively instead of inserting a duplicate-
// headed sibling. Returns the delta and the index of the node (new or
// merged-into) that now represents the inserted value.
func InsertSubtreeDistinct[T comparable](parentI int, subStructure []int32, subValues []T, appendSide bool, structureBuf *buffer.IntBuffer, valuesBuf *buffer.Buffer[T]) (delta int, resultIdx int, err error) {
	if parentI < 0 {
		d, _, childIdx, ierr := InsertSubtreeAsChild(parentI, subStructure, subValues, appendSide, structureBuf, valuesBuf)
		return d, childIdx, ierr
	}

	subRoot := subValues[len(subValues)-1]
	structureSnap := structureBuf.Slice(0, structureBuf.Len())
	valuesSnap := valuesBuf.Slice(0, valuesBuf.Len())

	var existingIdx int
	var found bool
	if appendSide {
		existingIdx, found, err = RightmostIndexOfChildValue(subRoot, parentI, structureSnap, valuesSnap)
	} else {
		existingIdx, found, err = LeftmostIndexOfChildValue(subRoot, parentI, structureSnap, valuesSnap)
	}
	if err != nil {
		return 0, parentI, err
	}

	if !found {
		d, _, childIdx, ierr := InsertSubtreeAsChild(parentI, subStructure, subValues, appendSide, structureBuf, valuesBuf)
		return d, childIdx, ierr
	}

	// subRoot is consumed: merge its direct children into the existing sibling.
	if len(subStructure) == 1 {
		return 0, existingIdx, nil
	}

	childForest, ferr := splitForest(subStructure[:len(subStructure)-1], subValues[:len(subValues)-1])
	if ferr != nil {
		return 0, existingIdx, ferr
	}

	order := childForest
	if !appendSide {
		order = make([]subtreeSlice[T], len(childForest))
		for i, c := range childForest {
			order[len(childForest)-1-i] = c
		}
	}

	totalDelta := 0
	cursor := existingIdx

	for _, child := range order {
		d, _, ierr := InsertSubtreeDistinct(cursor, child.structure, child.values, appendSide, structureBuf, valuesBuf)
		if ierr != nil {
			return totalDelta, cursor, ierr
		}
		totalDelta += d
		cursor += d
	}

	return totalDelta, cursor, nil
}

// ParentSubtree is one (parent, subtree) pair for a batch insertion.
type ParentSubtree[T any] struct {
	ParentIndex int
	Structure   []int32
	Values      []T
}

// InsertLeftSubtreeListDistinct inserts each item's subtree as the leftmost
// child of its named parent, enforcing the distinct merge rule, and returns
// the cumulative size delta.
func InsertLeftSubtreeListDistinct[T comparable](items []ParentSubtree[T], structureBuf *buffer.IntBuffer, valuesBuf *buffer.Buffer[T]) (int, error) {
	return insertSubtreeListDistinct(items, false, structureBuf, valuesBuf)
}

// InsertRightSubtreeListDistinct is InsertLeftSubtreeListDistinct with
// rightmost placement.
func InsertRightSubtreeListDistinct[T comparable](items []ParentSubtree[T], structureBuf *buffer.IntBuffer, valuesBuf *buffer.Buffer[T]) (int, error) {
	return insertSubtreeListDistinct(items, true, structureBuf, valuesBuf)
}

func insertSubtreeListDistinct[T comparable](items []ParentSubtree[T], appendSide bool, structureBuf *buffer.IntBuffer, valuesBuf *buffer.Buffer[T]) (int, error) {
	ordered := append([]ParentSubtree[T](nil), items...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ParentIndex < ordered[j].ParentIndex })

	totalDelta := 0
	for _, item := range ordered {
		d, _, err := InsertSubtreeDistinct(item.ParentIndex+totalDelta, item.Structure, item.Values, appendSide, structureBuf, valuesBuf)
		if err != nil {
			return totalDelta, err
		}
		totalDelta += d
	}

	return totalDelta, nil
}

// InsertBranch attaches path as a new leftmost-descendant chain under
// parentI: path[0] becomes parentI's new leftmost child, path[1] its sole
// child, and so on down to the leaf path[len(path)-1]. parentI == -1 with an
// empty tree bootstraps the whole chain as the tree's root-to-leaf spine.
func InsertBranch[T any](path []T, parentI int, structureBuf *buffer.IntBuffer, valuesBuf *buffer.Buffer[T]) (int, error) {
	if len(path) == 0 {
		return 0, nil
	}

	ns, nv := chainArrays(path)

	if parentI < 0 {
		structureBuf.InsertSliceAt(0, ns)
		valuesBuf.InsertSliceAt(0, nv)
		return len(ns), nil
	}

	d, _, _, err := InsertSubtreeAsChild(parentI, ns, nv, false, structureBuf, valuesBuf)
	return d, err
}

// ExpandValueIntoTree replaces the single node at atI with subStructure/
// subValues, keeping atI's original value as the root of the expansion and
// adopting the given subtree's root's children as its own. Returns the delta
// and the new index of the expanded root.
func ExpandValueIntoTree[T any](subStructure []int32, subValues []T, atI int, structureBuf *buffer.IntBuffer, valuesBuf *buffer.Buffer[T]) (int, int, error) {
	oldValue := valuesBuf.Get(atI)

	subRoot, err := toTNode(len(subStructure)-1, subStructure, subValues)
	if err != nil {
		return 0, atI, err
	}

	expanded := tnode[T]{head: oldValue, children: subRoot.children}
	ns, nv := fromTNode(expanded)

	delta, newIdx := spliceSubtree(atI, 1, ns, nv, structureBuf, valuesBuf)
	return delta, newIdx, nil
}

// ExpandValueIntoTreeDistinct is ExpandValueIntoTree followed by
// distinctifying parentI's children (parentI is atI's parent before the
// expansion; its post-expansion index is computed internally).
func ExpandValueIntoTreeDistinct[T comparable](subStructure []int32, subValues []T, atI, parentI int, structureBuf *buffer.IntBuffer, valuesBuf *buffer.Buffer[T]) (int, error) {
	delta, _, err := ExpandValueIntoTree(subStructure, subValues, atI, structureBuf, valuesBuf)
	if err != nil {
		return 0, err
	}

	if parentI < 0 {
		return delta, nil
	}

	newParentI := parentI
	if atI < parentI {
		newParentI = parentI + delta
	}

	d2, err := MakeChildrenDistinct(newParentI, structureBuf, valuesBuf)
	if err != nil {
		return delta, err
	}

	return delta + d2, nil
}
