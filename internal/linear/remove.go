package linear

import "github.com/gaissmai/ordtree/internal/buffer"

// RemoveValue deletes the single node at i, splicing its direct children
// into its former place among parentI's children (they keep their existing
// relative order and position; they are not moved to the rightmost or
// leftmost end). parentI < 0 means i has no parent (it is the tree's root);
// the caller is responsible for rejecting that case unless i has at most one
// child, since removing a multi-child root would leave more than one root.
func RemoveValue[T any](i, parentI int, structureBuf *buffer.IntBuffer, valuesBuf *buffer.Buffer[T]) (int, error) {
	childCount := structureBuf.Get(i)

	structureBuf.RemoveRange(i, i+1)
	valuesBuf.RemoveRange(i, i+1)

	if parentI >= 0 {
		newParentI := parentI
		if parentI > i {
			newParentI = parentI - 1
		}
		structureBuf.Set(newParentI, structureBuf.Get(newParentI)+childCount-1)
	}

	return -1, nil
}

// RemoveTree deletes the whole subtree rooted at i, including all of its
// descendants, and decrements parentI's child count. parentI < 0 means i is
// the tree's root, emptying the tree entirely.
func RemoveTree[T any](i, parentI int, structureBuf *buffer.IntBuffer, valuesBuf *buffer.Buffer[T]) (int, error) {
	structureSnap := structureBuf.Slice(0, structureBuf.Len())

	size, err := SubtreeSize(i, structureSnap)
	if err != nil {
		return 0, err
	}

	start := i - size + 1
	structureBuf.RemoveRange(start, i+1)
	valuesBuf.RemoveRange(start, i+1)

	if parentI >= 0 {
		newParentI := parentI
		if parentI > i {
			newParentI = parentI - size
		}
		structureBuf.Set(newParentI, structureBuf.Get(newParentI)-1)
	}

	return -size, nil
}
