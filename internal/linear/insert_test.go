package linear

import (
	"reflect"
	"testing"

	"github.com/gaissmai/ordtree/internal/buffer"
)

func TestInsertBranchBootstrap(t *testing.T) {
	sb := buffer.NewIntBuffer(0)
	vb := buffer.NewBuffer[string](0)

	delta, err := InsertBranch([]string{"a", "b", "c"}, -1, sb, vb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delta != 3 {
		t.Fatalf("delta = %d, want 3", delta)
	}

	wantStructure := []int32{0, 1, 1}
	wantValues := []string{"c", "b", "a"}

	if !reflect.DeepEqual(sb.Slice(0, sb.Len()), wantStructure) {
		t.Fatalf("structure = %v, want %v", sb.Slice(0, sb.Len()), wantStructure)
	}
	if !reflect.DeepEqual(vb.Slice(0, vb.Len()), wantValues) {
		t.Fatalf("values = %v, want %v", vb.Slice(0, vb.Len()), wantValues)
	}
}

func TestInsertSubtreeAsChildAppendAndPrepend(t *testing.T) {
	// Start with a single leaf root "a".
	sb := buffer.IntBufferFromSlice([]int32{0})
	vb := buffer.BufferFromSlice([]string{"a"})

	// Append "b" as a's rightmost child.
	_, newParentI, childIdx, err := InsertSubtreeAsChild(0, []int32{0}, []string{"b"}, true, sb, vb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newParentI != 1 || childIdx != 0 {
		t.Fatalf("newParentI=%d childIdx=%d, want 1,0", newParentI, childIdx)
	}
	if vb.Get(1) != "a" || vb.Get(0) != "b" || sb.Get(1) != 1 {
		t.Fatalf("unexpected state after append: structure=%v values=%v", sb.Slice(0, 2), vb.Slice(0, 2))
	}

	// Prepend "c" as a's new leftmost child: since a currently has one child
	// (b), the leftmost boundary sits before b, i.e. at index 0.
	_, newParentI2, childIdx2, err := InsertSubtreeAsChild(newParentI, []int32{0}, []string{"c"}, false, sb, vb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newParentI2 != 2 {
		t.Fatalf("newParentI2 = %d, want 2", newParentI2)
	}
	if vb.Get(0) != "c" || vb.Get(1) != "b" || vb.Get(2) != "a" {
		t.Fatalf("unexpected values after prepend: %v", vb.Slice(0, 3))
	}
	if sb.Get(2) != 2 {
		t.Fatalf("a's child count = %d, want 2", sb.Get(2))
	}
	_ = childIdx2
}

func TestInsertSubtreeDistinctMergesMatchingHead(t *testing.T) {
	// Tree: a(b(x)). Insert b(y) as a's rightmost child: since a already has
	// a child headed "b", y should merge into the existing b instead of
	// creating a second "b" sibling.
	sb := buffer.IntBufferFromSlice([]int32{0, 1, 1})
	vb := buffer.BufferFromSlice([]string{"x", "b", "a"})

	subStructure := []int32{0, 1}
	subValues := []string{"y", "b"}

	delta, resultIdx, err := InsertSubtreeDistinct(2, subStructure, subValues, true, sb, vb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delta != 1 {
		t.Fatalf("delta = %d, want 1", delta)
	}

	n := sb.Len()
	if n != 4 {
		t.Fatalf("n = %d, want 4", n)
	}

	children, err := ChildrenIndexes(3, sb.Slice(0, n))
	if err != nil {
		t.Fatalf("ChildrenIndexes: %v", err)
	}
	if len(children) != 1 {
		t.Fatalf("a should still have exactly one child, got %d", len(children))
	}

	bIdx := int(children[0])
	if vb.Get(bIdx) != "b" {
		t.Fatalf("a's child is %v, want b", vb.Get(bIdx))
	}
	if sb.Get(bIdx) != 2 {
		t.Fatalf("b's child count = %d, want 2 (x and y)", sb.Get(bIdx))
	}

	bChildren, err := ChildrenIndexes(bIdx, sb.Slice(0, n))
	if err != nil {
		t.Fatalf("ChildrenIndexes(b): %v", err)
	}

	gotHeads := map[string]bool{}
	for _, c := range bChildren {
		gotHeads[vb.Get(int(c))] = true
	}
	if !gotHeads["x"] || !gotHeads["y"] {
		t.Fatalf("b's children heads = %v, want x and y", gotHeads)
	}
	_ = resultIdx
}

func TestExpandValueIntoTree(t *testing.T) {
	// Single leaf root "a". Expand it with p(q) while keeping a's own head as
	// the expansion's root: the result should be a(q), i.e. a's label
	// survives and adopts the given subtree's root's children (here, just
	// "q"); p's own label is discarded.
	sb := buffer.IntBufferFromSlice([]int32{0})
	vb := buffer.BufferFromSlice([]string{"a"})

	subStructure := []int32{0, 1}
	subValues := []string{"q", "p"}

	delta, newIdx, err := ExpandValueIntoTree(subStructure, subValues, 0, sb, vb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delta != 1 {
		t.Fatalf("delta = %d, want 1", delta)
	}

	if vb.Get(newIdx) != "a" {
		t.Fatalf("expanded root head = %v, want a", vb.Get(newIdx))
	}

	children, err := ChildrenIndexes(newIdx, sb.Slice(0, sb.Len()))
	if err != nil {
		t.Fatalf("ChildrenIndexes: %v", err)
	}
	if len(children) != 1 || vb.Get(int(children[0])) != "q" {
		t.Fatalf("expanded root's children = %v, want [q] (p's own label is discarded)", children)
	}
}
