package linear

import (
	"testing"

	"github.com/gaissmai/ordtree/internal/buffer"
)

func TestRemoveValueReparentsChildren(t *testing.T) {
	// a(b(x)): structure=[0,1,1], values=[x,b,a].
	sb := buffer.IntBufferFromSlice([]int32{0, 1, 1})
	vb := buffer.BufferFromSlice([]string{"x", "b", "a"})

	delta, err := RemoveValue(1 /* b */, 2 /* a */, sb, vb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delta != -1 {
		t.Fatalf("delta = %d, want -1", delta)
	}
	if sb.Len() != 2 {
		t.Fatalf("length = %d, want 2", sb.Len())
	}

	aIdx := sb.Len() - 1
	if vb.Get(aIdx) != "a" {
		t.Fatalf("root head = %v, want a", vb.Get(aIdx))
	}

	children, err := ChildrenIndexes(aIdx, sb.Slice(0, sb.Len()))
	if err != nil {
		t.Fatalf("ChildrenIndexes: %v", err)
	}
	if len(children) != 1 || vb.Get(int(children[0])) != "x" {
		t.Fatalf("a's children = %v, want [x]", children)
	}
}

func TestRemoveTreeDeletesWholeSubtree(t *testing.T) {
	// a(b(x), c): structure=[0,1,0,2], values=[x,b,c,a].
	sb := buffer.IntBufferFromSlice([]int32{0, 1, 0, 2})
	vb := buffer.BufferFromSlice([]string{"x", "b", "c", "a"})

	delta, err := RemoveTree(1 /* b */, 3 /* a */, sb, vb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delta != -2 {
		t.Fatalf("delta = %d, want -2", delta)
	}
	if sb.Len() != 2 {
		t.Fatalf("length = %d, want 2", sb.Len())
	}

	aIdx := sb.Len() - 1
	children, err := ChildrenIndexes(aIdx, sb.Slice(0, sb.Len()))
	if err != nil {
		t.Fatalf("ChildrenIndexes: %v", err)
	}
	if len(children) != 1 || vb.Get(int(children[0])) != "c" {
		t.Fatalf("a's children = %v, want [c]", children)
	}
}
