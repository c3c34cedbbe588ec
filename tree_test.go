package ordtree

import (
	"testing"

	"github.com/gaissmai/ordtree/internal/node"
)

// nodeABCDEFG builds a(b(c), d(e(f)), g), the tree from the seed scenario
// S3: distinct depth-first and breadth-first traversal order.
func nodeABCDEFG() node.Node[string] {
	return node.Node[string]{
		Head: "a",
		Children: []node.Node[string]{
			{Head: "b", Children: []node.Node[string]{node.NewLeaf("c")}},
			{Head: "d", Children: []node.Node[string]{
				{Head: "e", Children: []node.Node[string]{node.NewLeaf("f")}},
			}},
			node.NewLeaf("g"),
		},
	}
}

func TestEmptyTree(t *testing.T) {
	var tr Tree[string]
	if !tr.IsEmpty() {
		t.Fatalf("zero value should be empty")
	}
	if tr.Size() != 0 || tr.Height() != 0 {
		t.Fatalf("empty tree should have size 0 and height 0, got size=%d height=%d", tr.Size(), tr.Height())
	}
	if _, ok := tr.Root(); ok {
		t.Fatalf("empty tree should have no root")
	}
}

func TestLeafSizeAndHeight(t *testing.T) {
	tr := Leaf("a")
	if tr.Size() != 1 || tr.Height() != 1 {
		t.Fatalf("leaf should have size 1, height 1, got size=%d height=%d", tr.Size(), tr.Height())
	}
}

func TestFromArraysRoundTrip(t *testing.T) {
	tr := fromNode(nodeABCDEFG())
	structure, values, err := tr.toArrays()
	if err != nil {
		t.Fatalf("toArrays: %v", err)
	}

	back, err := FromArrays(structure, values)
	if err != nil {
		t.Fatalf("FromArrays: %v", err)
	}

	if back.Size() != tr.Size() || back.Height() != tr.Height() {
		t.Fatalf("round trip mismatch: size/height differ")
	}

	head, _ := back.Root()
	if head != "a" {
		t.Fatalf("root = %q, want a", head)
	}
}

func TestFromArraysRejectsMismatchedLengths(t *testing.T) {
	_, err := FromArrays([]int32{0, 0}, []string{"a"})
	if err == nil {
		t.Fatalf("expected an error for mismatched array lengths")
	}
}

// S1: structure=[0,0,0,3], values=[d,c,b,a] encodes a(b,c,d); indices are
// scanned in storage (reverse-sibling) order.
func TestSeedS1ChildrenIndexes(t *testing.T) {
	structure := []int32{0, 0, 0, 3}
	values := []string{"d", "c", "b", "a"}

	tr, err := FromArrays(structure, values)
	if err != nil {
		t.Fatalf("FromArrays: %v", err)
	}

	var got []string
	for v := range tr.Values(DepthFirst) {
		got = append(got, v)
	}
	want := []string{"a", "b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
