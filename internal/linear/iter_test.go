package linear

import (
	"reflect"
	"testing"

	"github.com/gaissmai/ordtree/internal/node"
)

// abcdefg builds the linear encoding of a(b(c), d(e(f)), g).
func abcdefg() ([]int32, []string) {
	n := node.Node[string]{
		Head: "a",
		Children: []node.Node[string]{
			{Head: "b", Children: []node.Node[string]{node.NewLeaf("c")}},
			{Head: "d", Children: []node.Node[string]{
				{Head: "e", Children: []node.Node[string]{node.NewLeaf("f")}},
			}},
			node.NewLeaf("g"),
		},
	}
	return node.ToArrays(n)
}

func TestNodeIndexIteratorDepthFirst(t *testing.T) {
	structure, values := abcdefg()
	root := len(structure) - 1

	var got []string
	for idx, err := range NodeIndexIterator(root, structure, true) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, values[idx])
	}

	want := []string{"a", "b", "c", "d", "e", "f", "g"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNodeIndexIteratorBreadthFirst(t *testing.T) {
	structure, values := abcdefg()
	root := len(structure) - 1

	var got []string
	for idx, err := range NodeIndexIterator(root, structure, false) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, values[idx])
	}

	want := []string{"a", "b", "d", "g", "c", "e", "f"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNodeIndexIteratorWithLimitBreadthFirst(t *testing.T) {
	structure, values := abcdefg()
	root := len(structure) - 1

	var got []string
	for idx, err := range NodeIndexIteratorWithLimit(root, structure, false, 2) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, values[idx])
	}

	want := []string{"a", "b", "d", "g"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
