package node

import (
	"reflect"
	"testing"
)

func tree() Node[string] {
	return Node[string]{
		Head: "a",
		Children: []Node[string]{
			{Head: "b", Children: []Node[string]{NewLeaf("x")}},
			{Head: "c"},
		},
	}
}

func TestSizeAndHeight(t *testing.T) {
	tr := tree()
	if tr.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", tr.Size())
	}
	if tr.Height() != 3 {
		t.Fatalf("Height() = %d, want 3", tr.Height())
	}
}

func TestToArraysFromArraysRoundTrip(t *testing.T) {
	tr := tree()
	structure, values := ToArrays(tr)

	back, err := FromArrays(len(structure)-1, structure, values)
	if err != nil {
		t.Fatalf("FromArrays: %v", err)
	}
	if !reflect.DeepEqual(tr, back) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", back, tr)
	}
}

func TestValuesIteratorOrder(t *testing.T) {
	var got []string
	for v := range ValuesIterator(tree(), true) {
		got = append(got, v)
	}
	want := []string{"a", "b", "x", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestValuesIteratorBreadthFirst(t *testing.T) {
	var got []string
	for v := range ValuesIterator(tree(), false) {
		got = append(got, v)
	}
	want := []string{"a", "b", "c", "x"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTreesIteratorBreadthFirst(t *testing.T) {
	var got []string
	for n := range TreesIterator(tree(), false) {
		got = append(got, n.Head)
	}
	want := []string{"a", "b", "c", "x"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestValuesIteratorWithFilterStopsLazily(t *testing.T) {
	var got []string
	count := 0
	for v := range ValuesIteratorWithFilter(tree(), true, func(s string) bool { return s != "x" }) {
		count++
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if count != 2 {
		t.Fatalf("visited %d nodes before stopping, want 2 (lazy single-pass)", count)
	}
}

func TestTreesIteratorWithFilterAndLimit(t *testing.T) {
	var got []string
	filter := func(n Node[string]) bool { return n.Head != "a" }
	for n := range TreesIteratorWithFilterAndLimit(tree(), true, 2, filter) {
		got = append(got, n.Head)
	}
	want := []string{"b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBranchesIterator(t *testing.T) {
	var got [][]string
	for b := range BranchesIterator(tree()) {
		got = append(got, b)
	}
	want := [][]string{{"a", "b", "x"}, {"a", "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInsertBranch(t *testing.T) {
	tr := NewLeaf("a")
	tr = InsertBranch(tr, []string{"b", "c"})

	if len(tr.Children) != 1 || tr.Children[0].Head != "b" {
		t.Fatalf("unexpected children: %+v", tr.Children)
	}
	if len(tr.Children[0].Children) != 1 || tr.Children[0].Children[0].Head != "c" {
		t.Fatalf("unexpected grandchildren: %+v", tr.Children[0].Children)
	}
}

func TestEnsureChildDistinctMergesSameHead(t *testing.T) {
	tr := Node[string]{Head: "a", Children: []Node[string]{
		{Head: "b", Children: []Node[string]{NewLeaf("x")}},
	}}

	merged := EnsureChildDistinct(tr, Node[string]{Head: "b", Children: []Node[string]{NewLeaf("y")}}, true)

	if len(merged.Children) != 1 {
		t.Fatalf("expected exactly one child after merge, got %d", len(merged.Children))
	}

	b := merged.Children[0]
	if b.Head != "b" || len(b.Children) != 2 {
		t.Fatalf("unexpected merged child: %+v", b)
	}
}

func TestMakeChildrenDistinct(t *testing.T) {
	tr := Node[string]{Head: "a", Children: []Node[string]{
		{Head: "b", Children: []Node[string]{NewLeaf("x")}},
		{Head: "b", Children: []Node[string]{NewLeaf("y")}},
	}}

	merged := MakeChildrenDistinct(tr)
	if len(merged.Children) != 1 {
		t.Fatalf("expected one distinct child, got %d", len(merged.Children))
	}
	if len(merged.Children[0].Children) != 2 {
		t.Fatalf("expected merged b to have 2 children, got %d", len(merged.Children[0].Children))
	}
}

func TestBuildTreeFromPartials(t *testing.T) {
	// a(b(x), c) flattened leftmost-deepest-first: x at depth 2, b at depth
	// 1 (closing x as its child), c at depth 1, a at depth 0 (closing both).
	stack := []Partial[string]{
		{Depth: 2, Head: "x"},
		{Depth: 1, Head: "b"},
		{Depth: 1, Head: "c"},
		{Depth: 0, Head: "a"},
	}

	roots, tail := BuildTreeFromPartials(stack, nil)
	if len(tail) != 0 {
		t.Fatalf("expected no pending tail, got %+v", tail)
	}
	if len(roots) != 1 {
		t.Fatalf("expected exactly one root tree, got %d", len(roots))
	}

	got := roots[0]
	if got.Head != "a" || len(got.Children) != 2 {
		t.Fatalf("unexpected tree: %+v", got)
	}
	if got.Children[0].Head != "b" || len(got.Children[0].Children) != 1 || got.Children[0].Children[0].Head != "x" {
		t.Fatalf("unexpected first child: %+v", got.Children[0])
	}
	if got.Children[1].Head != "c" {
		t.Fatalf("unexpected second child: %+v", got.Children[1])
	}
}

func TestBuildTreeFromPartialsMultipleRoots(t *testing.T) {
	stack := []Partial[string]{
		{Depth: 0, Head: "a"},
		{Depth: 0, Head: "b"},
	}

	roots, _ := BuildTreeFromPartials(stack, nil)
	if len(roots) != 2 || roots[0].Head != "a" || roots[1].Head != "b" {
		t.Fatalf("unexpected roots: %+v", roots)
	}
}

func TestMakeTreeDistinctLevels(t *testing.T) {
	tr := Node[string]{Head: "a", Children: []Node[string]{
		{Head: "b", Children: []Node[string]{{Head: "x"}, {Head: "x"}}},
		{Head: "b", Children: []Node[string]{{Head: "y"}}},
	}}

	unchanged0 := MakeTreeDistinct(tr, 0)
	if len(unchanged0.Children) != 2 {
		t.Fatalf("level 0 should be a no-op, got %+v", unchanged0)
	}

	unchanged1 := MakeTreeDistinct(tr, 1)
	if len(unchanged1.Children) != 2 {
		t.Fatalf("level 1 should be a no-op, got %+v", unchanged1)
	}

	level2 := MakeTreeDistinct(tr, 2)
	if len(level2.Children) != 1 {
		t.Fatalf("level 2 should merge root's children, got %+v", level2)
	}
	if len(level2.Children[0].Children) != 3 {
		t.Fatalf("level 2 must not merge grandchildren, got %+v", level2.Children[0].Children)
	}

	level3 := MakeTreeDistinct(tr, 3)
	if len(level3.Children[0].Children) != 2 {
		t.Fatalf("level 3 should also merge grandchildren, got %+v", level3.Children[0].Children)
	}
}
