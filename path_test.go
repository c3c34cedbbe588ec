package ordtree

import "testing"

func abc2() Tree[string] {
	// a(b(c))
	return Leaf("a").InsertChild(Leaf("b").InsertChild(Leaf("c"), true), true)
}

// S5: a(b(c)).modifyValueAt(["a","c"], f) returns Err with the unchanged
// tree, since "c" is not a direct child of "a".
func TestSeedS5PathNotFound(t *testing.T) {
	tr := abc2()
	result := tr.ModifyValueAt([]string{"a", "c"}, func(s string) string { return s + "!" })

	if result.IsOk() {
		t.Fatalf("expected Err for an unmatched path")
	}
	if result.Err() == nil {
		t.Fatalf("expected a non-nil error on Err")
	}

	head, _ := result.Tree().Root()
	origHead, _ := tr.Root()
	if head != origHead {
		t.Fatalf("Err() should carry the unchanged original tree")
	}
}

func TestUpdateValueAtMatch(t *testing.T) {
	tr := abc2()
	result := tr.UpdateValueAt([]string{"a", "b"}, "z")
	if !result.IsOk() {
		t.Fatalf("expected Ok for a matched path")
	}

	updated := result.Tree()
	got := updated.ChildrenValues()
	if len(got) != 1 || got[0] != "z" {
		t.Fatalf("expected child renamed to z, got %v", got)
	}
}

func TestRemoveValueAtReparents(t *testing.T) {
	tr := abc2()
	result := tr.RemoveValueAt([]string{"a", "b"})
	if !result.IsOk() {
		t.Fatalf("expected Ok")
	}

	got := result.Tree().ChildrenValues()
	if len(got) != 1 || got[0] != "c" {
		t.Fatalf("expected c re-parented under a, got %v", got)
	}
}

func TestRemoveTreeAt(t *testing.T) {
	tr := abc2()
	result := tr.RemoveTreeAt([]string{"a", "b"})
	if !result.IsOk() {
		t.Fatalf("expected Ok")
	}
	if got := result.Tree().ChildrenValues(); len(got) != 0 {
		t.Fatalf("expected no children left, got %v", got)
	}
}

func TestInsertLeafAtExtendsMissingPath(t *testing.T) {
	tr := Leaf("a")
	extended := tr.InsertLeafAt([]string{"a", "b", "c"}, "d")

	var got []string
	for v := range extended.Values(DepthFirst) {
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

func TestContainsPathAndBranch(t *testing.T) {
	tr := abc2()
	if !tr.ContainsPath([]string{"a", "b"}) {
		t.Fatalf("expected a,b to be a contained path")
	}
	if tr.ContainsPath([]string{"a", "c"}) {
		t.Fatalf("a,c should not be a contained path")
	}
	if !tr.ContainsBranch([]string{"a", "b", "c"}) {
		t.Fatalf("expected a,b,c to be a full branch")
	}
	if tr.ContainsBranch([]string{"a", "b"}) {
		t.Fatalf("a,b is a path but not a leaf branch")
	}
}

type keyed struct {
	id   int
	name string
}

func TestExtractorForm(t *testing.T) {
	tr := Leaf(keyed{1, "root"}).InsertChild(Leaf(keyed{2, "child"}), true)

	result := ModifyValueAtBy(tr, []int{1, 2}, func(k keyed) int { return k.id }, func(k keyed) keyed {
		k.name = "renamed"
		return k
	})
	if !result.IsOk() {
		t.Fatalf("expected Ok for matched extractor path")
	}

	children := result.Tree().Children()
	if len(children) != 1 {
		t.Fatalf("expected one child")
	}
	head, _ := children[0].Root()
	if head.name != "renamed" {
		t.Fatalf("expected renamed child, got %+v", head)
	}
}
