package ordtree

import "testing"

func FuzzFromArrays(f *testing.F) {
	f.Add([]byte{0, 0, 0, 3}, "dcba")
	f.Add([]byte{0, 1}, "ba")
	f.Add([]byte{}, "")

	f.Fuzz(func(t *testing.T, rawStructure []byte, rawValues string) {
		runes := []rune(rawValues)

		n := len(rawStructure)
		if len(runes) < n {
			n = len(runes)
		}

		structure := make([]int32, n)
		values := make([]string, n)
		for i := 0; i < n; i++ {
			structure[i] = int32(rawStructure[i])
			values[i] = string(runes[i])
		}

		tr, err := FromArrays(structure, values)
		if err != nil {
			return
		}

		if tr.Size() != len(structure) {
			t.Fatalf("Size() = %d, want %d", tr.Size(), len(structure))
		}

		// Round trip through the recursive encoding and back must preserve
		// size and height.
		nd, nerr := tr.toNode()
		if nerr != nil {
			t.Fatalf("toNode: %v", nerr)
		}
		s2, v2, aerr := fromNode(nd).toArrays()
		if aerr != nil {
			t.Fatalf("toArrays: %v", aerr)
		}
		back, err := FromArrays(s2, v2)
		if err != nil {
			t.Fatalf("FromArrays on round-tripped arrays: %v", err)
		}
		if back.Size() != tr.Size() || back.Height() != tr.Height() {
			t.Fatalf("round trip mismatch: size/height differ")
		}
	})
}
