package buffer

import (
	"reflect"
	"testing"
)

func TestIntBufferInsertAt(t *testing.T) {
	tests := []struct {
		name  string
		start []int32
		index int
		value int32
		want  []int32
	}{
		{"prepend", []int32{1, 2, 3}, 0, 9, []int32{9, 1, 2, 3}},
		{"append", []int32{1, 2, 3}, 3, 9, []int32{1, 2, 3, 9}},
		{"middle", []int32{1, 2, 3}, 1, 9, []int32{1, 9, 2, 3}},
		{"into empty", nil, 0, 9, []int32{9}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := IntBufferFromSlice(tc.start)
			b.InsertAt(tc.index, tc.value)
			got := b.IntoFrozen()
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("InsertAt(%d, %d) = %v, want %v", tc.index, tc.value, got, tc.want)
			}
		})
	}
}

func TestIntBufferInsertSliceAt(t *testing.T) {
	b := IntBufferFromSlice([]int32{1, 2, 3, 4})
	b.InsertSliceAt(2, []int32{8, 9})
	got := b.IntoFrozen()
	want := []int32{1, 2, 8, 9, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InsertSliceAt = %v, want %v", got, want)
	}
}

func TestIntBufferRemoveRange(t *testing.T) {
	b := IntBufferFromSlice([]int32{1, 2, 3, 4, 5})
	b.RemoveRange(1, 3)
	got := b.IntoFrozen()
	want := []int32{1, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveRange(1,3) = %v, want %v", got, want)
	}
}

func TestIntBufferShiftRightLeft(t *testing.T) {
	b := IntBufferFromSlice([]int32{1, 2, 3})
	b.ShiftRight(1, 2)
	if b.Len() != 5 {
		t.Fatalf("ShiftRight: Len() = %d, want 5", b.Len())
	}
	b.Set(1, 7)
	b.Set(2, 8)
	got := b.IntoFrozen()
	want := []int32{1, 7, 8, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ShiftRight fill = %v, want %v", got, want)
	}

	b2 := IntBufferFromSlice([]int32{1, 7, 8, 2, 3})
	b2.ShiftLeft(1, 2)
	got2 := b2.IntoFrozen()
	want2 := []int32{1, 2, 3}
	if !reflect.DeepEqual(got2, want2) {
		t.Errorf("ShiftLeft = %v, want %v", got2, want2)
	}
}

func TestIntBufferOutOfBounds(t *testing.T) {
	b := IntBufferFromSlice([]int32{1, 2, 3})

	assertPanics := func(name string, fn func()) {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		})
	}

	assertPanics("Get", func() { b.Get(5) })
	assertPanics("Set", func() { b.Set(-1, 0) })
	assertPanics("InsertAt", func() { b.InsertAt(10, 0) })
	assertPanics("RemoveRange", func() { b.RemoveRange(2, 10) })
	assertPanics("Slice", func() { b.Slice(0, 10) })
}

func TestBufferGeneric(t *testing.T) {
	b := BufferFromSlice([]string{"a", "b", "c"})
	b.InsertAt(1, "x")
	got := b.IntoFrozen()
	want := []string{"a", "x", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Buffer[string].InsertAt = %v, want %v", got, want)
	}
}

func TestBufferFromIter(t *testing.T) {
	seq := func(yield func(int) bool) {
		for _, v := range []int{1, 2, 3} {
			if !yield(v) {
				return
			}
		}
	}
	b := BufferFromIter(seq)
	got := b.IntoFrozen()
	want := []int{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BufferFromIter = %v, want %v", got, want)
	}
}
