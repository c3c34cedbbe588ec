// Package buffer implements small growable, index-addressable sequences used as
// scratch storage by the linear tree algorithms in internal/linear.
//
// Buffer[T] and IntBuffer are the mutable working storage rented by a single
// mutation call: the caller grows them, shifts ranges around, and finally
// freezes the result into a read-only slice that escapes into a Tree value.
// Nothing here is safe for concurrent use, and nothing here is exported
// outside the module — mutability is an implementation technique, never a
// public contract.
package buffer

import "fmt"

// OutOfBoundsError reports an index or length supplied to a buffer operation
// falling outside the buffer. It is a contract violation, not a recoverable
// condition.
type OutOfBoundsError struct {
	Op  string
	Idx int
	Len int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("buffer: %s: index %d out of bounds for length %d", e.Op, e.Idx, e.Len)
}

func oob(op string, idx, length int) error {
	return &OutOfBoundsError{Op: op, Idx: idx, Len: length}
}

// IntBuffer is a growable buffer of int32, used for the structure array
// (child counts) of the linear tree encoding.
type IntBuffer struct {
	items []int32
}

// NewIntBuffer returns an empty buffer with the given capacity hint.
func NewIntBuffer(capacity int) *IntBuffer {
	return &IntBuffer{items: make([]int32, 0, capacity)}
}

// IntBufferFromSlice copies slice into a new buffer.
func IntBufferFromSlice(slice []int32) *IntBuffer {
	b := &IntBuffer{items: make([]int32, len(slice))}
	copy(b.items, slice)
	return b
}

// Len reports the number of elements currently in the buffer.
func (b *IntBuffer) Len() int { return len(b.items) }

// IsEmpty reports whether the buffer holds no elements.
func (b *IntBuffer) IsEmpty() bool { return len(b.items) == 0 }

// Get returns the element at i.
func (b *IntBuffer) Get(i int) int32 {
	if i < 0 || i >= len(b.items) {
		panic(oob("Get", i, len(b.items)))
	}
	return b.items[i]
}

// Set overwrites the element at i.
func (b *IntBuffer) Set(i int, v int32) {
	if i < 0 || i >= len(b.items) {
		panic(oob("Set", i, len(b.items)))
	}
	b.items[i] = v
}

// Push appends a single value at the end.
func (b *IntBuffer) Push(v int32) {
	b.items = append(b.items, v)
}

// AppendAll appends every value of other, in order.
func (b *IntBuffer) AppendAll(other []int32) {
	b.items = append(b.items, other...)
}

// InsertAt inserts v before index, shifting everything from index onward one
// slot to the right.
func (b *IntBuffer) InsertAt(index int, v int32) {
	if index < 0 || index > len(b.items) {
		panic(oob("InsertAt", index, len(b.items)))
	}
	b.items = append(b.items, 0)
	copy(b.items[index+1:], b.items[index:])
	b.items[index] = v
}

// InsertSliceAt inserts every value of values before index, preserving their
// relative order.
func (b *IntBuffer) InsertSliceAt(index int, values []int32) {
	if index < 0 || index > len(b.items) {
		panic(oob("InsertSliceAt", index, len(b.items)))
	}
	if len(values) == 0 {
		return
	}
	b.items = append(b.items, values...) // grow capacity
	copy(b.items[index+len(values):], b.items[index:len(b.items)-len(values)])
	copy(b.items[index:], values)
}

// RemoveRange removes the half-open range [from, to), preserving the order of
// the remaining elements.
func (b *IntBuffer) RemoveRange(from, to int) {
	if from < 0 || to > len(b.items) || from > to {
		panic(oob("RemoveRange", to, len(b.items)))
	}
	b.items = append(b.items[:from], b.items[to:]...)
}

// ShiftRight opens a gap of by uninitialized slots starting at index from,
// moving the elements from from onward by slots to the right. The caller is
// responsible for filling the gap before reading from it.
func (b *IntBuffer) ShiftRight(from, by int) {
	if from < 0 || from > len(b.items) {
		panic(oob("ShiftRight", from, len(b.items)))
	}
	if by <= 0 {
		return
	}
	b.items = append(b.items, make([]int32, by)...)
	copy(b.items[from+by:], b.items[from:len(b.items)-by])
}

// ShiftLeft closes a gap of by slots starting at from, discarding them.
func (b *IntBuffer) ShiftLeft(from, by int) {
	b.RemoveRange(from, from+by)
}

// Slice returns a read-only view of [from, to).
func (b *IntBuffer) Slice(from, to int) []int32 {
	if from < 0 || to > len(b.items) || from > to {
		panic(oob("Slice", to, len(b.items)))
	}
	return b.items[from:to:to]
}

// IntoFrozen yields an immutable snapshot; the buffer must not be reused
// after this call shares its backing array with the result.
func (b *IntBuffer) IntoFrozen() []int32 {
	out := b.items
	b.items = nil
	return out
}

// Buffer is a growable, index-addressable sequence of T, used for the values
// array of the linear tree encoding.
type Buffer[T any] struct {
	items []T
}

// NewBuffer returns an empty buffer with the given capacity hint.
func NewBuffer[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{items: make([]T, 0, capacity)}
}

// BufferFromSlice copies slice into a new buffer.
func BufferFromSlice[T any](slice []T) *Buffer[T] {
	b := &Buffer[T]{items: make([]T, len(slice))}
	copy(b.items, slice)
	return b
}

// BufferFromIter drains seq into a new buffer, preserving order.
func BufferFromIter[T any](seq func(yield func(T) bool)) *Buffer[T] {
	b := &Buffer[T]{}
	seq(func(v T) bool {
		b.items = append(b.items, v)
		return true
	})
	return b
}

func (b *Buffer[T]) Len() int      { return len(b.items) }
func (b *Buffer[T]) IsEmpty() bool { return len(b.items) == 0 }

func (b *Buffer[T]) Get(i int) T {
	if i < 0 || i >= len(b.items) {
		panic(oob("Get", i, len(b.items)))
	}
	return b.items[i]
}

func (b *Buffer[T]) Set(i int, v T) {
	if i < 0 || i >= len(b.items) {
		panic(oob("Set", i, len(b.items)))
	}
	b.items[i] = v
}

func (b *Buffer[T]) Push(v T) {
	b.items = append(b.items, v)
}

func (b *Buffer[T]) AppendAll(other []T) {
	b.items = append(b.items, other...)
}

func (b *Buffer[T]) InsertAt(index int, v T) {
	if index < 0 || index > len(b.items) {
		panic(oob("InsertAt", index, len(b.items)))
	}
	var zero T
	b.items = append(b.items, zero)
	copy(b.items[index+1:], b.items[index:])
	b.items[index] = v
}

func (b *Buffer[T]) InsertSliceAt(index int, values []T) {
	if index < 0 || index > len(b.items) {
		panic(oob("InsertSliceAt", index, len(b.items)))
	}
	if len(values) == 0 {
		return
	}
	b.items = append(b.items, values...)
	copy(b.items[index+len(values):], b.items[index:len(b.items)-len(values)])
	copy(b.items[index:], values)
}

func (b *Buffer[T]) RemoveRange(from, to int) {
	if from < 0 || to > len(b.items) || from > to {
		panic(oob("RemoveRange", to, len(b.items)))
	}
	b.items = append(b.items[:from], b.items[to:]...)
}

func (b *Buffer[T]) ShiftRight(from, by int) {
	if from < 0 || from > len(b.items) {
		panic(oob("ShiftRight", from, len(b.items)))
	}
	if by <= 0 {
		return
	}
	var zero T
	for i := 0; i < by; i++ {
		b.items = append(b.items, zero)
	}
	copy(b.items[from+by:], b.items[from:len(b.items)-by])
}

func (b *Buffer[T]) ShiftLeft(from, by int) {
	b.RemoveRange(from, from+by)
}

func (b *Buffer[T]) Slice(from, to int) []T {
	if from < 0 || to > len(b.items) || from > to {
		panic(oob("Slice", to, len(b.items)))
	}
	return b.items[from:to:to]
}

// IntoFrozen yields an immutable snapshot; the buffer must not be reused
// after this call shares its backing array with the result.
func (b *Buffer[T]) IntoFrozen() []T {
	out := b.items
	b.items = nil
	return out
}
