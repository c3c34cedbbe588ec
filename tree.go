package ordtree

import (
	"errors"
	"fmt"

	"github.com/gaissmai/ordtree/internal/linear"
	"github.com/gaissmai/ordtree/internal/node"
	"github.com/gaissmai/ordtree/internal/xerr"
)

// ErrEmpty is returned by operations that require a non-empty tree.
var ErrEmpty = errors.New("ordtree: tree is empty")

// ErrInvalidStructure reports that a linear (structure, values) array pair
// violates the post-order encoding's invariants.
var ErrInvalidStructure = xerr.ErrInvalidStructure

// ErrNotFound is reported by path-addressed operations that could not locate
// their target, and by Result.Err().
var ErrNotFound = errors.New("ordtree: path not found")

type repr int

const (
	reprEmpty repr = iota
	reprInflated
	reprDeflated
)

// Tree is an immutable rooted ordered tree of T. The zero value is an empty
// tree, ready to use.
type Tree[T comparable] struct {
	kind repr

	root node.Node[T]

	structure []int32
	values    []T
}

// Empty returns the empty tree.
func Empty[T comparable]() Tree[T] {
	return Tree[T]{kind: reprEmpty}
}

// Leaf returns a single-node tree holding head.
func Leaf[T comparable](head T) Tree[T] {
	return Tree[T]{kind: reprInflated, root: node.NewLeaf(head)}
}

// fromNode wraps n as an inflated tree.
func fromNode[T comparable](n node.Node[T]) Tree[T] {
	return Tree[T]{kind: reprInflated, root: n}
}

// FromArrays reconstructs a tree from a linear post-order encoding: structure
// and values must have equal, non-zero length, or ErrInvalidStructure is
// returned (use Empty for the empty tree instead of empty arrays).
func FromArrays[T comparable](structure []int32, values []T) (Tree[T], error) {
	if len(structure) != len(values) {
		return Tree[T]{}, fmt.Errorf("%w: structure has %d elements, values has %d", xerr.ErrInvalidStructure, len(structure), len(values))
	}
	if len(structure) == 0 {
		return Tree[T]{}, fmt.Errorf("%w: empty arrays", xerr.ErrInvalidStructure)
	}

	// Validate by attempting a full conversion; FromArrays in internal/node
	// walks every declared child and fails on any I1-I5 violation, and the
	// root's subtree must cover every element of the arrays.
	n, err := node.FromArrays(len(structure)-1, structure, values)
	if err != nil {
		return Tree[T]{}, err
	}
	if n.Size() != len(structure) {
		return Tree[T]{}, fmt.Errorf("%w: root subtree covers %d of %d elements", xerr.ErrInvalidStructure, n.Size(), len(structure))
	}

	s := make([]int32, len(structure))
	copy(s, structure)
	v := make([]T, len(values))
	copy(v, values)

	return Tree[T]{kind: reprDeflated, structure: s, values: v}, nil
}

// IsEmpty reports whether t holds no nodes.
func (t Tree[T]) IsEmpty() bool {
	return t.kind == reprEmpty
}

// Size returns the number of nodes in t.
func (t Tree[T]) Size() int {
	switch t.kind {
	case reprEmpty:
		return 0
	case reprDeflated:
		return len(t.structure)
	default:
		return t.root.Size()
	}
}

// Height returns the longest root-to-leaf path length, in nodes; an empty
// tree has height 0.
func (t Tree[T]) Height() int {
	switch t.kind {
	case reprEmpty:
		return 0
	case reprDeflated:
		return linear.CalculateHeight(len(t.structure)-1, t.structure)
	default:
		return t.root.Height()
	}
}

// childSlice extracts the contiguous (structure, values) range belonging to
// the subtree rooted at idx, re-expressed as a standalone deflated encoding:
// the post-order scheme is purely relative, so a subtree's own range is
// already a valid encoding of itself once sliced out.
func childSlice[T comparable](idx int, structure []int32, values []T) (Tree[T], error) {
	size, err := linear.SubtreeSize(idx, structure)
	if err != nil {
		return Tree[T]{}, err
	}
	start := idx - size + 1
	s := make([]int32, size)
	copy(s, structure[start:idx+1])
	v := make([]T, size)
	copy(v, values[start:idx+1])
	return Tree[T]{kind: reprDeflated, structure: s, values: v}, nil
}

// childIndexes returns the direct children's indexes of t's root, in
// left-to-right order, for a deflated tree.
func (t Tree[T]) childIndexes() ([]int32, error) {
	raw, err := linear.ChildrenIndexes(len(t.structure)-1, t.structure)
	if err != nil {
		return nil, err
	}
	// storage order is rightmost-first; reverse to left-to-right.
	out := make([]int32, len(raw))
	for i, c := range raw {
		out[len(raw)-1-i] = c
	}
	return out, nil
}

// Root returns t's root value and true, or the zero value and false if t is
// empty.
func (t Tree[T]) Root() (T, bool) {
	var zero T
	switch t.kind {
	case reprEmpty:
		return zero, false
	case reprDeflated:
		return t.values[len(t.values)-1], true
	default:
		return t.root.Head, true
	}
}

// toNode returns t's recursive encoding, converting if necessary.
func (t Tree[T]) toNode() (node.Node[T], error) {
	switch t.kind {
	case reprEmpty:
		return node.Node[T]{}, ErrEmpty
	case reprDeflated:
		return node.FromArrays(len(t.structure)-1, t.structure, t.values)
	default:
		return t.root, nil
	}
}

// toArrays returns t's linear post-order encoding, converting if necessary.
func (t Tree[T]) toArrays() ([]int32, []T, error) {
	switch t.kind {
	case reprEmpty:
		return nil, nil, ErrEmpty
	case reprDeflated:
		return t.structure, t.values, nil
	default:
		s, v := node.ToArrays(t.root)
		return s, v, nil
	}
}
