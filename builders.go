package ordtree

import (
	"fmt"

	"github.com/gaissmai/ordtree/internal/node"
	"github.com/gaissmai/ordtree/internal/xerr"
)

// FromArraysHead reconstructs a tree from the root-first (pre-order)
// encoding: structure[0] is the root's child count, followed by its
// children's subtrees in left-to-right order, each itself encoded the same
// way. The library canonicalizes the result to storage order internally;
// callers of FromArraysHead never see the head-first layout again.
func FromArraysHead[T comparable](structure []int32, values []T) (Tree[T], error) {
	if len(structure) != len(values) {
		return Tree[T]{}, fmt.Errorf("%w: structure has %d elements, values has %d", xerr.ErrInvalidStructure, len(structure), len(values))
	}
	if len(structure) == 0 {
		return Empty[T](), nil
	}

	root, next, err := node.FromArraysHead(0, structure, values)
	if err != nil {
		return Tree[T]{}, err
	}
	if next != len(structure) {
		return Tree[T]{}, fmt.Errorf("%w: %d trailing elements after root's subtree", xerr.ErrInvalidStructure, len(structure)-next)
	}

	storageStructure, storageValues := node.ToArrays(root)
	return FromArrays(storageStructure, storageValues)
}

// Partial is one entry of the depth-annotated stack consumed by
// BuildTreeFromPartials: ReadyChildren must already be fully built, left to
// right.
type Partial[T comparable] struct {
	Depth         int
	Head          T
	ReadyChildren []Tree[T]
}

// BuildTreeFromPartials merges a depth-annotated stack of partially built
// nodes - leftmost entries being the deepest leaves - into a list of
// top-level trees. Walking left to right, an entry at depth d takes every
// still-open entry deeper than d as additional children, left to right,
// after its own ReadyChildren, before it is itself opened; whatever remains
// open once the stack is exhausted becomes a completed tree, in the order it
// was first opened.
func BuildTreeFromPartials[T comparable](stack []Partial[T]) []Tree[T] {
	converted := make([]node.Partial[T], len(stack))
	for i, p := range stack {
		children := make([]node.Node[T], 0, len(p.ReadyChildren))
		for _, c := range p.ReadyChildren {
			n, err := c.toNode()
			if err != nil {
				continue
			}
			children = append(children, n)
		}
		converted[i] = node.Partial[T]{Depth: p.Depth, Head: p.Head, ReadyChildren: children}
	}

	roots, _ := node.BuildTreeFromPartials(converted, nil)
	out := make([]Tree[T], len(roots))
	for i, r := range roots {
		out[i] = fromNode(r)
	}
	return out
}
