// Package ordtree is an immutable datastructure for rooted, ordered, labeled
// trees of arbitrary arity.
//
// A tree is either empty or has exactly one root; every node carries a head
// value of type T and an ordered (left to right, not sorted) list of
// children. Every operation that changes a tree returns a new Tree value;
// the original is left untouched, sharing whatever structure it can with the
// result. This makes Tree safe to read concurrently while other goroutines
// build new versions from it.
//
// Two encodings of the same tree are supported and interchangeable:
//
//   - the recursive encoding (internal/node), a plain Go struct tree, cheap
//     to build incrementally one branch at a time;
//   - the linear encoding (internal/linear), two parallel arrays - a child
//     count per node and a head value per node, in post-order - cheap to
//     store, serialize, and scan without recursion.
//
// A Tree picks whichever encoding is cheaper for the operation that produced
// it and converts lazily between the two; callers never need to know which
// one is live.
//
// Every mutating operation comes in four flavors, crossed along two axes:
//
//   - lax vs distinct: lax never touches existing structure beyond the
//     insertion point; distinct additionally merges a newly inserted node
//     into an existing direct sibling that already carries the same head
//     value, so that no node ever has two direct children with equal heads.
//   - prepend vs append: whether the new material becomes the new leftmost
//     or rightmost child (or branch) at its insertion point.
//
// Path-addressed operations - those that locate a node by walking a sequence
// of head values from the root - report success or failure through Result[T]
// rather than a plain error, since "the path didn't match" is an ordinary,
// expected outcome and the caller's original tree is always still available
// on the Err side.
package ordtree
