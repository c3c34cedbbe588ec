// Package xerr holds the sentinel errors shared by internal/linear,
// internal/node and the public ordtree facade, so that all three can
// participate in the same errors.Is taxonomy without an import cycle.
package xerr

import "errors"

// ErrInvalidStructure reports that a structure array violates invariants
// I1-I5: a negative child count, or a child-count scan that runs past the
// bounds of the array.
var ErrInvalidStructure = errors.New("ordtree: invalid structure")

// ErrOutOfBounds reports that an index or length supplied to a low-level
// index function falls outside the backing arrays.
var ErrOutOfBounds = errors.New("ordtree: index out of bounds")
