package linear

// LeftmostIndexOfChildValue returns the index of parentI's conceptually
// leftmost direct child whose head equals value. Children are stored
// rightmost-first, so the conceptually leftmost match is the last one found
// scanning the raw (storage-order) children list.
func LeftmostIndexOfChildValue[T comparable](value T, parentI int, structure []int32, values []T) (int, bool, error) {
	children, err := ChildrenIndexes(parentI, structure)
	if err != nil {
		return 0, false, err
	}

	for i := len(children) - 1; i >= 0; i-- {
		c := children[i]
		if values[c] == value {
			return int(c), true, nil
		}
	}

	return 0, false, nil
}

// RightmostIndexOfChildValue returns the index of parentI's conceptually
// rightmost direct child whose head equals value: the first match in
// storage (rightmost-first) order.
func RightmostIndexOfChildValue[T comparable](value T, parentI int, structure []int32, values []T) (int, bool, error) {
	children, err := ChildrenIndexes(parentI, structure)
	if err != nil {
		return 0, false, err
	}

	for _, c := range children {
		if values[c] == value {
			return int(c), true, nil
		}
	}

	return 0, false, nil
}

// ChildrenIndexesFor returns every direct child of parentI whose head equals
// value, in storage (reverse-sibling) order.
func ChildrenIndexesFor[T comparable](value T, parentI int, structure []int32, values []T) ([]int32, error) {
	children, err := ChildrenIndexes(parentI, structure)
	if err != nil {
		return nil, err
	}

	out := make([]int32, 0, len(children))

	for _, c := range children {
		if values[c] == value {
			out = append(out, c)
		}
	}

	return out, nil
}

// FollowResult is the outcome of FollowPath.
type FollowResult[T any] struct {
	// Matched holds the indices successfully matched, deepest last.
	Matched []int
	// NextUnmatched is the path element that failed to match, if any.
	NextUnmatched   T
	HasNextUnmatched bool
	// Remaining is the unmatched path suffix after NextUnmatched.
	Remaining []T
	// FullyMatched is true iff the whole path matched and terminated at a node.
	FullyMatched bool
}

// FollowPath walks path from root, comparing path elements directly to node
// values. root is normally the tree's root index (n-1); n == 0 denotes an
// empty tree.
func FollowPath[T comparable](path []T, root, n int, structure []int32, values []T) (FollowResult[T], error) {
	var res FollowResult[T]

	if n == 0 {
		if len(path) == 0 {
			res.FullyMatched = true
			return res, nil
		}

		res.NextUnmatched = path[0]
		res.HasNextUnmatched = true
		res.Remaining = path[1:]
		return res, nil
	}

	if len(path) == 0 {
		res.FullyMatched = true
		return res, nil
	}

	if values[root] != path[0] {
		res.NextUnmatched = path[0]
		res.HasNextUnmatched = true
		res.Remaining = path[1:]
		return res, nil
	}

	res.Matched = append(res.Matched, root)
	current := root

	for idx := 1; idx < len(path); idx++ {
		childIdx, ok, err := LeftmostIndexOfChildValue(path[idx], current, structure, values)
		if err != nil {
			return res, err
		}

		if !ok {
			res.NextUnmatched = path[idx]
			res.HasNextUnmatched = true
			res.Remaining = path[idx+1:]
			return res, nil
		}

		res.Matched = append(res.Matched, childIdx)
		current = childIdx
	}

	res.FullyMatched = true
	return res, nil
}
