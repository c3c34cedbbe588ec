package linear

import "github.com/gaissmai/ordtree/internal/buffer"

// MergeTwoTrees dissolves the node at fromI, reattaching its direct children
// as new rightmost children of intoI, and returns the size delta (always -1
// when the merge proceeds) and into's index after the merge.
//
// Per SPEC_FULL.md's resolution of the merge-direction open question, the
// merge is a no-op (delta 0, fromI unchanged) when fromI and intoI name the
// same node, either index is out of range, or intoI lies within fromI's own
// subtree (intoI == fromI or a descendant): dissolving fromI would then
// remove intoI itself, which is never a sensible target.
func MergeTwoTrees[T any](fromI, intoI, n int, structureBuf *buffer.IntBuffer, valuesBuf *buffer.Buffer[T]) (delta, resultIdx int, err error) {
	if fromI == intoI || fromI < 0 || fromI >= n || intoI < 0 || intoI >= n {
		return 0, fromI, nil
	}

	structureSnap := structureBuf.Slice(0, structureBuf.Len())

	fromSize, serr := SubtreeSize(fromI, structureSnap)
	if serr != nil {
		return 0, fromI, serr
	}

	fromStart := fromI - fromSize + 1
	if intoI >= fromStart && intoI <= fromI {
		return 0, fromI, nil
	}

	childCount := structureBuf.Get(fromI)
	childBlockStructure := append([]int32(nil), structureBuf.Slice(fromStart, fromI)...)
	childBlockValues := append([]T(nil), valuesBuf.Slice(fromStart, fromI)...)

	// Remove the whole fromI subtree (its children together with its own
	// slot); only the extracted child block above is reinserted, near into.
	structureBuf.RemoveRange(fromStart, fromI+1)
	valuesBuf.RemoveRange(fromStart, fromI+1)

	newIntoI := intoI
	if intoI > fromI {
		newIntoI = intoI - fromSize
	}

	structureBuf.InsertSliceAt(newIntoI, childBlockStructure)
	valuesBuf.InsertSliceAt(newIntoI, childBlockValues)

	finalIntoI := newIntoI + len(childBlockStructure)
	structureBuf.Set(finalIntoI, structureBuf.Get(finalIntoI)+childCount)

	return -1, finalIntoI, nil
}

// MakeChildrenDistinct repeatedly finds a pair of i's direct children sharing
// a head value and merges the later into the earlier (MergeTwoTrees), then
// applies the same rule to the merged node's own children, until no
// duplicate-headed siblings remain. Returns the cumulative size delta.
func MakeChildrenDistinct[T comparable](i int, structureBuf *buffer.IntBuffer, valuesBuf *buffer.Buffer[T]) (int, error) {
	totalDelta := 0

	for {
		n := structureBuf.Len()
		structureSnap := structureBuf.Slice(0, n)
		valuesSnap := valuesBuf.Slice(0, n)

		children, err := ChildrenIndexes(i, structureSnap)
		if err != nil {
			return totalDelta, err
		}

		ltr := make([]int32, len(children))
		for idx, c := range children {
			ltr[len(children)-1-idx] = c
		}

		laterPos, earlierPos, found := FindFirstDuplicatePair(ltr, func(c int32) T { return valuesSnap[c] }, false)
		if !found {
			return totalDelta, nil
		}

		laterIdx, earlierIdx := int(ltr[laterPos]), int(ltr[earlierPos])

		delta, intoIdx, err := MergeTwoTrees(laterIdx, earlierIdx, n, structureBuf, valuesBuf)
		if err != nil {
			return totalDelta, err
		}

		totalDelta += delta
		i += delta
		structureBuf.Set(i, structureBuf.Get(i)-1)

		d2, err := MakeChildrenDistinct(intoIdx, structureBuf, valuesBuf)
		if err != nil {
			return totalDelta, err
		}
		totalDelta += d2
		i += d2
	}
}

// FindFirstDuplicatePair scans slice for the first two elements sharing the
// same key, as determined by keyFn, and reports their positions as
// (laterIdx, earlierIdx): laterIdx is always the position further along
// slice's own (left-to-right) order and earlierIdx the position preceding it,
// regardless of scan direction.
//
// With rightToLeft false, the scan proceeds left to right and stops at the
// first repeat encountered. With rightToLeft true, the scan proceeds right to
// left instead, so the pair reported is the rightmost duplicate found, paired
// with its nearest same-key predecessor to the left.
func FindFirstDuplicatePair[T any, K comparable](slice []T, keyFn func(T) K, rightToLeft bool) (laterIdx, earlierIdx int, ok bool) {
	seen := make(map[K]int)

	if !rightToLeft {
		for idx, v := range slice {
			k := keyFn(v)
			if prev, exists := seen[k]; exists {
				return idx, prev, true
			}
			seen[k] = idx
		}
		return 0, 0, false
	}

	for idx := len(slice) - 1; idx >= 0; idx-- {
		k := keyFn(slice[idx])
		if prev, exists := seen[k]; exists {
			return prev, idx, true
		}
		seen[k] = idx
	}

	return 0, 0, false
}
