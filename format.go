package ordtree

import (
	"io"
	"strings"

	"github.com/gaissmai/ordtree/internal/node"
	"github.com/rivo/uniseg"
)

// ShowAsArrays renders each branch of t as a bracketed, comma-separated list
// of values, branches joined by separator in depth-first, left-to-right
// order.
func ShowAsArrays[T comparable](t Tree[T], separator string, stringer func(T) string) string {
	var branches []string
	for b := range t.Branches() {
		parts := make([]string, len(b))
		for i, v := range b {
			parts[i] = stringer(v)
		}
		branches = append(branches, "["+strings.Join(parts, ",")+"]")
	}
	return strings.Join(branches, separator)
}

// RenderBoxTree writes t to w as a box-drawing tree (├─ / └─ / │), the way a
// directory listing is usually rendered: a "▼" marker line stands for the
// root, whose own head is not printed, followed by one line per descendant.
// stringer converts each head value to its display text; rivo/uniseg
// measures its rendered cell width so that sibling labels are padded to a
// common width even when stringer returns multi-byte or wide-rune text.
func RenderBoxTree[T comparable](w io.Writer, t Tree[T], stringer func(T) string) error {
	if t.IsEmpty() {
		return nil
	}

	if _, err := io.WriteString(w, "▼\n"); err != nil {
		return err
	}

	n, err := t.toNode()
	if err != nil {
		return err
	}
	return renderBoxNode(w, n, stringer, "")
}

// renderBoxNode writes n's children, one guide-prefixed line each. Sibling
// labels are right-padded with trailing spaces to the widest label's
// rendered cell width (measured with uniseg.StringWidth rather than len,
// since byte length and cell width diverge for multi-byte or combining-rune
// text); the padding does not change the column at which the guide lines
// feeding each child's own subtree start.
func renderBoxNode[T comparable](w io.Writer, n node.Node[T], stringer func(T) string, pad string) error {
	labels := make([]string, len(n.Children))
	maxWidth := 0
	for i, c := range n.Children {
		labels[i] = stringer(c.Head)
		if width := uniseg.StringWidth(labels[i]); width > maxWidth {
			maxWidth = width
		}
	}

	last := len(n.Children) - 1
	for i, c := range n.Children {
		branch, guide := "├─ ", "│  "
		if i == last {
			branch, guide = "└─ ", "   "
		}

		padded := labels[i] + strings.Repeat(" ", maxWidth-uniseg.StringWidth(labels[i]))
		if _, err := io.WriteString(w, pad+branch+padded+"\n"); err != nil {
			return err
		}

		if err := renderBoxNode(w, c, stringer, pad+guide); err != nil {
			return err
		}
	}
	return nil
}
