package tree

import "slices"

// Range returns the inclusive span of nodes between a and b in
// collapse-pruned PreOrder, oriented so that a is always first and b is
// always last — whether that means walking the tree forward or backward.
// This is the "directed range" both the selection state machine (anchor
// first, target last) and the tree model's range-select operations (from
// first, to last) are built on. Range returns nil if a or b is nil, if
// they are not in the same tree, or if either is pruned out of the given
// traversal (e.g. hidden inside a collapsed ancestor). When a == b it
// returns [a] without checking pruning.
func Range(a, b Node, opts IterOptions) []Node {
	if a == nil || b == nil {
		return nil
	}
	if a == b {
		return []Node{a}
	}
	root := Root(a)
	if Root(b) != root {
		return nil
	}
	var out []Node
	var end Node
	inSpan := false
	for n := range PreOrder(root, opts) {
		if !inSpan {
			switch n {
			case a:
				end = b
			case b:
				end = a
			default:
				continue
			}
			inSpan = true
		}
		out = append(out, n)
		if n == end {
			break
		}
	}
	if len(out) == 0 || out[len(out)-1] != end {
		return nil
	}
	if out[0] == b {
		// b was reached first in document order; reverse so a leads.
		slices.Reverse(out)
	}
	return out
}
