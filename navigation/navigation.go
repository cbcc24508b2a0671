// Package navigation provides a minimal back/forward history stack over
// tree roots, the Navigation collaborator consumed by the tree model.
package navigation

import "github.com/corewidget/treeselect/tree"

// History is a two-stack back/forward navigation history, the standard
// browser-history shape: every [Push] clears the forward stack, and moving
// through the history shuffles nodes between the two stacks without ever
// dropping them.
type History struct {
	back    []tree.Node
	forward []tree.Node
}

// New returns an empty History.
func New() *History {
	return &History{}
}

// Push records node as the current position, clearing any forward history.
func (h *History) Push(node tree.Node) {
	h.back = append(h.back, node)
	h.forward = nil
}

// Advance moves one step forward in the history, returning the node moved
// to and true, or (nil, false) if there is no forward history.
func (h *History) Advance() (tree.Node, bool) {
	if len(h.forward) == 0 {
		return nil, false
	}
	n := h.forward[len(h.forward)-1]
	h.forward = h.forward[:len(h.forward)-1]
	h.back = append(h.back, n)
	return n, true
}

// Retreat moves one step back in the history, returning the node moved to
// and true, or (nil, false) if there is no back history beyond the current
// position.
func (h *History) Retreat() (tree.Node, bool) {
	if len(h.back) < 2 {
		return nil, false
	}
	cur := h.back[len(h.back)-1]
	h.back = h.back[:len(h.back)-1]
	h.forward = append(h.forward, cur)
	return h.back[len(h.back)-1], true
}

// Next returns the forward history, nearest first, without consuming it.
func (h *History) Next() []tree.Node {
	out := make([]tree.Node, len(h.forward))
	for i := range h.forward {
		out[i] = h.forward[len(h.forward)-1-i]
	}
	return out
}

// Prev returns the back history excluding the current position, nearest
// first, without consuming it.
func (h *History) Prev() []tree.Node {
	if len(h.back) < 2 {
		return nil
	}
	rest := h.back[:len(h.back)-1]
	out := make([]tree.Node, len(rest))
	for i := range rest {
		out[i] = rest[len(rest)-1-i]
	}
	return out
}
