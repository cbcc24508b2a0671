// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// IterOptions controls how the traversal orders in this package behave.
type IterOptions struct {
	// PruneCollapsed, when true, skips the children of any [Expandable]
	// node that is not expanded.
	PruneCollapsed bool
}

func prune(n Node, opts IterOptions) bool {
	if !opts.PruneCollapsed {
		return false
	}
	e, ok := AsExpandable(n)
	return ok && !e.IsExpanded()
}

// lastChild returns the last (possibly pruned) descendant under n, or n
// itself if it has no unpruned children.
func lastChild(n Node, opts IterOptions) Node {
	if prune(n, opts) {
		return n
	}
	nb := n.AsTree()
	if len(nb.Children) == 0 {
		return n
	}
	return lastChild(nb.Children[len(nb.Children)-1], opts)
}

// nextSibling returns the next sibling of n or, if n is the last child of
// its parent, the next sibling of its nearest ancestor that has one. It
// returns nil if there is no such node.
func nextSibling(n Node) Node {
	nb := n.AsTree()
	if nb.Parent == nil {
		return nil
	}
	idx := n.AsTree().IndexInParent()
	siblings := nb.Parent.AsTree().Children
	if idx >= 0 && idx < len(siblings)-1 {
		return siblings[idx+1]
	}
	return nextSibling(nb.Parent)
}

// next returns the document-order successor of n under the given options,
// or nil if n is the last node in its tree.
func next(n Node, opts IterOptions) Node {
	if !prune(n, opts) {
		nb := n.AsTree()
		if len(nb.Children) > 0 {
			return nb.Children[0]
		}
	}
	return nextSibling(n)
}

// previous returns the document-order predecessor of n under the given
// options, or nil if n is the root.
func previous(n Node, opts IterOptions) Node {
	nb := n.AsTree()
	if nb.Parent == nil {
		return nil
	}
	idx := n.AsTree().IndexInParent()
	if idx > 0 {
		return lastChild(nb.Parent.AsTree().Children[idx-1], opts)
	}
	return nb.Parent
}
