// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the node model and traversal orders that the
// selection state machine projects onto: a rooted tree of [Node] values
// with optional [Expandable] and [Selectable] capabilities, plus the four
// traversal orders ([PreOrder], [BreadthFirst], [TopToBottom],
// [BottomToTop]) that define visibility and range semantics for selection.
package tree

// Node is the interface every tree node satisfies. Concrete node types
// embed [NodeBase] to get it for free. Nodes are compared as interface
// values; for pointer node types such as those built on NodeBase, node
// identity is therefore reference identity, never structural equality —
// two nodes with the same ID are the same node only if they are the same
// pointer.
type Node interface {
	// AsTree returns the [NodeBase] of this node. Most tree functionality
	// is implemented on NodeBase and reached through this accessor, so
	// embedding types only need to implement the methods specific to them.
	AsTree() *NodeBase

	// ID returns the node's stable identifier.
	ID() string
}

// Composite is implemented by nodes that can have children. Not every
// [Node] needs to satisfy it — leaves may be plain Node values — but
// [NodeBase] always does, since a base node may acquire children later.
type Composite interface {
	Node

	// NumChildren returns the number of children.
	NumChildren() int

	// Child returns the child at index i, or nil if i is out of range.
	Child(i int) Node
}

// Expandable is implemented by composite nodes that can be collapsed,
// hiding their descendants from collapse-pruned traversal.
type Expandable interface {
	Composite

	// IsExpanded reports whether the node's children are currently shown.
	IsExpanded() bool

	// SetExpanded sets whether the node's children are shown.
	SetExpanded(bool)
}

// Selectable is implemented by nodes that carry a selection flag. The flag
// is a cache derived from selection state; only the selection service
// (package selection) writes to it.
type Selectable interface {
	Node

	// IsSelected reports the node's cached selection flag.
	IsSelected() bool

	// SetSelected sets the node's cached selection flag.
	SetSelected(bool)
}

// AsExpandable returns n as an Expandable and true if it implements that
// capability, or (nil, false) otherwise.
func AsExpandable(n Node) (Expandable, bool) {
	e, ok := n.(Expandable)
	return e, ok
}

// AsSelectable returns n as a Selectable and true if it implements that
// capability, or (nil, false) otherwise.
func AsSelectable(n Node) (Selectable, bool) {
	s, ok := n.(Selectable)
	return s, ok
}

// IsAncestor reports whether a is a (possibly indirect) ancestor of d, i.e.
// whether a can be reached from d by following Parent one or more times.
// a == d is not considered an ancestor relation.
func IsAncestor(a, d Node) bool {
	if a == nil || d == nil {
		return false
	}
	cur := d.AsTree().Parent
	for cur != nil {
		if cur == a {
			return true
		}
		cur = cur.AsTree().Parent
	}
	return false
}

// IsRoot reports whether n has no parent.
func IsRoot(n Node) bool {
	return n == nil || n.AsTree().Parent == nil
}

// Root returns the root of n's tree by walking Parent to the top.
func Root(n Node) Node {
	if n == nil {
		return nil
	}
	cur := n
	for cur.AsTree().Parent != nil {
		cur = cur.AsTree().Parent
	}
	return cur
}

// Visible reports whether n and every ancestor of n is visible, and every
// ancestor that is [Expandable] is expanded — i.e. whether n would actually
// be shown in a rendered tree view. A node with its own Hidden flag set is
// never visible, regardless of its ancestors.
func Visible(n Node) bool {
	if n == nil {
		return false
	}
	cur := n
	for cur != nil {
		if cur.AsTree().Hidden {
			return false
		}
		parent := cur.AsTree().Parent
		if parent != nil {
			if e, ok := AsExpandable(parent); ok && !e.IsExpanded() {
				return false
			}
		}
		cur = parent
	}
	return true
}
