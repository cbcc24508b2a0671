package treemodel

import (
	"github.com/corewidget/treeselect/internal/event"
	"github.com/corewidget/treeselect/tree"
)

// Tree is the tree data source collaborator [TreeModel] is built on: node
// lookup, identity validation, refresh, and change notification.
type Tree interface {
	// Root returns the current root node, or nil if none is set.
	Root() tree.Node

	// GetNode looks a node up by ID within the current tree.
	GetNode(id string) (tree.Node, bool)

	// ValidateNode returns n unchanged if it is currently part of this
	// tree (by identity, not just matching ID), or nil otherwise.
	ValidateNode(n tree.Node) tree.Node

	// SetRoot reassigns the root, rebuilding the ID index and firing
	// OnChanged.
	SetRoot(root tree.Node)

	// Refresh rebuilds the ID index from the current root without
	// changing it, for use after out-of-band structural edits.
	Refresh()

	// OnChanged subscribes to root reassignment and Refresh calls.
	OnChanged(fn func()) (unsubscribe func())

	// OnNodeRefreshed subscribes to single-node refresh notifications
	// raised by NotifyNodeRefreshed.
	OnNodeRefreshed(fn func(tree.Node)) (unsubscribe func())
}

// DefaultTree is the default concrete [Tree] implementation: an ID-indexed
// registry over a single root, rebuilt by full PreOrder walks.
type DefaultTree struct {
	root      tree.Node
	index     map[string]tree.Node
	changed   event.Emitter[struct{}]
	refreshed event.Emitter[tree.Node]
}

// NewDefaultTree returns a DefaultTree rooted at root (which may be nil).
func NewDefaultTree(root tree.Node) *DefaultTree {
	t := &DefaultTree{}
	t.root = root
	t.rebuildIndex()
	return t
}

func (t *DefaultTree) Root() tree.Node { return t.root }

func (t *DefaultTree) GetNode(id string) (tree.Node, bool) {
	n, ok := t.index[id]
	return n, ok
}

func (t *DefaultTree) ValidateNode(n tree.Node) tree.Node {
	if n == nil {
		return nil
	}
	if cur, ok := t.index[n.ID()]; ok && cur == n {
		return n
	}
	return nil
}

func (t *DefaultTree) SetRoot(root tree.Node) {
	t.root = root
	t.rebuildIndex()
	t.changed.Emit(struct{}{})
}

func (t *DefaultTree) Refresh() {
	t.rebuildIndex()
	t.changed.Emit(struct{}{})
}

func (t *DefaultTree) rebuildIndex() {
	idx := make(map[string]tree.Node)
	if t.root != nil {
		for n := range tree.PreOrder(t.root, tree.IterOptions{}) {
			idx[n.ID()] = n
		}
	}
	t.index = idx
}

func (t *DefaultTree) OnChanged(fn func()) (unsubscribe func()) {
	return t.changed.Subscribe(func(struct{}) { fn() })
}

func (t *DefaultTree) OnNodeRefreshed(fn func(tree.Node)) (unsubscribe func()) {
	return t.refreshed.Subscribe(fn)
}

// NotifyNodeRefreshed raises OnNodeRefreshed for n, for hosts that mutate a
// node's data in place without changing the tree's shape.
func (t *DefaultTree) NotifyNodeRefreshed(n tree.Node) {
	t.refreshed.Emit(n)
}
