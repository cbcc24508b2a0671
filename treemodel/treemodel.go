// Package treemodel binds a tree data source, an expansion collaborator, a
// navigation history, and a selection service into the high-level
// operations a tree view actually calls: select/unselect/toggle, range
// selection, keyboard navigation, and open/navigate-to, plus the
// expansion-reconciliation rule that keeps selection visible across
// collapses.
package treemodel

import (
	"github.com/corewidget/treeselect/expansion"
	"github.com/corewidget/treeselect/internal/event"
	"github.com/corewidget/treeselect/selection"
	"github.com/corewidget/treeselect/tree"
)

// Expansion is the expansion collaborator [TreeModel] is built on.
type Expansion interface {
	ExpandNode(n tree.Node)
	CollapseNode(n tree.Node)
	ToggleNodeExpansion(n tree.Node)
	OnExpansionChanged(fn func(expansion.Change)) (unsubscribe func())
}

// Navigation is the back/forward history collaborator [TreeModel] is
// built on.
type Navigation interface {
	Push(node tree.Node)
	Advance() (tree.Node, bool)
	Retreat() (tree.Node, bool)
	Next() []tree.Node
	Prev() []tree.Node
}

// TreeModel binds a Tree, Expansion, Navigation, and [selection.Service]
// together and exposes the high-level operations a tree view actually
// calls, translating each into gestures or direct state installs on the
// underlying selection service.
type TreeModel struct {
	tree Tree
	exp  Expansion
	nav  Navigation
	sel  *selection.Service
	opts tree.IterOptions

	openNode event.Emitter[tree.Node]
	unsub    []func()
}

// New binds the four collaborators into a TreeModel. Range-based operations
// always use collapse-pruned traversal order, so a collapsed node's hidden
// descendants never end up in a range or an adjacent-node selection.
func New(t Tree, exp Expansion, nav Navigation, sel *selection.Service) *TreeModel {
	m := &TreeModel{
		tree: t,
		exp:  exp,
		nav:  nav,
		sel:  sel,
		opts: tree.IterOptions{PruneCollapsed: true},
	}
	if root := t.Root(); root != nil {
		nav.Push(root)
	}
	m.unsub = append(m.unsub, t.OnChanged(func() {
		_ = sel.AddSelection(selection.Reset)
	}))
	m.unsub = append(m.unsub, exp.OnExpansionChanged(m.onExpansionChanged))
	return m
}

// Dispose tears down the collaborator subscriptions this TreeModel
// installed. After Dispose, selection operations still function (they go
// straight to the service) but root changes no longer reset selection and
// collapses no longer reconcile it.
func (m *TreeModel) Dispose() {
	for _, u := range m.unsub {
		u()
	}
	m.unsub = nil
}

func (m *TreeModel) validate(n tree.Node) tree.Node {
	if n == nil || m.tree == nil {
		return n
	}
	return m.tree.ValidateNode(n)
}

// SelectedNodes returns the current projection.
func (m *TreeModel) SelectedNodes() []tree.Node {
	return m.sel.SelectedNodes()
}

// OnSelectionChanged subscribes to the underlying service's change event.
func (m *TreeModel) OnSelectionChanged(fn func([]tree.Node)) (unsubscribe func()) {
	return m.sel.OnSelectionChanged(fn)
}

// IsSelected reports n's cached selection flag, or false if n does not
// carry one.
func (m *TreeModel) IsSelected(n tree.Node) bool {
	if s, ok := tree.AsSelectable(n); ok {
		return s.IsSelected()
	}
	return false
}

// SetSelection replaces the selection with nodes, in the given order.
func (m *TreeModel) SetSelection(nodes []tree.Node) error {
	return m.sel.SetSelection(nodes)
}

// SelectAll selects every selectable node reachable from the current root,
// in PreOrder.
func (m *TreeModel) SelectAll() error {
	root := m.tree.Root()
	if root == nil {
		return nil
	}
	var nodes []tree.Node
	for n := range tree.PreOrder(root, tree.IterOptions{}) {
		if _, ok := tree.AsSelectable(n); ok {
			nodes = append(nodes, n)
		}
	}
	return m.sel.SetSelection(nodes)
}

// SelectNone clears the selection.
func (m *TreeModel) SelectNone() error {
	return m.sel.SetSelection(nil)
}

// SelectNode replaces the selection with n, or, when preserveSelection is
// set, moves n to the front of the existing selection (or prepends it if
// not already present) instead of replacing it.
func (m *TreeModel) SelectNode(n tree.Node, preserveSelection bool) error {
	n = m.validate(n)
	if n == nil {
		return nil
	}
	if !preserveSelection {
		return m.sel.SetSelection([]tree.Node{n})
	}
	cur := m.sel.SelectedNodes()
	if len(cur) > 0 && cur[0] == n {
		return nil
	}
	next := make([]tree.Node, 0, len(cur)+1)
	next = append(next, n)
	for _, x := range cur {
		if x != n {
			next = append(next, x)
		}
	}
	return m.sel.SetSelection(next)
}

// UnselectNode removes n from the selection, if present.
func (m *TreeModel) UnselectNode(n tree.Node) error {
	n = m.validate(n)
	if n == nil {
		return nil
	}
	cur := m.sel.SelectedNodes()
	next := make([]tree.Node, 0, len(cur))
	for _, x := range cur {
		if x != n {
			next = append(next, x)
		}
	}
	if len(next) == len(cur) {
		return nil
	}
	return m.sel.SetSelection(next)
}

// ToggleSelection selects n if unselected, or unselects it if already
// selected.
func (m *TreeModel) ToggleSelection(n tree.Node) error {
	n = m.validate(n)
	if n == nil {
		return nil
	}
	if m.IsSelected(n) {
		return m.UnselectNode(n)
	}
	return m.SelectNode(n, true)
}

// SelectionRange returns the inclusive span between from and to in
// collapse-pruned PreOrder, without changing the current selection. The
// result is oriented so that from is first and to is last. It is empty if
// either node is invalid or they are the same node.
func (m *TreeModel) SelectionRange(to, from tree.Node) []tree.Node {
	to = m.validate(to)
	from = m.validate(from)
	if to == nil || from == nil || to == from {
		return nil
	}
	return tree.Range(from, to, m.opts)
}

// SelectRange selects the inclusive span between from and to in
// collapse-pruned PreOrder, replacing the current selection unless
// preserveSelection is set, in which case the range is merged with (and
// takes priority over) the existing selection. from defaults to the
// current most-recent selected node when nil.
func (m *TreeModel) SelectRange(to, from tree.Node, preserveSelection bool) error {
	to = m.validate(to)
	if to == nil {
		return nil
	}
	if from == nil {
		cur := m.sel.SelectedNodes()
		if len(cur) == 0 {
			return nil
		}
		from = cur[0]
	} else {
		from = m.validate(from)
		if from == nil {
			return nil
		}
	}
	rng := tree.Range(from, to, m.opts)
	if len(rng) == 0 {
		return nil
	}
	if !preserveSelection {
		return m.sel.SetSelection(rng)
	}
	inRange := make(map[tree.Node]bool, len(rng))
	for _, n := range rng {
		inRange[n] = true
	}
	prior := m.sel.SelectedNodes()
	merged := make([]tree.Node, 0, len(rng)+len(prior))
	merged = append(merged, rng...)
	for _, n := range prior {
		if !inRange[n] {
			merged = append(merged, n)
		}
	}
	return m.sel.SetSelection(merged)
}

// SelectPrevNode selects the visible node immediately before the current
// most-recent selected node, in collapse-pruned traversal order.
func (m *TreeModel) SelectPrevNode(preserveSelection bool) error {
	return m.selectAdjacent(false, preserveSelection)
}

// SelectNextNode selects the visible node immediately after the current
// most-recent selected node, in collapse-pruned traversal order.
func (m *TreeModel) SelectNextNode(preserveSelection bool) error {
	return m.selectAdjacent(true, preserveSelection)
}

func (m *TreeModel) selectAdjacent(forward, preserveSelection bool) error {
	cur := m.sel.SelectedNodes()
	if len(cur) == 0 {
		return nil
	}
	start := cur[0]
	opts := tree.IterOptions{PruneCollapsed: true}
	seq := tree.BottomToTop(start, opts)
	if forward {
		seq = tree.TopToBottom(start, opts)
	}
	first := true
	for n := range seq {
		if first {
			first = false
			continue
		}
		if tree.Visible(n) {
			return m.SelectNode(n, preserveSelection)
		}
	}
	return nil
}

// SelectParent selects the nearest visible selectable ancestor of the
// currently selected node. It is a no-op unless exactly one node is
// selected.
func (m *TreeModel) SelectParent() error {
	cur := m.sel.SelectedNodes()
	if len(cur) != 1 {
		return nil
	}
	p := cur[0].AsTree().Parent
	for p != nil {
		if _, ok := tree.AsSelectable(p); ok && tree.Visible(p) {
			return m.SelectNode(p, false)
		}
		p = p.AsTree().Parent
	}
	return nil
}

// OnOpenNode subscribes to the open-node event OpenNode fires.
func (m *TreeModel) OnOpenNode(fn func(tree.Node)) (unsubscribe func()) {
	return m.openNode.Subscribe(fn)
}

// OpenNode fires OnOpenNode for n (defaulting to the most-recent selected
// node when nil), and toggles its expansion if it is expandable.
func (m *TreeModel) OpenNode(n tree.Node) error {
	if n == nil {
		cur := m.sel.SelectedNodes()
		if len(cur) == 0 {
			return nil
		}
		n = cur[0]
	}
	n = m.validate(n)
	if n == nil {
		return nil
	}
	m.openNode.Emit(n)
	m.exp.ToggleNodeExpansion(n)
	return nil
}

// NavigateTo records n in the navigation history and makes it the new
// root.
func (m *TreeModel) NavigateTo(n tree.Node) error {
	n = m.validate(n)
	if n == nil {
		return nil
	}
	m.nav.Push(n)
	return m.gotoRoot(n)
}

// NavigateForward re-advances to the root most recently left behind by
// NavigateBackward, if any.
func (m *TreeModel) NavigateForward() error {
	n, ok := m.nav.Advance()
	if !ok {
		return nil
	}
	return m.gotoRoot(n)
}

// NavigateBackward returns to the previous root in the navigation history,
// if any.
func (m *TreeModel) NavigateBackward() error {
	n, ok := m.nav.Retreat()
	if !ok {
		return nil
	}
	return m.gotoRoot(n)
}

func (m *TreeModel) gotoRoot(n tree.Node) error {
	m.tree.SetRoot(n)
	m.exp.ExpandNode(n)
	if _, ok := tree.AsSelectable(n); ok {
		return m.sel.SetSelection([]tree.Node{n})
	}
	return nil
}

// onExpansionChanged reconciles the selection against a collapse: when e
// is collapsed and some selected node is one of its descendants, and e
// itself is visible and selectable, the selection is replaced with [e] so
// that no longer-visible node stays selected.
func (m *TreeModel) onExpansionChanged(c expansion.Change) {
	if c.Expanded {
		return
	}
	e := c.Node
	hasHiddenSelected := false
	for _, s := range m.sel.SelectedNodes() {
		if tree.IsAncestor(e, s) {
			hasHiddenSelected = true
			break
		}
	}
	if !hasHiddenSelected || !tree.Visible(e) {
		return
	}
	if _, ok := tree.AsSelectable(e); !ok {
		return
	}
	_ = m.sel.SetSelection([]tree.Node{e})
}
