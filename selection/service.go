package selection

import (
	"slices"

	"github.com/corewidget/treeselect/internal/event"
	"github.com/corewidget/treeselect/internal/ordset"
	"github.com/corewidget/treeselect/tree"
)

// Validator checks a node against the tree it is supposed to belong to,
// returning it unchanged if it is valid (present, current, and still of
// the expected identity) or nil otherwise.
type Validator interface {
	ValidateNode(n tree.Node) tree.Node
}

// Service wraps a [State], diffs successive projections, mutates the
// tree's cached [tree.Selectable] flags, and emits a change event carrying
// the new projection. It is the sole writer of [tree.NodeBase]'s selected
// flag.
type Service struct {
	tree    Validator
	state   State
	changed event.Emitter[[]tree.Node]
}

// NewService returns a selection service over the given tree, with the
// given iteration options controlling how range gestures are resolved.
func NewService(t Validator, opts tree.IterOptions) *Service {
	return &Service{tree: t, state: New(opts)}
}

// SelectedNodes returns the current projection, most-recent-first.
func (s *Service) SelectedNodes() []tree.Node {
	return s.state.Projection()
}

// OnSelectionChanged subscribes fn to be called with the new projection
// every time AddSelection commits a change. It returns an unsubscribe
// function (the Go idiom for the source's disposable subscription).
func (s *Service) OnSelectionChanged(fn func([]tree.Node)) (unsubscribe func()) {
	return s.changed.Subscribe(fn)
}

// AddSelection validates input's node against the tree (skipped for
// [Reset]); if invalid, it is a silent no-op: no error, no event.
// Otherwise it computes the next state and diffs its projection against
// the current one. If any node was added or removed, it mutates
// tree.Selectable flags to match, commits the new state, and emits the new
// projection to subscribers; if not, the current state is kept and no event
// fires. It returns [ErrInvalidGesture] only for the
// internal-invariant violations [State.Next] can report; a caller using
// only [Gesture] and [Reset] values will never see it.
func (s *Service) AddSelection(input Input) error {
	if g, ok := input.(Gesture); ok {
		if s.tree != nil && s.tree.ValidateNode(g.Node) == nil {
			return nil
		}
	}
	next, err := s.state.Next(input)
	if err != nil {
		return err
	}
	return s.commit(next)
}

// SetSelection replaces the selection with nodes, in the given order
// (nodes[0] becomes the most recent). Nodes that fail validation against
// the tree are silently dropped from the list rather than aborting the
// whole call, consistent with the per-node silent-ignore rule the rest of
// the service follows.
func (s *Service) SetSelection(nodes []tree.Node) error {
	valid := make([]tree.Node, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if s.tree != nil && s.tree.ValidateNode(n) == nil {
			continue
		}
		valid = append(valid, n)
	}
	next := FromProjection(valid, s.state.opts)
	before, after := s.state.Projection(), next.Projection()
	if !slices.Equal(before, after) &&
		len(ordset.Difference(before, after)) == 0 && len(ordset.Difference(after, before)) == 0 {
		// Same nodes in a new order: no flag changes, but the new order is
		// installed and reported.
		s.state = next
		s.changed.Emit(after)
		return nil
	}
	return s.commit(next)
}

// commit diffs next's projection against the current one, mutates
// tree.Selectable flags to match, and — only if anything actually
// changed — replaces the state and emits the new projection.
func (s *Service) commit(next State) error {
	before := s.state.Projection()
	after := next.Projection()

	toUnselect := ordset.Difference(before, after)
	toSelect := ordset.Difference(after, before)
	if len(toUnselect) == 0 && len(toSelect) == 0 {
		return nil
	}

	for _, n := range toUnselect {
		if sel, ok := tree.AsSelectable(n); ok {
			sel.SetSelected(false)
		}
	}
	for _, n := range toSelect {
		if sel, ok := tree.AsSelectable(n); ok {
			sel.SetSelected(true)
		}
	}

	s.state = next
	s.changed.Emit(after)
	return nil
}
