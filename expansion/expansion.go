// Package expansion tracks expanded/collapsed state transitions on
// [tree.Expandable] nodes and notifies subscribers of each transition.
package expansion

import (
	"log/slog"

	"github.com/corewidget/treeselect/internal/event"
	"github.com/corewidget/treeselect/tree"
)

// Change describes a single expand/collapse transition.
type Change struct {
	Node     tree.Node
	Expanded bool
}

// Service is the sole writer of tree.Expandable's expanded flag and fires
// a [Change] event on every actual transition.
type Service struct {
	changed event.Emitter[Change]
}

// NewService returns an expansion service with no subscribers.
func NewService() *Service {
	return &Service{}
}

// ExpandNode expands n if it is [tree.Expandable] and not already
// expanded. Nodes that do not implement Expandable are silently ignored.
func (s *Service) ExpandNode(n tree.Node) {
	s.setExpanded(n, true)
}

// CollapseNode collapses n if it is [tree.Expandable] and not already
// collapsed.
func (s *Service) CollapseNode(n tree.Node) {
	s.setExpanded(n, false)
}

// ToggleNodeExpansion flips n's expanded state if it is [tree.Expandable].
func (s *Service) ToggleNodeExpansion(n tree.Node) {
	e, ok := tree.AsExpandable(n)
	if !ok {
		slog.Debug("expansion: node is not expandable", "id", n.ID())
		return
	}
	s.setExpanded(n, !e.IsExpanded())
}

func (s *Service) setExpanded(n tree.Node, expanded bool) {
	e, ok := tree.AsExpandable(n)
	if !ok {
		slog.Debug("expansion: node is not expandable", "id", n.ID())
		return
	}
	if e.IsExpanded() == expanded {
		return
	}
	e.SetExpanded(expanded)
	slog.Debug("expansion: node state changed", "id", n.ID(), "expanded", expanded)
	s.changed.Emit(Change{Node: n, Expanded: expanded})
}

// OnExpansionChanged subscribes fn to be called with every expand/collapse
// transition. It returns an unsubscribe function.
func (s *Service) OnExpansionChanged(fn func(Change)) (unsubscribe func()) {
	return s.changed.Subscribe(fn)
}
