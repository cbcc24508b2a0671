// Package selection implements a multi-selection state machine: an
// immutable stack of gestures that folds into an ordered, duplicate-free
// list of selected nodes, plus a service that diffs successive folds
// against a tree's cached selection flags.
package selection

import (
	"slices"

	"github.com/corewidget/treeselect/internal/ordset"
	"github.com/corewidget/treeselect/tree"
)

// State is an immutable value: a stack of gestures, oldest first. The zero
// State is the empty selection. States are never mutated in place;
// [State.Next] always returns a new value, which keeps the transition
// rules testable in isolation from the node-flag mutation that [Service]
// layers on top.
type State struct {
	stack []Gesture
	opts  tree.IterOptions
}

// New returns an empty selection state that computes ranges using opts
// (in particular, whether ranges are pruned to collapsed-aware order).
func New(opts tree.IterOptions) State {
	return State{opts: opts}
}

// Next returns the state that results from applying input to s. It never
// mutates s. [Reset] clears the state; an unrecognized [Kind] or a stack
// that would violate the "every RANGE's predecessor is a TOGGLE" invariant
// returns [ErrInvalidGesture].
func (s State) Next(input Input) (State, error) {
	switch v := input.(type) {
	case resetGesture:
		return State{opts: s.opts}, nil
	case Gesture:
		switch v.Kind {
		case Default:
			return State{stack: []Gesture{{Node: v.Node, Kind: Toggle}}, opts: s.opts}, nil
		case Toggle:
			return s.nextToggle(v.Node)
		case Range:
			return s.nextRange(v.Node)
		default:
			return State{}, ErrInvalidGesture
		}
	default:
		return State{}, ErrInvalidGesture
	}
}

// topRange scans s.stack from the top (most recent) down and returns the
// index of the first RANGE gesture found, or -1 if there is none.
func (s State) topRange() int {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if s.stack[i].Kind == Range {
			return i
		}
	}
	return -1
}

func (s State) withStack(stack []Gesture) State {
	return State{stack: stack, opts: s.opts}
}

// nextToggle applies a TOGGLE gesture for n: if n falls within the range
// anchored by the topmost RANGE gesture, the range is expanded into
// individual toggles with n excluded; otherwise any existing TOGGLE(n)
// above the topmost RANGE is removed, or a new one is pushed if there was
// none.
func (s State) nextToggle(n tree.Node) (State, error) {
	if idxR := s.topRange(); idxR >= 0 {
		if idxR == 0 {
			return State{}, ErrInvalidGesture
		}
		anchorGesture := s.stack[idxR-1]
		if anchorGesture.Kind != Toggle {
			return State{}, ErrInvalidGesture
		}
		rangeGesture := s.stack[idxR]
		r := tree.Range(anchorGesture.Node, rangeGesture.Node, s.opts)
		if containsNode(r, n) {
			toggles := make([]Gesture, 0, len(r))
			for _, m := range r {
				if m == anchorGesture.Node || m == n {
					continue
				}
				toggles = append(toggles, Gesture{Node: m, Kind: Toggle})
			}
			newStack := make([]Gesture, 0, len(s.stack)-1+len(toggles))
			newStack = append(newStack, s.stack[:idxR]...)
			newStack = append(newStack, toggles...)
			newStack = append(newStack, s.stack[idxR+1:]...)
			return s.withStack(newStack), nil
		}
	}

	// Toggle merge: remove any TOGGLE(n) found above the topmost RANGE
	// (or anywhere, if there is none).
	remove := map[int]bool{}
	for i := len(s.stack) - 1; i >= 0; i-- {
		g := s.stack[i]
		if g.Kind == Range {
			break
		}
		if g.Kind == Toggle && g.Node == n {
			remove[i] = true
		}
	}
	if len(remove) > 0 {
		newStack := make([]Gesture, 0, len(s.stack)-len(remove))
		for i, g := range s.stack {
			if !remove[i] {
				newStack = append(newStack, g)
			}
		}
		return s.withStack(newStack), nil
	}
	return s.withStack(append(slices.Clone(s.stack), Gesture{Node: n, Kind: Toggle})), nil
}

// nextRange applies a RANGE gesture for n, anchored at the topmost TOGGLE
// gesture remaining once any existing top-of-stack RANGE is dropped. Any
// TOGGLE within the resulting range (other than the anchor) is removed
// from the stack before the new RANGE is pushed, so the range's nodes are
// represented exactly once in the projection.
func (s State) nextRange(n tree.Node) (State, error) {
	stack := s.stack
	if len(stack) > 0 && stack[len(stack)-1].Kind == Range {
		stack = stack[:len(stack)-1]
	}
	if len(stack) == 0 {
		// No anchor to range from: degrade to an empty contribution rather
		// than pushing a RANGE with nothing behind it.
		return s.withStack(stack), nil
	}
	anchorGesture := stack[len(stack)-1]
	if anchorGesture.Kind != Toggle {
		return State{}, ErrInvalidGesture
	}
	anchor := anchorGesture.Node
	r := tree.Range(anchor, n, s.opts)
	inR := nodeSet(r)

	remove := map[int]bool{}
	for i := len(stack) - 1; i >= 0; i-- {
		g := stack[i]
		if g.Kind == Range {
			break
		}
		if g.Kind == Toggle && g.Node != anchor && inR[g.Node] {
			remove[i] = true
		}
	}
	newStack := make([]Gesture, 0, len(stack)-len(remove)+1)
	for i, g := range stack {
		if !remove[i] {
			newStack = append(newStack, g)
		}
	}
	newStack = append(newStack, Gesture{Node: n, Kind: Range})
	return s.withStack(newStack), nil
}

// FromProjection returns a state whose Projection equals nodes exactly (in
// the given order), by installing a stack of one TOGGLE gesture per node,
// oldest first. This avoids building the stack through repeated DEFAULT
// gestures, which would not work: DEFAULT collapses the whole stack to a
// single gesture (see [State.Next]), so successive DEFAULT calls overwrite
// each other instead of accumulating a multi-node selection.
func FromProjection(nodes []tree.Node, opts tree.IterOptions) State {
	stack := make([]Gesture, len(nodes))
	for i, n := range nodes {
		stack[len(nodes)-1-i] = Gesture{Node: n, Kind: Toggle}
	}
	return State{stack: stack, opts: opts}
}

// Projection returns the ordered list of currently-selected nodes,
// most-recent-first, by folding the gesture stack into a deduplicated,
// ordered set.
func (s State) Projection() []tree.Node {
	l := ordset.New[tree.Node]()
	for i, g := range s.stack {
		switch g.Kind {
		case Toggle:
			l.Add(g.Node)
		case Range:
			if i > 0 && s.stack[i-1].Kind == Toggle {
				l.Remove(s.stack[i-1].Node)
			}
			for _, m := range tree.Range(rangeAnchor(s.stack, i), g.Node, s.opts) {
				l.Add(m)
			}
		}
	}
	vals := l.Values()
	slices.Reverse(vals)
	return vals
}

// rangeAnchor returns the node of the gesture preceding a RANGE gesture at
// index i, or nil if there is none (the NoAnchor case, whose RANGE was
// never actually pushed, but rangeAnchor stays defensive).
func rangeAnchor(stack []Gesture, i int) tree.Node {
	if i == 0 {
		return nil
	}
	return stack[i-1].Node
}

func containsNode(nodes []tree.Node, n tree.Node) bool {
	return slices.Contains(nodes, n)
}

func nodeSet(nodes []tree.Node) map[tree.Node]bool {
	m := make(map[tree.Node]bool, len(nodes))
	for _, n := range nodes {
		m[n] = true
	}
	return m
}
