package selection

import (
	"strconv"

	"github.com/corewidget/treeselect/tree"
)

// Kind identifies the way a [Gesture] affects the selection.
type Kind int

const (
	// Default selects node alone, replacing the entire selection. Any
	// incoming Default gesture is normalized to a one-gesture stack
	// containing Toggle(node); a SelectionState never retains a Default
	// gesture itself.
	Default Kind = iota

	// Toggle adds node to the selection if absent, or removes it if
	// present; a range containing node is split into individual toggles
	// for its other nodes — the ctrl/cmd-click gesture.
	Toggle

	// Range extends the selection to a contiguous span from the most
	// recent anchor to node — the shift-click gesture.
	Range
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Default:
		return "Default"
	case Toggle:
		return "Toggle"
	case Range:
		return "Range"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Gesture is a single user-intent record: a node and the kind of
// selection action performed on it.
type Gesture struct {
	Node tree.Node
	Kind Kind
}

// resetGesture is the sentinel gesture that replaces the entire selection state
// with the empty state. It carries no node, so it is represented out of
// band rather than as a zero Gesture (whose zero Node would be nil and
// easy to confuse with a real gesture against a nil node).
type resetGesture struct{}

// Reset is passed to [Service.AddSelection] or [State.Next] to clear the
// selection entirely.
var Reset = resetGesture{}

// Input is anything that can be fed to [State.Next]: a [Gesture] or
// [Reset].
type Input interface {
	isInput()
}

func (Gesture) isInput()      {}
func (resetGesture) isInput() {}
