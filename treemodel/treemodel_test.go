package treemodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corewidget/treeselect/expansion"
	"github.com/corewidget/treeselect/navigation"
	"github.com/corewidget/treeselect/selection"
	"github.com/corewidget/treeselect/tree"
	"github.com/corewidget/treeselect/treemodel"
)

type harness struct {
	nodes  map[string]*node
	dt     *treemodel.DefaultTree
	exp    *expansion.Service
	nav    *navigation.History
	sel    *selection.Service
	model  *treemodel.TreeModel
}

func newHarness() *harness {
	nodes := buildSampleTree()
	dt := treemodel.NewDefaultTree(nodes["1"])
	exp := expansion.NewService()
	nav := navigation.New()
	sel := selection.NewService(dt, tree.IterOptions{PruneCollapsed: true})
	m := treemodel.New(dt, exp, nav, sel)
	return &harness{nodes: nodes, dt: dt, exp: exp, nav: nav, sel: sel, model: m}
}

func TestSelectNodeReplacesByDefault(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.model.SelectNode(h.nodes["1.1"], false))
	require.NoError(t, h.model.SelectNode(h.nodes["1.2"], false))
	assert.Equal(t, []string{"1.2"}, ids(h.model.SelectedNodes()))
}

func TestSelectNodePreserveSelectionPrepends(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.model.SelectNode(h.nodes["1.1"], true))
	require.NoError(t, h.model.SelectNode(h.nodes["1.2"], true))
	assert.Equal(t, []string{"1.2", "1.1"}, ids(h.model.SelectedNodes()))

	// Re-selecting the already-most-recent node is a no-op.
	require.NoError(t, h.model.SelectNode(h.nodes["1.2"], true))
	assert.Equal(t, []string{"1.2", "1.1"}, ids(h.model.SelectedNodes()))

	// Selecting an already-present node moves it to the front.
	require.NoError(t, h.model.SelectNode(h.nodes["1.1"], true))
	assert.Equal(t, []string{"1.1", "1.2"}, ids(h.model.SelectedNodes()))
}

func TestUnselectNode(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.model.SelectNode(h.nodes["1.1"], true))
	require.NoError(t, h.model.SelectNode(h.nodes["1.2"], true))
	require.NoError(t, h.model.UnselectNode(h.nodes["1.1"]))
	assert.Equal(t, []string{"1.2"}, ids(h.model.SelectedNodes()))
	assert.False(t, h.nodes["1.1"].IsSelected())
}

func TestToggleSelection(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.model.ToggleSelection(h.nodes["1.1"]))
	assert.True(t, h.model.IsSelected(h.nodes["1.1"]))
	require.NoError(t, h.model.ToggleSelection(h.nodes["1.1"]))
	assert.False(t, h.model.IsSelected(h.nodes["1.1"]))
}

func TestSelectionRangeS5(t *testing.T) {
	h := newHarness()
	h.nodes["1.2.1"].SetExpanded(false)

	got := h.model.SelectionRange(h.nodes["1.1.2"], h.nodes["1.3"])
	assert.Equal(t, []string{"1.3", "1.2.3", "1.2.2", "1.2.1", "1.2", "1.1.2"}, ids(got))
}

func TestSelectionRangeEmptyWhenSameNode(t *testing.T) {
	h := newHarness()
	assert.Empty(t, h.model.SelectionRange(h.nodes["1.1"], h.nodes["1.1"]))
}

func TestSelectionRangeEmptyWhenInvalid(t *testing.T) {
	h := newHarness()
	foreign := newNode("foreign")
	assert.Empty(t, h.model.SelectionRange(h.nodes["1.1"], foreign))
}

func TestSelectRangeDefaultsFromToMostRecent(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.model.SelectNode(h.nodes["1.1"], false))
	require.NoError(t, h.model.SelectRange(h.nodes["1.2.2"], nil, false))
	got := ids(h.model.SelectedNodes())
	require.NotEmpty(t, got)
	assert.Equal(t, "1.1", got[0])
	assert.Equal(t, "1.2.2", got[len(got)-1])
}

func TestSelectRangePreserveSelectionMergesAndDedupes(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.model.SelectNode(h.nodes["1.3"], false))
	require.NoError(t, h.model.SelectNode(h.nodes["1.1"], true))
	require.NoError(t, h.model.SelectRange(h.nodes["1.2.2"], h.nodes["1.1"], true))

	got := ids(h.model.SelectedNodes())
	seen := map[string]bool{}
	for _, id := range got {
		assert.False(t, seen[id], "duplicate %s", id)
		seen[id] = true
	}
	assert.Contains(t, got, "1.3")
	assert.Contains(t, got, "1.1")
	assert.Contains(t, got, "1.2.2")
}

func TestSelectRangeNoOpWhenToInvalid(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.model.SelectNode(h.nodes["1.1"], false))
	before := ids(h.model.SelectedNodes())
	require.NoError(t, h.model.SelectRange(nil, h.nodes["1.1"], false))
	assert.Equal(t, before, ids(h.model.SelectedNodes()))
}

func TestSelectNextPrevNodeSkipCollapsedChildren(t *testing.T) {
	h := newHarness()
	h.nodes["1.2.1"].SetExpanded(false)
	require.NoError(t, h.model.SelectNode(h.nodes["1.2"], false))

	require.NoError(t, h.model.SelectNextNode(false))
	// 1.2.1's children are pruned since it is collapsed, so next after
	// 1.2 is 1.2.1 itself, not 1.2.1.1.
	assert.Equal(t, []string{"1.2.1"}, ids(h.model.SelectedNodes()))

	require.NoError(t, h.model.SelectNextNode(false))
	assert.Equal(t, []string{"1.2.2"}, ids(h.model.SelectedNodes()))

	require.NoError(t, h.model.SelectPrevNode(false))
	assert.Equal(t, []string{"1.2.1"}, ids(h.model.SelectedNodes()))
}

func TestSelectNextNodeNoOpAtEnd(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.model.SelectNode(h.nodes["1.3"], false))
	require.NoError(t, h.model.SelectNextNode(false))
	assert.Equal(t, []string{"1.3"}, ids(h.model.SelectedNodes()))
}

func TestSelectParent(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.model.SelectNode(h.nodes["1.2.1.1"], false))
	require.NoError(t, h.model.SelectParent())
	assert.Equal(t, []string{"1.2.1"}, ids(h.model.SelectedNodes()))
}

func TestSelectParentNoOpWhenMultipleSelected(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.model.SelectNode(h.nodes["1.1"], true))
	require.NoError(t, h.model.SelectNode(h.nodes["1.2"], true))
	before := ids(h.model.SelectedNodes())
	require.NoError(t, h.model.SelectParent())
	assert.Equal(t, before, ids(h.model.SelectedNodes()))
}

func TestOpenNodeFiresAndTogglesExpansion(t *testing.T) {
	h := newHarness()
	h.nodes["1.2"].SetExpanded(true)

	var opened []string
	h.model.OnOpenNode(func(n tree.Node) { opened = append(opened, n.ID()) })

	require.NoError(t, h.model.OpenNode(h.nodes["1.2"]))
	assert.Equal(t, []string{"1.2"}, opened)
	assert.False(t, h.nodes["1.2"].IsExpanded())
}

func TestOpenNodeDefaultsToMostRecentSelected(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.model.SelectNode(h.nodes["1.1"], false))

	var opened []string
	h.model.OnOpenNode(func(n tree.Node) { opened = append(opened, n.ID()) })
	require.NoError(t, h.model.OpenNode(nil))
	assert.Equal(t, []string{"1.1"}, opened)
}

func TestSelectAllAndSelectNone(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.model.SelectAll())
	assert.Len(t, h.model.SelectedNodes(), len(h.nodes))

	require.NoError(t, h.model.SelectNone())
	assert.Empty(t, h.model.SelectedNodes())
}

func TestExpansionReconciliationSelectsCollapsingAncestor(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.model.SelectNode(h.nodes["1.2.1.1"], false))

	h.exp.CollapseNode(h.nodes["1.2.1"])
	assert.Equal(t, []string{"1.2.1"}, ids(h.model.SelectedNodes()))
}

func TestExpansionReconciliationNoActionWhenNoHiddenSelection(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.model.SelectNode(h.nodes["1.2.2"], false))

	h.exp.CollapseNode(h.nodes["1.2.1"])
	assert.Equal(t, []string{"1.2.2"}, ids(h.model.SelectedNodes()))
}

func TestNavigateToPushesHistoryAndSelectsRoot(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.model.NavigateTo(h.nodes["1.2"]))
	assert.Equal(t, h.nodes["1.2"], h.dt.Root())
	assert.Equal(t, []string{"1.2"}, ids(h.model.SelectedNodes()))

	require.NoError(t, h.model.NavigateBackward())
	assert.Equal(t, h.nodes["1"], h.dt.Root())

	require.NoError(t, h.model.NavigateForward())
	assert.Equal(t, h.nodes["1.2"], h.dt.Root())
}

func TestNavigateToResetsSelectionViaTreeChanged(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.model.SelectNode(h.nodes["1.1.1"], false))
	require.NoError(t, h.model.NavigateTo(h.nodes["1.2"]))
	// NavigateTo's own SetSelection([1.2]) runs after the tree's OnChanged
	// reset fires, so the net result is exactly [1.2], not empty.
	assert.Equal(t, []string{"1.2"}, ids(h.model.SelectedNodes()))
}
