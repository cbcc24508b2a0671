package tree_test

import (
	"github.com/corewidget/treeselect/tree"
)

// node is a small selectable + expandable test fixture satisfying
// [tree.Node] through an embedded [tree.NodeBase].
type node struct {
	*tree.NodeBase
}

func newNode(id string) *node {
	n := &node{NodeBase: tree.NewNodeBase(id)}
	n.SetThis(n)
	n.SetExpanded(true)
	return n
}

func addChild(parent, child *node) *node {
	parent.AddChild(child)
	return child
}

// buildSampleTree builds a small multi-level tree shared by the tests in
// this package:
//
//	1
//	├─ 1.1
//	│  ├─ 1.1.1
//	│  └─ 1.1.2
//	├─ 1.2
//	│  ├─ 1.2.1
//	│  │  ├─ 1.2.1.1
//	│  │  └─ 1.2.1.2
//	│  ├─ 1.2.2
//	│  └─ 1.2.3
//	└─ 1.3
func buildSampleTree() map[string]*node {
	nodes := map[string]*node{}
	mk := func(id string) *node {
		n := newNode(id)
		nodes[id] = n
		return n
	}
	root := mk("1")
	n11 := addChild(root, mk("1.1"))
	addChild(n11, mk("1.1.1"))
	addChild(n11, mk("1.1.2"))
	n12 := addChild(root, mk("1.2"))
	n121 := addChild(n12, mk("1.2.1"))
	addChild(n121, mk("1.2.1.1"))
	addChild(n121, mk("1.2.1.2"))
	addChild(n12, mk("1.2.2"))
	addChild(n12, mk("1.2.3"))
	addChild(root, mk("1.3"))
	return nodes
}

func ids(nodes []tree.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	return out
}
