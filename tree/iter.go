// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "iter"

// PreOrder yields root, then recursively each child in left-to-right
// order. It is the traversal order underlying collapse-pruned ranges.
func PreOrder(root Node, opts IterOptions) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		walkPreOrder(root, opts, yield)
	}
}

func walkPreOrder(n Node, opts IterOptions, yield func(Node) bool) bool {
	if !yield(n) {
		return false
	}
	if prune(n, opts) {
		return true
	}
	for _, kid := range n.AsTree().Children {
		if !walkPreOrder(kid, opts, yield) {
			return false
		}
	}
	return true
}

// BreadthFirst yields nodes in breadth-first order starting from root.
func BreadthFirst(root Node, opts IterOptions) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		queue := []Node{root}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			if !yield(n) {
				return
			}
			if prune(n, opts) {
				continue
			}
			queue = append(queue, n.AsTree().Children...)
		}
	}
}

// TopToBottom yields start, then the document-order successors of start —
// its next sibling, the next sibling of an ancestor, and so on — i.e.
// [PreOrder] over the whole tree skipped forward to start. If start has no
// parent (e.g. it has been detached), it yields only start and its own
// descendants.
func TopToBottom(start Node, opts IterOptions) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		cur := start
		for cur != nil {
			if !yield(cur) {
				return
			}
			cur = next(cur, opts)
		}
	}
}

// BottomToTop yields the reverse of [TopToBottom]: start, then its
// in-order predecessor, and so on up to and including the root.
func BottomToTop(start Node, opts IterOptions) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		cur := start
		for cur != nil {
			if !yield(cur) {
				return
			}
			cur = previous(cur, opts)
		}
	}
}
