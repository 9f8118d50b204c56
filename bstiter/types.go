// Package bstiter defines the tree node, error definitions and
// tree-building helpers for in-order iteration.
package bstiter

import "errors"

// ErrExhausted is returned by Next once the iterator has yielded every
// value — calling Next while HasNext reports false is a misuse.
var ErrExhausted = errors.New("bstiter: iterator exhausted")

// TreeNode is one node of a binary search tree.
//
// The BST invariant is an input guarantee, not something this package
// verifies: every value in Left is strictly less than Val, every value
// in Right strictly greater.
type TreeNode struct {
	// Val is this node's value.
	Val int64

	// Left and Right are the child subtrees; nil when absent.
	Left, Right *TreeNode
}

// Insert adds v to the tree rooted at root and returns the (possibly
// new) root. Duplicates are ignored, keeping the strict BST invariant.
// Complexity: O(h).
func Insert(root *TreeNode, v int64) *TreeNode {
	if root == nil {
		return &TreeNode{Val: v}
	}
	switch {
	case v < root.Val:
		root.Left = Insert(root.Left, v)
	case v > root.Val:
		root.Right = Insert(root.Right, v)
	}

	return root
}

// FromSorted builds a height-balanced BST from ascending, duplicate-free
// values via midpoint recursion. An empty slice yields a nil root.
// Complexity: O(n).
func FromSorted(vals []int64) *TreeNode {
	if len(vals) == 0 {
		return nil
	}
	mid := len(vals) / 2

	return &TreeNode{
		Val:   vals[mid],
		Left:  FromSorted(vals[:mid]),
		Right: FromSorted(vals[mid+1:]),
	}
}
