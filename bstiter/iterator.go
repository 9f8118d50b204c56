// Package bstiter implements the explicit-stack in-order iterator.
//
// # Iterator — stack as continuation
//
// The stack replaces the call stack of a recursive in-order walk:
//  1. Construction pushes the root and every left descendant, so the
//     stack top is always the next unvisited node in order.
//  2. Next pops the top, then descends the popped node's right child's
//     left spine, restoring the invariant.
//  3. The iterator is exhausted when the stack empties.
//
// Time complexity: amortized O(1) per Next, O(n) for a full drain
// Memory usage:    O(h) for the pending-ancestor stack
package bstiter

// Iterator walks a BST in ascending order, one value per Next call.
//
// Not safe for concurrent use; drive it from a single caller.
type Iterator struct {
	// stack holds pending ancestors, nearest on top.
	stack []*TreeNode
}

// New returns an iterator positioned before the smallest value of the
// tree rooted at root. A nil root is valid and yields an iterator that
// is exhausted from the start. Complexity: O(h).
func New(root *TreeNode) *Iterator {
	it := &Iterator{}
	it.descendLeft(root)

	return it
}

// HasNext reports whether another value remains. No side effects.
func (it *Iterator) HasNext() bool {
	return len(it.stack) > 0
}

// Next returns the next smallest remaining value.
//
// Returns ErrExhausted when called after the last value; check HasNext
// first. Complexity: amortized O(1).
func (it *Iterator) Next() (int64, error) {
	if len(it.stack) == 0 {
		return 0, ErrExhausted
	}

	// pop the next in-order node
	top := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]

	// its right subtree's left spine holds the successors
	it.descendLeft(top.Right)

	return top.Val, nil
}

// Collect drains the iterator into a slice of the remaining values, in
// ascending order. Complexity: O(n) time, O(n) result.
func (it *Iterator) Collect() []int64 {
	out := make([]int64, 0, len(it.stack))
	for it.HasNext() {
		v, _ := it.Next()
		out = append(out, v)
	}

	return out
}

// descendLeft pushes node and every left descendant onto the stack.
func (it *Iterator) descendLeft(node *TreeNode) {
	for node != nil {
		it.stack = append(it.stack, node)
		node = node.Left
	}
}
