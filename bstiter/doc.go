// Package bstiter provides lazy in-order iteration over a binary search
// tree — "next smallest value" on demand, without materializing the
// full sorted sequence up front.
//
// What
//
//   - A TreeNode holds an int64 value and optional Left/Right children,
//     with the usual BST invariant: everything left is strictly
//     smaller, everything right strictly greater.
//   - Iterator keeps an explicit stack of pending ancestors — the path
//     from the current position back toward the root — so traversal
//     resumes in O(1) amortized per step instead of re-walking from
//     the root.
//   - New(nil) is valid and yields an immediately exhausted iterator.
//   - The tree is read-only to the iterator; it never mutates a node.
//   - Insert and FromSorted build trees for callers that don't already
//     have one.
//
// Why
//
//   - O(h) auxiliary space (h = tree height) versus O(n) for an eager
//     in-order dump — the stack stands in for the recursive call
//     stack, holding one frame per pending ancestor.
//   - Each node is pushed and popped exactly once across a full drain,
//     so n calls to Next cost O(n) total: amortized O(1) per call.
//
// Usage
//
//	it := bstiter.New(root)
//	for it.HasNext() {
//	    v, err := it.Next()
//	    if err != nil {
//	        // only ErrExhausted, and only on misuse
//	    }
//	    fmt.Println(v) // strictly ascending
//	}
//
// Errors
//
//   - ErrExhausted if Next is called when HasNext is false.
//
// See substr and digitsum for the package layout conventions shared
// across this module.
package bstiter
