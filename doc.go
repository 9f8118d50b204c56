// Package kata is a small collection of classic in-memory algorithm
// katas — each one a self-contained package with a precise contract,
// explicit error semantics, and full test coverage.
//
// 🥋 What is kata?
//
//	A pure-Go library of interview-classic algorithms, done properly:
//		• digitsum — big-integer addition over reversed-digit linked lists
//		• bstiter  — lazy in-order iteration over a binary search tree
//		• substr   — longest substring without repeating characters
//
// ✨ Why kata?
//
//   - Contracts first – every package states its pre/postconditions and
//     sentinel errors up front
//   - Pure Go – no cgo, no hidden deps
//   - Lazy where it matters – the BST iterator is O(h) space and
//     amortized O(1) per step, not an eager dump
//   - Honest inputs – malformed input returns an error instead of a
//     silently wrong answer
//
// Each subpackage is independent — there is no shared core, no shared
// state, and no dependency order between them:
//
//	digitsum/ — reversed-digit adder: Add, FromUint/ToUint codec helpers
//	bstiter/  — BST in-order iterator: New, HasNext, Next, Collect
//	substr/   — sliding-window scan: LongestUniqueLength and friends
//
// Quick taste:
//
//	it := bstiter.New(root)
//	for it.HasNext() {
//	    v, _ := it.Next()
//	    fmt.Println(v) // ascending order, one value at a time
//	}
//
// Dive into each package's doc.go for the algorithm outline, complexity
// notes, and worked examples.
//
//	go get github.com/katalvlaran/kata
package kata
