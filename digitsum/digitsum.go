// Package digitsum implements addition over reversed-digit lists.
//
// # Add — lock-step digit walk with carry
//
// Steps:
//  1. Parse options; reject an invalid AddMode.
//  2. Validate both inputs in full:
//     - nil list → ErrEmptyList
//     - any digit outside [0,9] → ErrDigitRange
//     Validation precedes all mutation, so InPlace inputs are never
//     half-rewritten by a failed call.
//  3. Walk both lists from the head. At each position:
//     sum   = digit₁ + digit₂ + carry   (absent digit counts as 0)
//     digit = sum mod 10
//     carry = sum div 10                 (always 0 or 1)
//  4. Continue while either list has nodes or carry is nonzero; a
//     trailing carry appends one final node.
//
// Time complexity: O(max(n, m))
// Memory usage:    O(max(n, m)) Persist, O(1) InPlace
package digitsum

import "fmt"

// Add returns the sum of the integers encoded by l1 and l2, as a
// reversed-digit list in the same encoding.
//
// Both inputs must be non-empty and hold digits in [0, 9]. In Persist
// mode (the default) the inputs are left untouched and the result is
// freshly allocated; in InPlace mode the result reuses the longer
// input's nodes and both inputs must be considered consumed.
// Complexity: O(max(n, m)).
func Add(l1, l2 *Node, opts ...Option) (*Node, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n1, err := validate(l1)
	if err != nil {
		return nil, fmt.Errorf("first addend: %w", err)
	}
	n2, err := validate(l2)
	if err != nil {
		return nil, fmt.Errorf("second addend: %w", err)
	}

	if o.Mode == InPlace {
		return addInPlace(l1, n1, l2, n2), nil
	}

	return addPersist(l1, l2), nil
}

// validate walks l once, checking every digit, and returns its length.
func validate(l *Node) (int, error) {
	if l == nil {
		return 0, ErrEmptyList
	}
	n := 0
	for cur := l; cur != nil; cur = cur.Next {
		if cur.Val < 0 || cur.Val > 9 {
			return n, fmt.Errorf("%w: %d at position %d", ErrDigitRange, cur.Val, n)
		}
		n++
	}

	return n, nil
}

// addPersist builds the sum into freshly allocated nodes.
func addPersist(l1, l2 *Node) *Node {
	var dummy Node
	tail := &dummy
	carry := 0
	for l1 != nil || l2 != nil || carry != 0 {
		sum := carry
		if l1 != nil {
			sum += l1.Val
			l1 = l1.Next
		}
		if l2 != nil {
			sum += l2.Val
			l2 = l2.Next
		}
		tail.Next = &Node{Val: sum % 10}
		tail = tail.Next
		carry = sum / 10
	}

	return dummy.Next
}

// addInPlace rewrites the longer input's digits, reusing its links.
// Allocates at most one node, for a trailing carry.
func addInPlace(l1 *Node, n1 int, l2 *Node, n2 int) *Node {
	long, short := l1, l2
	if n2 > n1 {
		long, short = l2, l1
	}

	head := long
	carry := 0
	var tail *Node
	for long != nil {
		sum := long.Val + carry
		if short != nil {
			sum += short.Val
			short = short.Next
		}
		long.Val = sum % 10
		carry = sum / 10
		tail = long
		long = long.Next
	}
	if carry != 0 {
		tail.Next = &Node{Val: carry}
	}

	return head
}
