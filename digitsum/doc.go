// Package digitsum adds non-negative integers encoded as reversed-digit
// linked lists, returning the sum in the same encoding.
//
// What
//
//   - A Node holds one decimal digit (0–9); a chain of Nodes, head to
//     tail, encodes a non-negative integer least-significant digit
//     first. 342 is the list [2 → 4 → 3].
//   - Add walks both lists in lock-step with a carry and produces the
//     sum list, also least-significant digit first.
//   - Two result-building strategies, selected via options:
//   - Persist (default): allocate a fresh list, inputs untouched.
//   - InPlace: reuse the longer input's nodes, mutating digits and
//     links; at most one new node is allocated (the final carry).
//   - Codec helpers FromUint/ToUint and FromDigits/Digits convert
//     between lists and plain Go values.
//
// Why
//
//   - The list encoding has no magnitude limit — Add is correct for
//     numbers far beyond uint64, digit by digit.
//   - The carry recurrence (digit = sum mod 10, carry = sum div 10) is
//     the whole algorithm; the carry is always 0 or 1 because each
//     addend digit is at most 9.
//
// Determinism
//
//	Add(a, b) and Add(b, a) encode the same integer. A trailing carry
//	appends exactly one extra node ([9 9 9] + [1] → [0 0 0 1]).
//
// Complexity (n, m = input lengths)
//
//   - Time:   O(max(n, m))
//   - Memory: O(max(n, m)) for Persist, O(1) for InPlace
//
// Usage
//
//	sum, err := digitsum.Add(l1, l2)
//	if err != nil {
//	    // ErrEmptyList, ErrDigitRange, or ErrOptionViolation
//	}
//
//	// In-place, when the inputs are expendable:
//	sum, err = digitsum.Add(l1, l2, digitsum.WithMode(digitsum.InPlace))
//
// Errors
//
//   - ErrEmptyList       if either input list is nil (a zero is the
//     one-node list [0], never an empty one).
//   - ErrDigitRange      if any node's Val is outside [0, 9].
//   - ErrOptionViolation if an invalid option is supplied.
//   - ErrOverflow        from ToUint when the value exceeds uint64.
//
// Validation runs before any mutation, so a failed Add never leaves an
// InPlace input half-rewritten.
package digitsum
