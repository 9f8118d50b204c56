// Codec helpers between reversed-digit lists and plain Go values.
// The list side has no magnitude limit; only ToUint can overflow.
package digitsum

import (
	"fmt"
	"math"
)

// FromUint encodes n as a reversed-digit list.
// Zero encodes as the one-node list [0]. Complexity: O(digits).
func FromUint(n uint64) *Node {
	head := &Node{Val: int(n % 10)}
	tail := head
	for n /= 10; n > 0; n /= 10 {
		tail.Next = &Node{Val: int(n % 10)}
		tail = tail.Next
	}

	return head
}

// ToUint decodes l back into a uint64.
//
// Returns ErrEmptyList for a nil list, ErrDigitRange for a malformed
// digit, and ErrOverflow when the encoded value does not fit a uint64.
// Complexity: O(digits).
func ToUint(l *Node) (uint64, error) {
	if _, err := validate(l); err != nil {
		return 0, err
	}

	ds := Digits(l)
	// fold from the most-significant digit so overflow is caught early
	var v uint64
	for i := len(ds) - 1; i >= 0; i-- {
		d := uint64(ds[i])
		if v > (math.MaxUint64-d)/10 {
			return 0, ErrOverflow
		}
		v = v*10 + d
	}

	return v, nil
}

// FromDigits builds a list from digits given least-significant first.
// Rejects an empty slice (ErrEmptyList) and out-of-range digits
// (ErrDigitRange). Complexity: O(len(ds)).
func FromDigits(ds []int) (*Node, error) {
	if len(ds) == 0 {
		return nil, ErrEmptyList
	}
	var dummy Node
	tail := &dummy
	for i, d := range ds {
		if d < 0 || d > 9 {
			return nil, fmt.Errorf("%w: %d at position %d", ErrDigitRange, d, i)
		}
		tail.Next = &Node{Val: d}
		tail = tail.Next
	}

	return dummy.Next, nil
}

// Digits flattens l into a slice, least-significant digit first.
// A nil list yields an empty slice. Complexity: O(len(l)).
func Digits(l *Node) []int {
	ds := make([]int, 0)
	for cur := l; cur != nil; cur = cur.Next {
		ds = append(ds, cur.Val)
	}

	return ds
}
