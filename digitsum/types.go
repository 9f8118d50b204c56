// Package digitsum defines the list node, tunable options and error
// definitions for reversed-digit addition.
package digitsum

import (
	"errors"
	"fmt"
)

// Sentinel errors for digitsum operations.
var (
	// ErrEmptyList is returned when an input list has zero nodes.
	// The integer zero is the one-node list [0], never a nil list.
	ErrEmptyList = errors.New("digitsum: list is empty")

	// ErrDigitRange is returned when a node's Val is outside [0, 9].
	ErrDigitRange = errors.New("digitsum: digit out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("digitsum: invalid option supplied")

	// ErrOverflow is returned by ToUint when the list encodes a value
	// larger than math.MaxUint64.
	ErrOverflow = errors.New("digitsum: value exceeds uint64 range")
)

// Node is one decimal digit of a reversed-digit integer.
//
// A chain of Nodes, head to tail, encodes a non-negative integer with
// the least-significant digit first. Val must stay within [0, 9]; Add
// rejects lists that violate this before touching any node.
type Node struct {
	// Val is the digit at this position, in [0, 9].
	Val int

	// Next links to the next more-significant digit, or nil at the end.
	Next *Node
}

// AddMode controls how Add builds its result list.
//
//   - Persist — allocate a fresh node per result digit. Inputs are
//     never touched; Add behaves as a pure function.
//     Memory: O(max(n, m)).
//
//   - InPlace — rewrite the digits of the longer input and reuse its
//     links, consuming both inputs. At most one node is allocated
//     (the final carry). Memory: O(1).
type AddMode int

const (
	// Persist mode: fresh result list, inputs untouched.
	Persist AddMode = iota

	// InPlace mode: reuse the longer input's nodes, mutating in place.
	InPlace
)

// Option configures Add behavior via functional arguments.
// If an Option is invalid (e.g. an unknown AddMode), it is recorded
// internally and surfaced as ErrOptionViolation when Add is invoked.
type Option func(*AddOptions)

// AddOptions holds parameters that customize Add execution.
type AddOptions struct {
	// Mode selects the result-building strategy.
	Mode AddMode

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an AddOptions with sane defaults:
//   - Persist mode (Add stays pure)
//   - error channel clear.
func DefaultOptions() AddOptions {
	return AddOptions{
		Mode: Persist,
		err:  nil,
	}
}

// WithMode selects the result-building strategy.
//
//	Persist: allocate a fresh result list (default)
//	InPlace: mutate and relink the inputs
//
// Any other value is invalid → ErrOptionViolation.
func WithMode(m AddMode) Option {
	return func(o *AddOptions) {
		switch m {
		case Persist, InPlace:
			o.Mode = m
		default:
			o.err = fmt.Errorf("%w: unknown AddMode (%d)", ErrOptionViolation, m)
		}
	}
}
