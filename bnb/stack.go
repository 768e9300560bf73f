package bnb

import "github.com/dkoshelev/atsp/matrix"

// frontierNode is one pending unit of search work: a partial tour, the
// candidate city to visit next, and the cost of the edge leading to it.
// A node is created when a feasibility check passes and consumed exactly
// once when popped; the embedded tour is owned by the node until then.
type frontierNode struct {
	tour *tour
	city int
	cost matrix.Weight
}

// workStack is a growable LIFO of frontier nodes (depth-first order).
// It is owned by exactly one worker at a time; ownership of the donated
// half transfers atomically (inside the coordinator's critical section)
// during a split. All methods are single-owner and unsynchronized.
type workStack struct {
	nodes []frontierNode
}

// newWorkStack returns an empty stack with room for hint nodes.
func newWorkStack(hint int) *workStack {
	if hint < 0 {
		hint = 0
	}

	return &workStack{nodes: make([]frontierNode, 0, hint)}
}

// len reports the number of pending frontier nodes.
func (s *workStack) len() int { return len(s.nodes) }

// push appends a node on top of the stack. Growth is the amortized
// doubling of the backing slice; no manual resizing.
// Complexity: O(1) amortized.
func (s *workStack) push(n frontierNode) {
	s.nodes = append(s.nodes, n)
}

// pop removes and returns the top node. Callers guarantee len() >= 1.
// The slot is zeroed so the popped tour is not retained by the backing
// array after ownership moves to the caller.
// Complexity: O(1).
func (s *workStack) pop() frontierNode {
	top := len(s.nodes) - 1
	n := s.nodes[top]
	s.nodes[top] = frontierNode{}
	s.nodes = s.nodes[:top]

	return n
}

// split halves the stack interleaved and returns the donated half: frames
// at odd positions (bottom at index 0) move out, frames at even positions
// are compacted in place. Both halves therefore carry a mix of shallow
// and deep frontier nodes — deeper nodes are typically cheaper to expand,
// so an interleaved split balances load better than cutting one end.
//
// Postconditions: donated.len() == ⌊k/2⌋, s.len() == ⌈k/2⌉, and the
// multiset union of both halves equals the original k frames.
//
// Complexity: O(k) time, O(k/2) extra space for the donated half.
func (s *workStack) split() *workStack {
	var (
		k        = len(s.nodes)
		donated  = make([]frontierNode, 0, k/2)
		i, write int
	)

	// Odd positions move to the donated half.
	for i = 1; i < k; i += 2 {
		donated = append(donated, s.nodes[i])
	}

	// Even positions compact in place.
	write = 1
	for i = 2; i < k; i += 2 {
		s.nodes[write] = s.nodes[i]
		write++
	}

	// Zero the tail so donated tours are not retained twice.
	for i = write; i < k; i++ {
		s.nodes[i] = frontierNode{}
	}
	s.nodes = s.nodes[:write]

	return &workStack{nodes: donated}
}
