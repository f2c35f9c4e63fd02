// Package calculation holds the two operands, the selected sign and the
// derivation of the displayed result.
package calculation

import "sync"

// State is a snapshot of a calculation. Left and Right are fixed for the
// lifetime of a Store; Sign is the only field that changes.
type State struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
	Sign  Sign    `json:"sign"`
}

// DefaultState is the calculation a fresh process starts with: 3 + 1.
func DefaultState() State {
	return State{Left: 3, Right: 1, Sign: Plus}
}

// Result derives the value shown for s. It is recomputed on every call.
func (s State) Result() float64 {
	return Compute(s.Left, s.Right, s.Sign)
}

// Store owns one calculation. It is safe for concurrent use; concurrent
// SetSign calls resolve last-write-wins.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore(initial State) *Store {
	return &Store{state: initial}
}

// State returns a copy of the current calculation.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetSign replaces the selected sign, leaving the operands untouched.
// It returns the sign it replaced and the state after the write, both read
// under the same lock.
func (s *Store) SetSign(sign Sign) (Sign, State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous := s.state.Sign
	s.state.Sign = sign
	return previous, s.state
}
