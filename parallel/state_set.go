package parallel

import "sync"

// StateSet is a thread-safe set that tracks training state fingerprints seen at a specific level.
// When the level changes, all existing states are cleared so that states of different levels never mix.
type StateSet struct {
	mu    sync.RWMutex
	set   map[[32]byte]struct{}
	level int
}

// NewStateSet initializes and returns a new StateSet instance. Initial level is 0.
func NewStateSet() *StateSet {
	return &StateSet{
		set: make(map[[32]byte]struct{}),
	}
}

// Insert adds a state to the set and reports whether it was not there yet.
// If the provided level differs from the current level, the set is cleared first.
func (m *StateSet) Insert(state [32]byte, level int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.level != level {
		m.set = make(map[[32]byte]struct{})
		m.level = level
	}
	if _, ok := m.set[state]; ok {
		return false
	}
	m.set[state] = struct{}{}
	return true
}

// Exists checks if a state exists in the set for the current level.
func (m *StateSet) Exists(state [32]byte, level int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.level != level {
		return false
	}
	_, ok := m.set[state]
	return ok
}

// Len is the number of states at the current level.
func (m *StateSet) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.set)
}
