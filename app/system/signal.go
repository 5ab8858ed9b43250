// Package system reports the host's color-scheme preference: OS detection, periodic watching,
// and per-request client hints.
package system

import (
	"sync"
)

// Signal is an observable "prefers dark" flag. Subscribers are notified on changes only.
type Signal struct {
	mu     sync.RWMutex
	dark   bool
	nextID int
	subs   map[int]func(dark bool)
}

// NewSignal makes a signal with the initial preference.
func NewSignal(dark bool) *Signal {
	return &Signal{dark: dark, subs: map[int]func(bool){}}
}

// PrefersDark returns the current preference.
func (s *Signal) PrefersDark() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

// Subscribe registers fn for preference changes and returns a func removing it.
func (s *Signal) Subscribe(fn func(dark bool)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Update sets the preference and notifies subscribers if it changed.
// Callbacks run on the caller's goroutine, outside of the signal lock.
func (s *Signal) Update(dark bool) (changed bool) {
	s.mu.Lock()
	if s.dark == dark {
		s.mu.Unlock()
		return false
	}
	s.dark = dark
	subs := make([]func(bool), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(dark)
	}
	return true
}

// Subscribers returns the number of active subscriptions.
func (s *Signal) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
