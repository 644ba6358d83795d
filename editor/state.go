package editor

import (
	"sync"

	"te/buffer"
)

// State is the buffer shared by the input and render goroutines. Every access
// goes through Update or View so the lock is released even when fn panics.
type State struct {
	mu  sync.RWMutex
	buf *buffer.Buffer
}

func NewState(buf *buffer.Buffer) *State {
	return &State{buf: buf}
}

func (s *State) Update(fn func(b *buffer.Buffer)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.buf)
}

func (s *State) View(fn func(b *buffer.Buffer)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.buf)
}

func (s *State) Terminated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.Terminated
}

// Terminate marks the state so both goroutines wind down.
func (s *State) Terminate() {
	s.mu.Lock()
	s.buf.Terminated = true
	s.mu.Unlock()
}
