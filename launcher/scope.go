package launcher

import "sync"

// Scope collects release functions and runs them in reverse order on Close.
type Scope struct {
	mu      sync.Mutex
	release []func()
	closed  bool
}

// NewScope returns an open scope.
func NewScope() *Scope {
	return &Scope{}
}

// Defer registers f to run when the scope is closed. When the scope is
// already closed f runs immediately.
func (s *Scope) Defer(f func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		f()
		return
	}
	s.release = append(s.release, f)
	s.mu.Unlock()
}

// Close runs the registered release functions. Closing twice is a no-op.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	release := s.release
	s.release = nil
	s.mu.Unlock()

	for i := len(release) - 1; i >= 0; i-- {
		release[i]()
	}
}
