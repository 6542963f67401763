package canvas

import "sync"

// Locked guards a canvas with a mutex. Each call to Do runs as one critical
// section, so a sequence of reads and writes inside it, including the cache
// invalidation that every write performs, is never observed half-done by
// another goroutine.
type Locked struct {
	mu     sync.Mutex
	canvas *Canvas
}

// NewLocked wraps c. The caller must not use c directly afterwards.
func NewLocked(c *Canvas) *Locked {
	return &Locked{canvas: c}
}

// Do calls f with the wrapped canvas while holding the lock.
func (l *Locked) Do(f func(*Canvas) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return f(l.canvas)
}

// String returns the string form of the wrapped canvas.
func (l *Locked) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.canvas.String()
}
