package reforge

import (
	"sync"
	"time"
)

// BuildFailure records one failed rebuild attempt.
type BuildFailure struct {
	Err error
	At  time.Time
}

// failureLog is a thread-safe ring buffer of recent build failures.
type failureLog struct {
	mu       sync.RWMutex
	failures []BuildFailure
	size     int
	head     int
	count    int
}

// newFailureLog creates a failure log with the given capacity.
// If size is 0 or negative, retention is disabled.
func newFailureLog(size int) *failureLog {
	if size <= 0 {
		return nil
	}
	return &failureLog{
		failures: make([]BuildFailure, size),
		size:     size,
	}
}

// push adds a failure, evicting the oldest when full.
func (l *failureLog) push(f BuildFailure) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.failures[l.head] = f
	l.head = (l.head + 1) % l.size
	if l.count < l.size {
		l.count++
	}
}

// clear removes all recorded failures.
func (l *failureLog) clear() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.failures {
		l.failures[i] = BuildFailure{}
	}
	l.head = 0
	l.count = 0
}

// all returns the recorded failures, oldest first.
func (l *failureLog) all() []BuildFailure {
	if l == nil {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.count == 0 {
		return nil
	}

	result := make([]BuildFailure, l.count)
	start := (l.head - l.count + l.size) % l.size
	for i := 0; i < l.count; i++ {
		result[i] = l.failures[(start+i)%l.size]
	}
	return result
}
