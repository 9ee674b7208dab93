// SPDX-License-Identifier: MIT

package history

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by Pop and Peek on an empty log.
	ErrEmpty = errors.New("history: log is empty")

	// ErrBadCapacity is returned by New for a capacity below one.
	ErrBadCapacity = errors.New("history: capacity must be at least 1")
)

// Log is a bounded LIFO history of T values.
type Log[T any] struct {
	entries  []T // oldest first
	capacity int
	evicted  int
}

// New creates an empty log holding at most capacity entries.
func New[T any](capacity int) (*Log[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}

	return &Log[T]{entries: make([]T, 0, capacity), capacity: capacity}, nil
}

// Push appends v. When the log is full the oldest entry is dropped first,
// and true is returned.
func (l *Log[T]) Push(v T) (evicted bool) {
	if len(l.entries) == l.capacity {
		var zero T
		l.entries[0] = zero
		l.entries = append(l.entries[:0], l.entries[1:]...)
		l.evicted++
		evicted = true
	}
	l.entries = append(l.entries, v)

	return evicted
}

// Pop removes and returns the most recently pushed entry.
func (l *Log[T]) Pop() (T, error) {
	var zero T
	n := len(l.entries)
	if n == 0 {
		return zero, ErrEmpty
	}
	v := l.entries[n-1]
	l.entries[n-1] = zero
	l.entries = l.entries[:n-1]

	return v, nil
}

// Peek returns the most recently pushed entry without removing it.
func (l *Log[T]) Peek() (T, error) {
	if len(l.entries) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return l.entries[len(l.entries)-1], nil
}

// Len returns the number of stored entries.
func (l *Log[T]) Len() int { return len(l.entries) }

// Cap returns the configured capacity.
func (l *Log[T]) Cap() int { return l.capacity }

// IsFull reports whether the next Push will evict.
func (l *Log[T]) IsFull() bool { return len(l.entries) == l.capacity }

// Evicted returns how many entries overflow has discarded since creation.
func (l *Log[T]) Evicted() int { return l.evicted }

// Clear drops every entry; capacity is unchanged.
func (l *Log[T]) Clear() {
	clear(l.entries)
	l.entries = l.entries[:0]
}

// Entries returns a copy of the stored entries, oldest first.
func (l *Log[T]) Entries() []T {
	out := make([]T, len(l.entries))
	copy(out, l.entries)

	return out
}
