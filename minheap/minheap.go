// SPDX-License-Identifier: MIT

package minheap

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors for heap operations.
var (
	// ErrEmpty indicates extraction or peek on an empty heap.
	ErrEmpty = errors.New("minheap: heap is empty")

	// ErrNotFound indicates that no element matched a removal or update request.
	ErrNotFound = errors.New("minheap: element not found")

	// ErrInvariant is returned by Validate when the heap order is broken.
	ErrInvariant = errors.New("minheap: heap invariant violated")
)

// Less reports whether a must sit above b in the heap.
type Less[T any] func(a, b T) bool

// Equal reports whether a and b denote the same element.
type Equal[T any] func(a, b T) bool

// Ordered returns the natural ascending ordering for ordered types.
func Ordered[T cmp.Ordered]() Less[T] {
	return func(a, b T) bool { return a < b }
}

// Reverse inverts an ordering, turning the min-heap into a max-heap.
func Reverse[T any](less Less[T]) Less[T] {
	return func(a, b T) bool { return less(b, a) }
}

// MinHeap is an array-backed binary min-heap.
type MinHeap[T any] struct {
	items []T
	less  Less[T]
	equal Equal[T]
}

// New builds an empty heap over a comparable element type; equality is ==.
// Panics if less is nil.
func New[T comparable](less Less[T]) *MinHeap[T] {
	return NewFunc(less, func(a, b T) bool { return a == b })
}

// NewFunc builds an empty heap with an explicit equality. Panics if less or
// equal is nil.
func NewFunc[T any](less Less[T], equal Equal[T]) *MinHeap[T] {
	if less == nil {
		panic("minheap: nil Less")
	}
	if equal == nil {
		panic("minheap: nil Equal")
	}

	return &MinHeap[T]{less: less, equal: equal}
}

// Len returns the number of elements.
func (h *MinHeap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no elements.
func (h *MinHeap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Insert adds item and restores the heap order. O(log n).
func (h *MinHeap[T]) Insert(item T) {
	h.items = append(h.items, item)
	h.siftUp(len(h.items) - 1)
}

// ExtractMin removes and returns the root. O(log n).
func (h *MinHeap[T]) ExtractMin() (T, error) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, ErrEmpty
	}
	root := h.items[0]
	h.items[0] = h.items[n-1]
	h.items[n-1] = zero // drop the reference held by the backing array
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}

	return root, nil
}

// PeekMin returns the root without removing it. O(1).
func (h *MinHeap[T]) PeekMin() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return h.items[0], nil
}

// BuildHeap replaces the contents with items and heapifies bottom-up in O(n).
// The caller's slice is copied, never aliased.
func (h *MinHeap[T]) BuildHeap(items []T) {
	h.items = make([]T, len(items))
	copy(h.items, items)
	h.heapify()
}

// Contains reports whether an element equal to item is present. O(n).
func (h *MinHeap[T]) Contains(item T) bool {
	return h.index(item) >= 0
}

// Remove deletes one element equal to item. O(n).
// Returns ErrNotFound if no element matches.
func (h *MinHeap[T]) Remove(item T) error {
	i := h.index(item)
	if i < 0 {
		return ErrNotFound
	}
	h.removeAt(i)

	return nil
}

// RemoveFunc deletes and returns the first element (in array order) for which
// match returns true. O(n).
func (h *MinHeap[T]) RemoveFunc(match func(T) bool) (T, error) {
	for i, it := range h.items {
		if match(it) {
			h.removeAt(i)
			return it, nil
		}
	}
	var zero T

	return zero, ErrNotFound
}

// Find returns the first element (in array order) for which match is true.
func (h *MinHeap[T]) Find(match func(T) bool) (T, bool) {
	for _, it := range h.items {
		if match(it) {
			return it, true
		}
	}
	var zero T

	return zero, false
}

// UpdatePriority replaces the element equal to old with updated and repairs
// the heap locally: sift up when the key decreased, sift down otherwise. O(n).
// Returns ErrNotFound if old is absent.
func (h *MinHeap[T]) UpdatePriority(old, updated T) error {
	i := h.index(old)
	if i < 0 {
		return ErrNotFound
	}
	h.items[i] = updated
	if h.less(updated, old) {
		h.siftUp(i)
	} else {
		h.siftDown(i)
	}

	return nil
}

// Clear removes every element.
func (h *MinHeap[T]) Clear() { h.items = nil }

// Items returns a copy of the backing array in heap (not sorted) order.
func (h *MinHeap[T]) Items() []T {
	out := make([]T, len(h.items))
	copy(out, h.items)

	return out
}

// Validate checks the heap invariant and reports the first violating index.
func (h *MinHeap[T]) Validate() error {
	n := len(h.items)
	for i := 0; i < n/2; i++ {
		l, r := left(i), right(i)
		if l < n && h.less(h.items[l], h.items[i]) {
			return fmt.Errorf("%w: child %d sorts before parent %d", ErrInvariant, l, i)
		}
		if r < n && h.less(h.items[r], h.items[i]) {
			return fmt.Errorf("%w: child %d sorts before parent %d", ErrInvariant, r, i)
		}
	}

	return nil
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

func (h *MinHeap[T]) index(item T) int {
	for i, it := range h.items {
		if h.equal(it, item) {
			return i
		}
	}

	return -1
}

func (h *MinHeap[T]) heapify() {
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

// removeAt deletes index i by moving the last element into its slot and
// repairing in whichever direction the moved element needs.
func (h *MinHeap[T]) removeAt(i int) {
	var zero T
	last := len(h.items) - 1
	if i != last {
		h.items[i] = h.items[last]
	}
	h.items[last] = zero
	h.items = h.items[:last]
	if i < len(h.items) {
		h.siftDown(i)
		h.siftUp(i)
	}
}

func (h *MinHeap[T]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if !h.less(h.items[i], h.items[p]) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *MinHeap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		if l := left(i); l < n && h.less(h.items[l], h.items[smallest]) {
			smallest = l
		}
		if r := right(i); r < n && h.less(h.items[r], h.items[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
