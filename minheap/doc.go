// Package minheap provides a generic, array-backed binary min-heap with an
// injected ordering.
//
// Overview:
//
//   - The heap is 0-indexed: for index i, parent = (i-1)/2, children = 2i+1, 2i+2.
//   - Ordering is a Less[T] function supplied at construction, so one container
//     serves plain numbers, Dijkstra frontier entries and triage patients alike
//     (callers that want "largest first" simply invert Less).
//   - Element identity is value equality: == for comparable types (New), or an
//     injected Equal[T] (NewFunc) for everything else.
//
// Operations and complexity:
//
//	Insert(x)               O(log n)  append, sift up
//	ExtractMin()            O(log n)  swap root with last, shrink, sift down
//	PeekMin()               O(1)
//	BuildHeap(xs)           O(n)      bottom-up heapify from the last non-leaf
//	Contains(x)             O(n)      linear scan
//	Remove(x)               O(n)      linear scan + local repair
//	UpdatePriority(old,new) O(n)      linear scan + sift up or down
//
// Tie-breaking between equal elements is unspecified; callers that need a
// deterministic order must encode the tie-break in Less.
//
// Errors:
//
//   - ErrEmpty:    ExtractMin/PeekMin on an empty heap.
//   - ErrNotFound: Remove/UpdatePriority/RemoveFunc when no element matches.
//     Missing elements always produce ErrNotFound; there is no boolean variant.
//
// Invariant (between calls): for every non-leaf i,
// !Less(heap[left(i)], heap[i]) and !Less(heap[right(i)], heap[i]).
//
// A MinHeap is not safe for concurrent use.
package minheap
