// Package triage schedules patients by urgency on top of minheap.MinHeap.
//
// A Queue inverts the heap comparison so the most urgent patient is the
// logical minimum; ties fall back to earlier arrival, then smaller ID.
// Alongside the heap it keeps per-tier counters (Red / Yellow / Green) and a
// processed count, so Counts().Total() == Len() between calls.
//
// Urgency is computed by an injected Policy:
//
//	severity       vital-sign score only
//	wait-weighted  vital-sign score + wait-time credit + age-bracket bonus (default)
//
// The key is evaluated when a patient is enqueued, reprioritized or
// restored, never while it sits in the heap. Two patients enqueued at
// different times are not re-compared as their waits grow; a caller that
// wants time decay to take effect calls Queue.Refresh on its own schedule.
//
// Orderings (BySeverity, ByArrival, ByID) are plain comparison functions so
// sort utilities and the queue share one ordering vocabulary.
package triage
