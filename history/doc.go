// Package history provides a bounded undo log: a fixed-capacity history in
// which retrieval is newest-first (LIFO) while overflow evicts the oldest
// entry first.
//
//	log, _ := history.New[history.Snapshot](50)
//	log.Push(snap)       // evicts the oldest entry when full
//	last, err := log.Pop() // most recent entry, ErrEmpty when none
//
// Snapshot records the state of a patient immediately before a mutation,
// tagged with the Operation that is about to be applied.
//
// A Log is not safe for concurrent use.
package history
