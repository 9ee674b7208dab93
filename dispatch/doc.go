// Package dispatch wires the triage queue, the facility graph, the router,
// the spanning-tree builder and the undo log into one explicitly constructed
// System.
//
// Every mutating call (Register, Next, Reprioritize, Transfer, SetStatus,
// Discharge) records a history.Snapshot of the patient as it was before the
// change; Undo pops the newest snapshot and puts that state back. When the
// log overflows the oldest snapshots are dropped, so only the most recent
// UndoCapacity changes can be rolled back.
//
// A System serializes its calls with a single mutex. It logs through an
// injected logrus.FieldLogger and records counters and gauges on an
// injected prometheus.Registerer.
package dispatch
