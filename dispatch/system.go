// SPDX-License-Identifier: MIT

package dispatch

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/heros/core"
	"github.com/katalvlaran/heros/dijkstra"
	"github.com/katalvlaran/heros/history"
	"github.com/katalvlaran/heros/triage"
)

// Sentinel errors.
var (
	ErrNilGraph          = errors.New("dispatch: graph is nil")
	ErrUnknownPatient    = errors.New("dispatch: unknown patient")
	ErrAlreadyRegistered = errors.New("dispatch: patient already registered")
	ErrUnknownLocation   = errors.New("dispatch: location is not part of the facility")
	ErrNotQueued         = errors.New("dispatch: patient is not waiting in the queue")
	ErrUnreachable       = errors.New("dispatch: destination unreachable")
	ErrBadStatus         = errors.New("dispatch: status cannot be set directly")

	// ErrNothingToUndo wraps history.ErrEmpty.
	ErrNothingToUndo = fmt.Errorf("dispatch: nothing to undo: %w", history.ErrEmpty)
)

// System owns the scheduling and routing state of one facility.
//
// Registered patients are either waiting in the triage queue or in care
// (taken by Next and not yet discharged). Discharged patients are forgotten.
type System struct {
	mu sync.Mutex

	graph  *core.Graph
	router *dijkstra.Router
	queue  *triage.Queue
	inCare map[string]*triage.Patient
	undo   *history.Log[history.Snapshot]

	log     logrus.FieldLogger
	metrics *metrics
	now     func() time.Time
}

// New builds a System routing over g. The graph is shared, not copied:
// layout changes made through g are visible to later calls.
func New(g *core.Graph, opts ...Option) (*System, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}

	undo, err := history.New[history.Snapshot](cfg.undoCapacity)
	if err != nil {
		return nil, err
	}
	router, err := dijkstra.NewRouter(g, cfg.routeOpts...)
	if err != nil {
		return nil, err
	}
	m, err := newMetrics(cfg.registerer)
	if err != nil {
		return nil, fmt.Errorf("dispatch: register metrics: %w", err)
	}
	queueOpts := append([]triage.Option{triage.WithClock(cfg.now)}, cfg.queueOpts...)

	s := &System{
		graph:   g,
		router:  router,
		queue:   triage.NewQueue(queueOpts...),
		inCare:  make(map[string]*triage.Patient),
		undo:    undo,
		log:     cfg.logger,
		metrics: m,
		now:     cfg.now,
	}
	s.metrics.observeQueue(s.queue.Counts())

	return s, nil
}

// Graph returns the facility graph.
func (s *System) Graph() *core.Graph { return s.graph }

// Register admits a patient and queues it for triage. A zero ArrivalTime is
// set to now; Status becomes pending. Location, when set, must be a node of
// the facility. Returns the scored copy held by the queue.
func (s *System) Register(p *triage.Patient) (*triage.Patient, error) {
	if p == nil {
		return nil, triage.ErrNilPatient
	}
	if p.ID == "" {
		return nil, triage.ErrEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, _, err := s.lookup(p.ID); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRegistered, p.ID)
	}
	if err := s.checkLocation(p.Location); err != nil {
		return nil, err
	}
	item := p.Clone()
	if item.ArrivalTime.IsZero() {
		item.ArrivalTime = s.now()
	}
	item.Status = triage.StatusPending

	snap := s.snapshot(item, history.OpRegister, false, "registered")
	if err := s.queue.Enqueue(item); err != nil {
		return nil, err
	}
	s.record(snap)
	queued, _ := s.queue.Get(item.ID)

	s.metrics.registered.Inc()
	s.metrics.observeQueue(s.queue.Counts())
	s.log.WithFields(logrus.Fields{
		"patient":  queued.ID,
		"urgency":  queued.Urgency,
		"tier":     queued.Tier.String(),
		"location": queued.Location,
	}).Info("patient registered")

	return queued, nil
}

// Next takes the most urgent waiting patient into care.
// Errors: triage.ErrEmpty when nobody waits.
func (s *System) Next() (*triage.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	head, err := s.queue.Peek()
	if err != nil {
		return nil, err
	}
	snap := s.snapshot(head, history.OpDequeue, true, "taken for treatment")
	p, err := s.queue.Dequeue()
	if err != nil {
		return nil, err
	}
	s.record(snap)
	p.Status = triage.StatusInTreatment
	s.inCare[p.ID] = p

	s.metrics.processed.Inc()
	s.metrics.observeQueue(s.queue.Counts())
	s.log.WithFields(logrus.Fields{
		"patient": p.ID,
		"urgency": p.Urgency,
		"waited":  p.WaitTime(s.now()).String(),
	}).Info("patient taken for treatment")

	return p.Clone(), nil
}

// Reprioritize records new vitals for a waiting patient and rescores it.
func (s *System) Reprioritize(id string, vitals triage.Vitals) (*triage.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before, queued, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if !queued {
		return nil, fmt.Errorf("%w: %s", ErrNotQueued, id)
	}
	snap := s.snapshot(before, history.OpReprioritize, true,
		fmt.Sprintf("vital score %d → %d", before.Vitals.Score(), vitals.Score()))
	after, err := s.queue.Reprioritize(id, vitals)
	if err != nil {
		return nil, err
	}
	s.record(snap)

	s.metrics.observeQueue(s.queue.Counts())
	entry := s.log.WithFields(logrus.Fields{
		"patient": id,
		"urgency": after.Urgency,
		"tier":    after.Tier.String(),
	})
	if after.Tier != before.Tier {
		entry.Warnf("tier changed from %s", before.Tier)
	} else {
		entry.Info("patient reprioritized")
	}

	return after, nil
}

// Transfer moves a patient to location to and returns the route taken from
// the current location. A patient without a location is placed directly and
// the route is the single stop to.
// Errors: ErrUnknownPatient, ErrUnknownLocation, ErrUnreachable.
func (s *System) Transfer(id, to string) (dijkstra.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before, queued, err := s.lookup(id)
	if err != nil {
		return dijkstra.Route{}, err
	}
	if to == "" || !s.graph.HasNode(to) {
		return dijkstra.Route{}, fmt.Errorf("%w: %q", ErrUnknownLocation, to)
	}

	route := dijkstra.Route{End: to, Path: []string{to}, Found: true}
	if before.Location != "" {
		route = s.router.ShortestPath(before.Location, to)
		s.metrics.observeRoute(route.Found)
		if !route.Found {
			return route, fmt.Errorf("%w: %s → %s", ErrUnreachable, before.Location, to)
		}
	}

	snap := s.snapshot(before, history.OpTransfer, queued, fmt.Sprintf("%s → %s", before.Location, to))
	if err := s.mutate(id, queued, func(p *triage.Patient) { p.Location = to }); err != nil {
		return dijkstra.Route{}, err
	}
	s.record(snap)

	s.log.WithFields(logrus.Fields{
		"patient":  id,
		"from":     before.Location,
		"to":       to,
		"distance": route.Distance,
	}).Info("patient transferred")

	return route, nil
}

// SetStatus changes the lifecycle status of a registered patient.
// StatusDischarged is reserved for Discharge (ErrBadStatus).
func (s *System) SetStatus(id string, status triage.Status) (*triage.Patient, error) {
	if status == triage.StatusDischarged {
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	before, queued, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	snap := s.snapshot(before, history.OpStatusChange, queued, fmt.Sprintf("%s → %s", before.Status, status))
	if err := s.mutate(id, queued, func(p *triage.Patient) { p.Status = status }); err != nil {
		return nil, err
	}
	s.record(snap)

	after, _, _ := s.lookup(id)
	s.log.WithFields(logrus.Fields{"patient": id, "status": status.String()}).Info("status changed")

	return after, nil
}

// Discharge releases a registered patient, waiting or in care.
// Returns the final state with Status set to discharged.
func (s *System) Discharge(id string) (*triage.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before, queued, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	snap := s.snapshot(before, history.OpDischarge, queued, "discharged")
	if queued {
		if _, err := s.queue.Remove(id); err != nil {
			return nil, err
		}
		s.metrics.observeQueue(s.queue.Counts())
	} else {
		delete(s.inCare, id)
	}
	s.record(snap)

	s.metrics.discharged.Inc()
	s.log.WithFields(logrus.Fields{"patient": id, "waiting": queued}).Info("patient discharged")

	out := before.Clone()
	out.Status = triage.StatusDischarged

	return out, nil
}

// Undo rolls back the most recent recorded change and returns its snapshot.
// Errors: ErrNothingToUndo.
func (s *System) Undo() (history.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.undo.Pop()
	if err != nil {
		return history.Snapshot{}, ErrNothingToUndo
	}
	p := snap.PatientCopy()

	switch snap.Operation {
	case history.OpRegister:
		_, _ = s.queue.Remove(p.ID)
		delete(s.inCare, p.ID)
	case history.OpDequeue:
		delete(s.inCare, p.ID)
		err = s.queue.Requeue(p)
	default:
		err = s.place(p, snap.Queued)
	}
	if err != nil {
		return snap, fmt.Errorf("dispatch: undo %s %s: %w", snap.Operation, p.ID, err)
	}

	s.metrics.undone.WithLabelValues(snap.Operation.String()).Inc()
	s.metrics.observeQueue(s.queue.Counts())
	s.log.WithFields(logrus.Fields{
		"patient":   p.ID,
		"operation": snap.Operation.String(),
	}).Info("change undone")

	return snap, nil
}

// History returns the undoable snapshots, oldest first.
func (s *System) History() []history.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.undo.Entries()
}

// Patient returns a copy of a registered patient's current state.
func (s *System) Patient(id string) (*triage.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, _, err := s.lookup(id)

	return p, err
}

// Critical returns the k most urgent waiting patients in serving order
// without dequeuing them.
func (s *System) Critical(k int) []*triage.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.queue.TopK(k)
}

// Waiting returns every waiting patient in serving order.
func (s *System) Waiting() []*triage.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.queue.Snapshot()
}

// Refresh rescores the waiting patients against the current time.
func (s *System) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue.Refresh()
	s.metrics.observeQueue(s.queue.Counts())
	s.log.WithField("waiting", s.queue.Len()).Debug("urgency refreshed")
}

// lookup returns a copy of the patient and whether it is waiting.
func (s *System) lookup(id string) (*triage.Patient, bool, error) {
	if p, ok := s.queue.Get(id); ok {
		return p, true, nil
	}
	if p, ok := s.inCare[id]; ok {
		return p.Clone(), false, nil
	}

	return nil, false, fmt.Errorf("%w: %s", ErrUnknownPatient, id)
}

// mutate applies fn to the live patient record.
func (s *System) mutate(id string, queued bool, fn func(*triage.Patient)) error {
	if queued {
		if _, err := s.queue.Update(id, fn); err != nil {
			return err
		}
		s.metrics.observeQueue(s.queue.Counts())

		return nil
	}
	fn(s.inCare[id])

	return nil
}

// place puts p back where it was: the queue when queued, in care otherwise.
func (s *System) place(p *triage.Patient, queued bool) error {
	if queued {
		delete(s.inCare, p.ID)

		return s.queue.Restore(p)
	}
	if s.queue.Contains(p.ID) {
		if _, err := s.queue.Remove(p.ID); err != nil {
			return err
		}
	}
	s.inCare[p.ID] = p

	return nil
}

func (s *System) checkLocation(loc string) error {
	if loc != "" && !s.graph.HasNode(loc) {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, loc)
	}

	return nil
}

func (s *System) snapshot(p *triage.Patient, op history.Operation, queued bool, desc string) history.Snapshot {
	snap := history.NewSnapshot(p, op, desc, s.now())
	snap.Queued = queued

	return snap
}

func (s *System) record(snap history.Snapshot) {
	if s.undo.Push(snap) {
		s.log.WithField("capacity", s.undo.Cap()).Debug("oldest undo entry evicted")
	}
}
