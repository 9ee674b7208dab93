package triage

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/heros/minheap"
)

// Sentinel errors for queue operations.
var (
	// ErrEmpty is returned when dequeuing or peeking an empty queue.
	// It wraps minheap.ErrEmpty, so errors.Is matches both.
	ErrEmpty = fmt.Errorf("triage: queue is empty: %w", minheap.ErrEmpty)

	// ErrNotFound indicates no queued patient has the requested ID.
	ErrNotFound = errors.New("triage: patient not found")

	// ErrNilPatient is returned when a nil patient is enqueued.
	ErrNilPatient = errors.New("triage: nil patient")

	// ErrEmptyID is returned when a patient without ID is enqueued.
	ErrEmptyID = errors.New("triage: patient ID is empty")

	// ErrDuplicateID is returned when a patient with the same ID is already queued.
	ErrDuplicateID = errors.New("triage: patient already queued")
)

// TierCounts is a snapshot of the per-tier counters.
type TierCounts struct {
	Red    int
	Yellow int
	Green  int
}

// Total returns Red + Yellow + Green.
func (c TierCounts) Total() int { return c.Red + c.Yellow + c.Green }

// Option configures a Queue.
type Option func(*Queue)

// WithPolicy sets the urgency policy (default wait-weighted). Nil is ignored.
func WithPolicy(p Policy) Option {
	return func(q *Queue) {
		if p != nil {
			q.policy = p
		}
	}
}

// WithThresholds sets the tier boundaries.
func WithThresholds(th Thresholds) Option {
	return func(q *Queue) { q.thresholds = th }
}

// WithClock sets the time source used for scoring (default time.Now).
func WithClock(now func() time.Time) Option {
	return func(q *Queue) {
		if now != nil {
			q.now = now
		}
	}
}

// Queue is the triage scheduler. It exclusively owns the patients it holds:
// Enqueue stores a copy, and read accessors hand out copies.
//
// A Queue is not safe for concurrent use.
type Queue struct {
	heap       *minheap.MinHeap[*Patient]
	policy     Policy
	thresholds Thresholds
	now        func() time.Time

	counts    [numTiers]int
	processed int
}

// NewQueue builds an empty queue.
func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		policy:     DefaultWaitWeighted(),
		thresholds: DefaultThresholds(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.heap = minheap.NewFunc[*Patient](
		func(a, b *Patient) bool { return QueueOrder(a, b) < 0 },
		func(a, b *Patient) bool { return a.ID == b.ID },
	)

	return q
}

// Len returns the number of queued patients.
func (q *Queue) Len() int { return q.heap.Len() }

// IsEmpty reports whether nobody is waiting.
func (q *Queue) IsEmpty() bool { return q.heap.IsEmpty() }

// Processed returns how many patients Dequeue has handed out.
func (q *Queue) Processed() int { return q.processed }

// Counts returns the tier counters.
func (q *Queue) Counts() TierCounts {
	return TierCounts{
		Red:    q.counts[TierRed],
		Yellow: q.counts[TierYellow],
		Green:  q.counts[TierGreen],
	}
}

// Policy returns the urgency policy in use.
func (q *Queue) Policy() Policy { return q.policy }

// Enqueue scores a copy of p and inserts it. O(n) for the duplicate check,
// O(log n) for the insert.
func (q *Queue) Enqueue(p *Patient) error {
	if p == nil {
		return ErrNilPatient
	}
	if p.ID == "" {
		return ErrEmptyID
	}
	if q.has(p.ID) {
		return fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
	}
	item := p.Clone()
	q.score(item)
	q.heap.Insert(item)
	q.counts[item.Tier]++

	return nil
}

// Dequeue removes and returns the most urgent patient.
// The returned patient is no longer owned by the queue.
func (q *Queue) Dequeue() (*Patient, error) {
	p, err := q.heap.ExtractMin()
	if err != nil {
		return nil, ErrEmpty
	}
	q.counts[p.Tier]--
	q.processed++

	return p, nil
}

// Peek returns a copy of the most urgent patient without removing it.
func (q *Queue) Peek() (*Patient, error) {
	p, err := q.heap.PeekMin()
	if err != nil {
		return nil, ErrEmpty
	}

	return p.Clone(), nil
}

// Get returns a copy of the queued patient with the given ID. O(n).
func (q *Queue) Get(id string) (*Patient, bool) {
	p, ok := q.find(id)
	if !ok {
		return nil, false
	}

	return p.Clone(), true
}

// Contains reports whether a patient with the given ID is queued. O(n).
func (q *Queue) Contains(id string) bool { return q.has(id) }

// Reprioritize replaces the vitals of a queued patient, rescores it, moves it
// between tier counters and rebuilds the heap. The O(n) scan dominates, so a
// full O(n) rebuild costs nothing extra.
// Returns a copy of the updated patient.
func (q *Queue) Reprioritize(id string, vitals Vitals) (*Patient, error) {
	p, ok := q.find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	oldTier := p.Tier
	p.Vitals = vitals
	q.score(p)
	q.counts[oldTier]--
	q.counts[p.Tier]++
	q.heap.BuildHeap(q.heap.Items())

	return p.Clone(), nil
}

// Update applies fn to the queued patient with the given ID and rescores it.
// fn may change any field except ID; derived fields are recomputed afterwards.
func (q *Queue) Update(id string, fn func(*Patient)) (*Patient, error) {
	p, ok := q.find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	oldTier := p.Tier
	fn(p)
	p.ID = id
	q.score(p)
	q.counts[oldTier]--
	q.counts[p.Tier]++
	q.heap.BuildHeap(q.heap.Items())

	return p.Clone(), nil
}

// Remove takes the patient with the given ID out of the queue without counting
// it as processed. O(n).
func (q *Queue) Remove(id string) (*Patient, error) {
	p, err := q.heap.RemoveFunc(func(x *Patient) bool { return x.ID == id })
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	q.counts[p.Tier]--

	return p, nil
}

// Restore puts a copy of p back exactly as given: its stored Urgency is kept
// and only Tier is re-derived from it. A queued patient with the same ID is
// replaced. Used to roll back earlier mutations.
func (q *Queue) Restore(p *Patient) error {
	if p == nil {
		return ErrNilPatient
	}
	if p.ID == "" {
		return ErrEmptyID
	}
	item := p.Clone()
	item.Tier = q.thresholds.TierOf(item.Urgency)
	if old, ok := q.find(item.ID); ok {
		q.counts[old.Tier]--
		q.counts[item.Tier]++
		if err := q.heap.UpdatePriority(old, item); err != nil {
			return err
		}

		return nil
	}
	q.heap.Insert(item)
	q.counts[item.Tier]++

	return nil
}

// Requeue is Restore for a patient previously handed out by Dequeue: it also
// rolls the processed count back.
func (q *Queue) Requeue(p *Patient) error {
	if err := q.Restore(p); err != nil {
		return err
	}
	if q.processed > 0 {
		q.processed--
	}

	return nil
}

// TopK returns copies of the k most urgent patients in serving order. It
// extracts k items, then rebuilds the heap from the extracted plus remaining
// items, so the queue is observably unchanged afterwards.
func (q *Queue) TopK(k int) []*Patient {
	if k <= 0 {
		return nil
	}
	saved := make([]*Patient, 0, k)
	for len(saved) < k {
		p, err := q.heap.ExtractMin()
		if err != nil {
			break
		}
		saved = append(saved, p)
	}
	q.heap.BuildHeap(append(q.heap.Items(), saved...))

	out := make([]*Patient, len(saved))
	for i, p := range saved {
		out[i] = p.Clone()
	}

	return out
}

// Refresh rescores every queued patient against the current clock and
// rebuilds the heap. Nothing calls it implicitly.
func (q *Queue) Refresh() {
	items := q.heap.Items()
	q.counts = [numTiers]int{}
	for _, p := range items {
		q.score(p)
		q.counts[p.Tier]++
	}
	q.heap.BuildHeap(items)
}

// Snapshot returns copies of every queued patient in serving order without
// disturbing the queue.
func (q *Queue) Snapshot() []*Patient {
	items := q.heap.Items()
	out := make([]*Patient, len(items))
	for i, p := range items {
		out[i] = p.Clone()
	}
	SortPatients(out, QueueOrder)

	return out
}

// Clear drops every queued patient; the processed count is kept.
func (q *Queue) Clear() {
	q.heap.Clear()
	q.counts = [numTiers]int{}
}

func (q *Queue) score(p *Patient) {
	now := q.now()
	p.Urgency = q.policy.Compute(p, now)
	p.Tier = q.thresholds.TierOf(p.Urgency)
	p.ScoredAt = now
}

func (q *Queue) find(id string) (*Patient, bool) {
	return q.heap.Find(func(p *Patient) bool { return p.ID == id })
}

func (q *Queue) has(id string) bool {
	_, ok := q.find(id)

	return ok
}
