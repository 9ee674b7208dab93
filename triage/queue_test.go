package triage_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heros/minheap"
	"github.com/katalvlaran/heros/triage"
)

var epoch = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

// fakeClock is a manually advanced time source.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// critical vitals score 25+25+25 = 75.
func criticalVitals() triage.Vitals {
	v := triage.NormalVitals()
	v.HeartRate = 160
	v.SystolicBP = 65
	v.OxygenSaturation = 80
	return v
}

// urgent vitals score 15+5 = 20.
func urgentVitals() triage.Vitals {
	v := triage.NormalVitals()
	v.HeartRate = 125
	v.OxygenSaturation = 93
	return v
}

func patient(id string, v triage.Vitals, arrival time.Time) *triage.Patient {
	return &triage.Patient{ID: id, Age: 30, Vitals: v, ArrivalTime: arrival}
}

func newQueue(clock *fakeClock, opts ...triage.Option) *triage.Queue {
	return triage.NewQueue(append([]triage.Option{triage.WithClock(clock.Now)}, opts...)...)
}

func TestQueue_ServesMostUrgentFirst(t *testing.T) {
	clock := &fakeClock{t: epoch}
	q := newQueue(clock)

	require.NoError(t, q.Enqueue(patient("green", triage.NormalVitals(), epoch)))
	require.NoError(t, q.Enqueue(patient("red", criticalVitals(), epoch)))
	require.NoError(t, q.Enqueue(patient("yellow", urgentVitals(), epoch)))

	assert.Equal(t, triage.TierCounts{Red: 1, Yellow: 1, Green: 1}, q.Counts())

	var order []string
	for !q.IsEmpty() {
		p, err := q.Dequeue()
		require.NoError(t, err)
		order = append(order, p.ID)
	}
	assert.Equal(t, []string{"red", "yellow", "green"}, order)
	assert.Equal(t, 3, q.Processed())
	assert.Zero(t, q.Counts().Total())
}

func TestQueue_TieBreakArrivalThenID(t *testing.T) {
	clock := &fakeClock{t: epoch}
	q := newQueue(clock, triage.WithPolicy(triage.SeverityPolicy{}))

	require.NoError(t, q.Enqueue(patient("b", urgentVitals(), epoch)))
	require.NoError(t, q.Enqueue(patient("a", urgentVitals(), epoch)))
	require.NoError(t, q.Enqueue(patient("early", urgentVitals(), epoch.Add(-time.Minute))))

	ids := make([]string, 0, 3)
	for _, p := range q.Snapshot() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"early", "a", "b"}, ids)
}

func TestQueue_EmptyErrors(t *testing.T) {
	q := triage.NewQueue()
	_, err := q.Dequeue()
	assert.ErrorIs(t, err, triage.ErrEmpty)
	assert.ErrorIs(t, err, minheap.ErrEmpty)
	_, err = q.Peek()
	assert.ErrorIs(t, err, triage.ErrEmpty)
}

func TestQueue_EnqueueValidation(t *testing.T) {
	q := triage.NewQueue()
	assert.ErrorIs(t, q.Enqueue(nil), triage.ErrNilPatient)
	assert.ErrorIs(t, q.Enqueue(&triage.Patient{}), triage.ErrEmptyID)

	require.NoError(t, q.Enqueue(&triage.Patient{ID: "p1"}))
	assert.ErrorIs(t, q.Enqueue(&triage.Patient{ID: "p1"}), triage.ErrDuplicateID)
	assert.Equal(t, 1, q.Len())
}

func TestQueue_OwnsItsCopies(t *testing.T) {
	q := triage.NewQueue()
	p := patient("p1", triage.NormalVitals(), epoch)
	require.NoError(t, q.Enqueue(p))

	p.Vitals = criticalVitals() // caller mutation must not leak in
	got, ok := q.Get("p1")
	require.True(t, ok)
	assert.Equal(t, triage.NormalVitals(), got.Vitals)

	got.Location = "elsewhere" // nor must accessor copies leak back
	again, _ := q.Get("p1")
	assert.Empty(t, again.Location)
}

func TestQueue_Reprioritize(t *testing.T) {
	clock := &fakeClock{t: epoch}
	q := newQueue(clock)
	require.NoError(t, q.Enqueue(patient("a", urgentVitals(), epoch)))
	require.NoError(t, q.Enqueue(patient("b", triage.NormalVitals(), epoch)))

	updated, err := q.Reprioritize("b", criticalVitals())
	require.NoError(t, err)
	assert.Equal(t, triage.TierRed, updated.Tier)
	assert.Equal(t, triage.TierCounts{Red: 1, Yellow: 1}, q.Counts())

	top, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, "b", top.ID)

	_, err = q.Reprioritize("ghost", criticalVitals())
	assert.ErrorIs(t, err, triage.ErrNotFound)
}

func TestQueue_TopKLeavesQueueIntact(t *testing.T) {
	clock := &fakeClock{t: epoch}
	q := newQueue(clock)
	for i := 0; i < 6; i++ {
		v := triage.NormalVitals()
		v.OxygenSaturation = float64(80 + 3*i) // lower saturation ⇒ more urgent
		require.NoError(t, q.Enqueue(patient(fmt.Sprintf("p%d", i), v, epoch)))
	}
	before := q.Snapshot()
	countsBefore := q.Counts()

	top := q.TopK(3)
	require.Len(t, top, 3)
	assert.Equal(t, before[:3], top)
	assert.Equal(t, before, q.Snapshot())
	assert.Equal(t, countsBefore, q.Counts())
	assert.Equal(t, 0, q.Processed())

	assert.Len(t, q.TopK(100), 6)
	assert.Nil(t, q.TopK(0))
}

func TestQueue_StaleKeyUntilRefresh(t *testing.T) {
	clock := &fakeClock{t: epoch}
	q := newQueue(clock)

	// "old" arrives with mild vitals; "new" is slightly worse but arrives later.
	mild := triage.NormalVitals()
	mild.HeartRate = 105 // +5
	worse := triage.NormalVitals()
	worse.HeartRate = 125 // +15

	require.NoError(t, q.Enqueue(patient("old", mild, epoch)))
	clock.Advance(3 * time.Hour)
	require.NoError(t, q.Enqueue(patient("new", worse, clock.Now())))

	// old was scored at enqueue (wait 0) so it still trails.
	top, _ := q.Peek()
	assert.Equal(t, "new", top.ID)

	// After an explicit refresh, 180 minutes of waiting (+18) lifts old above new.
	q.Refresh()
	top, _ = q.Peek()
	assert.Equal(t, "old", top.ID)
	assert.Equal(t, 2, q.Counts().Total())
}

func TestQueue_RemoveRestoreRequeue(t *testing.T) {
	clock := &fakeClock{t: epoch}
	q := newQueue(clock)
	require.NoError(t, q.Enqueue(patient("a", criticalVitals(), epoch)))
	require.NoError(t, q.Enqueue(patient("b", triage.NormalVitals(), epoch)))

	removed, err := q.Remove("b")
	require.NoError(t, err)
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, 0, q.Processed())
	_, err = q.Remove("b")
	assert.ErrorIs(t, err, triage.ErrNotFound)

	require.NoError(t, q.Restore(removed))
	assert.Equal(t, triage.TierCounts{Red: 1, Green: 1}, q.Counts())

	served, err := q.Dequeue()
	require.NoError(t, err)
	require.Equal(t, "a", served.ID)
	require.NoError(t, q.Requeue(served))
	assert.Equal(t, 0, q.Processed())
	assert.Equal(t, 2, q.Len())

	// Restore over an existing ID replaces it and keeps the stored urgency.
	lowered := served.Clone()
	lowered.Urgency = 0
	require.NoError(t, q.Restore(lowered))
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, triage.TierCounts{Green: 2}, q.Counts())
}

func TestQueue_UpdateKeepsID(t *testing.T) {
	q := triage.NewQueue()
	require.NoError(t, q.Enqueue(patient("a", triage.NormalVitals(), epoch)))
	p, err := q.Update("a", func(p *triage.Patient) {
		p.ID = "hijack"
		p.Location = "ICU-1"
	})
	require.NoError(t, err)
	assert.Equal(t, "a", p.ID)
	assert.Equal(t, "ICU-1", p.Location)
	assert.True(t, q.Contains("a"))
}

// TestQueue_TierCountsInvariant drives random operations and checks that the
// tier counters always sum to the queue length.
func TestQueue_TierCountsInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	clock := &fakeClock{t: epoch}
	q := newQueue(clock)
	next := 0

	randomVitals := func() triage.Vitals {
		switch r.Intn(3) {
		case 0:
			return criticalVitals()
		case 1:
			return urgentVitals()
		default:
			return triage.NormalVitals()
		}
	}

	for i := 0; i < 400; i++ {
		clock.Advance(time.Duration(r.Intn(5)) * time.Minute)
		switch op := r.Intn(6); {
		case op <= 2:
			require.NoError(t, q.Enqueue(patient(fmt.Sprintf("p%d", next), randomVitals(), clock.Now())))
			next++
		case op == 3:
			_, _ = q.Dequeue()
		case op == 4 && q.Len() > 0:
			victim := q.Snapshot()[r.Intn(q.Len())]
			_, err := q.Reprioritize(victim.ID, randomVitals())
			require.NoError(t, err)
		default:
			q.Refresh()
		}
		require.Equal(t, q.Len(), q.Counts().Total(), "step %d", i)
	}
}

func TestQueue_Clear(t *testing.T) {
	q := triage.NewQueue()
	require.NoError(t, q.Enqueue(&triage.Patient{ID: "a"}))
	_, _ = q.Dequeue()
	require.NoError(t, q.Enqueue(&triage.Patient{ID: "b"}))
	q.Clear()
	assert.Zero(t, q.Len())
	assert.Zero(t, q.Counts().Total())
	assert.Equal(t, 1, q.Processed())
}
