package history_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heros/history"
	"github.com/katalvlaran/heros/triage"
)

func TestNew_BadCapacity(t *testing.T) {
	for _, c := range []int{0, -3} {
		_, err := history.New[int](c)
		assert.ErrorIs(t, err, history.ErrBadCapacity)
	}
}

// TestLog_EvictOldestPopNewest pushes three entries into a log of capacity
// two: the first is evicted and retrieval runs newest first.
func TestLog_EvictOldestPopNewest(t *testing.T) {
	l, err := history.New[string](2)
	require.NoError(t, err)

	assert.False(t, l.Push("first"))
	assert.False(t, l.Push("second"))
	assert.True(t, l.IsFull())
	assert.True(t, l.Push("third"))

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 1, l.Evicted())
	assert.Equal(t, []string{"second", "third"}, l.Entries())

	top, err := l.Peek()
	require.NoError(t, err)
	assert.Equal(t, "third", top)

	v, err := l.Pop()
	require.NoError(t, err)
	assert.Equal(t, "third", v)
	v, err = l.Pop()
	require.NoError(t, err)
	assert.Equal(t, "second", v)

	for i := 0; i < 3; i++ {
		_, err = l.Pop()
		assert.ErrorIs(t, err, history.ErrEmpty)
	}
	_, err = l.Peek()
	assert.ErrorIs(t, err, history.ErrEmpty)
}

func TestLog_SizeNeverExceedsCapacity(t *testing.T) {
	l, _ := history.New[int](5)
	for i := 0; i < 100; i++ {
		l.Push(i)
		assert.LessOrEqual(t, l.Len(), l.Cap())
	}
	assert.Equal(t, []int{95, 96, 97, 98, 99}, l.Entries())
	assert.Equal(t, 95, l.Evicted())
}

func TestLog_EntriesIsACopy(t *testing.T) {
	l, _ := history.New[int](3)
	l.Push(1)
	e := l.Entries()
	e[0] = 42
	v, _ := l.Peek()
	assert.Equal(t, 1, v)
}

func TestLog_Clear(t *testing.T) {
	l, _ := history.New[int](2)
	l.Push(1)
	l.Push(2)
	l.Clear()
	assert.Zero(t, l.Len())
	assert.Equal(t, 2, l.Cap())
	l.Push(3)
	assert.Equal(t, []int{3}, l.Entries())
}

func TestSnapshot(t *testing.T) {
	at := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
	p := &triage.Patient{ID: "p7", Age: 70, Location: "ER"}

	s := history.NewSnapshot(p, history.OpTransfer, "ER → ICU", at)
	assert.NotEqual(t, uuid.Nil, s.ID)
	p.Location = "ICU" // later mutation does not leak into the snapshot
	assert.Equal(t, "ER", s.Patient.Location)

	c := s.PatientCopy()
	c.Location = "Ward"
	assert.Equal(t, "ER", s.Patient.Location)

	assert.Equal(t, "2024-03-01T08:30:00Z transfer p7: ER → ICU", s.String())
	assert.NotEqual(t, s.ID, history.NewSnapshot(p, history.OpTransfer, "", at).ID)
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "register", history.OpRegister.String())
	assert.Equal(t, "status-change", history.OpStatusChange.String())
	assert.Equal(t, "operation(9)", history.Operation(9).String())
}
