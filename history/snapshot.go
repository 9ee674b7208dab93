package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/heros/triage"
)

// Operation identifies the mutation a Snapshot precedes.
type Operation int

const (
	OpRegister Operation = iota
	OpDequeue
	OpReprioritize
	OpTransfer
	OpDischarge
	OpStatusChange
)

var operationNames = [...]string{"register", "dequeue", "reprioritize", "transfer", "discharge", "status-change"}

func (o Operation) String() string {
	if o < 0 || int(o) >= len(operationNames) {
		return fmt.Sprintf("operation(%d)", int(o))
	}

	return operationNames[o]
}

// Snapshot is an immutable copy of a patient taken right before Operation
// was applied.
type Snapshot struct {
	ID          uuid.UUID
	Patient     triage.Patient
	Operation   Operation
	Description string
	Timestamp   time.Time
	// Queued records whether the patient was waiting in the triage queue.
	Queued bool
}

// NewSnapshot copies p. A nil p yields a zero Patient.
func NewSnapshot(p *triage.Patient, op Operation, description string, at time.Time) Snapshot {
	s := Snapshot{
		ID:          uuid.New(),
		Operation:   op,
		Description: description,
		Timestamp:   at,
	}
	if p != nil {
		s.Patient = *p
	}

	return s
}

// PatientCopy returns a fresh pointer to the recorded state.
func (s Snapshot) PatientCopy() *triage.Patient {
	p := s.Patient

	return &p
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%s %s %s: %s", s.Timestamp.Format(time.RFC3339), s.Operation, s.Patient.ID, s.Description)
}
