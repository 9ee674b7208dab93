package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/heros/triage"
)

// ErrInvalidScenario is wrapped by every scenario validation error.
var ErrInvalidScenario = errors.New("config: invalid scenario")

// Action kinds a scenario can replay.
const (
	ActionNext         = "next"
	ActionReprioritize = "reprioritize"
	ActionTransfer     = "transfer"
	ActionStatus       = "status"
	ActionDischarge    = "discharge"
	ActionUndo         = "undo"
	ActionRefresh      = "refresh"
	ActionWait         = "wait"
)

// Scenario is a scripted triage session: patients to register followed by
// actions replayed in order.
type Scenario struct {
	Policy       string             `yaml:"policy" toml:"policy"`
	Thresholds   *triage.Thresholds `yaml:"thresholds" toml:"thresholds"`
	UndoCapacity int                `yaml:"undo_capacity" toml:"undo_capacity"`
	Patients     []PatientSpec      `yaml:"patients" toml:"patients"`
	Actions      []Action           `yaml:"actions" toml:"actions"`
}

// PatientSpec is a patient to register. Vitals left out are taken from
// triage.NormalVitals; WaitedMinutes backdates the arrival.
type PatientSpec struct {
	ID            string         `yaml:"id" toml:"id"`
	Age           int            `yaml:"age" toml:"age"`
	Location      string         `yaml:"location" toml:"location"`
	WaitedMinutes float64        `yaml:"waited_minutes" toml:"waited_minutes"`
	Vitals        *triage.Vitals `yaml:"vitals" toml:"vitals"`
}

// Patient builds the triage patient as of now.
func (ps PatientSpec) Patient(now time.Time) *triage.Patient {
	v := triage.NormalVitals()
	if ps.Vitals != nil {
		v = *ps.Vitals
	}

	return &triage.Patient{
		ID:          ps.ID,
		Age:         ps.Age,
		Location:    ps.Location,
		Vitals:      v,
		ArrivalTime: now.Add(-time.Duration(ps.WaitedMinutes * float64(time.Minute))),
	}
}

// Action is one scripted step.
//
//	next                         take the most urgent patient
//	reprioritize  patient vitals new vitals for a waiting patient
//	transfer      patient to     move a patient
//	status        patient status set a lifecycle status
//	discharge     patient        release a patient
//	undo                         roll back the last change
//	refresh                      rescore waiting patients
//	wait          minutes        advance the scenario clock
type Action struct {
	Op      string         `yaml:"op" toml:"op"`
	Patient string         `yaml:"patient" toml:"patient"`
	To      string         `yaml:"to" toml:"to"`
	Status  string         `yaml:"status" toml:"status"`
	Minutes float64        `yaml:"minutes" toml:"minutes"`
	Vitals  *triage.Vitals `yaml:"vitals" toml:"vitals"`
}

// Validate reports every problem in the scenario.
func (s *Scenario) Validate() error {
	var result *multierror.Error
	fail := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf("%w: "+format, append([]any{ErrInvalidScenario}, args...)...))
	}

	if _, err := triage.NewPolicy(s.Policy); err != nil {
		fail("%v", err)
	}
	if s.UndoCapacity < 0 {
		fail("undo_capacity %d is negative", s.UndoCapacity)
	}
	if th := s.Thresholds; th != nil && th.Yellow > th.Red {
		fail("thresholds: yellow %v above red %v", th.Yellow, th.Red)
	}

	ids := make(map[string]bool, len(s.Patients))
	for i, p := range s.Patients {
		switch {
		case p.ID == "":
			fail("patient %d: empty id", i)
		case ids[p.ID]:
			fail("patient %d: duplicate id %q", i, p.ID)
		default:
			ids[p.ID] = true
		}
		if p.WaitedMinutes < 0 {
			fail("patient %q: waited_minutes is negative", p.ID)
		}
	}

	for i, a := range s.Actions {
		switch a.Op {
		case ActionNext, ActionUndo, ActionRefresh:
		case ActionReprioritize:
			if a.Patient == "" || a.Vitals == nil {
				fail("action %d: reprioritize needs patient and vitals", i)
			}
		case ActionTransfer:
			if a.Patient == "" || a.To == "" {
				fail("action %d: transfer needs patient and to", i)
			}
		case ActionStatus:
			if a.Patient == "" {
				fail("action %d: status needs patient", i)
			}
			if _, err := ParseStatus(a.Status); err != nil {
				fail("action %d: %v", i, err)
			}
		case ActionDischarge:
			if a.Patient == "" {
				fail("action %d: discharge needs patient", i)
			}
		case ActionWait:
			if a.Minutes <= 0 {
				fail("action %d: wait needs positive minutes", i)
			}
		default:
			fail("action %d: unknown op %q", i, a.Op)
		}
	}

	return result.ErrorOrNil()
}

// ParseStatus converts a status name such as "in-treatment" to triage.Status.
func ParseStatus(name string) (triage.Status, error) {
	for st := triage.StatusPending; st <= triage.StatusDischarged; st++ {
		if st.String() == name {
			return st, nil
		}
	}

	return 0, fmt.Errorf("unknown status %q", name)
}
