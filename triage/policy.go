package triage

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrUnknownPolicy is returned by NewPolicy for unregistered names.
var ErrUnknownPolicy = errors.New("triage: unknown urgency policy")

// Policy computes an urgency score for a patient at a given instant.
// Higher scores are served first. Implementations MUST NOT modify the patient.
type Policy interface {
	Compute(p *Patient, now time.Time) float64
}

// PolicyFunc adapts a plain function to Policy.
type PolicyFunc func(p *Patient, now time.Time) float64

func (f PolicyFunc) Compute(p *Patient, now time.Time) float64 { return f(p, now) }

// SeverityPolicy scores by vital signs alone; wait time and age are ignored.
type SeverityPolicy struct{}

func (SeverityPolicy) Compute(p *Patient, _ time.Time) float64 {
	return float64(p.Vitals.Score())
}

// WaitWeightedPolicy adds a wait-time credit and an age-bracket bonus to the
// vital-sign score.
//
// Formula: Score + WaitWeight*minutesWaited + ageBonus
//
// With the default WaitWeight of 0.1 a patient gains one point per ten minutes
// in the queue. Pediatric (Age < PediatricAge) and geriatric
// (Age >= GeriatricAge) patients receive their bracket bonus; Age <= 0 means
// unknown and earns nothing.
type WaitWeightedPolicy struct {
	WaitWeight     float64 // points per minute waited
	PediatricAge   int     // exclusive upper bound of the pediatric bracket
	PediatricBonus float64
	GeriatricAge   int // inclusive lower bound of the geriatric bracket
	GeriatricBonus float64
}

// DefaultWaitWeighted returns the stock wait-weighted policy.
func DefaultWaitWeighted() *WaitWeightedPolicy {
	return &WaitWeightedPolicy{
		WaitWeight:     0.1,
		PediatricAge:   12,
		PediatricBonus: 5,
		GeriatricAge:   65,
		GeriatricBonus: 5,
	}
}

func (w *WaitWeightedPolicy) Compute(p *Patient, now time.Time) float64 {
	urgency := float64(p.Vitals.Score())
	urgency += w.WaitWeight * p.WaitTime(now).Minutes()
	urgency += w.ageBonus(p.Age)

	return urgency
}

func (w *WaitWeightedPolicy) ageBonus(age int) float64 {
	switch {
	case age <= 0:
		return 0
	case age < w.PediatricAge:
		return w.PediatricBonus
	case age >= w.GeriatricAge:
		return w.GeriatricBonus
	default:
		return 0
	}
}

// Policy names accepted by NewPolicy.
const (
	PolicySeverity     = "severity"
	PolicyWaitWeighted = "wait-weighted"
)

var policyFactories = map[string]func() Policy{
	PolicySeverity:     func() Policy { return SeverityPolicy{} },
	PolicyWaitWeighted: func() Policy { return DefaultWaitWeighted() },
}

// NewPolicy creates a Policy by name. The empty name selects wait-weighted.
func NewPolicy(name string) (Policy, error) {
	if name == "" {
		name = PolicyWaitWeighted
	}
	factory, ok := policyFactories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownPolicy, name, PolicyNames())
	}

	return factory(), nil
}

// PolicyNames lists the registered policy names in sorted order.
func PolicyNames() []string {
	names := make([]string, 0, len(policyFactories))
	for n := range policyFactories {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
