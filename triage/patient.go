package triage

import (
	"fmt"
	"time"
)

// Vitals holds the measurements that drive the severity score.
type Vitals struct {
	HeartRate        float64 `yaml:"heart_rate" toml:"heart_rate"`               // bpm, normal 60-100
	SystolicBP       float64 `yaml:"systolic_bp" toml:"systolic_bp"`             // mmHg, normal 90-120
	DiastolicBP      float64 `yaml:"diastolic_bp" toml:"diastolic_bp"`           // mmHg, normal 60-80
	Temperature      float64 `yaml:"temperature" toml:"temperature"`             // °C, normal 36.1-37.2
	OxygenSaturation float64 `yaml:"oxygen_saturation" toml:"oxygen_saturation"` // %, normal 95-100
	RespiratoryRate  float64 `yaml:"respiratory_rate" toml:"respiratory_rate"`   // breaths/min, normal 12-20
}

// NormalVitals returns a healthy adult baseline.
func NormalVitals() Vitals {
	return Vitals{
		HeartRate:        75,
		SystolicBP:       120,
		DiastolicBP:      80,
		Temperature:      36.5,
		OxygenSaturation: 98,
		RespiratoryRate:  16,
	}
}

// MaxVitalScore caps Vitals.Score.
const MaxVitalScore = 100

// Score maps the vitals onto 0..MaxVitalScore, higher meaning more severe.
// Each measurement contributes in bands; the outer band wins.
func (v Vitals) Score() int {
	score := 0

	switch {
	case v.HeartRate < 40 || v.HeartRate > 150:
		score += 25
	case v.HeartRate < 50 || v.HeartRate > 120:
		score += 15
	case v.HeartRate < 60 || v.HeartRate > 100:
		score += 5
	}

	switch {
	case v.SystolicBP < 70 || v.SystolicBP > 200:
		score += 25
	case v.SystolicBP < 90 || v.SystolicBP > 160:
		score += 15
	case v.SystolicBP < 100 || v.SystolicBP > 140:
		score += 5
	}

	switch {
	case v.Temperature < 35 || v.Temperature > 40:
		score += 20
	case v.Temperature < 36 || v.Temperature > 39:
		score += 10
	case v.Temperature < 36.1 || v.Temperature > 37.2:
		score += 3
	}

	switch {
	case v.OxygenSaturation < 85:
		score += 25
	case v.OxygenSaturation < 90:
		score += 15
	case v.OxygenSaturation < 95:
		score += 5
	}

	switch {
	case v.RespiratoryRate < 8 || v.RespiratoryRate > 30:
		score += 15
	case v.RespiratoryRate < 10 || v.RespiratoryRate > 25:
		score += 8
	case v.RespiratoryRate < 12 || v.RespiratoryRate > 20:
		score += 3
	}

	if score > MaxVitalScore {
		return MaxVitalScore
	}

	return score
}

// Status is the patient's lifecycle state.
type Status int

const (
	StatusPending Status = iota
	StatusInTreatment
	StatusStabilized
	StatusCritical
	StatusDischarged
)

var statusNames = [...]string{"pending", "in-treatment", "stabilized", "critical", "discharged"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("status(%d)", int(s))
	}

	return statusNames[s]
}

// Tier is the coarse urgency category tracked by the queue counters.
type Tier int

const (
	TierRed    Tier = iota // immediate
	TierYellow             // urgent
	TierGreen              // delayed

	numTiers = 3
)

func (t Tier) String() string {
	switch t {
	case TierRed:
		return "red"
	case TierYellow:
		return "yellow"
	case TierGreen:
		return "green"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Thresholds split urgency into tiers: Red when urgency >= Red, Yellow when
// urgency >= Yellow, Green otherwise.
type Thresholds struct {
	Red    float64 `yaml:"red" toml:"red"`
	Yellow float64 `yaml:"yellow" toml:"yellow"`
}

// DefaultThresholds returns the stock tier boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{Red: 40, Yellow: 15}
}

// TierOf classifies an urgency value.
func (th Thresholds) TierOf(urgency float64) Tier {
	switch {
	case urgency >= th.Red:
		return TierRed
	case urgency >= th.Yellow:
		return TierYellow
	default:
		return TierGreen
	}
}

// Patient is the scheduled work item. ID is stable; Urgency, Tier and ScoredAt
// are derived by a Queue and reflect the moment of the last scoring.
type Patient struct {
	ID          string
	Age         int
	Vitals      Vitals
	Location    string
	ArrivalTime time.Time
	Status      Status

	Urgency  float64
	Tier     Tier
	ScoredAt time.Time
}

// Clone returns a copy that shares nothing with p.
func (p *Patient) Clone() *Patient {
	if p == nil {
		return nil
	}
	c := *p

	return &c
}

// WaitTime returns how long the patient has waited as of now.
// Arrivals in the future count as zero wait.
func (p *Patient) WaitTime(now time.Time) time.Duration {
	if p.ArrivalTime.IsZero() || now.Before(p.ArrivalTime) {
		return 0
	}

	return now.Sub(p.ArrivalTime)
}

func (p *Patient) String() string {
	return fmt.Sprintf("[%s | urgency %.1f | %s]", p.ID, p.Urgency, p.Tier)
}
