package triage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/heros/triage"
)

func TestVitalsScore(t *testing.T) {
	mod := func(f func(v *triage.Vitals)) triage.Vitals {
		v := triage.NormalVitals()
		f(&v)
		return v
	}

	cases := []struct {
		name string
		v    triage.Vitals
		want int
	}{
		{"normal", triage.NormalVitals(), 0},
		{"mild tachycardia", mod(func(v *triage.Vitals) { v.HeartRate = 110 }), 5},
		{"bradycardia", mod(func(v *triage.Vitals) { v.HeartRate = 45 }), 15},
		{"extreme heart rate", mod(func(v *triage.Vitals) { v.HeartRate = 35 }), 25},
		{"hypotension", mod(func(v *triage.Vitals) { v.SystolicBP = 85 }), 15},
		{"fever", mod(func(v *triage.Vitals) { v.Temperature = 39.5 }), 10},
		{"hypothermia", mod(func(v *triage.Vitals) { v.Temperature = 34 }), 20},
		{"low saturation", mod(func(v *triage.Vitals) { v.OxygenSaturation = 88 }), 15},
		{"tachypnea", mod(func(v *triage.Vitals) { v.RespiratoryRate = 27 }), 8},
		{"boundary values are normal", mod(func(v *triage.Vitals) {
			v.HeartRate = 60
			v.SystolicBP = 100
			v.OxygenSaturation = 95
			v.RespiratoryRate = 20
		}), 0},
		{"capped", triage.Vitals{HeartRate: 10, SystolicBP: 40, Temperature: 30, OxygenSaturation: 50, RespiratoryRate: 2}, triage.MaxVitalScore},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.Score())
		})
	}
}

func TestThresholds_TierOf(t *testing.T) {
	th := triage.DefaultThresholds()
	assert.Equal(t, triage.TierRed, th.TierOf(40))
	assert.Equal(t, triage.TierYellow, th.TierOf(39.9))
	assert.Equal(t, triage.TierYellow, th.TierOf(15))
	assert.Equal(t, triage.TierGreen, th.TierOf(14.9))
}

func TestPatient_WaitTimeAndClone(t *testing.T) {
	p := &triage.Patient{ID: "a", ArrivalTime: epoch}
	assert.Equal(t, 30*time.Minute, p.WaitTime(epoch.Add(30*time.Minute)))
	assert.Zero(t, p.WaitTime(epoch.Add(-time.Minute)))
	assert.Zero(t, (&triage.Patient{}).WaitTime(epoch))

	c := p.Clone()
	c.ID = "b"
	assert.Equal(t, "a", p.ID)
	assert.Nil(t, (*triage.Patient)(nil).Clone())
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "red", triage.TierRed.String())
	assert.Equal(t, "tier(7)", triage.Tier(7).String())
	assert.Equal(t, "in-treatment", triage.StatusInTreatment.String())
	assert.Equal(t, "status(-1)", triage.Status(-1).String())
	p := &triage.Patient{ID: "p1", Urgency: 42, Tier: triage.TierRed}
	assert.Equal(t, "[p1 | urgency 42.0 | red]", p.String())
}
