package dispatch

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/heros/dijkstra"
	"github.com/katalvlaran/heros/triage"
)

// DefaultUndoCapacity is the number of changes Undo can roll back by default.
const DefaultUndoCapacity = 50

// Option configures a System.
type Option func(*settings)

type settings struct {
	logger       logrus.FieldLogger
	registerer   prometheus.Registerer
	now          func() time.Time
	undoCapacity int
	queueOpts    []triage.Option
	routeOpts    []dijkstra.Option
}

func defaultSettings() settings {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return settings{
		logger:       discard,
		registerer:   prometheus.NewRegistry(),
		now:          time.Now,
		undoCapacity: DefaultUndoCapacity,
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegisterer sets where metrics are registered (default: a private
// registry). Nil is ignored.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(s *settings) {
		if r != nil {
			s.registerer = r
		}
	}
}

// WithClock sets the time source for arrivals, scoring and snapshots.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// WithUndoCapacity bounds the undo log; New fails for values below one.
func WithUndoCapacity(n int) Option {
	return func(s *settings) { s.undoCapacity = n }
}

// WithPolicy sets the triage urgency policy.
func WithPolicy(p triage.Policy) Option {
	return func(s *settings) { s.queueOpts = append(s.queueOpts, triage.WithPolicy(p)) }
}

// WithThresholds sets the triage tier boundaries.
func WithThresholds(th triage.Thresholds) Option {
	return func(s *settings) { s.queueOpts = append(s.queueOpts, triage.WithThresholds(th)) }
}

// WithRouteOptions applies dijkstra options to every routing call.
func WithRouteOptions(opts ...dijkstra.Option) Option {
	return func(s *settings) { s.routeOpts = append(s.routeOpts, opts...) }
}
