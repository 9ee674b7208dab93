package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/heros/core"
)

// ErrInvalidLayout is wrapped by every layout validation error.
var ErrInvalidLayout = errors.New("config: invalid layout")

// Layout describes a facility: named locations joined by weighted corridors.
type Layout struct {
	Name      string     `yaml:"name" toml:"name"`
	Directed  bool       `yaml:"directed" toml:"directed"`
	Locations []Location `yaml:"locations" toml:"locations"`
	Corridors []Corridor `yaml:"corridors" toml:"corridors"`
}

// Location is a node of the facility graph.
type Location struct {
	ID    string  `yaml:"id" toml:"id"`
	X     float64 `yaml:"x" toml:"x"`
	Y     float64 `yaml:"y" toml:"y"`
	Floor int     `yaml:"floor" toml:"floor"`
	Kind  string  `yaml:"kind" toml:"kind"`
}

// Corridor is an edge of the facility graph; Weight is the traversal cost.
type Corridor struct {
	From   string  `yaml:"from" toml:"from"`
	To     string  `yaml:"to" toml:"to"`
	Weight float64 `yaml:"weight" toml:"weight"`
}

// Validate reports every problem in the layout. Corridors may only join
// declared locations.
func (l *Layout) Validate() error {
	var result *multierror.Error
	fail := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf("%w: "+format, append([]any{ErrInvalidLayout}, args...)...))
	}

	known := make(map[string]bool, len(l.Locations))
	for i, loc := range l.Locations {
		switch {
		case loc.ID == "":
			fail("location %d: empty id", i)
		case known[loc.ID]:
			fail("location %d: duplicate id %q", i, loc.ID)
		default:
			known[loc.ID] = true
		}
	}

	type pair struct{ a, b string }
	seen := make(map[pair]bool, len(l.Corridors))
	for i, c := range l.Corridors {
		if c.From == "" || c.To == "" {
			fail("corridor %d: empty endpoint", i)
			continue
		}
		for _, end := range []string{c.From, c.To} {
			if !known[end] {
				fail("corridor %d: unknown location %q", i, end)
			}
		}
		if c.From == c.To {
			fail("corridor %d: %q joins itself", i, c.From)
		}
		if c.Weight < 0 || math.IsNaN(c.Weight) || math.IsInf(c.Weight, 0) {
			fail("corridor %d: weight %v must be finite and non-negative", i, c.Weight)
		}
		key := pair{c.From, c.To}
		if !l.Directed && c.To < c.From {
			key = pair{c.To, c.From}
		}
		if seen[key] {
			fail("corridor %d: duplicate %s-%s", i, c.From, c.To)
		}
		seen[key] = true
	}

	return result.ErrorOrNil()
}

// Graph builds the facility graph. Location kinds are stored as the
// "kind" node metadata.
func (l *Layout) Graph() (*core.Graph, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	g := core.NewGraph(core.WithDirected(l.Directed))
	for _, loc := range l.Locations {
		opts := []core.NodeOption{core.WithPosition(loc.X, loc.Y, loc.Floor)}
		if loc.Kind != "" {
			opts = append(opts, core.WithMetadata("kind", loc.Kind))
		}
		if err := g.AddNode(loc.ID, opts...); err != nil {
			return nil, err
		}
	}
	for _, c := range l.Corridors {
		if _, err := g.AddEdge(c.From, c.To, c.Weight); err != nil {
			return nil, fmt.Errorf("config: corridor %s-%s: %w", c.From, c.To, err)
		}
	}

	return g, nil
}

// LocationsOfKind returns the IDs of locations with the given kind, in
// declaration order.
func (l *Layout) LocationsOfKind(kind string) []string {
	var ids []string
	for _, loc := range l.Locations {
		if loc.Kind == kind {
			ids = append(ids, loc.ID)
		}
	}

	return ids
}
