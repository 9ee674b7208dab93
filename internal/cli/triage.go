package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heros/config"
	"github.com/katalvlaran/heros/core"
	"github.com/katalvlaran/heros/dispatch"
	"github.com/katalvlaran/heros/triage"
)

// scenarioClock starts at a fixed instant and moves only on "wait" actions,
// so a replay prints the same urgencies every run.
type scenarioClock struct{ t time.Time }

func (c *scenarioClock) Now() time.Time { return c.t }

var scenarioStart = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func (a *app) triageCommand() *cobra.Command {
	var (
		scenarioPath, layoutPath, policy string
		undoCapacity, critical           int
	)

	cmd := &cobra.Command{
		Use:   "triage",
		Short: "Replay a scripted triage session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := config.LoadScenario(a.fs, scenarioPath)
			if err != nil {
				return err
			}
			g := core.NewGraph()
			if layoutPath != "" {
				if _, g, err = a.loadGraph(layoutPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("policy") {
				sc.Policy = policy
			}
			if cmd.Flags().Changed("undo-capacity") {
				sc.UndoCapacity = undoCapacity
			}

			clock := &scenarioClock{t: scenarioStart}
			sys, err := a.newSystem(g, sc, clock)
			if err != nil {
				return err
			}
			for _, ps := range sc.Patients {
				p, err := sys.Register(ps.Patient(clock.Now()))
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "register  %s\n", p)
			}
			for i, act := range sc.Actions {
				if err := a.play(sys, clock, act); err != nil {
					return fmt.Errorf("action %d (%s): %w", i, act.Op, err)
				}
			}

			if critical > 0 {
				fmt.Fprintln(a.out, "most urgent:")
				for _, p := range sys.Critical(critical) {
					fmt.Fprintf(a.out, "  %s\n", p)
				}
			}
			fmt.Fprintln(a.out, sys.Report())

			return nil
		},
	}
	cmd.Flags().StringVar(&scenarioPath, "scenario", "scenario.yaml", "Scenario file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&layoutPath, "layout", "", "Facility layout file; required for locations and transfers")
	cmd.Flags().StringVar(&policy, "policy", triage.PolicyWaitWeighted, fmt.Sprintf("Urgency policy %v", triage.PolicyNames()))
	cmd.Flags().IntVar(&undoCapacity, "undo-capacity", dispatch.DefaultUndoCapacity, "Number of changes that can be undone")
	cmd.Flags().IntVar(&critical, "critical", 0, "Print the N most urgent waiting patients at the end")

	return cmd
}

func (a *app) newSystem(g *core.Graph, sc *config.Scenario, clock *scenarioClock) (*dispatch.System, error) {
	pol, err := triage.NewPolicy(sc.Policy)
	if err != nil {
		return nil, err
	}
	opts := []dispatch.Option{
		dispatch.WithLogger(a.log),
		dispatch.WithClock(clock.Now),
		dispatch.WithPolicy(pol),
	}
	if sc.UndoCapacity > 0 {
		opts = append(opts, dispatch.WithUndoCapacity(sc.UndoCapacity))
	}
	if sc.Thresholds != nil {
		opts = append(opts, dispatch.WithThresholds(*sc.Thresholds))
	}

	return dispatch.New(g, opts...)
}

// play applies one scenario action and prints its outcome. An empty queue on
// "next" or an empty history on "undo" is reported, not fatal.
func (a *app) play(sys *dispatch.System, clock *scenarioClock, act config.Action) error {
	switch act.Op {
	case config.ActionNext:
		p, err := sys.Next()
		if errors.Is(err, triage.ErrEmpty) {
			fmt.Fprintln(a.out, "next      queue is empty")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "next      %s\n", p)
	case config.ActionReprioritize:
		p, err := sys.Reprioritize(act.Patient, *act.Vitals)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "reprio    %s\n", p)
	case config.ActionTransfer:
		route, err := sys.Transfer(act.Patient, act.To)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "transfer  %s %s\n", act.Patient, route)
	case config.ActionStatus:
		st, err := config.ParseStatus(act.Status)
		if err != nil {
			return err
		}
		if _, err := sys.SetStatus(act.Patient, st); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "status    %s %s\n", act.Patient, st)
	case config.ActionDischarge:
		if _, err := sys.Discharge(act.Patient); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "discharge %s\n", act.Patient)
	case config.ActionUndo:
		snap, err := sys.Undo()
		if errors.Is(err, dispatch.ErrNothingToUndo) {
			fmt.Fprintln(a.out, "undo      nothing to undo")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "undo      %s %s\n", snap.Operation, snap.Patient.ID)
	case config.ActionRefresh:
		sys.Refresh()
		fmt.Fprintln(a.out, "refresh")
	case config.ActionWait:
		clock.t = clock.t.Add(time.Duration(act.Minutes * float64(time.Minute)))
		fmt.Fprintf(a.out, "wait      %.0fm\n", act.Minutes)
	default:
		return fmt.Errorf("unknown op %q", act.Op)
	}

	return nil
}
