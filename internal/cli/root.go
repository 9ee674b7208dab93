// Package cli implements the heros command line: facility routing, network
// optimization and scripted triage sessions.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heros/config"
	"github.com/katalvlaran/heros/core"
)

// app carries what every subcommand shares.
type app struct {
	fs       afero.Fs
	out      io.Writer
	log      *logrus.Logger
	logLevel string
}

// NewRootCommand builds the command tree. Files are read from fs, results
// are written to out and logs to errOut.
func NewRootCommand(fs afero.Fs, out, errOut io.Writer) *cobra.Command {
	a := &app{fs: fs, out: out, log: logrus.New()}
	a.log.SetOutput(errOut)

	root := &cobra.Command{
		Use:           "heros",
		Short:         "Emergency triage scheduling and facility routing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(a.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", a.logLevel, err)
			}
			a.log.SetLevel(level)

			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	root.AddCommand(a.routeCommand(), a.networkCommand(), a.triageCommand())

	return root
}

// Execute runs the CLI against the real file system.
func Execute() {
	root := NewRootCommand(afero.NewOsFs(), os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func (a *app) loadGraph(path string) (*config.Layout, *core.Graph, error) {
	layout, err := config.LoadLayout(a.fs, path)
	if err != nil {
		return nil, nil, err
	}
	g, err := layout.Graph()
	if err != nil {
		return nil, nil, err
	}
	a.log.WithFields(logrus.Fields{
		"layout":    layout.Name,
		"locations": g.NodeCount(),
		"corridors": g.EdgeCount(),
	}).Info("layout loaded")

	return layout, g, nil
}
