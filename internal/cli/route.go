package cli

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heros/dijkstra"
)

func (a *app) routeCommand() *cobra.Command {
	var layoutPath, from, to string

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Print the shortest route between two locations",
		Long: "Print the shortest route between two locations.\n" +
			"Without --to, print the distance from --from to every location.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == "" {
				return errors.New("--from is required")
			}
			_, g, err := a.loadGraph(layoutPath)
			if err != nil {
				return err
			}
			router, err := dijkstra.NewRouter(g)
			if err != nil {
				return err
			}

			if to == "" {
				dist := router.AllShortestPaths(from)
				for _, id := range g.Nodes() {
					d := dist[id]
					if math.IsInf(d, 1) {
						fmt.Fprintf(a.out, "%-12s unreachable\n", id)
						continue
					}
					fmt.Fprintf(a.out, "%-12s %.2f\n", id, d)
				}
				return nil
			}
			fmt.Fprintln(a.out, router.ShortestPath(from, to))

			return nil
		},
	}
	cmd.Flags().StringVar(&layoutPath, "layout", "layout.yaml", "Facility layout file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&from, "from", "", "Start location")
	cmd.Flags().StringVar(&to, "to", "", "Destination location")

	return cmd
}
