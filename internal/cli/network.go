package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heros/prim_kruskal"
)

func (a *app) networkCommand() *cobra.Command {
	var (
		layoutPath, method, kind, root string
		rooms                          []string
	)

	cmd := &cobra.Command{
		Use:   "network",
		Short: "Compute the cheapest network joining facility locations",
		Long: "Compute a minimum spanning tree over the facility, or over a subset of\n" +
			"rooms chosen with --rooms or --kind (e.g. an oxygen line joining ICU rooms).",
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, g, err := a.loadGraph(layoutPath)
			if err != nil {
				return err
			}
			if kind != "" {
				rooms = append(rooms, layout.LocationsOfKind(kind)...)
			}
			opts := prim_kruskal.DefaultOptions(prim_kruskal.WithMethod(method), prim_kruskal.WithRoot(root))

			var res *prim_kruskal.Result
			if len(rooms) > 0 {
				res, err = prim_kruskal.Subnetwork(g, rooms, opts)
			} else {
				if opts.Method == prim_kruskal.MethodPrim && opts.Root == "" {
					if nodes := g.Nodes(); len(nodes) > 0 {
						opts.Root = nodes[0]
					}
				}
				res, err = prim_kruskal.Compute(g, opts)
			}
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"method":     res.Method,
				"considered": res.EdgesConsidered,
				"elapsed":    res.Elapsed.String(),
			}).Debug("spanning tree computed")

			for _, e := range res.Edges {
				fmt.Fprintf(a.out, "%s - %s  %.2f\n", e.From, e.To, e.Weight)
			}
			fmt.Fprintln(a.out, res)

			return nil
		},
	}
	cmd.Flags().StringVar(&layoutPath, "layout", "layout.yaml", "Facility layout file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&method, "method", prim_kruskal.MethodKruskal, "Algorithm: kruskal or prim")
	cmd.Flags().StringVar(&root, "root", "", "Start location for prim")
	cmd.Flags().StringSliceVar(&rooms, "rooms", nil, "Comma-separated locations to connect")
	cmd.Flags().StringVar(&kind, "kind", "", "Connect every location of this kind")

	return cmd
}
