package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isaflow/isaflow/internal/config"
	"github.com/isaflow/isaflow/internal/render"
	"github.com/isaflow/isaflow/pkg/graph"
)

func newGraphCmd() *cobra.Command {
	var flagAcyclic bool

	cmd := &cobra.Command{
		Use:   "graph <template.yaml>",
		Short: "Render the process graph of a replicated design template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := loadTemplate(args[0])
			if err != nil {
				return err
			}
			seq, err := tmpl.Build(batchOptions()...)
			if err != nil {
				return fmt.Errorf("build %s: %w", args[0], err)
			}

			g := graph.Build(seq)
			logger.Debug("graph built", "nodes", g.Len(), "edges", g.EdgeCount())
			if flagAcyclic {
				if _, err := g.TopologicalOrder(); err != nil {
					return err
				}
			}

			switch cfg.GraphFormat {
			case "json":
				return render.JSON(cmd.OutOrStdout(), g)
			default:
				return render.DOT(cmd.OutOrStdout(), g)
			}
		},
	}

	replicaFlags(cmd)
	cmd.Flags().StringVar(&cfg.GraphFormat, "format", cfg.GraphFormat, "Output format (dot, json) (or "+config.EnvGraphFormat+" env)")
	cmd.Flags().BoolVar(&flagAcyclic, "acyclic", false, "Fail if the graph contains a cycle")
	return cmd
}
