package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/isaflow/isaflow/pkg/isa"
)

func newBatchCmd() *cobra.Command {
	var flagCheck bool

	cmd := &cobra.Command{
		Use:   "batch <template.yaml>",
		Short: "Replicate a design template and list the generated processes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := loadTemplate(args[0])
			if err != nil {
				return err
			}
			study, err := tmpl.Study(batchOptions()...)
			if err != nil {
				return fmt.Errorf("build %s: %w", args[0], err)
			}
			assay := study.Assays[0]

			out := cmd.OutOrStdout()
			for _, p := range assay.ProcessSequence {
				printProcess(out, p)
			}
			fmt.Fprintf(out, "\n%d processes, %d sources, %d samples, %d other materials\n",
				len(assay.ProcessSequence), len(study.Materials.Sources), len(assay.Materials.Samples), len(assay.Materials.OtherMaterial))

			if !flagCheck {
				return nil
			}
			if err := study.CheckMaterialPools(); err != nil {
				var merr *multierror.Error
				if errors.As(err, &merr) {
					for _, e := range merr.Errors {
						logger.Warn("material pool check", "error", e)
					}
				}
				return fmt.Errorf("material pool check failed")
			}
			logger.Info("material pools consistent", "processes", len(assay.ProcessSequence))
			return nil
		},
	}

	replicaFlags(cmd)
	cmd.Flags().BoolVar(&flagCheck, "check", false, "Verify every process input/output is registered in the study or assay material pools")
	return cmd
}

// printProcess writes "in1, in2 -> process -> out1" on one line.
func printProcess(w io.Writer, p *isa.Process) {
	fmt.Fprintf(w, "%s -> %s -> %s\n",
		strings.Join(isa.Names(p.Inputs), ", "), p.Name, strings.Join(isa.Names(p.Outputs), ", "))
}
