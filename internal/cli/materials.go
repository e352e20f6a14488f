package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isaflow/isaflow/internal/design"
	"github.com/isaflow/isaflow/pkg/batch"
	"github.com/isaflow/isaflow/pkg/isa"
)

func newMaterialsCmd() *cobra.Command {
	var (
		flagKind  string
		flagName  string
		flagCount int
		flagSet   []string
	)

	cmd := &cobra.Command{
		Use:   "materials",
		Short: "Create a batch of named material copies",
		Example: `  isaflow materials --kind sample --name S -n 3
  isaflow materials --kind material --name cells -n 2 --set type=cell`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proto, err := design.NewMaterial(isa.NodeKind(flagKind), flagName)
			if err != nil {
				return err
			}
			proto.SetNodeID(design.NewNodeID(proto.NodeKind()))

			items := batch.CreateMaterials(proto, flagCount, batchOptions()...)
			setters := make([]isa.AttrSetter, len(items))
			for i, m := range items {
				setters[i] = m.(isa.AttrSetter)
			}
			for _, kv := range flagSet {
				attr, val, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("--set %q: want attr=value", kv)
				}
				if err := batch.SetAttr(setters, attr, val); err != nil {
					return fmt.Errorf("--set %s: %w", attr, err)
				}
			}

			out := cmd.OutOrStdout()
			for _, m := range items {
				fmt.Fprintf(out, "%s\t%s\t%s\n", m.NodeID(), m.NodeKind(), m.NodeName())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flagKind, "kind", "sample", "Material kind (source, sample, material, extract, labeled_extract)")
	cmd.Flags().StringVar(&flagName, "name", "", "Prototype name")
	cmd.Flags().IntVarP(&flagCount, "count", "n", 1, "Number of copies")
	cmd.Flags().StringArrayVar(&flagSet, "set", nil, "Set attr=value on every copy (repeatable)")
	cmd.MarkFlagRequired("name")
	return cmd
}
