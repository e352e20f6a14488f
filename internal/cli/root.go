package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/isaflow/isaflow/internal/config"
	"github.com/isaflow/isaflow/internal/design"
	"github.com/isaflow/isaflow/internal/logging"
	"github.com/isaflow/isaflow/pkg/batch"
)

var (
	cfg       config.CLIConfig
	flagDebug bool

	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for the isaflow CLI.
func NewRootCmd() *cobra.Command {
	cfg = config.DefaultCLIConfig()
	envErr := cfg.ApplyEnv()

	root := &cobra.Command{
		Use:   "isaflow",
		Short: "isaflow: ISA experiment graphs and batch replication",
		Long:  "isaflow replicates ISA material/process chains from YAML design templates and renders their process graphs.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			if flagDebug {
				cfg.LogLevel = "debug"
			}
			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			format, err := logging.ParseFormat(cfg.LogFormat)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger = logging.NewLoggerWithWriter(level, format, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error) (or "+config.EnvLogLevel+" env)")
	root.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json) (or "+config.EnvLogFormat+" env)")

	root.AddCommand(
		newBatchCmd(),
		newGraphCmd(),
		newMaterialsCmd(),
	)

	return root
}

// batchOptions returns the batch options selected by the global config.
func batchOptions() []batch.Option {
	opts := []batch.Option{
		batch.WithLogger(logger),
		batch.WithFreshIDs(design.NewNodeID),
	}
	if cfg.SharedRefs {
		opts = append(opts, batch.WithSharedReferences())
	}
	if cfg.Replicas > 0 {
		opts = append(opts, batch.Replicas(cfg.Replicas))
	}
	return opts
}

// loadTemplate reads a design template and logs its shape.
func loadTemplate(path string) (*design.Template, error) {
	tmpl, err := design.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("template loaded", "path", path, "name", tmpl.Name, "stages", len(tmpl.Chain), "replicas", tmpl.Replicas)
	return tmpl, nil
}

func replicaFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&cfg.Replicas, "replicas", "n", cfg.Replicas, "Override the template's replica count (or "+config.EnvReplicas+" env)")
	cmd.Flags().BoolVar(&cfg.SharedRefs, "shared-refs", false, "Share derives_from and term sources with the prototypes instead of copying them")
}
