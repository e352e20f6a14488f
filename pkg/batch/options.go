package batch

import (
	"log/slog"

	"github.com/isaflow/isaflow/pkg/isa"
)

type settings struct {
	shareRefs bool
	freshID   func(kind isa.NodeKind) string
	replicas  int
	logger    *slog.Logger
}

func newSettings(opts []Option) *settings {
	s := &settings{replicas: 1}
	for _, opt := range opts {
		opt(s)
	}
	if s.replicas < 1 {
		s.replicas = 1
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	s.logger = s.logger.With("component", "batch")
	return s
}

// Option configures a batch operation.
type Option func(*settings)

// WithSharedReferences keeps the weak references of each copy (derives_from,
// term sources, executed protocols, process links) pointing at the
// prototype's targets. By default the copy is total.
func WithSharedReferences() Option {
	return func(s *settings) {
		s.shareRefs = true
	}
}

// WithFreshIDs assigns fn(kind) as the ID of every created node.
func WithFreshIDs(fn func(kind isa.NodeKind) string) Option {
	return func(s *settings) {
		s.freshID = fn
	}
}

// Replicas sets how many times CreateAssays replicates the chain. Values
// below 1 mean 1.
func Replicas(n int) Option {
	return func(s *settings) {
		s.replicas = n
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// copyNode deep-copies n and renames it to name.
func (s *settings) copyNode(n isa.Node, name string) isa.Node {
	c := isa.DeepCopy(n, s.shareRefs)
	c.SetNodeName(name)
	if s.freshID != nil {
		c.SetNodeID(s.freshID(c.NodeKind()))
	}
	return c
}
