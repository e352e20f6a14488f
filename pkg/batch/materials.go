// Package batch generates replicated materials and material/process chains
// from prototypes, and applies attribute assignments across batches.
package batch

import (
	"strconv"

	"github.com/isaflow/isaflow/pkg/isa"
)

// CreateMaterials returns n deep copies of material named "<name>-0" through
// "<name>-<n-1>". A prototype outside the material family (process, data
// file, nil) or n <= 0 yields an empty result.
func CreateMaterials(material isa.Node, n int, opts ...Option) []isa.MaterialNode {
	s := newSettings(opts)
	if _, ok := material.(isa.MaterialNode); !ok || isa.IsNil(material) {
		s.logger.Debug("unsupported material prototype", "prototype", describe(material))
		return nil
	}
	if n <= 0 {
		return nil
	}

	out := make([]isa.MaterialNode, 0, n)
	for i := range n {
		c := s.copyNode(material, material.NodeName()+"-"+strconv.Itoa(i))
		out = append(out, c.(isa.MaterialNode))
	}
	s.logger.Debug("materials created", "prototype", material.NodeName(), "kind", material.NodeKind(), "count", n)
	return out
}

// CreateMaterialsOf is CreateMaterials for a concrete material type.
func CreateMaterialsOf[T isa.MaterialNode](material T, n int, opts ...Option) []T {
	ms := CreateMaterials(material, n, opts...)
	out := make([]T, len(ms))
	for i, m := range ms {
		out[i] = m.(T)
	}
	return out
}

func describe(n isa.Node) string {
	if isa.IsNil(n) {
		return "<nil>"
	}
	return string(n.NodeKind()) + " " + strconv.Quote(n.NodeName())
}
