package batch

import (
	"fmt"

	"github.com/isaflow/isaflow/pkg/isa"
)

// Stage is one position of a prototype chain: a single node, or a list of
// nodes for fan-in/fan-out at that position.
type Stage struct {
	nodes []isa.Node
	list  bool
}

// One returns a single-node stage.
func One(n isa.Node) Stage { return Stage{nodes: []isa.Node{n}} }

// Many returns a list stage. Replicas of its nodes are suffixed "-<x>-<y>"
// where y is the position in the list.
func Many(ns ...isa.Node) Stage { return Stage{nodes: ns, list: true} }

// ManyOf is Many for a typed slice.
func ManyOf[T isa.Node](ns []T) Stage {
	nodes := make([]isa.Node, len(ns))
	for i, n := range ns {
		nodes[i] = n
	}
	return Many(nodes...)
}

// Nodes returns the prototype nodes of the stage.
func (st Stage) Nodes() []isa.Node { return append([]isa.Node(nil), st.nodes...) }

// IsList reports whether the stage was built with Many.
func (st Stage) IsList() bool { return st.list }

// CreateAssays replicates a prototype chain of alternating material and
// process stages (material, process, material, process, material, ...) and
// returns the processes of every replica in order.
//
// Each replica walks the chain with a sliding window: the first material
// stage fills the upstream slot, the next process stage the process slot and
// the next material stage the downstream slot. When all three are filled,
// every upstream copy becomes an input and every downstream copy an output of
// each process copy, each downstream copy derives from the upstream copies,
// and the window slides so the downstream stage becomes the next upstream.
//
// Stages that are empty or hold neither materials nor processes, and a
// trailing stage that does not complete a window, are dropped without error.
// The number of replicas is set with Replicas (default 1).
func CreateAssays(chain []Stage, opts ...Option) []*isa.Process {
	s := newSettings(opts)

	var out []*isa.Process
	for x := range s.replicas {
		var upstream, downstream []isa.MaterialNode
		var procs []*isa.Process

		for i, st := range chain {
			switch stageKind(st) {
			case stageMaterial:
				copies := s.copyMaterials(st, x)
				if upstream == nil {
					upstream = copies
				} else {
					downstream = copies
				}
			case stageProcess:
				procs = s.copyProcesses(st, x)
			default:
				s.logger.Debug("stage dropped", "replica", x, "stage", i)
				continue
			}

			if upstream == nil || procs == nil || downstream == nil {
				continue
			}
			wire(upstream, procs, downstream)
			out = append(out, procs...)
			upstream, procs, downstream = downstream, nil, nil
		}

		if procs != nil || downstream != nil {
			s.logger.Debug("incomplete trailing window dropped", "replica", x)
		}
	}
	s.logger.Debug("assays created", "replicas", s.replicas, "processes", len(out))
	return out
}

func wire(upstream []isa.MaterialNode, procs []*isa.Process, downstream []isa.MaterialNode) {
	for _, p := range procs {
		for _, m := range upstream {
			p.AddInputs(m)
		}
		for _, m := range downstream {
			p.AddOutputs(m)
		}
	}
	for _, m := range downstream {
		m.SetDerivation(append([]isa.MaterialNode(nil), upstream...))
	}
}

type stageType int

const (
	stageUnsupported stageType = iota
	stageMaterial
	stageProcess
)

// stageKind classifies st by its first node.
func stageKind(st Stage) stageType {
	if len(st.nodes) == 0 || isa.IsNil(st.nodes[0]) {
		return stageUnsupported
	}
	switch st.nodes[0].(type) {
	case isa.MaterialNode:
		return stageMaterial
	case *isa.Process:
		return stageProcess
	}
	return stageUnsupported
}

func (s *settings) copyMaterials(st Stage, x int) []isa.MaterialNode {
	var out []isa.MaterialNode
	for y, n := range st.nodes {
		m, ok := n.(isa.MaterialNode)
		if !ok || isa.IsNil(n) {
			s.logger.Debug("non-material node in material stage", "node", describe(n))
			continue
		}
		out = append(out, s.copyNode(m, replicaName(st, m, x, y)).(isa.MaterialNode))
	}
	return out
}

func (s *settings) copyProcesses(st Stage, x int) []*isa.Process {
	var out []*isa.Process
	for y, n := range st.nodes {
		p, ok := n.(*isa.Process)
		if !ok || p == nil {
			s.logger.Debug("non-process node in process stage", "node", describe(n))
			continue
		}
		out = append(out, s.copyNode(p, replicaName(st, p, x, y)).(*isa.Process))
	}
	return out
}

func replicaName(st Stage, n isa.Node, x, y int) string {
	if st.list {
		return fmt.Sprintf("%s-%d-%d", n.NodeName(), x, y)
	}
	return fmt.Sprintf("%s-%d", n.NodeName(), x)
}
