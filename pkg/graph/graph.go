// Package graph builds the directed material/process flow graph of a study or
// assay from its process sequence.
//
// The graph is a derived view: it is recomputed from the sequence on every
// Build call and holds only non-owning references to the model nodes.
package graph

import (
	"github.com/isaflow/isaflow/pkg/isa"
)

// Edge is a directed edge between two nodes.
type Edge struct {
	From isa.Node
	To   isa.Node
}

// Graph is a simple directed graph over model nodes. Nodes and edges are kept
// in insertion order; parallel edges are collapsed.
type Graph struct {
	nodes   []isa.Node
	index   map[isa.Node]int
	succ    map[isa.Node][]isa.Node
	pred    map[isa.Node][]isa.Node
	edges   []Edge
	edgeSet map[Edge]bool
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		index:   make(map[isa.Node]int),
		succ:    make(map[isa.Node][]isa.Node),
		pred:    make(map[isa.Node][]isa.Node),
		edgeSet: make(map[Edge]bool),
	}
}

// Build constructs the flow graph of seq. Per process p, in order:
//
//   - forward: p -> o for every output that is not a data file; when p has
//     no outputs, p -> p.NextProcess instead.
//   - backward: i -> p for every input; when p has no inputs,
//     p.PrevProcess -> p instead.
//
// A process with none of these contributes nothing and does not appear in the
// graph. Build never fails, never mutates its input, and does not check for
// cycles (see TopologicalOrder).
func Build(seq []*isa.Process) *Graph {
	g := New()
	for _, p := range seq {
		if p == nil {
			continue
		}

		if len(p.Outputs) > 0 {
			for _, o := range p.Outputs {
				if isa.IsNil(o) || o.NodeKind() == isa.KindDataFile {
					continue
				}
				g.AddEdge(p, o)
			}
		} else if p.NextProcess != nil {
			g.AddEdge(p, p.NextProcess)
		}

		if len(p.Inputs) > 0 {
			for _, i := range p.Inputs {
				if isa.IsNil(i) {
					continue
				}
				g.AddEdge(i, p)
			}
		} else if p.PrevProcess != nil {
			g.AddEdge(p.PrevProcess, p)
		}
	}
	return g
}

// AddNode adds n if it is not already present.
func (g *Graph) AddNode(n isa.Node) {
	if _, ok := g.index[n]; ok {
		return
	}
	g.index[n] = len(g.nodes)
	g.nodes = append(g.nodes, n)
}

// AddEdge adds from -> to, adding either endpoint as needed. It reports
// whether the edge was new.
func (g *Graph) AddEdge(from, to isa.Node) bool {
	e := Edge{From: from, To: to}
	if g.edgeSet[e] {
		return false
	}
	g.AddNode(from)
	g.AddNode(to)
	g.edgeSet[e] = true
	g.edges = append(g.edges, e)
	g.succ[from] = append(g.succ[from], to)
	g.pred[to] = append(g.pred[to], from)
	return true
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []isa.Node { return append([]isa.Node(nil), g.nodes...) }

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []Edge { return append([]Edge(nil), g.edges...) }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Has reports whether n is a node of g.
func (g *Graph) Has(n isa.Node) bool {
	_, ok := g.index[n]
	return ok
}

// Index returns n's insertion position, or -1.
func (g *Graph) Index(n isa.Node) int {
	if i, ok := g.index[n]; ok {
		return i
	}
	return -1
}

// HasEdge reports whether the edge from -> to is in g.
func (g *Graph) HasEdge(from, to isa.Node) bool { return g.edgeSet[Edge{From: from, To: to}] }

// Successors returns the direct downstream nodes of n.
func (g *Graph) Successors(n isa.Node) []isa.Node {
	return append([]isa.Node(nil), g.succ[n]...)
}

// Predecessors returns the direct upstream nodes of n.
func (g *Graph) Predecessors(n isa.Node) []isa.Node {
	return append([]isa.Node(nil), g.pred[n]...)
}

// Roots returns the nodes with no incoming edge.
func (g *Graph) Roots() []isa.Node {
	var out []isa.Node
	for _, n := range g.nodes {
		if len(g.pred[n]) == 0 {
			out = append(out, n)
		}
	}
	return out
}

// Leaves returns the nodes with no outgoing edge.
func (g *Graph) Leaves() []isa.Node {
	var out []isa.Node
	for _, n := range g.nodes {
		if len(g.succ[n]) == 0 {
			out = append(out, n)
		}
	}
	return out
}
