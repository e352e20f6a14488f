package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/isaflow/isaflow/pkg/isa"
)

// CycleError is returned by TopologicalOrder when the graph is not acyclic.
// Nodes lists, in insertion order, every node that lies on a cycle or
// downstream of one.
type CycleError struct {
	Nodes []isa.Node
}

func (e *CycleError) Error() string {
	names := make([]string, len(e.Nodes))
	for i, n := range e.Nodes {
		names[i] = fmt.Sprintf("%s %q", n.NodeKind(), n.NodeName())
	}
	return fmt.Sprintf("graph contains a cycle involving: %s", strings.Join(names, ", "))
}

// TopologicalOrder returns the nodes so that every edge points forward, using
// Kahn's algorithm. Ties are broken by insertion order, so the result is
// deterministic for a given Build input.
func (g *Graph) TopologicalOrder() ([]isa.Node, error) {
	inDegree := make([]int, len(g.nodes))
	for _, e := range g.edges {
		inDegree[g.index[e.To]]++
	}

	var queue []int
	for i, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]isa.Node, 0, len(g.nodes))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		n := g.nodes[i]
		order = append(order, n)

		for _, succ := range g.succ[n] {
			j := g.index[succ]
			inDegree[j]--
			if inDegree[j] == 0 {
				pos, _ := slices.BinarySearch(queue, j)
				queue = slices.Insert(queue, pos, j)
			}
		}
	}

	if len(order) != len(g.nodes) {
		var cycle []isa.Node
		for i, deg := range inDegree {
			if deg > 0 {
				cycle = append(cycle, g.nodes[i])
			}
		}
		return nil, &CycleError{Nodes: cycle}
	}
	return order, nil
}
