// Package render writes process graphs for visualization tools: Graphviz DOT
// and a JSON node/edge list.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/isaflow/isaflow/pkg/graph"
	"github.com/isaflow/isaflow/pkg/isa"
)

// nodeID is the stable identifier of the node at graph index i.
func nodeID(i int) string { return "n" + strconv.Itoa(i) }

func shape(k isa.NodeKind) string {
	switch k {
	case isa.KindProcess:
		return "box"
	case isa.KindDataFile:
		return "note"
	case isa.KindSource:
		return "doubleoctagon"
	}
	return "ellipse"
}

// DOT writes g as a Graphviz digraph. Node identifiers follow graph insertion
// order, so output is stable for a given graph.
func DOT(w io.Writer, g *graph.Graph) error {
	_, err := io.WriteString(w, `digraph G {
	rankdir=LR
	node [fontsize=10]

`)
	if err != nil {
		return err
	}

	for i, n := range g.Nodes() {
		_, err := fmt.Fprintf(w, "\t%s [label=%s shape=%s tooltip=%s];\n",
			nodeID(i), strconv.Quote(n.NodeName()), shape(n.NodeKind()), strconv.Quote(n.NodeKind().String()))
		if err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "\t%s -> %s;\n", nodeID(g.Index(e.From)), nodeID(g.Index(e.To))); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "}\n")
	return err
}

// JSONNode is a node entry of the JSON rendering.
type JSONNode struct {
	ID     string       `json:"id"`
	NodeID string       `json:"node_id,omitempty"`
	Name   string       `json:"name"`
	Kind   isa.NodeKind `json:"kind"`
}

// JSONEdge is an edge entry of the JSON rendering.
type JSONEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// JSONGraph is the document written by JSON.
type JSONGraph struct {
	Nodes []JSONNode `json:"nodes"`
	Edges []JSONEdge `json:"edges"`
}

// NewJSONGraph converts g into its JSON document form.
func NewJSONGraph(g *graph.Graph) JSONGraph {
	doc := JSONGraph{Nodes: []JSONNode{}, Edges: []JSONEdge{}}
	for i, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, JSONNode{
			ID:     nodeID(i),
			NodeID: n.NodeID(),
			Name:   n.NodeName(),
			Kind:   n.NodeKind(),
		})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, JSONEdge{From: nodeID(g.Index(e.From)), To: nodeID(g.Index(e.To))})
	}
	return doc
}

// JSON writes g as indented JSON.
func JSON(w io.Writer, g *graph.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewJSONGraph(g))
}
