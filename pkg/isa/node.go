// Package isa models ISA (Investigation/Study/Assay) experiment metadata: the
// organisational containers, the materials and data files that flow through
// processes, and the ontology annotations attached to them.
package isa

import "reflect"

// NodeKind identifies the concrete type of a graph node.
type NodeKind string

const (
	KindSource         NodeKind = "source"
	KindSample         NodeKind = "sample"
	KindMaterial       NodeKind = "material"
	KindExtract        NodeKind = "extract"
	KindLabeledExtract NodeKind = "labeled_extract"
	KindDataFile       NodeKind = "data_file"
	KindProcess        NodeKind = "process"
)

func (k NodeKind) String() string { return string(k) }

// IsMaterial reports whether k belongs to the material family.
func (k NodeKind) IsMaterial() bool {
	switch k {
	case KindSource, KindSample, KindMaterial, KindExtract, KindLabeledExtract:
		return true
	}
	return false
}

// Node is anything that can appear in a process graph: materials, data files
// and processes.
type Node interface {
	NodeID() string
	NodeName() string
	NodeKind() NodeKind
	SetNodeID(id string)
	SetNodeName(name string)
}

// MaterialNode is a Node from the material family (Source, Sample, Material,
// Extract, LabeledExtract).
type MaterialNode interface {
	Node
	Chars() []*Characteristic
	// Derivation returns the upstream materials this one derives from.
	// A single upstream is a one-element slice.
	Derivation() []MaterialNode
	SetDerivation(from []MaterialNode)
}

// IsNil reports whether n is nil or a typed nil pointer.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Names returns the node names of ns in order.
func Names[T Node](ns []T) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.NodeName()
	}
	return out
}
