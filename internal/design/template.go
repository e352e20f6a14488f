// Package design loads YAML experiment design templates: a prototype chain
// of materials and processes plus the protocols and ontology sources it
// references, and the number of replicas to generate from it.
package design

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/isaflow/isaflow/pkg/isa"
)

// Template is a decoded design document.
type Template struct {
	Name            string               `yaml:"name"`
	Replicas        int                  `yaml:"replicas"`
	Chain           []Element            `yaml:"chain"`
	Protocols       []ProtocolSpec       `yaml:"protocols"`
	OntologySources []OntologySourceSpec `yaml:"ontology_sources"`
}

// Element is one chain position: a single node, or a YAML sequence of nodes.
type Element struct {
	Nodes []NodeSpec
	List  bool
	Line  int
}

// UnmarshalYAML accepts a node mapping or a sequence of node mappings.
func (e *Element) UnmarshalYAML(node *yaml.Node) error {
	e.Line = node.Line
	if node.Kind == yaml.SequenceNode {
		e.List = true
		return node.Decode(&e.Nodes)
	}
	var n NodeSpec
	if err := node.Decode(&n); err != nil {
		return err
	}
	e.Nodes = []NodeSpec{n}
	return nil
}

// NodeSpec describes one prototype node. In YAML it is a single-key mapping
// from the node kind to its attributes, e.g. `sample: {name: s1}`.
type NodeSpec struct {
	Kind            isa.NodeKind
	ID              string               `yaml:"id"`
	Name            string               `yaml:"name"`
	Type            string               `yaml:"type"`
	Label           string               `yaml:"label"`
	Protocol        string               `yaml:"protocol"`
	Characteristics []CharacteristicSpec `yaml:"characteristics"`
	Parameters      []ParameterSpec      `yaml:"parameters"`
	Comments        map[string]string    `yaml:"comments"`
	Line            int                  `yaml:"-"`
}

// nodeBody is NodeSpec without the custom unmarshaler.
type nodeBody NodeSpec

func (n *NodeSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: chain node must be a single-key mapping of kind to attributes", node.Line)
	}
	var body nodeBody
	if err := node.Content[1].Decode(&body); err != nil {
		return err
	}
	*n = NodeSpec(body)
	n.Kind = isa.NodeKind(node.Content[0].Value)
	n.Line = node.Line
	return nil
}

// CharacteristicSpec is a category/value/unit triple. Value may be a scalar
// or a term mapping.
type CharacteristicSpec struct {
	Category string    `yaml:"category"`
	Value    ValueSpec `yaml:"value"`
	Unit     string    `yaml:"unit"`
}

// ParameterSpec sets a protocol parameter value on a process.
type ParameterSpec struct {
	Name  string    `yaml:"name"`
	Value ValueSpec `yaml:"value"`
	Unit  string    `yaml:"unit"`
}

// ValueSpec is a scalar (text or number) or a term mapping
// {term, source, accession}.
type ValueSpec struct {
	Scalar any
	Term   *TermSpec
}

// TermSpec names an ontology term.
type TermSpec struct {
	Term      string `yaml:"term"`
	Source    string `yaml:"source"`
	Accession string `yaml:"accession"`
}

func (v *ValueSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		v.Term = &TermSpec{}
		return node.Decode(v.Term)
	}
	return node.Decode(&v.Scalar)
}

// ProtocolSpec declares a protocol shared by the processes that name it.
type ProtocolSpec struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Description string   `yaml:"description"`
	URI         string   `yaml:"uri"`
	Version     string   `yaml:"version"`
	Parameters  []string `yaml:"parameters"`
}

// OntologySourceSpec declares an ontology that terms may reference by name.
type OntologySourceSpec struct {
	Name        string `yaml:"name"`
	File        string `yaml:"file"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

var nodeKinds = map[isa.NodeKind]bool{
	isa.KindSource:         true,
	isa.KindSample:         true,
	isa.KindMaterial:       true,
	isa.KindExtract:        true,
	isa.KindLabeledExtract: true,
	isa.KindProcess:        true,
}

// Load decodes and validates a template.
func Load(r io.Reader) (*Template, error) {
	var t Template
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty design template")
		}
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadFile reads and decodes the template at path.
func LoadFile(path string) (*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Validate reports every structural problem of the template at once as a
// *multierror.Error.
func (t *Template) Validate() error {
	var errs *multierror.Error

	if t.Replicas < 0 {
		errs = multierror.Append(errs, fmt.Errorf("replicas must not be negative, got %d", t.Replicas))
	}
	if len(t.Chain) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("chain is empty"))
	}

	sources := make(map[string]bool, len(t.OntologySources))
	for i, s := range t.OntologySources {
		if s.Name == "" {
			errs = multierror.Append(errs, fmt.Errorf("ontology_sources[%d]: name is required", i))
		}
		sources[s.Name] = true
	}
	protocols := make(map[string]bool, len(t.Protocols))
	for i, p := range t.Protocols {
		switch {
		case p.Name == "":
			errs = multierror.Append(errs, fmt.Errorf("protocols[%d]: name is required", i))
		case protocols[p.Name]:
			errs = multierror.Append(errs, fmt.Errorf("protocols[%d]: duplicate protocol %q", i, p.Name))
		}
		protocols[p.Name] = true
	}

	for i, el := range t.Chain {
		if len(el.Nodes) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("chain[%d] (line %d): empty node list", i, el.Line))
			continue
		}
		for _, n := range el.Nodes {
			errs = multierror.Append(errs, n.validate(i, protocols, sources)...)
		}
	}
	return errs.ErrorOrNil()
}

func (n NodeSpec) validate(pos int, protocols, sources map[string]bool) []error {
	var errs []error
	at := fmt.Sprintf("chain[%d] (line %d)", pos, n.Line)
	if !nodeKinds[n.Kind] {
		errs = append(errs, fmt.Errorf("%s: unknown node kind %q", at, n.Kind))
	}
	if n.Name == "" {
		errs = append(errs, fmt.Errorf("%s: %s name is required", at, n.Kind))
	}
	if n.Protocol != "" && !protocols[n.Protocol] {
		errs = append(errs, fmt.Errorf("%s: unknown protocol %q", at, n.Protocol))
	}
	if n.Kind != isa.KindProcess && (n.Protocol != "" || len(n.Parameters) > 0) {
		errs = append(errs, fmt.Errorf("%s: only processes take a protocol or parameters", at))
	}
	if n.Kind == isa.KindProcess && len(n.Characteristics) > 0 {
		errs = append(errs, fmt.Errorf("%s: processes have no characteristics", at))
	}
	for _, c := range n.Characteristics {
		if c.Value.Term != nil && c.Value.Term.Source != "" && !sources[c.Value.Term.Source] {
			errs = append(errs, fmt.Errorf("%s: unknown ontology source %q", at, c.Value.Term.Source))
		}
	}
	for _, p := range n.Parameters {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s: parameter name is required", at))
		}
	}
	return errs
}
