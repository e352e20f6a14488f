package design

import (
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/isaflow/isaflow/pkg/batch"
	"github.com/isaflow/isaflow/pkg/isa"
)

// NewNodeID returns a fresh identifier of the form "#<kind>/<uuid>".
func NewNodeID(kind isa.NodeKind) string {
	return "#" + kind.String() + "/" + uuid.New().String()
}

// NewMaterial returns an empty prototype material of the given kind.
func NewMaterial(kind isa.NodeKind, name string) (isa.MaterialNode, error) {
	switch kind {
	case isa.KindSource:
		return isa.NewSource(name), nil
	case isa.KindSample:
		return isa.NewSample(name), nil
	case isa.KindMaterial:
		return isa.NewMaterial(name, ""), nil
	case isa.KindExtract:
		return isa.NewExtract(name), nil
	case isa.KindLabeledExtract:
		return isa.NewLabeledExtract(name, ""), nil
	}
	return nil, fmt.Errorf("unsupported material kind %q", kind)
}

// prototypes holds the shared objects of one Stages call.
type prototypes struct {
	protocols map[string]*isa.Protocol
	sources   map[string]*isa.OntologySource
}

// Stages builds the prototype chain. Protocols and ontology sources are
// created once and shared by every node that names them. Nodes without an
// id receive one from NewNodeID.
func (t *Template) Stages() ([]batch.Stage, error) {
	p, err := t.prototypes()
	if err != nil {
		return nil, err
	}

	var errs *multierror.Error
	stages := make([]batch.Stage, 0, len(t.Chain))
	for i, el := range t.Chain {
		nodes := make([]isa.Node, 0, len(el.Nodes))
		for _, spec := range el.Nodes {
			n, err := p.node(spec)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("chain[%d] (line %d): %w", i, spec.Line, err))
				continue
			}
			nodes = append(nodes, n)
		}
		if el.List {
			stages = append(stages, batch.Many(nodes...))
		} else if len(nodes) == 1 {
			stages = append(stages, batch.One(nodes[0]))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return stages, nil
}

// Build replicates the template chain Replicas times (at least once) and
// returns the generated process sequence. opts are passed to
// batch.CreateAssays after the template's replica count, so a Replicas
// option overrides it.
func (t *Template) Build(opts ...batch.Option) ([]*isa.Process, error) {
	stages, err := t.Stages()
	if err != nil {
		return nil, err
	}
	opts = append([]batch.Option{batch.Replicas(t.Replicas)}, opts...)
	return batch.CreateAssays(stages, opts...), nil
}

// Assay builds the template into an assay whose material pools hold every
// generated material and data file.
func (t *Template) Assay(opts ...batch.Option) (*isa.Assay, error) {
	seq, err := t.Build(opts...)
	if err != nil {
		return nil, err
	}
	a := isa.NewAssay(nil, nil)
	a.Filename = "a_" + t.Name + ".txt"
	a.AddProcesses(seq...)
	return a, nil
}

// Study wraps the template's assay in a study that pools the sources the
// assay leaves out, so a source-led chain passes Study.CheckMaterialPools.
func (t *Template) Study(opts ...batch.Option) (*isa.Study, error) {
	a, err := t.Assay(opts...)
	if err != nil {
		return nil, err
	}
	s := isa.NewStudy(t.Name, "")
	s.Filename = "s_" + t.Name + ".txt"
	s.Assays = []*isa.Assay{a}

	seen := make(map[*isa.Source]bool)
	for _, p := range a.ProcessSequence {
		for _, n := range p.Inputs {
			if src, ok := n.(*isa.Source); ok && src != nil && !seen[src] {
				seen[src] = true
				s.AddMaterial(src)
			}
		}
	}
	return s, nil
}

func (t *Template) prototypes() (*prototypes, error) {
	p := &prototypes{
		protocols: make(map[string]*isa.Protocol, len(t.Protocols)),
		sources:   make(map[string]*isa.OntologySource, len(t.OntologySources)),
	}
	var errs *multierror.Error
	for _, s := range t.OntologySources {
		src, err := isa.NewOntologySource(s.Name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		src.File, src.Version, src.Description = s.File, s.Version, s.Description
		p.sources[s.Name] = src
	}
	for _, ps := range t.Protocols {
		proto := isa.NewProtocol(ps.Name, isa.NewOntologyAnnotation(ps.Type))
		proto.ID = "#protocol/" + uuid.New().String()
		proto.Description, proto.URI, proto.Version = ps.Description, ps.URI, ps.Version
		for _, name := range ps.Parameters {
			proto.AddParameter(name)
		}
		p.protocols[ps.Name] = proto
	}
	return p, errs.ErrorOrNil()
}

func (p *prototypes) node(spec NodeSpec) (isa.Node, error) {
	var n isa.Node
	switch spec.Kind {
	case isa.KindProcess:
		proc, err := p.process(spec)
		if err != nil {
			return nil, err
		}
		n = proc
	default:
		m, err := NewMaterial(spec.Kind, spec.Name)
		if err != nil {
			return nil, err
		}
		switch v := m.(type) {
		case *isa.Material:
			v.Type = spec.Type
		case *isa.LabeledExtract:
			v.Label = spec.Label
		}
		chars, err := p.characteristics(spec.Characteristics)
		if err != nil {
			return nil, err
		}
		if err := m.(isa.AttrSetter).SetAttr("characteristics", chars); err != nil {
			return nil, err
		}
		n = m
	}

	id := spec.ID
	if id == "" {
		id = NewNodeID(spec.Kind)
	}
	n.SetNodeID(id)

	if len(spec.Comments) > 0 {
		c, ok := n.(interface {
			AddComment(name string, value any) error
		})
		if ok {
			for _, name := range slices.Sorted(maps.Keys(spec.Comments)) {
				if err := c.AddComment(name, spec.Comments[name]); err != nil {
					return nil, err
				}
			}
		}
	}
	return n, nil
}

func (p *prototypes) process(spec NodeSpec) (*isa.Process, error) {
	var proto *isa.Protocol
	if spec.Protocol != "" {
		var ok bool
		if proto, ok = p.protocols[spec.Protocol]; !ok {
			return nil, fmt.Errorf("unknown protocol %q", spec.Protocol)
		}
	}
	proc := isa.NewProcess(spec.Name, proto)
	for _, ps := range spec.Parameters {
		val, err := p.value(ps.Value)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", ps.Name, err)
		}
		if err := proc.SetParameter(ps.Name, val, unit(ps.Unit)); err != nil {
			return nil, fmt.Errorf("parameter %q: %w", ps.Name, err)
		}
	}
	return proc, nil
}

func (p *prototypes) characteristics(specs []CharacteristicSpec) ([]*isa.Characteristic, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make([]*isa.Characteristic, 0, len(specs))
	for _, cs := range specs {
		val, err := p.value(cs.Value)
		if err != nil {
			return nil, fmt.Errorf("characteristic %q: %w", cs.Category, err)
		}
		ch, err := isa.NewCharacteristic(isa.NewOntologyAnnotation(cs.Category), val, unit(cs.Unit))
		if err != nil {
			return nil, fmt.Errorf("characteristic %q: %w", cs.Category, err)
		}
		out = append(out, ch)
	}
	return out, nil
}

// value converts a decoded value into something isa.ValueOf accepts.
func (p *prototypes) value(v ValueSpec) (any, error) {
	if v.Term != nil {
		oa := isa.NewOntologyAnnotation(v.Term.Term)
		oa.TermAccession = v.Term.Accession
		if v.Term.Source != "" {
			src, ok := p.sources[v.Term.Source]
			if !ok {
				return nil, fmt.Errorf("unknown ontology source %q", v.Term.Source)
			}
			oa.TermSource = src
		}
		return oa, nil
	}
	switch x := v.Scalar.(type) {
	case nil, string, int, float64:
		return x, nil
	}
	return nil, fmt.Errorf("unsupported value %v (%T)", v.Scalar, v.Scalar)
}

func unit(name string) *isa.OntologyAnnotation {
	if name == "" {
		return nil
	}
	return isa.NewOntologyAnnotation(name)
}
