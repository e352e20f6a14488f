package isa

import "maps"

// DeepCopy returns an independent copy of n and everything reachable from it.
//
// Objects shared inside n stay shared inside the copy (each original pointer
// is copied once per call), so reference cycles are preserved rather than
// followed forever. With shareRefs set, the weak references DerivesFrom,
// TermSource, ExecutesProtocol, Inputs, Outputs, PrevProcess and NextProcess
// keep pointing at the original objects.
func DeepCopy(n Node, shareRefs bool) Node {
	return newCloner(shareRefs).node(n)
}

type cloner struct {
	shareRefs bool
	seen      map[any]any
}

func newCloner(shareRefs bool) *cloner {
	return &cloner{shareRefs: shareRefs, seen: make(map[any]any)}
}

func (c *cloner) node(n Node) Node {
	if IsNil(n) {
		return n
	}
	switch v := n.(type) {
	case *Source:
		return c.source(v)
	case *Sample:
		return c.sample(v)
	case *Material:
		return c.material(v)
	case *Extract:
		return c.extract(v)
	case *LabeledExtract:
		return c.labeledExtract(v)
	case *DataFile:
		return c.dataFile(v)
	case *Process:
		return c.process(v)
	}
	return n
}

func (c *cloner) nodes(ns []Node) []Node {
	if ns == nil {
		return nil
	}
	out := make([]Node, len(ns))
	if c.shareRefs {
		copy(out, ns)
		return out
	}
	for i, n := range ns {
		out[i] = c.node(n)
	}
	return out
}

func (c *cloner) derivation(ms []MaterialNode) []MaterialNode {
	if ms == nil {
		return nil
	}
	out := make([]MaterialNode, len(ms))
	if c.shareRefs {
		copy(out, ms)
		return out
	}
	for i, m := range ms {
		if IsNil(m) {
			out[i] = m
			continue
		}
		out[i] = c.node(m).(MaterialNode)
	}
	return out
}

func (c *cloner) source(s *Source) *Source {
	if s == nil {
		return nil
	}
	if d, ok := c.seen[s]; ok {
		return d.(*Source)
	}
	d := &Source{ID: s.ID, Name: s.Name}
	c.seen[s] = d
	d.Comments = c.comments(s.Comments)
	d.Characteristics = c.characteristics(s.Characteristics)
	d.DerivesFrom = c.derivation(s.DerivesFrom)
	return d
}

func (c *cloner) sample(s *Sample) *Sample {
	if s == nil {
		return nil
	}
	if d, ok := c.seen[s]; ok {
		return d.(*Sample)
	}
	d := &Sample{ID: s.ID, Name: s.Name}
	c.seen[s] = d
	d.Comments = c.comments(s.Comments)
	d.Characteristics = c.characteristics(s.Characteristics)
	if s.FactorValues != nil {
		d.FactorValues = make([]*FactorValue, len(s.FactorValues))
		for i, fv := range s.FactorValues {
			d.FactorValues[i] = c.factorValue(fv)
		}
	}
	d.DerivesFrom = c.derivation(s.DerivesFrom)
	return d
}

func (c *cloner) material(m *Material) *Material {
	if m == nil {
		return nil
	}
	if d, ok := c.seen[m]; ok {
		return d.(*Material)
	}
	d := &Material{}
	c.seen[m] = d
	c.fillMaterial(d, m)
	return d
}

func (c *cloner) extract(e *Extract) *Extract {
	if e == nil {
		return nil
	}
	if d, ok := c.seen[e]; ok {
		return d.(*Extract)
	}
	d := &Extract{}
	c.seen[e] = d
	c.fillMaterial(&d.Material, &e.Material)
	d.Type = ExtractType
	return d
}

func (c *cloner) labeledExtract(l *LabeledExtract) *LabeledExtract {
	if l == nil {
		return nil
	}
	if d, ok := c.seen[l]; ok {
		return d.(*LabeledExtract)
	}
	d := &LabeledExtract{Label: l.Label}
	c.seen[l] = d
	c.fillMaterial(&d.Material, &l.Material)
	d.Type = ExtractType
	return d
}

func (c *cloner) fillMaterial(dst, src *Material) {
	dst.ID = src.ID
	dst.Name = src.Name
	dst.Type = src.Type
	dst.Comments = c.comments(src.Comments)
	dst.Characteristics = c.characteristics(src.Characteristics)
	dst.DerivesFrom = c.derivation(src.DerivesFrom)
}

func (c *cloner) dataFile(f *DataFile) *DataFile {
	if f == nil {
		return nil
	}
	if d, ok := c.seen[f]; ok {
		return d.(*DataFile)
	}
	d := &DataFile{ID: f.ID, Filename: f.Filename, Label: f.Label}
	c.seen[f] = d
	d.Comments = c.comments(f.Comments)
	return d
}

func (c *cloner) process(p *Process) *Process {
	if p == nil {
		return nil
	}
	if d, ok := c.seen[p]; ok {
		return d.(*Process)
	}
	d := &Process{ID: p.ID, Name: p.Name, Date: p.Date, Performer: p.Performer}
	c.seen[p] = d
	d.Comments = c.comments(p.Comments)
	d.AdditionalProperties = maps.Clone(p.AdditionalProperties)
	if c.shareRefs {
		d.ExecutesProtocol = p.ExecutesProtocol
		d.PrevProcess = p.PrevProcess
		d.NextProcess = p.NextProcess
	} else {
		d.ExecutesProtocol = c.protocol(p.ExecutesProtocol)
		d.PrevProcess = c.process(p.PrevProcess)
		d.NextProcess = c.process(p.NextProcess)
	}
	if p.ParameterValues != nil {
		d.ParameterValues = make([]*ParameterValue, len(p.ParameterValues))
		for i, pv := range p.ParameterValues {
			d.ParameterValues[i] = c.parameterValue(pv)
		}
	}
	d.Inputs = c.nodes(p.Inputs)
	d.Outputs = c.nodes(p.Outputs)
	return d
}

func (c *cloner) protocol(p *Protocol) *Protocol {
	if p == nil {
		return nil
	}
	if d, ok := c.seen[p]; ok {
		return d.(*Protocol)
	}
	d := &Protocol{ID: p.ID, Name: p.Name, URI: p.URI, Description: p.Description, Version: p.Version}
	c.seen[p] = d
	d.Comments = c.comments(p.Comments)
	d.ProtocolType = c.annotation(p.ProtocolType)
	if p.Parameters != nil {
		d.Parameters = make([]*ProtocolParameter, len(p.Parameters))
		for i, pp := range p.Parameters {
			d.Parameters[i] = c.protocolParameter(pp)
		}
	}
	if p.Components != nil {
		d.Components = make([]*ProtocolComponent, len(p.Components))
		for i, pc := range p.Components {
			d.Components[i] = c.protocolComponent(pc)
		}
	}
	return d
}

func (c *cloner) protocolParameter(pp *ProtocolParameter) *ProtocolParameter {
	if pp == nil {
		return nil
	}
	if d, ok := c.seen[pp]; ok {
		return d.(*ProtocolParameter)
	}
	d := &ProtocolParameter{ID: pp.ID}
	c.seen[pp] = d
	d.Comments = c.comments(pp.Comments)
	d.ParameterName = c.annotation(pp.ParameterName)
	return d
}

func (c *cloner) protocolComponent(pc *ProtocolComponent) *ProtocolComponent {
	if pc == nil {
		return nil
	}
	if d, ok := c.seen[pc]; ok {
		return d.(*ProtocolComponent)
	}
	d := &ProtocolComponent{ID: pc.ID, Name: pc.Name}
	c.seen[pc] = d
	d.Comments = c.comments(pc.Comments)
	d.ComponentType = c.annotation(pc.ComponentType)
	return d
}

func (c *cloner) parameterValue(pv *ParameterValue) *ParameterValue {
	if pv == nil {
		return nil
	}
	d := &ParameterValue{Value: c.value(pv.Value), Unit: c.annotation(pv.Unit)}
	// the parameter belongs to the executed protocol
	if c.shareRefs {
		d.Category = pv.Category
	} else {
		d.Category = c.protocolParameter(pv.Category)
	}
	return d
}

func (c *cloner) characteristics(chs []*Characteristic) []*Characteristic {
	if chs == nil {
		return nil
	}
	out := make([]*Characteristic, len(chs))
	for i, ch := range chs {
		out[i] = c.characteristic(ch)
	}
	return out
}

func (c *cloner) characteristic(ch *Characteristic) *Characteristic {
	if ch == nil {
		return nil
	}
	if d, ok := c.seen[ch]; ok {
		return d.(*Characteristic)
	}
	d := &Characteristic{}
	c.seen[ch] = d
	d.Comments = c.comments(ch.Comments)
	d.Category = c.annotation(ch.Category)
	d.Value = c.value(ch.Value)
	d.Unit = c.annotation(ch.Unit)
	return d
}

func (c *cloner) factorValue(fv *FactorValue) *FactorValue {
	if fv == nil {
		return nil
	}
	d := &FactorValue{Value: c.value(fv.Value), Unit: c.annotation(fv.Unit)}
	d.Comments = c.comments(fv.Comments)
	d.FactorName = c.studyFactor(fv.FactorName)
	return d
}

func (c *cloner) studyFactor(f *StudyFactor) *StudyFactor {
	if f == nil {
		return nil
	}
	if d, ok := c.seen[f]; ok {
		return d.(*StudyFactor)
	}
	d := &StudyFactor{ID: f.ID, Name: f.Name}
	c.seen[f] = d
	d.Comments = c.comments(f.Comments)
	d.FactorType = c.annotation(f.FactorType)
	return d
}

func (c *cloner) annotation(oa *OntologyAnnotation) *OntologyAnnotation {
	if oa == nil {
		return nil
	}
	if d, ok := c.seen[oa]; ok {
		return d.(*OntologyAnnotation)
	}
	d := &OntologyAnnotation{ID: oa.ID, Term: oa.Term, TermAccession: oa.TermAccession}
	c.seen[oa] = d
	d.Comments = c.comments(oa.Comments)
	if c.shareRefs {
		d.TermSource = oa.TermSource
	} else {
		d.TermSource = c.ontologySource(oa.TermSource)
	}
	return d
}

func (c *cloner) ontologySource(s *OntologySource) *OntologySource {
	if s == nil {
		return nil
	}
	if d, ok := c.seen[s]; ok {
		return d.(*OntologySource)
	}
	d := &OntologySource{name: s.name, File: s.File, Version: s.Version, Description: s.Description}
	c.seen[s] = d
	d.Comments = c.comments(s.Comments)
	return d
}

func (c *cloner) value(v Value) Value {
	if v.kind == ValueTerm && v.term != nil {
		v.term = c.annotation(v.term)
	}
	return v
}

// comment values never hold terms, so a slice copy is a deep copy
func (c *cloner) comments(cs []Comment) []Comment {
	if cs == nil {
		return nil
	}
	return append([]Comment(nil), cs...)
}

// Clone returns a deep copy of the characteristic.
func (ch *Characteristic) Clone() *Characteristic { return newCloner(false).characteristic(ch) }
