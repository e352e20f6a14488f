package isa

// Protocol describes a procedure that processes apply.
type Protocol struct {
	Commentable
	ID           string
	Name         string
	ProtocolType *OntologyAnnotation
	URI          string
	Description  string
	Version      string
	Parameters   []*ProtocolParameter
	Components   []*ProtocolComponent
}

// NewProtocol returns a protocol with the given name and type; a nil type
// defaults to an empty annotation.
func NewProtocol(name string, protocolType *OntologyAnnotation) *Protocol {
	return &Protocol{Name: name, ProtocolType: annotationOrEmpty(protocolType)}
}

// Parameter returns the parameter whose name term matches name.
func (p *Protocol) Parameter(name string) (*ProtocolParameter, bool) {
	for _, pp := range p.Parameters {
		if pp.ParameterName != nil && pp.ParameterName.Term == name {
			return pp, true
		}
	}
	return nil, false
}

// AddParameter appends a parameter named name and returns it.
func (p *Protocol) AddParameter(name string) *ProtocolParameter {
	pp := NewProtocolParameter(NewOntologyAnnotation(name))
	p.Parameters = append(p.Parameters, pp)
	return pp
}

// ProtocolParameter is a named, controllable variable of a protocol.
type ProtocolParameter struct {
	Commentable
	ID            string
	ParameterName *OntologyAnnotation
}

func NewProtocolParameter(name *OntologyAnnotation) *ProtocolParameter {
	return &ProtocolParameter{ParameterName: annotationOrEmpty(name)}
}

// ProtocolComponent is an instrument, software or reagent used by a protocol.
type ProtocolComponent struct {
	Commentable
	ID            string
	Name          string
	ComponentType *OntologyAnnotation
}

func NewProtocolComponent(name string, componentType *OntologyAnnotation) *ProtocolComponent {
	return &ProtocolComponent{Name: name, ComponentType: annotationOrEmpty(componentType)}
}
