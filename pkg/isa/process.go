package isa

// Process is an application of a protocol that turns inputs into outputs.
//
// Inputs and Outputs reference nodes owned by the study or assay material
// pools. PrevProcess and NextProcess form an optional chain that is
// independent of the input/output edges; outputs take precedence over
// NextProcess and inputs over PrevProcess when a graph is built.
type Process struct {
	Commentable
	ID                   string
	Name                 string
	ExecutesProtocol     *Protocol
	Date                 string
	Performer            string
	ParameterValues      []*ParameterValue
	Inputs               []Node
	Outputs              []Node
	AdditionalProperties map[string]string
	PrevProcess          *Process
	NextProcess          *Process
}

// NewProcess returns a process executing protocol; a nil protocol defaults to
// an empty one.
func NewProcess(name string, protocol *Protocol) *Process {
	if protocol == nil {
		protocol = NewProtocol("", nil)
	}
	return &Process{
		Name:                 name,
		ExecutesProtocol:     protocol,
		AdditionalProperties: map[string]string{},
	}
}

func (p *Process) NodeID() string { return p.ID }
func (p *Process) NodeName() string { return p.Name }
func (p *Process) NodeKind() NodeKind { return KindProcess }
func (p *Process) SetNodeID(id string) { p.ID = id }
func (p *Process) SetNodeName(name string) { p.Name = name }
func (p *Process) Clone() *Process { return newCloner(false).process(p) }

// AddInputs appends nodes to Inputs.
func (p *Process) AddInputs(nodes ...Node) { p.Inputs = append(p.Inputs, nodes...) }

// AddOutputs appends nodes to Outputs.
func (p *Process) AddOutputs(nodes ...Node) { p.Outputs = append(p.Outputs, nodes...) }

// SetParameter records value for the executed protocol's parameter called
// name, adding the parameter to the protocol if it does not exist yet.
func (p *Process) SetParameter(name string, value any, unit *OntologyAnnotation) error {
	if p.ExecutesProtocol == nil {
		p.ExecutesProtocol = NewProtocol("", nil)
	}
	param, ok := p.ExecutesProtocol.Parameter(name)
	if !ok {
		param = p.ExecutesProtocol.AddParameter(name)
	}
	pv, err := NewParameterValue(param, value, unit)
	if err != nil {
		return err
	}
	p.ParameterValues = append(p.ParameterValues, pv)
	return nil
}

// Link chains prev and next through PrevProcess/NextProcess.
func Link(prev, next *Process) {
	prev.NextProcess = next
	next.PrevProcess = prev
}
