package isa

// ExtractType is the literal material type carried by extracts and labeled extracts.
const ExtractType = "Extract Name"

// Source is a starting material of a study (e.g. a subject or specimen).
type Source struct {
	Commentable
	ID              string
	Name            string
	Characteristics []*Characteristic
	DerivesFrom     []MaterialNode
}

func NewSource(name string, chars ...*Characteristic) *Source {
	return &Source{Name: name, Characteristics: chars}
}

func (s *Source) NodeID() string { return s.ID }
func (s *Source) NodeName() string { return s.Name }
func (s *Source) NodeKind() NodeKind { return KindSource }
func (s *Source) SetNodeID(id string) { s.ID = id }
func (s *Source) SetNodeName(name string) { s.Name = name }
func (s *Source) Chars() []*Characteristic { return s.Characteristics }
func (s *Source) Derivation() []MaterialNode { return s.DerivesFrom }
func (s *Source) SetDerivation(from []MaterialNode) { s.DerivesFrom = from }
func (s *Source) Clone() *Source { return newCloner(false).source(s) }

// Sample is a material that participates in assays and carries factor values.
type Sample struct {
	Commentable
	ID              string
	Name            string
	FactorValues    []*FactorValue
	Characteristics []*Characteristic
	DerivesFrom     []MaterialNode
}

func NewSample(name string, from ...MaterialNode) *Sample {
	return &Sample{Name: name, DerivesFrom: from}
}

func (s *Sample) NodeID() string { return s.ID }
func (s *Sample) NodeName() string { return s.Name }
func (s *Sample) NodeKind() NodeKind { return KindSample }
func (s *Sample) SetNodeID(id string) { s.ID = id }
func (s *Sample) SetNodeName(name string) { s.Name = name }
func (s *Sample) Chars() []*Characteristic { return s.Characteristics }
func (s *Sample) Derivation() []MaterialNode { return s.DerivesFrom }
func (s *Sample) SetDerivation(from []MaterialNode) { s.DerivesFrom = from }
func (s *Sample) Clone() *Sample { return newCloner(false).sample(s) }

// Material is an intermediate material with a free-text type.
type Material struct {
	Commentable
	ID              string
	Name            string
	Type            string
	Characteristics []*Characteristic
	DerivesFrom     []MaterialNode
}

func NewMaterial(name, typ string, from ...MaterialNode) *Material {
	return &Material{Name: name, Type: typ, DerivesFrom: from}
}

func (m *Material) NodeID() string { return m.ID }
func (m *Material) NodeName() string { return m.Name }
func (m *Material) NodeKind() NodeKind { return KindMaterial }
func (m *Material) SetNodeID(id string) { m.ID = id }
func (m *Material) SetNodeName(name string) { m.Name = name }
func (m *Material) Chars() []*Characteristic { return m.Characteristics }
func (m *Material) Derivation() []MaterialNode { return m.DerivesFrom }
func (m *Material) SetDerivation(from []MaterialNode) { m.DerivesFrom = from }
func (m *Material) Clone() *Material { return newCloner(false).material(m) }

// Extract is a Material whose type is fixed to ExtractType. SetAttr rejects
// changes to it; the promoted Type field is not guarded, but copies are
// always reset to ExtractType.
type Extract struct {
	Material
}

func NewExtract(name string, from ...MaterialNode) *Extract {
	return &Extract{Material: Material{Name: name, Type: ExtractType, DerivesFrom: from}}
}

func (e *Extract) NodeKind() NodeKind { return KindExtract }
func (e *Extract) Clone() *Extract { return newCloner(false).extract(e) }

// LabeledExtract is an Extract carrying a label (e.g. a dye).
type LabeledExtract struct {
	Extract
	Label string
}

func NewLabeledExtract(name, label string, from ...MaterialNode) *LabeledExtract {
	return &LabeledExtract{Extract: *NewExtract(name, from...), Label: label}
}

func (l *LabeledExtract) NodeKind() NodeKind { return KindLabeledExtract }
func (l *LabeledExtract) Clone() *LabeledExtract { return newCloner(false).labeledExtract(l) }

// DataFile is a measurement artifact produced by a process. It is a sink in
// the process graph.
type DataFile struct {
	Commentable
	ID       string
	Filename string
	Label    string
}

func NewDataFile(filename, label string) *DataFile {
	return &DataFile{Filename: filename, Label: label}
}

func (d *DataFile) NodeID() string { return d.ID }
func (d *DataFile) NodeName() string { return d.Filename }
func (d *DataFile) NodeKind() NodeKind { return KindDataFile }
func (d *DataFile) SetNodeID(id string) { d.ID = id }
func (d *DataFile) SetNodeName(name string) { d.Filename = name }
func (d *DataFile) Clone() *DataFile { return newCloner(false).dataFile(d) }
