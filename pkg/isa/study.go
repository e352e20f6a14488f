package isa

// StudyMaterials holds a study's material pools.
type StudyMaterials struct {
	Sources       []*Source
	Samples       []*Sample
	OtherMaterial []MaterialNode
}

// Study is the central unit of an investigation: subjects, protocols,
// factors, assays and the process sequence that links its materials.
type Study struct {
	Commentable
	ID                       string
	Filename                 string
	Identifier               string
	Title                    string
	Description              string
	SubmissionDate           string
	PublicReleaseDate        string
	Contacts                 []*Person
	DesignDescriptors        []*OntologyAnnotation
	Publications             []*Publication
	Factors                  []*StudyFactor
	Protocols                []*Protocol
	Assays                   []*Assay
	Materials                StudyMaterials
	ProcessSequence          []*Process
	CharacteristicCategories []*OntologyAnnotation
	Units                    []*OntologyAnnotation
}

func NewStudy(identifier, title string) *Study {
	return &Study{Identifier: identifier, Title: title}
}

// Protocol returns the study protocol with the given name.
func (s *Study) Protocol(name string) (*Protocol, bool) {
	for _, p := range s.Protocols {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Factor returns the study factor with the given name.
func (s *Study) Factor(name string) (*StudyFactor, bool) {
	for _, f := range s.Factors {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// AddMaterial files m into the matching pool: sources, samples or other material.
func (s *Study) AddMaterial(m MaterialNode) {
	switch v := m.(type) {
	case *Source:
		s.Materials.Sources = append(s.Materials.Sources, v)
	case *Sample:
		s.Materials.Samples = append(s.Materials.Samples, v)
	default:
		s.Materials.OtherMaterial = append(s.Materials.OtherMaterial, m)
	}
}

// StudyFactor is an independent variable manipulated by the experimentalist.
type StudyFactor struct {
	Commentable
	ID         string
	Name       string
	FactorType *OntologyAnnotation
}

// NewStudyFactor returns a factor; a nil type defaults to an empty annotation.
func NewStudyFactor(name string, factorType *OntologyAnnotation) *StudyFactor {
	return &StudyFactor{Name: name, FactorType: annotationOrEmpty(factorType)}
}
