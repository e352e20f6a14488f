package isa

// OntologySource describes the controlled vocabulary an annotation's term is
// taken from. Many annotations may reference one source.
type OntologySource struct {
	Commentable
	name        NonEmpty
	File        string
	Version     string
	Description string
}

// NewOntologySource validates the required name.
func NewOntologySource(name string) (*OntologySource, error) {
	s := &OntologySource{}
	if err := s.SetName(name); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *OntologySource) Name() string { return s.name.String() }

func (s *OntologySource) SetName(name string) error {
	n, err := NewNonEmpty(name)
	if err != nil {
		return emptyError("OntologySource", "name")
	}
	s.name = n
	return nil
}

// OntologyAnnotation is a controlled-vocabulary term plus its source and accession.
type OntologyAnnotation struct {
	Commentable
	ID            string
	Term          string
	TermSource    *OntologySource
	TermAccession string
}

// NewOntologyAnnotation returns an annotation for term with no source.
func NewOntologyAnnotation(term string) *OntologyAnnotation {
	return &OntologyAnnotation{Term: term}
}

// Accession returns the term accession, or "" when no term is set.
func (oa *OntologyAnnotation) Accession() string {
	if oa == nil || oa.Term == "" {
		return ""
	}
	return oa.TermAccession
}

// IsEmpty reports whether the annotation carries no term, source or accession.
func (oa *OntologyAnnotation) IsEmpty() bool {
	return oa == nil || (oa.Term == "" && oa.TermSource == nil && oa.TermAccession == "")
}

// SetAttr assigns term, term_source, term_accession, id or comments.
func (oa *OntologyAnnotation) SetAttr(name string, value any) error {
	const entity = "OntologyAnnotation"
	switch name {
	case "term":
		return setString(entity, name, &oa.Term, value)
	case "term_accession":
		return setString(entity, name, &oa.TermAccession, value)
	case "id":
		return setString(entity, name, &oa.ID, value)
	case "term_source":
		switch x := value.(type) {
		case nil:
			oa.TermSource = nil
		case *OntologySource:
			oa.TermSource = x
		default:
			return typeError(entity, name, value, "*OntologySource", "nil")
		}
		return nil
	case "comments":
		return setComments(entity, &oa.Comments, value)
	}
	return unknownAttrError(entity, name)
}

func annotationOrEmpty(oa *OntologyAnnotation) *OntologyAnnotation {
	if oa == nil {
		return &OntologyAnnotation{}
	}
	return oa
}
