package isa

// Investigation is the root container of an ISA package. There is exactly one
// per package by convention.
type Investigation struct {
	Commentable
	ID                       string
	Filename                 string
	Identifier               string
	Title                    string
	Description              string
	SubmissionDate           string
	PublicReleaseDate        string
	OntologySourceReferences []*OntologySource
	Publications             []*Publication
	Contacts                 []*Person
	Studies                  []*Study
}

// OntologySource returns the registered source with the given name.
func (inv *Investigation) OntologySource(name string) (*OntologySource, bool) {
	for _, s := range inv.OntologySourceReferences {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// Person is a contact attributed to an investigation or study.
type Person struct {
	Commentable
	ID          string
	LastName    string
	FirstName   string
	MidInitials string
	Email       string
	Phone       string
	Fax         string
	Address     string
	Affiliation string
	Roles       []*OntologyAnnotation
}

// Publication is a paper associated with an investigation or study.
type Publication struct {
	Commentable
	PubMedID   string
	DOI        string
	AuthorList string
	Title      string
	status     Value
}

// Status returns the publication status (text or term), or the zero Value.
func (p *Publication) Status() Value { return p.status }

// SetStatus accepts plain text, an *OntologyAnnotation or nil.
func (p *Publication) SetStatus(status any) error {
	v, err := accepts("Publication", "status", status, ValueText, ValueTerm)
	if err != nil {
		return err
	}
	p.status = v
	return nil
}
