package isa

// AttrSetter assigns an attribute by its model name (e.g. "name",
// "derives_from", "characteristics"). Assignments are validated against the
// attribute's accepted types; on failure the attribute keeps its previous
// value and a *ValidationError is returned.
type AttrSetter interface {
	SetAttr(name string, value any) error
}

var (
	_ AttrSetter = (*Source)(nil)
	_ AttrSetter = (*Sample)(nil)
	_ AttrSetter = (*Material)(nil)
	_ AttrSetter = (*Extract)(nil)
	_ AttrSetter = (*LabeledExtract)(nil)
	_ AttrSetter = (*DataFile)(nil)
	_ AttrSetter = (*Process)(nil)
	_ AttrSetter = (*Comment)(nil)
	_ AttrSetter = (*OntologyAnnotation)(nil)
	_ AttrSetter = (*Characteristic)(nil)
)

func (s *Source) SetAttr(name string, value any) error {
	const entity = "Source"
	switch name {
	case "id":
		return setString(entity, name, &s.ID, value)
	case "name":
		return setString(entity, name, &s.Name, value)
	case "characteristics":
		return setCharacteristics(entity, &s.Characteristics, value)
	case "derives_from":
		return setDerivation(entity, &s.DerivesFrom, value)
	case "comments":
		return setComments(entity, &s.Comments, value)
	}
	return unknownAttrError(entity, name)
}

func (s *Sample) SetAttr(name string, value any) error {
	const entity = "Sample"
	switch name {
	case "id":
		return setString(entity, name, &s.ID, value)
	case "name":
		return setString(entity, name, &s.Name, value)
	case "characteristics":
		return setCharacteristics(entity, &s.Characteristics, value)
	case "factor_values":
		switch x := value.(type) {
		case nil:
			s.FactorValues = nil
		case []*FactorValue:
			s.FactorValues = x
		default:
			return typeError(entity, name, value, "[]*FactorValue", "nil")
		}
		return nil
	case "derives_from":
		return setDerivation(entity, &s.DerivesFrom, value)
	case "comments":
		return setComments(entity, &s.Comments, value)
	}
	return unknownAttrError(entity, name)
}

func (m *Material) SetAttr(name string, value any) error {
	return m.setAttr("Material", name, value)
}

func (m *Material) setAttr(entity, name string, value any) error {
	switch name {
	case "id":
		return setString(entity, name, &m.ID, value)
	case "name":
		return setString(entity, name, &m.Name, value)
	case "type":
		return setString(entity, name, &m.Type, value)
	case "characteristics":
		return setCharacteristics(entity, &m.Characteristics, value)
	case "derives_from":
		return setDerivation(entity, &m.DerivesFrom, value)
	case "comments":
		return setComments(entity, &m.Comments, value)
	}
	return unknownAttrError(entity, name)
}

// SetAttr rejects "type", which is fixed to ExtractType.
func (e *Extract) SetAttr(name string, value any) error {
	if name == "type" {
		return &ValidationError{Code: ErrValidation, Entity: "Extract", Field: name, Message: "type is fixed to " + ExtractType}
	}
	return e.setAttr("Extract", name, value)
}

func (l *LabeledExtract) SetAttr(name string, value any) error {
	const entity = "LabeledExtract"
	switch name {
	case "type":
		return &ValidationError{Code: ErrValidation, Entity: entity, Field: name, Message: "type is fixed to " + ExtractType}
	case "label":
		return setString(entity, name, &l.Label, value)
	}
	return l.setAttr(entity, name, value)
}

func (d *DataFile) SetAttr(name string, value any) error {
	const entity = "DataFile"
	switch name {
	case "id":
		return setString(entity, name, &d.ID, value)
	case "filename", "name":
		return setString(entity, name, &d.Filename, value)
	case "label":
		return setString(entity, name, &d.Label, value)
	case "comments":
		return setComments(entity, &d.Comments, value)
	}
	return unknownAttrError(entity, name)
}

func (p *Process) SetAttr(name string, value any) error {
	const entity = "Process"
	switch name {
	case "id":
		return setString(entity, name, &p.ID, value)
	case "name":
		return setString(entity, name, &p.Name, value)
	case "date":
		return setString(entity, name, &p.Date, value)
	case "performer":
		return setString(entity, name, &p.Performer, value)
	case "executes_protocol":
		switch x := value.(type) {
		case nil:
			p.ExecutesProtocol = nil
		case *Protocol:
			p.ExecutesProtocol = x
		default:
			return typeError(entity, name, value, "*Protocol", "nil")
		}
		return nil
	case "parameter_values":
		switch x := value.(type) {
		case nil:
			p.ParameterValues = nil
		case []*ParameterValue:
			p.ParameterValues = x
		default:
			return typeError(entity, name, value, "[]*ParameterValue", "nil")
		}
		return nil
	case "inputs":
		return setNodes(entity, name, &p.Inputs, value)
	case "outputs":
		return setNodes(entity, name, &p.Outputs, value)
	case "prev_process":
		return setProcess(entity, name, &p.PrevProcess, value)
	case "next_process":
		return setProcess(entity, name, &p.NextProcess, value)
	case "comments":
		return setComments(entity, &p.Comments, value)
	}
	return unknownAttrError(entity, name)
}

func (c *Comment) SetAttr(name string, value any) error {
	switch name {
	case "name":
		s, ok := value.(string)
		if !ok {
			return typeError("Comment", name, value, "string")
		}
		return c.SetName(s)
	case "value":
		return c.SetValue(value)
	}
	return unknownAttrError("Comment", name)
}

func setString(entity, field string, dst *string, v any) error {
	switch x := v.(type) {
	case nil:
		*dst = ""
	case string:
		*dst = x
	default:
		return typeError(entity, field, v, "string", "nil")
	}
	return nil
}

func setCharacteristics(entity string, dst *[]*Characteristic, v any) error {
	switch x := v.(type) {
	case nil:
		*dst = nil
	case []*Characteristic:
		*dst = x
	default:
		return typeError(entity, "characteristics", v, "[]*Characteristic", "nil")
	}
	return nil
}

// setDerivation accepts a single material or a list of materials.
func setDerivation(entity string, dst *[]MaterialNode, v any) error {
	switch x := v.(type) {
	case nil:
		*dst = nil
	case []MaterialNode:
		*dst = x
	case MaterialNode:
		*dst = []MaterialNode{x}
	default:
		return typeError(entity, "derives_from", v, "MaterialNode", "[]MaterialNode", "nil")
	}
	return nil
}

func setNodes(entity, field string, dst *[]Node, v any) error {
	switch x := v.(type) {
	case nil:
		*dst = nil
	case []Node:
		*dst = x
	case []MaterialNode:
		out := make([]Node, len(x))
		for i, m := range x {
			out[i] = m
		}
		*dst = out
	default:
		return typeError(entity, field, v, "[]Node", "[]MaterialNode", "nil")
	}
	return nil
}

func setProcess(entity, field string, dst **Process, v any) error {
	switch x := v.(type) {
	case nil:
		*dst = nil
	case *Process:
		*dst = x
	default:
		return typeError(entity, field, v, "*Process", "nil")
	}
	return nil
}
