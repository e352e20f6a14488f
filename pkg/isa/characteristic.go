package isa

// Characteristic is a category/value/unit description of a material.
type Characteristic struct {
	Commentable
	Category *OntologyAnnotation
	Value    Value
	Unit     *OntologyAnnotation
}

// NewCharacteristic builds a characteristic; a nil category defaults to an
// empty annotation. value must be text, a number or an *OntologyAnnotation.
func NewCharacteristic(category *OntologyAnnotation, value any, unit *OntologyAnnotation) (*Characteristic, error) {
	v, err := accepts("Characteristic", "value", value, ValueText, ValueNumber, ValueTerm)
	if err != nil {
		return nil, err
	}
	return &Characteristic{Category: annotationOrEmpty(category), Value: v, Unit: unit}, nil
}

// SetAttr assigns category, value, unit or comments.
func (c *Characteristic) SetAttr(name string, value any) error {
	const entity = "Characteristic"
	switch name {
	case "category":
		return setAnnotation(entity, name, &c.Category, value)
	case "unit":
		return setAnnotation(entity, name, &c.Unit, value)
	case "value":
		v, err := accepts(entity, name, value, ValueText, ValueNumber, ValueTerm)
		if err != nil {
			return err
		}
		c.Value = v
		return nil
	case "comments":
		return setComments(entity, &c.Comments, value)
	}
	return unknownAttrError(entity, name)
}

// FactorValue records the level of a study factor applied to a sample.
type FactorValue struct {
	Commentable
	FactorName *StudyFactor
	Value      Value
	Unit       *OntologyAnnotation
}

// NewFactorValue builds a factor value; a nil factor defaults to an empty one.
func NewFactorValue(factor *StudyFactor, value any, unit *OntologyAnnotation) (*FactorValue, error) {
	v, err := accepts("FactorValue", "value", value, ValueText, ValueNumber, ValueTerm)
	if err != nil {
		return nil, err
	}
	if factor == nil {
		factor = NewStudyFactor("", nil)
	}
	return &FactorValue{FactorName: factor, Value: v, Unit: unit}, nil
}

// ParameterValue records the value a protocol parameter took in one process.
type ParameterValue struct {
	Category *ProtocolParameter
	Value    Value
	Unit     *OntologyAnnotation
}

// NewParameterValue builds a parameter value; a nil parameter defaults to an
// empty one.
func NewParameterValue(param *ProtocolParameter, value any, unit *OntologyAnnotation) (*ParameterValue, error) {
	v, err := accepts("ParameterValue", "value", value, ValueText, ValueNumber, ValueTerm)
	if err != nil {
		return nil, err
	}
	if param == nil {
		param = NewProtocolParameter(nil)
	}
	return &ParameterValue{Category: param, Value: v, Unit: unit}, nil
}

func setAnnotation(entity, field string, dst **OntologyAnnotation, v any) error {
	switch x := v.(type) {
	case nil:
		*dst = nil
	case *OntologyAnnotation:
		*dst = x
	default:
		return typeError(entity, field, v, "*OntologyAnnotation", "nil")
	}
	return nil
}
