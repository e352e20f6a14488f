package isa

import (
	"strconv"
)

// NonEmpty is text that is guaranteed to be non-empty once constructed.
// The zero value is "unset" and is only produced by composite literals.
type NonEmpty struct {
	s string
}

// NewNonEmpty validates s.
func NewNonEmpty(s string) (NonEmpty, error) {
	if s == "" {
		return NonEmpty{}, &ValidationError{Code: ErrValidation, Entity: "NonEmpty", Message: "must not be empty"}
	}
	return NonEmpty{s: s}, nil
}

func (n NonEmpty) String() string { return n.s }

// IsZero reports whether n was never assigned.
func (n NonEmpty) IsZero() bool { return n.s == "" }

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	ValueNone ValueKind = iota
	ValueText
	ValueNumber
	ValueTerm
)

func (k ValueKind) String() string {
	switch k {
	case ValueText:
		return "text"
	case ValueNumber:
		return "number"
	case ValueTerm:
		return "term"
	}
	return "none"
}

// Value is the text | number | OntologyAnnotation union used for comment,
// characteristic, factor and parameter values, and for publication status.
// The zero value is "absent".
type Value struct {
	kind  ValueKind
	text  string
	num   float64
	isInt bool
	term  *OntologyAnnotation
}

// Text returns a text value. Empty text reads back as absent.
func Text(s string) Value { return Value{kind: ValueText, text: s} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: ValueNumber, num: f} }

// Int returns an integral numeric value.
func Int(i int) Value { return Value{kind: ValueNumber, num: float64(i), isInt: true} }

// Term returns an ontology-annotated value. A nil annotation reads back as absent.
func Term(oa *OntologyAnnotation) Value { return Value{kind: ValueTerm, term: oa} }

// ValueOf converts a Go value into a Value. Accepted: nil, string, the signed
// integer types, float32/float64, *OntologyAnnotation and Value itself.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return x, nil
	case string:
		return Text(x), nil
	case int:
		return Int(x), nil
	case int32:
		return Int(int(x)), nil
	case int64:
		return Value{kind: ValueNumber, num: float64(x), isInt: true}, nil
	case float32:
		return Number(float64(x)), nil
	case float64:
		return Number(x), nil
	case *OntologyAnnotation:
		return Term(x), nil
	}
	return Value{}, typeError("Value", "", v, "string", "int", "float", "*OntologyAnnotation", "nil")
}

// Kind reports the variant, treating empty text and nil terms as absent.
func (v Value) Kind() ValueKind {
	switch {
	case v.kind == ValueText && v.text == "":
		return ValueNone
	case v.kind == ValueTerm && v.term == nil:
		return ValueNone
	}
	return v.kind
}

// IsZero reports whether the value is absent.
func (v Value) IsZero() bool { return v.Kind() == ValueNone }

// AsText returns the text variant.
func (v Value) AsText() (string, bool) {
	if v.Kind() != ValueText {
		return "", false
	}
	return v.text, true
}

// AsNumber returns the numeric variant.
func (v Value) AsNumber() (float64, bool) {
	if v.Kind() != ValueNumber {
		return 0, false
	}
	return v.num, true
}

// AsTerm returns the ontology-annotation variant.
func (v Value) AsTerm() (*OntologyAnnotation, bool) {
	if v.Kind() != ValueTerm {
		return nil, false
	}
	return v.term, true
}

func (v Value) String() string {
	switch v.Kind() {
	case ValueText:
		return v.text
	case ValueNumber:
		if v.isInt {
			return strconv.FormatInt(int64(v.num), 10)
		}
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case ValueTerm:
		return v.term.Term
	}
	return ""
}

// Equal compares two values. Terms compare by identity.
func (v Value) Equal(o Value) bool {
	if v.Kind() != o.Kind() {
		return false
	}
	switch v.Kind() {
	case ValueText:
		return v.text == o.text
	case ValueNumber:
		return v.num == o.num
	case ValueTerm:
		return v.term == o.term
	}
	return true
}

// accepts converts raw into a Value restricted to the given kinds.
// ValueNone is always accepted.
func accepts(entity, field string, raw any, kinds ...ValueKind) (Value, error) {
	v, err := ValueOf(raw)
	if err != nil {
		return Value{}, typeError(entity, field, raw, kindNames(kinds)...)
	}
	if v.Kind() == ValueNone {
		return v, nil
	}
	for _, k := range kinds {
		if v.Kind() == k {
			return v, nil
		}
	}
	return Value{}, typeError(entity, field, raw, kindNames(kinds)...)
}

func kindNames(kinds []ValueKind) []string {
	names := make([]string, 0, len(kinds)+1)
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return append(names, "nil")
}
