package isa

import (
	"fmt"
	"strings"
)

// ErrorCode classifies a model error.
type ErrorCode string

const (
	ErrValidation       ErrorCode = "VALIDATION_ERROR"
	ErrUnknownAttribute ErrorCode = "UNKNOWN_ATTRIBUTE"
	ErrDanglingRef      ErrorCode = "DANGLING_REFERENCE"
)

// ValidationError is returned by setters when an assigned value is outside the
// accepted set for a field, or when required text is empty. The target field
// keeps its previous value.
type ValidationError struct {
	Code    ErrorCode
	Entity  string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Entity, e.Message)
	}
	return fmt.Sprintf("%s: %s.%s: %s", e.Code, e.Entity, e.Field, e.Message)
}

func emptyError(entity, field string) *ValidationError {
	return &ValidationError{
		Code:    ErrValidation,
		Entity:  entity,
		Field:   field,
		Message: "must not be empty",
	}
}

func typeError(entity, field string, got any, accepted ...string) *ValidationError {
	return &ValidationError{
		Code:    ErrValidation,
		Entity:  entity,
		Field:   field,
		Message: fmt.Sprintf("got %T, expected one of [%s]", got, strings.Join(accepted, ", ")),
	}
}

func unknownAttrError(entity, field string) *ValidationError {
	return &ValidationError{
		Code:    ErrUnknownAttribute,
		Entity:  entity,
		Field:   field,
		Message: "no such attribute",
	}
}

// DanglingRefError reports a process input or output that is not registered
// in the material pools of its owning study or assay.
type DanglingRefError struct {
	Process string
	Node    string
	Kind    NodeKind
	Role    string // "input" or "output"
}

func (e *DanglingRefError) Error() string {
	return fmt.Sprintf("%s: process %q %s %s %q is not in any material pool",
		ErrDanglingRef, e.Process, e.Role, e.Kind, e.Node)
}
