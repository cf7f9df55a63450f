package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/asaskevich/govalidator"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrAreaUnresolvable  = errors.New("area could not be resolved")
)

// ValidationError carries per-field messages. errors.Is(err, ErrInvalidInput)
// holds for every ValidationError.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + e.Fields[name]
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// fieldErrors converts a govalidator failure into a ValidationError keyed by
// lower-cased field name.
func fieldErrors(err error, fallback string) *ValidationError {
	verr := &ValidationError{}
	for field, message := range govalidator.ErrorsByField(err) {
		verr.Add(strings.ToLower(field), message)
	}
	if !verr.HasErrors() {
		verr.Add(fallback, err.Error())
	}
	return verr
}
