package verity

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/verity-go/verity/pkg/paths"
)

// ErrInvalidSchema tells that a schema value is malformed or of unrecognized kind.
// It signals a programming error: the engine panics with an error wrapping
// this sentinel instead of reporting a validation failure.
var ErrInvalidSchema = errors.New("invalid schema")

// ConstraintError tells that a whole-value constraint rejected the value.
type ConstraintError struct {
	Path       paths.Path
	Constraint string
	Value      any
}

func (e ConstraintError) Error() string {
	if e.Path.Len() == 0 {
		return fmt.Sprintf("value did not satisfy constraint '%s'", e.Constraint)
	}

	return fmt.Sprintf("value at path %q did not satisfy constraint '%s'", e.Path.String(), e.Constraint)
}

// ExtraneousPathError tells that data contains a path not declared by a strict map schema.
type ExtraneousPathError struct {
	Path paths.Path
}

func (e ExtraneousPathError) Error() string {
	return fmt.Sprintf("path %q was not specified in the schema", e.Path.String())
}

// MissingPathError tells that data does not contain a required declared path.
type MissingPathError struct {
	Path paths.Path
}

func (e MissingPathError) Error() string {
	return fmt.Sprintf("map did not contain expected path %q", e.Path.String())
}

// PredicateError tells that a predicate schema rejected the value.
type PredicateError struct {
	Path      paths.Path
	Value     any
	Predicate string
}

func (e PredicateError) Error() string {
	if e.Path.Len() == 0 {
		return fmt.Sprintf("value %+v did not satisfy predicate '%s'", e.Value, e.Predicate)
	}

	return fmt.Sprintf("value %+v at path %q did not satisfy predicate '%s'", e.Value, e.Path.String(), e.Predicate)
}

// TypeError tells that the value's runtime type does not match a class schema.
type TypeError struct {
	Path  paths.Path
	Value any
	Want  reflect.Type
}

func (e TypeError) Error() string {
	got := "nil"
	if t := reflect.TypeOf(e.Value); t != nil {
		got = t.String()
	}

	if e.Path.Len() == 0 {
		return fmt.Sprintf("expected value %+v to be of type %s, got %s", e.Value, e.Want, got)
	}

	return fmt.Sprintf("expected value %+v at path %q to be of type %s, got %s", e.Value, e.Path.String(), e.Want, got)
}
