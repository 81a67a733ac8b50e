package verity

import (
	"reflect"

	"github.com/verity-go/verity/pkg/paths"
)

// Predicate describes a named check over a whole value.
//
// Any type with these two methods may serve as a predicate; the pred
// package holds ready to use implementations. A predicate that panics
// during evaluation is treated as if it returned false.
type Predicate interface {
	// Name identifies the predicate in error messages.
	Name() string

	// Accepts tells whether v satisfies the predicate.
	Accepts(v any) bool
}

// Reporter describes entity that has ability to build one error
// representation per validation failure kind.
//
// Every factory receives the current validation Context plus kind-specific
// arguments. Returned errors must stay programmatically distinguishable by
// kind; DefaultReporter produces the failure types defined in this package.
type Reporter interface {
	// ConstraintError reports a whole-value constraint rejecting the value.
	ConstraintError(c Context, constraint Predicate) error

	// ExtraneousPathError reports a data path not declared by a strict map schema.
	ExtraneousPathError(c Context, path paths.Path) error

	// MissingPathError reports a required declared path absent from the data.
	MissingPathError(c Context, path paths.Path) error

	// PredicateFailError reports a value rejected by a predicate schema.
	PredicateFailError(c Context, value any, pred Predicate) error

	// InstanceOfFailError reports a value of unexpected runtime type.
	InstanceOfFailError(c Context, value any, want reflect.Type) error
}
