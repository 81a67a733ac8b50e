package verity

import (
	"reflect"

	"github.com/verity-go/verity/pkg/paths"
)

// DefaultReporter builds the failure types defined in this package.
// Inject your own Reporter through ValidationErrorsAt when a different
// error representation is needed.
type DefaultReporter struct{}

// NewDefaultReporter returns ready to work DefaultReporter.
func NewDefaultReporter() DefaultReporter { return DefaultReporter{} }

func (DefaultReporter) ConstraintError(c Context, constraint Predicate) error {
	return ConstraintError{Path: c.FullPath(), Constraint: constraint.Name(), Value: c.Value()}
}

func (DefaultReporter) ExtraneousPathError(c Context, path paths.Path) error {
	return ExtraneousPathError{Path: path}
}

func (DefaultReporter) MissingPathError(c Context, path paths.Path) error {
	return MissingPathError{Path: path}
}

func (DefaultReporter) PredicateFailError(c Context, value any, pred Predicate) error {
	return PredicateError{Path: c.FullPath(), Value: value, Predicate: pred.Name()}
}

func (DefaultReporter) InstanceOfFailError(c Context, value any, want reflect.Type) error {
	return TypeError{Path: c.FullPath(), Value: value, Want: want}
}
