package verity

import (
	"fmt"
	"reflect"

	"github.com/verity-go/verity/pkg/paths"
)

// ValidationErrors validates value against schema and returns every
// discrepancy found as a duplicate-free, deterministically ordered slice.
// schema is coerced through ToSchema, so a bare predicate, func(any) bool
// or reflect.Type may be passed directly.
func ValidationErrors(schema, value any) []error {
	return ValidationErrorsAt(NewDefaultReporter(), paths.New(), schema, value)
}

// ValidationErrorsAt is ValidationErrors with a custom Reporter and a
// parent path prefixed to every reported path.
func ValidationErrorsAt(r Reporter, parentPath paths.Path, schema, value any) []error {
	sch := MustSchema(schema)
	ctx := Context{
		reporter:   r,
		root:       value,
		schema:     sch,
		parentPath: parentPath,
		fullPath:   parentPath,
		value:      value,
	}

	return validate(ctx, sch, value).slice()
}

// IsValid tells whether value has no validation errors against schema.
func IsValid(schema, value any) bool {
	return len(ValidationErrors(schema, value)) == 0
}

// ValidateAndHandle routes value to onSuccess when valid, otherwise to
// onFailure together with the validation error set.
func ValidateAndHandle(value, schema any, onSuccess func(value any), onFailure func(value any, errs []error)) {
	if errs := ValidationErrors(schema, value); len(errs) > 0 {
		onFailure(value, errs)
		return
	}

	onSuccess(value)
}

// validate re-enters full validation semantics at every recursion level:
// whole-value constraint gate first, then dispatch on the (type, strict)
// pair. A failing constraint returns only the constraint error set and
// skips structural validation for this call.
func validate(ctx Context, sch *Schema, value any) *errorSet {
	ctx.schema = sch
	ctx.value = value

	if errs := checkConstraints(ctx, sch, value); !errs.empty() {
		return errs
	}

	switch sch.typ {
	case Map:
		return validateMap(ctx, sch, value)
	case Seq:
		if !sch.strict {
			return validateSeq(ctx, sch, value)
		}
	case SeqLayout:
		if !sch.strict {
			return validateLayout(ctx, sch, value)
		}
	case Set:
		if !sch.strict {
			return validateSet(ctx, sch, value)
		}
	case Class:
		if !sch.strict {
			return validateClass(ctx, sch, value)
		}
	case Or:
		if !sch.strict {
			return validateOr(ctx, sch, value)
		}
	case And:
		if !sch.strict {
			return validateAnd(ctx, sch, value)
		}
	case Pred:
		if !sch.strict {
			return validatePred(ctx, sch, value)
		}
	}

	panic(fmt.Errorf("%w: no validation strategy for type %s with strict=%t", ErrInvalidSchema, sch.typ, sch.strict))
}

// checkConstraints evaluates every whole-value constraint of sch against value.
func checkConstraints(ctx Context, sch *Schema, value any) *errorSet {
	errs := newErrorSet()
	for _, c := range sch.constraints {
		if !accepts(c, value) {
			errs.add(ctx.reporter.ConstraintError(ctx, c))
		}
	}

	return errs
}

// accepts runs a predicate, treating a panic during evaluation as rejection
// so a user-supplied predicate cannot crash the validation pass.
func accepts(p Predicate, v any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	return p.Accepts(v)
}

func validateSeq(ctx Context, sch *Schema, value any) *errorSet {
	errs := newErrorSet()

	items, ok := sequenceOf(value)
	if !ok {
		errs.add(ctx.reporter.InstanceOfFailError(ctx, value, reflect.TypeOf([]any(nil))))
		return errs
	}

	for i, item := range items {
		child := ctx.stepInto(ctx.fullPath.Append(paths.Literal(i)), item)
		errs.union(validate(child, sch.elem, item))
	}

	return errs
}

func validateLayout(ctx Context, sch *Schema, value any) *errorSet {
	errs := newErrorSet()

	items, ok := sequenceOf(value)
	if !ok {
		errs.add(ctx.reporter.InstanceOfFailError(ctx, value, reflect.TypeOf([]any(nil))))
		return errs
	}

	// a layout/data length mismatch validates only the overlapping prefix
	n := len(items)
	if len(sch.layout) < n {
		n = len(sch.layout)
	}

	for i := 0; i < n; i++ {
		child := ctx.stepInto(ctx.fullPath.Append(paths.Literal(i)), items[i])
		errs.union(validate(child, sch.layout[i], items[i]))
	}

	return errs
}

func validateSet(ctx Context, sch *Schema, value any) *errorSet {
	errs := newErrorSet()

	items, ok := sequenceOf(value)
	if !ok {
		errs.add(ctx.reporter.InstanceOfFailError(ctx, value, reflect.TypeOf([]any(nil))))
		return errs
	}

	for _, item := range items {
		child := ctx.stepInto(ctx.fullPath.Append(paths.Any()), item)
		errs.union(validate(child, sch.elem, item))
	}

	return errs
}

func validateClass(ctx Context, sch *Schema, value any) *errorSet {
	errs := newErrorSet()

	t := reflect.TypeOf(value)
	if t == nil || !t.AssignableTo(sch.class) {
		errs.add(ctx.reporter.InstanceOfFailError(ctx, value, sch.class))
	}

	return errs
}

// validateOr returns no errors when value satisfies at least one
// sub-schema; otherwise it returns the first sub-schema's error set
// exactly, never a union of sub-schema results.
func validateOr(ctx Context, sch *Schema, value any) *errorSet {
	var first *errorSet
	for _, sub := range sch.subs {
		errs := validate(ctx, sub, value)
		if errs.empty() {
			return errs
		}

		if first == nil {
			first = errs
		}
	}

	if first == nil {
		return newErrorSet()
	}

	return first
}

func validateAnd(ctx Context, sch *Schema, value any) *errorSet {
	errs := newErrorSet()
	for _, sub := range sch.subs {
		errs.union(validate(ctx, sub, value))
	}

	return errs
}

func validatePred(ctx Context, sch *Schema, value any) *errorSet {
	errs := newErrorSet()
	if !accepts(sch.pred, value) {
		errs.add(ctx.reporter.PredicateFailError(ctx, value, sch.pred))
	}

	return errs
}

// sequenceOf returns the elements of a slice or array value.
func sequenceOf(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}
