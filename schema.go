package verity

import (
	"fmt"
	"reflect"

	"github.com/verity-go/verity/pkg/paths"
)

// Type is a tag determining the validation strategy of a Schema.
type Type int

const (
	// Map validates declared rows of (path, sub-schema) pairs.
	Map Type = iota

	// Seq validates every element of a sequence against one element schema.
	Seq

	// SeqLayout validates the i-th element against the i-th schema of an ordered layout.
	SeqLayout

	// Set validates every element against one element schema; order carries no meaning.
	Set

	// Class validates the runtime type of the value.
	Class

	// Or is satisfied when at least one of its sub-schemas is.
	Or

	// And is satisfied only when all of its sub-schemas are.
	And

	// Pred applies a single predicate to the value.
	Pred
)

func (t Type) String() string {
	switch t {
	case Map:
		return "map"
	case Seq:
		return "seq"
	case SeqLayout:
		return "seq-layout"
	case Set:
		return "set"
	case Class:
		return "class"
	case Or:
		return "or"
	case And:
		return "and"
	case Pred:
		return "predicate"
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// Row is one (path, sub-schema) declaration inside a map schema.
type Row struct {
	Path   paths.Path
	Schema *Schema
}

// RowOf builds a map schema row. s is coerced the same way ValidationErrors coerces schemas.
func RowOf(p paths.Path, s any) Row { return Row{Path: p, Schema: MustSchema(s)} }

// Schema is a declarative description of expected structure and content of a value.
// Build one with the constructors of this package; the zero value is not usable.
type Schema struct {
	typ         Type
	strict      bool
	constraints []Predicate

	rows   []Row
	elem   *Schema
	layout []*Schema
	class  reflect.Type
	subs   []*Schema
	pred   Predicate
}

// MapOf builds a loose map schema: undeclared paths are ignored.
func MapOf(rows ...Row) *Schema { return &Schema{typ: Map, rows: rows} }

// StrictMapOf builds a strict map schema: undeclared paths are validation errors.
func StrictMapOf(rows ...Row) *Schema { return &Schema{typ: Map, strict: true, rows: rows} }

// SeqOf builds a schema validating every element of a sequence against elem.
func SeqOf(elem any) *Schema { return &Schema{typ: Seq, elem: MustSchema(elem)} }

// LayoutOf builds a schema validating the i-th element of a sequence
// against the i-th provided schema. A length mismatch between layout and
// data silently validates only the overlapping prefix.
func LayoutOf(schemas ...any) *Schema {
	layout := make([]*Schema, len(schemas))
	for i, s := range schemas {
		layout[i] = MustSchema(s)
	}

	return &Schema{typ: SeqLayout, layout: layout}
}

// SetOf builds a schema validating every element of a collection against
// elem, reporting element positions with a wildcard path element since
// order carries no meaning.
func SetOf(elem any) *Schema { return &Schema{typ: Set, elem: MustSchema(elem)} }

// InstanceOf builds a schema satisfied when the value's runtime type is
// assignable to t.
func InstanceOf(t reflect.Type) *Schema { return &Schema{typ: Class, class: t} }

// OneOf builds an or-statement schema. A value failing every sub-schema
// reports the first sub-schema's errors, never a union.
func OneOf(subs ...any) *Schema { return &Schema{typ: Or, subs: mustSchemas(subs)} }

// AllOf builds an and-statement schema; errors are the union across all sub-schemas.
func AllOf(subs ...any) *Schema { return &Schema{typ: And, subs: mustSchemas(subs)} }

// Satisfies builds a schema applying a single predicate to the value.
func Satisfies(p Predicate) *Schema { return &Schema{typ: Pred, pred: p} }

func mustSchemas(ss []any) []*Schema {
	out := make([]*Schema, len(ss))
	for i, s := range ss {
		out[i] = MustSchema(s)
	}

	return out
}

// Type returns the schema's type tag.
func (s *Schema) Type() Type { return s.typ }

// IsStrict tells whether s is a strict map schema.
func (s *Schema) IsStrict() bool { return s.strict }

// Constraints returns the schema's ordered whole-value constraints.
func (s *Schema) Constraints() []Predicate { return s.constraints }

// Rows returns the ordered rows of a map schema.
func (s *Schema) Rows() []Row { return s.rows }

// ElemSchema returns the element schema of a seq or set schema.
func (s *Schema) ElemSchema() *Schema { return s.elem }

// Layout returns the ordered per-position schemas of a seq-layout schema.
func (s *Schema) Layout() []*Schema { return s.layout }

// Class returns the expected runtime type of a class schema.
func (s *Schema) Class() reflect.Type { return s.class }

// SubSchemas returns the ordered sub-schemas of an or- or and-statement.
func (s *Schema) SubSchemas() []*Schema { return s.subs }

// Predicate returns the predicate of a predicate schema.
func (s *Schema) Predicate() Predicate { return s.pred }

// WithConstraints returns a copy of s with the given whole-value
// constraints appended. A failing constraint short-circuits structural
// validation: the call reports only constraint errors.
func (s *Schema) WithConstraints(cs ...Predicate) *Schema {
	dup := *s
	dup.constraints = append(append([]Predicate{}, s.constraints...), cs...)

	return &dup
}

// AsLoose returns a loose copy of a map schema. Schemas of other types
// are returned unchanged.
func (s *Schema) AsLoose() *Schema {
	if s.typ != Map {
		return s
	}

	dup := *s
	dup.strict = false

	return &dup
}

// AsStrict returns a strict copy of a map schema. Schemas of other types
// are returned unchanged.
func (s *Schema) AsStrict() *Schema {
	if s.typ != Map {
		return s
	}

	dup := *s
	dup.strict = true

	return &dup
}

// PathSet returns every row path of a map schema.
func (s *Schema) PathSet() []paths.Path {
	out := make([]paths.Path, len(s.rows))
	for i, r := range s.rows {
		out[i] = r.Path
	}

	return out
}

// WildcardPathSet returns every row path of a map schema containing at
// least one wildcard element.
func (s *Schema) WildcardPathSet() []paths.Path {
	var out []paths.Path
	for _, r := range s.rows {
		if r.Path.HasWildcard() {
			out = append(out, r.Path)
		}
	}

	return out
}

// WithoutWildcardPaths returns a copy of a map schema with every
// wildcard row removed.
func (s *Schema) WithoutWildcardPaths() *Schema {
	dup := *s
	dup.rows = nil
	for _, r := range s.rows {
		if !r.Path.HasWildcard() {
			dup.rows = append(dup.rows, r)
		}
	}

	return &dup
}

// Accepts tells whether v has no validation errors against s. It makes
// *Schema usable as a wildcard key schema.
func (s *Schema) Accepts(v any) bool { return IsValid(s, v) }

// IsSchema tells whether s is already a *Schema.
func IsSchema(s any) bool {
	sch, ok := s.(*Schema)

	return ok && sch != nil
}

// ToSchema coerces s into a *Schema: a *Schema is returned as is, a
// Predicate or bare func(any) bool becomes a minimal predicate schema and
// a reflect.Type becomes a class schema. Anything else is a programming
// error wrapping ErrInvalidSchema.
func ToSchema(s any) (*Schema, error) {
	switch v := s.(type) {
	case *Schema:
		if v == nil {
			return nil, fmt.Errorf("%w: nil schema", ErrInvalidSchema)
		}

		return v, nil
	case Predicate:
		return Satisfies(v), nil
	case func(any) bool:
		return Satisfies(predicateFunc{name: "anonymous predicate", fn: v}), nil
	case reflect.Type:
		return InstanceOf(v), nil
	}

	return nil, fmt.Errorf("%w: cannot use %T as a schema", ErrInvalidSchema, s)
}

// MustSchema is like ToSchema but panics on coercion failure.
func MustSchema(s any) *Schema {
	sch, err := ToSchema(s)
	if err != nil {
		panic(err)
	}

	return sch
}

// predicateFunc adapts a bare function to the Predicate interface.
type predicateFunc struct {
	name string
	fn   func(any) bool
}

func (p predicateFunc) Name() string       { return p.name }
func (p predicateFunc) Accepts(v any) bool { return p.fn(v) }
