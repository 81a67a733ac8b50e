// Package pred holds reusable named predicates for verity schemas.
//
// A Predicate satisfies both the engine's predicate interface and the
// paths.KeySchema interface, so every predicate here may also serve as a
// wildcard key schema.
package pred

import (
	"reflect"
	"regexp"

	"github.com/verity-go/verity/pkg/paths"
)

// Predicate is a named check over a value.
type Predicate struct {
	name string
	fn   func(any) bool
}

// Named builds a predicate from fn. name identifies it in error messages.
func Named(name string, fn func(v any) bool) Predicate {
	return Predicate{name: name, fn: fn}
}

// Name identifies the predicate in error messages.
func (p Predicate) Name() string { return p.name }

// Accepts tells whether v satisfies the predicate.
func (p Predicate) Accepts(v any) bool { return p.fn(v) }

var (
	// IsString accepts string values.
	IsString = Named("IsString", func(v any) bool { _, ok := v.(string); return ok })

	// IsBool accepts bool values.
	IsBool = Named("IsBool", func(v any) bool { _, ok := v.(bool); return ok })

	// IsInt accepts integer values of any width and signedness.
	IsInt = Named("IsInt", func(v any) bool { return kindOf(v, intKinds...) })

	// IsFloat accepts float32 and float64 values.
	IsFloat = Named("IsFloat", func(v any) bool {
		return kindOf(v, reflect.Float32, reflect.Float64)
	})

	// IsNumber accepts any integer or float value.
	IsNumber = Named("IsNumber", func(v any) bool {
		return kindOf(v, append(intKinds, reflect.Float32, reflect.Float64)...)
	})

	// IsMap accepts maps of any kind.
	IsMap = Named("IsMap", paths.IsMap)

	// IsSeq accepts slices and arrays.
	IsSeq = Named("IsSeq", func(v any) bool {
		return kindOf(v, reflect.Slice, reflect.Array)
	})

	// NotNil rejects nil values.
	NotNil = Named("NotNil", func(v any) bool { return v != nil })

	// NonEmptyString accepts strings with at least one character.
	NonEmptyString = Named("NonEmptyString", func(v any) bool {
		s, ok := v.(string)
		return ok && len(s) > 0
	})
)

var intKinds = []reflect.Kind{
	reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
	reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
}

func kindOf(v any, kinds ...reflect.Kind) bool {
	if v == nil {
		return false
	}

	k := reflect.ValueOf(v).Kind()
	for _, want := range kinds {
		if k == want {
			return true
		}
	}

	return false
}

// Matches accepts strings matched by re.
func Matches(re *regexp.Regexp) Predicate {
	return Named("Matches("+re.String()+")", func(v any) bool {
		s, ok := v.(string)
		return ok && re.MatchString(s)
	})
}

// OneOf accepts values deeply equal to any of the allowed ones.
func OneOf(allowed ...any) Predicate {
	return Named("OneOf", func(v any) bool {
		for _, a := range allowed {
			if reflect.DeepEqual(v, a) {
				return true
			}
		}

		return false
	})
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return Named("Not("+p.Name()+")", func(v any) bool { return !p.Accepts(v) })
}
