// Package paths holds utilities for working with paths into nested map data.
package paths

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// KeySchema describes ability to accept or reject a map key.
type KeySchema interface {
	// Accepts tells whether key satisfies the key schema.
	Accepts(key any) bool
}

// Element is a single step of a Path: either a literal map key
// or a wildcard matched by a KeySchema.
type Element struct {
	key  any
	wild KeySchema
}

// Literal returns an Element matching exactly the given map key.
func Literal(key any) Element { return Element{key: key} }

// Wildcard returns an Element matching every map key accepted by ks.
func Wildcard(ks KeySchema) Element { return Element{wild: ks} }

// Any returns a wildcard Element matching every map key.
func Any() Element { return Element{wild: acceptAll{}} }

type acceptAll struct{}

func (acceptAll) Accepts(any) bool { return true }

// IsWildcard tells whether e is a wildcard element.
func (e Element) IsWildcard() bool { return e.wild != nil }

// Key returns the literal map key of a non-wildcard element.
func (e Element) Key() any { return e.key }

// KeySchema returns the key schema of a wildcard element, nil otherwise.
func (e Element) KeySchema() KeySchema { return e.wild }

// Matches tells whether e denotes the given concrete map key.
func (e Element) Matches(key any) bool {
	if e.IsWildcard() {
		return e.wild.Accepts(key)
	}

	return EqualKeys(e.key, key)
}

func (e Element) String() string {
	if e.IsWildcard() {
		return "*"
	}

	return fmt.Sprintf("%v", e.key)
}

// id distinguishes keys of different types that render alike, e.g. 1 and "1".
func (e Element) id() string {
	if e.IsWildcard() {
		return "*"
	}

	return fmt.Sprintf("%T(%v)", e.key, e.key)
}

// Path identifies a location inside nested map data.
type Path struct {
	elems    []Element
	optional bool
}

// New builds a Path from provided elements.
func New(elems ...Element) Path { return Path{elems: elems} }

// P builds a Path treating every argument that is not already an Element as a literal key.
func P(keys ...any) Path {
	elems := make([]Element, 0, len(keys))
	for _, k := range keys {
		if e, ok := k.(Element); ok {
			elems = append(elems, e)
			continue
		}

		elems = append(elems, Literal(k))
	}

	return Path{elems: elems}
}

// Optional builds a Path of literal keys marked optional.
func Optional(keys ...any) Path { return P(keys...).AsOptional() }

// Elements returns the elements of p.
func (p Path) Elements() []Element { return p.elems }

// Len returns the number of elements of p.
func (p Path) Len() int { return len(p.elems) }

// At returns the i-th element of p.
func (p Path) At(i int) Element { return p.elems[i] }

// IsOptional tells whether p is marked optional.
func (p Path) IsOptional() bool { return p.optional }

// AsOptional returns a copy of p marked optional.
func (p Path) AsOptional() Path { return Path{elems: p.elems, optional: true} }

// HasWildcard tells whether any element of p is a wildcard.
func (p Path) HasWildcard() bool {
	for _, e := range p.elems {
		if e.IsWildcard() {
			return true
		}
	}

	return false
}

// Join returns p extended with every element of q.
// Optional marking of either path is preserved.
func (p Path) Join(q Path) Path {
	elems := make([]Element, 0, len(p.elems)+len(q.elems))
	elems = append(elems, p.elems...)
	elems = append(elems, q.elems...)

	return Path{elems: elems, optional: p.optional || q.optional}
}

// Append returns p extended with provided elements.
func (p Path) Append(elems ...Element) Path {
	return p.Join(Path{elems: elems})
}

// Equal tells whether p and q consist of the same elements.
// Wildcard elements compare equal to each other regardless of their key schemas.
func (p Path) Equal(q Path) bool { return p.ID() == q.ID() }

// ID returns a stable identity of p usable for set membership.
func (p Path) ID() string {
	ids := make([]string, len(p.elems))
	for i, e := range p.elems {
		ids[i] = e.id()
	}

	return strings.Join(ids, "\x1f")
}

func (p Path) String() string {
	parts := make([]string, len(p.elems))
	for i, e := range p.elems {
		parts[i] = e.String()
	}

	return strings.Join(parts, ".")
}

// Subpaths returns every non-empty prefix of p, shortest first.
func Subpaths(p Path) []Path {
	out := make([]Path, 0, p.Len())
	for i := 1; i <= p.Len(); i++ {
		out = append(out, Path{elems: p.elems[:i:i], optional: p.optional})
	}

	return out
}

// IsSubpath tells whether sub is a prefix of full.
func IsSubpath(sub, full Path) bool {
	if sub.Len() > full.Len() {
		return false
	}

	for i, e := range sub.elems {
		if e.id() != full.elems[i].id() {
			return false
		}
	}

	return true
}

// EqualKeys tells whether two map keys are equal.
func EqualKeys(a, b any) bool { return reflect.DeepEqual(a, b) }

// IsMap tells whether v is a map of any kind.
func IsMap(v any) bool {
	if v == nil {
		return false
	}

	return reflect.ValueOf(v).Kind() == reflect.Map
}

// Keys returns the keys of map-like v in a stable order, nil for anything else.
func Keys(v any) []any {
	if !IsMap(v) {
		return nil
	}

	rv := reflect.ValueOf(v)
	keys := make([]any, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.Interface())
	}

	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprintf("%T(%v)", keys[i], keys[i]) < fmt.Sprintf("%T(%v)", keys[j], keys[j])
	})

	return keys
}

// Lookup returns the value stored under key in map-like v.
// Second result distinguishes absent keys from stored nil values.
func Lookup(v, key any) (any, bool) {
	if !IsMap(v) {
		return nil, false
	}

	for it := reflect.ValueOf(v).MapRange(); it.Next(); {
		if EqualKeys(it.Key().Interface(), key) {
			return it.Value().Interface(), true
		}
	}

	return nil, false
}

// Get walks concrete path p through nested maps in v.
// Second result distinguishes absent paths from stored nil values.
// Wildcard elements never resolve.
func Get(v any, p Path) (any, bool) {
	cur := v
	for _, e := range p.elems {
		if e.IsWildcard() {
			return nil, false
		}

		val, ok := Lookup(cur, e.key)
		if !ok {
			return nil, false
		}

		cur = val
	}

	return cur, true
}

// AllPaths returns a path to every key reachable in nested map data,
// including intermediate nodes. Values that are not maps have no paths.
func AllPaths(v any) []Path {
	var out []Path
	for _, k := range Keys(v) {
		out = append(out, P(k))

		sub, _ := Lookup(v, k)
		for _, sp := range AllPaths(sub) {
			out = append(out, P(k).Join(sp))
		}
	}

	return out
}
