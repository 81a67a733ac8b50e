package verity

import "github.com/verity-go/verity/pkg/paths"

// Context carries call-scoped validation state: the reporter, the root
// value the top-level call started from, the schema and value currently
// under validation and the accumulated path context.
//
// A Context is created per top-level call and threaded explicitly through
// every recursive call, so concurrent validations never observe each
// other's state.
type Context struct {
	reporter   Reporter
	root       any
	schema     *Schema
	parentPath paths.Path
	fullPath   paths.Path
	value      any
}

// Reporter returns the reporter of the running validation.
func (c Context) Reporter() Reporter { return c.reporter }

// Root returns the whole value the top-level call was given.
func (c Context) Root() any { return c.root }

// Schema returns the schema currently under evaluation.
func (c Context) Schema() *Schema { return c.schema }

// ParentPath returns the path accumulated by recursive descents into nested maps.
func (c Context) ParentPath() paths.Path { return c.parentPath }

// FullPath returns the root-relative path of the value currently under validation.
func (c Context) FullPath() paths.Path { return c.fullPath }

// Value returns the value currently under validation.
func (c Context) Value() any { return c.value }

// at returns a copy of c reporting at the given root-relative path.
func (c Context) at(full paths.Path, value any) Context {
	c.fullPath = full
	c.value = value

	return c
}

// stepInto returns a copy of c descended to the sub-value stored under
// the given root-relative path. Further nested-map rows extend it.
func (c Context) stepInto(full paths.Path, value any) Context {
	c.parentPath = full
	c.fullPath = full
	c.value = value

	return c
}
