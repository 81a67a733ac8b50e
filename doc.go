// Package verity validates in-memory nested data values (maps, sequences,
// sets, scalars) against declarative structural schemas and returns a
// precise, machine-inspectable set of validation errors.
//
// Schemas are built with plain constructors:
//
//	func MapOf(rows ...Row) *Schema
//	func StrictMapOf(rows ...Row) *Schema
//	func SeqOf(elem any) *Schema
//	func LayoutOf(schemas ...any) *Schema
//	func SetOf(elem any) *Schema
//	func InstanceOf(t reflect.Type) *Schema
//	func OneOf(subs ...any) *Schema
//	func AllOf(subs ...any) *Schema
//	func Satisfies(p Predicate) *Schema
//
// Map schema rows pair a path with a sub-schema. A path element may be a
// literal key or a wildcard matching every key its key schema accepts, and
// a path may be marked optional:
//
//	verity.RowOf(paths.P("user", "name"), pred.IsString)
//	verity.RowOf(paths.Optional("nickname"), pred.IsString)
//	verity.RowOf(paths.New(paths.Wildcard(pred.IsString)), pred.IsNumber)
//
// Validation is run with:
//
//	func ValidationErrors(schema, value any) []error
//	func ValidationErrorsAt(r Reporter, parentPath paths.Path, schema, value any) []error
//	func IsValid(schema, value any) bool
//	func ValidateAndHandle(value, schema any, onSuccess func(any), onFailure func(any, []error))
//
// Strict map schemas additionally report undeclared data paths; loose map
// schemas ignore them. Whole-value constraints attached with
// (*Schema).WithConstraints gate structural validation: if any constraint
// fails, only constraint errors are returned for that call.
//
// Failures come in five kinds, each a distinct error type usable with
// errors.As: ConstraintError, ExtraneousPathError, MissingPathError,
// PredicateError and TypeError. How failures are rendered is pluggable
// through the Reporter interface; DefaultReporter produces the types
// above.
//
// The engine is a pure synchronous tree walk with all state threaded
// through an explicit Context, so independent goroutines may validate
// concurrently without coordination.
package verity
