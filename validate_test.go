package verity

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verity-go/verity/pkg/paths"
	"github.com/verity-go/verity/pkg/pred"
)

func TestValidationErrors_seq(t *testing.T) {
	type args struct {
		schema *Schema
		value  any
	}

	tests := []struct {
		name string
		args args
		want []error
	}{
		{
			name: "every element valid",
			args: args{schema: SeqOf(pred.IsInt), value: []any{1, 2, 3}},
			want: nil,
		},
		{
			name: "failures are index-tagged",
			args: args{schema: SeqOf(pred.IsInt), value: []any{1, "x", 3}},
			want: []error{PredicateError{Path: paths.P(1), Value: "x", Predicate: "IsInt"}},
		},
		{
			name: "typed slices are sequences too",
			args: args{schema: SeqOf(pred.IsString), value: []string{"a", "b"}},
			want: nil,
		},
		{
			name: "non-sequence value",
			args: args{schema: SeqOf(pred.IsInt), value: "scalar"},
			want: []error{TypeError{Value: "scalar", Want: reflect.TypeOf([]any(nil))}},
		},
		{
			name: "empty sequence",
			args: args{schema: SeqOf(pred.IsInt), value: []any{}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, ValidationErrors(tt.args.schema, tt.args.value))
		})
	}
}

func TestValidationErrors_seqLayout(t *testing.T) {
	layout := LayoutOf(pred.IsInt, pred.IsString)

	type args struct {
		value any
	}

	tests := []struct {
		name string
		args args
		want []error
	}{
		{
			name: "second position rejected",
			args: args{value: []any{1, 2}},
			want: []error{PredicateError{Path: paths.P(1), Value: 2, Predicate: "IsString"}},
		},
		{
			name: "matching layout",
			args: args{value: []any{1, "x"}},
			want: nil,
		},
		{
			name: "shorter data validates only the overlap",
			args: args{value: []any{1}},
			want: nil,
		},
		{
			name: "longer data validates only the overlap",
			args: args{value: []any{1, "x", true}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, ValidationErrors(layout, tt.args.value))
		})
	}
}

func TestValidationErrors_set(t *testing.T) {
	schema := SetOf(pred.IsString)

	t.Run("position is reported with a wildcard marker", func(t *testing.T) {
		got := ValidationErrors(schema, []any{"a", 1})
		require.Len(t, got, 1)

		var perr PredicateError
		require.True(t, errors.As(got[0], &perr))
		assert.Equal(t, "*", perr.Path.String())
		assert.Equal(t, 1, perr.Value)
	})

	t.Run("equal failing members collapse into one error", func(t *testing.T) {
		got := ValidationErrors(schema, []any{1, 1})
		assert.Len(t, got, 1)
	})

	t.Run("all members valid", func(t *testing.T) {
		assert.Empty(t, ValidationErrors(schema, []any{"a", "b"}))
	})
}

func TestValidationErrors_class(t *testing.T) {
	type args struct {
		schema *Schema
		value  any
	}

	tests := []struct {
		name      string
		args      args
		wantCount int
	}{
		{name: "exact type", args: args{schema: InstanceOf(reflect.TypeOf("")), value: "x"}, wantCount: 0},
		{name: "wrong type", args: args{schema: InstanceOf(reflect.TypeOf("")), value: 1}, wantCount: 1},
		{name: "nil value", args: args{schema: InstanceOf(reflect.TypeOf("")), value: nil}, wantCount: 1},
		{
			name:      "interface satisfaction counts as subtype",
			args:      args{schema: InstanceOf(reflect.TypeOf((*error)(nil)).Elem()), value: errors.New("boom")},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidationErrors(tt.args.schema, tt.args.value)
			require.Len(t, got, tt.wantCount)

			if tt.wantCount > 0 {
				var terr TypeError
				assert.True(t, errors.As(got[0], &terr))
			}
		})
	}
}

func TestValidationErrors_orStatement(t *testing.T) {
	schema := OneOf(pred.IsString, pred.IsInt)

	t.Run("satisfying any sub-schema yields no errors", func(t *testing.T) {
		assert.Empty(t, ValidationErrors(schema, "x"))
		assert.Empty(t, ValidationErrors(schema, 1))
	})

	t.Run("satisfying none yields exactly the first sub-schema's errors", func(t *testing.T) {
		got := ValidationErrors(schema, true)
		want := ValidationErrors(Satisfies(pred.IsString), true)
		assert.Equal(t, want, got)
	})

	t.Run("empty or-statement is vacuously satisfied", func(t *testing.T) {
		assert.Empty(t, ValidationErrors(OneOf(), true))
	})
}

func TestValidationErrors_andStatement(t *testing.T) {
	schema := AllOf(pred.IsString, pred.NonEmptyString)

	t.Run("all sub-schemas satisfied", func(t *testing.T) {
		assert.Empty(t, ValidationErrors(schema, "x"))
	})

	t.Run("errors union across sub-schemas", func(t *testing.T) {
		got := ValidationErrors(schema, 5)
		assert.ElementsMatch(t, []error{
			PredicateError{Value: 5, Predicate: "IsString"},
			PredicateError{Value: 5, Predicate: "NonEmptyString"},
		}, got)
	})
}

func TestValidationErrors_predicatePanicIsRejection(t *testing.T) {
	panicking := pred.Named("panics", func(any) bool { panic("boom") })

	got := ValidationErrors(Satisfies(panicking), 1)
	assert.ElementsMatch(t, []error{PredicateError{Value: 1, Predicate: "panics"}}, got)
}

func TestValidationErrors_constraintGate(t *testing.T) {
	hasEvenSize := pred.Named("HasEvenSize", func(v any) bool {
		return len(paths.Keys(v))%2 == 0
	})

	schema := StrictMapOf(RowOf(paths.P("a"), pred.IsInt)).WithConstraints(hasEvenSize)

	t.Run("failing constraint suppresses structural errors", func(t *testing.T) {
		// one key: constraint fails, the missing "a" must not be reported
		got := ValidationErrors(schema, map[string]any{"other": 1})
		assert.ElementsMatch(t, []error{
			ConstraintError{Constraint: "HasEvenSize", Value: map[string]any{"other": 1}},
		}, got)
	})

	t.Run("passing constraint falls through to structure", func(t *testing.T) {
		got := ValidationErrors(schema, map[string]any{})
		assert.ElementsMatch(t, []error{MissingPathError{Path: paths.P("a")}}, got)
	})
}

func TestValidationErrors_coercion(t *testing.T) {
	t.Run("bare func becomes a predicate schema", func(t *testing.T) {
		got := ValidationErrors(func(v any) bool { return v == 1 }, 2)
		assert.ElementsMatch(t, []error{PredicateError{Value: 2, Predicate: "anonymous predicate"}}, got)
	})

	t.Run("bare predicate", func(t *testing.T) {
		assert.True(t, IsValid(pred.IsInt, 1))
		assert.False(t, IsValid(pred.IsInt, "x"))
	})

	t.Run("reflect.Type becomes a class schema", func(t *testing.T) {
		assert.True(t, IsValid(reflect.TypeOf(0), 5))
		assert.False(t, IsValid(reflect.TypeOf(0), "x"))
	})

	t.Run("unrecognized schema value panics with ErrInvalidSchema", func(t *testing.T) {
		defer func() {
			r := recover()
			require.NotNil(t, r)

			err, ok := r.(error)
			require.True(t, ok)
			assert.True(t, errors.Is(err, ErrInvalidSchema))
		}()

		ValidationErrors(42, 1)
	})
}

func TestValidateAndHandle(t *testing.T) {
	schema := MapOf(RowOf(paths.P("a"), pred.IsInt))

	t.Run("valid value routes to onSuccess", func(t *testing.T) {
		var gotValue any
		ValidateAndHandle(map[string]any{"a": 1}, schema,
			func(v any) { gotValue = v },
			func(any, []error) { t.Error("onFailure called for valid value") },
		)

		assert.Equal(t, map[string]any{"a": 1}, gotValue)
	})

	t.Run("invalid value routes to onFailure with the error set", func(t *testing.T) {
		var gotErrs []error
		ValidateAndHandle(map[string]any{}, schema,
			func(any) { t.Error("onSuccess called for invalid value") },
			func(_ any, errs []error) { gotErrs = errs },
		)

		assert.ElementsMatch(t, []error{MissingPathError{Path: paths.P("a")}}, gotErrs)
	})
}

func TestValidationErrorsAt_prefixesParentPath(t *testing.T) {
	schema := MapOf(RowOf(paths.P("name"), pred.IsString))
	got := ValidationErrorsAt(NewDefaultReporter(), paths.P("payload"), schema, map[string]any{})

	assert.ElementsMatch(t, []error{MissingPathError{Path: paths.P("payload", "name")}}, got)
}

type kindTagReporter struct {
	DefaultReporter
}

func (kindTagReporter) MissingPathError(c Context, path paths.Path) error {
	return errors.New("custom: missing " + path.String())
}

func TestValidationErrorsAt_customReporter(t *testing.T) {
	schema := MapOf(RowOf(paths.P("a"), pred.IsInt))
	got := ValidationErrorsAt(kindTagReporter{}, paths.New(), schema, map[string]any{})

	require.Len(t, got, 1)
	assert.EqualError(t, got[0], "custom: missing a")
}
