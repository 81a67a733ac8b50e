package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringKeys struct{}

func (stringKeys) Accepts(key any) bool {
	_, ok := key.(string)
	return ok
}

func TestPath_construction(t *testing.T) {
	p := P("a", 1, Wildcard(stringKeys{}))

	assert.Equal(t, 3, p.Len())
	assert.False(t, p.At(0).IsWildcard())
	assert.Equal(t, "a", p.At(0).Key())
	assert.Equal(t, 1, p.At(1).Key())
	assert.True(t, p.At(2).IsWildcard())
	assert.Equal(t, "a.1.*", p.String())
}

func TestPath_optionalMarking(t *testing.T) {
	p := P("a")
	assert.False(t, p.IsOptional())

	o := p.AsOptional()
	assert.True(t, o.IsOptional())
	assert.False(t, p.IsOptional())

	assert.True(t, Optional("a").IsOptional())

	t.Run("join preserves optional marking of either side", func(t *testing.T) {
		assert.True(t, Optional("a").Join(P("b")).IsOptional())
		assert.True(t, P("a").Join(Optional("b")).IsOptional())
		assert.False(t, P("a").Join(P("b")).IsOptional())
	})
}

func TestPath_join(t *testing.T) {
	a := P("a")
	joined := a.Join(P("b", "c"))

	assert.Equal(t, "a.b.c", joined.String())
	assert.Equal(t, "a", a.String())

	t.Run("append does not alias the receiver", func(t *testing.T) {
		base := P("x")
		one := base.Append(Literal("y"))
		two := base.Append(Literal("z"))

		assert.Equal(t, "x.y", one.String())
		assert.Equal(t, "x.z", two.String())
	})
}

func TestPath_equalAndID(t *testing.T) {
	assert.True(t, P("a", 1).Equal(P("a", 1)))
	assert.False(t, P("a", 1).Equal(P("a", "1")), "int and string keys must not collide")
	assert.False(t, P("a").Equal(P("a", "b")))

	assert.NotEqual(t, P(1).ID(), P("1").ID())
}

func TestSubpaths(t *testing.T) {
	got := Subpaths(P("a", "b", "c"))

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].String())
	assert.Equal(t, "a.b", got[1].String())
	assert.Equal(t, "a.b.c", got[2].String())

	assert.Empty(t, Subpaths(New()))
}

func TestIsSubpath(t *testing.T) {
	type args struct {
		sub  Path
		full Path
	}

	tests := []struct {
		name string
		args args
		want bool
	}{
		{name: "prefix", args: args{sub: P("a"), full: P("a", "b")}, want: true},
		{name: "equal", args: args{sub: P("a", "b"), full: P("a", "b")}, want: true},
		{name: "longer than full", args: args{sub: P("a", "b", "c"), full: P("a", "b")}, want: false},
		{name: "diverging", args: args{sub: P("a", "x"), full: P("a", "b")}, want: false},
		{name: "empty path is a prefix of anything", args: args{sub: New(), full: P("a")}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSubpath(tt.args.sub, tt.args.full))
		})
	}
}

func TestAllPaths(t *testing.T) {
	type args struct {
		v any
	}

	tests := []struct {
		name string
		args args
		want []string
	}{
		{
			name: "flat map",
			args: args{v: map[string]any{"a": 1, "b": 2}},
			want: []string{"a", "b"},
		},
		{
			name: "nested maps include intermediate nodes",
			args: args{v: map[string]any{"a": map[string]any{"b": 1}, "c": 2}},
			want: []string{"a", "a.b", "c"},
		},
		{
			name: "non-map has no paths",
			args: args{v: "scalar"},
			want: nil,
		},
		{
			name: "nil has no paths",
			args: args{v: nil},
			want: nil,
		},
		{
			name: "empty map has no paths",
			args: args{v: map[string]any{}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, p := range AllPaths(tt.args.v) {
				got = append(got, p.String())
			}

			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestLookup(t *testing.T) {
	m := map[any]any{"a": 1, 2: "two", "nilled": nil}

	t.Run("present key", func(t *testing.T) {
		v, ok := Lookup(m, "a")
		assert.True(t, ok)
		assert.Equal(t, 1, v)
	})

	t.Run("non-string key", func(t *testing.T) {
		v, ok := Lookup(m, 2)
		assert.True(t, ok)
		assert.Equal(t, "two", v)
	})

	t.Run("stored nil is present", func(t *testing.T) {
		v, ok := Lookup(m, "nilled")
		assert.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("absent key", func(t *testing.T) {
		_, ok := Lookup(m, "missing")
		assert.False(t, ok)
	})

	t.Run("int and string keys do not collide", func(t *testing.T) {
		_, ok := Lookup(m, "2")
		assert.False(t, ok)
	})

	t.Run("non-map value", func(t *testing.T) {
		_, ok := Lookup("scalar", "a")
		assert.False(t, ok)
	})
}

func TestGet(t *testing.T) {
	m := map[string]any{"a": map[string]any{"b": nil, "c": 3}}

	type args struct {
		p Path
	}

	tests := []struct {
		name      string
		args      args
		want      any
		wantFound bool
	}{
		{name: "deep value", args: args{p: P("a", "c")}, want: 3, wantFound: true},
		{name: "stored nil is found", args: args{p: P("a", "b")}, want: nil, wantFound: true},
		{name: "absent leaf", args: args{p: P("a", "x")}, want: nil, wantFound: false},
		{name: "absent root", args: args{p: P("x", "b")}, want: nil, wantFound: false},
		{name: "path through non-map", args: args{p: P("a", "c", "d")}, want: nil, wantFound: false},
		{name: "empty path is the value itself", args: args{p: New()}, want: m, wantFound: true},
		{name: "wildcard element never resolves", args: args{p: New(Wildcard(stringKeys{}))}, want: nil, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Get(m, tt.args.p)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeys_stableOrder(t *testing.T) {
	m := map[string]any{"b": 1, "a": 2, "c": 3}

	first := Keys(m)
	second := Keys(m)

	assert.Equal(t, first, second)
	assert.ElementsMatch(t, []any{"a", "b", "c"}, first)
}

func TestElement_matches(t *testing.T) {
	assert.True(t, Literal("a").Matches("a"))
	assert.False(t, Literal("a").Matches("b"))
	assert.False(t, Literal(1).Matches("1"))
	assert.True(t, Wildcard(stringKeys{}).Matches("anything"))
	assert.False(t, Wildcard(stringKeys{}).Matches(1))
	assert.True(t, Any().Matches(struct{}{}))
}
