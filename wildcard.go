package verity

import "github.com/verity-go/verity/pkg/paths"

// wildcardConcretePaths expands a schema path containing wildcard elements
// into every concrete path it denotes in m. A literal element contributes
// itself as the only candidate key; a wildcard element contributes every
// key of m accepted by its key schema, so expansion against a non-map
// value yields no paths. Optional marking propagates to every expansion.
//
// Expansion is cartesian: cost grows with wildcard elements per path times
// keys per level. Fine for the shallow schemas and small key counts this
// library targets.
func wildcardConcretePaths(m any, p paths.Path) []paths.Path {
	out := expandElements(m, p.Elements())
	if p.IsOptional() {
		for i := range out {
			out[i] = out[i].AsOptional()
		}
	}

	return out
}

func expandElements(m any, elems []paths.Element) []paths.Path {
	if len(elems) == 0 {
		return []paths.Path{paths.New()}
	}

	head, rest := elems[0], elems[1:]

	var keys []any
	if head.IsWildcard() {
		for _, k := range paths.Keys(m) {
			if head.KeySchema().Accepts(k) {
				keys = append(keys, k)
			}
		}
	} else {
		keys = []any{head.Key()}
	}

	var out []paths.Path
	for _, k := range keys {
		sub, _ := paths.Lookup(m, k)
		for _, tail := range expandElements(sub, rest) {
			out = append(out, paths.P(k).Join(tail))
		}
	}

	return out
}
