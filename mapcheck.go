package verity

import "github.com/verity-go/verity/pkg/paths"

// validateMap validates value against a map schema: the union of per-row
// results for a loose schema, additionally unioned with extraneous-path
// detection for a strict one. The wildcard-path set and wildcard-stripped
// schema are schema-scoped: they are recomputed at every nested map
// boundary, never shared across levels.
func validateMap(ctx Context, sch *Schema, value any) *errorSet {
	errs := newErrorSet()
	for _, row := range sch.rows {
		errs.union(validateRow(ctx, row, value))
	}

	if sch.strict {
		errs.union(extraneousPathErrors(ctx, sch, value))
	}

	return errs
}

// validateRow resolves one declared (possibly wildcard) path against value
// and recurses into the row's sub-schema for every concrete path present.
// Absence is distinguished from a stored nil by the found flag of paths.Get.
func validateRow(ctx Context, row Row, value any) *errorSet {
	errs := newErrorSet()

	concrete := []paths.Path{row.Path}
	if row.Path.HasWildcard() {
		concrete = wildcardConcretePaths(value, row.Path)
	}

	for _, p := range concrete {
		full := ctx.parentPath.Join(p)

		sub, found := paths.Get(value, p)
		if !found {
			if !p.IsOptional() {
				errs.add(ctx.reporter.MissingPathError(ctx.at(full, value), full))
			}
			continue
		}

		errs.union(validate(ctx.stepInto(full, sub), row.Schema, sub))
	}

	return errs
}

// extraneousPathErrors finds every data path a strict map schema does not
// account for. A data path matching a prefix of any row path is on the way
// to declared structure; one extending a full row-path match belongs to
// that row's sub-schema. Every other path is truncated one element past
// its longest row-path prefix, so a stray subtree is reported once at the
// schema boundary instead of piecemeal.
func extraneousPathErrors(ctx Context, sch *Schema, value any) *errorSet {
	errs := newErrorSet()

	rowPaths := maximalPaths(sch.PathSet())

	seen := map[string]bool{}
	for _, d := range paths.AllPaths(value) {
		if matchedByRow(d, rowPaths) {
			continue
		}

		b := boundaryPath(d, rowPaths)
		if seen[b.ID()] {
			continue
		}
		seen[b.ID()] = true

		full := ctx.parentPath.Join(b)
		errs.add(ctx.reporter.ExtraneousPathError(ctx.at(full, value), full))
	}

	return errs
}

// matchedByRow tells whether data path d is declared, on the way to a
// declared path, or inside a subtree handed off to a row's sub-schema.
// Wildcard elements match by key-schema acceptance; coverage of d itself
// requires matching over its full length, so a length mismatch against
// every row path means no coverage.
func matchedByRow(d paths.Path, rowPaths []paths.Path) bool {
	for _, rp := range rowPaths {
		n := d.Len()
		if rp.Len() < n {
			n = rp.Len()
		}

		if matchLen(d, rp) == n {
			return true
		}
	}

	return false
}

// boundaryPath truncates d one element past its longest row-path prefix.
func boundaryPath(d paths.Path, rowPaths []paths.Path) paths.Path {
	longest := 0
	for _, rp := range rowPaths {
		if n := matchLen(d, rp); n > longest {
			longest = n
		}
	}

	return paths.New(d.Elements()[:longest+1]...)
}

// matchLen returns how many leading elements of data path d the row path
// rp accounts for: literal elements by key equality, wildcard elements by
// key-schema acceptance.
func matchLen(d, rp paths.Path) int {
	n := d.Len()
	if rp.Len() < n {
		n = rp.Len()
	}

	for i := 0; i < n; i++ {
		if !rp.At(i).Matches(d.At(i).Key()) {
			return i
		}
	}

	return n
}

// maximalPaths drops every path that is a strict prefix of another:
// non-maximal declared paths are redundant and must not gate
// extraneousness on their own.
func maximalPaths(ps []paths.Path) []paths.Path {
	out := make([]paths.Path, 0, len(ps))
	for i, p := range ps {
		redundant := false
		for j, q := range ps {
			if i != j && p.Len() < q.Len() && paths.IsSubpath(p, q) {
				redundant = true
				break
			}
		}

		if !redundant {
			out = append(out, p)
		}
	}

	return out
}
