package verity

import (
	"fmt"
	"sort"
)

// errorSet accumulates validation errors, suppressing the duplicates that
// wildcard expansion and schema-path containment would otherwise produce.
// Membership is judged by error kind plus rendered message.
type errorSet struct {
	errs map[string]error
}

func newErrorSet() *errorSet { return &errorSet{errs: map[string]error{}} }

func (s *errorSet) add(err error) {
	if err == nil {
		return
	}

	s.errs[fmt.Sprintf("%T|%s", err, err.Error())] = err
}

func (s *errorSet) union(other *errorSet) {
	for k, err := range other.errs {
		s.errs[k] = err
	}
}

func (s *errorSet) empty() bool { return len(s.errs) == 0 }

// slice returns set members in deterministic order.
func (s *errorSet) slice() []error {
	keys := make([]string, 0, len(s.errs))
	for k := range s.errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]error, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.errs[k])
	}

	return out
}
