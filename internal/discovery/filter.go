package discovery

import (
	"errors"
	"fmt"
	"strings"
)

// Selection failure modes. A well-formed build produces exactly one
// executable per logical suite; both zero and multiple matches indicate a
// malformed build and must fail with a diagnostic instead of dispatching an
// empty or ambiguous command.
var (
	ErrNoMatch   = errors.New("no executable matches suite pattern")
	ErrAmbiguous = errors.New("multiple executables match suite pattern")
)

// Filter selects suite executables from the enumerated path list
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Matches returns the paths containing pattern as a substring. The match is
// a pure substring check and the result preserves enumeration order.
func (f *Filter) Matches(paths []string, pattern string) []string {
	var matched []string
	for _, p := range paths {
		if strings.Contains(p, pattern) {
			matched = append(matched, p)
		}
	}
	return matched
}

// SelectOne returns the single path matching pattern. Zero matches yield
// ErrNoMatch, more than one ErrAmbiguous; both carry the pattern and the
// candidate set for the diagnostic.
func (f *Filter) SelectOne(paths []string, pattern string) (string, error) {
	matched := f.Matches(paths, pattern)
	switch len(matched) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNoMatch, pattern)
	case 1:
		return matched[0], nil
	default:
		return "", fmt.Errorf("%w: %s matches %s", ErrAmbiguous, pattern, strings.Join(matched, ", "))
	}
}
