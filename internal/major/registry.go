package major

import (
	"sort"
	"strings"
)

// registry indexes definitions by lower-cased, trimmed major name.
var registry map[string]*Definition

func init() {
	registry = make(map[string]*Definition, len(seedDefinitions))
	for i := range seedDefinitions {
		d := &seedDefinitions[i]
		registry[strings.ToLower(strings.TrimSpace(d.Name))] = d
	}
}

// Lookup resolves a major by name. Matching is case-insensitive and
// ignores surrounding whitespace. The second return value is false when
// the major is not supported; callers degrade gracefully rather than
// treating that as an error.
func Lookup(name string) (*Definition, bool) {
	d, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// Supported returns the display names of all supported majors, sorted.
func Supported() []string {
	names := make([]string, 0, len(registry))
	for _, d := range registry {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}
