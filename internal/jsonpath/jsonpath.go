// Package jsonpath resolves dotted attribute paths against a generic JSON
// value decoded into Go's any/map[string]any/[]any tree.
package jsonpath

import (
	"strconv"
	"strings"
)

// Resolve walks value one dotted step at a time. The empty path addresses
// value itself. The current container decides how a step is read: against
// a map it is a key (so object keys that happen to be numeric strings,
// e.g. "0", remain reachable), against a slice it must parse as a
// non-negative integer index. Resolution never errors: an absent key, an
// out-of-range index, or a step against a scalar all yield ok=false.
func Resolve(value any, path string) (any, bool) {
	if path == "" {
		return value, true
	}
	steps := strings.Split(path, ".")
	cur := value
	for _, step := range steps {
		next, ok := resolveStep(cur, step)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func resolveStep(container any, step string) (any, bool) {
	switch c := container.(type) {
	case map[string]any:
		v, ok := c[step]
		return v, ok
	case []any:
		idx, err := strconv.Atoi(step)
		if err != nil || idx < 0 || idx >= len(c) {
			return nil, false
		}
		return c[idx], true
	default:
		return nil, false
	}
}
