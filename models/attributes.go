package models

import (
	"encoding/json"
	"sort"
	"strconv"
)

// Attributes holds freeform fields such as values pulled off an identity document.
// Values are strings, numbers, booleans, nil, nested Attributes or lists of those.
type Attributes map[string]any

// invalidAttributePaths returns the dotted paths under prefix whose values are not
// representable as attributes.
func invalidAttributePaths(prefix string, m map[string]any) []string {
	var bad []string
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		bad = append(bad, invalidValuePaths(prefix+"."+k, m[k])...)
	}
	return bad
}

func invalidValuePaths(path string, v any) []string {
	switch t := v.(type) {
	case nil, string, bool, json.Number,
		float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return nil
	case Attributes:
		return invalidAttributePaths(path, t)
	case map[string]any:
		return invalidAttributePaths(path, t)
	case []any:
		var bad []string
		for i, item := range t {
			bad = append(bad, invalidValuePaths(path+"."+strconv.Itoa(i), item)...)
		}
		return bad
	case []string:
		return nil
	}
	return []string{path}
}
