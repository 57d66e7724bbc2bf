package domain

import (
	"maps"
	"slices"
)

// sortedKeys fixes the traversal order of every name-keyed collection.
// Engines rely on it for tie-breaks instead of Go's randomized map order.
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
