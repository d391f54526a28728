package common

import "golang.org/x/exp/slices"

func MapKeys[K comparable, V any](m map[K]V) []K {
	var result []K
	for k := range m {
		result = append(result, k)
	}
	return result
}

// SortedMapKeys returns the keys of m in ascending order according to less.
// Map iteration order is random, so any replayable walk over a map must go
// through here first.
func SortedMapKeys[K comparable, V any](m map[K]V, less func(a, b K) bool) []K {
	keys := MapKeys(m)
	slices.SortFunc(keys, less)
	return keys
}
