// util/generic.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"cmp"
	"slices"
)

// SortedMapKeys returns the keys of m in sorted order. Iteration order over
// a Go map is randomized, so anything that needs a deterministic plan out
// of the graph builder or planner must range over this instead of the map
// directly.
func SortedMapKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
