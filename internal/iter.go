package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Sorted iterates over a map in ascending key order.
func Sorted[K cmp.Ordered, V any](m map[K]V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range slices.Sorted(maps.Keys(m)) {
			if !yield(key, m[key]) {
				return // Stop if the consumer stops
			}
		}
	}
}

// KeysOf returns the keys of a map whose value equals value, in ascending order.
func KeysOf[K cmp.Ordered, V comparable](m map[K]V, value V) (keys []K) {
	for key, v := range Sorted(m) {
		if v == value {
			keys = append(keys, key)
		}
	}
	return
}
