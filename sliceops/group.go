package sliceops

import "github.com/elliotchance/orderedmap/v3"

// GroupBy buckets items by key(item), collecting value(item) into each
// bucket. The result is an insertion-ordered map: group order is the order
// of first key occurrence in items, and values within a group keep the
// input order (stable grouping).
//
// Complexity: O(len(items)) time, O(len(items)) space.
func GroupBy[T any, K comparable, V any](
	items []T,
	key func(T) K,
	value func(T) V,
) *orderedmap.OrderedMap[K, []V] {
	out := orderedmap.NewOrderedMap[K, []V]()
	for _, item := range items {
		k := key(item)
		bucket, _ := out.Get(k)
		out.Set(k, append(bucket, value(item)))
	}

	return out
}
