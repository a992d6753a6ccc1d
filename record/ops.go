package record

// Number constrains Merge to value types whose key-wise sum is meaningful.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ShallowCopy returns a new Record holding the same top-level key/value
// pairs in the same order. Values are not deep-copied: reference-like
// values (slices, maps, pointers) are shared with the source. The copy is
// always unfrozen, even when the source is frozen.
//
// A nil source is treated as empty.
func ShallowCopy[V any](r *Record[V]) *Record[V] {
	if r == nil {
		return NewRecord[V]()
	}

	return r.clone()
}

// Merge sums values key-wise across all given Records; a key missing from a
// Record contributes zero. Key order in the result is first-seen order
// across the inputs, left to right. Nil Records are skipped.
//
// Complexity: O(total number of entries across inputs).
func Merge[V Number](records ...*Record[V]) *Record[V] {
	out := NewRecord[V]()
	for _, r := range records {
		if r == nil {
			continue
		}
		for el := r.m.Front(); el != nil; el = el.Next() {
			prev, _ := out.m.Get(el.Key)
			out.m.Set(el.Key, prev+el.Value)
		}
	}

	return out
}

// RemoveKeys returns a copy of r without the listed keys. Keys absent from
// r are ignored. The input is not mutated.
func RemoveKeys[V any](r *Record[V], keys ...string) *Record[V] {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}

	out := NewRecord[V]()
	if r == nil {
		return out
	}
	for el := r.m.Front(); el != nil; el = el.Next() {
		if _, skip := drop[el.Key]; skip {
			continue
		}
		out.m.Set(el.Key, el.Value)
	}

	return out
}

// Equal reports whether a and b hold the same key set with strictly equal
// values. The comparison is shallow (== on V) and intentionally ignores key
// order: two Records built in different orders but holding the same entries
// are equal. Nil Records compare as empty.
func Equal[V comparable](a, b *Record[V]) bool {
	la, lb := 0, 0
	if a != nil {
		la = a.m.Len()
	}
	if b != nil {
		lb = b.m.Len()
	}
	if la != lb {
		return false
	}
	if la == 0 {
		return true
	}
	for el := a.m.Front(); el != nil; el = el.Next() {
		other, ok := b.m.Get(el.Key)
		if !ok || other != el.Value {
			return false
		}
	}

	return true
}

// IsEmpty reports whether r has no keys. A nil Record is empty.
func IsEmpty[V any](r *Record[V]) bool {
	return r == nil || r.m.Len() == 0
}

// Freeze returns a write-protected shallow copy of r: Set and Delete on the
// result fail with ErrFrozenRecord while reads work as usual. The source
// stays mutable.
func Freeze[V any](r *Record[V]) *Record[V] {
	out := ShallowCopy(r)
	out.frozen = true

	return out
}
