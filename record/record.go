package record

import (
	"errors"

	"github.com/elliotchance/orderedmap/v3"
)

// ErrFrozenRecord indicates a mutation was attempted on a Record produced by
// Freeze. Branch with errors.Is.
var ErrFrozenRecord = errors.New("record: record is frozen")

// Pair is one key/value entry of a Record, used for literal construction and
// ordered extraction.
type Pair[V any] struct {
	Key   string
	Value V
}

// Record is a mutable string-keyed mapping that preserves key insertion
// order. The zero value is not usable; construct with NewRecord or FromPairs.
//
// A Record is exclusively owned by its creator: no internal locking is
// performed, matching the single-owner model of the rest of lvlkit.
type Record[V any] struct {
	m      *orderedmap.OrderedMap[string, V]
	frozen bool
}

// NewRecord returns an empty, unfrozen Record.
func NewRecord[V any]() *Record[V] {
	return &Record[V]{m: orderedmap.NewOrderedMap[string, V]()}
}

// FromPairs builds a Record from pairs in the given order. A repeated key
// keeps its first position and takes the last value, the same way repeated
// assignment to an existing key behaves.
func FromPairs[V any](pairs ...Pair[V]) *Record[V] {
	r := NewRecord[V]()
	for _, p := range pairs {
		r.m.Set(p.Key, p.Value)
	}

	return r
}

// Set assigns value under key, appending the key if it is new.
// Returns ErrFrozenRecord when the Record was produced by Freeze.
func (r *Record[V]) Set(key string, value V) error {
	if r.frozen {
		return ErrFrozenRecord
	}
	r.m.Set(key, value)

	return nil
}

// Get returns the value stored under key and whether the key is present.
func (r *Record[V]) Get(key string) (V, bool) {
	return r.m.Get(key)
}

// Delete removes key. It reports whether the key was present, and fails
// with ErrFrozenRecord on a frozen Record.
func (r *Record[V]) Delete(key string) (bool, error) {
	if r.frozen {
		return false, ErrFrozenRecord
	}

	return r.m.Delete(key), nil
}

// Len returns the number of keys.
func (r *Record[V]) Len() int {
	return r.m.Len()
}

// Frozen reports whether the Record rejects mutation.
func (r *Record[V]) Frozen() bool {
	return r.frozen
}

// Keys returns all keys in insertion order as a fresh slice.
func (r *Record[V]) Keys() []string {
	keys := make([]string, 0, r.m.Len())
	for el := r.m.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}

	return keys
}

// Pairs returns all entries in insertion order as a fresh slice.
func (r *Record[V]) Pairs() []Pair[V] {
	pairs := make([]Pair[V], 0, r.m.Len())
	for el := r.m.Front(); el != nil; el = el.Next() {
		pairs = append(pairs, Pair[V]{Key: el.Key, Value: el.Value})
	}

	return pairs
}

// clone copies the entries (not the values) into a fresh unfrozen Record.
func (r *Record[V]) clone() *Record[V] {
	out := NewRecord[V]()
	for el := r.m.Front(); el != nil; el = el.Next() {
		out.m.Set(el.Key, el.Value)
	}

	return out
}
