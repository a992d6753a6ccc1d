package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlkit/record"
)

func pairsOf(kv ...any) []record.Pair[int] {
	pairs := make([]record.Pair[int], 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		pairs = append(pairs, record.Pair[int]{Key: kv[i].(string), Value: kv[i+1].(int)})
	}

	return pairs
}

// TestShallowCopy verifies the copy is a distinct container holding equal
// pairs, and that reference-like values stay shared.
func TestShallowCopy(t *testing.T) {
	src := record.FromPairs(pairsOf("a", 1, "b", 2)...)
	cp := record.ShallowCopy(src)

	assert.NotSame(t, src, cp)
	assert.True(t, record.Equal(src, cp))

	// Mutating the copy must not touch the source.
	require.NoError(t, cp.Set("c", 3))
	assert.Equal(t, 2, src.Len())

	// Shared reference values: the inner slice is the same backing array.
	shared := record.FromPairs(record.Pair[[]int]{Key: "xs", Value: []int{1, 2}})
	cp2 := record.ShallowCopy(shared)
	orig, _ := shared.Get("xs")
	copied, _ := cp2.Get("xs")
	orig[0] = 99
	assert.Equal(t, 99, copied[0], "values are not deep-copied")
}

// TestMerge verifies key-wise summation with missing keys as zero and
// first-seen key order in the result.
func TestMerge(t *testing.T) {
	a := record.FromPairs(pairsOf("a", 1)...)
	b := record.FromPairs(pairsOf("a", 2, "b", 3)...)

	got := record.Merge(a, b)
	assert.Equal(t, []string{"a", "b"}, got.Keys())
	va, _ := got.Get("a")
	vb, _ := got.Get("b")
	assert.Equal(t, 3, va)
	assert.Equal(t, 3, vb)

	// Zero inputs and nil inputs yield an empty result.
	assert.True(t, record.IsEmpty(record.Merge[int]()))
	assert.True(t, record.IsEmpty(record.Merge[int](nil, nil)))
}

// TestMerge_OrderAcrossInputs pins first-seen ordering across three inputs.
func TestMerge_OrderAcrossInputs(t *testing.T) {
	got := record.Merge(
		record.FromPairs(pairsOf("b", 1)...),
		record.FromPairs(pairsOf("c", 1, "a", 1)...),
		record.FromPairs(pairsOf("b", 1, "d", 1)...),
	)
	assert.Equal(t, []string{"b", "c", "a", "d"}, got.Keys())
}

// TestRemoveKeys verifies listed keys are dropped, absent keys ignored, and
// the source untouched.
func TestRemoveKeys(t *testing.T) {
	src := record.FromPairs(pairsOf("a", 1, "b", 2)...)
	got := record.RemoveKeys(src, "a", "missing")

	assert.Equal(t, []string{"b"}, got.Keys())
	assert.Equal(t, 2, src.Len())
}

// TestEqual verifies shallow equality: same key set, strictly equal values,
// key order irrelevant.
func TestEqual(t *testing.T) {
	assert.True(t, record.Equal(
		record.FromPairs(pairsOf("a", 1, "b", 2)...),
		record.FromPairs(pairsOf("b", 2, "a", 1)...),
	), "key order must not affect equality")

	assert.False(t, record.Equal(
		record.FromPairs(pairsOf("a", 1)...),
		record.FromPairs(pairsOf("a", 2)...),
	), "differing values")

	assert.False(t, record.Equal(
		record.FromPairs(pairsOf("a", 1)...),
		record.FromPairs(pairsOf("a", 1, "b", 2)...),
	), "differing key sets")

	assert.True(t, record.Equal[int](nil, nil))
	assert.True(t, record.Equal(record.NewRecord[int](), nil))
}

// TestIsEmpty covers empty, non-empty and nil records.
func TestIsEmpty(t *testing.T) {
	assert.True(t, record.IsEmpty(record.NewRecord[int]()))
	assert.True(t, record.IsEmpty[int](nil))
	assert.False(t, record.IsEmpty(record.FromPairs(pairsOf("a", 1)...)))
}
