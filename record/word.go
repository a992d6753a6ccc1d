package record

import "strings"

// MakeWord assembles a string from a Record mapping each letter to the
// zero-based positions it occupies, e.g. {a:[0,1], b:[2]} → "aab".
//
// The positions across all letters are expected to cover a contiguous
// 0..N-1 range exactly once; input violating that contract yields an
// unspecified (but non-panicking) result; callers pre-validate. Positions
// outside the range implied by the total count are dropped.
//
// Complexity: O(Σ len(positions)) time and space.
func MakeWord(letters *Record[[]int]) string {
	if letters == nil {
		return ""
	}

	// Total slot count is the number of positions listed across all letters.
	total := 0
	for el := letters.m.Front(); el != nil; el = el.Next() {
		total += len(el.Value)
	}

	slots := make([]string, total)
	for el := letters.m.Front(); el != nil; el = el.Next() {
		for _, pos := range el.Value {
			if pos < 0 || pos >= total {
				continue
			}
			slots[pos] = el.Key
		}
	}

	return strings.Join(slots, "")
}
