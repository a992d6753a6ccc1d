package sliceops

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// City is one row of a country/city table.
type City struct {
	Country string
	City    string
}

// SortCities returns a copy of cities sorted ascending by country, then by
// city, using locale-aware collation for the given language tag (pass
// language.Und for locale-neutral Unicode ordering). The input slice is not
// modified.
//
// The sort is stable, so rows that collate as equal keep their input order.
//
// Complexity: O(n log n) collation comparisons, O(n) extra space.
func SortCities(cities []City, tag language.Tag) []City {
	out := make([]City, len(cities))
	copy(out, cities)

	c := collate.New(tag)
	sort.SliceStable(out, func(i, j int) bool {
		if cmp := c.CompareString(out[i].Country, out[j].Country); cmp != 0 {
			return cmp < 0
		}

		return c.CompareString(out[i].City, out[j].City) < 0
	})

	return out
}
