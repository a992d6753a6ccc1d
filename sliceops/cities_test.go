package sliceops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/katalvlaran/lvlkit/sliceops"
)

// TestSortCities verifies ascending country-then-city order.
func TestSortCities(t *testing.T) {
	in := []sliceops.City{
		{Country: "Russia", City: "Omsk"},
		{Country: "Russia", City: "Samara"},
		{Country: "Belarus", City: "Grodno"},
		{Country: "Belarus", City: "Minsk"},
		{Country: "Poland", City: "Lodz"},
		{Country: "Russia", City: "Saint Petersburg"},
		{Country: "Belarus", City: "Brest"},
	}

	got := sliceops.SortCities(in, language.English)

	want := []sliceops.City{
		{Country: "Belarus", City: "Brest"},
		{Country: "Belarus", City: "Grodno"},
		{Country: "Belarus", City: "Minsk"},
		{Country: "Poland", City: "Lodz"},
		{Country: "Russia", City: "Omsk"},
		{Country: "Russia", City: "Saint Petersburg"},
		{Country: "Russia", City: "Samara"},
	}
	assert.Equal(t, want, got)

	// Input stays untouched.
	assert.Equal(t, sliceops.City{Country: "Russia", City: "Omsk"}, in[0])
}

// TestSortCities_Collation verifies accented names order by collation, not
// by raw byte value: "Écully" collates before "Evry" although its first
// byte is larger.
func TestSortCities_Collation(t *testing.T) {
	in := []sliceops.City{
		{Country: "France", City: "Evry"},
		{Country: "France", City: "Écully"},
	}

	got := sliceops.SortCities(in, language.French)
	assert.Equal(t, "Écully", got[0].City)
	assert.Equal(t, "Evry", got[1].City)
}

// TestSortCities_Empty verifies nil and empty inputs round-trip safely.
func TestSortCities_Empty(t *testing.T) {
	assert.Empty(t, sliceops.SortCities(nil, language.Und))
	assert.Empty(t, sliceops.SortCities([]sliceops.City{}, language.Und))
}
