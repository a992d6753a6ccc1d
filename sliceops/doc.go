// Package sliceops provides order-preserving slice helpers: stable grouping
// into an insertion-ordered map, and locale-aware sorting of country/city
// rows via Unicode collation.
//
// GroupBy never reorders anything: groups appear in the order their key was
// first seen, and values inside a group keep input order. SortCities sorts
// with golang.org/x/text/collate so that accented and case-variant names
// order the way a human reader of the given locale expects, not by raw byte
// value.
//
// Complexity: GroupBy is O(n); SortCities is O(n log n) comparisons, each a
// collation-key comparison.
package sliceops
