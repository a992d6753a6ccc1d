// Package lvlkit is a compact toolkit of in-memory data helpers: ordered
// records, grouping and locale-aware sorting, a greedy change-making
// simulation, typed JSON round-trips, and a fluent CSS-selector builder
// with ordering validation.
//
// 🚀 What is lvlkit?
//
//	A small, focused library of pure data transformations:
//		• record/   — insertion-ordered string-keyed records: copy, merge,
//		              remove, compare, freeze, and word assembly
//		• sliceops/ — stable grouping and collation-aware sorting of slices
//		• tickets/  — a box-office change-making simulation over 25/50/100 bills
//		• shape/    — typed geometric values with a JSON round-trip
//		• selector/ — a fluent CSS-selector builder that enforces the CSS
//		              category order (element → id → class → attr →
//		              pseudo-class → pseudo-element)
//
// ✨ Why choose lvlkit?
//
//   - Predictable ordering – records and groups preserve insertion order,
//     always, so output is deterministic
//   - Rock-solid errors – sentinel errors, errors.Is-friendly, no panics
//   - Pure Go – no I/O, no persistence, no hidden global state
//   - Single-owner values – every builder and record belongs to its caller;
//     nothing is shared behind your back
//
// Every operation is synchronous and total over its documented input domain;
// the only failing surfaces are the selector chain (ordering and uniqueness
// violations) and writes to a frozen record.
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/lvlkit
package lvlkit
