// Package record provides Record, an insertion-ordered string-keyed mapping,
// together with shallow structural helpers: copy, key-wise merge, key
// removal, shallow comparison, emptiness, freezing, and positional word
// assembly.
//
// What:
//
//   - Record[V] preserves key insertion order for all iteration and
//     serial output, backed by an ordered map rather than Go's unordered
//     built-in map. Key order is part of every operation's contract.
//   - ShallowCopy, RemoveKeys and Freeze return new Records; the input is
//     never mutated.
//   - Merge sums numeric values key-wise across any number of Records,
//     treating missing keys as zero.
//   - Freeze yields a write-protected copy: Set and Delete on a frozen
//     Record fail with ErrFrozenRecord.
//   - MakeWord assembles a string from a Record mapping letters to the
//     zero-based positions they occupy.
//
// Why:
//
//   - Deterministic output: the order keys were first added is the order
//     they come back, which keeps merges, groupings and serializations
//     reproducible across runs.
//
// Complexity: all helpers are single-pass, O(n) in the number of keys (plus
// O(Σ len(positions)) for MakeWord); Get/Set/Delete are O(1).
//
// Errors: only writes to a frozen Record fail (ErrFrozenRecord). Every
// other operation is total over its documented input domain; callers are
// expected to pre-validate exotic input (e.g., MakeWord position sets that
// do not cover a contiguous 0..N-1 range have an unspecified result).
package record
