// Package selector provides a fluent builder for CSS selector strings that
// enforces the CSS specification ordering of selector parts.
//
// What:
//
//   - Builder accumulates rendered selector fragments ("div", "#id", ".cls",
//     "[attr]", ":hover", "::before") in insertion order.
//   - Each category method validates the new fragment's category against the
//     fixed order element → id → class → attr → pseudo-class → pseudo-element.
//   - Element, id and pseudo-element may each appear at most once per chain;
//     class, attr and pseudo-class may repeat.
//   - Combine joins two built selectors with a combinator token (" ", ">",
//     "+", "~") into a new Builder that can be combined or built further.
//
// Why:
//
//   - Generated selectors: build query strings programmatically without
//     sprinkling string concatenation through calling code.
//   - Fail-fast validation: an out-of-order or duplicated part is caught at
//     the call site, not when a stylesheet engine rejects the result.
//
// The chain latches its first error: after a violation every later category
// method is a no-op and Build returns the original error, so callers may
// write an entire chain and check the error exactly once at the end.
//
// Complexity:
//
//   - Each category method: O(len(name)) time, O(1) extra space.
//   - Build: O(total rendered length).
//
// Errors:
//
//   - ErrOrderViolation: a part's category ranks before the most recently
//     added part's category.
//   - ErrDuplicateSingleton: a second element, id, or pseudo-element part.
//
// This package renders and orders selector text only; it does not parse CSS
// and does not match selectors against any document tree.
package selector
