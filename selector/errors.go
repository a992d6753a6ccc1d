package selector

import "errors"

// Sentinel errors for selector chain validation.
//
// Error policy (matching the rest of lvlkit):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Category methods never panic; the first violation is latched on the
//     Builder and surfaced by Build with method context attached via %w.
var (
	// ErrOrderViolation indicates a selector part was added after a part of a
	// later category (e.g., an element after an id, a class after an attr).
	// Usage: if errors.Is(err, selector.ErrOrderViolation) { ... }.
	ErrOrderViolation = errors.New("selector: selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")

	// ErrDuplicateSingleton indicates a second element, id, or pseudo-element
	// part was attempted; each may occur at most once per selector.
	// Usage: if errors.Is(err, selector.ErrDuplicateSingleton) { ... }.
	ErrDuplicateSingleton = errors.New("selector: element, id and pseudo-element should not occur more than one time inside the selector")
)
