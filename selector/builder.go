package selector

import (
	"fmt"
	"strings"
)

// Builder accumulates rendered selector fragments and validates the CSS
// category order as they are added. A Builder belongs to the chain that
// created it: create one per logical selector, mutate it through the fluent
// category methods, and read the result with Build.
//
// The zero value is NOT ready to use; call New or one of the package-level
// category shorthands (Element, ID, Class, ...).
//
// Builders accumulate monotonically: there is no removal operation. The
// first invariant violation is latched; all later category methods become
// no-ops and Build reports that first error.
type Builder struct {
	// fragments holds the rendered parts in insertion order; the final
	// selector is their concatenation with no separator.
	fragments []string

	// last is the Kind of the most recently appended part, or kindNone.
	last Kind

	// seen tracks which singleton Kinds have already been appended.
	seen [KindPseudoElement + 1]bool

	// err is the first latched validation error, nil while the chain is valid.
	err error
}

// New returns an empty Builder ready to accept category methods.
func New() *Builder {
	return &Builder{last: kindNone}
}

// Package-level shorthands: each starts a fresh chain with a single part,
// so callers can write selector.Element("div").ID("x")... directly.

// Element starts a chain with a bare element part, e.g. "div".
func Element(name string) *Builder { return New().Element(name) }

// ID starts a chain with an id part, e.g. "#root".
func ID(name string) *Builder { return New().ID(name) }

// Class starts a chain with a class part, e.g. ".wide".
func Class(name string) *Builder { return New().Class(name) }

// Attr starts a chain with an attribute part, e.g. "[checked]".
func Attr(name string) *Builder { return New().Attr(name) }

// PseudoClass starts a chain with a pseudo-class part, e.g. ":hover".
func PseudoClass(name string) *Builder { return New().PseudoClass(name) }

// PseudoElement starts a chain with a pseudo-element part, e.g. "::before".
func PseudoElement(name string) *Builder { return New().PseudoElement(name) }

// Element appends a bare element name. At most one per selector.
func (b *Builder) Element(name string) *Builder {
	return b.add(KindElement, name)
}

// ID appends "#<name>". At most one per selector.
func (b *Builder) ID(name string) *Builder {
	return b.add(KindID, "#"+name)
}

// Class appends ".<name>". May repeat.
func (b *Builder) Class(name string) *Builder {
	return b.add(KindClass, "."+name)
}

// Attr appends "[<name>]". May repeat.
func (b *Builder) Attr(name string) *Builder {
	return b.add(KindAttr, "["+name+"]")
}

// PseudoClass appends ":<name>". May repeat.
func (b *Builder) PseudoClass(name string) *Builder {
	return b.add(KindPseudoClass, ":"+name)
}

// PseudoElement appends "::<name>". At most one per selector.
func (b *Builder) PseudoElement(name string) *Builder {
	return b.add(KindPseudoElement, "::"+name)
}

// add is the single transition of the ordering state machine: it admits a
// part of Kind k iff k ranks no earlier than the last appended Kind and, for
// singleton Kinds, has not been appended before. On violation it latches the
// error and leaves prior fragments intact; the chain is then dead.
func (b *Builder) add(k Kind, fragment string) *Builder {
	if b.err != nil {
		return b
	}
	if k < b.last {
		b.err = fmt.Errorf("%s after %s: %w", k, b.last, ErrOrderViolation)

		return b
	}
	if k.singleton() && b.seen[k] {
		b.err = fmt.Errorf("second %s: %w", k, ErrDuplicateSingleton)

		return b
	}

	b.fragments = append(b.fragments, fragment)
	b.last = k
	b.seen[k] = true

	return b
}

// Build renders the selector: the concatenation of all fragments in
// insertion order with no separator. If the chain latched a validation
// error, Build returns it with the empty string. Idempotent; does not
// mutate the Builder.
func (b *Builder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}

	return strings.Join(b.fragments, ""), nil
}

// String implements fmt.Stringer. It renders the fragments appended so far
// and ignores any latched error; after a violation the result reflects only
// the parts admitted before it. Use Build when the error matters.
func (b *Builder) String() string {
	return strings.Join(b.fragments, "")
}

// Err returns the first latched validation error, or nil while the chain is
// valid. Useful for checking mid-chain without rendering.
func (b *Builder) Err() error {
	return b.err
}

// Combine joins two selectors with a combinator token (" ", ">", "+", "~")
// into a new Builder holding the single fragment "<a> <combinator> <b>".
// The result can itself be combined further or built.
//
// Combine performs no validation of the combinator; it only requires both
// operands to render. A latched error on either operand propagates to the
// result (the left one wins when both are broken).
func Combine(a *Builder, combinator string, b *Builder) *Builder {
	out := New()
	if err := a.Err(); err != nil {
		out.err = err

		return out
	}
	if err := b.Err(); err != nil {
		out.err = err

		return out
	}

	// A combined selector is opaque: it takes part in further chains as a
	// single fragment and no longer constrains category ordering.
	out.fragments = append(out.fragments, a.String()+" "+combinator+" "+b.String())

	return out
}
