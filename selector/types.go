package selector

// Kind classifies a selector part. The declaration order defines the rank
// used for ordering validation: a part may only follow parts of the same or
// an earlier Kind.
type Kind int

const (
	// KindElement is a bare element name, e.g. "div".
	KindElement Kind = iota
	// KindID is an id part, rendered with a '#' prefix.
	KindID
	// KindClass is a class part, rendered with a '.' prefix.
	KindClass
	// KindAttr is an attribute part, rendered in square brackets.
	KindAttr
	// KindPseudoClass is a pseudo-class part, rendered with a ':' prefix.
	KindPseudoClass
	// KindPseudoElement is a pseudo-element part, rendered with a '::' prefix.
	KindPseudoElement
)

// kindNone marks a Builder that has no parts yet; every Kind ranks after it.
const kindNone Kind = -1

// kindNames maps each Kind to the canonical method name used as context
// when a latched error is wrapped.
var kindNames = [...]string{
	KindElement:       "Element",
	KindID:            "ID",
	KindClass:         "Class",
	KindAttr:          "Attr",
	KindPseudoClass:   "PseudoClass",
	KindPseudoElement: "PseudoElement",
}

// String returns the canonical method name of the Kind ("Element", "ID", ...).
func (k Kind) String() string {
	if k < KindElement || int(k) >= len(kindNames) {
		return "Unknown"
	}

	return kindNames[k]
}

// singleton reports whether parts of this Kind may occur at most once per
// selector (element, id and pseudo-element; classes, attributes and
// pseudo-classes may repeat).
func (k Kind) singleton() bool {
	return k == KindElement || k == KindID || k == KindPseudoElement
}
