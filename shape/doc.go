// Package shape provides small typed geometric values and a structural JSON
// round-trip for them.
//
// ToJSON serializes any value structurally. RectangleFromJSON goes the
// other way for Rectangle: it decodes into a plain data record first and
// then constructs the typed value through the NewRectangle factory, so the
// behavior (Area and friends) always comes from the type, never from the
// wire.
package shape
