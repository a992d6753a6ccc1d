package shape

import (
	"encoding/json"
	"fmt"
)

// Rectangle is an axis-aligned rectangle described by its side lengths.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle constructs a Rectangle from its side lengths. All typed
// construction, including deserialization, goes through this factory.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns width × height.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// ToJSON structurally serializes v into a compact JSON string.
func ToJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("shape: marshal: %w", err)
	}

	return string(data), nil
}

// RectangleFromJSON deserializes data into a plain field record and builds
// the typed value via NewRectangle. Unknown fields are ignored; missing
// fields default to zero, matching structural JSON semantics.
func RectangleFromJSON(data string) (Rectangle, error) {
	var fields struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return Rectangle{}, fmt.Errorf("shape: unmarshal rectangle: %w", err)
	}

	return NewRectangle(fields.Width, fields.Height), nil
}
