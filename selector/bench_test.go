package selector_test

import (
	"testing"

	"github.com/katalvlaran/lvlkit/selector"
)

// BenchmarkBuilder_FullChain measures a maximal seven-part chain plus Build.
func BenchmarkBuilder_FullChain(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = selector.Element("div").
			ID("main").
			Class("container").
			Class("draggable").
			Attr("data-id").
			PseudoClass("hover").
			PseudoElement("first-letter").
			Build()
	}
}

// BenchmarkCombine measures combinator composition of two small chains.
func BenchmarkCombine(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = selector.Combine(
			selector.Element("ul").Class("menu"),
			">",
			selector.Element("li"),
		).Build()
	}
}
