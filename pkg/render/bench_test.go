package render

import (
	"fmt"
	"io"
	"testing"
)

func BenchmarkRenderSimple(b *testing.B) {
	renderer := NewRenderer(RendererConfig{})
	node := El("div", Attr{Key: "class", Value: "card"},
		El("h1", Text("Title")),
		El("p", Text("Content")),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToString(node)
	}
}

func BenchmarkRenderLargeTree(b *testing.B) {
	renderer := NewRenderer(RendererConfig{})

	items := make([]*Node, 0, 1000)
	for i := 0; i < 1000; i++ {
		items = append(items, El("li",
			Attr{Key: "id", Value: fmt.Sprintf("ds-listbox-item-%d", i+1)},
			Attr{Key: "role", Value: "option"},
			Textf("Item %d", i),
		))
	}
	node := El("ul", items)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToWriter(io.Discard, node)
	}
}

func BenchmarkRenderPretty(b *testing.B) {
	renderer := NewRenderer(RendererConfig{Pretty: true})
	node := El("form",
		El("label", Attr{Key: "for", Value: "ds-email-input-1"}, Text("Email")),
		El("input", map[string]string{"id": "ds-email-input-1", "type": "email", "required": "true"}),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToString(node)
	}
}
