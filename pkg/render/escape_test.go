package render

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain label", "Email address", "Email address"},
		{"markup in help text", "Use <b>8+</b> characters", "Use &lt;b&gt;8+&lt;/b&gt; characters"},
		{"ampersand", "Terms & conditions", "Terms &amp; conditions"},
		{"quotes", `Click "Save" when you're done`, "Click &quot;Save&quot; when you&#39;re done"},
		{"already escaped", "&amp;", "&amp;amp;"},
		{"newline kept in text", "line one\nline two", "line one\nline two"},
		{"unicode", "Adresse e-mail déjà utilisée", "Adresse e-mail déjà utilisée"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeHTML(tt.input); got != tt.want {
				t.Errorf("escapeHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"id list", "ds-input-error-4 ds-input-help-text-5", "ds-input-error-4 ds-input-help-text-5"},
		{"label with quotes", `Close "Terms" dialog`, "Close &quot;Terms&quot; dialog"},
		{"label with apostrophe", "Don't show again", "Don&#39;t show again"},
		{"newline", "first\nsecond", "first&#10;second"},
		{"carriage return and tab", "a\r\tb", "a&#13;&#9;b"},
		{"breakout attempt", `x" onclick="alert(1)`, "x&quot; onclick=&quot;alert(1)"},
		{"tag in value", "<script>", "&lt;script&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeAttr(tt.input); got != tt.want {
				t.Errorf("escapeAttr(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderAttributesEscaped(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "describedby list kept verbatim",
			node: El("input", map[string]string{
				"id":               "ds-input-input-2",
				"aria-describedby": "ds-input-error-4 ds-input-help-text-5",
			}),
			want: `<input aria-describedby="ds-input-error-4 ds-input-help-text-5" id="ds-input-input-2">`,
		},
		{
			name: "aria-label with quotes",
			node: El("button", Attr{Key: "aria-label", Value: `Open "Terms"`}, Text("?")),
			want: `<button aria-label="Open &quot;Terms&quot;">?</button>`,
		},
		{
			name: "aria-label with newline",
			node: El("div", Attr{Key: "aria-label", Value: "Billing\naddress"}),
			want: `<div aria-label="Billing&#10;address"></div>`,
		},
		{
			name: "text child escaped, attribute untouched",
			node: El("p", Attr{Key: "id", Value: "ds-input-help-text-1"}, Text("a < b & c")),
			want: `<p id="ds-input-help-text-1">a &lt; b &amp; c</p>`,
		},
		{
			name: "raw child not escaped",
			node: El("p", Raw("<em>ok</em>")),
			want: `<p><em>ok</em></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

// Escaped attribute values must parse back to the original value, so IDs
// and ARIA references survive a trip through an HTML parser.
func TestEscapedAttributesParseBack(t *testing.T) {
	values := []string{
		"ds-menu-1-item-1 ds-menu-1-item-2",
		`He said "hi" & left`,
		"multi\nline\tlabel",
		"<not-a-tag>",
	}

	renderer := NewRenderer(RendererConfig{})
	for _, v := range values {
		out, err := renderer.RenderToString(El("div", Attr{Key: "aria-label", Value: v}))
		if err != nil {
			t.Fatal(err)
		}

		doc, err := html.Parse(strings.NewReader(out))
		if err != nil {
			t.Fatalf("parse %q: %v", out, err)
		}
		got, ok := findAttr(doc, "aria-label")
		if !ok {
			t.Fatalf("aria-label missing from %s", out)
		}
		if got != v {
			t.Errorf("round trip = %q, want %q", got, v)
		}
	}
}

func findAttr(n *html.Node, key string) (string, bool) {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == key {
				return a.Val, true
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if v, ok := findAttr(c, key); ok {
			return v, true
		}
	}
	return "", false
}

func BenchmarkEscapeAttr(b *testing.B) {
	s := "ds-input-error-4 ds-input-help-text-5"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = escapeAttr(s)
	}
}
