package render

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output. Development only: it changes the
	// markup's whitespace.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer writes Node trees as HTML. A Renderer has no per-render state and
// may be shared.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a tree to an HTML string.
func (r *Renderer) RenderToString(node *Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a tree to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *Node) error {
	bw := bufio.NewWriter(w)
	if err := r.renderNode(bw, node, 0); err != nil {
		return err
	}
	return bw.Flush()
}

// RenderDocument renders a complete HTML document around body.
func (r *Renderer) RenderDocument(w io.Writer, title string, body *Node) error {
	doc := El("html", Attr{Key: "lang", Value: "en"},
		El("head",
			El("meta", Attr{Key: "charset", Value: "utf-8"}),
			El("title", Text(title)),
		),
		El("body", body),
	)
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	return r.RenderToWriter(w, doc)
}

func (r *Renderer) renderNode(w *bufio.Writer, node *Node, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case KindElement:
		return r.renderElement(w, node, depth)
	case KindText:
		_, err := w.WriteString(escapeHTML(node.Text))
		return err
	case KindRaw:
		_, err := w.WriteString(node.Text)
		return err
	case KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("render: unknown node kind: %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w *bufio.Writer, node *Node, depth int) error {
	if node.Tag == "" {
		return fmt.Errorf("render: element without tag")
	}

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	w.WriteByte('<')
	w.WriteString(node.Tag)
	r.renderAttributes(w, node)
	w.WriteByte('>')

	if isVoidElement(node.Tag) {
		if r.config.Pretty {
			w.WriteByte('\n')
		}
		return nil
	}

	block := r.config.Pretty && hasElementChildren(node) && !isInlineElement(node.Tag)
	if block {
		w.WriteByte('\n')
	}
	for _, child := range node.Children {
		childDepth := depth + 1
		if !block {
			childDepth = 0
		}
		if err := r.renderNode(w, child, childDepth); err != nil {
			return err
		}
		if block && (child.Kind == KindText || child.Kind == KindRaw) {
			w.WriteByte('\n')
		}
	}
	if block {
		r.writeIndent(w, depth)
	}

	w.WriteString("</")
	w.WriteString(node.Tag)
	_, err := w.WriteString(">")
	if r.config.Pretty && depth > 0 {
		w.WriteByte('\n')
	}
	return err
}

// renderAttributes writes attributes in sorted key order. Empty values are
// dropped; boolean HTML attributes render bare when "true".
func (r *Renderer) renderAttributes(w *bufio.Writer, node *Node) {
	if len(node.Props) == 0 {
		return
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]
		if isBooleanAttr(key) {
			if value == "true" || value == key {
				w.WriteByte(' ')
				w.WriteString(key)
			}
			continue
		}
		if value == "" {
			continue
		}
		w.WriteByte(' ')
		w.WriteString(key)
		w.WriteString(`="`)
		w.WriteString(escapeAttr(value))
		w.WriteByte('"')
	}
}

func hasElementChildren(node *Node) bool {
	for _, c := range node.Children {
		if c.Kind == KindElement || c.Kind == KindFragment {
			return true
		}
	}
	return false
}

func (r *Renderer) writeIndent(w *bufio.Writer, depth int) {
	w.WriteString(strings.Repeat(r.config.Indent, depth))
}
