package render

import "fmt"

// Kind identifies the node type.
type Kind uint8

const (
	KindElement Kind = iota
	KindText
	KindFragment
	KindRaw
)

// Attr is a single attribute.
type Attr struct {
	Key   string
	Value string
}

// Node is an element, text, fragment or raw HTML node.
type Node struct {
	Kind     Kind
	Tag      string
	Props    map[string]string
	Children []*Node
	Text     string
}

// El creates an element. Each arg may be a map[string]string, Attr, []Attr,
// *Node, []*Node or nil; anything else panics, since it indicates a
// programming error in the caller's view code.
func El(tag string, args ...any) *Node {
	n := &Node{Kind: KindElement, Tag: tag}
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
		case map[string]string:
			n.setProps(v)
		case Attr:
			n.setProp(v.Key, v.Value)
		case []Attr:
			for _, a := range v {
				n.setProp(a.Key, a.Value)
			}
		case *Node:
			if v != nil {
				n.Children = append(n.Children, v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					n.Children = append(n.Children, c)
				}
			}
		default:
			panic(fmt.Sprintf("render: unsupported El argument %T", arg))
		}
	}
	return n
}

// Text creates an escaped text node.
func Text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

// Textf creates a text node from a format string.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates a node whose text is written without escaping.
func Raw(html string) *Node {
	return &Node{Kind: KindRaw, Text: html}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...*Node) *Node {
	n := &Node{Kind: KindFragment}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

func (n *Node) setProps(m map[string]string) {
	for k, v := range m {
		n.setProp(k, v)
	}
}

func (n *Node) setProp(key, value string) {
	if n.Props == nil {
		n.Props = make(map[string]string)
	}
	n.Props[key] = value
}

// Walk calls fn for n and every descendant in document order. Returning
// false from fn skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}
