// Package render is the pure rendering core: it turns a profile snapshot
// plus theme tokens into a render tree. It never touches storage, the
// network, or global state; every input is passed in by the caller.
package render

import (
	"html"
	"sort"
	"strings"
)

// Node is one element of the render tree. A node with an empty Tag is a
// text node and carries only Text.
type Node struct {
	Tag      string            `json:"tag,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Style    map[string]string `json:"style,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

var voidTags = map[string]bool{
	"br":   true,
	"hr":   true,
	"img":  true,
	"meta": true,
	"link": true,
}

func el(tag string, classes ...string) *Node {
	n := &Node{Tag: tag}
	if len(classes) > 0 {
		n.attr("class", strings.Join(classes, " "))
	}
	return n
}

func textNode(s string) *Node {
	return &Node{Text: s}
}

func (n *Node) attr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

func (n *Node) style(key, value string) *Node {
	if n.Style == nil {
		n.Style = make(map[string]string)
	}
	n.Style[key] = value
	return n
}

func (n *Node) styles(m map[string]string) *Node {
	for key, value := range m {
		n.style(key, value)
	}
	return n
}

// add appends children, silently dropping nils so callers can pass
// optional subtrees straight through.
func (n *Node) add(children ...*Node) *Node {
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

func (n *Node) text(s string) *Node {
	if s == "" {
		return n
	}
	return n.add(textNode(s))
}

// HTML serializes the tree deterministically: attributes and style keys
// are emitted in sorted order, all text and attribute values escaped.
func (n *Node) HTML() string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

func (n *Node) writeTo(b *strings.Builder) {
	if n == nil {
		return
	}
	if n.Tag == "" {
		b.WriteString(html.EscapeString(n.Text))
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Tag)

	keys := make([]string, 0, len(n.Attrs))
	for key := range n.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(n.Attrs[key]))
		b.WriteByte('"')
	}

	if len(n.Style) > 0 {
		b.WriteString(` style="`)
		b.WriteString(html.EscapeString(inlineStyle(n.Style)))
		b.WriteByte('"')
	}

	if voidTags[n.Tag] {
		b.WriteString("/>")
		return
	}

	b.WriteByte('>')
	if n.Text != "" {
		b.WriteString(html.EscapeString(n.Text))
	}
	for _, child := range n.Children {
		child.writeTo(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

func inlineStyle(style map[string]string) string {
	keys := make([]string, 0, len(style))
	for key := range style {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(key)
		b.WriteByte(':')
		b.WriteString(style[key])
	}
	return b.String()
}

// Document wraps a render tree into a standalone HTML page.
func Document(title string, tree *Node) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head>")
	b.WriteString(`<meta charset="utf-8"/>`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
	b.WriteString("<title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>")
	b.WriteString("<style>body{margin:0;padding:0}a{color:inherit}</style>")
	b.WriteString("</head><body>")
	if tree != nil {
		tree.writeTo(&b)
	}
	b.WriteString("</body></html>")
	return b.String()
}
