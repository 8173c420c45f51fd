// Package dom provides a minimal typed document tree for the XML parts
// of a presentation package. Element and text nodes are explicit, child
// order is preserved, and attribute lookup is by local name so callers
// never deal with namespace prefixes.
package dom

import (
	"encoding/xml"
	"io"
	"strings"
)

// Kind identifies the node variant.
type Kind int

const (
	// ElementNode is a named element with attributes and children.
	ElementNode Kind = iota
	// TextNode is character data inside an element.
	TextNode
)

// Attr is a single attribute in declaration order.
type Attr struct {
	Name  string
	Value string
}

// Node is one node of the parsed tree.
type Node struct {
	Kind     Kind
	Name     string // local element name, empty for text nodes
	Data     string // character data, empty for element nodes
	Attrs    []Attr
	Children []*Node
}

// Parse builds a tree from the XML in r. Parsing is best-effort: on a
// decoder error the tree built so far is returned, and input with no
// root element yields nil. Callers must treat a nil or partial tree as
// "nothing found", never as a failure.
func Parse(r io.Reader) *Node {
	dec := xml.NewDecoder(r)

	var root *Node
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err != nil {
			break // io.EOF or malformed input; keep what we have
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{
				Kind:  ElementNode,
				Name:  t.Name.Local,
				Attrs: attrsOf(t),
			}
			if len(stack) == 0 {
				if root == nil {
					root = n
				}
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, &Node{
				Kind: TextNode,
				Data: string(t),
			})
		}
	}

	return root
}

// ParseString is Parse over an in-memory document.
func ParseString(s string) *Node {
	return Parse(strings.NewReader(s))
}

// attrsOf converts the decoder's attributes, dropping namespace
// declarations and keeping local names only.
func attrsOf(el xml.StartElement) []Attr {
	if len(el.Attr) == 0 {
		return nil
	}
	attrs := make([]Attr, 0, len(el.Attr))
	for _, a := range el.Attr {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		attrs = append(attrs, Attr{Name: a.Name.Local, Value: a.Value})
	}
	return attrs
}

// Attr looks up an attribute by local name. The second return reports
// whether the attribute is present.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil || n.Kind != ElementNode {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first direct child element with the given local
// name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Kind == ElementNode && c.Name == name {
			return c
		}
	}
	return nil
}

// ChildElements returns the direct child elements with the given local
// name, in document order.
func (n *Node) ChildElements(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == ElementNode && c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Elements returns all descendant elements with the given local name,
// in document order. The receiver itself is not included.
func (n *Node) Elements(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, c := range cur.Children {
			if c.Kind != ElementNode {
				continue
			}
			if c.Name == name {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// First returns the first descendant element with the given local
// name, or nil.
func (n *Node) First(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Kind == ElementNode {
			if c.Name == name {
				return c
			}
			if found := c.First(name); found != nil {
				return found
			}
		}
	}
	return nil
}

// Text returns the concatenated character data of the node and all of
// its descendants, in document order.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	if n.Kind == TextNode {
		return n.Data
	}
	var b strings.Builder
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, c := range cur.Children {
			if c.Kind == TextNode {
				b.WriteString(c.Data)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
