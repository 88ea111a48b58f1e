package tree

import (
	"strings"

	"github.com/tsawler/xmltree/core"
)

// NodeType represents the type of tree node
type NodeType int

const (
	NodeText NodeType = iota
	NodeElement
)

func (nt NodeType) String() string {
	switch nt {
	case NodeText:
		return "Text"
	case NodeElement:
		return "Element"
	default:
		return "Unknown"
	}
}

// Node is the interface for all document content.
type Node interface {
	Type() NodeType
}

// Text represents a run of character data between tags, after entity
// expansion.
type Text struct {
	Content string
}

func (t *Text) Type() NodeType { return NodeText }

// Element represents a named node with ordered attributes and children.
// Children are the nodes bracketed between the element's opening tag
// and its matching closing tag.
type Element struct {
	Name     string
	Attrs    []core.Attr
	Children []Node
}

func (e *Element) Type() NodeType { return NodeElement }

// Attr returns the value of the first attribute with the given name.
// The second return is false if no such attribute exists; a present
// boolean-style attribute yields ("", true).
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns the first descendant element with the given name,
// depth-first in document order, or nil if none exists.
func (e *Element) Find(name string) *Element {
	for _, child := range e.Children {
		el, ok := child.(*Element)
		if !ok {
			continue
		}
		if el.Name == name {
			return el
		}
		if found := el.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Text returns the concatenated character data of the element's
// subtree in document order.
func (e *Element) Text() string {
	var b strings.Builder
	collectText(&b, e.Children)
	return b.String()
}

func collectText(b *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *Text:
			b.WriteString(v.Content)
		case *Element:
			collectText(b, v.Children)
		}
	}
}
