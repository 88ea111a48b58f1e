package core

import (
	"fmt"
	"strings"
)

// TokenType represents the type of token
type TokenType int

const (
	// TokenText is a run of character data between tags, after entity
	// expansion.
	TokenText TokenType = iota
	// TokenTag is one `<...>` region parsed into a Tag.
	TokenTag
)

// String returns the string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "Text"
	case TokenTag:
		return "Tag"
	default:
		return "Unknown"
	}
}

// Attr is a single tag attribute. HasValue is false for boolean-style
// attributes (`<t disabled>`), in which case Value is empty.
type Attr struct {
	Name     string
	Value    string
	HasValue bool
}

// String returns the attribute in source form.
func (a Attr) String() string {
	if !a.HasValue {
		return a.Name
	}
	return fmt.Sprintf("%s=%q", a.Name, a.Value)
}

// Tag is the typed record for one tag region. Attribute order matches
// source order. Closing tags may still carry attributes; the tree
// builder ignores them. SelfClosing is only ever set when the
// self-closing-tags option is enabled.
type Tag struct {
	Closing     bool
	SelfClosing bool
	Name        string
	Attrs       []Attr
}

// String returns the tag in source form, e.g. `</item>` or `<a b="c">`.
func (t *Tag) String() string {
	var b strings.Builder
	b.WriteByte('<')
	if t.Closing {
		b.WriteByte('/')
	}
	b.WriteString(t.Name)
	for _, a := range t.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	if t.SelfClosing {
		b.WriteByte('/')
	}
	b.WriteByte('>')
	return b.String()
}

// Token is one element of the token stream: either character data or a
// tag. Line and Col are the 1-based position of the token start.
type Token struct {
	Type TokenType
	Text string // set when Type == TokenText
	Tag  *Tag   // set when Type == TokenTag
	Line int
	Col  int
}

// String returns a compact representation for debugging and dumps.
func (t Token) String() string {
	if t.Type == TokenTag && t.Tag != nil {
		return t.Tag.String()
	}
	return fmt.Sprintf("Text(%q)", t.Text)
}

// Warning is a non-fatal diagnostic emitted during tokenization, such
// as an unrecognized entity. Warnings never abort a parse.
type Warning struct {
	Message string
	Line    int
	Col     int
}

// String renders the warning with its position when known.
func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s (line %d, column %d)", w.Message, w.Line, w.Col)
	}
	return w.Message
}
