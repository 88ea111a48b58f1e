// Package errors provides structured parse diagnostics for xmltree.
//
// Every failure produced by the tokenizer, the tag-interior parser, or
// the tree builder is a [*ParseError] carrying a machine-matchable
// [Kind], a human-readable message, and an optional line/column
// position. Callers should branch on the kind (via [KindOf] or
// [IsKind]) rather than on the rendered message, which may drift.
package errors

import (
	"errors"
	"fmt"
)

// Kind identifies a class of parse failure.
type Kind string

const (
	// LexUnexpectedChar indicates a `<` inside a tag or a `>` outside one.
	LexUnexpectedChar Kind = "lex-unexpected-char"
	// LexUnterminatedTag indicates end of input while inside a tag.
	LexUnterminatedTag Kind = "lex-unterminated-tag"
	// TagMalformed indicates leading whitespace in a tag interior,
	// before or after the closing slash.
	TagMalformed Kind = "tag-malformed"
	// AttrExpectedKey indicates a `=` where an attribute key was expected.
	AttrExpectedKey Kind = "attr-expected-key"
	// AttrExpectedQuote indicates a non-quote character (or end of tag)
	// where an attribute value's opening quote was expected.
	AttrExpectedQuote Kind = "attr-expected-quote"
	// AttrUnterminatedValue indicates end of tag inside a quoted value.
	AttrUnterminatedValue Kind = "attr-unterminated-value"
	// TreePrologOutOfPlace indicates a `?xml` tag after the first token.
	TreePrologOutOfPlace Kind = "tree-prolog-out-of-place"
	// TreeMismatchedClose indicates a closing tag whose name does not
	// match the open element.
	TreeMismatchedClose Kind = "tree-mismatched-close"
	// TreeUnexpectedClose indicates a closing tag at the top level.
	TreeUnexpectedClose Kind = "tree-unexpected-close"
	// TreeMultipleRoots indicates a second top-level node before an
	// opening tag.
	TreeMultipleRoots Kind = "tree-multiple-roots"
	// TreeUnexpectedEOF indicates an element left unclosed at end of input.
	TreeUnexpectedEOF Kind = "tree-unexpected-eof"
)

// ParseError describes a single fatal parse failure. Line and Col are
// 1-based; zero values mean the position is unknown.
type ParseError struct {
	Kind    Kind
	Message string
	Line    int
	Col     int
}

// Error renders the kind, message, and position for display.
func (e *ParseError) Error() string {
	if e == nil {
		return "parse error <nil>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("[%s] %s at line %d, column %d", e.Kind, e.Message, e.Line, e.Col)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// New builds a ParseError with a kind and message.
func New(kind Kind, msg string) *ParseError {
	return &ParseError{Kind: kind, Message: msg}
}

// Newf formats a message and builds a ParseError.
func Newf(kind Kind, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// At returns a copy of the error annotated with a 1-based position.
func (e *ParseError) At(line, col int) *ParseError {
	cp := *e
	cp.Line = line
	cp.Col = col
	return &cp
}

// KindOf extracts the Kind from an error returned by any xmltree
// stage. It returns the empty Kind if err is not a ParseError.
func KindOf(err error) Kind {
	var pe *ParseError
	if errors.As(err, &pe) && pe != nil {
		return pe.Kind
	}
	return ""
}

// IsKind reports whether err is a ParseError of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
