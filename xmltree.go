// Package xmltree provides a fluent API for parsing an XML subset
// into an in-memory document tree.
//
// The subset covers elements with attributes, character data with the
// five named entities, comments, and a single optional `<?xml ...?>`
// prolog. It does not attempt full XML 1.0 conformance; see the core
// package documentation for the exact rules.
//
// Basic usage:
//
//	doc, warnings, err := xmltree.Open("config.xml").Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", xmltree.FormatWarnings(warnings))
//	}
//	root := doc.Root()
//
// With options:
//
//	doc, _, err := xmltree.FromString(`<list><item/></list>`).
//	    SelfClosingTags().
//	    Document()
//
// For the individual pipeline stages, the lower-level core and tree
// packages are also available:
//
//	tokens, warnings, err := core.Tokenize(input)
//	doc, err := tree.Build(tokens)
package xmltree

import (
	"io"
	"strings"

	"github.com/tsawler/xmltree/core"
	"github.com/tsawler/xmltree/tree"
)

// Warning is a non-fatal diagnostic produced during parsing, such as
// an unrecognized entity.
type Warning = core.Warning

// Open creates a Parser reading from the named file. The file is read
// when a terminal operation runs; gzip-compressed input is inflated
// and declared encodings are honored (see Encoding).
//
// Example:
//
//	doc, warnings, err := xmltree.Open("feed.xml").Document()
func Open(filename string) *Parser {
	return &Parser{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates a Parser reading from r. The reader is drained by
// the first terminal operation; input decoding behaves as for Open.
func FromReader(r io.Reader) *Parser {
	return &Parser{
		reader:  r,
		options: defaultOptions(),
	}
}

// FromString creates a Parser over input, which is taken as already
// decoded UTF-8 and bypasses the input-decoding layer.
func FromString(input string) *Parser {
	return &Parser{
		input:     input,
		haveInput: true,
		options:   defaultOptions(),
	}
}

// Parse tokenizes input and builds its document tree in one call. It
// is shorthand for FromString(input).Document().
func Parse(input string) (*tree.Document, []Warning, error) {
	return FromString(input).Document()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustDocument wraps a call to Document() or Tokens() and panics if
// the error is non-nil, discarding warnings.
//
// Example:
//
//	doc := xmltree.MustDocument(xmltree.Parse(`<r></r>`))
func MustDocument[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// FormatWarnings renders warnings one per line for display.
func FormatWarnings(warnings []Warning) string {
	var b strings.Builder
	for i, w := range warnings {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(w.String())
	}
	return b.String()
}
