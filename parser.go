package xmltree

import (
	"fmt"
	"io"
	"os"

	"github.com/tsawler/xmltree/core"
	"github.com/tsawler/xmltree/tree"
)

// Parser provides a fluent interface for parsing XML-subset input.
// Each configuration method returns a new Parser instance, making it
// safe for concurrent use and allowing method chaining.
type Parser struct {
	// Source (exactly one is used)
	filename  string
	reader    io.Reader
	input     string
	haveInput bool

	// Configuration
	options ParseOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Parser with a copy of its options.
func (p *Parser) clone() *Parser {
	return &Parser{
		filename:  p.filename,
		reader:    p.reader,
		input:     p.input,
		haveInput: p.haveInput,
		options:   p.options.clone(),
		err:       p.err,
	}
}

// ============================================================================
// Configuration Methods (return new Parser instance)
// ============================================================================

// SelfClosingTags enables the self-closing tag extension: a trailing
// `/` in a non-closing tag (`<br/>`) produces an element with no
// children. By default the `/` is treated as an ordinary character.
//
// Example:
//
//	doc, _, err := xmltree.FromString(`<a><br/></a>`).SelfClosingTags().Document()
func (p *Parser) SelfClosingTags() *Parser {
	np := p.clone()
	np.options.selfClosingTags = true
	return np
}

// ExpandAttrEntities enables expansion of the five named entities
// inside quoted attribute values. By default values are verbatim.
//
// Example:
//
//	doc, _, err := xmltree.FromString(`<a t="5 &lt; 6"></a>`).ExpandAttrEntities().Document()
func (p *Parser) ExpandAttrEntities() *Parser {
	np := p.clone()
	np.options.expandAttrEntities = true
	return np
}

// Encoding overrides input-encoding autodetection with an explicit
// label (e.g. "iso-8859-1"). It has no effect on FromString input.
//
// Example:
//
//	doc, _, err := xmltree.Open("legacy.xml").Encoding("windows-1252").Document()
func (p *Parser) Encoding(label string) *Parser {
	np := p.clone()
	np.options.encoding = label
	return np
}

// ============================================================================
// Terminal Operations (execute parsing and return results)
// ============================================================================

// Tokens runs the tokenizer only and returns the token stream. This is
// the first pipeline stage; Document composes it with tree building.
func (p *Parser) Tokens() ([]core.Token, []Warning, error) {
	input, err := p.load()
	if err != nil {
		return nil, nil, err
	}
	return core.TokenizeWithOptions(input, p.options.coreOptions())
}

// Document parses the input and returns its document tree.
//
// Returns the document, any warnings encountered during tokenization,
// and an error if parsing failed. Warnings indicate non-fatal issues
// (unknown entities) where parsing succeeded but content may be
// imperfect.
//
// Example:
//
//	doc, warnings, err := xmltree.Open("feed.xml").Document()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", xmltree.FormatWarnings(warnings))
//	}
func (p *Parser) Document() (*tree.Document, []Warning, error) {
	tokens, warnings, err := p.Tokens()
	if err != nil {
		return nil, warnings, err
	}
	doc, err := tree.Build(tokens)
	if err != nil {
		return nil, warnings, err
	}
	return doc, warnings, nil
}

// Text parses the input and returns the document's concatenated
// character data in document order.
func (p *Parser) Text() (string, []Warning, error) {
	doc, warnings, err := p.Document()
	if err != nil {
		return "", warnings, err
	}
	return doc.Text(), warnings, nil
}

// load resolves the configured source to a decoded UTF-8 string.
func (p *Parser) load() (string, error) {
	if p.err != nil {
		return "", p.err
	}
	if p.haveInput {
		return p.input, nil
	}
	if p.reader != nil {
		return decodeInput(p.reader, p.options.encoding)
	}
	if p.filename == "" {
		return "", fmt.Errorf("no input specified")
	}
	f, err := os.Open(p.filename)
	if err != nil {
		return "", fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()
	return decodeInput(f, p.options.encoding)
}
