package tree

import (
	"github.com/tsawler/xmltree/core"
	xmlerrors "github.com/tsawler/xmltree/errors"
)

// prologName is the literal tag name of the XML prolog.
const prologName = "?xml"

// Build consumes a token stream and produces the document tree,
// enforcing the structural rules: the prolog only as first token, tag
// balance, and at most one top-level node before any element. The
// error, if non-nil, is a *xmlerrors.ParseError.
func Build(tokens []core.Token) (*Document, error) {
	doc := &Document{}

	rest := tokens
	if len(tokens) > 0 && tokens[0].Type == core.TokenTag && tokens[0].Tag.Name == prologName {
		doc.Prolog = tokens[0].Tag.Attrs
		doc.HasProlog = true
		rest = tokens[1:]
	}

	b := &builder{tokens: rest}
	children, err := b.buildChildren(0, "")
	if err != nil {
		return nil, err
	}
	doc.Children = children
	return doc, nil
}

type builder struct {
	tokens []core.Token
	pos    int
}

func (b *builder) next() *core.Token {
	if b.pos >= len(b.tokens) {
		return nil
	}
	tok := &b.tokens[b.pos]
	b.pos++
	return tok
}

// buildChildren accumulates nodes until the closing tag matching
// expectedClose (empty at the top level) or token exhaustion.
func (b *builder) buildChildren(depth int, expectedClose string) ([]Node, error) {
	var nodes []Node

	for {
		tok := b.next()
		if tok == nil {
			break
		}

		if tok.Type == core.TokenText {
			nodes = append(nodes, &Text{Content: tok.Text})
			continue
		}

		tag := tok.Tag
		if tag.Name == prologName {
			return nil, xmlerrors.New(xmlerrors.TreePrologOutOfPlace,
				"Unexpected XML prolog. Prolog must occur at beginning of file").At(tok.Line, tok.Col)
		}

		if tag.Closing {
			if expectedClose != "" && tag.Name != expectedClose {
				return nil, xmlerrors.Newf(xmlerrors.TreeMismatchedClose,
					"Mismatched closing tag `</%s>`. Does not match `<%s>`", tag.Name, expectedClose).At(tok.Line, tok.Col)
			}
			if depth == 0 {
				return nil, xmlerrors.Newf(xmlerrors.TreeUnexpectedClose,
					"Unexpected closing tag `</%s>`. Expected end of file", tag.Name).At(tok.Line, tok.Col)
			}
			// Well-formed input puts no attributes on closing tags;
			// any that were tokenized are ignored here.
			return nodes, nil
		}

		if depth == 0 && len(nodes) > 0 {
			return nil, xmlerrors.New(xmlerrors.TreeMultipleRoots,
				"Only one root node is allowed").At(tok.Line, tok.Col)
		}

		if tag.SelfClosing {
			nodes = append(nodes, &Element{Name: tag.Name, Attrs: tag.Attrs})
			continue
		}

		children, err := b.buildChildren(depth+1, tag.Name)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, &Element{Name: tag.Name, Attrs: tag.Attrs, Children: children})
	}

	if depth > 0 {
		return nil, xmlerrors.Newf(xmlerrors.TreeUnexpectedEOF,
			"Unexpected end of file. Expected closing tag `</%s>`", expectedClose)
	}
	return nodes, nil
}
