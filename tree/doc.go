// Package tree provides the document tree produced from a token
// stream, along with the builder that enforces the structural rules.
//
// # Structure
//
// A successful build yields a [Document]: an optional prolog attribute
// list (from a leading `<?xml ...?>` tag) and the ordered top-level
// nodes. All content implements the [Node] interface; the concrete
// types are:
//
//   - [Text] - a run of character data
//   - [Element] - a named, attributed node with ordered children
//
// # Building
//
// [Build] consumes the token stream from the core package:
//
//	tokens, _, err := core.Tokenize(input)
//	if err != nil {
//	    // handle error
//	}
//	doc, err := tree.Build(tokens)
//
// The builder validates tag balance (every element's children are
// bracketed by its opening tag and a matching closing tag), permits at
// most one top-level element, and requires the prolog, if any, to be
// the first token. It halts at the first violation; partial trees are
// never returned.
package tree
