// Package core provides low-level tokenization of the XML subset
// understood by xmltree.
//
// The tokenizer converts a character sequence into an ordered stream
// of tokens: runs of character data (with named entities expanded) and
// tags (with name, closing flag, and ordered attributes). Comments
// (`<!-- ... -->`) are suppressed entirely and never reach the token
// stream.
//
// # Tokens
//
//   - [Token] - one element of the stream, either text or a tag
//   - [Tag] - a parsed tag interior: closing flag, name, attributes
//   - [Attr] - a single attribute; boolean-style attributes carry no value
//
// # Tokenization
//
// [Tokenize] scans the whole input and returns the token stream along
// with any advisory warnings (currently only entity anomalies):
//
//	tokens, warnings, err := core.Tokenize(`<greeting kind="warm">hi</greeting>`)
//
// [TokenizeWithOptions] additionally enables the optional extensions
// in [Options]: self-closing tags (`<br/>`) and entity expansion
// inside quoted attribute values.
//
// # Entities
//
// Only the five named entities are recognized: &lt; &gt; &amp; &apos;
// and &quot;. Unrecognized entities are preserved verbatim and
// reported as warnings; they never fail the parse. Numeric character
// references are not part of the subset.
//
// The tokenizer performs no structural validation beyond tag/text
// segmentation; balancing and prolog placement are enforced by the
// tree package.
package core
