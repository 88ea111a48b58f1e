package xmltree

import "github.com/tsawler/xmltree/core"

// ParseOptions holds configuration for parsing.
type ParseOptions struct {
	// Tokenizer extensions
	selfClosingTags    bool
	expandAttrEntities bool

	// Input decoding: explicit encoding label overriding the sniffed
	// prolog declaration. Empty means autodetect.
	encoding string
}

// defaultOptions returns the default parse options: base subset only,
// autodetected encoding.
func defaultOptions() ParseOptions {
	return ParseOptions{}
}

// clone creates a copy of ParseOptions.
func (o ParseOptions) clone() ParseOptions {
	return o
}

// coreOptions maps the tokenizer-facing options onto core.Options.
func (o ParseOptions) coreOptions() core.Options {
	return core.Options{
		SelfClosingTags:    o.selfClosingTags,
		ExpandAttrEntities: o.expandAttrEntities,
	}
}
