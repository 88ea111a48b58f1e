package core

import (
	"strings"
	"unicode"

	xmlerrors "github.com/tsawler/xmltree/errors"
)

// parseTag parses the raw interior of one `<...>` region (without the
// angle brackets) into a Tag. Returned warnings come from attribute
// value entity expansion; their positions are filled in by the caller.
func parseTag(interior string, opts Options) (*Tag, []Warning, *xmlerrors.ParseError) {
	if startsWithSpace(interior) {
		return nil, nil, xmlerrors.New(xmlerrors.TagMalformed, "Unexpected whitespace in tag")
	}

	rest := interior
	closing := strings.HasPrefix(rest, "/")
	if closing {
		rest = rest[1:]
		if startsWithSpace(rest) {
			return nil, nil, xmlerrors.New(xmlerrors.TagMalformed, "Unexpected whitespace in tag, after slash")
		}
	}

	selfClosing := false
	if opts.SelfClosingTags && !closing && strings.HasSuffix(rest, "/") {
		rest = rest[:len(rest)-1]
		selfClosing = true
	}

	// Processing-instruction shape: `<?xml ...?>` carries a trailing `?`
	// that belongs to the delimiter, not to the final attribute.
	if !closing && len(rest) > 1 && strings.HasPrefix(rest, "?") && strings.HasSuffix(rest, "?") {
		rest = rest[:len(rest)-1]
	}

	name := rest
	var attrs []Attr
	var warns []Warning
	if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
		name = rest[:i]
		var err *xmlerrors.ParseError
		attrs, warns, err = parseAttrs(rest[i:], opts)
		if err != nil {
			return nil, warns, err
		}
	}

	return &Tag{
		Closing:     closing,
		SelfClosing: selfClosing,
		Name:        name,
		Attrs:       attrs,
	}, warns, nil
}

// attrState enumerates the attribute parser's states.
type attrState int

const (
	seekKey   attrState = iota // skipping whitespace before a key
	inKey                      // accumulating a key
	seekQuote                  // after `=`, expecting an opening quote
	inValue                    // accumulating a quoted value
)

// parseAttrs runs the attribute state machine over the remainder of a
// tag interior (everything after the name). Attribute order in the
// result matches the order keys were completed in the source.
func parseAttrs(s string, opts Options) ([]Attr, []Warning, *xmlerrors.ParseError) {
	var attrs []Attr
	var warns []Warning

	state := seekKey
	var key strings.Builder
	var val strings.Builder
	sawSpace := false // inKey: whitespace seen since the key started
	var quote rune

	for _, r := range s {
		switch state {
		case seekKey:
			if unicode.IsSpace(r) {
				continue
			}
			if r == '=' {
				return nil, warns, xmlerrors.New(xmlerrors.AttrExpectedKey, "Unexpected `=`. Expected start of attribute key")
			}
			key.Reset()
			key.WriteRune(r)
			sawSpace = false
			state = inKey

		case inKey:
			if unicode.IsSpace(r) {
				sawSpace = true
				continue
			}
			if r == '=' {
				state = seekQuote
				continue
			}
			if sawSpace {
				// The pending key was a boolean-style attribute; this
				// rune starts a fresh key.
				attrs = append(attrs, Attr{Name: key.String()})
				key.Reset()
				key.WriteRune(r)
				sawSpace = false
				continue
			}
			key.WriteRune(r)

		case seekQuote:
			if unicode.IsSpace(r) {
				continue
			}
			if r != '\'' && r != '"' {
				return nil, warns, xmlerrors.Newf(xmlerrors.AttrExpectedQuote, "Unexpected `%c`. Expected `'` or `\"`", r)
			}
			quote = r
			val.Reset()
			state = inValue

		case inValue:
			if r != quote {
				val.WriteRune(r)
				continue
			}
			value := val.String()
			if opts.ExpandAttrEntities {
				var ws []Warning
				value, ws = expandEntities(value, 0, 0)
				warns = append(warns, ws...)
			}
			attrs = append(attrs, Attr{Name: key.String(), Value: value, HasValue: true})
			state = seekKey
		}
	}

	switch state {
	case inKey:
		attrs = append(attrs, Attr{Name: key.String()})
	case seekQuote:
		return nil, warns, xmlerrors.New(xmlerrors.AttrExpectedQuote, "Unexpected end of tag. Expected `'` or `\"`")
	case inValue:
		return nil, warns, xmlerrors.New(xmlerrors.AttrUnterminatedValue, "Unexpected end of tag. Expected closing quote")
	}

	return attrs, warns, nil
}

func startsWithSpace(s string) bool {
	for _, r := range s {
		return unicode.IsSpace(r)
	}
	return false
}
