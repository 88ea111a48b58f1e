package core

import (
	"strings"
	"unicode/utf8"

	xmlerrors "github.com/tsawler/xmltree/errors"
)

const (
	commentOpen  = "<!--"
	commentClose = "-->"
)

// Options control the optional extensions applied during tokenization.
// The zero value replicates the base subset exactly.
type Options struct {
	// SelfClosingTags treats a trailing `/` in a non-closing tag as a
	// self-closing marker (`<br/>`) instead of part of the name or
	// final attribute.
	SelfClosingTags bool

	// ExpandAttrEntities applies the five named entities inside quoted
	// attribute values. By default values are taken verbatim.
	ExpandAttrEntities bool
}

// Lexer performs a single left-to-right pass over the input, splitting
// it into text and tag tokens. It is driven by three pieces of state:
// an accumulator holding the current token's characters, a flag for
// whether the accumulator is a tag interior, and a flag for comment
// suppression.
type Lexer struct {
	input string
	pos   int // byte offset of the next rune
	line  int // 1-based line of the next rune
	col   int // 1-based column of the next rune
	opts  Options

	tokens   []Token
	warnings []Warning

	acc       strings.Builder
	inTag     bool
	inComment bool

	tagLine, tagCol   int // position of the opening `<`
	textLine, textCol int // position of the first accumulated text rune
}

// NewLexer creates a lexer over the given input with the given options.
func NewLexer(input string, opts Options) *Lexer {
	return &Lexer{input: input, line: 1, col: 1, opts: opts}
}

// Tokenize scans input and returns its token stream along with any
// advisory warnings. The error, if non-nil, is a *xmlerrors.ParseError
// describing the first structural problem; no tokens are returned in
// that case.
func Tokenize(input string) ([]Token, []Warning, error) {
	return TokenizeWithOptions(input, Options{})
}

// TokenizeWithOptions is Tokenize with the extensions in opts enabled.
func TokenizeWithOptions(input string, opts Options) ([]Token, []Warning, error) {
	l := NewLexer(input, opts)
	if err := l.run(); err != nil {
		return nil, l.warnings, err
	}
	return l.tokens, l.warnings, nil
}

func (l *Lexer) run() error {
	for l.pos < len(l.input) {
		rest := l.input[l.pos:]

		// Comment delimiters take precedence over all other handling.
		// The full opener is consumed on entry so that `<!-->` does not
		// terminate on its own dashes.
		if !l.inComment && strings.HasPrefix(rest, commentOpen) {
			l.inComment = true
			l.skip(len(commentOpen))
			continue
		}
		if l.inComment {
			if strings.HasPrefix(rest, commentClose) {
				l.inComment = false
				l.skip(len(commentClose))
				continue
			}
			l.advance()
			continue
		}

		r, _ := utf8.DecodeRuneInString(rest)
		switch r {
		case '<':
			if l.inTag {
				return xmlerrors.New(xmlerrors.LexUnexpectedChar, "Unexpected `<`").At(l.line, l.col)
			}
			l.flushText()
			l.inTag = true
			l.tagLine, l.tagCol = l.line, l.col
			l.advance()
		case '>':
			if !l.inTag {
				return xmlerrors.New(xmlerrors.LexUnexpectedChar, "Unexpected `>`").At(l.line, l.col)
			}
			l.inTag = false
			if l.acc.Len() > 0 {
				if err := l.flushTag(); err != nil {
					return err
				}
			}
			l.advance()
		default:
			if !l.inTag && l.acc.Len() == 0 {
				l.textLine, l.textCol = l.line, l.col
			}
			l.acc.WriteRune(r)
			l.advance()
		}
	}

	if l.inTag {
		if l.acc.Len() > 0 {
			return xmlerrors.New(xmlerrors.LexUnterminatedTag, "Unexpected end of file. Expected `>`").At(l.tagLine, l.tagCol)
		}
		return nil
	}
	l.flushText()
	return nil
}

// flushText emits the accumulator as a text token if it holds any
// non-whitespace content; whitespace-only runs between tags are
// dropped. The emitted text is the untrimmed accumulator content after
// entity expansion.
func (l *Lexer) flushText() {
	raw := l.acc.String()
	l.acc.Reset()
	if strings.TrimSpace(raw) == "" {
		return
	}
	expanded, warns := expandEntities(raw, l.textLine, l.textCol)
	l.warnings = append(l.warnings, warns...)
	l.tokens = append(l.tokens, Token{
		Type: TokenText,
		Text: expanded,
		Line: l.textLine,
		Col:  l.textCol,
	})
}

// flushTag hands the accumulator to the tag-interior parser and emits
// the resulting tag token. Errors are positioned at the opening `<`.
func (l *Lexer) flushTag() error {
	interior := l.acc.String()
	l.acc.Reset()
	tag, warns, err := parseTag(interior, l.opts)
	if err != nil {
		return err.At(l.tagLine, l.tagCol)
	}
	for _, w := range warns {
		w.Line, w.Col = l.tagLine, l.tagCol
		l.warnings = append(l.warnings, w)
	}
	l.tokens = append(l.tokens, Token{
		Type: TokenTag,
		Tag:  tag,
		Line: l.tagLine,
		Col:  l.tagCol,
	})
	return nil
}

// advance consumes one rune, updating line and column tracking.
func (l *Lexer) advance() {
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

// skip consumes n bytes of ASCII delimiter text.
func (l *Lexer) skip(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}
