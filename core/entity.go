package core

import (
	"fmt"
	"strings"
	"unicode"
)

// entities maps the recognized entity names to their expansions.
var entities = map[string]string{
	"lt":   "<",
	"gt":   ">",
	"amp":  "&",
	"apos": "'",
	"quot": "\"",
}

// expandEntities scans text left-to-right expanding named entities.
// An `&` begins a name capture terminated by `;` (consumed) or by a
// whitespace rune (appended to the output after the expansion).
// Unrecognized names are preserved verbatim as `&name;` and reported
// as warnings. A capture still open at end of input is emitted
// verbatim without a closing `;`.
//
// line and col position any warnings produced.
func expandEntities(text string, line, col int) (string, []Warning) {
	var out strings.Builder
	var warns []Warning
	var name strings.Builder
	inEntity := false

	for _, r := range text {
		if inEntity {
			if r == ';' || unicode.IsSpace(r) {
				warns = appendEntity(&out, name.String(), warns, line, col)
				if unicode.IsSpace(r) {
					out.WriteRune(r)
				}
				inEntity = false
				name.Reset()
			} else {
				name.WriteRune(r)
			}
			continue
		}
		if r == '&' {
			inEntity = true
		} else {
			out.WriteRune(r)
		}
	}

	if inEntity {
		out.WriteByte('&')
		out.WriteString(name.String())
		warns = append(warns, Warning{
			Message: fmt.Sprintf("unterminated entity `&%s`", name.String()),
			Line:    line,
			Col:     col,
		})
	}

	return out.String(), warns
}

// appendEntity writes the expansion of one completed capture, falling
// back to the verbatim `&name;` spelling for unknown names.
func appendEntity(out *strings.Builder, name string, warns []Warning, line, col int) []Warning {
	if expansion, ok := entities[name]; ok {
		out.WriteString(expansion)
		return warns
	}
	out.WriteByte('&')
	out.WriteString(name)
	out.WriteByte(';')
	return append(warns, Warning{
		Message: fmt.Sprintf("unknown text entity `&%s;`", name),
		Line:    line,
		Col:     col,
	})
}
