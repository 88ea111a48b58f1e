package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestParseErrorRendering(t *testing.T) {
	err := New(TreeMismatchedClose, "Mismatched closing tag `</a>`. Does not match `<b>`")
	if got := err.Error(); !strings.Contains(got, string(TreeMismatchedClose)) {
		t.Errorf("Error() = %q, want kind included", got)
	}

	positioned := err.At(3, 14)
	if got := positioned.Error(); !strings.Contains(got, "line 3, column 14") {
		t.Errorf("Error() = %q, want position included", got)
	}
	if err.Line != 0 {
		t.Error("At must not mutate the receiver")
	}
}

func TestNewf(t *testing.T) {
	err := Newf(TreeUnexpectedEOF, "Unexpected end of file. Expected closing tag `</%s>`", "item")
	if !strings.Contains(err.Message, "</item>") {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestKindOf(t *testing.T) {
	err := New(AttrExpectedQuote, "Unexpected `x`. Expected `'` or `\"`")

	if got := KindOf(err); got != AttrExpectedQuote {
		t.Errorf("KindOf = %q, want %q", got, AttrExpectedQuote)
	}
	if got := KindOf(fmt.Errorf("parsing: %w", err)); got != AttrExpectedQuote {
		t.Errorf("KindOf through wrapping = %q, want %q", got, AttrExpectedQuote)
	}
	if got := KindOf(fmt.Errorf("plain")); got != "" {
		t.Errorf("KindOf on foreign error = %q, want empty", got)
	}
	if got := KindOf(nil); got != "" {
		t.Errorf("KindOf(nil) = %q, want empty", got)
	}
}

func TestIsKind(t *testing.T) {
	err := New(LexUnexpectedChar, "Unexpected `<`").At(1, 2)
	if !IsKind(err, LexUnexpectedChar) {
		t.Error("IsKind should match")
	}
	if IsKind(err, LexUnterminatedTag) {
		t.Error("IsKind should not match a different kind")
	}
}

func TestNilError(t *testing.T) {
	var pe *ParseError
	if got := pe.Error(); got != "parse error <nil>" {
		t.Errorf("nil Error() = %q", got)
	}
}
