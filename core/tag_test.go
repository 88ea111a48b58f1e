package core

import (
	"reflect"
	"strings"
	"testing"

	xmlerrors "github.com/tsawler/xmltree/errors"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		name     string
		interior string
		closing  bool
		tagName  string
		attrs    []Attr
	}{
		{"bare name", "root", false, "root", nil},
		{"closing", "/root", true, "root", nil},
		{"single valued attribute", `c k="v"`, false, "c", []Attr{{Name: "k", Value: "v", HasValue: true}}},
		{"single quoted value", `c k='v'`, false, "c", []Attr{{Name: "k", Value: "v", HasValue: true}}},
		{"boolean attribute", "t disabled", false, "t", []Attr{{Name: "disabled"}}},
		{"boolean then valued", `t disabled k="v"`, false, "t", []Attr{{Name: "disabled"}, {Name: "k", Value: "v", HasValue: true}}},
		{"spaces around equals", `t k = "v"`, false, "t", []Attr{{Name: "k", Value: "v", HasValue: true}}},
		{"other quote inside value", `t k="it's"`, false, "t", []Attr{{Name: "k", Value: "it's", HasValue: true}}},
		{"equals inside value", `t k="a=b"`, false, "t", []Attr{{Name: "k", Value: "a=b", HasValue: true}}},
		{"empty value", `t k=""`, false, "t", []Attr{{Name: "k", Value: "", HasValue: true}}},
		{"multiple valued", `t a="1" b="2"`, false, "t", []Attr{{Name: "a", Value: "1", HasValue: true}, {Name: "b", Value: "2", HasValue: true}}},
		{"closing with attributes kept", `/t k="v"`, true, "t", []Attr{{Name: "k", Value: "v", HasValue: true}}},
		{"prolog shape", `?xml version="1.0"?`, false, "?xml", []Attr{{Name: "version", Value: "1.0", HasValue: true}}},
		{"prolog shape no attrs", "?xml?", false, "?xml", nil},
		{"trailing slash joins attribute", `t k="v"/`, false, "t", []Attr{{Name: "k", Value: "v", HasValue: true}, {Name: "/"}}},
		{"trailing slash joins name", "br/", false, "br/", nil},
		{"trailing boolean after valued", `t k="v" flag`, false, "t", []Attr{{Name: "k", Value: "v", HasValue: true}, {Name: "flag"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, _, err := parseTag(tt.interior, Options{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tag.Closing != tt.closing {
				t.Errorf("Closing = %v, want %v", tag.Closing, tt.closing)
			}
			if tag.Name != tt.tagName {
				t.Errorf("Name = %q, want %q", tag.Name, tt.tagName)
			}
			if !reflect.DeepEqual(tag.Attrs, tt.attrs) {
				t.Errorf("Attrs = %v, want %v", tag.Attrs, tt.attrs)
			}
		})
	}
}

func TestParseTagErrors(t *testing.T) {
	tests := []struct {
		name     string
		interior string
		kind     xmlerrors.Kind
	}{
		{"leading whitespace", " a", xmlerrors.TagMalformed},
		{"leading newline", "\na", xmlerrors.TagMalformed},
		{"whitespace after slash", "/ a", xmlerrors.TagMalformed},
		{"equals before key", "a =", xmlerrors.AttrExpectedKey},
		{"bare equals run", "a = =", xmlerrors.AttrExpectedKey},
		{"unquoted value", "a k=v", xmlerrors.AttrExpectedQuote},
		{"eof after equals", "a k=", xmlerrors.AttrExpectedQuote},
		{"eof after equals and space", "a k= ", xmlerrors.AttrExpectedQuote},
		{"unterminated value", `a k="v`, xmlerrors.AttrUnterminatedValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseTag(tt.interior, Options{})
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Kind != tt.kind {
				t.Errorf("kind = %q, want %q", err.Kind, tt.kind)
			}
		})
	}
}

func TestParseTagErrorAfterEqualsFollowingSpace(t *testing.T) {
	// `k =` reaches SeekQuote despite the whitespace before `=`; the
	// pending key is not emitted as a boolean attribute.
	tag, _, err := parseTag(`t k = "v"`, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Attr{{Name: "k", Value: "v", HasValue: true}}
	if !reflect.DeepEqual(tag.Attrs, want) {
		t.Errorf("Attrs = %v, want %v", tag.Attrs, want)
	}
}

func TestParseTagSelfClosing(t *testing.T) {
	tests := []struct {
		name        string
		interior    string
		opts        Options
		selfClosing bool
		tagName     string
		attrs       []Attr
	}{
		{"disabled by default", "br/", Options{}, false, "br/", nil},
		{"bare", "br/", Options{SelfClosingTags: true}, true, "br", nil},
		{"with space", "br /", Options{SelfClosingTags: true}, true, "br", nil},
		{"with attributes", `img src="x"/`, Options{SelfClosingTags: true}, true, "img", []Attr{{Name: "src", Value: "x", HasValue: true}}},
		{"closing tag unaffected", "/br", Options{SelfClosingTags: true}, false, "br", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, _, err := parseTag(tt.interior, tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tag.SelfClosing != tt.selfClosing {
				t.Errorf("SelfClosing = %v, want %v", tag.SelfClosing, tt.selfClosing)
			}
			if tag.Name != tt.tagName {
				t.Errorf("Name = %q, want %q", tag.Name, tt.tagName)
			}
			if !reflect.DeepEqual(tag.Attrs, tt.attrs) {
				t.Errorf("Attrs = %v, want %v", tag.Attrs, tt.attrs)
			}
		})
	}
}

func TestParseTagAttrEntityExpansion(t *testing.T) {
	opts := Options{ExpandAttrEntities: true}

	tag, warns, err := parseTag(`t msg="5 &lt; 6 &amp; 7"`, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tag.Attrs[0].Value; got != "5 < 6 & 7" {
		t.Errorf("value = %q, want expanded", got)
	}
	if len(warns) != 0 {
		t.Errorf("unexpected warnings: %v", warns)
	}

	// Default: verbatim.
	tag, _, err = parseTag(`t msg="5 &lt; 6"`, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tag.Attrs[0].Value; got != "5 &lt; 6" {
		t.Errorf("value = %q, want verbatim", got)
	}

	// Unknown entities inside values warn but survive.
	tag, warns, err = parseTag(`t msg="&nope;"`, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tag.Attrs[0].Value; got != "&nope;" {
		t.Errorf("value = %q, want verbatim unknown entity", got)
	}
	if len(warns) != 1 {
		t.Errorf("warnings = %v, want exactly one", warns)
	}
}

// Attribute order in the result always matches source order.
func TestAttrOrderPreserved(t *testing.T) {
	interior := `t z="26" a="1" m flag q="17"`
	tag, _, err := parseTag(interior, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"z", "a", "m", "flag", "q"}
	if len(tag.Attrs) != len(want) {
		t.Fatalf("got %d attrs, want %d", len(tag.Attrs), len(want))
	}
	for i, name := range want {
		if tag.Attrs[i].Name != name {
			t.Errorf("attr %d = %q, want %q", i, tag.Attrs[i].Name, name)
		}
	}
}

func TestTagString(t *testing.T) {
	tests := []struct {
		tag  Tag
		want string
	}{
		{Tag{Name: "a"}, "<a>"},
		{Tag{Name: "a", Closing: true}, "</a>"},
		{Tag{Name: "a", Attrs: []Attr{{Name: "k", Value: "v", HasValue: true}, {Name: "f"}}}, `<a k="v" f>`},
		{Tag{Name: "br", SelfClosing: true}, "<br/>"},
	}
	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Message: "unknown text entity `&x;`", Line: 3, Col: 7}
	if got := w.String(); !strings.Contains(got, "line 3") {
		t.Errorf("String() = %q, want position included", got)
	}
	w = Warning{Message: "no position"}
	if got := w.String(); got != "no position" {
		t.Errorf("String() = %q", got)
	}
}
