package tree

import (
	"strings"
	"testing"

	"github.com/tsawler/xmltree/core"
)

func TestNodeTypeString(t *testing.T) {
	tests := []struct {
		nt   NodeType
		want string
	}{
		{NodeText, "Text"},
		{NodeElement, "Element"},
		{NodeType(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.nt.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func sampleDoc(t *testing.T) *Document {
	t.Helper()
	return buildInput(t, `<book title="Go"><chapter n="1">one<section>deep</section></chapter><chapter n="2">two</chapter></book>`)
}

func TestElementAttr(t *testing.T) {
	book := sampleDoc(t).Root()

	if v, ok := book.Attr("title"); !ok || v != "Go" {
		t.Errorf(`Attr("title") = %q, %v`, v, ok)
	}
	if _, ok := book.Attr("missing"); ok {
		t.Error("Attr should report absence")
	}

	flag := buildInput(t, "<t disabled></t>").Root()
	if v, ok := flag.Attr("disabled"); !ok || v != "" {
		t.Errorf(`boolean Attr = %q, %v; want "", true`, v, ok)
	}
}

func TestElementFind(t *testing.T) {
	book := sampleDoc(t).Root()

	ch := book.Find("chapter")
	if ch == nil {
		t.Fatal("Find(chapter) returned nil")
	}
	if n, _ := ch.Attr("n"); n != "1" {
		t.Errorf("Find returned chapter %q, want first in document order", n)
	}
	if sec := book.Find("section"); sec == nil {
		t.Error("Find should descend depth-first")
	}
	if book.Find("nope") != nil {
		t.Error("Find(nope) should be nil")
	}
}

func TestElementText(t *testing.T) {
	book := sampleDoc(t).Root()
	if got := book.Text(); got != "onedeeptwo" {
		t.Errorf("Text() = %q, want %q", got, "onedeeptwo")
	}
}

func TestDocumentText(t *testing.T) {
	doc := buildInput(t, "<r>a<b>c</b>d</r>")
	if got := doc.Text(); got != "acd" {
		t.Errorf("Text() = %q, want %q", got, "acd")
	}
}

func TestDump(t *testing.T) {
	doc := buildInput(t, `<?xml version="1.0"?><r><c k="v">hi</c></r>`)

	var b strings.Builder
	if err := Dump(&b, doc); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	got := b.String()
	want := "Document\n" +
		"  Prolog: version=\"1.0\"\n" +
		"  Element: r\n" +
		"    Element: c k=\"v\"\n" +
		"      Text: \"hi\"\n"
	if got != want {
		t.Errorf("Dump output:\n%s\nwant:\n%s", got, want)
	}
}

func TestDumpBooleanAttr(t *testing.T) {
	doc := buildInput(t, "<t disabled></t>")
	var b strings.Builder
	if err := Dump(&b, doc); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if !strings.Contains(b.String(), "Element: t disabled") {
		t.Errorf("Dump output missing boolean attribute: %q", b.String())
	}
}

func TestRootSkipsText(t *testing.T) {
	doc := &Document{Children: []Node{
		&Text{Content: "lead"},
		&Element{Name: "e", Attrs: []core.Attr{{Name: "k", Value: "v", HasValue: true}}},
	}}
	if r := doc.Root(); r == nil || r.Name != "e" {
		t.Errorf("Root() = %+v, want element e", doc.Root())
	}
}
