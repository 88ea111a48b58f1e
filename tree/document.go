package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/xmltree/core"
)

// Document is the root container returned by a successful build.
// Prolog holds the attributes of a leading `<?xml ...?>` tag;
// HasProlog distinguishes an absent prolog from one with no
// attributes.
type Document struct {
	Prolog    []core.Attr
	HasProlog bool
	Children  []Node
}

// Root returns the document's single top-level element, or nil if the
// document contains none.
func (d *Document) Root() *Element {
	for _, n := range d.Children {
		if el, ok := n.(*Element); ok {
			return el
		}
	}
	return nil
}

// Text returns the concatenated character data of the whole document
// in document order.
func (d *Document) Text() string {
	var b strings.Builder
	collectText(&b, d.Children)
	return b.String()
}

// Dump writes an indented human-readable rendering of the document to
// w, one node per line.
func Dump(w io.Writer, d *Document) error {
	if _, err := fmt.Fprintln(w, "Document"); err != nil {
		return err
	}
	if d.HasProlog {
		if _, err := fmt.Fprintf(w, "  Prolog:%s\n", formatAttrs(d.Prolog)); err != nil {
			return err
		}
	}
	return dumpNodes(w, d.Children, 1)
}

func dumpNodes(w io.Writer, nodes []Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		switch v := n.(type) {
		case *Text:
			if _, err := fmt.Fprintf(w, "%sText: %q\n", indent, v.Content); err != nil {
				return err
			}
		case *Element:
			if _, err := fmt.Fprintf(w, "%sElement: %s%s\n", indent, v.Name, formatAttrs(v.Attrs)); err != nil {
				return err
			}
			if err := dumpNodes(w, v.Children, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatAttrs(attrs []core.Attr) string {
	var b strings.Builder
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	return b.String()
}
