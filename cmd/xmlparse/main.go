// Command xmlparse parses an XML-subset document and prints its token
// stream and document tree. It is a thin harness over the xmltree
// library; all parsing behavior lives there.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/tsawler/xmltree"
	"github.com/tsawler/xmltree/tree"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xmlparse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	showTokens := fs.Bool("tokens", false, "print the token stream before the tree")
	textOnly := fs.Bool("text", false, "print the document character data instead of the tree")
	selfClosing := fs.Bool("self-closing", false, "treat a trailing / as a self-closing tag marker")
	expandAttr := fs.Bool("expand-attr-entities", false, "expand named entities inside attribute values")
	encodingLabel := fs.String("encoding", "", "override input encoding autodetection")
	fs.Usage = func() {
		fmt.Fprint(stderr, "Usage: xmlparse [options] <file.xml[.gz]>\n\nParses an XML-subset document and prints its tree.\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "error: exactly one input file argument is required")
		fs.Usage()
		return 2
	}

	errc := color.New(color.FgRed)
	warnc := color.New(color.FgYellow)

	p := xmltree.Open(fs.Arg(0))
	if *selfClosing {
		p = p.SelfClosingTags()
	}
	if *expandAttr {
		p = p.ExpandAttrEntities()
	}
	if *encodingLabel != "" {
		p = p.Encoding(*encodingLabel)
	}

	// Tokenize once; the tree is built from the same token stream.
	tokens, warnings, err := p.Tokens()
	for _, w := range warnings {
		warnc.Fprintf(stderr, "warning: %s\n", w)
	}
	if err != nil {
		errc.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if *showTokens {
		for _, tok := range tokens {
			fmt.Fprintln(stdout, tok.String())
		}
	}

	doc, err := tree.Build(tokens)
	if err != nil {
		errc.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if *textOnly {
		fmt.Fprintln(stdout, doc.Text())
		return 0
	}
	if err := tree.Dump(stdout, doc); err != nil {
		errc.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
