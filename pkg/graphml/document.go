package graphml

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/beevik/etree"

	"github.com/matzehuels/yfiles2mermaid/pkg/errors"
)

// Namespace URIs used by yFiles 3.0 GraphML documents.
const (
	NamespaceGraphML = "http://graphml.graphdrawing.org/xmlns"
	NamespaceCommon  = "http://www.yworks.com/xml/yfiles-common/3.0"
	NamespaceMarkup  = "http://www.yworks.com/xml/yfiles-common/markup/3.0"
	NamespaceXAML    = "http://www.yworks.com/xml/yfiles-for-html/3.0/xaml"
)

// Document is a parsed GraphML document.
type Document struct {
	doc *etree.Document
}

// Root returns the document element. It is never nil for a Document returned
// by [Read] or [ReadFile].
func (d *Document) Root() *etree.Element {
	return d.doc.Root()
}

// Read parses an XML document from r.
//
// Any well-formedness violation is reported as an [errors.ErrCodeParse] error
// carrying the parser's message: a syntax error, a stream with no element or
// more than one top-level element, text outside the document element, or a
// namespace prefix that is never declared. Read does not close r.
func Read(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "")
	}
	if err := checkDocumentElement(doc); err != nil {
		return nil, err
	}
	if err := checkPrefixes(doc.Root()); err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// checkDocumentElement requires exactly one top-level element and no
// non-blank text around it.
func checkDocumentElement(doc *etree.Document) error {
	elements := 0
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			elements++
			if elements > 1 {
				return errors.New(errors.ErrCodeParse, "junk after document element: <%s>", t.FullTag())
			}
		case *etree.CharData:
			if strings.TrimSpace(t.Data) == "" {
				continue
			}
			if elements == 0 {
				return errors.New(errors.ErrCodeParse, "text before document element")
			}
			return errors.New(errors.ErrCodeParse, "junk after document element")
		}
	}
	if elements == 0 {
		return errors.New(errors.ErrCodeParse, "no root element")
	}
	return nil
}

// checkPrefixes rejects element and attribute prefixes that have no xmlns
// declaration in scope. The reserved xml prefix is always bound.
func checkPrefixes(el *etree.Element) error {
	if el.Space != "" && el.Space != "xml" && el.NamespaceURI() == "" {
		return errors.New(errors.ErrCodeParse, "unbound prefix on <%s>", el.FullTag())
	}
	for i := range el.Attr {
		a := &el.Attr[i]
		if a.Space == "" || a.Space == "xmlns" || a.Space == "xml" {
			continue
		}
		if a.NamespaceURI() == "" {
			return errors.New(errors.ErrCodeParse, "unbound prefix on attribute %s of <%s>", a.FullKey(), el.FullTag())
		}
	}
	for _, c := range el.ChildElements() {
		if err := checkPrefixes(c); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile opens the file at path and parses it with [Read].
//
// A missing file is reported as [errors.ErrCodeFileNotFound]; any other
// failure to open it as [errors.ErrCodeInvalidInput].
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}
