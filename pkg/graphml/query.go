package graphml

import "github.com/beevik/etree"

// Match reports whether an element satisfies a query.
type Match func(el *etree.Element) bool

// Tag matches elements with the given namespace URI and local name.
func Tag(namespace, local string) Match {
	return func(el *etree.Element) bool {
		return el.Tag == local && el.NamespaceURI() == namespace
	}
}

// WithAttr narrows m to elements whose attribute (namespace, key) equals value.
func (m Match) WithAttr(namespace, key, value string) Match {
	return func(el *etree.Element) bool {
		if !m(el) {
			return false
		}
		v, ok := Attr(el, namespace, key)
		return ok && v == value
	}
}

// FindFirst returns the first descendant of root, in document order, that
// satisfies m. root itself is not considered. It returns nil when nothing
// matches or root is nil.
func FindFirst(root *etree.Element, m Match) *etree.Element {
	if root == nil {
		return nil
	}
	for _, c := range root.ChildElements() {
		if m(c) {
			return c
		}
		if found := FindFirst(c, m); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant of root that satisfies m, in document order.
func FindAll(root *etree.Element, m Match) []*etree.Element {
	var out []*etree.Element
	walk(root, func(el *etree.Element) {
		if m(el) {
			out = append(out, el)
		}
	})
	return out
}

// Children returns the direct child elements of el that satisfy m.
func Children(el *etree.Element, m Match) []*etree.Element {
	if el == nil {
		return nil
	}
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if m(c) {
			out = append(out, c)
		}
	}
	return out
}

// Attr looks up the attribute with the given namespace URI and key on el.
// Unprefixed attributes have no namespace; pass "" to select them.
func Attr(el *etree.Element, namespace, key string) (string, bool) {
	if el == nil {
		return "", false
	}
	for i := range el.Attr {
		a := &el.Attr[i]
		if a.Key != key || a.Space == "xmlns" {
			continue
		}
		uri := ""
		if a.Space != "" {
			uri = a.NamespaceURI()
		}
		if uri == namespace {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the attribute value, or def when it is absent.
func AttrOr(el *etree.Element, namespace, key, def string) string {
	if v, ok := Attr(el, namespace, key); ok {
		return v
	}
	return def
}

func walk(el *etree.Element, fn func(*etree.Element)) {
	if el == nil {
		return
	}
	for _, c := range el.ChildElements() {
		fn(c)
		walk(c, fn)
	}
}
