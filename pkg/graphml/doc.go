// Package graphml reads yFiles GraphML documents into a navigable element tree.
//
// # Overview
//
// yFiles 3.0 writes GraphML with four namespaces: the GraphML structure itself,
// the yFiles common vocabulary (labels, shared data), the XAML markup
// vocabulary (x:Key, x:List), and the yFiles for HTML styles (colors, strokes,
// node and label styles). Elements are matched by namespace URI rather than by
// prefix, so documents that bind the namespaces to other prefixes, or use a
// default namespace, are read the same way.
//
// # Queries
//
// A [Match] is a predicate over elements. [Tag] matches a namespace and local
// name, [WithAttr] restricts a match to an attribute value, and [FindFirst] /
// [FindAll] walk the descendants of an element in document order:
//
//	doc, err := graphml.ReadFile("flow.graphml")
//	if err != nil {
//	    return err
//	}
//	for _, n := range graphml.FindAll(doc.Root(), graphml.Tag(graphml.NamespaceGraphML, "node")) {
//	    id, ok := graphml.Attr(n, "", "id")
//	    ...
//	}
//
// Attribute absence is always reported explicitly through the boolean result
// of [Attr]; an empty attribute value is a present attribute.
package graphml
