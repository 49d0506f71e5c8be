// Package translate turns a yFiles GraphML document into a styled [diagram.Diagram].
//
// # Stages
//
// [Translate] reads a parsed document in one pass:
//
//  1. Direction from the layout payload ([layout.Resolve])
//  2. Color and stroke tables from y:SharedData ([style.BuildColorTable],
//     [style.BuildStrokeTable])
//  3. Every graphml:node, with label, text color and stroke color resolved
//     through the tables
//  4. Every graphml:edge whose endpoints are both nodes
//
// Missing or unreadable style data never fails a translation; it falls back to
// the defaults in [style] and [diagram]. The only input that fails is a node
// without an id attribute.
package translate
