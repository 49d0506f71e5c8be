// Package style resolves the shared color and stroke definitions of a yFiles
// document.
//
// yFiles stores reusable style objects once, inside the y:SharedData section,
// and refers to them from node and label styles with a markup extension such as
// "{y:GraphMLReference 38}". This package builds two read-only lookup tables
// from that section:
//
//   - [ColorTable]: key -> "#RRGGBB" color literal
//   - [StrokeTable]: key -> resolved stroke color (one indirection through the
//     color table)
//
// Both tables are built once, before any node is read, and expose lookups only.
//
// # References
//
// A reference key is recognized by [ReferenceKey], which returns the first run
// of decimal digits in an attribute value. This is deliberately permissive and
// matches how existing documents have always been read: "{y:GraphMLReference 38}"
// yields "38", but "{y:Ref2 38}" yields "2". Callers must not tighten it.
package style
