// Package mermaid writes a translated diagram as Mermaid flowchart markup.
//
// # Output
//
// Statements are written in dependency order, one per line:
//
//	graph TD;
//	    n0("Start");
//	    n1("End");
//	    style n0 fill:#222,stroke:#aaa,color:#FFFFFF
//	    style n1 fill:#222,stroke:#aaa,color:#FFFFFF
//	    n0 --> n1;
//
// The header names the flow direction, each node becomes a rounded rectangle
// with a quoted label, each node then gets an inline style directive, and each
// edge becomes an arrow connector. Node IDs are written verbatim.
//
// # Theme
//
// A [Theme] controls the node fill and the statement indentation. Stroke and
// text colors come from the diagram itself.
package mermaid
