// Package pkg provides the libraries behind yfiles2mermaid.
//
// # Overview
//
// yfiles2mermaid turns diagrams saved by yEd Live or yFiles for HTML into
// Mermaid flowcharts. yFiles stores colors and strokes once in a shared
// definitions block and refers to them from nodes by key; the libraries here
// resolve those references and emit the result as inline Mermaid styles.
//
// # Architecture
//
//	GraphML file
//	     ↓
//	[graphml] element tree with namespace-aware queries
//	     ↓
//	[style] + [layout] shared color/stroke tables, flow direction
//	     ↓
//	[translate] nodes, labels, colors, edges
//	     ↓
//	[diagram] ordered node/edge model
//	     ↓
//	[render/mermaid] flowchart markup
//
// [pipeline] runs these stages in order with logging and error
// classification, and [observability] exposes hooks around each stage.
//
// # Quick Start
//
//	doc, err := graphml.ReadFile("flow.graphml")
//	if err != nil {
//	    return err
//	}
//	res, err := translate.Translate(doc)
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(mermaid.Render(res.Diagram, mermaid.DefaultTheme()))
//
// # Errors
//
// [errors] defines the codes shared by every package. PARSE_ERROR marks
// input that is not well-formed XML; everything else is reported by the CLI
// as an unexpected error.
//
// [graphml]: https://pkg.go.dev/github.com/matzehuels/yfiles2mermaid/pkg/graphml
// [style]: https://pkg.go.dev/github.com/matzehuels/yfiles2mermaid/pkg/style
// [layout]: https://pkg.go.dev/github.com/matzehuels/yfiles2mermaid/pkg/layout
// [translate]: https://pkg.go.dev/github.com/matzehuels/yfiles2mermaid/pkg/translate
// [diagram]: https://pkg.go.dev/github.com/matzehuels/yfiles2mermaid/pkg/diagram
// [render/mermaid]: https://pkg.go.dev/github.com/matzehuels/yfiles2mermaid/pkg/render/mermaid
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/yfiles2mermaid/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/yfiles2mermaid/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/yfiles2mermaid/pkg/errors
package pkg
