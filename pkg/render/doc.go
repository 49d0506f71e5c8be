// Package render groups the output formats for translated diagrams.
//
// The [mermaid] subpackage writes a [diagram.Diagram] as a Mermaid flowchart:
//
//	out := mermaid.Render(d, mermaid.DefaultTheme())
//
// Renderers only format. All style resolution happens before a diagram
// reaches them.
//
// [mermaid]: https://pkg.go.dev/github.com/matzehuels/yfiles2mermaid/pkg/render/mermaid
// [diagram.Diagram]: https://pkg.go.dev/github.com/matzehuels/yfiles2mermaid/pkg/diagram#Diagram
package render
