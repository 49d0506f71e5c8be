package mermaid

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/yfiles2mermaid/pkg/diagram"
	"github.com/matzehuels/yfiles2mermaid/pkg/style"
)

// DefaultIndent is the number of spaces before every statement after the header.
const DefaultIndent = 4

// Theme configures the parts of the output that are not read from the input.
type Theme struct {
	Fill   string // Node background color
	Indent int    // Spaces before each statement; negative is treated as 0
}

// DefaultTheme returns the dark theme: fill #222 and four-space indentation.
func DefaultTheme() Theme {
	return Theme{Fill: style.DefaultFillColor, Indent: DefaultIndent}
}

// Render returns the Mermaid program for d.
func Render(d *diagram.Diagram, theme Theme) []byte {
	var buf bytes.Buffer
	writeTo(&buf, d, theme)
	return buf.Bytes()
}

// Write writes the Mermaid program for d to w with a single Write call.
func Write(w io.Writer, d *diagram.Diagram, theme Theme) error {
	_, err := w.Write(Render(d, theme))
	return err
}

func writeTo(buf *bytes.Buffer, d *diagram.Diagram, theme Theme) {
	fill := theme.Fill
	if fill == "" {
		fill = style.DefaultFillColor
	}
	indent := strings.Repeat(" ", max(theme.Indent, 0))

	fmt.Fprintf(buf, "graph %s;\n", d.Direction)

	nodes := d.Nodes()
	for _, n := range nodes {
		fmt.Fprintf(buf, "%s%s(\"%s\");\n", indent, n.ID, n.Label)
	}
	for _, n := range nodes {
		fmt.Fprintf(buf, "%sstyle %s fill:%s,stroke:%s,color:%s\n", indent, n.ID, fill, n.StrokeColor, n.TextColor)
	}
	for _, e := range d.Edges() {
		fmt.Fprintf(buf, "%s%s --> %s;\n", indent, e.From, e.To)
	}
}
