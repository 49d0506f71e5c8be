package translate

import "github.com/matzehuels/yfiles2mermaid/pkg/diagram"

// Result is a translated diagram plus counts describing what was read.
type Result struct {
	Diagram *diagram.Diagram

	// Colors and Strokes are the sizes of the shared-definition tables.
	Colors  int
	Strokes int

	// SkippedNodes counts graphml:node records without a label.
	SkippedNodes int

	// DroppedEdges counts edges skipped because an endpoint is not a node.
	DroppedEdges int
}
