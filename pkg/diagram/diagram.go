// Package diagram holds the translated graph: styled nodes in document order
// and the edges between them.
//
// A [Diagram] only ever contains edges whose endpoints are both present, so a
// renderer can emit every edge without checking.
package diagram

import (
	"errors"
	"strings"

	"github.com/matzehuels/yfiles2mermaid/pkg/layout"
	"github.com/matzehuels/yfiles2mermaid/pkg/style"
)

// DefaultLabel is the label of a node that has none.
const DefaultLabel = "No Label"

var (
	// ErrInvalidNodeID is returned by [Diagram.AddNode] when the ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrUnknownSourceNode is returned by [Diagram.AddEdge] when From is not a node.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Diagram.AddEdge] when To is not a node.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Node is a styled diagram vertex.
type Node struct {
	ID          string // Identifier copied verbatim from the input
	Label       string // Display text, never containing a double quote
	TextColor   string // Label text color
	StrokeColor string // Border color
}

// NewNode returns a node with the given ID and every style at its default.
func NewNode(id string) Node {
	return Node{
		ID:          id,
		Label:       DefaultLabel,
		TextColor:   style.DefaultTextColor,
		StrokeColor: style.DefaultStrokeColor,
	}
}

// Edge is a directed connection between two nodes.
type Edge struct {
	From string
	To   string
}

// Diagram is an ordered collection of nodes and edges plus a flow direction.
//
// The zero value is not usable; use New.
// Diagram is not safe for concurrent use.
type Diagram struct {
	Direction layout.Direction

	order []string
	nodes map[string]*Node
	edges []Edge
}

// New returns an empty top-down diagram.
func New() *Diagram {
	return &Diagram{nodes: make(map[string]*Node)}
}

// AddNode stores n. Labels are cleaned with [SanitizeLabel].
//
// A node whose ID is already present replaces the earlier node's data but
// keeps its original position, so output order always follows the first
// occurrence of each ID.
func (d *Diagram) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	n.Label = SanitizeLabel(n.Label)
	if existing, ok := d.nodes[n.ID]; ok {
		*existing = n
		return nil
	}
	d.order = append(d.order, n.ID)
	d.nodes[n.ID] = &n
	return nil
}

// AddEdge stores e if both endpoints are nodes of d.
func (d *Diagram) AddEdge(e Edge) error {
	if _, ok := d.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := d.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	d.edges = append(d.edges, e)
	return nil
}

// Node returns the node with the given ID.
func (d *Diagram) Node(id string) (Node, bool) {
	n, ok := d.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Nodes returns the nodes in insertion order.
func (d *Diagram) Nodes() []Node {
	out := make([]Node, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, *d.nodes[id])
	}
	return out
}

// Edges returns the edges in insertion order.
func (d *Diagram) Edges() []Edge {
	out := make([]Edge, len(d.edges))
	copy(out, d.edges)
	return out
}

// NodeCount returns the number of distinct nodes.
func (d *Diagram) NodeCount() int { return len(d.order) }

// EdgeCount returns the number of edges.
func (d *Diagram) EdgeCount() int { return len(d.edges) }

// SanitizeLabel replaces every double quote with an apostrophe so the label
// can sit inside Mermaid's quoted node text.
func SanitizeLabel(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}
