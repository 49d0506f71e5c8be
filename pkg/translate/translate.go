package translate

import (
	"github.com/beevik/etree"

	"github.com/matzehuels/yfiles2mermaid/pkg/diagram"
	"github.com/matzehuels/yfiles2mermaid/pkg/errors"
	"github.com/matzehuels/yfiles2mermaid/pkg/graphml"
	"github.com/matzehuels/yfiles2mermaid/pkg/layout"
	"github.com/matzehuels/yfiles2mermaid/pkg/style"
)

var (
	tagNode         = graphml.Tag(graphml.NamespaceGraphML, "node")
	tagEdge         = graphml.Tag(graphml.NamespaceGraphML, "edge")
	tagSharedData   = graphml.Tag(graphml.NamespaceCommon, "SharedData")
	tagLabel        = graphml.Tag(graphml.NamespaceCommon, "Label")
	tagLabelStyle   = graphml.Tag(graphml.NamespaceXAML, "LabelStyle")
	tagShapeStyle   = graphml.Tag(graphml.NamespaceXAML, "ShapeNodeStyle")
	tagStrokeProp   = graphml.Tag(graphml.NamespaceXAML, "ShapeNodeStyle.stroke")
	tagInlineStroke = graphml.Tag(graphml.NamespaceXAML, "Stroke")
)

// Translate builds a diagram from doc.
func Translate(doc *graphml.Document) (*Result, error) {
	return TranslateElement(doc.Root())
}

// TranslateElement builds a diagram from the subtree below root.
func TranslateElement(root *etree.Element) (*Result, error) {
	shared := graphml.FindFirst(root, tagSharedData)
	colors := style.BuildColorTable(shared)
	t := &translator{
		colors:  colors,
		strokes: style.BuildStrokeTable(shared, colors),
	}

	d := diagram.New()
	d.Direction = layout.Resolve(root)
	res := &Result{Diagram: d, Colors: colors.Len(), Strokes: t.strokes.Len()}

	for i, el := range graphml.FindAll(root, tagNode) {
		n, ok, err := t.node(el)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "node #%d", i+1)
		}
		if !ok {
			res.SkippedNodes++
			continue
		}
		if err := d.AddNode(n); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "node #%d", i+1)
		}
	}

	for _, el := range graphml.FindAll(root, tagEdge) {
		from, _ := graphml.Attr(el, "", "source")
		to, _ := graphml.Attr(el, "", "target")
		if err := d.AddEdge(diagram.Edge{From: from, To: to}); err != nil {
			res.DroppedEdges++
		}
	}
	return res, nil
}

type translator struct {
	colors  style.ColorTable
	strokes style.StrokeTable
}

// node reads one graphml:node. Nodes without a y:Label are not drawn, so ok
// is false for them and edges touching them are later dropped.
func (t *translator) node(el *etree.Element) (n diagram.Node, ok bool, err error) {
	label := graphml.FindFirst(el, tagLabel)
	if label == nil {
		return diagram.Node{}, false, nil
	}
	id, ok := graphml.Attr(el, "", "id")
	if !ok {
		return diagram.Node{}, false, errors.New(errors.ErrCodeInvalidInput, "missing id attribute")
	}

	n = diagram.NewNode(id)
	n.Label = graphml.AttrOr(label, "", "Text", diagram.DefaultLabel)
	n.TextColor = t.textColor(label)
	n.StrokeColor = t.strokeColor(graphml.FindFirst(el, tagShapeStyle))
	return n, true, nil
}

// textColor resolves textFill on the label's style. Any digits in the value
// are taken as a color key.
func (t *translator) textColor(label *etree.Element) string {
	ls := graphml.FindFirst(label, tagLabelStyle)
	fill, ok := graphml.Attr(ls, "", "textFill")
	if !ok {
		return style.DefaultTextColor
	}
	return t.colors.Resolve(fill, style.DefaultTextColor)
}

// strokeColor resolves the border of a shape style: a stroke attribute
// referencing the stroke table first, then an inline stroke record.
func (t *translator) strokeColor(shape *etree.Element) string {
	if shape == nil {
		return style.DefaultStrokeColor
	}
	if ref, ok := graphml.Attr(shape, "", "stroke"); ok {
		if style.IsReference(ref) {
			return t.strokes.Resolve(ref, style.DefaultStrokeColor)
		}
		return style.NormalizeColor(ref)
	}

	inline := graphml.FindFirst(graphml.FindFirst(shape, tagStrokeProp), tagInlineStroke)
	fill, ok := graphml.Attr(inline, "", "fill")
	switch {
	case !ok:
		return style.DefaultStrokeColor
	case style.IsReference(fill):
		return t.colors.Resolve(fill, style.DefaultStrokeColor)
	default:
		return style.NormalizeColor(fill)
	}
}
