package translate

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/yfiles2mermaid/pkg/diagram"
	"github.com/matzehuels/yfiles2mermaid/pkg/errors"
	"github.com/matzehuels/yfiles2mermaid/pkg/graphml"
	"github.com/matzehuels/yfiles2mermaid/pkg/layout"
	"github.com/matzehuels/yfiles2mermaid/pkg/style"
)

func translateFile(t *testing.T, name string) *Result {
	t.Helper()
	doc, err := graphml.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("ReadFile(%s) error: %v", name, err)
	}
	res, err := Translate(doc)
	if err != nil {
		t.Fatalf("Translate(%s) error: %v", name, err)
	}
	return res
}

func translateString(t *testing.T, s string) (*Result, error) {
	t.Helper()
	doc, err := graphml.Read(strings.NewReader(s))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	return Translate(doc)
}

func TestTranslateBasic(t *testing.T) {
	res := translateFile(t, "basic.graphml")
	d := res.Diagram

	if d.Direction != layout.TopDown {
		t.Errorf("Direction = %v, want TD", d.Direction)
	}

	want := []diagram.Node{
		{ID: "n0", Label: "Start", TextColor: style.DefaultTextColor, StrokeColor: style.DefaultStrokeColor},
		{ID: "n1", Label: "End", TextColor: style.DefaultTextColor, StrokeColor: style.DefaultStrokeColor},
	}
	got := d.Nodes()
	if len(got) != len(want) {
		t.Fatalf("got %d nodes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("node %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	edges := d.Edges()
	if len(edges) != 1 || edges[0] != (diagram.Edge{From: "n0", To: "n1"}) {
		t.Errorf("Edges() = %v, want [n0->n1]", edges)
	}
	if res.Colors != 0 || res.Strokes != 0 || res.DroppedEdges != 0 {
		t.Errorf("Result counts = %+v, want zero", res)
	}
}

func TestTranslateStyled(t *testing.T) {
	res := translateFile(t, "styled.graphml")
	d := res.Diagram

	if d.Direction != layout.LeftRight {
		t.Errorf("Direction = %v, want LR", d.Direction)
	}
	if res.Colors != 2 || res.Strokes != 2 {
		t.Errorf("tables = %d colors, %d strokes, want 2 and 2", res.Colors, res.Strokes)
	}

	tests := []struct {
		id     string
		label  string
		text   string
		stroke string
	}{
		// stroke reference through the stroke table, label quotes replaced
		{"api", "Public 'API'", "#336699", "#336699"},
		// inline literal stroke, alpha truncated
		{"db", "Database", "#FFCC00", "#00FF00"},
		// label without text, inline stroke referencing a color
		{"cache", diagram.DefaultLabel, style.DefaultTextColor, "#336699"},
		// unknown text color key, shared stroke with a literal fill kept as written
		{"queue", "Queue", style.DefaultTextColor, "#FF123456"},
	}

	nodes := d.Nodes()
	if len(nodes) != len(tests) {
		t.Fatalf("got %d nodes, want %d", len(nodes), len(tests))
	}
	for i, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			n := nodes[i]
			if n.ID != tt.id {
				t.Fatalf("node %d ID = %q, want %q", i, n.ID, tt.id)
			}
			if n.Label != tt.label {
				t.Errorf("Label = %q, want %q", n.Label, tt.label)
			}
			if n.TextColor != tt.text {
				t.Errorf("TextColor = %q, want %q", n.TextColor, tt.text)
			}
			if n.StrokeColor != tt.stroke {
				t.Errorf("StrokeColor = %q, want %q", n.StrokeColor, tt.stroke)
			}
		})
	}

	wantEdges := []diagram.Edge{{From: "api", To: "db"}, {From: "api", To: "cache"}, {From: "queue", To: "db"}}
	edges := d.Edges()
	if len(edges) != len(wantEdges) {
		t.Fatalf("Edges() = %v, want %v", edges, wantEdges)
	}
	for i := range wantEdges {
		if edges[i] != wantEdges[i] {
			t.Errorf("edge %d = %v, want %v", i, edges[i], wantEdges[i])
		}
	}
	// orphan has no label: it is skipped and api->orphan goes with it.
	if _, ok := d.Node("orphan"); ok {
		t.Error("node without a label should not be in the diagram")
	}
	if res.SkippedNodes != 1 {
		t.Errorf("SkippedNodes = %d, want 1", res.SkippedNodes)
	}
	if res.DroppedEdges != 2 {
		t.Errorf("DroppedEdges = %d, want 2", res.DroppedEdges)
	}
}

const prologue = `<graphml xmlns="http://graphml.graphdrawing.org/xmlns"
         xmlns:y="http://www.yworks.com/xml/yfiles-common/3.0"
         xmlns:x="http://www.yworks.com/xml/yfiles-common/markup/3.0"
         xmlns:yjs="http://www.yworks.com/xml/yfiles-for-html/3.0/xaml">`

func TestTranslateDanglingEdge(t *testing.T) {
	res, err := translateString(t, prologue+`
  <graph>
    <node id="a"><data><y:Label Text="a"/></data></node>
    <node id="b"><data><y:Label Text="b"/></data></node>
    <edge source="a" target="missing"/>
    <edge source="missing" target="b"/>
    <edge target="b"/>
    <edge source="a" target="b"/>
  </graph>
</graphml>`)
	if err != nil {
		t.Fatalf("Translate() error: %v", err)
	}

	if res.Diagram.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", res.Diagram.NodeCount())
	}
	if res.Diagram.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", res.Diagram.EdgeCount())
	}
	if res.DroppedEdges != 3 {
		t.Errorf("DroppedEdges = %d, want 3", res.DroppedEdges)
	}
}

func TestTranslateNodeDefaults(t *testing.T) {
	res, err := translateString(t, prologue+`
  <graph>
    <node id="textless"><data><y:Label/></data></node>
    <node id="nostyle"><data><y:Label Text="x"><y:Label.Style><yjs:LabelStyle/></y:Label.Style></y:Label></data></node>
    <node id="emptyshape"><data><y:Label/><yjs:ShapeNodeStyle/></data></node>
    <node id="strokeless"><data><y:Label/><yjs:ShapeNodeStyle><yjs:ShapeNodeStyle.stroke><yjs:Stroke/></yjs:ShapeNodeStyle.stroke></yjs:ShapeNodeStyle></data></node>
  </graph>
</graphml>`)
	if err != nil {
		t.Fatalf("Translate() error: %v", err)
	}
	if res.Diagram.NodeCount() != 4 {
		t.Fatalf("NodeCount() = %d, want 4", res.Diagram.NodeCount())
	}

	for _, n := range res.Diagram.Nodes() {
		if n.TextColor != style.DefaultTextColor {
			t.Errorf("%s TextColor = %q, want default", n.ID, n.TextColor)
		}
		if n.StrokeColor != style.DefaultStrokeColor {
			t.Errorf("%s StrokeColor = %q, want default", n.ID, n.StrokeColor)
		}
		wantLabel := diagram.DefaultLabel
		if n.ID == "nostyle" {
			wantLabel = "x"
		}
		if n.Label != wantLabel {
			t.Errorf("%s Label = %q, want %q", n.ID, n.Label, wantLabel)
		}
	}
}

func TestTranslateStrokeLiteralAttribute(t *testing.T) {
	res, err := translateString(t, prologue+`
  <graph>
    <node id="a"><data><y:Label Text="a"/><yjs:ShapeNodeStyle stroke="#FFABCDEF"/></data></node>
    <node id="b"><data><y:Label Text="b"/><yjs:ShapeNodeStyle stroke="{y:GraphMLReference 404}"/></data></node>
  </graph>
</graphml>`)
	if err != nil {
		t.Fatalf("Translate() error: %v", err)
	}

	a, _ := res.Diagram.Node("a")
	if a.StrokeColor != "#ABCDEF" {
		t.Errorf("a StrokeColor = %q, want #ABCDEF", a.StrokeColor)
	}
	b, _ := res.Diagram.Node("b")
	if b.StrokeColor != style.DefaultStrokeColor {
		t.Errorf("b StrokeColor = %q, want default", b.StrokeColor)
	}
}

func TestTranslatePermissiveKeyExtraction(t *testing.T) {
	// The first digit run wins even when it is not the reference key.
	res, err := translateString(t, prologue+`
  <y:SharedData>
    <yjs:Color x:Key="2" value="#FF111111"/>
    <yjs:Color x:Key="38" value="#FF222222"/>
  </y:SharedData>
  <graph>
    <node id="a"><data><y:Label Text="a"><yjs:LabelStyle textFill="{y:Ref2 38}"/></y:Label></data></node>
  </graph>
</graphml>`)
	if err != nil {
		t.Fatalf("Translate() error: %v", err)
	}

	a, _ := res.Diagram.Node("a")
	if a.TextColor != "#111111" {
		t.Errorf("TextColor = %q, want #111111", a.TextColor)
	}
}

func TestTranslateSharedDataOnlyInContainer(t *testing.T) {
	// Color records outside y:SharedData are not shared definitions.
	res, err := translateString(t, prologue+`
  <graph>
    <data key="stray"><yjs:Color x:Key="5" value="#FF555555"/></data>
    <node id="a"><data><y:Label Text="a"><yjs:LabelStyle textFill="{y:GraphMLReference 5}"/></y:Label></data></node>
  </graph>
</graphml>`)
	if err != nil {
		t.Fatalf("Translate() error: %v", err)
	}
	if res.Colors != 0 {
		t.Errorf("Colors = %d, want 0", res.Colors)
	}
	a, _ := res.Diagram.Node("a")
	if a.TextColor != style.DefaultTextColor {
		t.Errorf("TextColor = %q, want default", a.TextColor)
	}
}

func TestTranslateDuplicateNodeID(t *testing.T) {
	res, err := translateString(t, prologue+`
  <graph>
    <node id="a"><data><y:Label Text="first"/></data></node>
    <node id="b"><data><y:Label Text="b"/></data></node>
    <node id="a"><data><y:Label Text="second"/></data></node>
  </graph>
</graphml>`)
	if err != nil {
		t.Fatalf("Translate() error: %v", err)
	}

	nodes := res.Diagram.Nodes()
	if len(nodes) != 2 || nodes[0].ID != "a" || nodes[0].Label != "second" {
		t.Errorf("Nodes() = %+v, want a(second), b", nodes)
	}
}

func TestTranslateNodeWithoutID(t *testing.T) {
	_, err := translateString(t, prologue+`<graph>
    <node id="a"><data><y:Label Text="a"/></data></node>
    <node><data><y:Label Text="anonymous"/></data></node>
  </graph>
</graphml>`)
	if err == nil {
		t.Fatal("Translate() expected error for node without id")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
	if !strings.Contains(err.Error(), "node #2") {
		t.Errorf("error %q should name the offending node", err)
	}
}

func TestTranslateSkipsNodesWithoutLabel(t *testing.T) {
	res, err := translateString(t, prologue+`
  <graph>
    <node id="a"><data><y:Label Text="A"/></data></node>
    <node id="b"><data><yjs:ShapeNodeStyle stroke="#FF00FF00"/></data></node>
    <node><data><yjs:ShapeNodeStyle/></data></node>
    <edge source="a" target="b"/>
  </graph>
</graphml>`)
	if err != nil {
		t.Fatalf("Translate() error: %v", err)
	}

	nodes := res.Diagram.Nodes()
	if len(nodes) != 1 || nodes[0].ID != "a" {
		t.Errorf("Nodes() = %+v, want only a", nodes)
	}
	if res.Diagram.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", res.Diagram.EdgeCount())
	}
	if res.SkippedNodes != 2 || res.DroppedEdges != 1 {
		t.Errorf("SkippedNodes = %d, DroppedEdges = %d, want 2 and 1", res.SkippedNodes, res.DroppedEdges)
	}
}

func TestTranslateIgnoresOtherNamespaces(t *testing.T) {
	// Without the GraphML namespace there are no graphml:node records.
	res, err := translateString(t, `<graphml><graph><node id="a"><Label Text="a"/></node></graph></graphml>`)
	if err != nil {
		t.Fatalf("Translate() error: %v", err)
	}
	if res.Diagram.NodeCount() != 0 {
		t.Errorf("NodeCount() = %d, want 0", res.Diagram.NodeCount())
	}
}
