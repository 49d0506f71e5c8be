// Package layout reads the flow direction a yFiles document was laid out with.
//
// The editor stores its layout settings as a JSON payload inside a graphml:data
// element keyed "LayoutConfiguration". Only the numeric "orientation" field is
// read; the graph is never laid out here. Anything that cannot be read falls
// back to [TopDown], and no error ever leaves this package.
package layout

import (
	"math"
	"strings"

	"github.com/beevik/etree"
	"github.com/tidwall/gjson"

	"github.com/matzehuels/yfiles2mermaid/pkg/graphml"
)

// Direction is the primary flow direction of a diagram.
type Direction int

const (
	TopDown Direction = iota
	LeftRight
	BottomTop
	RightLeft
)

const (
	// ConfigKey identifies the data element that carries the layout payload,
	// either directly as its key or as the attr.name of the key it references.
	ConfigKey = "LayoutConfiguration"

	// OrientationField is the payload field holding the orientation number.
	OrientationField = "orientation"
)

var mermaidCodes = [...]string{
	TopDown:   "TD",
	LeftRight: "LR",
	BottomTop: "BT",
	RightLeft: "RL",
}

// String returns the Mermaid direction code ("TD", "LR", "BT" or "RL").
func (d Direction) String() string {
	if d < TopDown || d > RightLeft {
		return mermaidCodes[TopDown]
	}
	return mermaidCodes[d]
}

// FromOrientation maps the editor's orientation number to a Direction.
// 0, 1, 2 and 3 select TD, LR, BT and RL; anything else is TopDown.
func FromOrientation(o int64) Direction {
	if o < int64(TopDown) || o > int64(RightLeft) {
		return TopDown
	}
	return Direction(o)
}

// Decode reads the orientation from a JSON layout payload.
// Invalid JSON, a missing field, or a field that is not an integer all yield
// TopDown.
func Decode(payload string) Direction {
	if !gjson.Valid(payload) {
		return TopDown
	}
	v := gjson.Get(payload, OrientationField)
	if v.Type != gjson.Number {
		return TopDown
	}
	if f := v.Float(); f != math.Trunc(f) {
		return TopDown
	}
	return FromOrientation(v.Int())
}

// Payload locates the layout payload below root and returns its text.
// Key declarations are read from the direct children of root only, where
// GraphML places them.
func Payload(root *etree.Element) (string, bool) {
	keys := map[string]bool{ConfigKey: true}
	for _, k := range graphml.Children(root, graphml.Tag(graphml.NamespaceGraphML, "key")) {
		if name, _ := graphml.Attr(k, "", "attr.name"); name != ConfigKey {
			continue
		}
		if id, ok := graphml.Attr(k, "", "id"); ok {
			keys[id] = true
		}
	}

	data := graphml.FindFirst(root, func(el *etree.Element) bool {
		if !graphml.Tag(graphml.NamespaceGraphML, "data")(el) {
			return false
		}
		key, ok := graphml.Attr(el, "", "key")
		return ok && keys[key]
	})
	if data == nil {
		return "", false
	}
	return strings.TrimSpace(data.Text()), true
}

// Resolve returns the direction recorded in the document below root, or
// TopDown when there is none.
func Resolve(root *etree.Element) Direction {
	payload, ok := Payload(root)
	if !ok {
		return TopDown
	}
	return Decode(payload)
}
