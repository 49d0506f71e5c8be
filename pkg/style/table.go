package style

import (
	"github.com/beevik/etree"

	"github.com/matzehuels/yfiles2mermaid/pkg/graphml"
)

// ColorTable maps shared-definition keys to color literals.
// The zero value is an empty table.
type ColorTable struct {
	colors map[string]string
}

// BuildColorTable collects every yjs:Color record below container.
//
// The key comes from the x:Key attribute and the color from value, which
// defaults to [DefaultTextColor]. Values are passed through [NormalizeColor].
// Records without a key cannot be referenced and are skipped. A nil container
// yields an empty table.
func BuildColorTable(container *etree.Element) ColorTable {
	t := ColorTable{colors: make(map[string]string)}
	for _, el := range graphml.FindAll(container, graphml.Tag(graphml.NamespaceXAML, "Color")) {
		key, ok := graphml.Attr(el, graphml.NamespaceMarkup, "Key")
		if !ok {
			continue
		}
		t.colors[key] = NormalizeColor(graphml.AttrOr(el, "", "value", DefaultTextColor))
	}
	return t
}

// Lookup returns the color stored under key.
func (t ColorTable) Lookup(key string) (string, bool) {
	c, ok := t.colors[key]
	return c, ok
}

// Resolve extracts a key from ref with [ReferenceKey] and looks it up,
// returning def when there is no key or no entry for it.
func (t ColorTable) Resolve(ref, def string) string {
	if key, ok := ReferenceKey(ref); ok {
		if c, ok := t.Lookup(key); ok {
			return c
		}
	}
	return def
}

// Len returns the number of entries.
func (t ColorTable) Len() int { return len(t.colors) }

// StrokeTable maps shared-definition keys to resolved stroke colors.
// The zero value is an empty table.
type StrokeTable struct {
	strokes map[string]string
}

// BuildStrokeTable collects every yjs:Stroke record below container and
// resolves its fill through colors.
//
// A fill written as a reference resolves through colors and falls back to
// [DefaultTextColor] when the key is unknown. A literal fill is used exactly as
// written. A stroke without a fill gets [DefaultStrokeColor].
func BuildStrokeTable(container *etree.Element, colors ColorTable) StrokeTable {
	t := StrokeTable{strokes: make(map[string]string)}
	for _, el := range graphml.FindAll(container, graphml.Tag(graphml.NamespaceXAML, "Stroke")) {
		key, ok := graphml.Attr(el, graphml.NamespaceMarkup, "Key")
		if !ok {
			continue
		}
		fill, ok := graphml.Attr(el, "", "fill")
		switch {
		case !ok:
			t.strokes[key] = DefaultStrokeColor
		case IsReference(fill):
			t.strokes[key] = colors.Resolve(fill, DefaultTextColor)
		default:
			t.strokes[key] = fill
		}
	}
	return t
}

// Lookup returns the stroke color stored under key.
func (t StrokeTable) Lookup(key string) (string, bool) {
	c, ok := t.strokes[key]
	return c, ok
}

// Resolve extracts a key from ref with [ReferenceKey] and looks it up,
// returning def when there is no key or no entry for it.
func (t StrokeTable) Resolve(ref, def string) string {
	if key, ok := ReferenceKey(ref); ok {
		if c, ok := t.Lookup(key); ok {
			return c
		}
	}
	return def
}

// Len returns the number of entries.
func (t StrokeTable) Len() int { return len(t.strokes) }
