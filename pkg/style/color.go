package style

import "strings"

// Default colors used when a style is absent or cannot be resolved.
const (
	DefaultTextColor   = "#FFFFFF"
	DefaultStrokeColor = "#aaa"
	DefaultFillColor   = "#222"
)

// NormalizeColor converts a yFiles ARGB literal to the RGB form Mermaid
// understands. A 9 character literal with a fully opaque alpha ("#FFRRGGBB")
// becomes "#RRGGBB". Every other value is returned unchanged.
func NormalizeColor(s string) string {
	if len(s) == 9 && strings.HasPrefix(s, "#FF") {
		return "#" + s[3:]
	}
	return s
}
