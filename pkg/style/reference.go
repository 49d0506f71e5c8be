package style

import (
	"regexp"
	"strings"
)

var digitRun = regexp.MustCompile(`\d+`)

// ReferenceKey extracts a shared-definition key from a free-form attribute
// value. The key is the first run of decimal digits anywhere in s; ok is false
// when s contains no digit.
//
// No attempt is made to check that s actually has the reference shape, so
// unrelated digits earlier in the string win.
func ReferenceKey(s string) (key string, ok bool) {
	key = digitRun.FindString(s)
	return key, key != ""
}

// IsReference reports whether an attribute value is written as a markup
// extension ("{...}") rather than as a literal.
func IsReference(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "{")
}
