package scan

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// indentOpts keeps key order as parsed, two-space indentation, and no
// single-line packing of short values.
var indentOpts = &pretty.Options{Indent: "  ", Width: 0}

// Normalize re-serializes a JSON block with stable two-space indentation,
// preserving key order and non-ASCII characters. Invalid or empty input comes
// back unchanged; the bool reports whether normalization actually happened, so
// the passthrough path is observable.
func Normalize(s string) (string, bool) {
	if s == "" || !gjson.Valid(s) {
		return s, false
	}
	out := pretty.PrettyOptions([]byte(s), indentOpts)
	return strings.TrimSuffix(string(out), "\n"), true
}
