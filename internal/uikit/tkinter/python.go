package tkinter

import (
	"strconv"
	"strings"
)

// pyString quotes s as a Python string literal. Go's escapes for quoted
// strings (\n, \t, \", \\, \xNN, \uNNNN, \UNNNNNNNN) mean the same in Python.
func pyString(s string) string {
	return strconv.Quote(s)
}

// pyDict renders opts as a Python dict display.
func pyDict(opts []option) string {
	items := make([]string, len(opts))
	for i, o := range opts {
		items[i] = pyString(o.Key) + ": " + o.Value
	}
	return "{" + strings.Join(items, ", ") + "}"
}
