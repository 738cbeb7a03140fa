package application

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Format pretty-prints JSON text with two-space indentation, preserving
// key order. Text that is not valid JSON comes back unchanged.
func Format(text string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(text), "", "  "); err != nil {
		return text
	}
	return buf.String()
}
