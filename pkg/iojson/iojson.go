// Package iojson reads and writes the JSON forms of the CLI commands.
package iojson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// errorDoc is written to the error stream when a value cannot be encoded.
type errorDoc struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// WriteWith writes obj to w as indented JSON. HTML characters are left
// unescaped so names like "H&M" print as typed. When obj cannot be encoded
// nothing is written to w and an error document goes to ew.
func WriteWith(w, ew io.Writer, obj any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(obj); err != nil {
		doc, _ := json.Marshal(errorDoc{
			Message: "failed to encode output",
			Data:    map[string]any{"json_error": err.Error()},
		})
		_, werr := fmt.Fprintln(ew, string(doc))
		return werr
	}

	_, err := w.Write(buf.Bytes())
	return err
}
