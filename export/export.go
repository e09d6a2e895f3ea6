// Package export serializes records to the JSON interchange format:
// UTF-8, two-space indentation, non-ASCII and HTML-significant characters
// preserved unescaped. Nothing here validates records — the resolver
// already guarantees every field is either absent or non-empty trimmed
// text.
package export

import (
	"encoding/json"
	"io"
	"os"
)

// EncodeJSON writes v to w in the interchange format.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSON writes v to a file in the interchange format.
func WriteJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := EncodeJSON(f, v); err != nil {
		return err
	}
	return f.Sync()
}
