// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// EncodePretty writes v as two-space indented JSON followed by a newline.
// HTML characters are left as-is so messages like "< 0.001" stay readable.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return errors.Wrap(enc.Encode(v), "encode json")
}
