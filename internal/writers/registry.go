// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"labnotex/internal/output"
)

// Options are shared by every format; formats ignore what they don't use.
type Options struct {
	Header bool // tsv: emit the header row
}

type WriterFunc func(w io.Writer, rep output.Report, opt Options) error

// Registry (format → handler). Formats register themselves in init().
var registry = map[string]WriterFunc{}

// Register is idempotent, last wins.
func Register(format string, fn WriterFunc) { registry[format] = fn }

// Registered lists known formats, sorted.
func Registered() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Write dispatches rep to the writer for format.
func Write(format string, w io.Writer, rep output.Report, opt Options) error {
	fn, ok := registry[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, rep, opt)
}
