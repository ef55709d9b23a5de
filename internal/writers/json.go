// internal/writers/json.go
package writers

import (
	"io"

	"labnotex/internal/jsonutil"
	"labnotex/internal/output"
)

func init() {
	Register(output.FormatJSON, func(w io.Writer, rep output.Report, _ Options) error {
		return jsonutil.EncodePretty(w, rep.API)
	})
}
