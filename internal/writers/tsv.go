// internal/writers/tsv.go
package writers

import (
	"bufio"
	"io"
	"strings"

	"labnotex/internal/output"
)

func init() { Register(output.FormatTSV, writeTSV) }

// Tabs and newlines inside cells would break the row; they become spaces.
var cellReplacer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

func writeTSV(w io.Writer, rep output.Report, opt Options) error {
	bw := bufio.NewWriter(w)
	writeRow := func(cells []string) {
		for i, c := range cells {
			if i > 0 {
				_ = bw.WriteByte('\t')
			}
			_, _ = bw.WriteString(cellReplacer.Replace(c))
		}
		_ = bw.WriteByte('\n')
	}
	if opt.Header {
		writeRow(rep.Table.Columns)
	}
	for _, row := range rep.Table.Rows {
		writeRow(row)
	}
	return bw.Flush()
}
