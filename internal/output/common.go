// internal/output/common.go
package output

import "strings"

const (
	FormatText = "text"
	FormatTSV  = "tsv"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// Formats lists every supported --output value.
func Formats() []string { return []string{FormatText, FormatTSV, FormatJSON, FormatXLSX} }

func ValidFormat(f string) bool {
	for _, x := range Formats() {
		if x == f {
			return true
		}
	}
	return false
}

// Table is the presentation-neutral shape every calculator result is
// reduced to. Cells are already rounded for display.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
	Notes   []string // summary lines printed after the table (text only)
}

// Header is the TSV header row for t.
func (t Table) Header() string { return strings.Join(t.Columns, "\t") }

// Report bundles a calculator result for the writers: the table for
// text/tsv/xlsx and the v1 wire value for json. Negative marks an outcome
// that should exit non-zero without being an error (e.g. an incompatible
// primer pair).
type Report struct {
	Kind     string // sheet name and log field, e.g. "dilution"
	Table    Table
	API      any
	Negative bool
}

// Canonical column sets. Keep these stable; tsv consumers key on them.
var (
	DilutionColumns    = []string{"quantity", "value", "unit"}
	SerialColumns      = []string{"step", "concentration", "stock_volume", "diluent_volume", "conc_unit", "volume_unit"}
	MolarityColumns    = []string{"mode", "result", "unit"}
	SubstanceColumns   = []string{"formula", "name", "mw"}
	PrimerColumns      = []string{"id", "direction", "sequence", "length", "gc_percent", "tm", "tm_method"}
	PairColumns        = []string{"status", "forward", "reverse", "forward_pos", "reverse_pos", "product_size", "tm_diff", "message"}
	RevCompColumns     = []string{"input", "reverse_complement", "length"}
	GCColumns          = []string{"sequence", "length", "gc_count", "gc_percent"}
	GCRecordColumns    = []string{"id", "length", "gc_count", "gc_percent"}
	TTestColumns       = []string{"statistic", "value"}
	TranslationColumns = []string{"index", "codon", "amino_acid", "name", "property"}
	SitesColumns       = []string{"enzyme", "site", "count", "positions"}
)
