// internal/output/codon.go
package output

import (
	"fmt"
	"strconv"
	"strings"

	"labnotex-core/codon"
	"labnotex/pkg/api"
)

// Translation reports one row per codon plus the amino-acid string and
// property composition as notes.
func Translation(tr codon.Translation) Report {
	comp := codon.Composition(tr.AminoAcids)
	v := api.TranslationV1{
		SequenceType: string(tr.Type),
		Frame:        tr.Frame,
		Codons:       append([]string{}, tr.Codons...),
		AminoAcids:   tr.AminoAcids,
		Composition:  map[string]int{},
	}
	for k, n := range comp {
		v.Composition[string(k)] = n
	}

	t := Table{Title: fmt.Sprintf("Translation (frame %d)", tr.Frame), Columns: TranslationColumns}
	i := 0
	for c := range tr.All() {
		aa := codon.Lookup(c)
		name, prop := "unknown", string(codon.Special)
		if info, ok := codon.Classify(aa); ok {
			name, prop = info.Name, string(info.Property)
		}
		i++
		t.Rows = append(t.Rows, []string{strconv.Itoa(i), c, string(aa), name, prop})
	}

	parts := make([]string, 0, len(codon.Properties))
	for _, p := range codon.Properties {
		if n := comp[p]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", p, n))
		}
	}
	t.Notes = []string{"Protein: " + tr.AminoAcids}
	if len(parts) > 0 {
		t.Notes = append(t.Notes, "Composition: "+strings.Join(parts, ", "))
	}
	return Report{Kind: "translate", Table: t, API: v}
}
