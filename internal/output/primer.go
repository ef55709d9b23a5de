// internal/output/primer.go
package output

import (
	"strconv"

	"labnotex-core/fasta"
	"labnotex-core/numfmt"
	"labnotex-core/primer"
	"labnotex-core/seq"
	"labnotex/pkg/api"
)

func ToAPIPrimer(p primer.Primer) api.PrimerV1 {
	return api.PrimerV1{
		ID:        p.ID,
		Name:      p.Name,
		Sequence:  p.Sequence,
		Direction: string(p.Direction),
		Length:    p.Length(),
		GCPercent: p.GCContent(),
		Tm:        p.Tm(),
		TmMethod:  string(p.TmMethod()),
	}
}

func primerRow(p primer.Primer) []string {
	return []string{
		p.Label(), string(p.Direction), p.Sequence,
		strconv.Itoa(p.Length()),
		numfmt.Fixed(p.GCContent(), numfmt.PercentPlaces),
		numfmt.Fixed(p.Tm(), numfmt.TemperaturePlaces),
		string(p.TmMethod()),
	}
}

// Primers reports Tm, GC% and length for each primer.
func Primers(list []primer.Primer) Report {
	t := Table{Title: "Primers", Columns: PrimerColumns}
	out := make([]api.PrimerV1, 0, len(list))
	wallace := false
	for _, p := range list {
		t.Rows = append(t.Rows, primerRow(p))
		out = append(out, ToAPIPrimer(p))
		wallace = wallace || p.TmMethod() == primer.MethodWallace
	}
	if wallace {
		t.Notes = append(t.Notes, "Tm for primers shorter than "+strconv.Itoa(primer.WallaceMaxLen)+" nt uses the Wallace rule (2 °C per base), a rough estimate.")
	}
	return Report{Kind: "primers", Table: t, API: out}
}

// Pair reports a primer-pair analysis. Positions are shown 1-based; an
// incompatible pair is a negative outcome.
func Pair(a primer.PairAnalysis) Report {
	v := api.PairV1{
		Status:      a.Status.String(),
		Compatible:  a.Compatible,
		Message:     a.Message,
		ProductSize: a.ProductSize,
		TmDiff:      a.TmDiff,
	}
	fwd, rev := "", ""
	if a.Forward != nil {
		p := ToAPIPrimer(*a.Forward)
		v.Forward, fwd = &p, a.Forward.Label()
	}
	if a.Reverse != nil {
		p := ToAPIPrimer(*a.Reverse)
		v.Reverse, rev = &p, a.Reverse.Label()
	}
	pos := func(i int) string {
		if i < 0 {
			return ""
		}
		return strconv.Itoa(i + 1)
	}
	if a.ForwardPos >= 0 {
		v.ForwardPos = a.ForwardPos + 1
	}
	if a.ReversePos >= 0 {
		v.ReversePos = a.ReversePos + 1
	}
	size := ""
	if a.ProductSize > 0 {
		size = strconv.Itoa(a.ProductSize)
	}
	diff := ""
	if a.Forward != nil && a.Reverse != nil {
		diff = numfmt.Fixed(a.TmDiff, numfmt.TemperaturePlaces)
	}
	t := Table{
		Title:   "Primer pair",
		Columns: PairColumns,
		Rows:    [][]string{{a.Status.String(), fwd, rev, pos(a.ForwardPos), pos(a.ReversePos), size, diff, a.Message}},
		Notes:   []string{a.Message},
	}
	return Report{Kind: "pair", Table: t, API: v, Negative: !a.Compatible}
}

// RevComp reports a reverse complement.
func RevComp(in, out string) Report {
	n := seq.Length(out)
	return Report{
		Kind: "revcomp",
		Table: Table{
			Title:   "Reverse complement",
			Columns: RevCompColumns,
			Rows:    [][]string{{in, out, strconv.Itoa(n)}},
		},
		API: api.RevCompV1{Input: in, Output: out, Length: n},
	}
}

func gcValue(id, s string) api.GCV1 {
	return api.GCV1{ID: id, Sequence: s, Length: seq.Length(s), GCCount: seq.GCCount(s), GCPercent: seq.GCContent(s)}
}

// GC reports the GC content of s.
func GC(s string) Report {
	v := gcValue("", s)
	return Report{
		Kind: "gc",
		Table: Table{
			Title:   "GC content",
			Columns: GCColumns,
			Rows: [][]string{{
				s, strconv.Itoa(v.Length), strconv.Itoa(v.GCCount), numfmt.Fixed(v.GCPercent, numfmt.PercentPlaces),
			}},
		},
		API: v,
	}
}

// GCRecords reports GC content per FASTA record. Sequences are sanitized
// first; the table leaves them out since whole records rarely fit a cell.
func GCRecords(recs []fasta.Record) Report {
	rows := make([][]string, 0, len(recs))
	vs := make([]api.GCV1, 0, len(recs))
	for _, r := range recs {
		v := gcValue(r.ID, seq.Sanitize(r.Seq))
		vs = append(vs, v)
		rows = append(rows, []string{
			r.ID, strconv.Itoa(v.Length), strconv.Itoa(v.GCCount), numfmt.Fixed(v.GCPercent, numfmt.PercentPlaces),
		})
	}
	return Report{
		Kind: "gc",
		Table: Table{
			Title:   "GC content",
			Columns: GCRecordColumns,
			Rows:    rows,
		},
		API: vs,
	}
}
