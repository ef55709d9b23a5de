// internal/output/sites.go
package output

import (
	"strconv"
	"strings"

	"labnotex-core/restriction"
	"labnotex/pkg/api"
)

func IntsCSV(a []int) string {
	if len(a) == 0 {
		return ""
	}
	ss := make([]string, len(a))
	for i, v := range a {
		ss[i] = strconv.Itoa(v)
	}
	return strings.Join(ss, ",")
}

// Sites reports restriction sites per enzyme, in table order.
func Sites(id string, length int, found []restriction.Sites) Report {
	v := api.SitesV1{SequenceID: id, Length: length, Enzymes: make([]api.SiteV1, 0, len(found))}
	t := Table{Title: "Restriction sites", Columns: SitesColumns}
	cutters := 0
	for _, s := range found {
		pos := append([]int{}, s.Positions...)
		v.Enzymes = append(v.Enzymes, api.SiteV1{Enzyme: s.Enzyme.Name, Site: s.Enzyme.Site, Count: s.Count(), Positions: pos})
		t.Rows = append(t.Rows, []string{s.Enzyme.Name, s.Enzyme.Site, strconv.Itoa(s.Count()), IntsCSV(s.Positions)})
		if s.Count() > 0 {
			cutters++
		}
	}
	if id != "" {
		t.Title += " in " + id
	}
	t.Notes = []string{strconv.Itoa(cutters) + " of " + strconv.Itoa(len(found)) + " enzymes cut the " + strconv.Itoa(length) + " bp sequence."}
	return Report{Kind: "sites", Table: t, API: v}
}
