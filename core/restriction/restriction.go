// Package restriction locates recognition sites of common restriction enzymes.
package restriction

import (
	"strings"

	"labnotex-core/calcerr"
)

type Enzyme struct {
	Name string
	Site string // recognition sequence, 5'→3'
}

var common = []Enzyme{
	{"EcoRI", "GAATTC"},
	{"BamHI", "GGATCC"},
	{"HindIII", "AAGCTT"},
	{"XbaI", "TCTAGA"},
	{"PstI", "CTGCAG"},
	{"SalI", "GTCGAC"},
	{"NotI", "GCGGCCGC"},
	{"XhoI", "CTCGAG"},
}

// Common returns a copy of the built-in enzyme table.
func Common() []Enzyme {
	return append([]Enzyme(nil), common...)
}

// Select resolves names case-insensitively, keeping the caller's order and
// dropping repeats. No names selects the whole table.
func Select(names []string) ([]Enzyme, error) {
	if len(names) == 0 {
		return Common(), nil
	}
	seen := make(map[string]bool, len(names))
	out := make([]Enzyme, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		e, ok := lookup(n)
		if !ok {
			return nil, calcerr.Validation("enzyme", "unknown enzyme %q (known: %s)", n, knownNames())
		}
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		out = append(out, e)
	}
	return out, nil
}

func lookup(name string) (Enzyme, bool) {
	for _, e := range common {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Enzyme{}, false
}

func knownNames() string {
	names := make([]string, len(common))
	for i, e := range common {
		names[i] = e.Name
	}
	return strings.Join(names, ", ")
}

// Sites holds the 1-based start positions of one enzyme's matches.
type Sites struct {
	Enzyme    Enzyme
	Positions []int
}

func (s Sites) Count() int { return len(s.Positions) }

// FindSites scans seq (case-insensitive) for every enzyme. Matches may
// overlap. Results follow the order of enzymes; an enzyme without matches
// is still reported with no positions.
func FindSites(seq string, enzymes []Enzyme) []Sites {
	up := strings.ToUpper(seq)
	out := make([]Sites, 0, len(enzymes))
	for _, e := range enzymes {
		out = append(out, Sites{Enzyme: e, Positions: positions(up, strings.ToUpper(e.Site))})
	}
	return out
}

func positions(s, pattern string) []int {
	var out []int
	if pattern == "" {
		return out
	}
	for off := 0; ; {
		i := strings.Index(s[off:], pattern)
		if i < 0 {
			return out
		}
		out = append(out, off+i+1)
		off += i + 1
	}
}
