package dilution

import (
	"sort"
	"strings"

	"labnotex-core/calcerr"
	"labnotex-core/numfmt"
)

// Substance is a reagent with a known molecular weight (g/mol).
type Substance struct {
	Name    string
	Formula string
	MW      float64
}

var commonSubstances = []Substance{
	{"Sodium chloride", "NaCl", 58.44},
	{"Potassium chloride", "KCl", 74.55},
	{"Calcium chloride", "CaCl2", 110.98},
	{"Magnesium chloride", "MgCl2", 95.21},
	{"Sodium bicarbonate", "NaHCO3", 84.01},
	{"Glucose", "C6H12O6", 180.16},
	{"Tris", "C4H11NO3", 121.14},
	{"EDTA", "C10H16N2O8", 292.24},
}

// CommonSubstances returns a copy of the built-in reagent table.
func CommonSubstances() []Substance {
	return append([]Substance(nil), commonSubstances...)
}

// LookupSubstance finds a reagent by name or formula, ignoring case.
func LookupSubstance(key string) (Substance, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	for _, s := range commonSubstances {
		if strings.ToLower(s.Name) == k || strings.ToLower(s.Formula) == k {
			return s, true
		}
	}
	return Substance{}, false
}

// SubstanceNames lists the formulas accepted by LookupSubstance, sorted.
func SubstanceNames() []string {
	out := make([]string, 0, len(commonSubstances))
	for _, s := range commonSubstances {
		out = append(out, s.Formula)
	}
	sort.Strings(out)
	return out
}

// MolecularWeight resolves raw as a number or as a known reagent.
func MolecularWeight(raw string) (float64, error) {
	if v, ok := numfmt.Parse(raw); ok {
		return v, nil
	}
	if s, ok := LookupSubstance(raw); ok {
		return s.MW, nil
	}
	return 0, calcerr.Validation("molecular weight", "molecular weight %q is neither a number nor a known substance (known: %s)",
		raw, strings.Join(SubstanceNames(), ", "))
}

func parseAll(names []string, raws ...string) ([]float64, error) {
	out := make([]float64, len(raws))
	for i, r := range raws {
		v, ok := numfmt.Parse(r)
		if !ok {
			return nil, calcerr.Validation(names[i], "invalid input: %s is %q", names[i], r)
		}
		out[i] = v
	}
	return out, nil
}

// MassToMolarity returns the molarity in mM of massMg dissolved to volumeML.
func MassToMolarity(massMg, mw, volumeML string) (float64, error) {
	mwv, err := MolecularWeight(mw)
	if err != nil {
		return 0, err
	}
	v, err := parseAll([]string{"mass", "volume"}, massMg, volumeML)
	if err != nil {
		return 0, err
	}
	if v[1] == 0 {
		return 0, calcerr.Validation("volume", "volume must not be 0")
	}
	if mwv == 0 {
		return 0, calcerr.Validation("molecular weight", "molecular weight must not be 0")
	}
	return numfmt.Round(v[0]/(mwv*v[1]/1000), numfmt.ConcentrationPlaces), nil
}

// MolarityToMass returns the mg needed for molarityMM in volumeML.
func MolarityToMass(molarityMM, mw, volumeML string) (float64, error) {
	mwv, err := MolecularWeight(mw)
	if err != nil {
		return 0, err
	}
	v, err := parseAll([]string{"molarity", "volume"}, molarityMM, volumeML)
	if err != nil {
		return 0, err
	}
	return numfmt.Round(v[0]*mwv*v[1]/1000, numfmt.ConcentrationPlaces), nil
}

// StockVolume returns the mL of stock needed to reach finalConc in finalVolumeML.
func StockVolume(stockConc, finalConc, finalVolumeML string) (float64, error) {
	v, err := parseAll([]string{"stock concentration", "final concentration", "final volume"}, stockConc, finalConc, finalVolumeML)
	if err != nil {
		return 0, err
	}
	if v[0] == 0 {
		return 0, calcerr.Validation("stock concentration", "stock concentration must not be 0")
	}
	return numfmt.Round(v[1]*v[2]/v[0], numfmt.VolumePlaces), nil
}
