package primer

import (
	"labnotex-core/numfmt"
	"labnotex-core/seq"
)

// TmMethod names the approximation used for a given primer length.
type TmMethod string

const (
	MethodWallace   TmMethod = "wallace"   // 2 °C per base
	MethodEmpirical TmMethod = "empirical" // 64.9 + 41(GC − 16.4)/N
)

// WallaceMaxLen is the first length that switches to the empirical formula.
const WallaceMaxLen = 14

func MethodFor(length int) TmMethod {
	if length < WallaceMaxLen {
		return MethodWallace
	}
	return MethodEmpirical
}

// MeltingTemperature estimates Tm in °C, rounded to one decimal.
//
// Below 14 nt it is the Wallace rule (2 × length). From 14 nt on it is
// 64.9 + 41 × (GC − 16.4) / length, where GC is derived from the rounded
// GC percentage. Non-nucleotide characters are dropped first.
func MeltingTemperature(raw string) float64 {
	s := seq.Sanitize(raw)
	n := seq.Length(s)
	if MethodFor(n) == MethodWallace {
		return float64(2 * n)
	}
	gc := seq.GCContent(s) * float64(n) / 100
	tm := 64.9 + 41*(gc-16.4)/float64(n)
	return numfmt.Round(tm, numfmt.TemperaturePlaces)
}
