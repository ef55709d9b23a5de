// Package ttest runs Student, Welch and paired two-sample t-tests.
//
// Critical values and p-values are approximations (fixed constants and a
// normal-CDF stand-in for the t distribution), not exact table values.
package ttest

import (
	"math"
	"regexp"

	"labnotex-core/calcerr"
	"labnotex-core/numfmt"
)

// GroupStats summarizes one sample.
type GroupStats struct {
	Mean   float64
	StdDev float64 // sample standard deviation (n−1)
	N      int
}

func (g GroupStats) Variance() float64 { return g.StdDev * g.StdDev }

// ComputeGroupStats needs at least two values.
func ComputeGroupStats(values []float64) (GroupStats, error) {
	n := len(values)
	if n < 2 {
		return GroupStats{}, calcerr.Validation("values", "at least two values are required, got %d", n)
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)
	ss := 0.0
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return GroupStats{Mean: mean, StdDev: math.Sqrt(ss / float64(n-1)), N: n}, nil
}

var sampleSep = regexp.MustCompile(`[\n,;\s]+`)

// ParseSamples reads numbers separated by commas, semicolons or whitespace.
func ParseSamples(raw string) ([]float64, error) {
	var out []float64
	for _, tok := range sampleSep.Split(raw, -1) {
		if tok == "" {
			continue
		}
		v, ok := numfmt.Parse(tok)
		if !ok {
			return nil, calcerr.Validation("values", "%q is not a valid number", tok)
		}
		out = append(out, v)
	}
	return out, nil
}
