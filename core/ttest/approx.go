package ttest

import "math"

// TCritical approximates the two-sided critical t value.
//
// alpha 0.05 and 0.01 use fixed constants that switch at df > 30; any other
// alpha uses -0.862 + sqrt(0.743 − 2.404·ln α) regardless of df. The step
// at df = 30 is inherited behaviour, not a statistical property.
func TCritical(df int, alpha float64) float64 {
	large := df > 30
	switch alpha {
	case 0.05:
		if large {
			return 1.96
		}
		return 2.042
	case 0.01:
		if large {
			return 2.576
		}
		return 2.750
	}
	return -0.862 + math.Sqrt(0.743-2.404*math.Log(alpha))
}

// PValue approximates the two-sided p-value for |t| with df degrees of
// freedom using the normal CDF. For df ≤ 30 the statistic is first scaled
// by sqrt(df/(df+1)).
func PValue(t float64, df int) float64 {
	t = math.Abs(t)
	if df > 30 {
		return 2 * (1 - NormalCDF(t))
	}
	d := float64(df)
	return 2 * (1 - NormalCDF(t*math.Sqrt(d/(d+1))))
}

// NormalCDF is the Abramowitz–Stegun 26.2.17 approximation of Φ(x).
func NormalCDF(x float64) float64 {
	t := 1 / (1 + 0.2316419*math.Abs(x))
	d := 0.3989423 * math.Exp(-x*x/2)
	p := d * t * (0.3193815 + t*(-0.3565638+t*(1.781478+t*(-1.821256+t*1.330274))))
	if x > 0 {
		return 1 - p
	}
	return p
}
