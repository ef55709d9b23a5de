package ttest

import (
	"fmt"
	"math"
	"strings"

	"labnotex-core/calcerr"
)

type Type string

const (
	Independent Type = "independent"
	Paired      Type = "paired"
)

func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "independent", "unpaired", "":
		return Independent, nil
	case "paired":
		return Paired, nil
	}
	return "", calcerr.Validation("type", "unknown test type %q (want independent or paired)", s)
}

// Method names the variant that actually ran.
type Method string

const (
	MethodStudent Method = "student"
	MethodWelch   Method = "welch"
	MethodPaired  Method = "paired"
)

type Options struct {
	Type          Type
	EqualVariance bool // independent only: Student (true) or Welch (false)
	Alpha         float64
}

type Result struct {
	Method           Method
	TStatistic       float64
	DegreesOfFreedom int
	PValue           float64 // approximate, see PValue
	MeanDifference   float64
	StandardError    float64
	TCritical        float64
	CILow, CIHigh    float64
	Significant      bool
	Alpha            float64
	Group1, Group2   GroupStats
	Differences      *GroupStats // paired only
}

// ConfidenceLevel is 1 − alpha as a percentage, e.g. 95.
func (r Result) ConfidenceLevel() float64 { return (1 - r.Alpha) * 100 }

// Run compares group1 against group2.
func Run(group1, group2 []float64, opt Options) (Result, error) {
	if !(opt.Alpha > 0 && opt.Alpha < 1) {
		return Result{}, calcerr.Validation("alpha", "significance level must be between 0 and 1")
	}
	if len(group1) < 2 {
		return Result{}, calcerr.Validation("group1", "group 1 needs at least two values")
	}
	if len(group2) < 2 {
		return Result{}, calcerr.Validation("group2", "group 2 needs at least two values")
	}
	typ := opt.Type
	if typ == "" {
		typ = Independent
	}
	if typ == Paired && len(group1) != len(group2) {
		return Result{}, calcerr.Validation("group2", "a paired test needs the same number of values in both groups (%d vs %d)", len(group1), len(group2))
	}

	g1, _ := ComputeGroupStats(group1)
	g2, _ := ComputeGroupStats(group2)
	r := Result{Group1: g1, Group2: g2, Alpha: opt.Alpha, MeanDifference: g1.Mean - g2.Mean}
	n1, n2 := float64(g1.N), float64(g2.N)

	switch {
	case typ == Paired:
		diffs := make([]float64, len(group1))
		for i := range group1 {
			diffs[i] = group1[i] - group2[i]
		}
		ds, _ := ComputeGroupStats(diffs)
		r.Method = MethodPaired
		r.Differences = &ds
		r.MeanDifference = ds.Mean
		r.StandardError = ds.StdDev / math.Sqrt(float64(ds.N))
		r.DegreesOfFreedom = ds.N - 1
	case typ == Independent && opt.EqualVariance:
		r.Method = MethodStudent
		r.DegreesOfFreedom = g1.N + g2.N - 2
		pooled := ((n1-1)*g1.Variance() + (n2-1)*g2.Variance()) / float64(r.DegreesOfFreedom)
		r.StandardError = math.Sqrt(pooled * (1/n1 + 1/n2))
	case typ == Independent:
		r.Method = MethodWelch
		v1, v2 := g1.Variance()/n1, g2.Variance()/n2
		r.StandardError = math.Sqrt(v1 + v2)
		if r.StandardError > 0 {
			r.DegreesOfFreedom = int(math.Floor((v1 + v2) * (v1 + v2) / (v1*v1/(n1-1) + v2*v2/(n2-1))))
		}
	default:
		return Result{}, calcerr.Validation("type", "unknown test type %q", typ)
	}

	if r.StandardError == 0 {
		return Result{}, calcerr.Validation("values", "%s", zeroSpreadMessage(r.Method))
	}

	r.TStatistic = r.MeanDifference / r.StandardError
	r.TCritical = TCritical(r.DegreesOfFreedom, opt.Alpha)
	margin := r.TCritical * r.StandardError
	r.CILow, r.CIHigh = r.MeanDifference-margin, r.MeanDifference+margin
	r.PValue = PValue(r.TStatistic, r.DegreesOfFreedom)
	r.Significant = r.PValue < opt.Alpha
	return r, nil
}

func zeroSpreadMessage(m Method) string {
	if m == MethodPaired {
		return "all paired differences are identical; the t statistic is undefined"
	}
	return fmt.Sprintf("both groups have zero variance; the %s t statistic is undefined", m)
}
