// internal/output/stats.go
package output

import (
	"fmt"
	"strconv"

	"labnotex-core/numfmt"
	"labnotex-core/ttest"
	"labnotex/pkg/api"
)

// PDisplay renders an approximate p-value; anything under 0.001 is
// shown as "< 0.001".
func PDisplay(p float64) string {
	if p < 0.001 {
		return "< 0.001"
	}
	return numfmt.Fixed(p, numfmt.StatisticPlaces)
}

func stat(x float64) string { return numfmt.Fixed(x, numfmt.StatisticPlaces) }

func toAPIGroup(g ttest.GroupStats) api.GroupV1 {
	return api.GroupV1{N: g.N, Mean: g.Mean, StdDev: g.StdDev}
}

// TTest reports a two-sample t-test as statistic/value rows.
func TTest(r ttest.Result) Report {
	v := api.TTestV1{
		Method:           string(r.Method),
		TStatistic:       r.TStatistic,
		DegreesOfFreedom: r.DegreesOfFreedom,
		PValue:           r.PValue,
		MeanDifference:   r.MeanDifference,
		StandardError:    r.StandardError,
		TCritical:        r.TCritical,
		ConfidenceLevel:  r.ConfidenceLevel(),
		CI:               [2]float64{r.CILow, r.CIHigh},
		Significant:      r.Significant,
		Alpha:            r.Alpha,
		Group1:           toAPIGroup(r.Group1),
		Group2:           toAPIGroup(r.Group2),
	}
	if r.Differences != nil {
		d := toAPIGroup(*r.Differences)
		v.Differences = &d
	}

	level := numfmt.Fixed(r.ConfidenceLevel(), numfmt.PercentPlaces)
	rows := [][]string{
		{"method", string(r.Method)},
		{"group1_n", strconv.Itoa(r.Group1.N)},
		{"group1_mean", stat(r.Group1.Mean)},
		{"group1_sd", stat(r.Group1.StdDev)},
		{"group2_n", strconv.Itoa(r.Group2.N)},
		{"group2_mean", stat(r.Group2.Mean)},
		{"group2_sd", stat(r.Group2.StdDev)},
		{"mean_difference", stat(r.MeanDifference)},
		{"standard_error", stat(r.StandardError)},
		{"t", stat(r.TStatistic)},
		{"df", strconv.Itoa(r.DegreesOfFreedom)},
		{"p_approx", PDisplay(r.PValue)},
		{"t_critical", stat(r.TCritical)},
		{"ci_level", level},
		{"ci_low", stat(r.CILow)},
		{"ci_high", stat(r.CIHigh)},
		{"significant", strconv.FormatBool(r.Significant)},
	}
	verdict := "not statistically significantly different"
	if r.Significant {
		verdict = "statistically significantly different"
	}
	p := PDisplay(r.PValue)
	if r.PValue >= 0.001 {
		p = "= " + p
	}
	notes := []string{
		fmt.Sprintf("The means are %s (p %s).", verdict, p),
		fmt.Sprintf("%s%% confidence interval: [%s, %s]", level, stat(r.CILow), stat(r.CIHigh)),
		"p-value and critical value are approximations, not exact t-distribution values.",
	}
	return Report{Kind: "ttest", Table: Table{Title: "t-test", Columns: TTestColumns, Rows: rows, Notes: notes}, API: v}
}
