package ttest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labnotex-core/calcerr"
)

var (
	indep1  = []float64{23.4, 25.1, 24.7, 26.3, 22.9, 24.8}
	indep2  = []float64{20.6, 21.8, 22.7, 21.3, 23.1, 20.9, 21.5}
	paired1 = []float64{5.2, 4.8, 6.1, 5.3, 4.9, 5.7}
	paired2 = []float64{4.8, 4.2, 5.4, 4.6, 4.3, 5.0}
)

const eps = 1e-9

func TestComputeGroupStats(t *testing.T) {
	g, err := ComputeGroupStats(indep1)
	require.NoError(t, err)
	assert.Equal(t, 6, g.N)
	assert.InDelta(t, 24.533333333333335, g.Mean, eps)
	assert.InDelta(t, 1.224200419321391, g.StdDev, eps)

	_, err = ComputeGroupStats([]float64{1})
	assert.True(t, calcerr.IsValidation(err))
	_, err = ComputeGroupStats(nil)
	assert.True(t, calcerr.IsValidation(err))
}

func TestRunStudent(t *testing.T) {
	r, err := Run(indep1, indep2, Options{Type: Independent, EqualVariance: true, Alpha: 0.05})
	require.NoError(t, err)
	assert.Equal(t, MethodStudent, r.Method)
	assert.Equal(t, 11, r.DegreesOfFreedom)
	assert.InDelta(t, 4.774858167705083, r.TStatistic, eps)
	assert.InDelta(t, 2.8333333333333357, r.MeanDifference, eps)
	assert.InDelta(t, 0.5933858627459728, r.StandardError, eps)
	assert.Equal(t, 2.042, r.TCritical)
	assert.InDelta(t, 1.6216394016060593, r.CILow, eps)
	assert.InDelta(t, 4.045027265060612, r.CIHigh, eps)
	assert.Less(t, r.PValue, 1e-4)
	assert.True(t, r.Significant)
	assert.InDelta(t, 95.0, r.ConfidenceLevel(), eps)
}

func TestRunWelch(t *testing.T) {
	r, err := Run(indep1, indep2, Options{Type: Independent, EqualVariance: false, Alpha: 0.05})
	require.NoError(t, err)
	assert.Equal(t, MethodWelch, r.Method)
	assert.Equal(t, 9, r.DegreesOfFreedom, "Welch-Satterthwaite 9.18 floors to 9")
	assert.InDelta(t, 4.662373738210276, r.TStatistic, eps)
	assert.True(t, r.Significant)
}

func TestRunPaired(t *testing.T) {
	r, err := Run(paired1, paired2, Options{Type: Paired, Alpha: 0.05})
	require.NoError(t, err)
	assert.Equal(t, MethodPaired, r.Method)
	assert.Equal(t, 5, r.DegreesOfFreedom)
	require.NotNil(t, r.Differences)
	assert.InDelta(t, 0.6166666666666667, r.MeanDifference, eps)
	assert.InDelta(t, 12.920960471737216, r.TStatistic, 1e-6)
	assert.True(t, r.Significant)
}

func TestRunNotSignificant(t *testing.T) {
	r, err := Run([]float64{1, 2, 3, 4, 5}, []float64{2, 3, 4, 5, 6}, Options{Type: Independent, EqualVariance: true, Alpha: 0.05})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, r.TStatistic, eps)
	assert.InDelta(t, 0.34577848100940334, r.PValue, 1e-6)
	assert.False(t, r.Significant)
	assert.Less(t, r.CILow, 0.0)
	assert.Greater(t, r.CIHigh, 0.0)
}

func TestRunValidation(t *testing.T) {
	tests := []struct {
		name   string
		g1, g2 []float64
		opt    Options
		want   string
	}{
		{"alpha zero", indep1, indep2, Options{Alpha: 0}, "between 0 and 1"},
		{"alpha one", indep1, indep2, Options{Alpha: 1}, "between 0 and 1"},
		{"group1 short", []float64{1}, indep2, Options{Alpha: 0.05}, "group 1 needs at least two"},
		{"group2 short", indep1, []float64{}, Options{Alpha: 0.05}, "group 2 needs at least two"},
		{"paired unequal", indep1, indep2, Options{Type: Paired, Alpha: 0.05}, "same number of values"},
		{"zero spread", []float64{2, 2, 2}, []float64{3, 3}, Options{EqualVariance: true, Alpha: 0.05}, "zero variance"},
		{"zero spread welch", []float64{2, 2, 2}, []float64{3, 3}, Options{Alpha: 0.05}, "zero variance"},
		{"identical differences", []float64{2, 3, 4}, []float64{1, 2, 3}, Options{Type: Paired, Alpha: 0.05}, "identical"},
		{"bad type", indep1, indep2, Options{Type: "anova", Alpha: 0.05}, "unknown test type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(tt.g1, tt.g2, tt.opt)
			require.Error(t, err)
			assert.True(t, calcerr.IsValidation(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRunIdempotent(t *testing.T) {
	opt := Options{Type: Independent, Alpha: 0.01}
	a, err := Run(indep1, indep2, opt)
	require.NoError(t, err)
	b, err := Run(indep1, indep2, opt)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseSamples(t *testing.T) {
	got, err := ParseSamples(" 23.4, 25.1;24.7\n26.3\t22.9  24.8 ")
	require.NoError(t, err)
	assert.Equal(t, indep1, got)

	empty, err := ParseSamples("  \n ")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = ParseSamples("1, 2, x3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x3" is not a valid number`)
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("Paired")
	require.NoError(t, err)
	assert.Equal(t, Paired, typ)
	typ, err = ParseType("")
	require.NoError(t, err)
	assert.Equal(t, Independent, typ)
	_, err = ParseType("anova")
	assert.Error(t, err)
}
