// internal/app/ttest.go
package app

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"labnotex-core/ttest"
	"labnotex/internal/output"
)

func newTTestCmd(r *runner) *cobra.Command {
	var (
		g1, g2         string
		g1File, g2File string
		typ            string
		alpha          float64
		equalVar       bool
		welch          bool
	)
	cmd := &cobra.Command{
		Use:   "ttest",
		Short: "Two-sample t-test (Student, Welch or paired)",
		Long: `Compare two groups of measurements. Values are separated by commas,
semicolons or whitespace. Independent samples use Student's pooled-variance
test by default (--welch for unequal variances); --type paired tests the
per-pair differences.

The p-value uses a normal approximation and the critical value a small
lookup (1.96/2.042 for alpha 0.05, 2.576/2.750 for 0.01, switching at
df > 30). Both are approximations, not exact t-distribution values.`,
		Example: `  labnotex ttest --group1 "23.4,25.1,24.7,26.3,22.9,24.8" --group2 "20.6,21.8,22.7,21.3,23.1,20.9,21.5"
  labnotex ttest --type paired --group1-file before.txt --group2-file after.txt -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw1, err := textInput(g1, g1File, "group 1")
			if err != nil {
				return err
			}
			raw2, err := textInput(g2, g2File, "group 2")
			if err != nil {
				return err
			}
			x, err := ttest.ParseSamples(raw1)
			if err != nil {
				return err
			}
			y, err := ttest.ParseSamples(raw2)
			if err != nil {
				return err
			}
			t, err := ttest.ParseType(typ)
			if err != nil {
				return err
			}

			opt := ttest.Options{Type: t, Alpha: r.cfg.Stats.Alpha, EqualVariance: *r.cfg.Stats.EqualVariance}
			flags := cmd.Flags()
			if flags.Changed("alpha") {
				opt.Alpha = alpha
			} else if err := r.cfg.Stats.Validate(); err != nil {
				return usageError{err}
			}
			if flags.Changed("equal-variance") {
				opt.EqualVariance = equalVar
			}
			if welch {
				opt.EqualVariance = false
			}
			r.log.Debug("ttest", zap.String("type", string(t)), zap.Int("n1", len(x)), zap.Int("n2", len(y)),
				zap.Float64("alpha", opt.Alpha), zap.Bool("equal_variance", opt.EqualVariance))

			res, err := ttest.Run(x, y, opt)
			if err != nil {
				return err
			}
			return r.emit(output.TTest(res))
		},
	}
	f := cmd.Flags()
	f.StringVar(&g1, "group1", "", "group 1 values")
	f.StringVar(&g2, "group2", "", "group 2 values")
	f.StringVar(&g1File, "group1-file", "", "read group 1 values from a file (- for stdin)")
	f.StringVar(&g2File, "group2-file", "", "read group 2 values from a file (- for stdin)")
	f.StringVar(&typ, "type", "independent", "independent | paired")
	f.Float64Var(&alpha, "alpha", 0.05, "significance level (default from config)")
	f.BoolVar(&equalVar, "equal-variance", true, "assume equal variances (default from config)")
	f.BoolVar(&welch, "welch", false, "Welch's test; same as --equal-variance=false")
	return cmd
}
