// internal/app/dilute.go
package app

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"labnotex-core/dilution"
	"labnotex-core/numfmt"
	"labnotex/internal/output"
)

func newDiluteCmd(r *runner) *cobra.Command {
	var (
		q    dilution.Query
		mode string
	)
	cmd := &cobra.Command{
		Use:   "dilute",
		Short: "Solve C1·V1 = C2·V2 for one unknown",
		Long: `Solve C1·V1 = C2·V2 for the quantity selected by --mode; the other three
must be given. Units are labels only and are never converted. For every mode
except findV2 the diluent volume V2 − V1 is reported when it is not negative.`,
		Example: `  labnotex dilute --c1 10 --c2 2 --v1 5
  labnotex dilute --mode C2 --c1 10 --v1 5 --v2 25 --conc-unit mM`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := dilution.ParseMode(mode)
			if err != nil {
				return err
			}
			q.Mode = m
			q.ConcUnit = unit(q.ConcUnit, r.cfg.Units.Concentration)
			q.VolumeUnit = unit(q.VolumeUnit, r.cfg.Units.Volume)
			r.log.Debug("dilute", zap.String("mode", string(m)),
				zap.String("c1", q.C1), zap.String("c2", q.C2), zap.String("v1", q.V1), zap.String("v2", q.V2))

			res, err := dilution.Solve(q)
			if err != nil {
				return err
			}
			return r.emit(output.Dilution(res))
		},
	}
	f := cmd.Flags()
	f.StringVar(&mode, "mode", "findV2", "unknown to solve: findV2 | findC2 | findV1 | findC1 (or V2, C2, V1, C1)")
	f.StringVar(&q.C1, "c1", "", "stock concentration C1")
	f.StringVar(&q.C2, "c2", "", "final concentration C2")
	f.StringVar(&q.V1, "v1", "", "stock volume V1")
	f.StringVar(&q.V2, "v2", "", "final volume V2")
	f.StringVar(&q.ConcUnit, "conc-unit", "", "concentration unit label (default from config)")
	f.StringVar(&q.VolumeUnit, "volume-unit", "", "volume unit label (default from config)")
	return cmd
}

func newSerialCmd(r *runner) *cobra.Command {
	var q dilution.SerialQuery
	cmd := &cobra.Command{
		Use:   "serial",
		Short: "Plan a constant-factor serial dilution",
		Long: `Plan the fewest dilution steps of a constant factor that take the initial
concentration to or below the target. Step 0 is the undiluted stock; every
later step transfers --transfer into --total − --transfer of diluent.`,
		Example: `  labnotex serial --initial 1 --target 0.001 --factor 10 --transfer 1 --total 10
  labnotex serial --initial 1 --target 0.001 --factor 2 --transfer 5 --total 10 -o xlsx --out series.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q.ConcUnit = unit(q.ConcUnit, r.cfg.Units.Concentration)
			q.VolumeUnit = unit(q.VolumeUnit, r.cfg.Units.Volume)
			if !cmd.Flags().Changed("max-steps") {
				if err := r.cfg.Serial.Validate(); err != nil {
					return usageError{err}
				}
				q.MaxSteps = r.cfg.Serial.MaxSteps
			}
			r.log.Debug("serial", zap.String("initial", q.InitialConc), zap.String("target", q.TargetConc),
				zap.String("factor", q.Factor), zap.Int("max_steps", q.MaxSteps))

			s, err := dilution.SolveSerial(q)
			if err != nil {
				return err
			}
			return r.emit(output.Serial(s))
		},
	}
	f := cmd.Flags()
	f.StringVar(&q.InitialConc, "initial", "", "initial (stock) concentration")
	f.StringVar(&q.TargetConc, "target", "", "target concentration")
	f.StringVar(&q.Factor, "factor", "10", "dilution factor per step (> 1)")
	f.StringVar(&q.TransferVolume, "transfer", "", "volume transferred to the next tube")
	f.StringVar(&q.TotalVolume, "total", "", "final volume in each tube")
	f.StringVar(&q.ConcUnit, "conc-unit", "", "concentration unit label (default from config)")
	f.StringVar(&q.VolumeUnit, "volume-unit", "", "volume unit label (default from config)")
	f.IntVar(&q.MaxSteps, "max-steps", dilution.DefaultMaxSteps, "refuse series longer than this (default from config)")
	return cmd
}

func newMolarityCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "molarity",
		Short: "Molarity, mass and stock-volume calculators",
		Long: `Molarity calculators working in mM, mg and mL. --mw takes a molecular
weight in g/mol or the name/formula of a common substance (see
"labnotex molarity substances").`,
	}

	var mass, mw, vol string
	conc := &cobra.Command{
		Use:     "conc",
		Short:   "Molarity (mM) of a mass dissolved in a volume",
		Example: "  labnotex molarity conc --mass 100 --mw NaCl --volume 500",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := dilution.MassToMolarity(mass, mw, vol)
			if err != nil {
				return err
			}
			return r.emit(output.Molarity("molarity", v, numfmt.ConcentrationPlaces, "mM",
				"c = m / (MW · V)", map[string]string{"mass_mg": mass, "mw": mw, "volume_ml": vol}))
		},
	}
	conc.Flags().StringVar(&mass, "mass", "", "mass in mg")
	conc.Flags().StringVar(&mw, "mw", "", "molecular weight (g/mol) or substance")
	conc.Flags().StringVar(&vol, "volume", "", "volume in mL")

	var mm, mw2, vol2 string
	massCmd := &cobra.Command{
		Use:     "mass",
		Short:   "Mass (mg) needed for a molarity in a volume",
		Example: "  labnotex molarity mass --molarity 10 --mw 58.44 --volume 1000",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := dilution.MolarityToMass(mm, mw2, vol2)
			if err != nil {
				return err
			}
			return r.emit(output.Molarity("mass", v, numfmt.ConcentrationPlaces, "mg",
				"m = c · MW · V", map[string]string{"molarity_mm": mm, "mw": mw2, "volume_ml": vol2}))
		},
	}
	massCmd.Flags().StringVar(&mm, "molarity", "", "molarity in mM")
	massCmd.Flags().StringVar(&mw2, "mw", "", "molecular weight (g/mol) or substance")
	massCmd.Flags().StringVar(&vol2, "volume", "", "volume in mL")

	var stockC, finalC, finalV string
	stock := &cobra.Command{
		Use:     "stock",
		Short:   "Volume (mL) of stock needed for a final concentration",
		Example: "  labnotex molarity stock --stock 1000 --final 10 --final-volume 50",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := dilution.StockVolume(stockC, finalC, finalV)
			if err != nil {
				return err
			}
			return r.emit(output.Molarity("stock", v, numfmt.VolumePlaces, "mL",
				"V_stock = c_final · V_final / c_stock",
				map[string]string{"stock": stockC, "final": finalC, "final_volume_ml": finalV}))
		},
	}
	stock.Flags().StringVar(&stockC, "stock", "", "stock concentration")
	stock.Flags().StringVar(&finalC, "final", "", "final concentration (same unit as --stock)")
	stock.Flags().StringVar(&finalV, "final-volume", "", "final volume in mL")

	subs := &cobra.Command{
		Use:   "substances",
		Short: "List the built-in molecular weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.emit(output.Substances(dilution.CommonSubstances()))
		},
	}

	cmd.AddCommand(conc, massCmd, stock, subs)
	return cmd
}
