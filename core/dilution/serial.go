package dilution

import (
	"fmt"
	"math"

	"labnotex-core/calcerr"
	"labnotex-core/numfmt"
)

// DefaultMaxSteps bounds how long a serial dilution schedule may get.
const DefaultMaxSteps = 1000

// SerialQuery is a serial dilution request as typed by the user.
type SerialQuery struct {
	InitialConc    string
	TargetConc     string
	Factor         string
	TransferVolume string
	TotalVolume    string
	ConcUnit       string
	VolumeUnit     string
	// MaxSteps caps the schedule length; 0 means DefaultMaxSteps.
	MaxSteps int
}

// Step is one tube of the series. Step 0 is the undiluted stock.
type Step struct {
	Index         int
	Concentration float64
	StockVolume   float64
	DiluentVolume float64
}

type Serial struct {
	Steps      []Step
	NumSteps   int // dilution steps, excluding the stock
	Factor     float64
	ConcUnit   string
	VolumeUnit string
}

// Final is the last, most dilute step.
func (s Serial) Final() Step { return s.Steps[len(s.Steps)-1] }

// Summary is the one-line description of the series.
func (s Serial) Summary() string {
	return fmt.Sprintf("A %d-step dilution series reaches a final concentration of %s %s",
		s.NumSteps, numfmt.Exponential(s.Final().Concentration, 2), s.ConcUnit)
}

// SolveSerial plans the fewest constant-factor dilutions that bring the
// initial concentration to or below the target.
func SolveSerial(q SerialQuery) (Serial, error) {
	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"initial concentration", q.InitialConc, new(float64)},
		{"target concentration", q.TargetConc, new(float64)},
		{"dilution factor", q.Factor, new(float64)},
		{"transfer volume", q.TransferVolume, new(float64)},
		{"total volume", q.TotalVolume, new(float64)},
	}
	for _, f := range fields {
		v, ok := numfmt.Parse(f.raw)
		if !ok {
			return Serial{}, calcerr.Validation(f.name, "enter valid numbers for all fields (%s is %q)", f.name, f.raw)
		}
		*f.dst = v
	}
	initial, target, factor := *fields[0].dst, *fields[1].dst, *fields[2].dst
	transfer, total := *fields[3].dst, *fields[4].dst

	switch {
	case target >= initial:
		return Serial{}, calcerr.Validation("target concentration", "initial concentration must be greater than target concentration")
	case target <= 0:
		return Serial{}, calcerr.Validation("target concentration", "target concentration must be greater than 0")
	case factor <= 1:
		return Serial{}, calcerr.Validation("dilution factor", "dilution factor must be greater than 1")
	case transfer <= 0 || total <= 0:
		return Serial{}, calcerr.Validation("transfer volume", "volumes must be greater than 0")
	case transfer > total:
		return Serial{}, calcerr.Validation("transfer volume", "transfer volume must not exceed total volume")
	}

	maxSteps := q.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	// Logs are taken separately so extreme ratios do not underflow to 0.
	n := math.Ceil((math.Log(target) - math.Log(initial)) / math.Log(1/factor))
	if math.IsNaN(n) || n <= 0 {
		return Serial{}, calcerr.Infeasible("no serial dilution is possible with these parameters")
	}
	if math.IsInf(n, 0) || n > float64(maxSteps) {
		return Serial{}, calcerr.Infeasible("series would need %s steps; the limit is %d", numfmt.Fixed(n, 0), maxSteps)
	}

	out := Serial{
		NumSteps:   int(n),
		Factor:     factor,
		ConcUnit:   q.ConcUnit,
		VolumeUnit: q.VolumeUnit,
		Steps:      make([]Step, 0, int(n)+1),
	}
	out.Steps = append(out.Steps, Step{Index: 0, Concentration: initial, StockVolume: total})
	for i := 1; i <= out.NumSteps; i++ {
		c := initial / math.Pow(factor, float64(i))
		if c == 0 {
			// factor^i overflowed; keep dividing the previous step instead.
			c = out.Steps[i-1].Concentration / factor
		}
		out.Steps = append(out.Steps, Step{
			Index:         i,
			Concentration: c,
			StockVolume:   transfer,
			DiluentVolume: total - transfer,
		})
	}
	return out, nil
}
