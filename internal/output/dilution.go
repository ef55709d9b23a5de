package output

import (
	"strconv"

	"labnotex-core/dilution"
	"labnotex-core/numfmt"
	"labnotex/pkg/api"
)

func value(x float64, places int32, unit string) api.Value {
	return api.Value{Value: x, Display: numfmt.Fixed(x, places), Unit: unit}
}

// Dilution reports a single C1·V1 = C2·V2 solve.
func Dilution(r dilution.Result) Report {
	v := api.DilutionV1{
		Mode:    string(r.Mode),
		Unknown: r.Unknown,
		Result:  value(r.Value, r.Places, r.Unit),
	}
	t := Table{
		Title:   "Dilution",
		Columns: DilutionColumns,
		Rows:    [][]string{{r.Unknown, v.Result.Display, r.Unit}},
		Notes:   []string{r.Display()},
	}
	if r.Diluent != nil {
		d := value(*r.Diluent, numfmt.VolumePlaces, r.VolumeUnit)
		v.Diluent = &d
		t.Rows = append(t.Rows, []string{"diluent", d.Display, r.VolumeUnit})
		t.Notes = append(t.Notes, "Add diluent: "+d.Display+" "+r.VolumeUnit)
	}
	return Report{Kind: "dilution", Table: t, API: v}
}

// Serial reports a dilution series. Concentrations are shown in
// exponential notation since they span orders of magnitude.
func Serial(s dilution.Serial) Report {
	v := api.SerialV1{Steps: s.NumSteps, Factor: s.Factor, Summary: s.Summary()}
	t := Table{Title: "Serial dilution", Columns: SerialColumns, Notes: []string{s.Summary()}}
	for _, st := range s.Steps {
		conc := api.Value{Value: st.Concentration, Display: numfmt.Exponential(st.Concentration, 2), Unit: s.ConcUnit}
		stock := value(st.StockVolume, numfmt.VolumePlaces, s.VolumeUnit)
		dil := value(st.DiluentVolume, numfmt.VolumePlaces, s.VolumeUnit)
		v.Series = append(v.Series, api.SerialStepV1{Step: st.Index, Concentration: conc, StockVolume: stock, DiluentVolume: dil})
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(st.Index), conc.Display, stock.Display, dil.Display, s.ConcUnit, s.VolumeUnit,
		})
	}
	return Report{Kind: "serial", Table: t, API: v}
}

// Molarity reports one of the molarity calculator modes. places follows
// the unit: 4 for mM and mg, 2 for mL.
func Molarity(mode string, result float64, places int32, unit, formula string, inputs map[string]string) Report {
	v := api.MolarityV1{Mode: mode, Result: value(result, places, unit), Inputs: inputs, Formula: formula}
	return Report{
		Kind: "molarity",
		Table: Table{
			Title:   "Molarity",
			Columns: MolarityColumns,
			Rows:    [][]string{{mode, v.Result.Display, unit}},
			Notes:   []string{v.Result.Display + " " + unit},
		},
		API: v,
	}
}

// Substances lists the built-in molecular weight table.
func Substances(list []dilution.Substance) Report {
	t := Table{Title: "Common substances", Columns: SubstanceColumns}
	rows := make([]api.SubstanceV1, 0, len(list))
	for _, s := range list {
		t.Rows = append(t.Rows, []string{s.Formula, s.Name, numfmt.Fixed(s.MW, 2)})
		rows = append(rows, api.SubstanceV1{Formula: s.Formula, Name: s.Name, MW: s.MW})
	}
	return Report{Kind: "substances", Table: t, API: rows}
}
