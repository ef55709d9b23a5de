// Package dilution solves C1·V1 = C2·V2, plans serial dilutions and does
// the mass/molarity conversions used when preparing solutions.
//
// Units are labels only: whatever concentration or volume unit the caller
// types in is echoed back, never converted.
package dilution

import (
	"fmt"
	"strings"

	"labnotex-core/calcerr"
	"labnotex-core/numfmt"
)

// Mode names the unknown of C1·V1 = C2·V2.
type Mode string

const (
	FindV2 Mode = "findV2"
	FindC2 Mode = "findC2"
	FindV1 Mode = "findV1"
	FindC1 Mode = "findC1"
)

// ParseMode accepts the mode names or the bare unknown ("v2", "C1", ...).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "findv2", "v2":
		return FindV2, nil
	case "findc2", "c2":
		return FindC2, nil
	case "findv1", "v1":
		return FindV1, nil
	case "findc1", "c1":
		return FindC1, nil
	}
	return "", calcerr.Validation("mode", "unknown dilution mode %q (want V2, C2, V1 or C1)", s)
}

// Query is one C1V1=C2V2 problem as typed by the user. The field named by
// Mode is ignored.
type Query struct {
	Mode           Mode
	C1, C2, V1, V2 string
	ConcUnit       string
	VolumeUnit     string
}

// Result is the solved unknown. Diluent is set when both volumes are known
// or derived and V2 − V1 is not negative.
type Result struct {
	Mode       Mode
	Unknown    string // "V2", "C2", "V1" or "C1"
	Value      float64
	Unit       string
	Places     int32
	Diluent    *float64
	VolumeUnit string
}

// Display renders the value line, e.g. "V2 = 25.00 mL".
func (r Result) Display() string {
	return fmt.Sprintf("%s = %s %s", r.Unknown, numfmt.Fixed(r.Value, r.Places), r.Unit)
}

func (r Result) String() string {
	s := r.Display()
	if r.Diluent != nil {
		s += fmt.Sprintf("\n\nAdd diluent: %s %s", numfmt.Fixed(*r.Diluent, numfmt.VolumePlaces), r.VolumeUnit)
	}
	return s
}

type operand struct {
	name string
	raw  string
}

// Solve rearranges C1·V1 = C2·V2 for q.Mode.
func Solve(q Query) (Result, error) {
	var (
		known   []operand
		divisor string
	)
	switch q.Mode {
	case FindV2:
		known, divisor = []operand{{"C1", q.C1}, {"C2", q.C2}, {"V1", q.V1}}, "C2"
	case FindC2:
		known, divisor = []operand{{"C1", q.C1}, {"V1", q.V1}, {"V2", q.V2}}, "V2"
	case FindV1:
		known, divisor = []operand{{"C1", q.C1}, {"C2", q.C2}, {"V2", q.V2}}, "C1"
	case FindC1:
		known, divisor = []operand{{"C2", q.C2}, {"V1", q.V1}, {"V2", q.V2}}, "V1"
	default:
		return Result{}, calcerr.Validation("mode", "unknown dilution mode %q", q.Mode)
	}

	vals := make(map[string]float64, 4)
	names := make([]string, 0, len(known))
	bad := false
	for _, k := range known {
		names = append(names, k.name)
		v, ok := numfmt.Parse(k.raw)
		if !ok {
			bad = true
			continue
		}
		vals[k.name] = v
	}
	if bad {
		return Result{}, calcerr.Validation(strings.ToLower(names[0]), "enter valid numbers for %s", joinNames(names))
	}
	if vals[divisor] == 0 {
		return Result{}, calcerr.Validation(strings.ToLower(divisor), "%s must not be 0", divisor)
	}

	r := Result{Mode: q.Mode, VolumeUnit: q.VolumeUnit}
	c1, c2, v1, v2 := vals["C1"], vals["C2"], vals["V1"], vals["V2"]
	switch q.Mode {
	case FindV2:
		r.Unknown, r.Unit, r.Places = "V2", q.VolumeUnit, numfmt.VolumePlaces
		r.Value = c1 * v1 / c2
	case FindC2:
		r.Unknown, r.Unit, r.Places = "C2", q.ConcUnit, numfmt.ConcentrationPlaces
		r.Value = c1 * v1 / v2
	case FindV1:
		r.Unknown, r.Unit, r.Places = "V1", q.VolumeUnit, numfmt.VolumePlaces
		r.Value = c2 * v2 / c1
		v1 = r.Value
	case FindC1:
		r.Unknown, r.Unit, r.Places = "C1", q.ConcUnit, numfmt.ConcentrationPlaces
		r.Value = c2 * v2 / v1
	}

	// A negative diluent is dropped rather than reported as an error.
	if q.Mode != FindV2 {
		if d := v2 - v1; d >= 0 {
			r.Diluent = &d
		}
	}
	return r, nil
}

func joinNames(n []string) string {
	switch len(n) {
	case 0:
		return ""
	case 1:
		return n[0]
	}
	return strings.Join(n[:len(n)-1], ", ") + " and " + n[len(n)-1]
}
