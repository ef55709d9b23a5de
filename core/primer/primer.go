// core/primer/primer.go
package primer

import (
	"fmt"
	"strings"

	"labnotex-core/calcerr"
	"labnotex-core/seq"
)

type Direction string

const (
	Forward Direction = "forward"
	Reverse Direction = "reverse"
)

// ParseDirection accepts forward|reverse|fwd|rev|f|r in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "fwd", "f":
		return Forward, nil
	case "reverse", "rev", "r":
		return Reverse, nil
	}
	return "", calcerr.Validation("direction", "invalid primer direction %q (want forward or reverse)", s)
}

// Primer is an oligo as entered by the user. Tm, GC% and length are always
// derived from Sequence.
type Primer struct {
	ID        string
	Name      string
	Sequence  string // 5'→3', nucleotide letters only, case as typed
	Direction Direction
}

// New sanitizes raw and builds a Primer. An empty name becomes the ID.
func New(id, name, raw string, dir Direction) (Primer, error) {
	s := seq.Sanitize(raw)
	if s == "" {
		return Primer{}, calcerr.Validation("sequence", "primer %s has no nucleotide sequence", label(id, name))
	}
	if dir != Forward && dir != Reverse {
		return Primer{}, calcerr.Validation("direction", "primer %s: invalid direction %q", label(id, name), dir)
	}
	if name == "" {
		name = id
	}
	return Primer{ID: id, Name: name, Sequence: s, Direction: dir}, nil
}

func (p Primer) Length() int { return seq.Length(p.Sequence) }
func (p Primer) GCContent() float64 { return seq.GCContent(p.Sequence) }
func (p Primer) Tm() float64 { return MeltingTemperature(p.Sequence) }
func (p Primer) TmMethod() TmMethod { return MethodFor(p.Length()) }
func (p Primer) Label() string { return label(p.ID, p.Name) }

func label(id, name string) string {
	switch {
	case name != "":
		return name
	case id != "":
		return id
	default:
		return "(unnamed)"
	}
}

// DefaultName is the name given to the n-th (1-based) primer entered without one.
func DefaultName(n int) string { return fmt.Sprintf("Primer %d", n) }
