// core/primer/pair.go
package primer

import (
	"fmt"
	"math"
	"strings"

	"labnotex-core/numfmt"
	"labnotex-core/seq"
)

// MaxTmDiff is the largest forward/reverse Tm gap (°C) still called compatible.
const MaxTmDiff = 5.0

type PairStatus int

const (
	PairCompatible PairStatus = iota
	PairTmMismatch
	PairMissingPrimer
	PairNoTemplate
	PairForwardUnbound
	PairReverseUnbound
	PairWrongOrientation
)

var pairStatusNames = [...]string{
	PairCompatible:       "compatible",
	PairTmMismatch:       "tm_mismatch",
	PairMissingPrimer:    "missing_primer",
	PairNoTemplate:       "no_template",
	PairForwardUnbound:   "forward_unbound",
	PairReverseUnbound:   "reverse_unbound",
	PairWrongOrientation: "wrong_orientation",
}

func (s PairStatus) String() string {
	if int(s) < len(pairStatusNames) {
		return pairStatusNames[s]
	}
	return fmt.Sprintf("PairStatus(%d)", int(s))
}

// PairAnalysis is the outcome of checking one forward/reverse pair against a
// template. Failures are reported through Status and Message, not errors.
type PairAnalysis struct {
	Status     PairStatus
	Compatible bool
	Forward    *Primer // nil when no forward primer was supplied
	Reverse    *Primer
	ForwardPos int // 0-based match of the forward primer, -1 if unknown
	ReversePos int // 0-based match of rc(reverse), -1 if unknown
	// ProductSize is set once both primers bind in the right orientation.
	ProductSize int
	TmDiff      float64
	Message     string
}

// FirstPair returns the first forward and first reverse primer in candidates.
func FirstPair(candidates []Primer) (fwd, rev *Primer) {
	for i := range candidates {
		p := candidates[i]
		switch {
		case p.Direction == Forward && fwd == nil:
			fwd = &p
		case p.Direction == Reverse && rev == nil:
			rev = &p
		}
	}
	return fwd, rev
}

// AnalyzePair pairs the first forward with the first reverse primer from
// candidates and checks binding, orientation and Tm compatibility against
// template. Other combinations are not searched. A primer binds where it
// occurs literally in the template.
func AnalyzePair(candidates []Primer, template string) PairAnalysis {
	return analyzePair(candidates, template, literalBinding)
}

// AnalyzePairIUPAC is AnalyzePair for degenerate primers: an ambiguity code
// in a primer matches any template base it stands for.
func AnalyzePairIUPAC(candidates []Primer, template string) PairAnalysis {
	return analyzePair(candidates, template, FindBinding)
}

func literalBinding(template, oligo string) int {
	return strings.Index(template, strings.ToUpper(oligo))
}

func analyzePair(candidates []Primer, template string, bind func(template, oligo string) int) PairAnalysis {
	fwd, rev := FirstPair(candidates)
	a := PairAnalysis{Forward: fwd, Reverse: rev, ForwardPos: -1, ReversePos: -1}

	if fwd == nil || rev == nil {
		return a.fail(PairMissingPrimer, "at least one forward and one reverse primer are needed")
	}
	a.TmDiff = numfmt.Round(math.Abs(fwd.Tm()-rev.Tm()), numfmt.TemperaturePlaces)

	if strings.TrimSpace(template) == "" {
		return a.fail(PairNoTemplate, "a template sequence is required")
	}
	tpl := seq.SanitizeACGT(template)

	a.ForwardPos = bind(tpl, fwd.Sequence)
	if a.ForwardPos < 0 {
		return a.fail(PairForwardUnbound, fmt.Sprintf("forward primer %s does not bind the template", fwd.Label()))
	}
	a.ReversePos = bind(tpl, seq.ReverseComplement(rev.Sequence, seq.Options{}))
	if a.ReversePos < 0 {
		return a.fail(PairReverseUnbound, fmt.Sprintf("reverse primer %s does not bind the template", rev.Label()))
	}
	if a.ReversePos <= a.ForwardPos {
		return a.fail(PairWrongOrientation, "primers are in the wrong orientation or overlap")
	}

	a.ProductSize = a.ReversePos + rev.Length() - a.ForwardPos
	if a.TmDiff > MaxTmDiff {
		return a.fail(PairTmMismatch, fmt.Sprintf("Tm difference (%s°C) is too large; ideal difference is at most %g°C",
			numfmt.Fixed(a.TmDiff, numfmt.TemperaturePlaces), MaxTmDiff))
	}
	a.Status = PairCompatible
	a.Compatible = true
	a.Message = fmt.Sprintf("primers form a compatible pair; product: %d bp", a.ProductSize)
	return a
}

func (a PairAnalysis) fail(s PairStatus, msg string) PairAnalysis {
	a.Status = s
	a.Compatible = false
	a.Message = msg
	return a
}
