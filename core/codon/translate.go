package codon

import (
	"iter"
	"strconv"
	"strings"
	"unicode"

	"labnotex-core/calcerr"
)

type SequenceType string

const (
	DNA SequenceType = "dna"
	RNA SequenceType = "rna"
)

func ParseSequenceType(s string) (SequenceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dna", "":
		return DNA, nil
	case "rna":
		return RNA, nil
	}
	return "", calcerr.Validation("type", "unknown sequence type %q (want dna or rna)", s)
}

// ParseFrame accepts "1", "2" or "3".
func ParseFrame(s string) (int, error) {
	f, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || f < 1 || f > 3 {
		return 0, calcerr.Validation("frame", "reading frame must be 1, 2 or 3, got %q", s)
	}
	return f, nil
}

// Normalize strips whitespace, uppercases and, for DNA, rewrites T as U.
func Normalize(raw string, typ SequenceType) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		r = unicode.ToUpper(r)
		if typ == DNA && r == 'T' {
			r = 'U'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Codons yields the complete triplets of an already normalized RNA string,
// starting at frame-1. Triplets are counted in characters, not bytes, so a
// stray multibyte character becomes part of one codon. A trailing partial
// codon is dropped. The sequence can be ranged over any number of times.
func Codons(rna string, frame int) iter.Seq[string] {
	return func(yield func(string) bool) {
		rs := []rune(rna)
		for i := frame - 1; i+3 <= len(rs); i += 3 {
			if !yield(string(rs[i : i+3])) {
				return
			}
		}
	}
}

// Translation pairs each codon with its amino acid, one to one.
type Translation struct {
	Type       SequenceType
	Frame      int
	Sequence   string // normalized input
	Codons     []string
	AminoAcids string
}

// All iterates the codons of t lazily.
func (t Translation) All() iter.Seq[string] { return Codons(t.Sequence, t.Frame) }

// Translate reads raw in the given frame (1..3). Empty input yields an
// empty translation.
func Translate(raw string, typ SequenceType, frame int) (Translation, error) {
	if frame < 1 || frame > 3 {
		return Translation{}, calcerr.Validation("frame", "reading frame must be 1, 2 or 3, got %d", frame)
	}
	if typ != DNA && typ != RNA {
		return Translation{}, calcerr.Validation("type", "unknown sequence type %q (want dna or rna)", typ)
	}
	t := Translation{Type: typ, Frame: frame, Sequence: Normalize(raw, typ)}
	var aa strings.Builder
	for c := range Codons(t.Sequence, frame) {
		t.Codons = append(t.Codons, c)
		aa.WriteByte(Lookup(c))
	}
	t.AminoAcids = aa.String()
	return t, nil
}

// Composition counts the residues of a translation by property class.
// Residues without an entry ('?') are counted as Special.
func Composition(aminoAcids string) map[Property]int {
	out := make(map[Property]int, len(Properties))
	for i := 0; i < len(aminoAcids); i++ {
		aa, ok := Classify(aminoAcids[i])
		if !ok {
			out[Special]++
			continue
		}
		out[aa.Property]++
	}
	return out
}
