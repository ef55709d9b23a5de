package seq

import (
	"strings"

	"labnotex-core/numfmt"
)

// iupac lists every recognised nucleotide letter (upper case).
const iupac = "ACGTURYMKSWHDBVN"

// IsNucleotide reports whether r is a base or IUPAC ambiguity code, any case.
func IsNucleotide(r rune) bool {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return r < 0x80 && strings.IndexByte(iupac, byte(r)) >= 0
}

// Sanitize drops everything that is not a nucleotide letter. Case is kept.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if IsNucleotide(r) {
			return r
		}
		return -1
	}, s)
}

// SanitizeACGT keeps only A/C/G/T (any case) and upper-cases the result.
func SanitizeACGT(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'A', 'C', 'G', 'T':
			return r
		case 'a', 'c', 'g', 't':
			return r - ('a' - 'A')
		}
		return -1
	}, s)
}

// Length is the number of characters in s.
func Length(s string) int { return len([]rune(s)) }

// GCCount counts G and C, case-insensitive.
func GCCount(s string) int {
	n := 0
	for _, r := range s {
		switch r {
		case 'G', 'C', 'g', 'c':
			n++
		}
	}
	return n
}

// GCContent is the G+C share of s in percent, rounded to one decimal.
// Empty input yields 0.
func GCContent(s string) float64 {
	n := Length(s)
	if n == 0 {
		return 0
	}
	return numfmt.Round(float64(GCCount(s))/float64(n)*100, numfmt.PercentPlaces)
}
