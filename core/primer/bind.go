// core/primer/bind.go
package primer

import "strings"

// IUPAC bit masks: bit0=A bit1=C bit2=G bit3=T. Lowercase mirrors uppercase
// and U counts as T.
var iupacMask [256]byte

func init() {
	set := func(c byte, bits byte) {
		iupacMask[c] = bits
		iupacMask[c+'a'-'A'] = bits
	}
	set('A', 1)
	set('C', 2)
	set('G', 4)
	set('T', 8)
	set('U', 8)
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any
}

// BaseMatch reports whether primer base p can pair with template base g.
// Only A, C, G and T count as template bases; anything else never matches.
func BaseMatch(g, p byte) bool {
	switch g {
	case 'A', 'C', 'G', 'T':
	default:
		return false
	}
	return iupacMask[p]&iupacMask[g] != 0
}

func isUnambiguous(p string) bool {
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}

// FindBinding returns the 0-based offset of the first place oligo binds
// template exactly, or -1. template must be upper-case ACGT; oligo may
// carry IUPAC ambiguity codes, each matching any base it stands for.
func FindBinding(template, oligo string) int {
	o := strings.ToUpper(oligo)
	n := len(o)
	if n == 0 || len(template) < n {
		return -1
	}
	if isUnambiguous(o) {
		return strings.Index(template, o)
	}

window:
	for pos := 0; pos <= len(template)-n; pos++ {
		for j := 0; j < n; j++ {
			if !BaseMatch(template[pos+j], o[j]) {
				continue window
			}
		}
		return pos
	}
	return -1
}
