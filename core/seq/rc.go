// core/seq/rc.go
package seq

import (
	"strings"
	"unicode"
)

// complement covers DNA/RNA bases, IUPAC ambiguity codes, gaps and spaces.
// U complements to A; A always complements to T.
var complement = map[rune]rune{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A',
	'a': 't', 'c': 'g', 'g': 'c', 't': 'a',
	'U': 'A', 'u': 'a',
	'R': 'Y', 'Y': 'R', // A/G  <->  C/T
	'r': 'y', 'y': 'r',
	'K': 'M', 'M': 'K', // G/T  <->  A/C
	'k': 'm', 'm': 'k',
	'B': 'V', 'V': 'B', // not A <-> not T
	'b': 'v', 'v': 'b',
	'D': 'H', 'H': 'D', // not C <-> not G
	'd': 'h', 'h': 'd',
	'S': 'S', 'W': 'W', 'N': 'N',
	's': 's', 'w': 'w', 'n': 'n',
	'-': '-', ' ': ' ',
}

// Options controls what ReverseComplement keeps from the raw input.
type Options struct {
	KeepWhitespace bool // keep spaces/newlines (otherwise stripped)
	KeepDigits     bool // keep position numbers (otherwise stripped)
}

// Complement returns the complement of r, or r itself when r has none.
func Complement(r rune) rune {
	if c, ok := complement[r]; ok {
		return c
	}
	return r
}

// ReverseComplement complements every character and reverses the result.
// Case is preserved; characters outside the table pass through unchanged.
func ReverseComplement(s string, opt Options) string {
	if s == "" {
		return ""
	}
	if !opt.KeepWhitespace {
		s = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, s)
	}
	if !opt.KeepDigits {
		s = strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return -1
			}
			return r
		}, s)
	}
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = Complement(r[j]), Complement(r[i])
	}
	if len(r)%2 == 1 {
		m := len(r) / 2
		r[m] = Complement(r[m])
	}
	return string(r)
}
