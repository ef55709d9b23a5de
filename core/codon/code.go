// Package codon translates nucleotide sequences with the standard genetic code.
package codon

// Stop is the amino-acid letter for the three stop codons.
const Stop = '*'

// Unknown marks a triplet that is not in the table.
const Unknown = '?'

var geneticCode = map[string]byte{
	"UUU": 'F', "UUC": 'F', "UUA": 'L', "UUG": 'L',
	"UCU": 'S', "UCC": 'S', "UCA": 'S', "UCG": 'S',
	"UAU": 'Y', "UAC": 'Y', "UAA": Stop, "UAG": Stop,
	"UGU": 'C', "UGC": 'C', "UGA": Stop, "UGG": 'W',

	"CUU": 'L', "CUC": 'L', "CUA": 'L', "CUG": 'L',
	"CCU": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAU": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGU": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"AUU": 'I', "AUC": 'I', "AUA": 'I', "AUG": 'M',
	"ACU": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAU": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGU": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GUU": 'V', "GUC": 'V', "GUA": 'V', "GUG": 'V',
	"GCU": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAU": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGU": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// Lookup maps an RNA codon to its one-letter amino acid, or Unknown.
func Lookup(codon string) byte {
	if aa, ok := geneticCode[codon]; ok {
		return aa
	}
	return Unknown
}

// Property is the chemical class used to group residues.
type Property string

const (
	Hydrophobic Property = "hydrophobic"
	Polar       Property = "polar"
	Positive    Property = "positive"
	Negative    Property = "negative"
	Special     Property = "special"
)

// Properties lists the classes in display order.
var Properties = []Property{Hydrophobic, Polar, Positive, Negative, Special}

type AminoAcid struct {
	Letter   byte
	Name     string
	Property Property
}

var aminoAcids = map[byte]AminoAcid{
	'A': {'A', "Alanine", Hydrophobic},
	'C': {'C', "Cysteine", Special},
	'D': {'D', "Aspartate", Negative},
	'E': {'E', "Glutamate", Negative},
	'F': {'F', "Phenylalanine", Hydrophobic},
	'G': {'G', "Glycine", Special},
	'H': {'H', "Histidine", Positive},
	'I': {'I', "Isoleucine", Hydrophobic},
	'K': {'K', "Lysine", Positive},
	'L': {'L', "Leucine", Hydrophobic},
	'M': {'M', "Methionine", Hydrophobic},
	'N': {'N', "Asparagine", Polar},
	'P': {'P', "Proline", Special},
	'Q': {'Q', "Glutamine", Polar},
	'R': {'R', "Arginine", Positive},
	'S': {'S', "Serine", Polar},
	'T': {'T', "Threonine", Polar},
	'V': {'V', "Valine", Hydrophobic},
	'W': {'W', "Tryptophan", Hydrophobic},
	'Y': {'Y', "Tyrosine", Polar},
	Stop: {Stop, "Stop codon", Special},
}

// Classify returns the residue info for letter; ok is false for '?' and
// anything else outside the table.
func Classify(letter byte) (AminoAcid, bool) {
	aa, ok := aminoAcids[letter]
	return aa, ok
}
