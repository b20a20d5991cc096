// Package codon is for codon optimization of protein payloads
// for expression in mammalian cells
package codon

import (
	"fmt"
	"sort"
	"strings"
)

// usageTable holds relative codon usage frequencies in mammalian
// cells, keyed by amino acid single-letter code. '*' is stop.
var usageTable = map[byte]map[string]float64{
	'A': {"GCT": 0.26, "GCC": 0.40, "GCA": 0.23, "GCG": 0.11},
	'C': {"TGT": 0.46, "TGC": 0.54},
	'D': {"GAT": 0.46, "GAC": 0.54},
	'E': {"GAA": 0.42, "GAG": 0.58},
	'F': {"TTT": 0.46, "TTC": 0.54},
	'G': {"GGT": 0.16, "GGC": 0.34, "GGA": 0.25, "GGG": 0.25},
	'H': {"CAT": 0.42, "CAC": 0.58},
	'I': {"ATT": 0.36, "ATC": 0.48, "ATA": 0.16},
	'K': {"AAA": 0.43, "AAG": 0.57},
	'L': {"TTA": 0.08, "TTG": 0.13, "CTT": 0.13, "CTC": 0.20, "CTA": 0.07, "CTG": 0.39},
	'M': {"ATG": 1.00},
	'N': {"AAT": 0.47, "AAC": 0.53},
	'P': {"CCT": 0.28, "CCC": 0.32, "CCA": 0.27, "CCG": 0.13},
	'Q': {"CAA": 0.26, "CAG": 0.74},
	'R': {"CGT": 0.08, "CGC": 0.18, "CGA": 0.11, "CGG": 0.20, "AGA": 0.21, "AGG": 0.22},
	'S': {"TCT": 0.19, "TCC": 0.22, "TCA": 0.15, "TCG": 0.05, "AGT": 0.15, "AGC": 0.24},
	'T': {"ACT": 0.25, "ACC": 0.36, "ACA": 0.28, "ACG": 0.11},
	'V': {"GTT": 0.18, "GTC": 0.24, "GTA": 0.11, "GTG": 0.47},
	'W': {"TGG": 1.00},
	'Y': {"TAT": 0.44, "TAC": 0.56},
	'*': {"TAA": 0.30, "TAG": 0.24, "TGA": 0.46},
}

// bestCodons is the top codon per amino acid. Ties on frequency are
// broken lexicographically so output is reproducible across runs.
var bestCodons = map[byte]string{}

// codonFreq maps every tabulated codon back to its usage frequency.
// A codon only ever appears under one amino acid in the table.
var codonFreq = map[string]float64{}

func init() {
	for aa, codons := range usageTable {
		names := make([]string, 0, len(codons))
		for c, f := range codons {
			names = append(names, c)
			codonFreq[c] = f
		}
		sort.Strings(names)

		best := names[0]
		for _, c := range names[1:] {
			if codons[c] > codons[best] {
				best = c
			}
		}
		bestCodons[aa] = best
	}
}

// UnknownResidueError is returned when a protein sequence contains a
// character without an entry in the usage table
type UnknownResidueError struct {
	// the offending character
	Residue byte

	// its 0-indexed position in the protein sequence
	Index int
}

func (e *UnknownResidueError) Error() string {
	return fmt.Sprintf("unknown amino acid %q at index %d", e.Residue, e.Index)
}

// InvalidLengthError is returned when a DNA sequence cannot be split
// into codon triples
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("sequence length %d is not divisible by 3", e.Length)
}

// Optimize converts a protein sequence to DNA by substituting, for
// each amino acid, the most frequently used mammalian codon. The
// output is always exactly three times the input length.
func Optimize(protein string) (string, error) {
	protein = strings.ToUpper(protein)

	var dna strings.Builder
	dna.Grow(3 * len(protein))

	for i := 0; i < len(protein); i++ {
		best, ok := bestCodons[protein[i]]
		if !ok {
			return "", &UnknownResidueError{Residue: protein[i], Index: i}
		}
		dna.WriteString(best)
	}

	return dna.String(), nil
}

// Score returns the mean usage frequency of a DNA sequence's codons,
// a proxy for how well the sequence is optimized for expression.
// Codons absent from the usage table are skipped. Returns 0.0 if no
// codon matched
func Score(dna string) (float64, error) {
	if len(dna)%3 != 0 {
		return 0, &InvalidLengthError{Length: len(dna)}
	}

	dna = strings.ToUpper(dna)
	sum := 0.0
	count := 0
	for i := 0; i+3 <= len(dna); i += 3 {
		if f, ok := codonFreq[dna[i:i+3]]; ok {
			sum += f
			count++
		}
	}

	if count == 0 {
		return 0.0, nil
	}
	return sum / float64(count), nil
}

// RareCodons returns the tabulated codons with usage frequency at or
// below the cutoff. The design validator flags runs of these
func RareCodons(cutoff float64) []string {
	var rare []string
	for c, f := range codonFreq {
		if f <= cutoff {
			rare = append(rare, c)
		}
	}
	sort.Strings(rare)
	return rare
}
