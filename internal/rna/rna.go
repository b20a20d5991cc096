// Package rna holds sequence-level quality heuristics for in vitro
// transcribed RNA: GC content, accuracy against an expected sequence,
// a melting temperature approximation, hairpin counting, and poly(A)
// tail measurement
package rna

import (
	"fmt"
	"strings"
)

// InvalidAlphabetError is returned when a sequence contains a
// character outside the RNA alphabet after normalization
type InvalidAlphabetError struct {
	// the offending character
	Base byte

	// its 0-indexed position
	Index int
}

func (e *InvalidAlphabetError) Error() string {
	return fmt.Sprintf("invalid RNA base %q at index %d", e.Base, e.Index)
}

// Normalize uppercases a sequence and converts DNA thymine to uracil,
// then checks every base against {A,C,G,U}
func Normalize(seq string) (string, error) {
	seq = strings.ToUpper(seq)
	seq = strings.ReplaceAll(seq, "T", "U")

	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'C', 'G', 'U':
		default:
			return "", &InvalidAlphabetError{Base: seq[i], Index: i}
		}
	}
	return seq, nil
}

// GCContent returns the G+C fraction of the sequence as a percentage,
// 0.0 for empty input
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0.0
	}

	gc := 0
	for i := 0; i < len(seq); i++ {
		if seq[i] == 'G' || seq[i] == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(seq)) * 100
}

// Accuracy is the position-wise match fraction between an observed
// and expected sequence, as a percentage. Sequences of different
// lengths score 0.0: this is a straight per-position comparison, not
// an alignment.
func Accuracy(observed, expected string) float64 {
	if len(observed) != len(expected) || len(expected) == 0 {
		return 0.0
	}

	matches := 0
	for i := 0; i < len(observed); i++ {
		if observed[i] == expected[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(expected)) * 100
}

// MeltingTemp estimates the melting temperature in Celsius from GC
// content and length. Short sequences use the Wallace rule, longer
// ones a GC-adjusted baseline; the result is floored at 25. This is
// a rough screen, not a nearest-neighbor thermodynamic model.
func MeltingTemp(seq string) float64 {
	length := len(seq)
	if length == 0 {
		return 0.0
	}

	gc := GCContent(seq)

	var tm float64
	if length < 14 {
		tm = gc*4 + (100-gc)*2 - 7
	} else {
		tm = 81.5 + 0.41*gc - 675/float64(length)
	}

	if tm < 25.0 {
		return 25.0
	}
	return tm
}

const (
	minStemLength = 4
	minLoopLength = 3
)

// CountHairpins counts pairs of complementary 4-base windows
// separated by at least a 3-base loop, i.e. spots where the molecule
// could fold back on itself. The scan is O(n^2) and does not dedupe
// overlapping or nested stems, so repetitive sequences overcount;
// treat the result as a relative signal only.
func CountHairpins(seq string) int {
	hairpins := 0
	for i := 0; i < len(seq)-2*minStemLength-minLoopLength; i++ {
		for j := i + minStemLength + minLoopLength; j <= len(seq)-minStemLength; j++ {
			if complementary(seq[i:i+minStemLength], seq[j:j+minStemLength]) {
				hairpins++
			}
		}
	}
	return hairpins
}

// complementary reports whether two equal-length RNA stretches pair
// in antiparallel orientation (A-U, G-C)
func complementary(seq1, seq2 string) bool {
	if len(seq1) != len(seq2) {
		return false
	}

	for i := 0; i < len(seq1); i++ {
		b := seq2[len(seq2)-1-i]
		switch seq1[i] {
		case 'A':
			if b != 'U' {
				return false
			}
		case 'U':
			if b != 'A' {
				return false
			}
		case 'G':
			if b != 'C' {
				return false
			}
		case 'C':
			if b != 'G' {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// PolyALength counts the trailing adenine run at the 3' end
func PolyALength(seq string) int {
	n := 0
	for i := len(seq) - 1; i >= 0 && seq[i] == 'A'; i-- {
		n++
	}
	return n
}
