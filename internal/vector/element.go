// Package vector is for assembling plasmid vectors from ordered
// sequence elements and validating the resulting designs
package vector

import (
	"fmt"
	"strings"
)

// Category is the functional class of a sequence element
type Category int

const (
	// Promoter drives transcription (T7, CMV, EF1a)
	Promoter Category = iota

	// Gene is a protein coding sequence
	Gene

	// Tag is a detection/purification epitope (FLAG, 6xHis)
	Tag

	// Enhancer boosts translation initiation (Kozak)
	Enhancer

	// UTR is an untranslated region
	UTR

	// Origin is an origin of replication
	Origin

	// Resistance is a selection marker, kept for plasmid
	// maintenance only and excluded from the transcript
	Resistance

	// Regulatory is a linker or other accessory sequence
	Regulatory

	// Terminator ends transcription
	Terminator

	// Signal is a signal peptide coding sequence
	Signal

	// PolyA is a polyadenylation signal
	PolyA

	// TranslationStart is the ATG start codon
	TranslationStart

	// TranslationStop is a stop codon
	TranslationStop
)

var categoryNames = map[Category]string{
	Promoter:         "promoter",
	Gene:             "gene",
	Tag:              "tag",
	Enhancer:         "enhancer",
	UTR:              "utr",
	Origin:           "origin",
	Resistance:       "resistance",
	Regulatory:       "regulatory",
	Terminator:       "terminator",
	Signal:           "signal",
	PolyA:            "polya",
	TranslationStart: "translation-start",
	TranslationStop:  "translation-stop",
}

var categoriesByName = map[string]Category{}

func init() {
	for c, name := range categoryNames {
		categoriesByName[name] = c
	}
}

func (c Category) String() string {
	return categoryNames[c]
}

// MarshalJSON writes the category as its lowercase name
func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(`"` + categoryNames[c] + `"`), nil
}

// UnmarshalJSON reads a category from its lowercase name
func (c *Category) UnmarshalJSON(b []byte) error {
	name := strings.Trim(string(b), `"`)
	cat, ok := categoriesByName[name]
	if !ok {
		return fmt.Errorf("unknown element category %q", name)
	}
	*c = cat
	return nil
}

// coding reports whether elements of this category count toward the
// open reading frame: signal peptides, genes and tags. Start and stop
// codon elements sit outside the framed region.
func (c Category) coding() bool {
	switch c {
	case Gene, Tag, Signal:
		return true
	}
	return false
}

// Element is one named segment of a vector's sequence
type Element struct {
	// display name of the element
	Name string `json:"name"`

	// the element's DNA sequence
	Seq string `json:"sequence"`

	// functional class
	Category Category `json:"category"`

	// free-form annotation
	Description string `json:"description,omitempty"`

	// 0-indexed offset within the assembled vector, set on add
	Position int `json:"position"`
}

// Length returns the length of the element's sequence
func (e *Element) Length() int {
	return len(e.Seq)
}

// checkDNA errors if the sequence is empty or holds a character
// outside {A,C,G,T}
func checkDNA(seq string) error {
	if seq == "" {
		return fmt.Errorf("empty sequence")
	}
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return fmt.Errorf("invalid DNA base %q at index %d", seq[i], i)
		}
	}
	return nil
}

// NewElement creates an immutable element after uppercasing and
// checking its sequence against the DNA alphabet
func NewElement(name, seq string, category Category, description string) (Element, error) {
	seq = strings.ToUpper(seq)
	if err := checkDNA(seq); err != nil {
		return Element{}, fmt.Errorf("element %s: %w", name, err)
	}

	return Element{
		Name:        name,
		Seq:         seq,
		Category:    category,
		Description: description,
	}, nil
}
