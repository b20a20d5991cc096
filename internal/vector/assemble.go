package vector

import (
	"fmt"
	"strings"

	"github.com/stephenmesser/mrna-prototype/internal/codon"
)

// Vector is an ordered list of elements making up one plasmid or
// transcript template. Build it element by element; it is not safe
// for concurrent mutation.
type Vector struct {
	// display name of the construct
	Name string `json:"name"`

	// elements in 5' to 3' order
	Elements []Element `json:"elements"`

	// sum of element lengths, recomputed on every mutation
	TotalLength int `json:"total_length"`
}

// New returns an empty vector
func New(name string) *Vector {
	return &Vector{Name: name}
}

// AddElement appends an element. Its position is the vector's length
// before the append, keeping elements contiguous and non-overlapping.
func (v *Vector) AddElement(e Element) {
	e.Position = v.TotalLength
	v.Elements = append(v.Elements, e)
	v.TotalLength += e.Length()
}

// InsertElement places an element at index i, shifting later elements
// downstream. Positions and the total length are recomputed.
func (v *Vector) InsertElement(i int, e Element) error {
	if i < 0 || i > len(v.Elements) {
		return fmt.Errorf("insert index %d out of range [0, %d]", i, len(v.Elements))
	}

	v.Elements = append(v.Elements, Element{})
	copy(v.Elements[i+1:], v.Elements[i:])
	v.Elements[i] = e
	v.reindex()
	return nil
}

// reindex recomputes every element position and the total length
func (v *Vector) reindex() {
	offset := 0
	for i := range v.Elements {
		v.Elements[i].Position = offset
		offset += v.Elements[i].Length()
	}
	v.TotalLength = offset
}

// AddFromLibrary appends a stock element by its symbolic name
func (v *Vector) AddFromLibrary(name string) error {
	e, err := Lookup(name)
	if err != nil {
		return err
	}
	v.AddElement(e)
	return nil
}

// AddPayload codon-optimizes a protein and appends it as the coding
// gene. The achieved optimization score is kept in the element's
// description for downstream review.
func (v *Vector) AddPayload(name, protein string) error {
	seq, err := codon.Optimize(protein)
	if err != nil {
		return err
	}

	score, err := codon.Score(seq)
	if err != nil {
		return err
	}

	v.AddElement(Element{
		Name:        name,
		Seq:         seq,
		Category:    Gene,
		Description: fmt.Sprintf("Codon-optimized payload (optimization score: %.3f)", score),
	})
	return nil
}

// FullSequence concatenates every element's sequence in order
func (v *Vector) FullSequence() string {
	var seq strings.Builder
	seq.Grow(v.TotalLength)
	for i := range v.Elements {
		seq.WriteString(v.Elements[i].Seq)
	}
	return seq.String()
}

// TranscriptSequence concatenates the sequence of everything the mRNA
// transcript itself would contain: all elements except the selection
// markers kept only for plasmid maintenance
func (v *Vector) TranscriptSequence() string {
	var seq strings.Builder
	for i := range v.Elements {
		if v.Elements[i].Category == Resistance {
			continue
		}
		seq.WriteString(v.Elements[i].Seq)
	}
	return seq.String()
}

// CountCategory returns how many elements belong to the category
func (v *Vector) CountCategory(c Category) int {
	n := 0
	for i := range v.Elements {
		if v.Elements[i].Category == c {
			n++
		}
	}
	return n
}

// PayloadSlot is the reserved choice name marking where the
// codon-optimized payload gene goes in an assembly order
const PayloadSlot = "payload"

// DefaultTranscriptOrder is the stock element order for an
// mRNA-compatible vector: transcription promoter, translation
// enhancer, start codon, detection tag, the payload, purification
// tag, stop codon, polyadenylation signal, and a selection marker
// kept for plasmid maintenance only.
var DefaultTranscriptOrder = []string{
	"t7_promoter",
	"kozak_sequence",
	"start_codon",
	"flag_tag",
	PayloadSlot,
	"his_tag",
	"stop_codon",
	"bgh_polya",
	"amp_resistance",
}

// AssembleTranscript builds a vector by appending the named library
// elements in the caller's order, substituting the codon-optimized
// payload protein wherever the reserved "payload" name appears.
// An empty order falls back to DefaultTranscriptOrder.
func AssembleTranscript(name, payloadProtein string, order []string) (*Vector, error) {
	if len(order) == 0 {
		order = DefaultTranscriptOrder
	}

	v := New(name)
	for _, choice := range order {
		if choice == PayloadSlot {
			if err := v.AddPayload("Payload", payloadProtein); err != nil {
				return nil, err
			}
			continue
		}
		if err := v.AddFromLibrary(choice); err != nil {
			return nil, err
		}
	}

	return v, nil
}
