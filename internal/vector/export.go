package vector

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"

	"github.com/stephenmesser/mrna-prototype/config"
)

// Design is the exported record of an assembled and validated vector
type Design struct {
	// the vector itself: name, elements, total length
	*Vector

	// full plasmid sequence
	FullSequence string `json:"full_sequence"`

	// transcript view, without plasmid-maintenance elements
	TranscriptSequence string `json:"transcript_sequence"`

	// structural validation results
	Validation Report `json:"validation"`

	// save time, ex: "2018/01/01 20:41:00"
	Time string `json:"time"`
}

// NewDesign validates the vector and bundles it with its derived
// sequences into an exportable record
func NewDesign(v *Vector, conf *config.DesignConfig) Design {
	t := time.Now()
	return Design{
		Vector:             v,
		FullSequence:       v.FullSequence(),
		TranscriptSequence: v.TranscriptSequence(),
		Validation:         Validate(v, conf),
		Time: fmt.Sprintf(
			"%d/%02d/%02d %02d:%02d:%02d",
			t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		),
	}
}

// WriteJSON writes the design record to the filename requested
func (d Design) WriteJSON(filename string) ([]byte, error) {
	output, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "failed to serialize design")
	}

	if err = os.WriteFile(filename, output, 0644); err != nil {
		return nil, eris.Wrapf(err, "failed to write design to %s", filename)
	}

	return output, nil
}

// WriteMap prints a plain-text map of the vector's elements to the
// writer, one row per element
func (d Design) WriteMap(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 4, 3, ' ', 0)
	fmt.Fprintf(w, "element\tcategory\tstart\tend\tlength\t\n")
	for i := range d.Elements {
		e := &d.Elements[i]
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t\n", e.Name, e.Category, e.Position, e.Position+e.Length(), e.Length())
	}
	w.Flush()
}
