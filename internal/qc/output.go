package qc

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
)

type batchReport struct {
	Generated string         `json:"generated"`
	Summary   BatchSummary   `json:"summary"`
	Results   []sampleReport `json:"results"`
}

type sampleReport struct {
	Name    string   `json:"name"`
	Verdict *Verdict `json:"verdict,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// WriteResults serializes the batch outcome to a JSON report file
func WriteResults(path string, results []SampleResult, summary BatchSummary) error {
	t := time.Now()
	report := batchReport{
		Generated: fmt.Sprintf(
			"%d/%02d/%02d %02d:%02d:%02d",
			t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		),
		Summary: summary,
		Results: make([]sampleReport, 0, len(results)),
	}

	for _, r := range results {
		sr := sampleReport{Name: r.Name, Verdict: r.Verdict}
		if r.Err != nil {
			sr.Error = r.Err.Error()
		}
		report.Results = append(report.Results, sr)
	}

	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return eris.Wrap(err, "failed to serialize QC report")
	}

	if err := os.WriteFile(path, output, 0644); err != nil {
		return eris.Wrapf(err, "failed to write QC report to %s", path)
	}
	return nil
}

// WriteSummary prints a per-sample result table followed by batch totals
func WriteSummary(out io.Writer, results []SampleResult, summary BatchSummary) {
	w := tabwriter.NewWriter(out, 0, 4, 3, ' ', 0)

	fmt.Fprintf(w, "sample\tstatus\tscore\tpassed\twarned\tfailed\n")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%s\tERROR\t-\t-\t-\t-\n", r.Name)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%d\t%d\t%d\n",
			r.Name, r.Verdict.Overall, r.Verdict.QualityScore,
			r.Verdict.Summary.Passed, r.Verdict.Summary.Warned, r.Verdict.Summary.Failed)
	}
	w.Flush()

	fmt.Fprintf(out, "\n%d samples: %d passed, %d with warnings, %d failed, %d errored (%.1f%% usable)\n",
		summary.Total, summary.Passed, summary.Warned, summary.Failed, summary.Errored, summary.SuccessRate)
}
