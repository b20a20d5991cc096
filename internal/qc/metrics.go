// Package qc scores laboratory measurements of IVT RNA batches
// against fixed acceptance thresholds, producing a pass/warning/fail
// verdict with a quality score and remediation recommendations
package qc

import "fmt"

// Status is the outcome of one qc check (or of a whole sample)
type Status int

const (
	// StatusPass means the metric met its specification
	StatusPass Status = iota

	// StatusWarning means a soft deviation: worth review, not a
	// rejection on its own
	StatusWarning

	// StatusFail means a hard specification miss
	StatusFail

	// StatusNotTested means the check could not run (for example,
	// no expected sequence was provided for accuracy scoring)
	StatusNotTested
)

var statusNames = map[Status]string{
	StatusPass:      "PASS",
	StatusWarning:   "WARNING",
	StatusFail:      "FAIL",
	StatusNotTested: "NOT_TESTED",
}

func (s Status) String() string {
	return statusNames[s]
}

// MarshalJSON writes the status as its uppercase name
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + statusNames[s] + `"`), nil
}

// worse returns the more severe of two statuses. Fail dominates
// Warning dominates Pass; NotTested never escalates.
func worse(a, b Status) Status {
	rank := func(s Status) int {
		switch s {
		case StatusFail:
			return 2
		case StatusWarning:
			return 1
		}
		return 0
	}
	if rank(b) > rank(a) {
		return b
	}
	return a
}

// Measurement is one sample's raw instrument readings. Optional
// fields are pointers: nil means the reading was not taken, which
// scores as a warning rather than a failure. Concentration is the
// one required field.
type Measurement struct {
	// absorbance readings (optical density)
	A260 *float64 `json:"a260,omitempty"`
	A280 *float64 `json:"a280,omitempty"`
	A230 *float64 `json:"a230,omitempty"`

	// RNA concentration (ng/uL), required
	Concentration *float64 `json:"concentration,omitempty"`

	// sample volume (uL), used to derive total yield
	Volume *float64 `json:"volume_ul,omitempty"`

	// RNA Integrity Number (1-10) from electrophoresis
	RIN *float64 `json:"rin_score,omitempty"`

	// degradation ratio from the trace
	DegradationRatio *float64 `json:"degradation_ratio,omitempty"`

	// 5' capping efficiency (%) and whether a cap was detected
	CappingEfficiency *float64 `json:"capping_efficiency,omitempty"`
	CapDetected       *bool    `json:"cap_detected,omitempty"`

	// measured poly(A) tail length (nt); when absent the tail is
	// estimated from the sequence's 3' end
	PolyALength *int `json:"poly_a_length,omitempty"`

	// contamination screen
	GenomicDNA *float64 `json:"genomic_dna_percent,omitempty"`
	Protein    *float64 `json:"protein_ng_ul,omitempty"`
	Endotoxin  *float64 `json:"endotoxin_eu_ml,omitempty"`
}

// Metrics is the flat record assembled from a sample's sequence and
// measurement, the input to threshold evaluation and reporting
type Metrics struct {
	Concentration float64  `json:"concentration_ng_ul"`
	TotalYield    *float64 `json:"total_yield_ug,omitempty"`

	A260A280 *float64 `json:"a260_a280_ratio,omitempty"`
	A260A230 *float64 `json:"a260_a230_ratio,omitempty"`

	RIN              *float64 `json:"rin_score,omitempty"`
	DegradationRatio *float64 `json:"degradation_ratio,omitempty"`

	Length    int      `json:"length_nt"`
	GCContent float64  `json:"gc_content_percent"`
	Accuracy  *float64 `json:"sequence_accuracy_percent,omitempty"`

	CappingEfficiency *float64 `json:"capping_efficiency_percent,omitempty"`
	PolyALength       int      `json:"poly_a_tail_length"`
	CapPresent        bool     `json:"five_prime_cap_present"`

	GenomicDNA *float64 `json:"genomic_dna_contamination_percent,omitempty"`
	Protein    *float64 `json:"protein_contamination_ng_ul,omitempty"`
	Endotoxin  *float64 `json:"endotoxin_level_eu_ml,omitempty"`

	MeltingTemp float64 `json:"predicted_tm_celsius"`
	Hairpins    int     `json:"hairpin_count"`
}

// CheckResult is one named check's status plus a human-readable note
// explaining any deviation
type CheckResult struct {
	Status Status `json:"status"`
	Note   string `json:"note,omitempty"`
}

// CheckSummary counts checks by outcome
type CheckSummary struct {
	Passed    int `json:"passed_checks"`
	Warned    int `json:"warning_checks"`
	Failed    int `json:"failed_checks"`
	NotTested int `json:"not_tested_checks"`
	Total     int `json:"total_checks"`
}

// Stability is the predicted keeping quality of a sample
type Stability struct {
	// 0-100 score
	Score int `json:"predicted_stability_score"`

	// storage guidance derived from the score
	Storage string `json:"storage_recommendation"`

	// estimated shelf life in days
	ShelfLifeDays int `json:"shelf_life_days"`
}

// Verdict is the full scoring outcome for one sample
type Verdict struct {
	// unique report id
	ID string `json:"id"`

	// the sample's name
	Sample string `json:"sample_name"`

	// worst individual check status
	Overall Status `json:"overall_status"`

	// per-check outcomes
	Checks map[string]CheckResult `json:"checks"`

	// check counts
	Summary CheckSummary `json:"summary"`

	// composite 0-100 quality score
	QualityScore float64 `json:"quality_score"`

	// remediation guidance, in priority order
	Recommendations []string `json:"recommendations"`

	// metrics needing immediate attention
	CriticalParameters []string `json:"critical_parameters,omitempty"`

	// stability prediction
	Stability Stability `json:"stability"`

	// named regulatory standard -> compliant
	Compliance map[string]bool `json:"regulatory_compliance"`

	// the metrics the verdict was computed from
	Metrics Metrics `json:"metrics"`

	// evaluation time, ex: "2018/01/01 20:41:00"
	Time string `json:"time"`
}

// MissingFieldError is returned when a measurement lacks a field
// required for a hard pass/fail gate
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required measurement field %q is missing", e.Field)
}

// SampleError wraps any per-sample failure during batch evaluation so
// one bad sample never aborts the rest of the batch
type SampleError struct {
	// the sample's name
	Sample string

	// the underlying cause
	Err error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("sample %s: %v", e.Sample, e.Err)
}

func (e *SampleError) Unwrap() error {
	return e.Err
}
