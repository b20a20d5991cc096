package qc

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/stephenmesser/mrna-prototype/config"
	"github.com/stephenmesser/mrna-prototype/internal/rna"
)

// aggregate assembles the flat metrics record for one sample from
// its normalized RNA sequence and raw measurement
func aggregate(seq string, meas Measurement, expected string) (Metrics, error) {
	if meas.Concentration == nil {
		return Metrics{}, &MissingFieldError{Field: "concentration"}
	}

	m := Metrics{
		Concentration: *meas.Concentration,
		Length:        len(seq),
		GCContent:     rna.GCContent(seq),
		MeltingTemp:   rna.MeltingTemp(seq),
		Hairpins:      rna.CountHairpins(seq),
	}

	if meas.Volume != nil {
		yield := *meas.Concentration * *meas.Volume / 1000
		m.TotalYield = &yield
	}

	// absorbance ratios need both readings and a nonzero denominator
	if meas.A260 != nil && meas.A280 != nil && *meas.A280 > 0 {
		r := *meas.A260 / *meas.A280
		m.A260A280 = &r
	}
	if meas.A260 != nil && meas.A230 != nil && *meas.A230 > 0 {
		r := *meas.A260 / *meas.A230
		m.A260A230 = &r
	}

	if expected != "" {
		acc := rna.Accuracy(seq, expected)
		m.Accuracy = &acc
	}

	m.RIN = meas.RIN
	m.DegradationRatio = meas.DegradationRatio
	m.CappingEfficiency = meas.CappingEfficiency
	if meas.CapDetected != nil {
		m.CapPresent = *meas.CapDetected
	}

	if meas.PolyALength != nil {
		m.PolyALength = *meas.PolyALength
	} else {
		m.PolyALength = rna.PolyALength(seq)
	}

	m.GenomicDNA = meas.GenomicDNA
	m.Protein = meas.Protein
	m.Endotoxin = meas.Endotoxin

	return m, nil
}

// runChecks scores each named check independently against the
// threshold table. Hard gates fail; soft metrics and missing optional
// readings only ever warn.
func runChecks(m Metrics, conf *config.QCConfig) map[string]CheckResult {
	checks := map[string]CheckResult{}

	// concentration and yield are hard gates
	if m.Concentration < conf.MinConcentration {
		checks["concentration"] = CheckResult{StatusFail,
			fmt.Sprintf("Low concentration: %.1f ng/uL < %.1f ng/uL", m.Concentration, conf.MinConcentration)}
	} else {
		checks["concentration"] = CheckResult{Status: StatusPass}
	}

	switch {
	case m.TotalYield == nil:
		checks["yield"] = CheckResult{StatusWarning, "Total yield not available (no volume recorded)"}
	case *m.TotalYield < conf.MinYield:
		checks["yield"] = CheckResult{StatusFail,
			fmt.Sprintf("Low yield: %.1f ug < %.1f ug", *m.TotalYield, conf.MinYield)}
	default:
		checks["yield"] = CheckResult{Status: StatusPass}
	}

	// A260/A280: too low fails, too high only warns. A260/A230
	// deviations warn in both directions.
	switch {
	case m.A260A280 == nil:
		checks["purity_260_280"] = CheckResult{StatusWarning, "A260/A280 ratio not available"}
	case *m.A260A280 < conf.MinA260A280:
		checks["purity_260_280"] = CheckResult{StatusFail,
			fmt.Sprintf("Low A260/A280 ratio: %.2f < %.2f", *m.A260A280, conf.MinA260A280)}
	case *m.A260A280 > conf.MaxA260A280:
		checks["purity_260_280"] = CheckResult{StatusWarning,
			fmt.Sprintf("High A260/A280 ratio: %.2f > %.2f", *m.A260A280, conf.MaxA260A280)}
	default:
		checks["purity_260_280"] = CheckResult{Status: StatusPass}
	}

	switch {
	case m.A260A230 == nil:
		checks["purity_260_230"] = CheckResult{StatusWarning, "A260/A230 ratio not available"}
	case *m.A260A230 < conf.MinA260A230:
		checks["purity_260_230"] = CheckResult{StatusWarning,
			fmt.Sprintf("Low A260/A230 ratio: %.2f < %.2f", *m.A260A230, conf.MinA260A230)}
	case *m.A260A230 > conf.MaxA260A230:
		checks["purity_260_230"] = CheckResult{StatusWarning,
			fmt.Sprintf("High A260/A230 ratio: %.2f > %.2f", *m.A260A230, conf.MaxA260A230)}
	default:
		checks["purity_260_230"] = CheckResult{Status: StatusPass}
	}

	switch {
	case m.RIN == nil:
		checks["integrity"] = CheckResult{StatusWarning, "RIN score not available"}
	case *m.RIN < conf.MinRIN:
		checks["integrity"] = CheckResult{StatusFail,
			fmt.Sprintf("Low RIN score: %.1f < %.1f", *m.RIN, conf.MinRIN)}
	default:
		checks["integrity"] = CheckResult{Status: StatusPass}
	}

	// soft metrics: below spec is a warning, never a rejection
	switch {
	case m.Accuracy == nil:
		checks["sequence_accuracy"] = CheckResult{StatusNotTested, "No expected sequence provided"}
	case *m.Accuracy < conf.MinSequenceAccuracy:
		checks["sequence_accuracy"] = CheckResult{StatusWarning,
			fmt.Sprintf("Low sequence accuracy: %.1f%% < %.1f%%", *m.Accuracy, conf.MinSequenceAccuracy)}
	default:
		checks["sequence_accuracy"] = CheckResult{Status: StatusPass}
	}

	switch {
	case m.CappingEfficiency == nil:
		checks["capping"] = CheckResult{StatusWarning, "Capping efficiency not available"}
	case *m.CappingEfficiency < conf.MinCappingEfficiency:
		checks["capping"] = CheckResult{StatusWarning,
			fmt.Sprintf("Low capping efficiency: %.1f%% < %.1f%%", *m.CappingEfficiency, conf.MinCappingEfficiency)}
	default:
		checks["capping"] = CheckResult{Status: StatusPass}
	}

	if m.PolyALength < conf.MinPolyALength {
		checks["poly_a_tail"] = CheckResult{StatusWarning,
			fmt.Sprintf("Short poly(A) tail: %d nt < %d nt", m.PolyALength, conf.MinPolyALength)}
	} else {
		checks["poly_a_tail"] = CheckResult{Status: StatusPass}
	}

	checks["contamination"] = contaminationCheck(m, conf)

	return checks
}

// contaminationCheck fails if any of the three contaminant readings
// exceeds its ceiling; an entirely absent screen only warns
func contaminationCheck(m Metrics, conf *config.QCConfig) CheckResult {
	if m.GenomicDNA == nil && m.Protein == nil && m.Endotoxin == nil {
		return CheckResult{StatusWarning, "Contamination screen not available"}
	}

	var over []string
	if m.GenomicDNA != nil && *m.GenomicDNA > conf.MaxGenomicContamination {
		over = append(over, fmt.Sprintf("genomic DNA %.2f%% > %.2f%%", *m.GenomicDNA, conf.MaxGenomicContamination))
	}
	if m.Protein != nil && *m.Protein > conf.MaxProteinContamination {
		over = append(over, fmt.Sprintf("protein %.1f ng/uL > %.1f ng/uL", *m.Protein, conf.MaxProteinContamination))
	}
	if m.Endotoxin != nil && *m.Endotoxin > conf.MaxEndotoxin {
		over = append(over, fmt.Sprintf("endotoxin %.1f EU/mL > %.1f EU/mL", *m.Endotoxin, conf.MaxEndotoxin))
	}

	if len(over) > 0 {
		return CheckResult{StatusFail, "Contamination above limits: " + strings.Join(over, "; ")}
	}
	return CheckResult{Status: StatusPass}
}

// summarize tallies the checks and derives the overall status
func summarize(checks map[string]CheckResult) (Status, CheckSummary) {
	overall := StatusPass
	sum := CheckSummary{Total: len(checks)}

	for _, c := range checks {
		switch c.Status {
		case StatusPass:
			sum.Passed++
		case StatusWarning:
			sum.Warned++
		case StatusFail:
			sum.Failed++
		case StatusNotTested:
			sum.NotTested++
		}
		overall = worse(overall, c.Status)
	}

	return overall, sum
}

// EvaluateSample runs the full QC scoring pipeline for one sample:
// normalize the sequence, assemble metrics, score every check against
// the thresholds, then build the report.
func EvaluateSample(name, sequence string, meas Measurement, expected string, conf *config.Config) (*Verdict, error) {
	seq, err := rna.Normalize(sequence)
	if err != nil {
		return nil, eris.Wrapf(err, "invalid sequence for sample %s", name)
	}

	if expected != "" {
		if expected, err = rna.Normalize(expected); err != nil {
			return nil, eris.Wrapf(err, "invalid expected sequence for sample %s", name)
		}
	}

	metrics, err := aggregate(seq, meas, expected)
	if err != nil {
		return nil, err
	}

	checks := runChecks(metrics, &conf.QC)
	overall, summary := summarize(checks)

	t := time.Now()
	return &Verdict{
		ID:                 uuid.NewString(),
		Sample:             name,
		Overall:            overall,
		Checks:             checks,
		Summary:            summary,
		QualityScore:       qualityScore(metrics, &conf.QC),
		Recommendations:    recommendations(metrics, &conf.QC),
		CriticalParameters: criticalParameters(metrics, &conf.QC),
		Stability:          predictStability(metrics, &conf.QC),
		Compliance:         compliance(metrics, &conf.QC),
		Metrics:            metrics,
		Time: fmt.Sprintf(
			"%d/%02d/%02d %02d:%02d:%02d",
			t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		),
	}, nil
}
