package qc

import "github.com/stephenmesser/mrna-prototype/config"

// qualityScore folds four sub-scores into a 0-100 composite:
// concentration, purity, integrity and capping. Missing readings
// score their component at the floor.
func qualityScore(m Metrics, conf *config.QCConfig) float64 {
	var scores []float64

	if m.Concentration >= conf.MinConcentration {
		s := m.Concentration / conf.MinConcentration * 100
		if s > 100 {
			s = 100
		}
		scores = append(scores, s)
	} else {
		scores = append(scores, 0)
	}

	if m.A260A280 != nil && *m.A260A280 >= conf.MinA260A280 && *m.A260A280 <= conf.MaxA260A280 {
		scores = append(scores, 100)
	} else {
		scores = append(scores, 50)
	}

	if m.RIN != nil {
		s := *m.RIN / 10 * 100
		if s > 100 {
			s = 100
		}
		scores = append(scores, s)
	} else {
		scores = append(scores, 0)
	}

	if m.CappingEfficiency != nil {
		s := *m.CappingEfficiency
		if s > 100 {
			s = 100
		}
		scores = append(scores, s)
	} else {
		scores = append(scores, 0)
	}

	var total float64
	for _, s := range scores {
		total += s
	}
	return total / float64(len(scores))
}

// recommendations lists corrective actions in fixed priority order.
// A metric that was never measured gets no recommendation here; the
// missing reading already surfaces as a check warning.
func recommendations(m Metrics, conf *config.QCConfig) []string {
	var recs []string

	if m.Concentration < conf.MinConcentration {
		recs = append(recs, "Increase RNA concentration through precipitation or concentration methods")
	}
	if m.TotalYield != nil && *m.TotalYield < conf.MinYield {
		recs = append(recs, "Optimize IVT reaction conditions to improve yield")
	}
	if m.A260A280 != nil && (*m.A260A280 < conf.MinA260A280 || *m.A260A280 > conf.MaxA260A280) {
		recs = append(recs, "RNA purity may be compromised - consider additional purification steps")
	}
	if m.RIN != nil && *m.RIN < conf.MinRIN {
		recs = append(recs, "RNA integrity is compromised - check storage conditions and handling procedures")
	}
	if m.CappingEfficiency != nil && *m.CappingEfficiency < conf.MinCappingEfficiency {
		recs = append(recs, "Optimize 5' capping reaction or use alternative capping methods")
	}
	if m.PolyALength < conf.MinPolyALength {
		recs = append(recs, "Optimize poly(A) tailing reaction to achieve desired tail length")
	}
	if m.GenomicDNA != nil && *m.GenomicDNA > conf.MaxGenomicContamination {
		recs = append(recs, "Perform DNase treatment to remove genomic DNA contamination")
	}

	if len(recs) == 0 {
		recs = append(recs, "All QC metrics meet specifications - sample is suitable for use")
	}
	return recs
}

// criticalParameters flags the readings most predictive of lot failure
func criticalParameters(m Metrics, conf *config.QCConfig) []string {
	var critical []string

	if m.RIN != nil && *m.RIN < conf.MinRIN {
		critical = append(critical, "RNA integrity")
	}
	if m.CappingEfficiency != nil && *m.CappingEfficiency < conf.MinCappingEfficiency {
		critical = append(critical, "5' capping efficiency")
	}
	if m.GenomicDNA != nil && *m.GenomicDNA > conf.MaxGenomicContamination {
		critical = append(critical, "DNA contamination")
	}
	return critical
}

// predictStability scores expected shelf stability from 100 down:
// -30 for compromised integrity, -20 for active degradation, -10 for
// GC content outside the 40-60% band. Missing readings deduct nothing.
func predictStability(m Metrics, conf *config.QCConfig) Stability {
	score := 100

	if m.RIN != nil && *m.RIN < conf.MinRIN {
		score -= 30
	}
	if m.DegradationRatio != nil && *m.DegradationRatio > conf.MaxDegradationRatio {
		score -= 20
	}
	if m.GCContent < 40 || m.GCContent > 60 {
		score -= 10
	}

	storage := "Use immediately"
	if score > 70 {
		storage = "Store at -80°C"
	}

	if score < 0 {
		score = 0
	}
	shelfLife := score / 10
	if shelfLife < 1 {
		shelfLife = 1
	}

	return Stability{
		Score:         score,
		Storage:       storage,
		ShelfLifeDays: shelfLife,
	}
}

// compliance maps the metrics onto regulatory guideline gates. A
// reading that was never taken cannot demonstrate compliance, so a
// nil measurement marks its gate false.
func compliance(m Metrics, conf *config.QCConfig) map[string]bool {
	return map[string]bool{
		"fda_purity_standards": m.A260A280 != nil && *m.A260A280 >= conf.MinA260A280 &&
			m.A260A230 != nil && *m.A260A230 >= conf.MinA260A230,
		"ema_integrity_standards": m.RIN != nil && *m.RIN >= conf.MinRIN,
		"ich_contamination_limits": m.GenomicDNA != nil && *m.GenomicDNA <= conf.MaxGenomicContamination &&
			m.Protein != nil && *m.Protein <= conf.MaxProteinContamination &&
			m.Endotoxin != nil && *m.Endotoxin <= conf.MaxEndotoxin,
		"usp_specifications": m.Concentration >= conf.MinConcentration &&
			m.TotalYield != nil && *m.TotalYield >= conf.MinYield,
	}
}
