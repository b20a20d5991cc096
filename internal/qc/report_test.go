package qc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stephenmesser/mrna-prototype/config"
)

func qcConf() *config.QCConfig {
	c := testConfig()
	return &c.QC
}

func TestQualityScore(t *testing.T) {
	tests := []struct {
		name string
		m    Metrics
		want float64
	}{
		{
			"all components at ceiling",
			Metrics{
				Concentration:     200.0,
				A260A280:          fp(2.0),
				RIN:               fp(10.0),
				CappingEfficiency: fp(100.0),
			},
			100.0,
		},
		{
			"typical in-spec sample",
			Metrics{
				Concentration:     150.0,
				A260A280:          fp(2.0),
				RIN:               fp(9.0),
				CappingEfficiency: fp(95.0),
			},
			96.25, // (100 + 100 + 90 + 95) / 4
		},
		{
			"below-spec concentration zeroes its component",
			Metrics{
				Concentration:     50.0,
				A260A280:          fp(2.0),
				RIN:               fp(10.0),
				CappingEfficiency: fp(100.0),
			},
			75.0, // (0 + 100 + 100 + 100) / 4
		},
		{
			"out-of-window purity scores half",
			Metrics{
				Concentration:     200.0,
				A260A280:          fp(1.5),
				RIN:               fp(10.0),
				CappingEfficiency: fp(100.0),
			},
			87.5, // (100 + 50 + 100 + 100) / 4
		},
		{
			"missing integrity and capping floor their components",
			Metrics{
				Concentration: 200.0,
				A260A280:      fp(2.0),
			},
			50.0, // (100 + 100 + 0 + 0) / 4
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, qualityScore(tt.m, qcConf()), 1e-9)
		})
	}
}

func TestRecommendations_priorityOrder(t *testing.T) {
	m := Metrics{
		Concentration:     50.0,
		TotalYield:        fp(5.0),
		A260A280:          fp(1.5),
		RIN:               fp(5.0),
		CappingEfficiency: fp(60.0),
		PolyALength:       40,
		GenomicDNA:        fp(2.0),
	}

	assert.Equal(t, []string{
		"Increase RNA concentration through precipitation or concentration methods",
		"Optimize IVT reaction conditions to improve yield",
		"RNA purity may be compromised - consider additional purification steps",
		"RNA integrity is compromised - check storage conditions and handling procedures",
		"Optimize 5' capping reaction or use alternative capping methods",
		"Optimize poly(A) tailing reaction to achieve desired tail length",
		"Perform DNase treatment to remove genomic DNA contamination",
	}, recommendations(m, qcConf()))
}

func TestRecommendations_cleanSample(t *testing.T) {
	m := Metrics{
		Concentration:     150.0,
		TotalYield:        fp(15.0),
		A260A280:          fp(2.0),
		RIN:               fp(9.0),
		CappingEfficiency: fp(95.0),
		PolyALength:       120,
		GenomicDNA:        fp(0.5),
	}

	assert.Equal(t,
		[]string{"All QC metrics meet specifications - sample is suitable for use"},
		recommendations(m, qcConf()))
}

func TestCriticalParameters(t *testing.T) {
	m := Metrics{
		Concentration:     150.0,
		RIN:               fp(5.0),
		CappingEfficiency: fp(60.0),
		GenomicDNA:        fp(2.0),
	}

	assert.Equal(t,
		[]string{"RNA integrity", "5' capping efficiency", "DNA contamination"},
		criticalParameters(m, qcConf()))

	assert.Empty(t, criticalParameters(Metrics{Concentration: 150.0, RIN: fp(9.0)}, qcConf()))
}

func TestPredictStability(t *testing.T) {
	tests := []struct {
		name      string
		m         Metrics
		score     int
		storage   string
		shelfLife int
	}{
		{
			"stable sample",
			Metrics{RIN: fp(9.0), DegradationRatio: fp(0.05), GCContent: 50.0},
			100, "Store at -80°C", 10,
		},
		{
			"low integrity alone",
			Metrics{RIN: fp(5.0), DegradationRatio: fp(0.05), GCContent: 50.0},
			70, "Use immediately", 7,
		},
		{
			"every deduction stacked",
			Metrics{RIN: fp(5.0), DegradationRatio: fp(0.3), GCContent: 30.0},
			40, "Use immediately", 4,
		},
		{
			"missing readings deduct nothing",
			Metrics{GCContent: 50.0},
			100, "Store at -80°C", 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := predictStability(tt.m, qcConf())
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.storage, got.Storage)
			assert.Equal(t, tt.shelfLife, got.ShelfLifeDays)
		})
	}
}

func TestCompliance(t *testing.T) {
	full := Metrics{
		Concentration: 150.0,
		TotalYield:    fp(15.0),
		A260A280:      fp(2.0),
		A260A230:      fp(2.0),
		RIN:           fp(9.0),
		GenomicDNA:    fp(0.5),
		Protein:       fp(5.0),
		Endotoxin:     fp(1.0),
	}

	got := compliance(full, qcConf())
	assert.True(t, got["fda_purity_standards"])
	assert.True(t, got["ema_integrity_standards"])
	assert.True(t, got["ich_contamination_limits"])
	assert.True(t, got["usp_specifications"])

	// an untaken reading cannot demonstrate compliance
	got = compliance(Metrics{Concentration: 150.0}, qcConf())
	assert.False(t, got["fda_purity_standards"])
	assert.False(t, got["ema_integrity_standards"])
	assert.False(t, got["ich_contamination_limits"])
	assert.False(t, got["usp_specifications"])
}
