// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestConfig_defaults(t *testing.T) {
	viper.Reset()
	c := New()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"min concentration", c.QC.MinConcentration, 100.0},
		{"min yield", c.QC.MinYield, 10.0},
		{"min a260/a280", c.QC.MinA260A280, 1.8},
		{"max a260/a280", c.QC.MaxA260A280, 2.2},
		{"min a260/a230", c.QC.MinA260A230, 1.8},
		{"max a260/a230", c.QC.MaxA260A230, 2.5},
		{"min rin", c.QC.MinRIN, 7.0},
		{"max degradation", c.QC.MaxDegradationRatio, 0.1},
		{"min accuracy", c.QC.MinSequenceAccuracy, 95.0},
		{"min capping", c.QC.MinCappingEfficiency, 80.0},
		{"min poly-a", float64(c.QC.MinPolyALength), 100},
		{"max genomic contamination", c.QC.MaxGenomicContamination, 1.0},
		{"max protein contamination", c.QC.MaxProteinContamination, 10.0},
		{"max endotoxin", c.QC.MaxEndotoxin, 5.0},
		{"min gc", c.Design.MinGCContent, 30.0},
		{"max gc", c.Design.MaxGCContent, 70.0},
		{"min total length", float64(c.Design.MinTotalLength), 1000},
		{"max total length", float64(c.Design.MaxTotalLength), 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("New() %s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}

	if c.Design.MotifsAreFatal {
		t.Error("New() motifs-are-fatal should default to false")
	}
}

func TestConfig_override(t *testing.T) {
	viper.Reset()
	viper.Set("qc.min-concentration", 250.0)
	defer viper.Reset()

	c := New()

	if c.QC.MinConcentration != 250.0 {
		t.Errorf("New() min-concentration = %v, want viper override 250.0", c.QC.MinConcentration)
	}
	if c.QC.MinYield != 10.0 {
		t.Errorf("New() min-yield = %v, want default 10.0", c.QC.MinYield)
	}
}
