// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// QCConfig holds the acceptance thresholds that lab measurements of
// an IVT RNA batch are scored against. The table is read-only after
// initialization; batch workers share a single instance.
type QCConfig struct {
	// minimum RNA concentration (ng/uL)
	MinConcentration float64 `mapstructure:"min-concentration"`

	// minimum total yield (ug)
	MinYield float64 `mapstructure:"min-yield"`

	// acceptable A260/A280 absorbance ratio window
	MinA260A280 float64 `mapstructure:"min-a260-a280"`
	MaxA260A280 float64 `mapstructure:"max-a260-a280"`

	// acceptable A260/A230 absorbance ratio window
	MinA260A230 float64 `mapstructure:"min-a260-a230"`
	MaxA260A230 float64 `mapstructure:"max-a260-a230"`

	// minimum RNA Integrity Number (1-10)
	MinRIN float64 `mapstructure:"min-rin"`

	// maximum degradation ratio
	MaxDegradationRatio float64 `mapstructure:"max-degradation-ratio"`

	// minimum sequence accuracy vs the expected sequence (%)
	MinSequenceAccuracy float64 `mapstructure:"min-sequence-accuracy"`

	// minimum 5' capping efficiency (%)
	MinCappingEfficiency float64 `mapstructure:"min-capping-efficiency"`

	// minimum poly(A) tail length (nt)
	MinPolyALength int `mapstructure:"min-poly-a-length"`

	// contamination ceilings
	MaxGenomicContamination float64 `mapstructure:"max-genomic-contamination"`
	MaxProteinContamination float64 `mapstructure:"max-protein-contamination"`
	MaxEndotoxin            float64 `mapstructure:"max-endotoxin"`

	// number of samples evaluated concurrently in a batch run
	BatchWorkers int `mapstructure:"batch-workers"`
}

// DesignConfig holds the structural criteria a plasmid design is
// validated against
type DesignConfig struct {
	// total vector length window (bp)
	MinTotalLength int `mapstructure:"min-total-length"`
	MaxTotalLength int `mapstructure:"max-total-length"`

	// acceptable whole-vector GC content window (%)
	MinGCContent float64 `mapstructure:"min-gc-content"`
	MaxGCContent float64 `mapstructure:"max-gc-content"`

	// codon usage frequency at or below which a codon is "rare"
	RareCodonCutoff float64 `mapstructure:"rare-codon-cutoff"`

	// in-frame occurrences of one rare codon before it's flagged
	MaxRareCodonRepeats int `mapstructure:"max-rare-codon-repeats"`

	// whether motif hits (restriction sites, homopolymer runs)
	// fail validation rather than just being reported
	MotifsAreFatal bool `mapstructure:"motifs-are-fatal"`
}

// Config is the root-level settings struct, a mix of settings from
// settings.yaml and those available from the command line
type Config struct {
	// whether to log per-step detail
	Verbose bool `mapstructure:"verbose"`

	// QC threshold table
	QC QCConfig `mapstructure:"qc"`

	// design validation criteria
	Design DesignConfig `mapstructure:"design"`
}

// setDefaults registers the stock acceptance limits with viper. A
// settings file or command line flag overrides any of them.
func setDefaults() {
	viper.SetDefault("qc.min-concentration", 100.0)
	viper.SetDefault("qc.min-yield", 10.0)
	viper.SetDefault("qc.min-a260-a280", 1.8)
	viper.SetDefault("qc.max-a260-a280", 2.2)
	viper.SetDefault("qc.min-a260-a230", 1.8)
	viper.SetDefault("qc.max-a260-a230", 2.5)
	viper.SetDefault("qc.min-rin", 7.0)
	viper.SetDefault("qc.max-degradation-ratio", 0.1)
	viper.SetDefault("qc.min-sequence-accuracy", 95.0)
	viper.SetDefault("qc.min-capping-efficiency", 80.0)
	viper.SetDefault("qc.min-poly-a-length", 100)
	viper.SetDefault("qc.max-genomic-contamination", 1.0)
	viper.SetDefault("qc.max-protein-contamination", 10.0)
	viper.SetDefault("qc.max-endotoxin", 5.0)
	viper.SetDefault("qc.batch-workers", 4)

	viper.SetDefault("design.min-total-length", 1000)
	viper.SetDefault("design.max-total-length", 10000)
	viper.SetDefault("design.min-gc-content", 30.0)
	viper.SetDefault("design.max-gc-content", 70.0)
	viper.SetDefault("design.rare-codon-cutoff", 0.10)
	viper.SetDefault("design.max-rare-codon-repeats", 3)
	viper.SetDefault("design.motifs-are-fatal", false)
}

// New returns a new Config struct populated by Viper settings (from
// the local settings.yaml and/or command line arguments)
func New() *Config {
	setDefaults()

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct: %v", err)
	}

	return c
}
