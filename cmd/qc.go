package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stephenmesser/mrna-prototype/config"
	"github.com/stephenmesser/mrna-prototype/internal/qc"
)

var (
	qcInput  string
	qcOutput string
)

// batchFile is the JSON layout "mrna qc" reads samples from
type batchFile struct {
	Samples []qc.Sample `json:"samples"`
}

// qcCmd represents the qc command
var qcCmd = &cobra.Command{
	Use:   "qc",
	Short: "Score a batch of IVT RNA samples against QC thresholds",
	Long: `Score a batch of IVT RNA samples against the configured quality
control thresholds.

The input file holds a "samples" list; each sample has a name, its
sequence, optionally the expected sequence, and the lab measurement.
Readings that were not taken are simply omitted: a missing optional
reading scores its check as a warning, never a failure. Concentration
is required.

The command exits non-zero when any sample fails or cannot be scored.`,
	Run: runQC,
}

func runQC(cmd *cobra.Command, args []string) {
	conf := config.New()

	raw, err := os.ReadFile(qcInput)
	if err != nil {
		logger.Fatalw("failed to read batch file", "path", qcInput, "error", err)
	}

	var batch batchFile
	if err := json.Unmarshal(raw, &batch); err != nil {
		logger.Fatalw("failed to parse batch file", "path", qcInput, "error", err)
	}
	if len(batch.Samples) == 0 {
		logger.Fatalw("batch file holds no samples", "path", qcInput)
	}

	logger.Infow("scoring batch",
		"samples", len(batch.Samples), "workers", conf.QC.BatchWorkers)

	results, summary := qc.EvaluateBatch(context.Background(), batch.Samples, conf, logger)

	if qcOutput != "" {
		if err := qc.WriteResults(qcOutput, results, summary); err != nil {
			logger.Fatalw("failed to write results", "path", qcOutput, "error", err)
		}
		logger.Infow("results written", "path", qcOutput)
	}

	qc.WriteSummary(os.Stdout, results, summary)

	if summary.Failed > 0 || summary.Errored > 0 {
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(qcCmd)

	qcCmd.Flags().StringVarP(&qcInput, "input", "i", "", "path to a JSON batch file of samples and measurements")
	qcCmd.Flags().StringVarP(&qcOutput, "out", "o", "", "path to write the JSON results to")

	qcCmd.MarkFlagRequired("input")

	qcCmd.Flags().Int("workers", 0, "number of samples scored concurrently")
	viper.BindPFlag("qc.batch-workers", qcCmd.Flags().Lookup("workers"))
}
