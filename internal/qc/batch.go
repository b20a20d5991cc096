package qc

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/stephenmesser/mrna-prototype/config"
)

// Sample is one batch entry: a synthesized sequence plus the
// instrument readings taken for it
type Sample struct {
	Name        string      `json:"name"`
	Sequence    string      `json:"sequence"`
	Expected    string      `json:"expected_sequence,omitempty"`
	Measurement Measurement `json:"measurement"`
}

// SampleResult pairs a sample with its verdict, or with the error
// that kept it from being scored
type SampleResult struct {
	Name    string   `json:"name"`
	Verdict *Verdict `json:"verdict,omitempty"`
	Err     error    `json:"-"`
}

// BatchSummary tallies verdicts across a whole batch
type BatchSummary struct {
	Total       int     `json:"total_samples"`
	Passed      int     `json:"passed"`
	Warned      int     `json:"warnings"`
	Failed      int     `json:"failed"`
	Errored     int     `json:"errors"`
	SuccessRate float64 `json:"success_rate_percent"`
}

// EvaluateBatch scores every sample concurrently, bounded by the
// configured worker count. One sample failing to score does not stop
// the rest; its error is carried in the result slot. Results keep
// input order.
func EvaluateBatch(ctx context.Context, samples []Sample, conf *config.Config, logger *zap.SugaredLogger) ([]SampleResult, BatchSummary) {
	results := make([]SampleResult, len(samples))

	// a zero or negative worker count would make SetLimit block the
	// first worker forever
	workers := conf.QC.BatchWorkers
	if workers < 1 {
		logger.Warnw("invalid batch worker count, using 1", "workers", workers)
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, s := range samples {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = SampleResult{Name: s.Name, Err: &SampleError{Sample: s.Name, Err: err}}
				return nil
			}

			v, err := EvaluateSample(s.Name, s.Sequence, s.Measurement, s.Expected, conf)
			if err != nil {
				logger.Warnw("sample evaluation failed", "sample", s.Name, "error", err)
				results[i] = SampleResult{Name: s.Name, Err: &SampleError{Sample: s.Name, Err: err}}
				return nil
			}

			logger.Debugw("sample evaluated", "sample", s.Name, "status", v.Overall.String())
			results[i] = SampleResult{Name: s.Name, Verdict: v}
			return nil
		})
	}
	g.Wait() //nolint:errcheck // workers never return errors

	return results, summarizeBatch(results)
}

func summarizeBatch(results []SampleResult) BatchSummary {
	sum := BatchSummary{Total: len(results)}

	for _, r := range results {
		switch {
		case r.Err != nil:
			sum.Errored++
		case r.Verdict.Overall == StatusPass:
			sum.Passed++
		case r.Verdict.Overall == StatusWarning:
			sum.Warned++
		default:
			sum.Failed++
		}
	}

	if sum.Total > 0 {
		sum.SuccessRate = float64(sum.Passed+sum.Warned) / float64(sum.Total) * 100
	}
	return sum
}
