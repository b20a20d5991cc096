package qc

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEvaluateBatch(t *testing.T) {
	seq := goodSequence()
	samples := []Sample{
		{Name: "lot-a", Sequence: seq, Measurement: goodMeasurement()},
		{Name: "lot-b", Sequence: "AUXG", Measurement: goodMeasurement()},
		{Name: "lot-c", Sequence: seq, Measurement: Measurement{Concentration: fp(50.0)}},
	}

	results, summary := EvaluateBatch(context.Background(), samples, testConfig(), zap.NewNop().Sugar())
	require.Len(t, results, 3)

	// results keep input order
	assert.Equal(t, "lot-a", results[0].Name)
	assert.Equal(t, "lot-b", results[1].Name)
	assert.Equal(t, "lot-c", results[2].Name)

	require.NotNil(t, results[0].Verdict)
	assert.Equal(t, StatusPass, results[0].Verdict.Overall)

	// the bad sample carries its error without stopping the batch
	assert.Nil(t, results[1].Verdict)
	var sampleErr *SampleError
	require.ErrorAs(t, results[1].Err, &sampleErr)
	assert.Equal(t, "lot-b", sampleErr.Sample)

	require.NotNil(t, results[2].Verdict)
	assert.Equal(t, StatusFail, results[2].Verdict.Overall)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Errored)
	assert.InDelta(t, 33.3, summary.SuccessRate, 0.1)
}

func TestEvaluateBatch_singleWorker(t *testing.T) {
	conf := testConfig()
	conf.QC.BatchWorkers = 1

	seq := goodSequence()
	samples := make([]Sample, 8)
	for i := range samples {
		samples[i] = Sample{Name: "lot", Sequence: seq, Measurement: goodMeasurement()}
	}

	results, summary := EvaluateBatch(context.Background(), samples, conf, zap.NewNop().Sugar())
	require.Len(t, results, 8)
	assert.Equal(t, 8, summary.Passed)
	assert.InDelta(t, 100.0, summary.SuccessRate, 1e-9)
}

func TestEvaluateBatch_zeroWorkers(t *testing.T) {
	conf := testConfig()
	conf.QC.BatchWorkers = 0

	seq := goodSequence()
	samples := []Sample{
		{Name: "lot-a", Sequence: seq, Measurement: goodMeasurement()},
		{Name: "lot-b", Sequence: seq, Measurement: goodMeasurement()},
	}

	// a misconfigured worker count must not hang the batch
	done := make(chan struct{})
	go func() {
		defer close(done)
		results, summary := EvaluateBatch(context.Background(), samples, conf, zap.NewNop().Sugar())
		if len(results) != 2 || summary.Passed != 2 {
			t.Errorf("got %d results, %d passed", len(results), summary.Passed)
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("batch with zero workers never finished")
	}
}

func TestWriteResults(t *testing.T) {
	seq := goodSequence()
	samples := []Sample{
		{Name: "lot-a", Sequence: seq, Measurement: goodMeasurement()},
		{Name: "lot-b", Sequence: "AUXG", Measurement: goodMeasurement()},
	}
	results, summary := EvaluateBatch(context.Background(), samples, testConfig(), zap.NewNop().Sugar())

	path := filepath.Join(t.TempDir(), "qc.json")
	require.NoError(t, WriteResults(path, results, summary))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var report struct {
		Summary BatchSummary `json:"summary"`
		Results []struct {
			Name  string `json:"name"`
			Error string `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(raw, &report))

	assert.Equal(t, 2, report.Summary.Total)
	require.Len(t, report.Results, 2)
	assert.Empty(t, report.Results[0].Error)
	assert.Contains(t, report.Results[1].Error, "lot-b")
}

func TestWriteSummary(t *testing.T) {
	seq := goodSequence()
	samples := []Sample{
		{Name: "lot-a", Sequence: seq, Measurement: goodMeasurement()},
		{Name: "lot-b", Sequence: "AUXG", Measurement: goodMeasurement()},
	}
	results, summary := EvaluateBatch(context.Background(), samples, testConfig(), zap.NewNop().Sugar())

	var buf bytes.Buffer
	WriteSummary(&buf, results, summary)

	out := buf.String()
	assert.Contains(t, out, "lot-a")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "2 samples")
}
