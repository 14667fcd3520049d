/*
PURPOSE:
  Comparative metric arithmetic and aggregation: percentage deltas
  between the two pipelines and run-level summaries.

REQUIREMENTS:
  User-specified:
  - reduction = (baseline - candidate) / baseline * 100, with the
    retrieval pipeline always the baseline denominator.
  - A zero denominator is a defined error (ErrZeroBaseline), never a
    silent Inf/NaN.
  - Summaries are arithmetic means per field and naive sums for
    totals; no weighting, no outlier handling.

  Implementation-discovered:
  - The aggregator is an explicit instance handed to each batch run so
    batches stay independent and testable; it is safe for concurrent
    Add from pool workers.

ARCHITECTURE INTEGRATION:
  - Called by: internal/runner
  - Consumes/produces: internal/model

ERROR HANDLING:
  - Compare reports which field had the zero baseline.

USAGE:
  m, err := metrics.Compare(compressionRec, retrievalRec)
  agg := metrics.NewAggregator()
  agg.Add(m)
  summary := agg.Summary(runID)

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Keep Summary in sync with model.Summary fields.
*/

package metrics

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/docbench/docbench/internal/model"
)

// ErrZeroBaseline indicates an undefined ratio: the baseline value used
// as the delta denominator is zero.
var ErrZeroBaseline = errors.New("undefined ratio: zero baseline")

// Delta computes (baseline - candidate) / baseline * 100.
func Delta(baseline, candidate float64) (float64, error) {
	if baseline == 0 {
		return 0, ErrZeroBaseline
	}
	return (baseline - candidate) / baseline * 100, nil
}

// Compare derives BenchmarkMetrics from the two pipeline records for
// the same document. The retrieval record is the baseline for all
// three percentage deltas.
func Compare(compression, retrieval model.PipelineRecord, now time.Time) (model.BenchmarkMetrics, error) {
	tokenReduction, err := Delta(float64(retrieval.TotalTokens), float64(compression.TotalTokens))
	if err != nil {
		return model.BenchmarkMetrics{}, fmt.Errorf("token reduction for %s: %w", retrieval.DocumentID, err)
	}

	latencyImprovement, err := Delta(retrieval.TotalTimeMs, compression.TotalTimeMs)
	if err != nil {
		return model.BenchmarkMetrics{}, fmt.Errorf("latency improvement for %s: %w", retrieval.DocumentID, err)
	}

	costSavings, err := Delta(retrieval.CostUSD, compression.CostUSD)
	if err != nil {
		return model.BenchmarkMetrics{}, fmt.Errorf("cost savings for %s: %w", retrieval.DocumentID, err)
	}

	return model.BenchmarkMetrics{
		DocumentID: compression.DocumentID,
		Timestamp:  now,

		CompressionOCRTimeMs:   compression.OCRTimeMs,
		CompressionRatio:       compression.CompressionRatio,
		CompressionTotalTokens: compression.TotalTokens,
		CompressionTotalTimeMs: compression.TotalTimeMs,
		CompressionCostUSD:     compression.CostUSD,

		RetrievalOCRTimeMs:   retrieval.OCRTimeMs,
		RetrievalChunkCount:  retrieval.ChunkCount,
		RetrievalTotalTokens: retrieval.TotalTokens,
		RetrievalTotalTimeMs: retrieval.TotalTimeMs,
		RetrievalCostUSD:     retrieval.CostUSD,

		TokenReductionPercent:     tokenReduction,
		LatencyImprovementPercent: latencyImprovement,
		CostSavingsPercent:        costSavings,
	}, nil
}

// Aggregator collects metrics for one batch run.
type Aggregator struct {
	mu      sync.Mutex
	metrics []model.BenchmarkMetrics
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Add appends one metrics record. Safe for concurrent use.
func (a *Aggregator) Add(m model.BenchmarkMetrics) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.metrics = append(a.metrics, m)
}

// Len reports how many records were collected.
func (a *Aggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.metrics)
}

// Metrics returns a snapshot copy of the collected records.
func (a *Aggregator) Metrics() []model.BenchmarkMetrics {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]model.BenchmarkMetrics, len(a.metrics))
	copy(out, a.metrics)
	return out
}

// Summary computes averages and totals over the collected records.
func (a *Aggregator) Summary(runID string) model.Summary {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := model.Summary{
		RunID:          runID,
		BenchmarkCount: len(a.metrics),
		Timestamp:      time.Now(),
	}
	if len(a.metrics) == 0 {
		return s
	}

	n := float64(len(a.metrics))
	for _, m := range a.metrics {
		s.AvgCompressionRatio += m.CompressionRatio
		s.AvgTokenReductionPercent += m.TokenReductionPercent
		s.AvgLatencyImprovementPct += m.LatencyImprovementPercent
		s.AvgCostSavingsPercent += m.CostSavingsPercent
		s.AvgCompressionTotalTimeMs += m.CompressionTotalTimeMs
		s.AvgRetrievalTotalTimeMs += m.RetrievalTotalTimeMs
		s.TotalCompressionCostUSD += m.CompressionCostUSD
		s.TotalRetrievalCostUSD += m.RetrievalCostUSD
	}
	s.AvgCompressionRatio /= n
	s.AvgTokenReductionPercent /= n
	s.AvgLatencyImprovementPct /= n
	s.AvgCostSavingsPercent /= n
	s.AvgCompressionTotalTimeMs /= n
	s.AvgRetrievalTotalTimeMs /= n
	s.TotalSavingsUSD = s.TotalRetrievalCostUSD - s.TotalCompressionCostUSD

	return s
}
