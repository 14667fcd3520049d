/*
PURPOSE:
  Defines the core data structures used throughout docbench.
  These models represent per-pipeline run records, comparative
  benchmark metrics, and answer-quality scores.

REQUIREMENTS:
  User-specified:
  - Record OCR time, token counts, wall-clock time, estimated cost
    for each pipeline run.
  - Comparative metrics use the retrieval pipeline as baseline.

  Implementation-discovered:
  - Need JSON tags: document_id, timestamp and the per-pipeline
    metric field names are a contract with downstream tooling.
  - Records are immutable once produced; only the aggregator holds
    collections of them.

ARCHITECTURE INTEGRATION:
  - Used by: internal/pipeline, internal/metrics, internal/eval,
    internal/runner, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Milliseconds as float64 to match the report field contract.

USAGE:
  rec := model.PipelineRecord{...}

RELATED FILES:
  - internal/output/csv.go
  - internal/output/json.go

MAINTENANCE:
  - Update CSV/JSON writers when adding new metric fields.
*/

package model

import (
	"time"
)

// Pipeline names used in records and reports.
const (
	PipelineCompression = "compression"
	PipelineRetrieval   = "retrieval"
)

// PipelineRecord is the outcome of running one pipeline over one document.
// It is created by a pipeline run and never mutated afterwards.
type PipelineRecord struct {
	DocumentID string `json:"document_id"`
	Pipeline   string `json:"pipeline"`

	OCRTimeMs float64 `json:"ocr_time_ms"`

	// Compression pipeline token accounting.
	VisionTokens     int     `json:"vision_tokens,omitempty"`
	CompressedTokens int     `json:"compressed_tokens,omitempty"`
	CompressionRatio float64 `json:"compression_ratio,omitempty"`

	// Retrieval pipeline token accounting.
	ChunkCount int `json:"chunk_count,omitempty"`

	TotalTokens int     `json:"total_tokens"`
	TotalTimeMs float64 `json:"total_time_ms"`
	CostUSD     float64 `json:"cost_usd"`

	// Context is the representation a query is answered against: the
	// compressed text for the compression pipeline, the joined
	// retrieved chunks for the retrieval pipeline. Excluded from
	// reports; it exists for answer-quality evaluation.
	Context string `json:"-"`
}

// BenchmarkMetrics combines two PipelineRecords for the same document
// with the derived percentage deltas. All deltas are computed against
// the retrieval (baseline) pipeline as denominator.
type BenchmarkMetrics struct {
	DocumentID string    `json:"document_id"`
	Timestamp  time.Time `json:"timestamp"`

	CompressionOCRTimeMs   float64 `json:"compression_ocr_time_ms"`
	CompressionRatio       float64 `json:"compression_ratio"`
	CompressionTotalTokens int     `json:"compression_total_tokens"`
	CompressionTotalTimeMs float64 `json:"compression_total_time_ms"`
	CompressionCostUSD     float64 `json:"compression_cost_usd"`

	RetrievalOCRTimeMs   float64 `json:"retrieval_ocr_time_ms"`
	RetrievalChunkCount  int     `json:"retrieval_chunk_count"`
	RetrievalTotalTokens int     `json:"retrieval_total_tokens"`
	RetrievalTotalTimeMs float64 `json:"retrieval_total_time_ms"`
	RetrievalCostUSD     float64 `json:"retrieval_cost_usd"`

	TokenReductionPercent     float64 `json:"token_reduction_percent"`
	LatencyImprovementPercent float64 `json:"latency_improvement_percent"`
	CostSavingsPercent        float64 `json:"cost_savings_percent"`
}

// EvaluationScore holds answer-quality scores for one answered question.
// Every component is within [0,1]; Overall is the fixed weighted sum
// 0.3*Faithfulness + 0.3*Relevancy + 0.2*ContextPrecision + 0.2*ContextRecall.
type EvaluationScore struct {
	Faithfulness     float64 `json:"faithfulness"`
	Relevancy        float64 `json:"relevancy"`
	ContextPrecision float64 `json:"context_precision"`
	ContextRecall    float64 `json:"context_recall"`
	Overall          float64 `json:"overall_score"`
}

// Evaluation ties a score to the pipeline and question that produced it.
type Evaluation struct {
	Pipeline    string          `json:"pipeline"`
	DocumentID  string          `json:"document_id"`
	Question    string          `json:"question"`
	Answer      string          `json:"answer"`
	GroundTruth string          `json:"ground_truth,omitempty"`
	Score       EvaluationScore `json:"score"`
	// AnswerSimilarity is the word-level similarity between answer and
	// ground truth (1 - word error rate, floored at 0). Zero when no
	// ground truth was supplied.
	AnswerSimilarity float64   `json:"answer_similarity,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

// BenchmarkResult is the complete outcome for one document: both
// pipeline records, the derived metrics, and the answered query if one
// was configured.
type BenchmarkResult struct {
	DocumentID string    `json:"document_id"`
	Timestamp  time.Time `json:"timestamp"`
	Path       string    `json:"path"`

	Compression PipelineRecord `json:"compression"`
	Retrieval   PipelineRecord `json:"retrieval"`

	Metrics BenchmarkMetrics `json:"metrics"`

	Query             string `json:"query,omitempty"`
	CompressionAnswer string `json:"compression_answer,omitempty"`
	RetrievalAnswer   string `json:"retrieval_answer,omitempty"`

	// Contexts each answer was produced from, retained in memory for
	// answer-quality evaluation but kept out of reports.
	CompressionContext string `json:"-"`
	RetrievalContext   string `json:"-"`
}

// Summary aggregates N benchmark metrics: arithmetic means per field
// and naive sums for the cost totals.
type Summary struct {
	RunID          string    `json:"run_id"`
	BenchmarkCount int       `json:"benchmark_count"`
	Timestamp      time.Time `json:"timestamp"`

	AvgCompressionRatio       float64 `json:"avg_compression_ratio"`
	AvgTokenReductionPercent  float64 `json:"avg_token_reduction_percent"`
	AvgLatencyImprovementPct  float64 `json:"avg_latency_improvement_percent"`
	AvgCostSavingsPercent     float64 `json:"avg_cost_savings_percent"`
	AvgCompressionTotalTimeMs float64 `json:"avg_compression_time_ms"`
	AvgRetrievalTotalTimeMs   float64 `json:"avg_retrieval_time_ms"`

	TotalCompressionCostUSD float64 `json:"total_compression_cost_usd"`
	TotalRetrievalCostUSD   float64 `json:"total_retrieval_cost_usd"`
	TotalSavingsUSD         float64 `json:"total_savings_usd"`
}
