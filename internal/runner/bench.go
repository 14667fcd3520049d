/*
PURPOSE:
  High-level runner that orchestrates a full benchmark run: resolve
  documents, build both pipelines, fan out over the pool, write
  CSV/JSON results, print the summary and quality comparison.

REQUIREMENTS:
  User-specified:
  - Run both pipelines against every resolved document.
  - Log results to CSV/JSON as they arrive.
  - Missing input documents fail the run before any work starts.

  Implementation-discovered:
  - Needs to report progress to CLI.
  - Each run gets a UUID so result files from different runs can be
    correlated.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/runner, internal/pipeline, internal/output

ERROR HANDLING:
  - Setup errors (documents, engine, writers) abort the run.
  - Per-document errors are logged by the pool and skipped.

IMPLEMENTATION RULES:
  - Resolve documents first (fail fast), then build outputs.
  - Write each result as it arrives; never buffer the whole run.

USAGE:
  runner.Run(ctx, cfg)

RELATED FILES:
  - internal/runner/runner.go
  - internal/output/csv.go

MAINTENANCE:
  - Update when new output sinks are added.
*/

package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/docbench/docbench/internal/config"
	"github.com/docbench/docbench/internal/docset"
	"github.com/docbench/docbench/internal/eval"
	"github.com/docbench/docbench/internal/llm"
	"github.com/docbench/docbench/internal/metrics"
	"github.com/docbench/docbench/internal/model"
	"github.com/docbench/docbench/internal/ocr"
	"github.com/docbench/docbench/internal/output"
	"github.com/docbench/docbench/internal/pipeline"
)

// Run executes the full benchmark suite described by cfg.
func Run(ctx context.Context, cfg *config.Config) error {
	docs, err := docset.Resolve(cfg.Documents, cfg.DocsDir)
	if err != nil {
		return fmt.Errorf("resolving documents: %w", err)
	}

	engine, err := ocr.Select(cfg.OCREngine)
	if err != nil {
		return err
	}

	// Ensure output directory exists
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	// Setup Outputs
	csvPath := filepath.Join(cfg.OutputDir, cfg.OutputFile)
	csvWriter, err := output.NewCSVWriter(csvPath)
	if err != nil {
		return fmt.Errorf("failed to init CSV writer at %s: %w", csvPath, err)
	}
	defer csvWriter.Close()

	jsonPath := filepath.Join(cfg.OutputDir, "benchmark_results.jsonl")
	jsonWriter, err := output.NewJSONWriter(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to init JSON writer at %s: %w", jsonPath, err)
	}
	defer jsonWriter.Close()

	runID := uuid.NewString()
	rate := cfg.Pricing.Lookup(cfg.LLMProvider)

	embedder := pipeline.NewHashEmbedder(cfg.EmbeddingDim)
	retrieval := pipeline.NewRetrieval(engine, embedder, cfg.ChunkSize, cfg.ChunkOverlap, rate)

	var query, groundTruth string
	if len(cfg.Queries) > 0 {
		query = cfg.Queries[0]
	}
	if len(cfg.GroundTruths) > 0 {
		groundTruth = cfg.GroundTruths[0]
	}

	bench := &Benchmark{
		Compression: pipeline.NewCompression(engine, cfg.CompressionRatio, rate),
		Retrieval:   retrieval,
		Querier:     retrieval,
		Answerer:    llm.NewMockAnswerer(cfg.LLMProvider, cfg.Pricing),
		Query:       query,
		TopK:        cfg.TopK,
		Timeout:     cfg.TaskTimeout,
	}

	output.Logger.Info("Starting benchmark run",
		"run_id", runID,
		"documents", len(docs),
		"workers", cfg.Workers,
		"ocr_engine", engine.Name(),
		"pricing_version", cfg.Pricing.Version,
	)

	agg := metrics.NewAggregator()
	results := bench.RunBatch(ctx, docs, cfg.Workers, func(res model.BenchmarkResult) {
		agg.Add(res.Metrics)
		if err := csvWriter.Write(res.Metrics); err != nil {
			output.Logger.Error("Failed to write result to CSV", "error", err)
		}
		if err := jsonWriter.Write(res.Metrics); err != nil {
			output.Logger.Error("Failed to write result to JSON", "error", err)
		}
	})

	if failed := len(docs) - len(results); failed > 0 {
		output.Logger.Warn("Some documents failed", "failed", failed, "succeeded", len(results))
	}

	output.PrintSummary(os.Stdout, agg.Summary(runID))

	if query != "" {
		scorer := eval.NewScorer()
		compItems, retrItems := EvalItems(results, groundTruth)
		cmp := eval.Compare(
			eval.Batch(scorer, model.PipelineCompression, compItems),
			eval.Batch(scorer, model.PipelineRetrieval, retrItems),
		)
		output.PrintComparison(os.Stdout, cmp)
	}

	output.Logger.Info("Benchmark run complete",
		"run_id", runID,
		"results", len(results),
		"csv", csvPath,
		"json", jsonPath,
	)
	return nil
}
