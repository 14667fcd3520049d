/*
PURPOSE:
  Per-document benchmark execution and the bounded worker pool that
  fans it out over the document set.

REQUIREMENTS:
  User-specified:
  - Each document runs through both pipelines; comparative metrics
    derive from the two records.
  - A configured query is answered by each pipeline against its own
    representation.
  - Concurrency is a bounded pool; each task carries its own timeout
    and a failure never aborts the batch. N submitted documents with M
    failures yield exactly N-M results.

  Implementation-discovered:
  - The retrieval answer context is the joined retrieved chunks, not
    the full chunk set; it is retained on the result for evaluation.

ARCHITECTURE INTEGRATION:
  - Called by: internal/runner/bench.go, internal/cli
  - Uses: internal/pipeline, internal/metrics, internal/llm

ERROR HANDLING:
  - Logs per-document errors and continues (resilience).
  - A timed-out task surfaces context.DeadlineExceeded like any other
    failure.

IMPLEMENTATION RULES:
  - Workers share nothing but channels; the result handler runs on the
    single collector goroutine.

USAGE:
  b := &runner.Benchmark{...}
  results := b.RunBatch(ctx, docs, cfg.Workers, handle)

RELATED FILES:
  - internal/runner/bench.go

MAINTENANCE:
  - Update when multiple queries per document are supported.
*/

package runner

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/docbench/docbench/internal/docset"
	"github.com/docbench/docbench/internal/eval"
	"github.com/docbench/docbench/internal/llm"
	"github.com/docbench/docbench/internal/metrics"
	"github.com/docbench/docbench/internal/model"
	"github.com/docbench/docbench/internal/output"
	"github.com/docbench/docbench/internal/pipeline"
)

// Benchmark runs both pipelines over documents and answers the
// configured query with each.
type Benchmark struct {
	Compression pipeline.Pipeline
	Retrieval   pipeline.Pipeline
	Querier     pipeline.Querier
	Answerer    llm.Answerer

	// Query may be empty; then only the pipeline records and metrics
	// are produced.
	Query string
	TopK  int

	// Timeout bounds one document's full run. Zero means no limit.
	Timeout time.Duration
}

// Run benchmarks a single document through both pipelines.
func (b *Benchmark) Run(ctx context.Context, doc docset.Document) (model.BenchmarkResult, error) {
	now := time.Now()

	compRec, err := b.Compression.Process(ctx, doc)
	if err != nil {
		return model.BenchmarkResult{}, fmt.Errorf("compression pipeline: %w", err)
	}

	retrRec, err := b.Retrieval.Process(ctx, doc)
	if err != nil {
		return model.BenchmarkResult{}, fmt.Errorf("retrieval pipeline: %w", err)
	}

	m, err := metrics.Compare(compRec, retrRec, now)
	if err != nil {
		return model.BenchmarkResult{}, fmt.Errorf("metrics: %w", err)
	}

	res := model.BenchmarkResult{
		DocumentID:  doc.ID,
		Timestamp:   now,
		Path:        doc.Path,
		Compression: compRec,
		Retrieval:   retrRec,
		Metrics:     m,
	}

	if b.Query == "" || b.Answerer == nil {
		return res, nil
	}

	res.Query = b.Query

	// Compression answers against the compressed representation.
	compAns, err := b.Answerer.Answer(ctx, compRec.Context, b.Query)
	if err != nil {
		return model.BenchmarkResult{}, fmt.Errorf("compression answer: %w", err)
	}
	res.CompressionAnswer = compAns.Text
	res.CompressionContext = compRec.Context

	// Retrieval answers against the top-k retrieved chunks.
	chunks, _, err := b.Querier.Query(ctx, doc.ID, b.Query, b.TopK)
	if err != nil {
		return model.BenchmarkResult{}, fmt.Errorf("retrieval query: %w", err)
	}
	retrContext := strings.Join(chunks, " ")

	retrAns, err := b.Answerer.Answer(ctx, retrContext, b.Query)
	if err != nil {
		return model.BenchmarkResult{}, fmt.Errorf("retrieval answer: %w", err)
	}
	res.RetrievalAnswer = retrAns.Text
	res.RetrievalContext = retrContext

	return res, nil
}

// RunBatch fans documents out over a bounded worker pool. Failed
// documents are logged and skipped; the returned slice holds one
// result per successful document. handle, when non-nil, is invoked for
// each result from the collector goroutine, in arrival order.
func (b *Benchmark) RunBatch(ctx context.Context, docs []docset.Document, workers int, handle func(model.BenchmarkResult)) []model.BenchmarkResult {
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan docset.Document)
	resultCh := make(chan model.BenchmarkResult)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for doc := range jobs {
				res, err := b.runOne(ctx, doc)
				if err != nil {
					output.Logger.Error("Benchmark failed",
						"document", doc.ID,
						"path", doc.Path,
						"error", err,
					)
					continue
				}
				resultCh <- res
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, doc := range docs {
			select {
			case jobs <- doc:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	var results []model.BenchmarkResult
	for res := range resultCh {
		results = append(results, res)
		if handle != nil {
			handle(res)
		}
	}
	return results
}

// runOne applies the per-task timeout around Run.
func (b *Benchmark) runOne(ctx context.Context, doc docset.Document) (model.BenchmarkResult, error) {
	if b.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.Timeout)
		defer cancel()
	}
	return b.Run(ctx, doc)
}

// EvalItems splits the answered results into per-pipeline evaluation
// inputs. Results without an answered query are skipped.
func EvalItems(results []model.BenchmarkResult, groundTruth string) (compression, retrieval []eval.Item) {
	for _, r := range results {
		if r.Query == "" {
			continue
		}
		compression = append(compression, eval.Item{
			DocumentID:  r.DocumentID,
			Question:    r.Query,
			Answer:      r.CompressionAnswer,
			Context:     r.CompressionContext,
			GroundTruth: groundTruth,
		})
		retrieval = append(retrieval, eval.Item{
			DocumentID:  r.DocumentID,
			Question:    r.Query,
			Answer:      r.RetrievalAnswer,
			Context:     r.RetrievalContext,
			GroundTruth: groundTruth,
		})
	}
	return compression, retrieval
}
