/*
PURPOSE:
  Pipeline port: the contract the batch runner uses to process one
  document and (for retrieval-style pipelines) answer queries.

REQUIREMENTS:
  User-specified:
  - Two variants: "compression" (OCR -> token compression) and
    "retrieval" (OCR -> chunk -> embed -> store -> retrieve).
  - Each run yields a timing/token/cost record and the context a query
    would be answered against.

ARCHITECTURE INTEGRATION:
  - Implemented by: compression.go, retrieval.go
  - Consumed by: internal/runner

ERROR HANDLING:
  - Process returns explicit errors; the runner decides whether to
    fail the batch or just the document.

IMPLEMENTATION RULES:
  - Context is threaded through so per-task timeouts propagate into
    OCR and embedding calls.

USAGE:
  rec, err := p.Process(ctx, doc)

RELATED FILES:
  - internal/runner/runner.go

MAINTENANCE:
  - New pipeline variants implement Pipeline.
*/

package pipeline

import (
	"context"

	"github.com/docbench/docbench/internal/docset"
	"github.com/docbench/docbench/internal/model"
)

// Pipeline processes one document into a timing/token/cost record.
type Pipeline interface {
	Name() string
	Process(ctx context.Context, doc docset.Document) (model.PipelineRecord, error)
}

// Querier retrieves the chunks most relevant to a query, scoped to a
// previously processed document. Scores are similarity values.
type Querier interface {
	Query(ctx context.Context, documentID, text string, topK int) (chunks []string, scores []float64, err error)
}
