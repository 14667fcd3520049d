/*
PURPOSE:
  Retrieval pipeline (baseline/control): OCR -> chunk -> embed ->
  vector index. Queries retrieve top-k chunks for answering.

REQUIREMENTS:
  User-specified:
  - Produce a PipelineRecord with OCR time, chunk count, token total,
    wall-clock time, estimated cost.
  - Query returns (chunks, scores) for a processed document.

  Implementation-discovered:
  - The record's Context is the joined chunk text so evaluation has a
    representation even before a query runs; a query replaces it with
    the retrieved subset at answer time.

ARCHITECTURE INTEGRATION:
  - Implements: Pipeline, Querier
  - Uses: internal/ocr, chunker.go, embed.go, index.go

ERROR HANDLING:
  - OCR/embedding/index failures are wrapped with the document id.

USAGE:
  p := pipeline.NewRetrieval(engine, embedder, 512, 100, rate)
  rec, err := p.Process(ctx, doc)
  chunks, scores, err := p.Query(ctx, doc.ID, "what is ...", 5)

RELATED FILES:
  - internal/pipeline/compression.go

MAINTENANCE:
  - Real vector database backends replace Index behind Querier.
*/

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/docbench/docbench/internal/config"
	"github.com/docbench/docbench/internal/docset"
	"github.com/docbench/docbench/internal/llm"
	"github.com/docbench/docbench/internal/model"
	"github.com/docbench/docbench/internal/ocr"
	"github.com/docbench/docbench/internal/output"
)

// Retrieval is the chunk+embed+retrieve pipeline.
type Retrieval struct {
	engine   ocr.Engine
	chunker  *Chunker
	embedder Embedder
	index    *Index
	rate     config.Rate
}

// NewRetrieval creates the retrieval pipeline with its own index.
func NewRetrieval(engine ocr.Engine, embedder Embedder, chunkSize, chunkOverlap int, rate config.Rate) *Retrieval {
	return &Retrieval{
		engine:   engine,
		chunker:  NewChunker(chunkSize, chunkOverlap),
		embedder: embedder,
		index:    NewIndex(embedder.Dimension()),
		rate:     rate,
	}
}

func (p *Retrieval) Name() string { return model.PipelineRetrieval }

// Process runs OCR, chunking, embedding and indexing over one document.
func (p *Retrieval) Process(ctx context.Context, doc docset.Document) (model.PipelineRecord, error) {
	start := time.Now()

	ocrRes, err := p.engine.Recognize(ctx, doc.Path)
	if err != nil {
		return model.PipelineRecord{}, fmt.Errorf("retrieval ocr %s: %w", doc.ID, err)
	}

	chunked := p.chunker.Chunk(ocrRes.Text)

	vecs := make([][]float32, 0, len(chunked.Chunks))
	totalTokens := 0
	for _, chunk := range chunked.Chunks {
		vec, err := p.embedder.Embed(ctx, chunk)
		if err != nil {
			return model.PipelineRecord{}, fmt.Errorf("retrieval embed %s: %w", doc.ID, err)
		}
		vecs = append(vecs, vec)
		totalTokens += llm.EstimateTokens(chunk)
	}

	if err := p.index.Add(doc.ID, chunked.Chunks, vecs); err != nil {
		return model.PipelineRecord{}, fmt.Errorf("retrieval index %s: %w", doc.ID, err)
	}

	output.Logger.Info("Retrieval indexing complete",
		"document", doc.ID,
		"chunks", len(chunked.Chunks),
		"tokens", totalTokens,
	)

	return model.PipelineRecord{
		DocumentID:  doc.ID,
		Pipeline:    p.Name(),
		OCRTimeMs:   ocrRes.ElapsedMs,
		ChunkCount:  len(chunked.Chunks),
		TotalTokens: totalTokens,
		TotalTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
		CostUSD:     llm.Cost(llm.TokenCount{Input: totalTokens, Total: totalTokens}, p.rate),
		Context:     strings.Join(chunked.Chunks, " "),
	}, nil
}

// Query embeds the query text and returns the topK most similar chunks
// for the document with their similarity scores.
func (p *Retrieval) Query(ctx context.Context, documentID, text string, topK int) ([]string, []float64, error) {
	vec, err := p.embedder.Embed(ctx, text)
	if err != nil {
		return nil, nil, fmt.Errorf("query embed: %w", err)
	}

	hits := p.index.Search(documentID, vec, topK)

	chunks := make([]string, 0, len(hits))
	scores := make([]float64, 0, len(hits))
	for _, h := range hits {
		chunks = append(chunks, h.Chunk)
		scores = append(scores, h.Score)
	}
	return chunks, scores, nil
}
