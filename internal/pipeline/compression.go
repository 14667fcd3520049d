/*
PURPOSE:
  Compression pipeline (candidate): OCR -> vision-token estimate ->
  sentence-importance compression. Queries are later answered directly
  against the compressed representation.

REQUIREMENTS:
  User-specified:
  - Produce a PipelineRecord with OCR time, pre/post compression token
    counts, ratio, wall-clock time, estimated cost.

  Implementation-discovered:
  - Cost prices the compressed representation as LLM input tokens
    using the configured provider rate.

ARCHITECTURE INTEGRATION:
  - Implements: Pipeline
  - Uses: internal/ocr, internal/llm, compressor.go

ERROR HANDLING:
  - OCR failures are wrapped with the document id and surfaced to the
    runner.

USAGE:
  p := pipeline.NewCompression(engine, 4.0, rate)
  rec, err := p.Process(ctx, doc)

RELATED FILES:
  - internal/pipeline/retrieval.go

MAINTENANCE:
  - Swap the OCR engine via config (ocr_engine).
*/

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/docbench/docbench/internal/config"
	"github.com/docbench/docbench/internal/docset"
	"github.com/docbench/docbench/internal/llm"
	"github.com/docbench/docbench/internal/model"
	"github.com/docbench/docbench/internal/ocr"
	"github.com/docbench/docbench/internal/output"
)

// Compression is the vision-token-compression pipeline.
type Compression struct {
	engine     ocr.Engine
	compressor *TokenCompressor
	rate       config.Rate
}

// NewCompression creates the compression pipeline.
func NewCompression(engine ocr.Engine, targetRatio float64, rate config.Rate) *Compression {
	return &Compression{
		engine:     engine,
		compressor: NewTokenCompressor(targetRatio),
		rate:       rate,
	}
}

func (p *Compression) Name() string { return model.PipelineCompression }

// Process runs OCR and compression over one document.
func (p *Compression) Process(ctx context.Context, doc docset.Document) (model.PipelineRecord, error) {
	start := time.Now()

	ocrRes, err := p.engine.Recognize(ctx, doc.Path)
	if err != nil {
		return model.PipelineRecord{}, fmt.Errorf("compression ocr %s: %w", doc.ID, err)
	}

	visionTokens := llm.EstimateTokens(ocrRes.Text)
	comp := p.compressor.Compress(ocrRes.Text, visionTokens)

	output.Logger.Info("Compression complete",
		"document", doc.ID,
		"vision_tokens", visionTokens,
		"compressed_tokens", comp.CompressedTokens,
		"ratio", fmt.Sprintf("%.2fx", comp.Ratio),
	)

	return model.PipelineRecord{
		DocumentID:       doc.ID,
		Pipeline:         p.Name(),
		OCRTimeMs:        ocrRes.ElapsedMs,
		VisionTokens:     visionTokens,
		CompressedTokens: comp.CompressedTokens,
		CompressionRatio: comp.Ratio,
		TotalTokens:      comp.CompressedTokens,
		TotalTimeMs:      float64(time.Since(start).Microseconds()) / 1000.0,
		CostUSD:          llm.Cost(llm.TokenCount{Input: comp.CompressedTokens, Total: comp.CompressedTokens}, p.rate),
		Context:          comp.Text,
	}, nil
}
