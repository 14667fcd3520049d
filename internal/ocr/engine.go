/*
PURPOSE:
  OCR engine port: the contract pipelines use to turn a document
  image into text, plus the built-in mock engine.

REQUIREMENTS:
  User-specified:
  - Pipelines must be testable without any real model backend, so the
    engine is an injected capability.

  Implementation-discovered:
  - Engines report elapsed milliseconds themselves so pipelines do not
    need to re-measure.

ARCHITECTURE INTEGRATION:
  - Used by: internal/pipeline
  - Implementations: MockEngine (here), TesseractEngine (tesseract.go)

ERROR HANDLING:
  - Recognize returns explicit errors; the mock never fails.

IMPLEMENTATION RULES:
  - Interfaces are small and transport-agnostic so engines can be
    backed by native libraries or remote APIs without leaking
    provider-specific concerns into callers.
  - Context is honored on every call.

USAGE:
  eng, err := ocr.Select("mock")
  res, err := eng.Recognize(ctx, "scan.png")

RELATED FILES:
  - internal/ocr/tesseract.go
  - internal/pipeline/compression.go

MAINTENANCE:
  - Register new engines in Select.
*/

package ocr

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
)

// Result captures OCR output for a single document image.
type Result struct {
	Text       string
	Confidence float64
	ElapsedMs  float64
	Engine     string
}

// Engine is the OCR provider contract: one image in, one result out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, path string) (Result, error)
}

// Select returns the named engine.
func Select(name string) (Engine, error) {
	switch name {
	case "", "mock":
		return &MockEngine{}, nil
	case "tesseract":
		return NewTesseractEngine(), nil
	default:
		return nil, fmt.Errorf("unknown ocr engine: %s", name)
	}
}

// MockEngine returns deterministic sample text without touching the
// image contents. It exists so the benchmark orchestration can run in
// tests and demos with no model backend.
type MockEngine struct{}

func (m *MockEngine) Name() string { return "mock" }

// Recognize produces a fixed multi-sentence extraction keyed by the
// file name so different documents yield different text.
func (m *MockEngine) Recognize(ctx context.Context, path string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	start := time.Now()

	name := filepath.Base(path)
	text := fmt.Sprintf(`Sample extracted text from document %s.
This demonstrates the OCR extraction capability for benchmarking.
Key information and critical findings are preserved in the main body.
The summary section records the principal result and total figures.
Additional filler sentences describe context, layout and processing
details that carry less important content for downstream answering.`, name)

	return Result{
		Text:       text,
		Confidence: 0.95,
		ElapsedMs:  float64(time.Since(start).Microseconds()) / 1000.0,
		Engine:     m.Name(),
	}, nil
}
