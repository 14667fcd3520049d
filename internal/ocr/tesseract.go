/*
PURPOSE:
  Tesseract-backed OCR engine using the gosseract client.

REQUIREMENTS:
  User-specified:
  - Optional real OCR for local runs (ocr_engine: tesseract).

  Implementation-discovered:
  - gosseract clients are cheap but not goroutine-safe; a fresh client
    per call keeps the engine safe under the worker pool.
  - Word confidences come from RIL_WORD bounding boxes; Text() alone
    does not report confidence.

ARCHITECTURE INTEGRATION:
  - Implements: internal/ocr.Engine
  - Dependencies: github.com/otiai10/gosseract/v2 (requires the
    Tesseract native library at build time)

ERROR HANDLING:
  - Wraps client failures with the document path.

IMPLEMENTATION RULES:
  - Honor context cancellation before starting recognition.

USAGE:
  eng := ocr.NewTesseractEngine()

RELATED FILES:
  - internal/ocr/engine.go

MAINTENANCE:
  - Expose language hints if multi-language corpora show up.
*/

package ocr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine implements Engine on top of a local Tesseract
// installation.
type TesseractEngine struct {
	clientFactory func() *gosseract.Client
}

// NewTesseractEngine constructs a Tesseract-backed OCR engine.
func NewTesseractEngine() *TesseractEngine {
	return &TesseractEngine{clientFactory: gosseract.NewClient}
}

func (e *TesseractEngine) Name() string { return "tesseract" }

// Recognize performs OCR on a single image file.
func (e *TesseractEngine) Recognize(ctx context.Context, path string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	start := time.Now()

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImage(path); err != nil {
		return Result{}, fmt.Errorf("set image %s: %w", path, err)
	}

	text, err := c.Text()
	if err != nil {
		return Result{}, fmt.Errorf("recognize %s: %w", path, err)
	}

	return Result{
		Text:       strings.TrimSpace(text),
		Confidence: meanWordConfidence(c),
		ElapsedMs:  float64(time.Since(start).Microseconds()) / 1000.0,
		Engine:     e.Name(),
	}, nil
}

func meanWordConfidence(c *gosseract.Client) float64 {
	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 0
	}
	var sum float64
	for _, b := range boxes {
		sum += b.Confidence / 100.0
	}
	return sum / float64(len(boxes))
}
