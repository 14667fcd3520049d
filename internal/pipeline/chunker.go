/*
PURPOSE:
  Overlapping character chunker for the retrieval pipeline.

REQUIREMENTS:
  User-specified:
  - Chunk size and overlap are configurable (defaults 512/100).

  Implementation-discovered:
  - The final window must break the loop explicitly or small texts
    would loop forever on the overlap step-back.

ARCHITECTURE INTEGRATION:
  - Used by: internal/pipeline/retrieval.go

ERROR HANDLING:
  - None; empty text yields zero chunks.

USAGE:
  ch := pipeline.NewChunker(512, 100)
  out := ch.Chunk(text)

MAINTENANCE:
  - Sentence-boundary-aware chunking would be the next refinement.
*/

package pipeline

import (
	"strings"
	"time"
)

// ChunkOutput is the result of one chunking pass.
type ChunkOutput struct {
	Chunks    []string
	ElapsedMs float64
}

// Chunker splits text into overlapping character windows.
type Chunker struct {
	Size    int
	Overlap int
}

// NewChunker creates a chunker with the given window size and overlap.
func NewChunker(size, overlap int) *Chunker {
	return &Chunker{Size: size, Overlap: overlap}
}

// Chunk splits text into overlapping chunks.
func (c *Chunker) Chunk(text string) ChunkOutput {
	start := time.Now()

	var chunks []string
	for startIdx := 0; startIdx < len(text); {
		endIdx := startIdx + c.Size
		if endIdx > len(text) {
			endIdx = len(text)
		}

		chunks = append(chunks, strings.TrimSpace(text[startIdx:endIdx]))

		if endIdx == len(text) {
			break
		}
		startIdx = endIdx - c.Overlap
	}

	return ChunkOutput{
		Chunks:    chunks,
		ElapsedMs: float64(time.Since(start).Microseconds()) / 1000.0,
	}
}
