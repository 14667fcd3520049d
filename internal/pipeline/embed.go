/*
PURPOSE:
  Embedder port plus the built-in deterministic hash embedder used to
  benchmark the retrieval orchestration without a model backend.

REQUIREMENTS:
  User-specified:
  - Embedding is an injected capability; real backends plug in behind
    the same interface.

  Implementation-discovered:
  - A token-hash bag-of-words vector is deterministic and preserves
    enough lexical overlap for top-k retrieval to be meaningful in
    benchmarks and tests.

ARCHITECTURE INTEGRATION:
  - Used by: internal/pipeline/retrieval.go

ERROR HANDLING:
  - Embed fails only on context cancellation.

IMPLEMENTATION RULES:
  - Vectors are L2-normalized; empty text yields the zero vector.

USAGE:
  e := pipeline.NewHashEmbedder(256)
  vec, err := e.Embed(ctx, "some text")

RELATED FILES:
  - internal/pipeline/index.go

MAINTENANCE:
  - Dimension is fixed per embedder instance; the index validates it.
*/

package pipeline

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
)

// Embedder converts text to a fixed-dimension vector.
type Embedder interface {
	Dimension() int
	Embed(ctx context.Context, text string) ([]float32, error)
}

// HashEmbedder is a deterministic bag-of-words embedder: each
// lowercased token increments the bucket selected by its FNV-1a hash.
type HashEmbedder struct {
	dim int
}

// NewHashEmbedder creates a hash embedder with the given dimension.
func NewHashEmbedder(dim int) *HashEmbedder {
	if dim <= 0 {
		dim = 256
	}
	return &HashEmbedder{dim: dim}
}

func (e *HashEmbedder) Dimension() int { return e.dim }

// Embed produces the normalized token-count vector for text.
func (e *HashEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vec := make([]float32, e.dim)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[h.Sum32()%uint32(e.dim)]++
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		inv := 1.0 / math.Sqrt(norm)
		for i := range vec {
			vec[i] = float32(float64(vec[i]) * inv)
		}
	}
	return vec, nil
}
