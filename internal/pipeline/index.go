/*
PURPOSE:
  In-memory vector index backing the retrieval pipeline: stores chunk
  vectors per document and serves top-k cosine searches.

REQUIREMENTS:
  User-specified:
  - Retrieval scores follow the 1/(1+distance) similarity convention.

  Implementation-discovered:
  - The index is shared across batch workers, so all operations are
    mutex-guarded.
  - Searches are scoped to a document so concurrent benchmarks over
    different documents do not cross-contaminate retrieval.

ARCHITECTURE INTEGRATION:
  - Used by: internal/pipeline/retrieval.go

ERROR HANDLING:
  - Add validates chunk/vector parity and dimensions.

USAGE:
  idx := pipeline.NewIndex(256)
  err := idx.Add(docID, chunks, vecs)
  hits := idx.Search(docID, queryVec, 5)

MAINTENANCE:
  - A real vector database client would implement the same surface.
*/

package pipeline

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Hit is one search result.
type Hit struct {
	Chunk string
	Score float64
}

type indexEntry struct {
	documentID string
	chunk      string
	vec        []float32
}

// Index is a mutex-guarded in-memory vector store.
type Index struct {
	mu      sync.RWMutex
	dim     int
	entries []indexEntry
}

// NewIndex creates an index for vectors of the given dimension.
func NewIndex(dim int) *Index {
	return &Index{dim: dim}
}

// Add stores chunks and their vectors under a document id.
func (ix *Index) Add(documentID string, chunks []string, vecs [][]float32) error {
	if len(chunks) != len(vecs) {
		return fmt.Errorf("chunk/vector count mismatch: %d vs %d", len(chunks), len(vecs))
	}
	for i, v := range vecs {
		if len(v) != ix.dim {
			return fmt.Errorf("vector %d has dimension %d, index expects %d", i, len(v), ix.dim)
		}
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	for i := range chunks {
		ix.entries = append(ix.entries, indexEntry{
			documentID: documentID,
			chunk:      chunks[i],
			vec:        vecs[i],
		})
	}
	return nil
}

// Search returns the topK most similar chunks for a document. Score is
// 1/(1+d) where d is the cosine distance (1 - cosine similarity).
func (ix *Index) Search(documentID string, query []float32, topK int) []Hit {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var hits []Hit
	for _, e := range ix.entries {
		if e.documentID != documentID {
			continue
		}
		distance := 1.0 - cosine(query, e.vec)
		hits = append(hits, Hit{Chunk: e.chunk, Score: 1.0 / (1.0 + distance)})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })

	if topK > 0 && len(hits) > topK {
		hits = hits[:topK]
	}
	return hits
}

// Len reports the number of stored chunks across all documents.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
