package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docbench/docbench/internal/config"
	"github.com/docbench/docbench/internal/docset"
	"github.com/docbench/docbench/internal/model"
	"github.com/docbench/docbench/internal/ocr"
)

var testRate = config.Rate{InputPer1K: 0.00075, OutputPer1K: 0.003}

func TestCompressionProcess(t *testing.T) {
	p := NewCompression(&ocr.MockEngine{}, 4.0, testRate)
	doc := docset.Document{ID: "doc1", Path: "invoice.png"}

	rec, err := p.Process(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, "doc1", rec.DocumentID)
	assert.Equal(t, model.PipelineCompression, rec.Pipeline)
	assert.Greater(t, rec.VisionTokens, 0)
	assert.Greater(t, rec.CompressedTokens, 0)
	assert.LessOrEqual(t, rec.CompressedTokens, rec.VisionTokens)
	assert.Equal(t, rec.CompressedTokens, rec.TotalTokens)
	assert.Greater(t, rec.CompressionRatio, 1.0)
	assert.Greater(t, rec.TotalTimeMs, 0.0)
	assert.Greater(t, rec.CostUSD, 0.0)
	assert.NotEmpty(t, rec.Context)
}

func TestRetrievalProcessAndQuery(t *testing.T) {
	ctx := context.Background()
	embedder := NewHashEmbedder(64)
	p := NewRetrieval(&ocr.MockEngine{}, embedder, 128, 32, testRate)
	doc := docset.Document{ID: "doc1", Path: "invoice.png"}

	rec, err := p.Process(ctx, doc)
	require.NoError(t, err)

	assert.Equal(t, model.PipelineRetrieval, rec.Pipeline)
	assert.Greater(t, rec.ChunkCount, 1)
	assert.Greater(t, rec.TotalTokens, 0)
	assert.Greater(t, rec.CostUSD, 0.0)
	assert.NotEmpty(t, rec.Context)

	chunks, scores, err := p.Query(ctx, doc.ID, "key information and critical findings", 2)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	require.Len(t, scores, 2)
	assert.GreaterOrEqual(t, scores[0], scores[1])
	for _, s := range scores {
		assert.Greater(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestProcessCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc := docset.Document{ID: "doc1", Path: "invoice.png"}

	_, err := NewCompression(&ocr.MockEngine{}, 4.0, testRate).Process(ctx, doc)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewRetrieval(&ocr.MockEngine{}, NewHashEmbedder(64), 128, 32, testRate).Process(ctx, doc)
	assert.ErrorIs(t, err, context.Canceled)
}
