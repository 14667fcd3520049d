package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docbench/docbench/internal/docset"
	"github.com/docbench/docbench/internal/llm"
	"github.com/docbench/docbench/internal/model"
)

// fakePipeline returns canned records, fails for marked documents, and
// optionally blocks until the context is done.
type fakePipeline struct {
	name  string
	block bool
}

func (f *fakePipeline) Name() string { return f.name }

func (f *fakePipeline) Process(ctx context.Context, doc docset.Document) (model.PipelineRecord, error) {
	if f.block {
		<-ctx.Done()
		return model.PipelineRecord{}, ctx.Err()
	}
	if strings.HasPrefix(doc.Path, "fail") {
		return model.PipelineRecord{}, errors.New("ocr failed")
	}
	rec := model.PipelineRecord{
		DocumentID:  doc.ID,
		Pipeline:    f.name,
		TotalTokens: 500,
		TotalTimeMs: 100,
		CostUSD:     0.01,
		Context:     "the invoice total amount is ten million",
	}
	if f.name == model.PipelineCompression {
		rec.TotalTokens = 125
		rec.CompressionRatio = 4.0
	}
	return rec, nil
}

type fakeQuerier struct{}

func (fakeQuerier) Query(ctx context.Context, documentID, text string, topK int) ([]string, []float64, error) {
	return []string{"chunk one", "chunk two"}, []float64{0.9, 0.7}, nil
}

type fakeAnswerer struct{}

func (fakeAnswerer) Name() string { return "fake" }

func (fakeAnswerer) Answer(ctx context.Context, contextText, question string) (llm.Answer, error) {
	return llm.Answer{Text: "answer from " + contextText[:5]}, nil
}

func makeDocs(n, failures int) []docset.Document {
	docs := make([]docset.Document, 0, n)
	for i := 0; i < n; i++ {
		path := fmt.Sprintf("ok-%d.png", i)
		if i < failures {
			path = fmt.Sprintf("fail-%d.png", i)
		}
		docs = append(docs, docset.Document{ID: docset.ID(path), Path: path})
	}
	return docs
}

func TestRunAnswersQuery(t *testing.T) {
	b := &Benchmark{
		Compression: &fakePipeline{name: model.PipelineCompression},
		Retrieval:   &fakePipeline{name: model.PipelineRetrieval},
		Querier:     fakeQuerier{},
		Answerer:    fakeAnswerer{},
		Query:       "what is the total amount?",
		TopK:        2,
	}

	doc := docset.Document{ID: "doc1", Path: "ok.png"}
	res, err := b.Run(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, "doc1", res.DocumentID)
	assert.Equal(t, "what is the total amount?", res.Query)
	assert.NotEmpty(t, res.CompressionAnswer)
	assert.NotEmpty(t, res.RetrievalAnswer)
	assert.Equal(t, "the invoice total amount is ten million", res.CompressionContext)
	assert.Equal(t, "chunk one chunk two", res.RetrievalContext)

	assert.InDelta(t, 75.0, res.Metrics.TokenReductionPercent, 1e-9)
}

func TestRunWithoutQuery(t *testing.T) {
	b := &Benchmark{
		Compression: &fakePipeline{name: model.PipelineCompression},
		Retrieval:   &fakePipeline{name: model.PipelineRetrieval},
	}

	res, err := b.Run(context.Background(), docset.Document{ID: "doc1", Path: "ok.png"})
	require.NoError(t, err)
	assert.Empty(t, res.Query)
	assert.Empty(t, res.CompressionAnswer)
}

func TestRunBatchPartialFailures(t *testing.T) {
	for _, workers := range []int{1, 4, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			b := &Benchmark{
				Compression: &fakePipeline{name: model.PipelineCompression},
				Retrieval:   &fakePipeline{name: model.PipelineRetrieval},
			}

			docs := makeDocs(8, 3)
			var handled int
			results := b.RunBatch(context.Background(), docs, workers, func(model.BenchmarkResult) {
				handled++
			})

			assert.Len(t, results, 5, "every failure is skipped, every success kept")
			assert.Equal(t, 5, handled)
		})
	}
}

func TestRunBatchTimeout(t *testing.T) {
	b := &Benchmark{
		Compression: &fakePipeline{name: model.PipelineCompression, block: true},
		Retrieval:   &fakePipeline{name: model.PipelineRetrieval},
		Timeout:     10 * time.Millisecond,
	}

	results := b.RunBatch(context.Background(), makeDocs(2, 0), 2, nil)
	assert.Empty(t, results, "blocked documents time out and are skipped")
}

func TestEvalItems(t *testing.T) {
	results := []model.BenchmarkResult{
		{
			DocumentID:         "doc1",
			Query:              "what is the total?",
			CompressionAnswer:  "ten million",
			RetrievalAnswer:    "ten million",
			CompressionContext: "compressed context",
			RetrievalContext:   "retrieved context",
		},
		{DocumentID: "doc2"}, // no query answered
	}

	comp, retr := EvalItems(results, "ten million")
	require.Len(t, comp, 1)
	require.Len(t, retr, 1)

	assert.Equal(t, "compressed context", comp[0].Context)
	assert.Equal(t, "retrieved context", retr[0].Context)
	assert.Equal(t, "ten million", comp[0].GroundTruth)
	assert.Equal(t, "doc1", retr[0].DocumentID)
}
