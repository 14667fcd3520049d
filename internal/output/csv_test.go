package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docbench/docbench/internal/model"
)

func sampleMetrics() model.BenchmarkMetrics {
	return model.BenchmarkMetrics{
		DocumentID:                "abc12345",
		Timestamp:                 time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		CompressionOCRTimeMs:      10.5,
		CompressionRatio:          4.0,
		CompressionTotalTokens:    250,
		CompressionTotalTimeMs:    120.25,
		CompressionCostUSD:        0.0001875,
		RetrievalOCRTimeMs:        11.0,
		RetrievalChunkCount:       3,
		RetrievalTotalTokens:      1000,
		RetrievalTotalTimeMs:      150.5,
		RetrievalCostUSD:          0.00075,
		TokenReductionPercent:     75.0,
		LatencyImprovementPercent: 20.1,
		CostSavingsPercent:        75.0,
	}
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.csv")

	w, err := NewCSVWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleMetrics()))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	wantHeader := []string{
		"document_id", "timestamp",
		"compression_ocr_time_ms", "compression_ratio",
		"compression_total_tokens", "compression_total_time_ms",
		"compression_cost_usd",
		"retrieval_ocr_time_ms", "retrieval_chunk_count",
		"retrieval_total_tokens", "retrieval_total_time_ms",
		"retrieval_cost_usd",
		"token_reduction_percent", "latency_improvement_percent",
		"cost_savings_percent",
	}
	assert.Equal(t, wantHeader, rows[0])

	row := rows[1]
	require.Len(t, row, len(wantHeader))
	assert.Equal(t, "abc12345", row[0])
	assert.Equal(t, "2025-06-01T12:00:00Z", row[1])
	assert.Equal(t, "250", row[4])
	assert.Equal(t, "3", row[8])
	assert.Equal(t, "75.0", row[12])
}

func TestCSVWriterFlushesPerWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.csv")

	w, err := NewCSVWriter(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Write(sampleMetrics()))

	// Readable before Close: a crashed run keeps completed rows.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "abc12345")
}
