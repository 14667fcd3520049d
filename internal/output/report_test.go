package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docbench/docbench/internal/eval"
	"github.com/docbench/docbench/internal/model"
)

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, model.Summary{
		RunID:                    "run-1",
		BenchmarkCount:           3,
		AvgCompressionRatio:      4.2,
		AvgTokenReductionPercent: 75.0,
		TotalSavingsUSD:          0.0123,
	})

	out := buf.String()
	assert.Contains(t, out, "BENCHMARK SUMMARY REPORT")
	assert.Contains(t, out, "Run ID: run-1")
	assert.Contains(t, out, "Documents Processed: 3")
	assert.Contains(t, out, "Average Compression Ratio: 4.20x")
	assert.Contains(t, out, "Average Token Reduction: 75.0%")
	assert.Contains(t, out, "Total Savings: $0.0123")
}

func TestPrintComparison(t *testing.T) {
	var buf bytes.Buffer
	PrintComparison(&buf, eval.Comparison{
		Compression:   eval.Averages{Overall: 0.61},
		Retrieval:     eval.Averages{Overall: 0.63},
		OverallDiff:   -0.02,
		QualityParity: "maintained",
	})

	out := buf.String()
	assert.Contains(t, out, "ANSWER QUALITY REPORT")
	assert.Contains(t, out, "Compression Pipeline")
	assert.Contains(t, out, "Retrieval Pipeline")
	assert.Contains(t, out, "Overall Score Difference: -0.0200")
	assert.Contains(t, out, "Quality Parity: maintained")
}
