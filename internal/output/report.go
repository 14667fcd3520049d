/*
PURPOSE:
  Renders human-readable console reports: the benchmark summary
  (counts, averages, totals) and the pipeline quality comparison.

REQUIREMENTS:
  User-specified:
  - Console summary at the end of a run.

  Implementation-discovered:
  - Writers take an io.Writer so tests can capture output.

ARCHITECTURE INTEGRATION:
  - Called by: internal/runner, internal/cli
  - Consumes: internal/model.Summary, internal/eval.Comparison

ERROR HANDLING:
  - Best effort; fmt errors to the writer are ignored.

IMPLEMENTATION RULES:
  - Plain fmt, fixed-width rules, no terminal control codes.

USAGE:
  output.PrintSummary(os.Stdout, summary)

RELATED FILES:
  - internal/metrics/metrics.go
  - internal/eval/eval.go

MAINTENANCE:
  - Keep sections in sync with Summary/Comparison fields.
*/

package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/docbench/docbench/internal/eval"
	"github.com/docbench/docbench/internal/model"
)

const rule = 70

// PrintSummary writes the benchmark summary report.
func PrintSummary(w io.Writer, s model.Summary) {
	line := strings.Repeat("=", rule)

	fmt.Fprintf(w, "\n%s\n", line)
	fmt.Fprintln(w, "BENCHMARK SUMMARY REPORT")
	fmt.Fprintf(w, "%s\n", line)

	fmt.Fprintf(w, "\nRun ID: %s\n", s.RunID)
	fmt.Fprintf(w, "Documents Processed: %d\n", s.BenchmarkCount)
	fmt.Fprintf(w, "Timestamp: %s\n", s.Timestamp.Format(time.RFC3339))

	fmt.Fprintln(w, "\n--- Efficiency Metrics ---")
	fmt.Fprintf(w, "Average Compression Ratio: %.2fx\n", s.AvgCompressionRatio)
	fmt.Fprintf(w, "Average Token Reduction: %.1f%%\n", s.AvgTokenReductionPercent)
	fmt.Fprintf(w, "Average Latency Improvement: %.1f%%\n", s.AvgLatencyImprovementPct)
	fmt.Fprintf(w, "Average Cost Savings: %.1f%%\n", s.AvgCostSavingsPercent)

	fmt.Fprintln(w, "\n--- Cost Analysis ---")
	fmt.Fprintf(w, "Total Compression Cost: $%.4f\n", s.TotalCompressionCostUSD)
	fmt.Fprintf(w, "Total Retrieval Cost: $%.4f\n", s.TotalRetrievalCostUSD)
	fmt.Fprintf(w, "Total Savings: $%.4f\n", s.TotalSavingsUSD)

	fmt.Fprintln(w, "\n--- Latency Analysis ---")
	fmt.Fprintf(w, "Average Compression Time: %.1fms\n", s.AvgCompressionTotalTimeMs)
	fmt.Fprintf(w, "Average Retrieval Time: %.1fms\n", s.AvgRetrievalTotalTimeMs)

	fmt.Fprintf(w, "\n%s\n\n", line)
}

// PrintComparison writes the answer-quality comparison report.
func PrintComparison(w io.Writer, c eval.Comparison) {
	line := strings.Repeat("=", rule)

	fmt.Fprintf(w, "\n%s\n", line)
	fmt.Fprintln(w, "ANSWER QUALITY REPORT")
	fmt.Fprintf(w, "%s\n", line)

	printAverages := func(title string, a eval.Averages) {
		fmt.Fprintf(w, "\n--- %s ---\n", title)
		fmt.Fprintf(w, "Faithfulness: %.4f\n", a.Faithfulness)
		fmt.Fprintf(w, "Answer Relevancy: %.4f\n", a.Relevancy)
		fmt.Fprintf(w, "Context Precision: %.4f\n", a.ContextPrecision)
		fmt.Fprintf(w, "Context Recall: %.4f\n", a.ContextRecall)
		fmt.Fprintf(w, "Overall Score: %.4f\n", a.Overall)
	}

	printAverages("Compression Pipeline", c.Compression)
	printAverages("Retrieval Pipeline", c.Retrieval)

	fmt.Fprintln(w, "\n--- Comparative Analysis ---")
	fmt.Fprintf(w, "Faithfulness Difference: %.4f\n", c.FaithfulnessDiff)
	fmt.Fprintf(w, "Relevancy Difference: %.4f\n", c.RelevancyDiff)
	fmt.Fprintf(w, "Precision Difference: %.4f\n", c.PrecisionDiff)
	fmt.Fprintf(w, "Recall Difference: %.4f\n", c.RecallDiff)
	fmt.Fprintf(w, "Overall Score Difference: %.4f\n", c.OverallDiff)
	fmt.Fprintf(w, "Quality Parity: %s\n", c.QualityParity)

	fmt.Fprintf(w, "\n%s\n\n", line)
}
