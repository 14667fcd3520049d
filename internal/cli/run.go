/*
PURPOSE:
  Defines the 'run' subcommand.
  Executes the full benchmark suite.

REQUIREMENTS:
  User-specified:
  - Run the benchmarks.
  - specific flags for overrides.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.

ARCHITECTURE INTEGRATION:
  - Calls: internal/runner.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails or runner fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Runner.Run.

USAGE:
  docbench run --docs invoice.png,contract.png --query "what is the total?"

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/docbench/docbench/internal/config"
	"github.com/docbench/docbench/internal/runner"
)

var (
	docsOverride        []string
	docsDirOverride     string
	queryOverride       []string
	groundTruthOverride []string
	outputOverride      string
	workersOverride     int
	ocrEngineOverride   string
	providerOverride    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark suite",
	Long: `Executes the full benchmark over the configured document set.
Each document runs through both pipelines:
1. Compression: OCR, vision-token estimate, importance-based compression.
2. Retrieval: OCR, chunk, embed, index, top-k retrieval.

Per-document metrics (token reduction, latency improvement, cost
savings, all relative to the retrieval baseline) are written to CSV and
JSON as they arrive, followed by a console summary. When a query is
configured, both pipelines answer it and the answers are scored head
to head.`,
	Example: `  # Run with defaults (uses docbench.yaml)
  docbench run

  # Benchmark explicit documents with a query
  docbench run --docs invoice.png,contract.png --query "what is the total amount?"

  # Discover documents in a directory, 8 workers
  docbench run --docs-dir ./scans --workers 8

  # Use the Tesseract OCR engine and GPT-4 pricing
  docbench run --docs-dir ./scans --ocr-engine tesseract --provider gpt-4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		// If err != nil here, it means user specified a file that didn't load, OR
		// parsing failed. config.Load handles "no file found" by returning defaults.
		if err != nil {
			return err
		}

		// 2. Overrides
		if len(docsOverride) > 0 {
			cfg.Documents = docsOverride
		}
		if docsDirOverride != "" {
			cfg.DocsDir = docsDirOverride
		}
		if len(queryOverride) > 0 {
			cfg.Queries = queryOverride
		}
		if len(groundTruthOverride) > 0 {
			cfg.GroundTruths = groundTruthOverride
		}
		if outputOverride != "" {
			cfg.OutputDir = outputOverride
		}
		if workersOverride > 0 {
			cfg.Workers = workersOverride
		}
		if ocrEngineOverride != "" {
			cfg.OCREngine = ocrEngineOverride
		}
		if providerOverride != "" {
			cfg.LLMProvider = providerOverride
		}

		// 3. Execution
		return runner.Run(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringSliceVar(&docsOverride, "docs", nil, "Comma-separated list of document paths")
	runCmd.Flags().StringVarP(&docsDirOverride, "docs-dir", "d", "", "Directory to discover documents in")
	runCmd.Flags().StringSliceVarP(&queryOverride, "query", "q", nil, "Query to answer against each document")
	runCmd.Flags().StringSliceVar(&groundTruthOverride, "ground-truth", nil, "Expected answer for the query (enables recall and similarity)")
	runCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for results (CSV/JSON)")
	runCmd.Flags().IntVarP(&workersOverride, "workers", "w", 0, "Worker pool size")
	runCmd.Flags().StringVar(&ocrEngineOverride, "ocr-engine", "", "OCR engine: mock or tesseract")
	runCmd.Flags().StringVar(&providerOverride, "provider", "", "LLM provider used for pricing")
}
