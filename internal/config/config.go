/*
PURPOSE:
  Defines the configuration structure and loading logic for docbench.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of document set, queries, worker count,
    timeouts, chunking and compression tuning, output locations.
  - Pricing is a versioned table, not inline constants, so rate
    updates do not require code changes.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Unknown pricing providers fall back to the default provider rate.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/runner, internal/llm
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing config file falls back to defaults.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should be sensible (mock engines, 4 workers, 4x ratio).

USAGE:
  cfg, err := config.Load("docbench.yaml")

RELATED FILES:
  - internal/cli/run.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Rate is the per-1k-token price pair for one LLM provider.
type Rate struct {
	InputPer1K  float64 `yaml:"input_per_1k"`
	OutputPer1K float64 `yaml:"output_per_1k"`
}

// Pricing is a versioned rate table keyed by provider name.
type Pricing struct {
	Version         string          `yaml:"version"`
	DefaultProvider string          `yaml:"default_provider"`
	Rates           map[string]Rate `yaml:"rates"`
}

// Lookup returns the rate for a provider, falling back to the default
// provider when the name is unknown.
func (p Pricing) Lookup(provider string) Rate {
	if r, ok := p.Rates[provider]; ok {
		return r
	}
	return p.Rates[p.DefaultProvider]
}

// Config represents the full configuration for docbench.
type Config struct {
	// Documents is the set of input files; Docs may alternatively name
	// a directory to discover documents in.
	Documents []string `yaml:"documents"`
	DocsDir   string   `yaml:"docs_dir"`

	// Queries are answered against each document by both pipelines.
	// GroundTruths, when present, line up with Queries by index.
	Queries      []string `yaml:"queries"`
	GroundTruths []string `yaml:"ground_truths"`

	OutputDir  string `yaml:"output_dir"`
	OutputFile string `yaml:"output_file"`

	Workers     int           `yaml:"workers"`
	TaskTimeout time.Duration `yaml:"task_timeout"`

	OCREngine   string `yaml:"ocr_engine"`   // "mock" or "tesseract"
	LLMProvider string `yaml:"llm_provider"` // pricing table key

	CompressionRatio float64 `yaml:"compression_ratio"`
	ChunkSize        int     `yaml:"chunk_size"`
	ChunkOverlap     int     `yaml:"chunk_overlap"`
	TopK             int     `yaml:"top_k"`
	EmbeddingDim     int     `yaml:"embedding_dim"`

	Pricing Pricing `yaml:"pricing"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:        "./benchmark_results",
		OutputFile:       "benchmark_metrics.csv",
		Workers:          4,
		TaskTimeout:      60 * time.Second,
		OCREngine:        "mock",
		LLMProvider:      "gemini",
		CompressionRatio: 4.0,
		ChunkSize:        512,
		ChunkOverlap:     100,
		TopK:             5,
		EmbeddingDim:     256,
		Pricing: Pricing{
			Version:         "2024-01",
			DefaultProvider: "gemini",
			Rates: map[string]Rate{
				"gemini":      {InputPer1K: 0.00075, OutputPer1K: 0.003},
				"gpt-4":       {InputPer1K: 0.03, OutputPer1K: 0.06},
				"gpt-4-turbo": {InputPer1K: 0.01, OutputPer1K: 0.03},
			},
		},
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		defaults := []string{"docbench.yaml", "docbench.yml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			// No config file found, return default
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if c.CompressionRatio <= 0 {
		return fmt.Errorf("compression_ratio must be > 0, got %g", c.CompressionRatio)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be > 0, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("chunk_overlap must be in [0, chunk_size), got %d", c.ChunkOverlap)
	}
	if len(c.Pricing.Rates) == 0 {
		return fmt.Errorf("pricing table is empty")
	}
	if _, ok := c.Pricing.Rates[c.Pricing.DefaultProvider]; !ok {
		return fmt.Errorf("pricing default_provider %q has no rate entry", c.Pricing.DefaultProvider)
	}
	return nil
}
