package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 60*time.Second, cfg.TaskTimeout)
	assert.Equal(t, "mock", cfg.OCREngine)
	assert.Equal(t, "gemini", cfg.LLMProvider)
	assert.Equal(t, 4.0, cfg.CompressionRatio)
	assert.Equal(t, 512, cfg.ChunkSize)
	assert.Equal(t, 100, cfg.ChunkOverlap)
	assert.Equal(t, 5, cfg.TopK)
	assert.Equal(t, 256, cfg.EmbeddingDim)

	require.NotEmpty(t, cfg.Pricing.Version)
	assert.Contains(t, cfg.Pricing.Rates, "gemini")
	assert.Contains(t, cfg.Pricing.Rates, "gpt-4")
	assert.NoError(t, cfg.validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docbench.yaml")
	data := `
documents:
  - ./docs/invoice.png
queries:
  - what is the total amount?
workers: 8
compression_ratio: 6.0
ocr_engine: tesseract
pricing:
  version: "2025-03"
  default_provider: gpt-4
  rates:
    gpt-4:
      input_per_1k: 0.03
      output_per_1k: 0.06
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"./docs/invoice.png"}, cfg.Documents)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 6.0, cfg.CompressionRatio)
	assert.Equal(t, "tesseract", cfg.OCREngine)
	assert.Equal(t, "2025-03", cfg.Pricing.Version)
	assert.Equal(t, "gpt-4", cfg.Pricing.DefaultProvider)

	// Untouched fields keep their defaults.
	assert.Equal(t, 512, cfg.ChunkSize)
	assert.Equal(t, 5, cfg.TopK)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: [not a number"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		errContains string
	}{
		{
			name:        "workers below one",
			mutate:      func(c *Config) { c.Workers = 0 },
			errContains: "workers",
		},
		{
			name:        "non-positive compression ratio",
			mutate:      func(c *Config) { c.CompressionRatio = 0 },
			errContains: "compression_ratio",
		},
		{
			name:        "non-positive chunk size",
			mutate:      func(c *Config) { c.ChunkSize = 0 },
			errContains: "chunk_size",
		},
		{
			name:        "overlap not smaller than chunk size",
			mutate:      func(c *Config) { c.ChunkOverlap = c.ChunkSize },
			errContains: "chunk_overlap",
		},
		{
			name:        "empty pricing table",
			mutate:      func(c *Config) { c.Pricing.Rates = nil },
			errContains: "pricing",
		},
		{
			name:        "default provider without rate entry",
			mutate:      func(c *Config) { c.Pricing.DefaultProvider = "unknown" },
			errContains: "default_provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.validate(), tt.errContains)
		})
	}
}

func TestPricingLookup(t *testing.T) {
	p := DefaultConfig().Pricing

	known := p.Lookup("gpt-4")
	assert.Equal(t, 0.03, known.InputPer1K)

	// Unknown providers fall back to the default provider rate.
	fallback := p.Lookup("no-such-provider")
	assert.Equal(t, p.Rates["gemini"], fallback)
}
