package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docbench/docbench/internal/llm"
)

func TestCompressReducesTokens(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("The key finding is that the total result exceeded expectations. ")
	for i := 0; i < 20; i++ {
		sb.WriteString("Plain filler sentence with several generic words describing layout and context. ")
	}
	text := sb.String()
	original := llm.EstimateTokens(text)

	c := NewTokenCompressor(4.0)
	out := c.Compress(text, original)

	assert.Equal(t, original, out.OriginalTokens)
	assert.Less(t, out.CompressedTokens, original)
	assert.Greater(t, out.CompressedTokens, 0)
	assert.InEpsilon(t, float64(original)/float64(out.CompressedTokens), out.Ratio, 1e-9)
	assert.Contains(t, out.Text, "key finding")
}

func TestCompressPrefersKeywordSentences(t *testing.T) {
	filler := "Mundane verbiage describing peripheral layout characteristics without informational payload or substance whatsoever in here. "
	text := "The summary records the key result and final conclusion. " +
		strings.Repeat(filler, 3)

	c := NewTokenCompressor(4.0)
	out := c.Compress(text, llm.EstimateTokens(text))

	assert.Contains(t, out.Text, "key result")
	assert.NotContains(t, out.Text, "Mundane")
}

func TestCompressShortTextKeptWhole(t *testing.T) {
	// Below the 10-token floor nothing needs to be dropped.
	text := "Total due is ten."

	c := NewTokenCompressor(4.0)
	out := c.Compress(text, llm.EstimateTokens(text))

	assert.Equal(t, "Total due is ten.", out.Text)
	assert.Equal(t, out.OriginalTokens, out.CompressedTokens)
}

func TestCompressEmptyText(t *testing.T) {
	c := NewTokenCompressor(4.0)
	out := c.Compress("", 0)

	assert.Empty(t, out.Text)
	assert.Zero(t, out.CompressedTokens)
}
