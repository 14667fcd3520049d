/*
PURPOSE:
  Token compressor: reduces extracted text to a target token budget by
  keeping the most important sentences.

REQUIREMENTS:
  User-specified:
  - Target compression ratio is configurable (default 4x).

  Implementation-discovered:
  - Compressed budget is floored at 10 tokens so tiny documents do not
    compress to nothing.
  - Sentence importance = keyword hits + length/100.

ARCHITECTURE INTEGRATION:
  - Used by: internal/pipeline/compression.go

ERROR HANDLING:
  - None; compression of empty text yields an empty representation.

IMPLEMENTATION RULES:
  - Selection is greedy over sentences sorted by importance; ties keep
    the earlier sentence first (stable sort).

USAGE:
  c := pipeline.NewTokenCompressor(4.0)
  out := c.Compress(text, originalTokens)

RELATED FILES:
  - internal/llm/llm.go (token estimation)

MAINTENANCE:
  - Keyword list tuning changes which sentences survive.
*/

package pipeline

import (
	"sort"
	"strings"
	"time"

	"github.com/docbench/docbench/internal/llm"
)

// importantKeywords boost a sentence's selection score.
var importantKeywords = []string{
	"key", "important", "critical", "main", "essential",
	"conclusion", "result", "finding", "summary", "total",
	"significant", "major", "primary", "principal",
}

// CompressionOutput is the result of one compression pass.
type CompressionOutput struct {
	Text             string
	OriginalTokens   int
	CompressedTokens int
	Ratio            float64
	ElapsedMs        float64
}

// TokenCompressor selects important sentences until a token budget
// derived from the target ratio is reached.
type TokenCompressor struct {
	TargetRatio float64
}

// NewTokenCompressor creates a compressor for the given target ratio.
func NewTokenCompressor(targetRatio float64) *TokenCompressor {
	return &TokenCompressor{TargetRatio: targetRatio}
}

// Compress reduces text toward originalTokens/TargetRatio tokens.
func (c *TokenCompressor) Compress(text string, originalTokens int) CompressionOutput {
	start := time.Now()

	target := int(float64(originalTokens) / c.TargetRatio)
	if target < 10 {
		target = 10
	}

	compressed := c.selectSentences(text, target)

	compressedTokens := llm.EstimateTokens(compressed)
	denom := compressedTokens
	if denom < 1 {
		denom = 1
	}

	return CompressionOutput{
		Text:             compressed,
		OriginalTokens:   originalTokens,
		CompressedTokens: compressedTokens,
		Ratio:            float64(originalTokens) / float64(denom),
		ElapsedMs:        float64(time.Since(start).Microseconds()) / 1000.0,
	}
}

type scoredSentence struct {
	score    float64
	sentence string
}

func (c *TokenCompressor) selectSentences(text string, targetTokens int) string {
	sentences := strings.Split(text, ".")

	scored := make([]scoredSentence, 0, len(sentences))
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if len(strings.Fields(s)) == 0 {
			continue
		}
		scored = append(scored, scoredSentence{score: scoreSentence(s), sentence: s})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	var selected []string
	tokenCount := 0
	for _, ss := range scored {
		sentenceTokens := llm.EstimateTokens(ss.sentence)
		if tokenCount+sentenceTokens > targetTokens {
			continue
		}
		selected = append(selected, ss.sentence)
		tokenCount += sentenceTokens
	}

	if len(selected) == 0 {
		return ""
	}
	return strings.Join(selected, ". ") + "."
}

func scoreSentence(sentence string) float64 {
	lower := strings.ToLower(sentence)
	score := 0.0
	for _, kw := range importantKeywords {
		if strings.Contains(lower, kw) {
			score += 1.0
		}
	}
	// Longer sentences carry more information.
	score += float64(len(strings.Fields(sentence))) / 100.0
	return score
}
