/*
PURPOSE:
  LLM answering port: the contract pipelines use to answer a question
  against a document representation, plus token estimation and
  pricing-based cost calculation.

REQUIREMENTS:
  User-specified:
  - Answering must work without a real model backend (mock answerer).
  - Cost comes from the versioned pricing table in config, never from
    inline constants.

  Implementation-discovered:
  - Token counts are estimated at words x 1.3 when the backend does
    not report exact usage.

ARCHITECTURE INTEGRATION:
  - Used by: internal/pipeline, internal/runner
  - Uses: internal/config (pricing table)

ERROR HANDLING:
  - Answer returns explicit errors; the mock only fails on context
    cancellation.

IMPLEMENTATION RULES:
  - Context is honored on every call.

USAGE:
  a := llm.NewMockAnswerer("gemini", cfg.Pricing)
  ans, err := a.Answer(ctx, contextText, question)

RELATED FILES:
  - internal/config/config.go
  - internal/pipeline/compression.go

MAINTENANCE:
  - Real provider clients implement Answerer behind the same port.
*/

package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/docbench/docbench/internal/config"
)

// TokenCount carries estimated token usage for one LLM call.
type TokenCount struct {
	Input  int
	Output int
	Total  int
}

// Answer is the outcome of one answering call.
type Answer struct {
	Text      string
	Tokens    TokenCount
	ElapsedMs float64
	CostUSD   float64
}

// Answerer answers a question against a context string.
type Answerer interface {
	Name() string
	Answer(ctx context.Context, contextText, question string) (Answer, error)
}

// EstimateTokens approximates the token count of a text at 1.3 tokens
// per whitespace-separated word.
func EstimateTokens(text string) int {
	return int(float64(len(strings.Fields(text))) * 1.3)
}

// Cost prices a token count against a provider's rate.
func Cost(tokens TokenCount, rate config.Rate) float64 {
	input := float64(tokens.Input) / 1000 * rate.InputPer1K
	output := float64(tokens.Output) / 1000 * rate.OutputPer1K
	return input + output
}

// MockAnswerer produces a deterministic answer so the orchestration and
// evaluator can run without a model backend. Token and cost accounting
// follow the same rules a real provider client would use.
type MockAnswerer struct {
	provider string
	pricing  config.Pricing
}

// NewMockAnswerer creates a mock answerer priced as the given provider.
func NewMockAnswerer(provider string, pricing config.Pricing) *MockAnswerer {
	return &MockAnswerer{provider: provider, pricing: pricing}
}

func (m *MockAnswerer) Name() string { return "mock/" + m.provider }

// Answer builds the prompt, estimates usage, and returns a canned
// answer derived from the context.
func (m *MockAnswerer) Answer(ctx context.Context, contextText, question string) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	start := time.Now()

	prompt := buildPrompt(contextText, question)
	answer := "This is a sample answer based on the provided context and query."

	tokens := TokenCount{
		Input:  EstimateTokens(prompt),
		Output: EstimateTokens(answer),
	}
	tokens.Total = tokens.Input + tokens.Output

	return Answer{
		Text:      answer,
		Tokens:    tokens,
		ElapsedMs: float64(time.Since(start).Microseconds()) / 1000.0,
		CostUSD:   Cost(tokens, m.pricing.Lookup(m.provider)),
	}, nil
}

func buildPrompt(contextText, question string) string {
	return fmt.Sprintf(`Based on the following document context, answer the question.

Context:
%s

Question:
%s

Answer:`, contextText, question)
}
