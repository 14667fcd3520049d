/*
PURPOSE:
  Heuristic answer-quality scorer: four bounded [0,1] lexical-overlap
  metrics plus a fixed-weight overall score.

REQUIREMENTS:
  User-specified:
  - faithfulness: fraction of non-stopword answer tokens present in
    the context, scaled by 1.2 and clamped to 1.0.
  - relevancy: fraction of question tokens present in the answer plus
    a length bonus min(answerWords/50, 0.3), clamped to 1.0.
  - context precision: fraction of question tokens present in context.
  - context recall: fraction of ground-truth tokens present in
    context; 0.0 without a ground truth.
  - overall = 0.3f + 0.3r + 0.2p + 0.2rec.

  Implementation-discovered:
  - Two stop-word sets: the base set, and a question set that also
    strips interrogatives (what/how/why/when/where/who).
  - Asymmetry kept on purpose: an empty input string scores 0.0, but a
    non-empty string whose token set is empty after stop-word removal
    scores the neutral 0.5. Callers rely on the distinction.

ARCHITECTURE INTEGRATION:
  - Called by: internal/runner
  - Produces: internal/model.EvaluationScore

ERROR HANDLING:
  - Never errors; malformed inputs map to the defined fallbacks.

IMPLEMENTATION RULES:
  - Case-insensitive whitespace tokenization; no stemming.

USAGE:
  s := eval.NewScorer()
  score := s.Score(question, answer, context, groundTruth)

RELATED FILES:
  - internal/eval/compare.go

MAINTENANCE:
  - Weights and stop-word sets are part of the scoring contract; tests
    pin them.
*/

package eval

import (
	"strings"

	"github.com/docbench/docbench/internal/model"
)

// Fixed overall-score weights. They sum to 1.0, which keeps the
// overall score within [0,1] for component scores in [0,1].
const (
	weightFaithfulness = 0.3
	weightRelevancy    = 0.3
	weightPrecision    = 0.2
	weightRecall       = 0.2
)

// neutralScore is returned when a non-empty input reduces to an empty
// token set after stop-word removal.
const neutralScore = 0.5

var baseStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "is": true, "are": true, "was": true,
	"were": true,
}

var questionStopwords = map[string]bool{
	"what": true, "how": true, "why": true, "when": true,
	"where": true, "who": true,
}

// Scorer computes lexical-overlap quality scores.
type Scorer struct{}

// NewScorer creates a Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score evaluates one answered question. groundTruth may be empty.
func (s *Scorer) Score(question, answer, context, groundTruth string) model.EvaluationScore {
	score := model.EvaluationScore{
		Faithfulness:     s.Faithfulness(answer, context),
		Relevancy:        s.Relevancy(answer, question),
		ContextPrecision: s.ContextPrecision(context, question),
	}
	if groundTruth != "" {
		score.ContextRecall = s.ContextRecall(context, groundTruth)
	}

	score.Overall = weightFaithfulness*score.Faithfulness +
		weightRelevancy*score.Relevancy +
		weightPrecision*score.ContextPrecision +
		weightRecall*score.ContextRecall
	return score
}

// Faithfulness measures how much of the answer is grounded in the
// context.
func (s *Scorer) Faithfulness(answer, context string) float64 {
	if answer == "" || context == "" {
		return 0.0
	}

	answerTokens := tokenize(answer, false)
	contextTokens := tokenize(context, false)

	if len(answerTokens) == 0 {
		return neutralScore
	}

	coverage := float64(overlap(answerTokens, contextTokens)) / float64(len(answerTokens))
	return clamp1(coverage * 1.2)
}

// Relevancy measures whether the answer addresses the question.
func (s *Scorer) Relevancy(answer, question string) float64 {
	if answer == "" || question == "" {
		return 0.0
	}

	questionTokens := tokenize(question, true)
	answerTokens := tokenize(answer, true)

	if len(questionTokens) == 0 {
		return neutralScore
	}

	relevancy := float64(overlap(questionTokens, answerTokens)) / float64(len(questionTokens))

	// Longer answers tend to be more comprehensive; the bonus counts
	// raw words, before stop-word removal.
	lengthBonus := float64(len(strings.Fields(answer))) / 50.0
	if lengthBonus > 0.3 {
		lengthBonus = 0.3
	}

	return clamp1(relevancy + lengthBonus)
}

// ContextPrecision measures whether the context contains the question's
// key terms.
func (s *Scorer) ContextPrecision(context, question string) float64 {
	if context == "" || question == "" {
		return 0.0
	}

	questionTokens := tokenize(question, true)
	contextTokens := tokenize(context, false)

	if len(questionTokens) == 0 {
		return neutralScore
	}

	return float64(overlap(questionTokens, contextTokens)) / float64(len(questionTokens))
}

// ContextRecall measures whether the context covers the ground truth.
func (s *Scorer) ContextRecall(context, groundTruth string) float64 {
	if context == "" || groundTruth == "" {
		return 0.0
	}

	truthTokens := tokenize(groundTruth, false)
	contextTokens := tokenize(context, false)

	if len(truthTokens) == 0 {
		return neutralScore
	}

	return float64(overlap(truthTokens, contextTokens)) / float64(len(truthTokens))
}

// tokenize lowercases, splits on whitespace and removes stop words.
// withQuestionWords additionally strips interrogatives.
func tokenize(text string, withQuestionWords bool) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		if baseStopwords[tok] {
			continue
		}
		if withQuestionWords && questionStopwords[tok] {
			continue
		}
		tokens[tok] = true
	}
	return tokens
}

func overlap(a, b map[string]bool) int {
	n := 0
	for tok := range a {
		if b[tok] {
			n++
		}
	}
	return n
}

func clamp1(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	return v
}
