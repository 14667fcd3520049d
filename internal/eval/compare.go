/*
PURPOSE:
  Batch evaluation over answered questions and the head-to-head
  quality comparison between the two pipelines.

REQUIREMENTS:
  User-specified:
  - Per-pipeline metric averages, pairwise differences, and a quality
    parity verdict ("maintained" when |overall diff| < 0.05).

  Implementation-discovered:
  - When a ground truth exists, the answer is additionally scored with
    word-level similarity (similarity.go).

ARCHITECTURE INTEGRATION:
  - Called by: internal/runner
  - Consumes/produces: internal/model

ERROR HANDLING:
  - Comparison of empty result sets returns the zero Comparison with
    parity "insufficient data".

USAGE:
  evals := eval.Batch(scorer, model.PipelineCompression, items)
  cmp := eval.Compare(compressionEvals, retrievalEvals)

RELATED FILES:
  - internal/eval/eval.go
  - internal/eval/similarity.go

MAINTENANCE:
  - Parity threshold is pinned by tests.
*/

package eval

import (
	"math"
	"time"

	"github.com/docbench/docbench/internal/model"
)

// parityThreshold is the max overall-score gap still considered parity.
const parityThreshold = 0.05

// Item is one question answered by a pipeline, with the context the
// answer was produced from.
type Item struct {
	DocumentID  string
	Question    string
	Answer      string
	Context     string
	GroundTruth string
}

// Batch scores a set of answered questions for one pipeline.
func Batch(scorer *Scorer, pipeline string, items []Item) []model.Evaluation {
	evals := make([]model.Evaluation, 0, len(items))
	for _, it := range items {
		e := model.Evaluation{
			Pipeline:    pipeline,
			DocumentID:  it.DocumentID,
			Question:    it.Question,
			Answer:      it.Answer,
			GroundTruth: it.GroundTruth,
			Score:       scorer.Score(it.Question, it.Answer, it.Context, it.GroundTruth),
			Timestamp:   time.Now(),
		}
		if it.GroundTruth != "" {
			e.AnswerSimilarity = WordSimilarity(it.GroundTruth, it.Answer)
		}
		evals = append(evals, e)
	}
	return evals
}

// Averages holds mean component scores for one pipeline.
type Averages struct {
	Faithfulness     float64 `json:"avg_faithfulness"`
	Relevancy        float64 `json:"avg_relevancy"`
	ContextPrecision float64 `json:"avg_context_precision"`
	ContextRecall    float64 `json:"avg_context_recall"`
	Overall          float64 `json:"avg_overall_score"`
}

// Comparison is the head-to-head quality analysis.
type Comparison struct {
	Compression Averages `json:"compression_metrics"`
	Retrieval   Averages `json:"retrieval_metrics"`

	FaithfulnessDiff float64 `json:"faithfulness_difference"`
	RelevancyDiff    float64 `json:"relevancy_difference"`
	PrecisionDiff    float64 `json:"precision_difference"`
	RecallDiff       float64 `json:"recall_difference"`
	OverallDiff      float64 `json:"overall_score_difference"`

	QualityParity string `json:"quality_parity"`
}

// Compare averages both pipelines' evaluations and reports differences
// (compression minus retrieval).
func Compare(compression, retrieval []model.Evaluation) Comparison {
	if len(compression) == 0 || len(retrieval) == 0 {
		return Comparison{QualityParity: "insufficient data"}
	}

	c := Comparison{
		Compression: average(compression),
		Retrieval:   average(retrieval),
	}

	c.FaithfulnessDiff = c.Compression.Faithfulness - c.Retrieval.Faithfulness
	c.RelevancyDiff = c.Compression.Relevancy - c.Retrieval.Relevancy
	c.PrecisionDiff = c.Compression.ContextPrecision - c.Retrieval.ContextPrecision
	c.RecallDiff = c.Compression.ContextRecall - c.Retrieval.ContextRecall
	c.OverallDiff = c.Compression.Overall - c.Retrieval.Overall

	if math.Abs(c.OverallDiff) < parityThreshold {
		c.QualityParity = "maintained"
	} else {
		c.QualityParity = "degraded"
	}
	return c
}

func average(evals []model.Evaluation) Averages {
	var a Averages
	for _, e := range evals {
		a.Faithfulness += e.Score.Faithfulness
		a.Relevancy += e.Score.Relevancy
		a.ContextPrecision += e.Score.ContextPrecision
		a.ContextRecall += e.Score.ContextRecall
		a.Overall += e.Score.Overall
	}
	n := float64(len(evals))
	a.Faithfulness /= n
	a.Relevancy /= n
	a.ContextPrecision /= n
	a.ContextRecall /= n
	a.Overall /= n
	return a
}
