/*
PURPOSE:
  Word-level similarity between an answer and its ground truth, based
  on word edit distance.

REQUIREMENTS:
  User-specified:
  - A [0,1] similarity: 1 - word error rate, floored at 0.

  Implementation-discovered:
  - Word error rate = levenshtein distance over the word sequences
    normalized by the ground-truth length. The levenshtein package
    works on rune sequences, so each distinct (lowercased) word is
    mapped to a private rune first.

ARCHITECTURE INTEGRATION:
  - Called by: internal/eval/compare.go
  - Dependencies: github.com/texttheater/golang-levenshtein

ERROR HANDLING:
  - Degenerate inputs map to defined values: both empty -> 1.0 (no
    divergence), empty ground truth with a non-empty answer -> 0.0.

USAGE:
  sim := eval.WordSimilarity(groundTruth, answer)

RELATED FILES:
  - internal/eval/compare.go

MAINTENANCE:
  - None.
*/

package eval

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

var wordEditOptions = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 1,
	Matches: func(source rune, target rune) bool {
		return source == target
	},
}

// WordSimilarity computes 1 - WER between ground truth and answer,
// floored at 0. Comparison is case-insensitive.
func WordSimilarity(groundTruth, answer string) float64 {
	truthWords := strings.Fields(strings.ToLower(groundTruth))
	answerWords := strings.Fields(strings.ToLower(answer))

	if len(truthWords) == 0 && len(answerWords) == 0 {
		return 1.0
	}
	if len(truthWords) == 0 {
		return 0.0
	}

	vocab := make(map[string]rune)
	source := wordsToRunes(truthWords, vocab)
	target := wordsToRunes(answerWords, vocab)

	distance := levenshtein.DistanceForStrings(source, target, wordEditOptions)
	wer := float64(distance) / float64(len(truthWords))

	sim := 1.0 - wer
	if sim < 0 {
		return 0.0
	}
	return sim
}

// wordsToRunes assigns each distinct word a rune so the rune-based
// edit distance operates on whole words.
func wordsToRunes(words []string, vocab map[string]rune) []rune {
	out := make([]rune, 0, len(words))
	for _, w := range words {
		r, ok := vocab[w]
		if !ok {
			r = rune(len(vocab) + 1)
			vocab[w] = r
		}
		out = append(out, r)
	}
	return out
}
