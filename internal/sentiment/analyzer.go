// Package sentiment provides lexicon-based polarity scoring for post text.
// The score is descriptive: it is compared against the human-assigned
// category label, never used to train or override it.
package sentiment

import (
	"strings"
)

// Score holds the lexicon evaluation of one text.
type Score struct {
	Polarity     float64 // -1.0 (negative) to 1.0 (positive)
	Subjectivity float64 // 0.0 (factual) to 1.0 (opinionated)
}

// Analyzer performs keyword-based sentiment analysis over a fixed lexicon.
type Analyzer struct {
	positiveWords  map[string]float64
	negativeWords  map[string]float64
	subjectiveWord map[string]struct{}
}

// NewAnalyzer creates new sentiment analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		positiveWords:  buildPositiveWords(),
		negativeWords:  buildNegativeWords(),
		subjectiveWord: buildSubjectiveWords(),
	}
}

// Analyze scores text and returns polarity in [-1, 1] and subjectivity
// in [0, 1]. Empty or whitespace-only text scores zero on both axes.
func (a *Analyzer) Analyze(text string) Score {
	if text == "" {
		return Score{}
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return Score{}
	}

	var polarity float64
	matched := 0
	subjective := 0

	for _, word := range words {
		word = strings.Trim(word, ".,!?;:\"'()#")

		if weight, ok := a.positiveWords[word]; ok {
			polarity += weight
			matched++
		}

		if weight, ok := a.negativeWords[word]; ok {
			polarity -= weight
			matched++
		}

		if _, ok := a.subjectiveWord[word]; ok {
			subjective++
		}
	}

	score := Score{
		Subjectivity: clamp(float64(subjective)/float64(len(words))*4, 0, 1),
	}

	if matched == 0 {
		return score
	}

	score.Polarity = clamp(polarity/float64(len(words)), -1, 1)
	return score
}

// Polarity is a convenience wrapper returning only the polarity axis.
func (a *Analyzer) Polarity(text string) float64 {
	return a.Analyze(text).Polarity
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
