// Package analyzer turns a loaded corpus into the aggregate analysis
// result consumed by the reporter and visualizer.
package analyzer

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/selivandex/climate-sentiment/internal/errs"
	"github.com/selivandex/climate-sentiment/internal/sentiment"
	"github.com/selivandex/climate-sentiment/pkg/logger"
	"github.com/selivandex/climate-sentiment/pkg/models"
)

// Options holds analyzer tuning parameters.
type Options struct {
	TopThemes         int // size of the global theme table
	TopThemesPerLabel int // size of each per-category theme table
	MinTokenLength    int // shorter tokens are discarded
}

// DefaultOptions mirror the configuration defaults.
func DefaultOptions() Options {
	return Options{
		TopThemes:         20,
		TopThemesPerLabel: 10,
		MinTokenLength:    3,
	}
}

// Analyzer computes category distributions, theme frequencies, text
// pattern statistics and lexicon polarity for one corpus.
type Analyzer struct {
	opts   Options
	scorer *sentiment.Analyzer
}

// New creates an analyzer. A nil scorer disables polarity statistics.
func New(opts Options, scorer *sentiment.Analyzer) *Analyzer {
	if opts.TopThemes <= 0 {
		opts.TopThemes = DefaultOptions().TopThemes
	}
	if opts.TopThemesPerLabel <= 0 {
		opts.TopThemesPerLabel = DefaultOptions().TopThemesPerLabel
	}
	if opts.MinTokenLength <= 0 {
		opts.MinTokenLength = DefaultOptions().MinTokenLength
	}
	return &Analyzer{opts: opts, scorer: scorer}
}

// Analyze derives the full AnalysisResult from the corpus. An empty
// corpus is an AnalysisError: the pipeline never emits empty summaries.
func (a *Analyzer) Analyze(corpus *models.Corpus) (*models.AnalysisResult, error) {
	if corpus == nil || corpus.Len() == 0 {
		return nil, errs.NewAnalysisError("analyze", fmt.Errorf("corpus is empty"))
	}

	logger.Info("analyzing corpus", zap.Int("records", corpus.Len()))

	result := &models.AnalysisResult{
		Source:       corpus.Source,
		Distribution: computeDistribution(corpus),
		Themes:       a.computeThemes(corpus),
		Patterns:     computePatterns(corpus),
	}

	if a.scorer != nil {
		result.Polarity, result.PolarityByLabel = a.computePolarity(corpus)
	}

	result.Recommendations = buildRecommendations(result.Distribution, result.Themes)

	logger.Info("analysis completed",
		zap.String("dominant", result.Distribution.Dominant.Label()),
		zap.Int("unique_terms", result.Themes.Global.UniqueTerms),
	)

	return result, nil
}

// computePolarity scores every text-bearing record and aggregates the
// scores globally and per human-assigned label.
func (a *Analyzer) computePolarity(corpus *models.Corpus) (models.PolarityStats, map[models.Category]models.PolarityStats) {
	var all []sentiment.Score
	byLabel := make(map[models.Category][]sentiment.Score)

	for _, r := range corpus.Records {
		if !r.HasText() {
			continue
		}
		score := a.scorer.Analyze(r.Text)
		all = append(all, score)
		byLabel[r.Category] = append(byLabel[r.Category], score)
	}

	perCategory := make(map[models.Category]models.PolarityStats, len(byLabel))
	for cat, scores := range byLabel {
		perCategory[cat] = polarityStats(scores)
	}

	return polarityStats(all), perCategory
}

func polarityStats(scores []sentiment.Score) models.PolarityStats {
	if len(scores) == 0 {
		return models.PolarityStats{}
	}

	polarities := make([]float64, len(scores))
	var subjSum float64
	for i, s := range scores {
		polarities[i] = s.Polarity
		subjSum += s.Subjectivity
	}

	d := distStats(polarities)
	return models.PolarityStats{
		Mean:         d.Mean,
		Median:       d.Median,
		Min:          d.Min,
		Max:          d.Max,
		StdDev:       d.StdDev,
		Subjectivity: subjSum / float64(len(scores)),
		N:            len(scores),
	}
}

// buildRecommendations produces the fixed-template recommendation list
// driven by sentiment balance and theme coverage.
func buildRecommendations(dist models.Distribution, themes models.ThemeAnalysis) []string {
	var recs []string

	pro := dist.ProClimateCount
	anti := dist.AntiClimateCount
	neutral := dist.NeutralCount

	if anti > pro {
		recs = append(recs, "High anti-climate change sentiment detected. Consider targeted educational campaigns.")
	}
	if neutral > pro+anti {
		recs = append(recs, "High neutral sentiment suggests need for more engaging climate change content.")
	}
	if pro > anti {
		recs = append(recs, "Pro-climate change sentiment is dominant. Leverage this for broader engagement.")
	}

	if themes.ClimateTerms.UniqueTerms < 10 {
		recs = append(recs, "Limited climate-specific terminology. Consider expanding climate change vocabulary.")
	}

	top := themes.Global.Top(5)
	if len(top) > 0 {
		terms := make([]string, len(top))
		for i, t := range top {
			terms[i] = t.Term
		}
		recs = append(recs, fmt.Sprintf("Focus on key themes: %s", strings.Join(terms, ", ")))
	}

	return recs
}
