package analyzer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/selivandex/climate-sentiment/pkg/models"
)

// climateKeywords marks terms as climate-related when they contain one
// of these fragments as a substring.
var climateKeywords = []string{
	"climate", "change", "global", "warming", "emission", "carbon",
	"temperature", "weather", "environment", "greenhouse", "pollution",
	"renewable", "energy", "solar", "wind", "fossil", "fuel",
	"sustainability", "eco", "green", "earth", "planet", "ocean",
	"ice", "melting", "sea", "level", "drought", "flood", "storm",
}

// computeThemes builds the global, per-category and climate-term
// frequency tables over text-bearing records.
func (a *Analyzer) computeThemes(corpus *models.Corpus) models.ThemeAnalysis {
	globalCounts := make(map[string]int)
	labelCounts := make(map[models.Category]map[string]int)

	for _, r := range corpus.Records {
		if !r.HasText() {
			continue
		}

		for _, token := range a.tokenize(r.Text) {
			globalCounts[token]++

			byLabel := labelCounts[r.Category]
			if byLabel == nil {
				byLabel = make(map[string]int)
				labelCounts[r.Category] = byLabel
			}
			byLabel[token]++
		}
	}

	analysis := models.ThemeAnalysis{
		Global:     rankThemes(globalCounts, a.opts.TopThemes),
		ByCategory: make(map[models.Category]models.ThemeFrequency, len(labelCounts)),
	}

	for cat, counts := range labelCounts {
		analysis.ByCategory[cat] = rankThemes(counts, a.opts.TopThemesPerLabel)
	}

	climate := make(map[string]int)
	for term, count := range globalCounts {
		if isClimateTerm(term) {
			climate[term] = count
		}
	}
	analysis.ClimateTerms = rankThemes(climate, a.opts.TopThemes)

	return analysis
}

// tokenize lowercases text, splits on anything that is not a letter,
// digit or underscore, and filters stopwords and short tokens.
func (a *Analyzer) tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})

	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) < a.opts.MinTokenLength {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// rankThemes orders terms by count descending; ties break
// lexicographically ascending so repeated runs yield identical tables.
func rankThemes(counts map[string]int, topN int) models.ThemeFrequency {
	themes := make([]models.ThemeCount, 0, len(counts))
	for term, count := range counts {
		themes = append(themes, models.ThemeCount{Term: term, Count: count})
	}

	sort.Slice(themes, func(i, j int) bool {
		if themes[i].Count != themes[j].Count {
			return themes[i].Count > themes[j].Count
		}
		return themes[i].Term < themes[j].Term
	})

	unique := len(themes)
	if topN > 0 && len(themes) > topN {
		themes = themes[:topN]
	}

	return models.ThemeFrequency{Themes: themes, UniqueTerms: unique}
}

func isClimateTerm(term string) bool {
	for _, kw := range climateKeywords {
		if strings.Contains(term, kw) {
			return true
		}
	}
	return false
}
