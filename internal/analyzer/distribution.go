package analyzer

import (
	"github.com/selivandex/climate-sentiment/pkg/models"
)

// computeDistribution counts every record, including those without text.
// Percentages are computed against the full corpus and sum to 100 within
// floating-point tolerance.
func computeDistribution(corpus *models.Corpus) models.Distribution {
	counts := make(map[models.Category]int)
	lengthSum := make(map[models.Category]int)
	wordSum := make(map[models.Category]int)
	textCount := make(map[models.Category]int)

	for _, r := range corpus.Records {
		counts[r.Category]++
		if r.HasText() {
			lengthSum[r.Category] += r.TextLength
			wordSum[r.Category] += r.WordCount
			textCount[r.Category]++
		}
	}

	total := corpus.Len()
	dist := models.Distribution{Total: total}

	// Canonical category order keeps summaries deterministic.
	dominantCount := -1
	for _, cat := range models.Categories() {
		count := counts[cat]

		summary := models.CategorySummary{
			Category:   cat,
			Label:      cat.Label(),
			Count:      count,
			Percentage: float64(count) / float64(total) * 100,
		}
		if n := textCount[cat]; n > 0 {
			summary.AvgLength = float64(lengthSum[cat]) / float64(n)
			summary.AvgWords = float64(wordSum[cat]) / float64(n)
		}
		dist.Summaries = append(dist.Summaries, summary)

		if count > dominantCount {
			dominantCount = count
			dist.Dominant = cat
		}

		switch cat {
		case models.CategoryPro:
			dist.ProClimateCount = count
		case models.CategoryAnti:
			dist.AntiClimateCount = count
		case models.CategoryNeutral:
			dist.NeutralCount = count
		}
	}

	return dist
}
