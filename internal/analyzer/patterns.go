package analyzer

import (
	"math"
	"sort"
	"strings"

	"github.com/selivandex/climate-sentiment/pkg/models"
)

// computePatterns aggregates text length and word count distributions
// plus common social-media pattern counts. Records without text are
// skipped and counted in Skipped.
func computePatterns(corpus *models.Corpus) models.PatternStats {
	var lengths, words []float64
	lengthsByCat := make(map[models.Category][]float64)
	wordsByCat := make(map[models.Category][]float64)

	stats := models.PatternStats{
		ByCategory: make(map[models.Category]models.CategoryText),
	}

	for _, r := range corpus.Records {
		if !r.HasText() {
			stats.Skipped++
			continue
		}

		lengths = append(lengths, float64(r.TextLength))
		words = append(words, float64(r.WordCount))
		lengthsByCat[r.Category] = append(lengthsByCat[r.Category], float64(r.TextLength))
		wordsByCat[r.Category] = append(wordsByCat[r.Category], float64(r.WordCount))

		lower := strings.ToLower(r.Text)
		if strings.Contains(lower, "rt @") {
			stats.Retweets++
		}
		if strings.Contains(lower, "@") {
			stats.Mentions++
		}
		if strings.Contains(lower, "#") {
			stats.Hashtags++
		}
		if strings.Contains(lower, "http") {
			stats.URLs++
		}
	}

	stats.TextLength = distStats(lengths)
	stats.WordCount = distStats(words)

	for cat, catLengths := range lengthsByCat {
		stats.ByCategory[cat] = models.CategoryText{
			Count:      len(catLengths),
			TextLength: distStats(catLengths),
			WordCount:  distStats(wordsByCat[cat]),
		}
	}

	return stats
}

// distStats summarizes values with mean, quartiles and sample standard
// deviation. Quartiles use linear interpolation between order statistics.
func distStats(values []float64) models.DistStats {
	n := len(values)
	if n == 0 {
		return models.DistStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	var sqSum float64
	for _, v := range sorted {
		d := v - mean
		sqSum += d * d
	}
	std := 0.0
	if n > 1 {
		std = math.Sqrt(sqSum / float64(n-1))
	}

	return models.DistStats{
		Mean:   mean,
		Median: quantile(sorted, 0.5),
		Q1:     quantile(sorted, 0.25),
		Q3:     quantile(sorted, 0.75),
		Min:    sorted[0],
		Max:    sorted[n-1],
		StdDev: std,
		N:      n,
	}
}

// quantile returns the q-th quantile of sorted values using linear
// interpolation at position (n-1)*q.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	pos := float64(n-1) * q
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
