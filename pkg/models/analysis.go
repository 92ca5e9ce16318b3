package models

import "time"

// ThemeCount is one extracted term with its occurrence count.
type ThemeCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// ThemeFrequency holds ranked term frequencies. Ordering is deterministic:
// count descending, ties broken lexicographically ascending.
type ThemeFrequency struct {
	Themes      []ThemeCount `json:"themes"`
	UniqueTerms int          `json:"unique_terms"`
}

// Top returns at most n leading themes.
func (tf ThemeFrequency) Top(n int) []ThemeCount {
	if n > len(tf.Themes) {
		n = len(tf.Themes)
	}
	return tf.Themes[:n]
}

// CategorySummary holds per-category counts and derived statistics.
type CategorySummary struct {
	Category   Category `json:"category"`
	Label      string   `json:"label"`
	Count      int      `json:"count"`
	Percentage float64  `json:"percentage"`
	AvgLength  float64  `json:"avg_length"`
	AvgWords   float64  `json:"avg_words"`
}

// Distribution aggregates the category breakdown of a corpus.
type Distribution struct {
	Total            int               `json:"total"`
	Summaries        []CategorySummary `json:"summaries"`
	Dominant         Category          `json:"dominant"`
	ProClimateCount  int               `json:"pro_climate_count"`
	AntiClimateCount int               `json:"anti_climate_count"`
	NeutralCount     int               `json:"neutral_count"`
}

// DistStats summarizes a numeric distribution.
type DistStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
	N      int     `json:"n"`
}

// PatternStats holds text-shape statistics for the corpus.
type PatternStats struct {
	TextLength DistStats                 `json:"text_length"`
	WordCount  DistStats                 `json:"word_count"`
	ByCategory map[Category]CategoryText `json:"by_category"`
	Retweets   int                       `json:"retweets"`
	Mentions   int                       `json:"mentions"`
	Hashtags   int                       `json:"hashtags"`
	URLs       int                       `json:"urls"`
	Skipped    int                       `json:"skipped"` // records without text
}

// CategoryText holds per-category text-shape aggregates.
type CategoryText struct {
	Count      int       `json:"count"`
	TextLength DistStats `json:"text_length"`
	WordCount  DistStats `json:"word_count"`
}

// PolarityStats summarizes lexicon polarity scores, globally or per category.
type PolarityStats struct {
	Mean         float64 `json:"mean"`
	Median       float64 `json:"median"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	StdDev       float64 `json:"std_dev"`
	Subjectivity float64 `json:"subjectivity"` // mean subjectivity
	N            int     `json:"n"`
}

// ThemeAnalysis bundles global and per-category theme tables.
type ThemeAnalysis struct {
	Global       ThemeFrequency              `json:"global"`
	ByCategory   map[Category]ThemeFrequency `json:"by_category"`
	ClimateTerms ThemeFrequency              `json:"climate_terms"`
}

// AnalysisResult is the single artifact the analyzer hands to the
// reporter and visualizer. It is read-only for consumers and always
// derivable from the corpus.
type AnalysisResult struct {
	RunID           string                     `json:"run_id"`
	GeneratedAt     time.Time                  `json:"generated_at"`
	Source          string                     `json:"source"`
	Topic           string                     `json:"topic"`
	CorpusWindow    string                     `json:"corpus_window"`
	Distribution    Distribution               `json:"distribution"`
	Themes          ThemeAnalysis              `json:"themes"`
	Patterns        PatternStats               `json:"patterns"`
	Polarity        PolarityStats              `json:"polarity"`
	PolarityByLabel map[Category]PolarityStats `json:"polarity_by_label"`
	Recommendations []string                   `json:"recommendations"`
}
