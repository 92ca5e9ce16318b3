package reports

// Artifact names used across the reporter and visualizer. Output files
// carry fixed names inside the output directory.
const (
	ArtifactTextReport = "sentiment_analysis_report.txt"
	ArtifactCSVSummary = "sentiment_summary.csv"
)

// csvRow is one line of the flat metrics export.
type csvRow struct {
	Metric   string
	Value    string
	Category string
}

// Metric categories of the CSV export.
const (
	metricGroupDistribution = "sentiment_distribution"
	metricGroupPatterns     = "text_patterns"
	metricGroupPolarity     = "lexicon_polarity"
	metricGroupThemes       = "themes"
)
