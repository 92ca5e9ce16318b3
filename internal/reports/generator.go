// Package reports renders the findings report, the flat CSV metrics
// summary and the console summary from a finished analysis result.
// It contains no analytical logic.
package reports

import (
	"embed"
	"encoding/csv"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/selivandex/climate-sentiment/internal/errs"
	"github.com/selivandex/climate-sentiment/pkg/logger"
	"github.com/selivandex/climate-sentiment/pkg/models"
	"github.com/selivandex/climate-sentiment/pkg/templates"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Generator renders report artifacts from an AnalysisResult.
type Generator struct {
	templateManager templates.Renderer
}

// NewGenerator creates report generator with the embedded templates.
func NewGenerator() (*Generator, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded templates: %w", err)
	}

	tm, err := templates.NewManager(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to load report templates: %w", err)
	}

	return &Generator{templateManager: tm}, nil
}

// RenderTextReport renders the findings report to a string.
func (g *Generator) RenderTextReport(result *models.AnalysisResult) (string, error) {
	return g.templateManager.ExecuteTemplate("report.tmpl", result)
}

// RenderConsoleSummary renders the short summary printed after a run.
func (g *Generator) RenderConsoleSummary(result *models.AnalysisResult) (string, error) {
	return g.templateManager.ExecuteTemplate("summary.tmpl", result)
}

// WriteTextReport writes the findings report into dir. Failure is a
// RenderError and does not abort other artifacts.
func (g *Generator) WriteTextReport(result *models.AnalysisResult, dir string) error {
	output, err := g.RenderTextReport(result)
	if err != nil {
		return errs.NewRenderError(ArtifactTextReport, err)
	}

	path := filepath.Join(dir, ArtifactTextReport)
	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		return errs.NewRenderError(ArtifactTextReport, err)
	}

	logger.Info("text report written", zap.String("path", path))
	return nil
}

// WriteCSVSummary writes the flat metric,value,category export into dir.
func (g *Generator) WriteCSVSummary(result *models.AnalysisResult, dir string) error {
	path := filepath.Join(dir, ArtifactCSVSummary)

	file, err := os.Create(path)
	if err != nil {
		return errs.NewRenderError(ArtifactCSVSummary, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write([]string{"metric", "value", "category"}); err != nil {
		return errs.NewRenderError(ArtifactCSVSummary, err)
	}

	for _, row := range buildCSVRows(result) {
		if err := writer.Write([]string{row.Metric, row.Value, row.Category}); err != nil {
			return errs.NewRenderError(ArtifactCSVSummary, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errs.NewRenderError(ArtifactCSVSummary, err)
	}

	logger.Info("csv summary written", zap.String("path", path))
	return nil
}

// buildCSVRows flattens the analysis result into metric rows. Float
// values are rounded through decimal so exports are stable across runs.
func buildCSVRows(result *models.AnalysisResult) []csvRow {
	var rows []csvRow

	counts := func(v int) string { return fmt.Sprintf("%d", v) }
	round := func(v float64) string {
		return decimal.NewFromFloat(v).Round(2).String()
	}

	for _, s := range result.Distribution.Summaries {
		rows = append(rows,
			csvRow{"sentiment_" + s.Label, counts(s.Count), metricGroupDistribution},
			csvRow{"sentiment_" + s.Label + "_pct", round(s.Percentage), metricGroupDistribution},
		)
	}
	rows = append(rows, csvRow{"dominant_sentiment", result.Distribution.Dominant.Label(), metricGroupDistribution})

	p := result.Patterns
	rows = append(rows,
		csvRow{"avg_text_length", round(p.TextLength.Mean), metricGroupPatterns},
		csvRow{"median_text_length", round(p.TextLength.Median), metricGroupPatterns},
		csvRow{"avg_word_count", round(p.WordCount.Mean), metricGroupPatterns},
		csvRow{"median_word_count", round(p.WordCount.Median), metricGroupPatterns},
		csvRow{"retweets", counts(p.Retweets), metricGroupPatterns},
		csvRow{"mentions", counts(p.Mentions), metricGroupPatterns},
		csvRow{"hashtags", counts(p.Hashtags), metricGroupPatterns},
		csvRow{"urls", counts(p.URLs), metricGroupPatterns},
	)

	if result.Polarity.N > 0 {
		rows = append(rows,
			csvRow{"polarity_mean", round(result.Polarity.Mean), metricGroupPolarity},
			csvRow{"polarity_std", round(result.Polarity.StdDev), metricGroupPolarity},
			csvRow{"subjectivity_mean", round(result.Polarity.Subjectivity), metricGroupPolarity},
		)
	}

	for _, theme := range result.Themes.Global.Top(10) {
		rows = append(rows, csvRow{"theme_" + theme.Term, counts(theme.Count), metricGroupThemes})
	}

	return rows
}
