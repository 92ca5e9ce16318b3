package reports

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/selivandex/climate-sentiment/internal/errs"
	"github.com/selivandex/climate-sentiment/pkg/models"
)

func sampleResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		RunID:        "test-run",
		GeneratedAt:  time.Date(2018, 2, 21, 12, 0, 0, 0, time.UTC),
		Source:       "twitter_sentiment_data.csv",
		Topic:        "Climate Change",
		CorpusWindow: "Apr 27, 2015 - Feb 21, 2018",
		Distribution: models.Distribution{
			Total: 4,
			Summaries: []models.CategorySummary{
				{Category: models.CategoryAnti, Label: "Anti", Count: 1, Percentage: 25},
				{Category: models.CategoryNeutral, Label: "Neutral", Count: 1, Percentage: 25},
				{Category: models.CategoryPro, Label: "Pro", Count: 1, Percentage: 25},
				{Category: models.CategoryNews, Label: "News", Count: 1, Percentage: 25},
			},
			Dominant: models.CategoryAnti,
		},
		Themes: models.ThemeAnalysis{
			Global: models.ThemeFrequency{
				Themes: []models.ThemeCount{
					{Term: "climate", Count: 4},
					{Term: "energy", Count: 2},
				},
				UniqueTerms: 2,
			},
		},
		Patterns: models.PatternStats{
			TextLength: models.DistStats{Mean: 98.5, Median: 100, N: 4},
			WordCount:  models.DistStats{Mean: 15.25, Median: 15, N: 4},
			Retweets:   1,
		},
		Polarity: models.PolarityStats{
			Mean: 0.12, Median: 0.1, StdDev: 0.3, Subjectivity: 0.4, N: 4,
		},
		Recommendations: []string{"Focus on key themes: climate, energy"},
	}
}

func TestGenerator_RenderTextReport(t *testing.T) {
	g, err := NewGenerator()
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}

	output, err := g.RenderTextReport(sampleResult())
	if err != nil {
		t.Fatalf("failed to render report: %v", err)
	}

	for _, want := range []string{
		"CLIMATE CHANGE SENTIMENT ANALYSIS REPORT",
		"Run ID: test-run",
		"Total posts analyzed: 4",
		"Dominant sentiment: Anti",
		"climate, energy",
		"Anti: 1 posts (25.0%)",
		"Mean polarity: 0.120",
		"1. Focus on key themes",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("report missing %q\n---\n%s", want, output)
		}
	}
}

func TestGenerator_RenderConsoleSummary(t *testing.T) {
	g, err := NewGenerator()
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}

	output, err := g.RenderConsoleSummary(sampleResult())
	if err != nil {
		t.Fatalf("failed to render summary: %v", err)
	}

	if !strings.Contains(output, "SUMMARY") {
		t.Errorf("summary missing header:\n%s", output)
	}
	if !strings.Contains(output, "Topic: Climate Change") {
		t.Errorf("summary missing topic:\n%s", output)
	}
}

func TestGenerator_WriteCSVSummary(t *testing.T) {
	g, err := NewGenerator()
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}

	dir := t.TempDir()
	if err := g.WriteCSVSummary(sampleResult(), dir); err != nil {
		t.Fatalf("failed to write csv: %v", err)
	}

	file, err := os.Open(filepath.Join(dir, ArtifactCSVSummary))
	if err != nil {
		t.Fatalf("csv not written: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse csv: %v", err)
	}

	if len(rows) < 10 {
		t.Fatalf("expected at least 10 rows, got %d", len(rows))
	}

	header := rows[0]
	if header[0] != "metric" || header[1] != "value" || header[2] != "category" {
		t.Errorf("unexpected header %v", header)
	}

	byMetric := make(map[string][]string)
	for _, row := range rows[1:] {
		byMetric[row[0]] = row
	}

	if row, ok := byMetric["sentiment_Pro"]; !ok || row[1] != "1" {
		t.Errorf("expected sentiment_Pro=1, got %v", row)
	}
	if row, ok := byMetric["avg_text_length"]; !ok || row[1] != "98.5" {
		t.Errorf("expected avg_text_length=98.5, got %v", row)
	}
	if row, ok := byMetric["polarity_mean"]; !ok || row[1] != "0.12" {
		t.Errorf("expected polarity_mean=0.12, got %v", row)
	}
	if row, ok := byMetric["theme_climate"]; !ok || row[1] != "4" {
		t.Errorf("expected theme_climate=4, got %v", row)
	}
}

func TestGenerator_WriteTextReport_MissingDir(t *testing.T) {
	g, err := NewGenerator()
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}

	err = g.WriteTextReport(sampleResult(), filepath.Join(t.TempDir(), "does", "not", "exist"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}

	var renderErr *errs.RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("expected RenderError, got %T: %v", err, err)
	}
	if renderErr.Artifact != ArtifactTextReport {
		t.Errorf("expected artifact %q, got %q", ArtifactTextReport, renderErr.Artifact)
	}
}
