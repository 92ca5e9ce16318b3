package visualizer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/selivandex/climate-sentiment/internal/errs"
	"github.com/selivandex/climate-sentiment/pkg/models"
)

func sampleResult() *models.AnalysisResult {
	lengths := models.DistStats{Mean: 90, Median: 88, Q1: 60, Q3: 120, Min: 12, Max: 180, StdDev: 30, N: 6}
	words := models.DistStats{Mean: 14, Median: 13, Q1: 9, Q3: 18, Min: 3, Max: 28, StdDev: 5, N: 6}

	return &models.AnalysisResult{
		RunID: "viz-test",
		Distribution: models.Distribution{
			Total: 6,
			Summaries: []models.CategorySummary{
				{Category: models.CategoryAnti, Label: "Anti", Count: 1, Percentage: 100.0 / 6},
				{Category: models.CategoryNeutral, Label: "Neutral", Count: 1, Percentage: 100.0 / 6},
				{Category: models.CategoryPro, Label: "Pro", Count: 2, Percentage: 200.0 / 6},
				{Category: models.CategoryNews, Label: "News", Count: 2, Percentage: 200.0 / 6},
			},
			Dominant: models.CategoryPro,
		},
		Themes: models.ThemeAnalysis{
			Global: models.ThemeFrequency{
				Themes: []models.ThemeCount{
					{Term: "climate", Count: 5},
					{Term: "energy", Count: 3},
					{Term: "policy", Count: 2},
				},
				UniqueTerms: 3,
			},
			ClimateTerms: models.ThemeFrequency{
				Themes:      []models.ThemeCount{{Term: "climate", Count: 5}},
				UniqueTerms: 1,
			},
		},
		Patterns: models.PatternStats{
			TextLength: lengths,
			WordCount:  words,
			ByCategory: map[models.Category]models.CategoryText{
				models.CategoryPro:  {Count: 2, TextLength: lengths, WordCount: words},
				models.CategoryNews: {Count: 2, TextLength: lengths, WordCount: words},
			},
		},
	}
}

func TestVisualizer_RendersAllArtifacts(t *testing.T) {
	v := New(10)
	dir := t.TempDir()
	result := sampleResult()

	for _, artifact := range v.Artifacts() {
		if err := artifact.Render(result, dir); err != nil {
			t.Fatalf("artifact %s failed: %v", artifact.Name, err)
		}

		info, err := os.Stat(filepath.Join(dir, artifact.Name))
		if err != nil {
			t.Fatalf("artifact %s not written: %v", artifact.Name, err)
		}
		if info.Size() == 0 {
			t.Errorf("artifact %s is empty", artifact.Name)
		}
	}
}

func TestVisualizer_ThemeChartWithoutThemes(t *testing.T) {
	v := New(10)
	result := sampleResult()
	result.Themes.Global = models.ThemeFrequency{}

	err := v.RenderThemeChart(result, t.TempDir())
	if err == nil {
		t.Fatal("expected error when no themes exist")
	}

	var renderErr *errs.RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("expected RenderError, got %T: %v", err, err)
	}
}

func TestVisualizer_MissingDirIsRenderError(t *testing.T) {
	v := New(10)
	dir := filepath.Join(t.TempDir(), "missing", "nested")

	err := v.RenderDashboard(sampleResult(), dir)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}

	var renderErr *errs.RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("expected RenderError, got %T: %v", err, err)
	}
	if renderErr.Artifact != ArtifactDashboard {
		t.Errorf("expected artifact %q, got %q", ArtifactDashboard, renderErr.Artifact)
	}
}
