package visualizer

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/selivandex/climate-sentiment/internal/errs"
	"github.com/selivandex/climate-sentiment/pkg/logger"
	"github.com/selivandex/climate-sentiment/pkg/models"
)

// RenderDistributionChart draws per-category post counts as a bar chart.
func (v *Visualizer) RenderDistributionChart(result *models.AnalysisResult, dir string) error {
	p := plot.New()
	p.Title.Text = "Sentiment Distribution"
	p.Y.Label.Text = "Number of Posts"

	labels := make([]string, 0, len(result.Distribution.Summaries))

	// One single-value bar series per category so each keeps its color.
	for i, s := range result.Distribution.Summaries {
		vals := make(plotter.Values, len(result.Distribution.Summaries))
		vals[i] = float64(s.Count)

		bars, err := plotter.NewBarChart(vals, vg.Points(40))
		if err != nil {
			return errs.NewRenderError(ArtifactDistributionChart, err)
		}
		bars.Color = categoryColors[s.Category]
		bars.LineStyle.Width = 0
		p.Add(bars)

		labels = append(labels, fmt.Sprintf("%s (%.1f%%)", s.Label, s.Percentage))
	}
	p.NominalX(labels...)

	return v.save(p, dir, ArtifactDistributionChart)
}

// RenderThemeChart draws the top global themes by frequency.
func (v *Visualizer) RenderThemeChart(result *models.AnalysisResult, dir string) error {
	top := result.Themes.Global.Top(v.topThemes)
	if len(top) == 0 {
		return errs.NewRenderError(ArtifactThemeChart, fmt.Errorf("no themes to plot"))
	}

	p := plot.New()
	p.Title.Text = "Top Themes"
	p.Y.Label.Text = "Occurrences"
	p.X.Tick.Label.Rotation = -0.6
	p.X.Tick.Label.XAlign = -0.8

	vals := make(plotter.Values, len(top))
	labels := make([]string, len(top))
	for i, t := range top {
		vals[i] = float64(t.Count)
		labels[i] = t.Term
	}

	bars, err := plotter.NewBarChart(vals, vg.Points(24))
	if err != nil {
		return errs.NewRenderError(ArtifactThemeChart, err)
	}
	bars.Color = categoryColors[models.CategoryPro]
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)

	return v.save(p, dir, ArtifactThemeChart)
}

// RenderPatternChart draws per-category text length distributions as
// box plots built from the five-number summaries.
func (v *Visualizer) RenderPatternChart(result *models.AnalysisResult, dir string) error {
	p := plot.New()
	p.Title.Text = "Text Length by Sentiment"
	p.Y.Label.Text = "Text Length (characters)"

	var labels []string
	x := 0.0
	for _, cat := range models.Categories() {
		ct, ok := result.Patterns.ByCategory[cat]
		if !ok || ct.Count == 0 {
			continue
		}

		box, err := plotter.NewBoxPlot(vg.Points(40), x, summaryValues(ct.TextLength))
		if err != nil {
			return errs.NewRenderError(ArtifactPatternChart, err)
		}
		box.FillColor = categoryColors[cat]
		p.Add(box)

		labels = append(labels, cat.Label())
		x++
	}

	if len(labels) == 0 {
		return errs.NewRenderError(ArtifactPatternChart, fmt.Errorf("no text-bearing records to plot"))
	}
	p.NominalX(labels...)

	return v.save(p, dir, ArtifactPatternChart)
}

func (v *Visualizer) save(p *plot.Plot, dir, name string) error {
	path := filepath.Join(dir, name)
	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return errs.NewRenderError(name, err)
	}

	logger.Info("chart written", zap.String("path", path))
	return nil
}

// summaryValues reconstructs a representative sample from a five-number
// summary so the box plotter reproduces the original quartiles.
func summaryValues(d models.DistStats) plotter.Values {
	return plotter.Values{d.Min, d.Q1, d.Q1, d.Median, d.Median, d.Q3, d.Q3, d.Max}
}
