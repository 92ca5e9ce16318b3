package visualizer

import (
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"

	"github.com/selivandex/climate-sentiment/internal/errs"
	"github.com/selivandex/climate-sentiment/pkg/logger"
	"github.com/selivandex/climate-sentiment/pkg/models"
)

// RenderDashboard writes the interactive HTML dashboard: sentiment pie,
// top themes, text length box plots and climate term frequencies.
func (v *Visualizer) RenderDashboard(result *models.AnalysisResult, dir string) error {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)

	page.AddCharts(
		v.sentimentPie(result),
		v.themeBar(result),
		v.lengthBoxPlot(result),
		v.climateTermBar(result),
	)

	path := filepath.Join(dir, ArtifactDashboard)
	file, err := os.Create(path)
	if err != nil {
		return errs.NewRenderError(ArtifactDashboard, err)
	}
	defer file.Close()

	if err := page.Render(file); err != nil {
		return errs.NewRenderError(ArtifactDashboard, err)
	}

	logger.Info("dashboard written", zap.String("path", path))
	return nil
}

func (v *Visualizer) sentimentPie(result *models.AnalysisResult) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Sentiment Distribution"}),
	)

	data := make([]opts.PieData, 0, len(result.Distribution.Summaries))
	for _, s := range result.Distribution.Summaries {
		data = append(data, opts.PieData{
			Name:  s.Label,
			Value: s.Count,
			ItemStyle: &opts.ItemStyle{
				Color: categoryHex[s.Category],
			},
		})
	}

	pie.AddSeries("sentiment", data)
	return pie
}

func (v *Visualizer) themeBar(result *models.AnalysisResult) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Top Themes"}),
	)

	top := result.Themes.Global.Top(v.topThemes)
	labels := make([]string, len(top))
	data := make([]opts.BarData, len(top))
	for i, t := range top {
		labels[i] = t.Term
		data[i] = opts.BarData{Value: t.Count}
	}

	bar.SetXAxis(labels).AddSeries("occurrences", data)
	return bar
}

func (v *Visualizer) lengthBoxPlot(result *models.AnalysisResult) *charts.BoxPlot {
	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Text Length by Sentiment"}),
	)

	var labels []string
	var data []opts.BoxPlotData
	for _, cat := range models.Categories() {
		ct, ok := result.Patterns.ByCategory[cat]
		if !ok || ct.Count == 0 {
			continue
		}

		d := ct.TextLength
		labels = append(labels, cat.Label())
		data = append(data, opts.BoxPlotData{
			Value: []float64{d.Min, d.Q1, d.Median, d.Q3, d.Max},
		})
	}

	box.SetXAxis(labels).AddSeries("text length", data)
	return box
}

func (v *Visualizer) climateTermBar(result *models.AnalysisResult) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Climate Terms"}),
	)

	top := result.Themes.ClimateTerms.Top(v.topThemes)
	labels := make([]string, len(top))
	data := make([]opts.BarData, len(top))
	for i, t := range top {
		labels[i] = t.Term
		data[i] = opts.BarData{Value: t.Count}
	}

	bar.SetXAxis(labels).AddSeries("occurrences", data)
	return bar
}
