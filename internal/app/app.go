// Package app sequences the pipeline stages: load, analyze, render,
// report. Loader and analyzer failures abort the run; artifact
// rendering is best-effort and failures are collected into the run
// summary instead.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/selivandex/climate-sentiment/internal/analyzer"
	"github.com/selivandex/climate-sentiment/internal/config"
	"github.com/selivandex/climate-sentiment/internal/loader"
	"github.com/selivandex/climate-sentiment/internal/reports"
	"github.com/selivandex/climate-sentiment/internal/sentiment"
	"github.com/selivandex/climate-sentiment/internal/visualizer"
	"github.com/selivandex/climate-sentiment/pkg/logger"
	"github.com/selivandex/climate-sentiment/pkg/models"
)

// RunSummary lists what a run produced and which artifacts failed.
type RunSummary struct {
	RunID     string
	Artifacts []string
	Failures  []error
}

// OK reports whether every artifact rendered successfully.
func (s *RunSummary) OK() bool {
	return len(s.Failures) == 0
}

// App wires the pipeline stages together and holds per-run state.
type App struct {
	cfg        *config.Config
	loader     *loader.Loader
	analyzer   *analyzer.Analyzer
	reporter   *reports.Generator
	visualizer *visualizer.Visualizer

	corpus *models.Corpus
	result *models.AnalysisResult
}

// New builds the application from configuration.
func New(cfg *config.Config) (*App, error) {
	reporter, err := reports.NewGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create report generator: %w", err)
	}

	opts := analyzer.Options{
		TopThemes:         cfg.Analysis.TopThemes,
		TopThemesPerLabel: cfg.Analysis.TopThemesPerLabel,
		MinTokenLength:    cfg.Analysis.MinTokenLength,
	}

	return &App{
		cfg:        cfg,
		loader:     loader.New(cfg.Dataset.File),
		analyzer:   analyzer.New(opts, sentiment.NewAnalyzer()),
		reporter:   reporter,
		visualizer: visualizer.New(cfg.Analysis.TopThemesPerLabel),
	}, nil
}

// LoadData loads and validates the corpus. Fatal on failure.
func (a *App) LoadData() error {
	corpus, err := a.loader.Load()
	if err != nil {
		return err
	}
	a.corpus = corpus
	return nil
}

// Analyze derives the analysis result and stamps run metadata.
func (a *App) Analyze() error {
	if a.corpus == nil {
		return fmt.Errorf("data must be loaded before analysis")
	}

	result, err := a.analyzer.Analyze(a.corpus)
	if err != nil {
		return err
	}

	result.RunID = uuid.NewString()
	result.GeneratedAt = time.Now()
	result.Topic = a.cfg.Dataset.Topic
	result.CorpusWindow = a.cfg.Dataset.Window

	a.result = result
	return nil
}

// prepareOutput verifies the pipeline reached the render stage and the
// output directory exists.
func (a *App) prepareOutput() (string, *RunSummary, error) {
	if a.result == nil {
		return "", nil, fmt.Errorf("analysis must run before rendering")
	}

	dir := a.cfg.Output.Dir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	return dir, &RunSummary{RunID: a.result.RunID}, nil
}

func (s *RunSummary) record(dir, name string, err error) {
	if err != nil {
		logger.Error("artifact failed", zap.String("artifact", name), zap.Error(err))
		s.Failures = append(s.Failures, err)
		return
	}
	s.Artifacts = append(s.Artifacts, filepath.Join(dir, name))
}

// RenderCharts writes the static charts and the interactive dashboard.
// Rendering is best-effort: each failure is recorded and the remaining
// artifacts are still attempted.
func (a *App) RenderCharts() (*RunSummary, error) {
	dir, summary, err := a.prepareOutput()
	if err != nil {
		return nil, err
	}

	for _, artifact := range a.visualizer.Artifacts() {
		summary.record(dir, artifact.Name, artifact.Render(a.result, dir))
	}

	return summary, nil
}

// WriteReports writes the text findings report and the CSV metrics
// summary, best-effort like the charts.
func (a *App) WriteReports() (*RunSummary, error) {
	dir, summary, err := a.prepareOutput()
	if err != nil {
		return nil, err
	}

	summary.record(dir, reports.ArtifactTextReport, a.reporter.WriteTextReport(a.result, dir))
	summary.record(dir, reports.ArtifactCSVSummary, a.reporter.WriteCSVSummary(a.result, dir))

	return summary, nil
}

// RenderArtifacts writes every chart and report artifact into the
// output directory.
func (a *App) RenderArtifacts() (*RunSummary, error) {
	charts, err := a.RenderCharts()
	if err != nil {
		return nil, err
	}

	rep, err := a.WriteReports()
	if err != nil {
		return nil, err
	}

	summary := &RunSummary{
		RunID:     a.result.RunID,
		Artifacts: append(charts.Artifacts, rep.Artifacts...),
		Failures:  append(charts.Failures, rep.Failures...),
	}

	logger.Info("artifact rendering finished",
		zap.Int("produced", len(summary.Artifacts)),
		zap.Int("failed", len(summary.Failures)),
	)

	return summary, nil
}

// RunComplete executes the full pipeline in order. The returned error
// is fatal (load or analysis); render failures live in the summary.
func (a *App) RunComplete() (*RunSummary, error) {
	if err := a.LoadData(); err != nil {
		return nil, err
	}
	if err := a.Analyze(); err != nil {
		return nil, err
	}
	return a.RenderArtifacts()
}

// ConsoleSummary renders the post-run console summary.
func (a *App) ConsoleSummary() (string, error) {
	if a.result == nil {
		return "", fmt.Errorf("no analysis results available")
	}
	return a.reporter.RenderConsoleSummary(a.result)
}

// Result exposes the current analysis result, nil before Analyze.
func (a *App) Result() *models.AnalysisResult {
	return a.result
}

// Corpus exposes the loaded corpus, nil before LoadData.
func (a *App) Corpus() *models.Corpus {
	return a.corpus
}
