// Package visualizer renders chart artifacts from a finished analysis
// result. It is a pure rendering collaborator: it consumes the
// AnalysisResult read-only and holds no analytical logic. Each artifact
// is rendered best-effort; a failure surfaces as a RenderError and does
// not stop the remaining artifacts.
package visualizer

import (
	"image/color"

	"github.com/selivandex/climate-sentiment/pkg/models"
)

// Fixed artifact names inside the output directory.
const (
	ArtifactDistributionChart = "sentiment_distribution.png"
	ArtifactThemeChart        = "theme_analysis.png"
	ArtifactPatternChart      = "text_patterns.png"
	ArtifactDashboard         = "interactive_dashboard.html"
)

// categoryColors matches the palette of the report dashboard: red for
// Anti, teal for Neutral, blue for Pro, green for News.
var categoryColors = map[models.Category]color.RGBA{
	models.CategoryAnti:    {R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF},
	models.CategoryNeutral: {R: 0x4E, G: 0xCD, B: 0xC4, A: 0xFF},
	models.CategoryPro:     {R: 0x45, G: 0xB7, B: 0xD1, A: 0xFF},
	models.CategoryNews:    {R: 0x96, G: 0xCE, B: 0xB4, A: 0xFF},
}

// categoryHex mirrors categoryColors for HTML output.
var categoryHex = map[models.Category]string{
	models.CategoryAnti:    "#FF6B6B",
	models.CategoryNeutral: "#4ECDC4",
	models.CategoryPro:     "#45B7D1",
	models.CategoryNews:    "#96CEB4",
}

// Visualizer renders static charts and the interactive dashboard.
type Visualizer struct {
	topThemes int
}

// New creates a visualizer. topThemes bounds the theme charts.
func New(topThemes int) *Visualizer {
	if topThemes <= 0 {
		topThemes = 10
	}
	return &Visualizer{topThemes: topThemes}
}

// Artifact binds a fixed artifact name to its render function.
type Artifact struct {
	Name   string
	Render func(result *models.AnalysisResult, dir string) error
}

// Artifacts returns every chart artifact in render order.
func (v *Visualizer) Artifacts() []Artifact {
	return []Artifact{
		{ArtifactDistributionChart, v.RenderDistributionChart},
		{ArtifactThemeChart, v.RenderThemeChart},
		{ArtifactPatternChart, v.RenderPatternChart},
		{ArtifactDashboard, v.RenderDashboard},
	}
}
