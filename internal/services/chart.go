package services

import (
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/onehealthlab/evidence-map/internal/chart"
)

// Page copy shown above the chart.
const (
	pageTitle = "Scaling One Health Capabilities"

	pageDescription = "The Strength of Evidence is defined on a scale from 0.5 " +
		"(very low) to 3 (high). The Direction of Effect is classified as " +
		"Positive (+1), Inconclusive/Mixed (0), or Negative (–1). Average values " +
		"can be viewed by clicking on each bubble. Bubble size shows the number " +
		"of articles. Color encodes the direction of evidence."
)

// ChartService exposes the precomputed figure to the dashboard page. The
// figure is marshalled once at startup; every request serves the same bytes.
type ChartService interface {
	FigureJSON() template.JS
	PageTitle() string
	Description() string
}

type chartService struct {
	figureJSON template.JS
}

func NewChartService(fig chart.Figure) (ChartService, error) {
	raw, err := json.Marshal(fig)
	if err != nil {
		return nil, fmt.Errorf("marshal figure: %w", err)
	}
	return &chartService{figureJSON: template.JS(raw)}, nil
}

func (s *chartService) FigureJSON() template.JS { return s.figureJSON }
func (s *chartService) PageTitle() string       { return pageTitle }
func (s *chartService) Description() string     { return pageDescription }
