package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onehealthlab/evidence-map/internal/platform/logger"
	"github.com/onehealthlab/evidence-map/internal/services"
)

type DashboardHandler struct {
	log          *logger.Logger
	chartService services.ChartService
}

func NewDashboardHandler(log *logger.Logger, chartService services.ChartService) *DashboardHandler {
	return &DashboardHandler{
		log:          log.With("handler", "DashboardHandler"),
		chartService: chartService,
	}
}

// Dashboard serves the single page: header, description, chart and the
// (initially empty) detail table. The figure is embedded as JSON.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html.tmpl", gin.H{
		"Title":       h.chartService.PageTitle(),
		"Description": h.chartService.Description(),
		"Figure":      h.chartService.FigureJSON(),
		"Prompt":      services.PromptNoClick,
	})
}
