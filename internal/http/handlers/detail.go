package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onehealthlab/evidence-map/internal/http/response"
	"github.com/onehealthlab/evidence-map/internal/platform/logger"
	"github.com/onehealthlab/evidence-map/internal/services"
)

type DetailHandler struct {
	log           *logger.Logger
	detailService services.DetailService
}

func NewDetailHandler(log *logger.Logger, detailService services.DetailService) *DetailHandler {
	return &DetailHandler{
		log:           log.With("handler", "DetailHandler"),
		detailService: detailService,
	}
}

type detailRequest struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// Details resolves a clicked bubble to its article list. Header clicks and
// empty click state come back 200 with a prompt title, matching the chart's
// non-clickable regions.
func (h *DetailHandler) Details(c *gin.Context) {
	var req detailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	result, err := h.detailService.Resolve(c.Request.Context(), req.X, req.Y)
	if err != nil {
		h.log.Error("Details failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "load_details_failed", err)
		return
	}
	response.RespondOK(c, result)
}
