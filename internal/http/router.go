package http

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/onehealthlab/evidence-map/internal/http/handlers"
	httpMW "github.com/onehealthlab/evidence-map/internal/http/middleware"
	"github.com/onehealthlab/evidence-map/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	CORSOrigins []string
	Templates   *template.Template

	DashboardHandler *httpH.DashboardHandler
	DetailHandler    *httpH.DetailHandler
	HealthHandler    *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("evidence-map"))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	if cfg.Templates != nil {
		r.SetHTMLTemplate(cfg.Templates)
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Dashboard page
	if cfg.DashboardHandler != nil {
		r.GET("/", cfg.DashboardHandler.Dashboard)
	}

	api := r.Group("/api")
	{
		if cfg.DetailHandler != nil {
			api.POST("/details", cfg.DetailHandler.Details)
		}
	}

	return r
}
