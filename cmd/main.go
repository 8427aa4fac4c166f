package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/onehealthlab/evidence-map/internal/chart"
	"github.com/onehealthlab/evidence-map/internal/config"
	"github.com/onehealthlab/evidence-map/internal/dataset"
	"github.com/onehealthlab/evidence-map/internal/db"
	"github.com/onehealthlab/evidence-map/internal/evidence"
	internalhttp "github.com/onehealthlab/evidence-map/internal/http"
	"github.com/onehealthlab/evidence-map/internal/http/handlers"
	"github.com/onehealthlab/evidence-map/internal/observability"
	"github.com/onehealthlab/evidence-map/internal/platform/envutil"
	"github.com/onehealthlab/evidence-map/internal/platform/logger"
	"github.com/onehealthlab/evidence-map/internal/repos"
	"github.com/onehealthlab/evidence-map/internal/services"
	"github.com/onehealthlab/evidence-map/web"
)

func main() {
	// Config + logger
	cfgPath := envutil.String("CONFIG_PATH", "config.yaml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Mode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	if cfg.Mode == "release" || cfg.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Tracing (optional)
	if shutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: "evidence-map",
		Environment: cfg.Mode,
	}); shutdown != nil {
		defer func() { _ = shutdown(context.Background()) }()
	}

	// Pipeline: load -> long form -> aggregate -> axes -> figure.
	// Everything here is computed once; requests only read the results.
	log.Info("Loading dataset...", "path", cfg.DatasetPath)
	table, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		log.Fatal("Dataset load failed", "error", err)
	}
	long, err := evidence.BuildLongTable(table)
	if err != nil {
		log.Fatal("Long-form transform failed", "error", err)
	}
	agg := evidence.Aggregate(long)
	log.Info("Dataset transformed", "wide_rows", table.Len(), "long_rows", len(long), "groups", len(agg))

	yAxis := chart.BuildYAxis(agg, cfg.Chart.YLabelWidth, cfg.Chart.LabelMaxLines)
	xAxis, xItems := chart.BuildXAxis(agg, cfg.Chart.XLabelWidth, cfg.Chart.LabelMaxLines)
	fig := chart.BuildFigure(agg, yAxis, xAxis, xItems, cfg.Chart)

	// SQLite (in-memory long table for the detail resolver)
	sqliteService, err := db.NewSQLiteService(log, envutil.String("SQLITE_DSN", ""))
	if err != nil {
		log.Fatal("SQLite init failed", "error", err)
	}
	if err := sqliteService.AutoMigrateAll(); err != nil {
		log.Fatal("SQLite auto migration failed", "error", err)
	}

	// Repos
	articleRepo := repos.NewArticleRepo(sqliteService.DB(), log)
	if err := articleRepo.InsertBatch(ctx, long); err != nil {
		log.Fatal("Long table insert failed", "error", err)
	}

	// Services
	chartService, err := services.NewChartService(fig)
	if err != nil {
		log.Fatal("Chart service init failed", "error", err)
	}
	detailService := services.NewDetailService(articleRepo, log)

	// Handlers + router
	server := internalhttp.NewServer(internalhttp.RouterConfig{
		Log:              log,
		CORSOrigins:      cfg.CORSOrigins,
		Templates:        web.Templates(),
		DashboardHandler: handlers.NewDashboardHandler(log, chartService),
		DetailHandler:    handlers.NewDetailHandler(log, detailService),
		HealthHandler:    handlers.NewHealthHandler(),
	})

	log.Info("Server listening", "port", cfg.Port)
	if err := server.Run(ctx, ":"+cfg.Port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
