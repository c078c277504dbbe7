package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	chatHttp "insights-api/internal/chat/adapters/http/fiber"
	chatUsecase "insights-api/internal/chat/core/usecase"

	dashboardClock "insights-api/internal/dashboard/adapters/clock"
	dashboardHttp "insights-api/internal/dashboard/adapters/http/fiber"
	dashboardRandom "insights-api/internal/dashboard/adapters/random"
	dashboardUsecase "insights-api/internal/dashboard/core/usecase"

	statusHttp "insights-api/internal/status/adapters/http/fiber"
	statusRepoPg "insights-api/internal/status/adapters/postgres"
	statusPorts "insights-api/internal/status/core/ports"
	statusUsecase "insights-api/internal/status/core/usecase"

	"insights-api/internal/config"
	"insights-api/internal/logging"
	"insights-api/internal/middleware"
	"insights-api/internal/observability"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	recoverer "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "insights-api/docs"
)

// @title Insights API
// @version 1.0
// @description Demo backend serving synthetic analytics dashboard data and a stub chat assistant.
// @BasePath /
func main() {
	// Bootstrap logger so config loading can already log
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))

	// Config
	cfg := config.Read()
	logging.Init(cfg.App.LogLevel)

	// DB connection (optional, serves the connectivity probe only)
	var probe statusPorts.StoreProbePort
	if cfg.Database.URL != "" {
		db, err := sql.Open("postgres", cfg.Database.URL)
		if err != nil {
			zap.L().Warn("failed to open postgres, probe disabled", zap.Error(err))
		} else {
			defer db.Close()

			db.SetMaxOpenConns(20)
			db.SetMaxIdleConns(10)
			db.SetConnMaxLifetime(30 * time.Minute)

			probe = statusRepoPg.NewStoreProbe(statusRepoPg.NewSQLDB(db))
		}
	}

	// Usecases
	buildDashboardUC := dashboardUsecase.NewBuildDashboardUseCase(
		dashboardClock.NewSystemClock(),
		dashboardRandom.NewLockedRand(),
	)
	respondUC := chatUsecase.NewRespondUseCase()
	checkStatusUC := statusUsecase.NewCheckStatusUseCase(probe, cfg.Database.URL != "", cfg.Database.Name != "")

	// HTTP (Fiber) app + middleware
	app := fiber.New(fiber.Config{
		AppName:     "Insights API",
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	httpMetrics := observability.NewHTTPMetrics()

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(middleware.RequestLogger())
	app.Use(recoverer.New())
	app.Use(httpMetrics.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.App.AllowedOrigins, ","),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Accept,Content-Type",
	}))

	// status endpoints
	statusHandler := statusHttp.NewStatusHandler(checkStatusUC)
	app.Get("/", statusHandler.Root)
	app.Get("/api/hello", statusHandler.Hello)
	app.Get("/test", statusHandler.Test)

	// dashboard endpoints
	dashboardHandler := dashboardHttp.NewDashboardHandler(buildDashboardUC)
	app.Get("/api/dashboard/sample", dashboardHandler.GetSampleDashboard)

	// chat endpoints
	chatHandler := chatHttp.NewChatHandler(respondUC, time.Duration(cfg.Chat.ThinkingDelayMS)*time.Millisecond)
	app.Post("/api/chat/respond", chatHandler.Respond)

	// Observability + Swagger
	app.Get("/metrics", httpMetrics.Handler())
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", cfg.App.Port)); err != nil {
			zap.L().Error("fiber stopped", zap.Error(err))
		}
	}()

	zap.L().Info("server started", zap.Int("port", cfg.App.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	zap.L().Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		zap.L().Error("fiber shutdown error", zap.Error(err))
	}

	zap.L().Info("server exiting")
}
