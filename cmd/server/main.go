package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"placehub/cmd/server/docs"
	"placehub/internal/api"
	"placehub/internal/api/ws"
	"placehub/internal/config"
	"placehub/internal/metrics"
	"placehub/internal/obs"
	"placehub/internal/redis"
	"placehub/internal/repository"
	"placehub/internal/storage"
	"placehub/internal/worker"
)

// @title Placehub API
// @version 1.0
// @description Campus food and places directory

// @host localhost:4000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description JWT token. Example: Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	shutdownTracer, err := obs.InitTracer(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}

	db, err := repository.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	rdb := redis.New(cfg)
	defer rdb.Close()
	areaCache := redis.AreasCache(rdb)
	if err := redis.Ping(ctx, rdb); err != nil {
		log.Printf("redis unavailable, serving areas uncached: %v", err)
		areaCache = redis.AreasCache(nil)
	}

	uploader, err := storage.New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize upload storage: %v", err)
	}

	docs.SwaggerInfo.Host = cfg.HTTPAddr
	if cfg.IsProduction() {
		docs.SwaggerInfo.Schemes = []string{"https"}
	} else {
		docs.SwaggerInfo.Schemes = []string{"http"}
	}

	hub := ws.NewHub()
	deps := api.NewDeps(
		repository.NewAreaRepository(db.DB()),
		repository.NewPlaceRepository(db.DB()),
		repository.NewCommentRepository(db.DB()),
		areaCache,
		hub,
		uploader,
	)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("12M"))
	e.Use(otelecho.Middleware(cfg.Tracing.ServiceName))
	e.Use(metrics.PrometheusMiddleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api.SetupRoutes(e, deps, cfg)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	keepalive := worker.NewKeepaliveWorker(hub, 30*time.Second)
	go keepalive.StartWorker(ctx)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown failed: %v", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Printf("tracer shutdown failed: %v", err)
	}
}
