// Package main is the entry point for the trip planner API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/pkordes/trip-planner/internal/config"
	"github.com/pkordes/trip-planner/internal/enrich"
	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/internal/handler/gen"
	"github.com/pkordes/trip-planner/internal/middleware"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/service"
	"github.com/pkordes/trip-planner/spec"
)

// publicPrefixes are served without a bearer token.
var publicPrefixes = []string{"/healthz", "/shared/", "/openapi.yaml"}

// failureTTLFactor scales the enrichment timeout into how long a failed
// weather or events lookup is replayed before upstream is tried again.
const failureTTLFactor = 6

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Enrichment -------------------------------------------------------
	// Redis is optional. Without it geocoding results are simply not cached.
	var cache enrich.Cache = enrich.NopCache{}
	if cfg.RedisURL != "" {
		rc, err := enrich.NewRedisCache(context.Background(), cfg.RedisURL, "trip-planner:")
		if err != nil {
			slog.Warn("redis unavailable, geocoding cache disabled", "error", err)
		} else {
			defer rc.Close()
			cache = rc
			slog.Info("redis cache connected")
		}
	}
	if cfg.EventsAPIKey == "" {
		slog.Warn("EVENTS_API_KEY is not set, the events widget will report unavailable")
	}

	httpClient := enrich.NewHTTPClient(cfg.EnrichTimeout)
	weather := enrich.NewWeatherService(
		enrich.NewGeocoder(cfg.GeocodingURL, httpClient, cache),
		enrich.NewClimateClient(cfg.ClimateURL, httpClient),
	)
	events := enrich.NewEventsClient(cfg.EventsURL, cfg.EventsAPIKey, cfg.EventsLimit, httpClient)

	// --- Services ---------------------------------------------------------
	tripRepo := repo.NewTripRepo(pool)
	listRepo := repo.NewTripListRepo(pool)

	srv := handler.NewServer(
		service.NewTripService(tripRepo, listRepo),
		service.NewTripListService(listRepo),
		service.NewShareService(repo.NewShareRepo(pool)),
		service.NewEnrichmentService(tripRepo, weather, events, enrich.NewTracker(enrich.WithFailureTTL(failureTTLFactor*cfg.EnrichTimeout)), nil),
		service.NewExportService(tripRepo, listRepo),
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit → auth.
	// CORS runs before auth so browser preflights are answered without a token.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewAuthHandler([]byte(cfg.JWTSecret), publicPrefixes...))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	// gen.NewStrictHandlerWithOptions adapts our StrictServerInterface
	// implementation to the lower-level ServerInterface chi expects.
	strict := gen.NewStrictHandlerWithOptions(srv, nil, handler.NewStrictOptions(logger))
	gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: handler.ParamErrorHandler,
	})

	// --- HTTP Server ------------------------------------------------------
	// WriteTimeout leaves room for the enrichment upstream timeout.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.EnrichTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
