// Package main is the entry point for the travel backend API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
//
// The external collaborators are selected here, once, from configuration
// validity: a missing store or auth credential swaps in a no-op stub instead
// of refusing to start, and the substitution is logged loudly so empty
// responses are traceable to one startup line.
package main

import (
	"context"
	"database/sql"
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
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skyroute/travel-backend/internal/auth"
	"github.com/skyroute/travel-backend/internal/config"
	"github.com/skyroute/travel-backend/internal/handler"
	"github.com/skyroute/travel-backend/internal/middleware"
	"github.com/skyroute/travel-backend/internal/repo"
	"github.com/skyroute/travel-backend/internal/service"
	"github.com/skyroute/travel-backend/migrations"
)

// maxBodyBytes caps request bodies well above any legitimate booking payload.
const maxBodyBytes = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	cfg := config.Load()

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Data Backend: table store ----------------------------------------
	profileRepo, bookingRepo, historyRepo, pool := buildStore(cfg)
	if pool != nil {
		defer pool.Close()
	}

	// --- Data Backend: auth provider --------------------------------------
	var authClient auth.Client
	if cfg.AuthConfigured() {
		authClient = auth.NewHTTPClient(cfg.SupabaseURL, cfg.SupabaseKey)
	} else {
		slog.Warn("auth credentials missing; using no-op auth stub, every auth call will fail")
		authClient = auth.NewStubClient()
	}

	// --- Services & handlers ----------------------------------------------
	srv := handler.NewServer(
		service.NewAuthService(authClient, profileRepo),
		service.NewFlightService(historyRepo),
		service.NewBookingService(bookingRepo),
		service.NewProfileService(profileRepo),
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Metrics →
	// Recoverer → CORS → body size cap.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(middleware.NewMetricsHandler())
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// buildStore selects the table store implementations. With a configured
// DATABASE_URL it opens a pgx pool, applies pending migrations, and returns
// the Postgres repos; otherwise it returns the no-op stubs so the process
// still starts and store-backed routes answer with empty data.
func buildStore(cfg config.Config) (repo.ProfileRepo, repo.BookingRepo, repo.SearchHistoryRepo, *pgxpool.Pool) {
	if !cfg.StoreConfigured() {
		slog.Warn("store credentials missing; using no-op store stubs, store-backed routes will return empty data")
		return repo.NewStubProfileRepo(), repo.NewStubBookingRepo(), repo.NewStubSearchHistoryRepo(), nil
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}

	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// goose needs database/sql, not a pgx pool; open a short-lived stdlib
	// connection just for the migration run.
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open migration connection", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		slog.Error("failed to create migration provider", "error", err)
		os.Exit(1)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied")

	return repo.NewProfileRepo(pool), repo.NewBookingRepo(pool), repo.NewSearchHistoryRepo(pool), pool
}
