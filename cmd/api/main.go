// Package main is the entry point for the Lodgings API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pkordes/lodgings-api/internal/auth"
	"github.com/pkordes/lodgings-api/internal/config"
	"github.com/pkordes/lodgings-api/internal/handler"
	"github.com/pkordes/lodgings-api/internal/middleware"
	"github.com/pkordes/lodgings-api/internal/repo"
	"github.com/pkordes/lodgings-api/internal/service"
	"github.com/pkordes/lodgings-api/migrations"
)

// repos bundles the three stores so both backends wire identically.
type repos struct {
	lodgings     repo.LodgingRepo
	reservations repo.ReservationRepo
	users        repo.UserRepo
	close        func()
}

func main() {
	// --- Config -----------------------------------------------------------
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		// Use the default logger before the configured one exists.
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

	// --- Storage ----------------------------------------------------------
	stores, err := openStorage(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open storage", "storage", cfg.Storage, "error", err)
		os.Exit(1)
	}
	defer stores.close()

	// --- Services ---------------------------------------------------------
	issuer, err := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		slog.Error("failed to create token issuer", "error", err)
		os.Exit(1)
	}
	lodgings := service.NewLodgingService(stores.lodgings, stores.reservations, cfg.PageSize)
	if cfg.Storage == config.StorageMemory && cfg.SeedFile != "" {
		seed, err := repo.ReadSeedFile(cfg.SeedFile)
		if err != nil {
			slog.Error("failed to read seed file", "file", cfg.SeedFile, "error", err)
			os.Exit(1)
		}
		n, err := lodgings.Seed(context.Background(), seed)
		if err != nil {
			slog.Error("failed to seed memory store", "file", cfg.SeedFile, "error", err)
			os.Exit(1)
		}
		slog.Info("seeded memory store", "file", cfg.SeedFile, "lodgings", n)
	}
	server := handler.NewServer(
		lodgings,
		service.NewReservationService(stores.reservations, stores.lodgings),
		service.NewUserService(stores.users, issuer, cfg.BcryptCost),
		logger,
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer → CORS → MaxBodySize.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Mount("/", server.Routes(issuer))

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
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
		slog.Info("server starting", "addr", srv.Addr, "storage", cfg.Storage, "page_size", cfg.PageSize)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openStorage builds the repos for the configured backend.
func openStorage(ctx context.Context, cfg config.Config) (repos, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		store := repo.NewMemoryStore()
		return repos{
			lodgings:     store.Lodgings(),
			reservations: store.Reservations(),
			users:        store.Users(),
			close:        func() {},
		}, nil

	case config.StoragePostgres:
		// New() does not open connections immediately; the first query does.
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return repos{}, fmt.Errorf("create pool: %w", err)
		}
		// Verify the DB is reachable before accepting traffic.
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return repos{}, fmt.Errorf("connect: %w", err)
		}
		slog.Info("database connection established")

		if cfg.MigrateOnStart {
			// goose needs database/sql; borrow a *sql.DB view of the pool.
			db := stdlib.OpenDBFromPool(pool)
			applied, err := migrations.Up(ctx, db)
			_ = db.Close()
			if err != nil {
				pool.Close()
				return repos{}, err
			}
			slog.Info("migrations applied", "count", applied)
		}

		return repos{
			lodgings:     repo.NewLodgingRepo(pool),
			reservations: repo.NewReservationRepo(pool),
			users:        repo.NewUserRepo(pool),
			close:        pool.Close,
		}, nil
	}
	return repos{}, fmt.Errorf("unknown storage %q", cfg.Storage)
}
