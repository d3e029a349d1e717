package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shopkart/prodex/internal/config"
	dbRedis "github.com/shopkart/prodex/internal/db/redis"
	"github.com/shopkart/prodex/internal/interpreter"
	logpkg "github.com/shopkart/prodex/internal/logger"
	"github.com/shopkart/prodex/internal/metrics"
	"github.com/shopkart/prodex/internal/ranking"
	"github.com/shopkart/prodex/internal/repository/catalog"
	"github.com/shopkart/prodex/internal/repository/history"
	chiTransport "github.com/shopkart/prodex/internal/transport/chi"
	healthuc "github.com/shopkart/prodex/internal/usecase/health"
	productuc "github.com/shopkart/prodex/internal/usecase/product"
	purchaseuc "github.com/shopkart/prodex/internal/usecase/purchase"
	searchuc "github.com/shopkart/prodex/internal/usecase/search"
	"github.com/shopkart/prodex/internal/version"
)

// historyStore is the purchase-history contract both drivers satisfy.
type historyStore interface {
	AddPurchase(ctx context.Context, userID string, productID int64) (int, error)
	PurchaseCount(ctx context.Context, userID string, productID int64) (int, error)
	UserPurchases(ctx context.Context, userID string) (map[int64]int, error)
	Clear(ctx context.Context, userID string) error
}

func main() {
	// .env is optional, config files are the source of truth
	_ = godotenv.Load()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting prodex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("history_driver", cfg.Database.Driver),
	)

	ctx := context.Background()

	// Purchase-history store based on driver
	var (
		hist   historyStore
		dbPing healthuc.Pinger
	)
	switch cfg.Database.Driver {
	case "redis":
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Username: cfg.Database.Username,
			Password: cfg.Database.Password,
			DB:       cfg.Database.DB,
		})
		if err != nil {
			logger.Fatal("Failed to create history store", zap.Error(err))
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("History store not ready", zap.Error(err))
		}
		logger.Info("Connected to history store", zap.Strings("addrs", cfg.Database.Addrs))

		hist = history.New(store, cfg.Storage.KeyPrefix)
		dbPing = store
	case "memory":
		hist = history.NewMemory()
	default:
		logger.Fatal("Unknown database driver", zap.String("driver", cfg.Database.Driver))
	}

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Catalog with demo inventory
	store := catalog.NewStore()
	if cfg.Catalog.Seed {
		n, err := catalog.Seed(store)
		if err != nil {
			logger.Fatal("Failed to seed catalog", zap.Error(err))
		}
		logger.Info("Catalog seeded", zap.Int("products", n))
	}

	// Ranking core — composition root
	interp := interpreter.New()
	ranker := ranking.NewRanker(ranking.NewScorer(), hist)

	// Use case services
	productSvc := productuc.New(store)
	searchSvc := searchuc.New(store, interp, ranker, hist, logger)
	purchaseSvc := purchaseuc.New(store, hist)
	healthSvc := healthuc.New(dbPing, store)

	// Chi server
	server := chiTransport.NewServer(productSvc, searchSvc, purchaseSvc, healthSvc, logger).
		WithSuggestionLimit(cfg.Search.SuggestionLimit).
		WithSearchLimits(cfg.Search.DefaultPageSize, cfg.Search.MaxPageSize, cfg.Search.MaxBatchSize)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(chiTransport.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
