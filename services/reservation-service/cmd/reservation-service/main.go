package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tspi-facilities/roomreserve/libs/config"
	"github.com/tspi-facilities/roomreserve/libs/db"
	"github.com/tspi-facilities/roomreserve/libs/httpx"
	"github.com/tspi-facilities/roomreserve/libs/kafkax"
	otelx "github.com/tspi-facilities/roomreserve/libs/otel"
	"github.com/tspi-facilities/roomreserve/libs/runtime"
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/booking"
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/catalog"
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/handlers"
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/outbox"
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/storage"
)

const serviceName = "reservation-service"

func main() {
	logger := runtime.NewLogger(serviceName)

	ctx, stop := runtime.SignalContext()
	defer stop()

	shutdownTracing, err := otelx.Setup(ctx, otelx.ConfigFromEnv(serviceName))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("otel shutdown failed", "err", err)
		}
	}()

	port, err := config.Port("PORT", "8080")
	if err != nil {
		logger.Error("invalid PORT", "err", err)
		os.Exit(1)
	}

	var readyChecks []runtime.ReadyCheck

	// Storage: Postgres when configured, in-memory otherwise. The memory
	// store loses bookings on restart, so it only suits local development.
	var repo storage.Repository
	databaseURL := config.String("DATABASE_URL", "")
	kafkaBrokers := config.String("KAFKA_BROKERS", "")
	if databaseURL != "" {
		pool, err := db.Open(ctx, databaseURL)
		if err != nil {
			logger.Error("database connect failed", "err", err)
			os.Exit(1)
		}
		defer pool.Close()
		readyChecks = append(readyChecks, runtime.ReadyCheck{Name: "postgres", Check: db.ReadyCheck(pool)})

		var outboxRepo *outbox.Repository
		if kafkaBrokers != "" {
			outboxRepo = outbox.NewRepository(pool)
			publisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
				Brokers:   kafkaBrokers,
				PollEvery: time.Duration(config.Int("OUTBOX_POLL_MS", 2000)) * time.Millisecond,
				BatchSize: config.Int("OUTBOX_BATCH_SIZE", 50),
			})
			go publisher.Run(ctx)
			readyChecks = append(readyChecks, runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(kafkaBrokers)})
		}
		repo = storage.NewPostgresRepository(pool, outboxRepo)
	} else {
		logger.Warn("DATABASE_URL not set; using in-memory booking store")
		repo = storage.NewMemoryRepository()
	}

	roomCatalog, err := buildCatalog(logger)
	if err != nil {
		logger.Error("room catalog setup failed", "err", err)
		os.Exit(1)
	}

	svc := booking.NewService(repo, logger)
	handler := handlers.NewBookingHandler(svc, roomCatalog, logger)

	mux := runtime.NewBaseMuxWithReady(readyChecks...)
	mux.HandleFunc("/api/v1/bookings", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handler.List(w, r)
		case http.MethodPost:
			handler.Create(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/v1/bookings/conflict", handler.Check)
	mux.HandleFunc("/api/v1/bookings/cancel", handler.Cancel)
	mux.HandleFunc("/api/v1/rooms", handler.Rooms)
	mux.HandleFunc("/api/v1/slots", handler.Slots)

	var corsOrigins []string
	if raw := config.String("CORS_ALLOWED_ORIGINS", ""); raw != "" {
		corsOrigins = strings.Split(raw, ",")
	}

	rateLimit := buildRateLimit(logger)
	wrapped := httpx.Chain(mux,
		httpx.WithCORS(httpx.CORSPolicy{
			AllowedOrigins: corsOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", httpx.RequestIDHeader},
			MaxAge:         10 * time.Minute,
		}),
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
		httpx.WithBodyLimit(int64(config.Int("MAX_BODY_BYTES", 1<<20))),
		httpx.WithTimeout(time.Duration(config.Int("REQUEST_TIMEOUT_MS", 10000))*time.Millisecond),
		rateLimit,
	)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           otelhttp.NewHandler(wrapped, serviceName),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "port", port)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}

// buildCatalog prefers a remote facilities service when one is configured and
// the gRPC stubs are compiled in; otherwise the static (env or built-in) list.
func buildCatalog(logger *slog.Logger) (catalog.Provider, error) {
	if addr := config.String("CATALOG_GRPC_ADDR", ""); addr != "" {
		provider, err := catalog.NewRemoteProvider(addr)
		if err != nil {
			return nil, err
		}
		if provider != nil {
			logger.Info("using remote room catalog", "addr", addr)
			return provider, nil
		}
		logger.Warn("CATALOG_GRPC_ADDR set but remote catalog support is not compiled in; using static catalog")
	}
	return catalog.NewStaticProvider(config.String("ROOMS_JSON", ""))
}

// buildRateLimit picks a shared Redis window when REDIS_ADDR is set so limits
// hold across replicas, else a per-process window.
func buildRateLimit(logger *slog.Logger) httpx.Middleware {
	limit := config.Int("RATE_LIMIT_PER_MINUTE", 120)
	if addr := config.String("REDIS_ADDR", ""); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.String("REDIS_PASSWORD", ""),
		})
		return httpx.NewRedisRateLimiter(rdb, limit, time.Minute, serviceName).
			Middleware(logger, config.Bool("RATE_LIMIT_FAIL_OPEN", true))
	}
	return httpx.NewRateLimiter(limit, time.Minute).Middleware()
}
