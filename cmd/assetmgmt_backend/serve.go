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

	"github.com/SscSPs/asset_management_app/internal/adapters/database/memory"
	"github.com/SscSPs/asset_management_app/internal/adapters/database/mongodb"
	"github.com/SscSPs/asset_management_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/asset_management_app/internal/adapters/identity"
	"github.com/SscSPs/asset_management_app/internal/adapters/payment/stripe"
	"github.com/SscSPs/asset_management_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/asset_management_app/internal/core/services"
	"github.com/SscSPs/asset_management_app/internal/handlers"
	"github.com/SscSPs/asset_management_app/internal/middleware"
	"github.com/SscSPs/asset_management_app/internal/platform/config"
	"github.com/SscSPs/asset_management_app/internal/platform/metrics"
	"github.com/SscSPs/asset_management_app/internal/utils/validation"
	"github.com/SscSPs/asset_management_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
	limiterredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const shutdownGrace = 10 * time.Second

func serveCmd(logger *slog.Logger) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if port != "" {
				cfg.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg, logger)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")

	return cmd
}

func runServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if err := validation.Register(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	repos, closeStorage, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStorage()

	rateLimiter, closeLimiter, err := newRateLimiter(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeLimiter()

	m := metrics.New()
	container := services.NewServiceContainer(cfg, repos, stripe.NewGateway(cfg.StripeSecretKey), m)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.Metrics(m),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, container, newVerifier(cfg), m)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           http.TimeoutHandler(r, cfg.RequestTimeout, `{"success":false,"message":"request timed out"}`),
		ReadHeaderTimeout: cfg.RequestTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("db_driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

// openStorage connects the configured backend and returns its repositories
// together with a release func.
func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		if cfg.RunMigrations {
			logger.Info("Running database migrations")
			if err := pgsql.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, pgsql.MigrateUp, logger); err != nil {
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool, logger) }, nil

	case config.DriverMongo:
		client, err := database.NewMongoClient(ctx, cfg.MongoURI, logger)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		if err := mongodb.Bootstrap(ctx, client.Database(cfg.MongoDatabase), logger); err != nil {
			database.CloseMongoClient(client, logger)
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to bootstrap mongo: %w", err)
		}
		return mongodb.NewRepositoryProvider(client, cfg.MongoDatabase), func() { database.CloseMongoClient(client, logger) }, nil

	default:
		logger.Warn("Using in-memory storage; data is lost on restart")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}
}

// newRateLimiter shares counters through redis when REDIS_URL is set so every
// replica enforces the same budget.
func newRateLimiter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*limiter.Limiter, func(), error) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid RATE_LIMIT %q: %w", cfg.RateLimit, err)
	}

	if cfg.RedisURL == "" {
		return limiter.New(limitermemory.NewStore(), rate), func() {}, nil
	}

	client, err := database.NewRedisClient(ctx, cfg.RedisURL, logger)
	if err != nil {
		return nil, nil, err
	}
	store, err := limiterredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: "assetmgmt_limiter"})
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create redis limiter store: %w", err)
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Error("Error closing redis client", slog.String("error", err.Error()))
		}
	}
	return limiter.New(store, rate), closeFn, nil
}

func newVerifier(cfg *config.Config) gateways.IdentityVerifier {
	if cfg.AuthProvider == config.AuthProviderGoogle {
		return identity.NewGoogleVerifier(cfg.GoogleClientID)
	}
	return identity.NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer)
}
