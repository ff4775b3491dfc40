// cmd/server/main.go
package main

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	g "github.com/mahabubulhasibshawon/delivery-hub/internal/adapters/grpc"
	"github.com/mahabubulhasibshawon/delivery-hub/internal/adapters/kafka"
	"github.com/mahabubulhasibshawon/delivery-hub/internal/adapters/memory"
	"github.com/mahabubulhasibshawon/delivery-hub/internal/adapters/redis"
	"github.com/mahabubulhasibshawon/delivery-hub/internal/adapters/repository"
	"github.com/mahabubulhasibshawon/delivery-hub/internal/adapters/rest"
	"github.com/mahabubulhasibshawon/delivery-hub/internal/application"
	"github.com/mahabubulhasibshawon/delivery-hub/internal/config"
	"github.com/mahabubulhasibshawon/delivery-hub/internal/metrics"
	"github.com/mahabubulhasibshawon/delivery-hub/internal/ports"
	"github.com/mahabubulhasibshawon/delivery-hub/pkg/auth"
)

const shutdownTimeout = 10 * time.Second

type stores interface {
	ports.UserRepositoryPort
	ports.OrderRepositoryPort
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.WithError(err).Fatal("server stopped with error")
	}
	log.Info("server stopped")
}

func setupLogging(cfg config.Config) {
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func run(ctx context.Context, cfg config.Config) error {
	logger := log.WithField("component", "app")
	health := rest.NewHealthHandler()

	var store stores
	switch cfg.StorageDriver {
	case config.DriverMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		store = memory.NewStore()
	default:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		store = repository.NewPostgresRepository(db)
	}
	health.Register("store", store, true)

	secret := cfg.JWTSecret
	if secret == "" {
		secret = uuid.NewString()
		logger.Warn("JWT_SECRET not set, using an ephemeral secret")
	}
	tokens := auth.NewManager(secret, cfg.JWTTTL)

	collectors := metrics.New(prometheus.DefaultRegisterer)
	opts := []application.OrderServiceOption{
		application.WithRecorder(collectors),
		application.WithLogger(log.WithField("component", "orders")),
	}

	if cfg.RedisAddr != "" {
		cache := redis.NewCache(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL)
		defer cache.Close()
		if err := cache.Ping(ctx); err != nil {
			logger.WithError(err).Warn("redis unreachable, reads fall through to the store until it recovers")
		}
		opts = append(opts, application.WithCache(cache))
		health.Register("cache", cache, false)
	}

	if len(cfg.KafkaBrokers) > 0 {
		producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer func() {
			if err := producer.Close(); err != nil {
				logger.WithError(err).Warn("failed to close kafka producer")
			}
		}()
		opts = append(opts, application.WithPublisher(producer))
		logger.WithFields(log.Fields{"brokers": cfg.KafkaBrokers, "topic": cfg.KafkaTopic}).Info("kafka producer initialized")
	}

	authService := application.NewAuthService(store, tokens, cfg.BcryptCost, log.WithField("component", "auth"))
	orderService := application.NewOrderService(store, store, opts...)

	gin.SetMode(cfg.GinMode)
	router := rest.NewRouter(rest.Config{
		Auth:    authService,
		Orders:  orderService,
		Tokens:  tokens,
		Health:  health,
		Metrics: collectors,
		Logger:  log.WithField("layer", "http"),
	})
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: router, ReadHeaderTimeout: 5 * time.Second}

	grpcSrv := g.NewServer(prometheus.DefaultRegisterer, log.WithField("layer", "grpc"))
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}

	metricsSrv := newMetricsServer(cfg.MetricsAddr)

	errCh := make(chan error, 3)
	go func() {
		logger.Infof("HTTP API listening on %s", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		if err := grpcSrv.Serve(lis); err != nil {
			errCh <- err
		}
	}()
	go func() {
		logger.Infof("metrics available at %s/metrics", cfg.MetricsAddr)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()
	grpcSrv.SetServing(true)

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case runErr = <-errCh:
		logger.WithError(runErr).Error("server failed, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	grpcSrv.Stop(shutdownTimeout)
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("HTTP shutdown incomplete")
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("metrics shutdown incomplete")
	}
	return runErr
}

func openDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, err
	}

	if cfg.MigrateOnStart {
		if err := repository.MigrateUp(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		log.Info("database migrations applied")
	}
	return db, nil
}

func newMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
}
