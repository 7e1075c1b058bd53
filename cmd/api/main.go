// Package main is the entry point for the question-bank-service API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"question-bank-service/internal/app/service"
	"question-bank-service/internal/config"
	"question-bank-service/internal/domain"
	"question-bank-service/internal/infra/feed"
	"question-bank-service/internal/infra/postgres"
	"question-bank-service/internal/infra/postgres/migrations"
	rediscache "question-bank-service/internal/infra/redis"
	"question-bank-service/internal/job"
	"question-bank-service/internal/logger"
	"question-bank-service/internal/transport/httpserver"
	"question-bank-service/internal/validator"
	"question-bank-service/pkg/locker"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(
		logger.Config{
			Level:  cfg.Logger.Level,
			Format: cfg.Logger.Format,
			Output: cfg.Logger.Output,
		},
		logger.SentryConfig{
			Enabled:     cfg.Sentry.Enabled,
			DSN:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
			SampleRate:  cfg.Sentry.SampleRate,
		},
	)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting question-bank-service",
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	// Connect to database
	db, err := postgres.NewConnection(
		postgres.Config{
			Host:         cfg.Database.Host,
			Port:         cfg.Database.Port,
			Name:         cfg.Database.Name,
			User:         cfg.Database.User,
			Password:     cfg.Database.Password,
			SSLMode:      cfg.Database.SSLMode,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
			MaxLifetime:  cfg.Database.MaxLifetime,
		},
		log.Logger,
	)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = postgres.Close(db) }()

	// Run migrations
	if err := migrations.Run(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	log.Info("database migrations completed")

	// Create repositories
	questionRepo := postgres.NewQuestionRepository(db)

	facetRepos, err := postgres.NewFacetRepositories(db)
	if err != nil {
		log.Fatal("failed to create facet repositories", zap.Error(err))
	}

	facetStores := make([]domain.FacetStore, 0, len(facetRepos))
	for _, kind := range domain.FacetKinds() {
		facetStores = append(facetStores, facetRepos[kind])
	}

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer func() { _ = redisClient.Close() }()
	log.Info("connected to Redis",
		zap.String("host", cfg.Redis.Host),
		zap.Int("port", cfg.Redis.Port),
	)

	// Create cache implementation (optional, based on config)
	var cache domain.Cache
	if cfg.Cache.Enabled {
		cache = rediscache.NewCache(redisClient, log.Logger, cfg.Cache.KeyPrefix)
		log.Info("facet cache enabled",
			zap.Duration("facet_ttl", cfg.Cache.FacetTTL),
			zap.String("key_prefix", cfg.Cache.KeyPrefix),
		)
	} else {
		log.Info("facet cache disabled")
	}

	// Facet lookups for the resolver, cached when the cache is on
	lookups := make([]domain.FacetLookup, 0, len(facetStores))
	for _, store := range facetStores {
		lookups = append(lookups, service.NewCachedFacetLookup(store, cache, cfg.Cache.FacetTTL, log.Logger))
	}
	resolvers := service.NewResolverSet(lookups, log.Logger)

	// Create feed clients
	feeds := feed.NewFeeds(cfg.Feed, log.Logger)

	// Create services
	sampler := service.NewSampler(questionRepo, cfg.Search.ShuffleThreshold, log.Logger)
	searchSvc := service.NewSearchService(questionRepo, sampler, log.Logger)
	facetSvc := service.NewFacetService(facetStores, log.Logger)
	importSvc := service.NewImportService(questionRepo, facetStores, feeds, log.Logger)

	// Create distributed locker
	distLocker := locker.NewRedisLocker(redisClient, log.Logger)

	// Create validator
	v := validator.New()

	// Create HTTP server
	server := httpserver.NewServer(
		httpserver.ServerConfig{
			Port:      cfg.App.Port,
			BodyLimit: 1024 * 1024, // 1MB
			Debug:     cfg.App.Debug,
		},
		searchSvc,
		facetSvc,
		importSvc,
		resolvers,
		db,
		v,
		log.Logger,
	)

	// Start import scheduler with distributed locking
	scheduler := job.NewImportScheduler(
		importSvc,
		job.ImportConfig{
			Interval:  cfg.Import.Interval,
			Timeout:   cfg.Import.Timeout,
			OnStartup: cfg.Import.OnStartup,
		},
		log.Logger,
		distLocker,
	)
	scheduler.Start(cfg.Import.OnStartup)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutdown signal received")

		// Stop scheduler
		scheduler.Stop()

		// Shutdown server with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.App.ShutdownWithContext(ctx); err != nil {
			log.Error("server shutdown error", zap.Error(err))
		}
	}()

	// Start server
	if err := server.Start(cfg.App.Port); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
