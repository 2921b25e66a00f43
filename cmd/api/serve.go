package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/catalog-service/internal/api/http"
	"github.com/spec-kit/catalog-service/internal/api/http/handlers"
	"github.com/spec-kit/catalog-service/internal/cache"
	"github.com/spec-kit/catalog-service/internal/config"
	"github.com/spec-kit/catalog-service/internal/events"
	"github.com/spec-kit/catalog-service/internal/observability"
	"github.com/spec-kit/catalog-service/internal/persistence"
	"github.com/spec-kit/catalog-service/internal/repository"
	"github.com/spec-kit/catalog-service/internal/service"
	"github.com/spec-kit/catalog-service/internal/worker"
)

func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return cfg, logger, nil
}

func runServe() error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		return fmt.Errorf("failed to connect postgres: %w", err)
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(pg.DB().DB, logger); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	msgCache := cache.NewNoopMessageCache()
	var redisProbe handlers.Pinger
	if cfg.Cache.Enabled {
		redis := persistence.NewRedis(ctx, cfg.Redis, logger)
		defer redis.Close()
		msgCache = cache.NewRedisMessageCache(redis.Client, cfg.Cache.TTL(), logger)
		redisProbe = redis
	}

	dispatcher := events.NewInMemoryDispatcher()
	stopNotifications := worker.StartNotificationWorker(dispatcher, cfg.Events, logger)
	defer stopNotifications()

	db := pg.DB()
	authorRepo := repository.NewAuthorRepository(db)
	auditor := service.NewAnonymousAuditor()

	metrics := observability.NewMetrics()
	app := httptransport.NewApp(cfg.App.Name)
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redisProbe, metrics),
		Messages: handlers.NewMessagesHandler(service.NewMessageService(service.MessageDependencies{
			MessageRepo: repository.NewMessageRepository(db),
			Cache:       msgCache,
			Auditor:     auditor,
			Dispatcher:  dispatcher,
			Logger:      logger,
		})),
		Authors: handlers.NewAuthorsHandler(service.NewAuthorService(service.AuthorDependencies{
			AuthorRepo: authorRepo,
			Auditor:    auditor,
			Dispatcher: dispatcher,
			Logger:     logger,
		})),
		Books: handlers.NewBooksHandler(service.NewBookService(service.BookDependencies{
			BookRepo:   repository.NewBookRepository(db),
			AuthorRepo: authorRepo,
			Auditor:    auditor,
			Dispatcher: dispatcher,
			Logger:     logger,
		})),
		Users: handlers.NewUsersHandler(service.NewUserService(service.UserDependencies{
			UserRepo:   repository.NewUserRepository(db),
			Dispatcher: dispatcher,
			Logger:     logger,
		})),
	})

	logger.Info("catalog service started",
		zap.String("addr", cfg.App.Addr()),
		zap.String("env", cfg.App.Env),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("event_forwarding", cfg.Events.NATSURL != ""))

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.App.Addr())
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("fiber listen: %w", err)
	case sig := <-waitForShutdown():
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	return app.Shutdown()
}

func waitForShutdown() <-chan os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	return sigCh
}
