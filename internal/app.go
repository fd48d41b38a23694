package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	logger_adapter "github.com/Abhishek10293/PropertyManagement/internal/adapters/logger"
	"github.com/Abhishek10293/PropertyManagement/internal/adapters/memory"
	mongodb_adapter "github.com/Abhishek10293/PropertyManagement/internal/adapters/mongodb"
	postgres_adapter "github.com/Abhishek10293/PropertyManagement/internal/adapters/postgres"
	rabbitmq_adapter "github.com/Abhishek10293/PropertyManagement/internal/adapters/rabbitmq"
	redis_adapter "github.com/Abhishek10293/PropertyManagement/internal/adapters/redis"
	"github.com/Abhishek10293/PropertyManagement/internal/adapters/rest"
	"github.com/Abhishek10293/PropertyManagement/internal/configs"
	"github.com/Abhishek10293/PropertyManagement/internal/constants"
	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
	"github.com/Abhishek10293/PropertyManagement/internal/core/usecase"
	fluentlogger "github.com/Abhishek10293/PropertyManagement/pkg/fluent_logger"
	"github.com/Abhishek10293/PropertyManagement/pkg/mongodb"
	"github.com/Abhishek10293/PropertyManagement/pkg/postgres"
	"github.com/Abhishek10293/PropertyManagement/pkg/rabbitmq/rabbitmq_common"
	"github.com/Abhishek10293/PropertyManagement/pkg/rabbitmq/rabbitmq_producer"
	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/redis/go-redis/v9"
)

type App struct {
	config    *configs.AppConfig
	storage   port.PropertyStoragePort
	cache     port.PropertyCachePort
	events    port.PropertyEventsPort
	rmqConn   *rabbitmq_common.ConnectionManager
	apiServer *rest.Server

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ЛОГГЕРЫ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   appConfig.StdoutLogger.IsJSON,
		UseColor: !appConfig.StdoutLogger.IsJSON,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	application := &App{
		config:       appConfig,
		fluentClient: fluentClient,
		logger:       appLogger,
		cache:        port.NoopCache{},
		events:       port.NoopEvents{},
	}

	// --- 2. ХРАНИЛИЩЕ, КЭШ, БРОКЕР ---
	// при ошибке закрываем все, что успели открыть
	ctx := context.Background()
	if application.storage, err = newStorage(ctx, appConfig, appLogger); err != nil {
		application.closeResources()
		return nil, err
	}

	if appConfig.Redis.Enabled {
		if application.cache, err = newCache(ctx, appConfig); err != nil {
			appLogger.Error("Failed to initialize Redis cache", err, nil)
			application.closeResources()
			return nil, err
		}
		appLogger.Info("Redis list cache enabled", port.Fields{"addr": appConfig.Redis.Addr, "ttl": appConfig.Redis.TTL.String()})
	}

	if appConfig.RabbitMQ.Enabled {
		if err := application.initEvents(baseLogger); err != nil {
			appLogger.Error("Failed to initialize RabbitMQ publisher", err, nil)
			application.closeResources()
			return nil, err
		}
		appLogger.Info("Property events publishing enabled", port.Fields{"exchange": appConfig.RabbitMQ.Exchange})
	}

	// --- 3. USE CASES ---
	listUC := usecase.NewListPropertiesUseCase(application.storage, application.cache)
	getUC := usecase.NewGetPropertyUseCase(application.storage)
	createUC := usecase.NewCreatePropertyUseCase(application.storage, application.cache, application.events)
	updateUC := usecase.NewUpdatePropertyUseCase(application.storage, application.cache, application.events)
	deleteUC := usecase.NewDeletePropertyUseCase(application.storage, application.cache, application.events)

	// --- 4. REST ---
	handlers := rest.NewPropertyHandler(listUC, getUC, createUC, updateUC, deleteUC)
	application.apiServer = rest.NewServer(rest.ServerConfig{
		Port:               appConfig.Rest.PORT,
		CORSAllowedOrigins: appConfig.Rest.CORSAllowedOrigins,
		MetricsEnabled:     appConfig.Rest.MetricsEnabled,
	}, handlers, application.storage, baseLogger)
	appLogger.Info("REST API server configured", nil)

	return application, nil
}

func newStorage(ctx context.Context, cfg *configs.AppConfig, logger port.LoggerPort) (port.PropertyStoragePort, error) {
	switch cfg.Store.Driver {
	case configs.StoreDriverMongo:
		client, db, err := mongodb.NewClient(ctx, mongodb.Config{
			URI:            cfg.Mongo.URI,
			Database:       cfg.Mongo.Database,
			ConnectTimeout: cfg.Mongo.ConnectTimeout,
			AppName:        cfg.AppName,
		})
		if err != nil {
			logger.Error("Failed to connect to MongoDB", err, nil)
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		adapter, err := mongodb_adapter.NewMongoPropertyStorageAdapter(client, db.Collection(cfg.Mongo.PropertyCollection))
		if err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		if err := adapter.EnsureIndexes(ctx); err != nil {
			logger.Warn("Failed to ensure MongoDB indexes", port.Fields{"error": err.Error()})
		}
		logger.Info("Successfully connected to MongoDB", port.Fields{"database": cfg.Mongo.Database})
		return adapter, nil

	case configs.StoreDriverPostgres:
		pool, err := postgres.NewClient(ctx, postgres.Config{
			URL:             cfg.Database.URL,
			ApplicationName: cfg.AppName,
			MaxConns:        cfg.Database.MaxConns,
			ConnectTimeout:  cfg.Database.ConnectTimeout,
		})
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL", err, nil)
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		adapter, err := postgres_adapter.NewPostgresPropertyStorageAdapter(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		if err := adapter.EnsureSchema(ctx); err != nil {
			pool.Close()
			logger.Error("Failed to prepare PostgreSQL schema", err, nil)
			return nil, err
		}
		logger.Info("Successfully connected to PostgreSQL pool", nil)
		return adapter, nil

	case configs.StoreDriverMemory:
		logger.Warn("Using in-memory storage, data will be lost on restart", nil)
		return memory.NewPropertyStorageAdapter(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

func newCache(ctx context.Context, cfg *configs.AppConfig) (port.PropertyCachePort, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("unable to ping redis at %s: %w", cfg.Redis.Addr, err)
	}
	cache, err := redis_adapter.NewRedisPropertyCacheAdapter(client, cfg.Redis.TTL)
	if err != nil {
		client.Close()
		return nil, err
	}
	return cache, nil
}

func (a *App) initEvents(baseLogger port.LoggerPort) error {
	pkgLogger := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))

	connManager, err := rabbitmq_common.NewConnectionManager(rabbitmq_common.Config{URL: a.config.RabbitMQ.URL}, pkgLogger)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	a.rmqConn = connManager

	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		ExchangeName:             a.config.RabbitMQ.Exchange,
		ExchangeType:             constants.ExchangeTypeTopic,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   pkgLogger,
	}, connManager)
	if err != nil {
		return fmt.Errorf("failed to create publisher: %w", err)
	}

	events, err := rabbitmq_adapter.NewRabbitMQPropertyEventsAdapter(producer)
	if err != nil {
		producer.Close()
		return err
	}
	a.events = events
	return nil
}

// Run запускает HTTP-сервер и ждет сигнала завершения
func (a *App) Run() error {
	defer a.shutdown()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-serverErrors:
		a.logger.Error("Server failed, shutting down", err, nil)
		return err
	}
}

func (a *App) shutdown() {
	a.logger.Info("Shutdown sequence initiated...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Rest.ShutdownTimeout)
	defer cancel()

	if a.apiServer != nil {
		if err := a.apiServer.Stop(ctx); err != nil {
			a.logger.Error("Error during API server shutdown", err, nil)
		}
	}

	a.closeResources()
	a.logger.Info("Application shut down gracefully.", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent уже может быть недоступен
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
}

// closeResources закрывает брокер, кэш и хранилище в обратном порядке создания
func (a *App) closeResources() {
	if a.events != nil {
		if err := a.events.Close(); err != nil {
			a.logger.Error("Error closing events publisher", err, nil)
		}
	}
	if a.rmqConn != nil {
		if err := a.rmqConn.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("Error closing cache", err, nil)
		}
	}
	if a.storage != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.config.Rest.ShutdownTimeout)
		defer cancel()
		if err := a.storage.Close(ctx); err != nil {
			a.logger.Error("Error closing storage", err, nil)
		} else {
			a.logger.Info("Storage closed", nil)
		}
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
