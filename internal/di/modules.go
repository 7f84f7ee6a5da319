package di

import (
	"context"
	"errors"
	"fmt"

	"fintrack/config"
	"fintrack/internal/apis/handlers"
	"fintrack/internal/apis/middlewares"
	"fintrack/internal/constants"
	"fintrack/internal/repositories"
	"fintrack/internal/services"
	"fintrack/internal/utils"
	"fintrack/pkg/mongodb"
	"fintrack/pkg/redis"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"
	"go.uber.org/zap"
)

var DiContainer *dig.Container

// closers release external connections on shutdown, in reverse order.
var closers []func(ctx context.Context) error

type documentHandlers struct {
	dig.In

	Categories   *handlers.DocumentHandler `name:"categories"`
	Transactions *handlers.DocumentHandler `name:"transactions"`
}

// Initialize connects to the stores and registers every component. A MongoDB
// failure is returned wrapped in mongodb.ErrConnectionFailed.
func Initialize(logger *zap.Logger) error {
	DiContainer = dig.New()
	closers = nil

	// Initialize MongoDB
	dbConfig := mongodb.MongoDbConfigModel{
		ConnectionUrl:  config.Env.MongoURI,
		DatabaseName:   config.Env.MongoDatabaseName,
		ConnectTimeout: config.Env.MongoConnectTimeout,
		Transactions:   config.Env.MongoTransactions,
	}
	mongodbClient, err := mongodb.InitializeDatabaseConnection(dbConfig, logger)
	if err != nil {
		return err
	}
	closers = append(closers, mongodbClient.Disconnect)

	// Redis only backs the init lock, fall back to an in-process lock without it
	var locker services.Locker = utils.NewLocalLocker()
	if config.Env.RedisEnabled() {
		redisClient, err := redis.RedisClient(config.Env.RedisHost, config.Env.RedisPort, config.Env.RedisUsername, config.Env.RedisPassword, logger)
		if err != nil {
			return err
		}
		closers = append(closers, func(context.Context) error { return redisClient.Close() })
		locker = redis.NewLocker(redisClient, config.Env.InitLockTTL)
	} else {
		logger.Info("Redis not configured, using in-process init lock")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Provide all dependencies to the container
	if err := DiContainer.Provide(func() *zap.Logger { return logger }); err != nil {
		return fmt.Errorf("failed to provide logger: %w", err)
	}

	if err := DiContainer.Provide(func() *mongodb.MongoDBClient { return mongodbClient }); err != nil {
		return fmt.Errorf("failed to provide MongoDB client: %w", err)
	}

	if err := DiContainer.Provide(func() services.Locker { return locker }); err != nil {
		return fmt.Errorf("failed to provide init lock: %w", err)
	}

	if err := DiContainer.Provide(func() *prometheus.Registry { return registry }); err != nil {
		return fmt.Errorf("failed to provide metrics registry: %w", err)
	}

	if err := DiContainer.Provide(func(reg *prometheus.Registry) (*middlewares.Metrics, error) {
		return middlewares.NewMetrics(reg)
	}); err != nil {
		return fmt.Errorf("failed to provide metrics: %w", err)
	}

	// Provide repositories
	if err := DiContainer.Provide(func(db *mongodb.MongoDBClient) repositories.UserRepository {
		return repositories.NewUserRepository(db)
	}); err != nil {
		return fmt.Errorf("failed to provide user repository: %w", err)
	}

	// Provide services
	if err := DiContainer.Provide(func(userRepo repositories.UserRepository, logger *zap.Logger) services.UserService {
		return services.NewUserService(userRepo, logger)
	}); err != nil {
		return fmt.Errorf("failed to provide user service: %w", err)
	}

	if err := DiContainer.Provide(func(db *mongodb.MongoDBClient, userRepo repositories.UserRepository, locker services.Locker, logger *zap.Logger) services.DatabaseService {
		admin := services.AdminCredentials{
			Username: config.Env.DefaultAdminUsername,
			Password: config.Env.DefaultAdminPassword,
		}
		return services.NewDatabaseService(db, userRepo, locker, admin, logger)
	}); err != nil {
		return fmt.Errorf("failed to provide database service: %w", err)
	}

	// Provide handlers
	if err := DiContainer.Provide(func(databaseService services.DatabaseService) *handlers.DatabaseHandler {
		return handlers.NewDatabaseHandler(databaseService)
	}); err != nil {
		return fmt.Errorf("failed to provide database handler: %w", err)
	}

	if err := DiContainer.Provide(func(userService services.UserService) *handlers.UserHandler {
		return handlers.NewUserHandler(userService)
	}); err != nil {
		return fmt.Errorf("failed to provide user handler: %w", err)
	}

	// Categories and transactions share one implementation, told apart by name
	for _, name := range []string{constants.CollectionCategories, constants.CollectionTransactions} {
		collection := name
		if err := DiContainer.Provide(func(db *mongodb.MongoDBClient, logger *zap.Logger) *handlers.DocumentHandler {
			repo := repositories.NewDocumentRepository(db, collection)
			return handlers.NewDocumentHandler(services.NewDocumentService(repo, collection, logger))
		}, dig.Name(collection)); err != nil {
			return fmt.Errorf("failed to provide %s handler: %w", collection, err)
		}
	}

	return nil
}

// Shutdown closes every external connection opened by Initialize.
func Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	closers = nil
	return errors.Join(errs...)
}

// GetDatabaseHandler retrieves the DatabaseHandler from the DI container
func GetDatabaseHandler() (*handlers.DatabaseHandler, error) {
	var handler *handlers.DatabaseHandler
	err := DiContainer.Invoke(func(h *handlers.DatabaseHandler) {
		handler = h
	})
	if err != nil {
		return nil, err
	}
	return handler, nil
}

// GetUserHandler retrieves the UserHandler from the DI container
func GetUserHandler() (*handlers.UserHandler, error) {
	var handler *handlers.UserHandler
	err := DiContainer.Invoke(func(h *handlers.UserHandler) {
		handler = h
	})
	return handler, err
}

// GetDocumentHandlers returns the categories and transactions handlers.
func GetDocumentHandlers() (categories, transactions *handlers.DocumentHandler, err error) {
	err = DiContainer.Invoke(func(h documentHandlers) {
		categories = h.Categories
		transactions = h.Transactions
	})
	return categories, transactions, err
}

func GetMetrics() (*middlewares.Metrics, error) {
	var metrics *middlewares.Metrics
	err := DiContainer.Invoke(func(m *middlewares.Metrics) {
		metrics = m
	})
	return metrics, err
}

func GetMetricsRegistry() (*prometheus.Registry, error) {
	var registry *prometheus.Registry
	err := DiContainer.Invoke(func(r *prometheus.Registry) {
		registry = r
	})
	return registry, err
}
