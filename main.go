package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"storefront/internal/clients"
	"storefront/internal/config"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/database"
	"storefront/pkg/logger"
	"storefront/pkg/metrics"
	"storefront/pkg/rabbitmq"
)

// DriverMemory keeps every entity in process memory.
const DriverMemory = "memory"

type stores struct {
	favourites repositories.FavouriteRepository
	products   repositories.ProductRepository
	categories repositories.CategoryRepository
	users      repositories.UserRepository
}

func openStores(cfg config.Config) (stores, func() error, error) {
	if cfg.DatabaseDriver == DriverMemory {
		return stores{
			favourites: repositories.NewMockFavouriteRepository(),
			products:   repositories.NewMockProductRepository(),
			categories: repositories.NewMockCategoryRepository(),
			users:      repositories.NewMockUserRepository(),
		}, func() error { return nil }, nil
	}

	db, err := database.Open(database.Config{Driver: cfg.DatabaseDriver, DSN: cfg.DatabaseDSN})
	if err != nil {
		return stores{}, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return stores{}, nil, err
	}
	return stores{
		favourites: repositories.NewGORMFavouriteRepository(db),
		products:   repositories.NewGORMProductRepository(db),
		categories: repositories.NewGORMCategoryRepository(db),
		users:      repositories.NewGORMUserRepository(db),
	}, sqlDB.Close, nil
}

// NewApp wires stores, services and handlers into a Fiber app. The returned
// cleanup releases the database and broker connections.
func NewApp(cfg config.Config) (*fiber.App, func() error, error) {
	st, closeStores, err := openStores(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := closeStores

	// Leave events nil unless a client exists; a typed nil would not compare equal to nil.
	var events services.EventPublisher
	if cfg.EventsEnabled() {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: cfg.EventsExchange})
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("RabbitMQ unavailable, domain events disabled")
		} else {
			events = mqClient
			cleanup = func() error { return multierr.Append(closeStores(), mqClient.Close()) }
		}
	}

	var enricher services.Enricher
	if cfg.EnrichmentEnabled() {
		client, err := clients.NewEnrichmentClient(cfg.UserServiceURL, cfg.ProductServiceURL,
			clients.WithTimeout(cfg.EnrichmentTimeout))
		if err != nil {
			return nil, nil, multierr.Append(err, cleanup())
		}
		enricher = client
	}

	favouriteService := services.NewFavouriteService(st.favourites, enricher, events)
	productService := services.NewProductService(st.products, events)
	categoryService := services.NewCategoryService(st.categories, events)
	userService := services.NewUserService(st.users, events)

	app := fiber.New(fiber.Config{
		AppName:      cfg.ServiceName,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(middleware.Metrics())

	api := app.Group("/api")
	handlers.NewFavouriteHandler(favouriteService).RegisterRoutes(api)
	handlers.NewProductHandler(productService).RegisterRoutes(api)
	handlers.NewCategoryHandler(categoryService).RegisterRoutes(api)
	handlers.NewUserHandler(userService).RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "UP"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	return app, cleanup, nil
}

func main() {
	cfg := config.Load(viper.GetViper())

	logger.Init(logger.Options{
		ServiceName: cfg.ServiceName,
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})

	app, cleanup, err := NewApp(cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to initialize application")
	}

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Logger.Info().Str("port", cfg.AppPort).Msg("starting server")
		if err := app.Listen(cfg.AppPort); err != nil {
			logger.Logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	logger.Logger.Info().Msg("shutting down server")

	if err := app.Shutdown(); err != nil {
		logger.Logger.Error().Err(err).Msg("error during Fiber shutdown")
	}
	if err := cleanup(); err != nil {
		logger.Logger.Error().Err(err).Msg("error releasing resources")
	}
	logger.Logger.Info().Msg("server gracefully stopped")
}
