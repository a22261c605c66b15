package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fibercors "github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/cocoatrail/festival-api/config"
	_ "github.com/cocoatrail/festival-api/docs"
	cataloghttp "github.com/cocoatrail/festival-api/internal/catalog/delivery/http"
	catalogrepo "github.com/cocoatrail/festival-api/internal/catalog/repository"
	"github.com/cocoatrail/festival-api/internal/device"
	favouriteshttp "github.com/cocoatrail/festival-api/internal/favourites/delivery/http"
	favouritesdomain "github.com/cocoatrail/festival-api/internal/favourites/domain"
	favouritesrepo "github.com/cocoatrail/festival-api/internal/favourites/repository"
	"github.com/cocoatrail/festival-api/internal/favourites/usecase/command"
	favouritesquery "github.com/cocoatrail/festival-api/internal/favourites/usecase/query"
	"github.com/cocoatrail/festival-api/internal/geo"
	"github.com/cocoatrail/festival-api/internal/middleware"
	"github.com/cocoatrail/festival-api/kafka"
	"github.com/cocoatrail/festival-api/pkg/logger"
	"github.com/cocoatrail/festival-api/pkg/tracing"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	tp, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to initialize tracing, continuing without")
	}

	catalog, err := catalogrepo.Load(cfg.FlavoursPath, cfg.LocationsPath)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to load catalog")
	}

	// Redis backs both the favourites store and the response cache. When it is
	// unreachable the service still starts, with in-memory favourites and no
	// cache.
	redisClient := connectRedis(cfg)

	var backend favouritesdomain.FavouritesRepository
	if redisClient != nil {
		backend = favouritesrepo.NewRedisFavouritesRepository(redisClient)
	} else {
		logger.Logger.Warn().Msg("Redis unavailable, favourites are in-memory only")
		backend = favouritesrepo.NewMemoryFavouritesRepository()
	}
	favourites := favouritesrepo.NewCachedFavouritesRepository(
		favouritesrepo.NewTracingFavouritesRepository(backend),
	)

	var publisher command.TogglePublisher
	kafkaPublisher, err := kafka.NewPublisher(cfg.KafkaBrokers)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka unavailable, toggle events disabled")
	} else {
		publisher = kafkaPublisher
		defer kafkaPublisher.Close()
	}

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	consumer := startToggleConsumer(consumerCtx, cfg)
	if consumer != nil {
		defer consumer.Close()
	}

	tokens := device.NewTokenManager(cfg.JWTSecret, cfg.TokenExpiry)

	getState := favouritesquery.NewGetStateHandler(favourites)
	catalogHandler := cataloghttp.NewCatalogHandler(catalog, getState, geo.Coordinate{
		Latitude:  cfg.DefaultLatitude,
		Longitude: cfg.DefaultLongitude,
	})
	favouritesHandler := favouriteshttp.NewFavouritesHandler(
		command.NewToggleFavouriteHandler(favourites, publisher),
		command.NewToggleTastedHandler(favourites, publisher),
		getState,
		tokens,
	)

	app := fiber.New(fiber.Config{
		AppName:               "Festival Catalog API",
		DisableStartupMessage: !cfg.IsDevelopment(),
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.Tracing(cfg.ServiceName))
	app.Use(middleware.RequestLogging())
	app.Use(fibercors.New(fibercors.Config{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(compress.New())
	app.Use(middleware.Cache(redisClient, cfg.CacheTTL))

	catalogHandler.RegisterRoutes(app, tokens)
	favouritesHandler.RegisterRoutes(app)

	adminServer := newAdminServer(cfg)

	go func() {
		logger.Logger.Info().Str("port", cfg.Port).Msg("Festival API listening")
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Logger.Fatal().Err(err).Msg("API server failed")
		}
	}()

	go func() {
		logger.Logger.Info().Str("port", cfg.AdminPort).Msg("Admin server listening")
		if err := adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Admin server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to shut down API server")
	}
	if err := adminServer.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to shut down admin server")
	}
	if tp != nil {
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}

	logger.Logger.Info().Msg("Shutdown complete")
}

// connectRedis pings redis once with a short deadline and returns nil when it
// is unreachable.
func connectRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis ping failed")
		_ = client.Close()
		return nil
	}

	logger.Logger.Info().Str("addr", cfg.RedisAddr).Msg("Connected to Redis")
	return client
}

// startToggleConsumer subscribes to the toggle topic and counts events, giving
// the metrics endpoint a view of favourite activity across all instances.
func startToggleConsumer(ctx context.Context, cfg *config.Config) *kafka.Consumer {
	toggleCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "festival_favourite_toggles_total",
			Help: "Total number of favourite toggle events consumed",
		},
		[]string{"marker", "marked"},
	)
	prometheus.MustRegister(toggleCounter)

	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, "festival-api", func(ctx context.Context, event kafka.FavouriteToggledEvent) error {
		marked := "off"
		if event.Marked {
			marked = "on"
		}
		toggleCounter.WithLabelValues(event.Marker, marked).Inc()

		logger.Info(ctx).
			Str("device_id", event.DeviceID).
			Int("flavour_id", event.FlavourID).
			Str("marker", event.Marker).
			Bool("marked", event.Marked).
			Msg("Toggle event consumed")
		return nil
	})
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka consumer unavailable, toggle metrics disabled")
		return nil
	}

	consumer.Start(ctx)
	return consumer
}

// newAdminServer serves metrics, health and the Swagger UI on a separate port
// so the public API surface stays minimal.
func newAdminServer(cfg *config.Config) *http.Server {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy","service":"` + cfg.ServiceName + `"}`))
	}).Methods(http.MethodGet)

	cataloghttp.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}).Handler(router)

	return &http.Server{
		Addr:         ":" + cfg.AdminPort,
		Handler:      otelhttp.NewHandler(handler, "admin"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(cataloghttp.Response{
		Success: false,
		Error:   err.Error(),
	})
}
