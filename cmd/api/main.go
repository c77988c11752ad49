package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"landapi/docs"
	"landapi/internal/config"
	"landapi/internal/database"
	"landapi/internal/database/migration"
	handlers "landapi/internal/http/handler"
	"landapi/internal/http/middleware"
	"landapi/internal/logger"
	"landapi/internal/otel"
	"landapi/internal/pinning"
	"landapi/internal/repository/mongodb"
	"landapi/internal/service"
)

// @title Land Registry API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}

	os.Exit(serve(cfg, log))
}

// serve runs the server and returns the process exit code once every
// deferred shutdown step and the log flush have run.
func serve(cfg *config.AppConfig, log *zap.Logger) int {
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", zap.Error(err))
		return 1
	}
	return 0
}

func run(cfg *config.AppConfig, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdownTracing(context.Background())

	client, err := database.NewMongo(cfg.Mongo)
	if err != nil {
		return fmt.Errorf("connect to mongo: %w", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.Mongo.Database)
	if err := migration.EnsureMigrated(ctx, db, cfg.Mongo.Collection, log); err != nil {
		return err
	}

	pinner, err := newPinner(cfg.Pinning)
	if err != nil {
		return fmt.Errorf("init pinning: %w", err)
	}

	// Repository and service get their dependencies injected once here
	landRepo := mongodb.NewLandMongo(db.Collection(cfg.Mongo.Collection))
	landSvc := service.NewLandService(pinner, landRepo, log.Named("service"))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
	})

	// RequestID must run first so every later middleware sees the id
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log.Named("http")))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, database.MongoPinger{Client: client}, landSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("server_starting", zap.String("port", cfg.Port), zap.String("pinning_provider", cfg.Pinning.Provider))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("server_stopping")
	return app.ShutdownWithTimeout(10 * time.Second)
}

func newPinner(cfg config.PinningConfig) (pinning.Pinner, error) {
	switch cfg.Provider {
	case config.ProviderPinata:
		return pinning.NewPinata(cfg.Pinata, nil)
	case config.ProviderFilebase:
		return pinning.NewFilebase(cfg.Filebase)
	default:
		return nil, fmt.Errorf("unknown pinning provider %q", cfg.Provider)
	}
}
