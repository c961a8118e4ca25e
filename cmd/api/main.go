package main

import (
	"context"
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"edcstudio/docs"
	"edcstudio/internal/auth"
	"edcstudio/internal/config"
	"edcstudio/internal/database"
	"edcstudio/internal/edc"
	handlers "edcstudio/internal/http/handler"
	"edcstudio/internal/http/middleware"
	"edcstudio/internal/launcher"
	"edcstudio/internal/logging"
	"edcstudio/internal/otel"
	"edcstudio/internal/repository/mongodb"
	"edcstudio/internal/service"
	"edcstudio/internal/storage"
)

// @title EDC Studio Backend
// @version 1.0
// @BasePath /
func main() {
	logging.Init(logrus.InfoLevel)
	log := logging.Get()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize tracing")
	}
	defer shutdownTracing(context.Background())

	// MongoDB metadata store
	mongoClient, db, err := database.NewMongo(ctx, cfg.Mongo)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to mongodb")
	}
	defer mongoClient.Disconnect(context.Background())

	// Object storage for the data pond
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize object storage")
	}

	// Repositories
	connectorRepo := mongodb.NewConnectorMongo(db)
	transferRepo := mongodb.NewTransferMongo(db)
	userRepo := mongodb.NewUserMongo(db)
	pondRepo := mongodb.NewPondFileMongo(db)

	// EDC management API client and docker launcher
	edcClient := edc.NewClient(cfg.Docker.DeployType)
	runner := launcher.New(cfg.Docker, cfg.Postgres)

	tokens := auth.NewManager(cfg.Auth)

	// Services
	connectorSvc := service.NewConnectorService(connectorRepo, runner)
	assetSvc := service.NewAssetService(connectorRepo, edcClient)
	policySvc := service.NewPolicyService(connectorRepo, edcClient)
	contractSvc := service.NewContractService(connectorRepo, edcClient)
	transferSvc := service.NewTransferService(connectorRepo, transferRepo, edcClient, runner, cfg.Docker.DeployType, cfg.Docker.LoggerPort)
	userSvc := service.NewUserService(userRepo, tokens)
	pondSvc := service.NewDataPondService(objStore, pondRepo, userRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.WithError(err).Fatal("failed to register metrics")
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, handlers.Dependencies{
		Mongo:      mongoClient,
		Connectors: connectorSvc,
		Assets:     assetSvc,
		Policies:   policySvc,
		Contracts:  contractSvc,
		Transfers:  transferSvc,
		Users:      userSvc,
		DataPond:   pondSvc,
		Tokens:     tokens,
	})

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

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
