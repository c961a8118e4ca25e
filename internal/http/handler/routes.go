package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"edcstudio/internal/auth"
	"edcstudio/internal/http/middleware"
	"edcstudio/internal/service"
)

// Pinger is the slice of *mongo.Client the health endpoint needs.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// Dependencies bundles everything the HTTP layer needs.
type Dependencies struct {
	Mongo Pinger

	Connectors service.ConnectorService
	Assets     service.AssetService
	Policies   service.PolicyService
	Contracts  service.ContractService
	Transfers  service.TransferService
	Users      service.UserService
	DataPond   service.DataPondService

	Tokens *auth.Manager
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	// Health endpoint: checks MongoDB connectivity only
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := deps.Mongo.Ping(ctx, readpref.Primary()); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	// Simple liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	registerConnectorRoutes(app.Group("/connectors"), deps.Connectors)
	registerAssetRoutes(app.Group("/assets"), deps.Assets)
	registerPolicyRoutes(app.Group("/policies"), deps.Policies)
	registerContractRoutes(app.Group("/contracts"), deps.Contracts)
	registerTransferRoutes(app.Group("/transfers"), deps.Transfers)
	registerAuthRoutes(app.Group("/auth"), deps.Users)

	authenticated := middleware.Authenticate(deps.Tokens, deps.Users)
	registerUserRoutes(app.Group("/users", authenticated, middleware.RequireAdmin()), deps.Users)
	registerDataPondRoutes(app.Group("/data-pond/files", authenticated), deps.DataPond)
}
