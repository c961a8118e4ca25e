package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"edcstudio/internal/model"
	"edcstudio/internal/service"
)

// validObjectID reports whether id is a well-formed MongoDB ObjectID hex.
func validObjectID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

func registerConnectorRoutes(r fiber.Router, svc service.ConnectorService) {
	r.Post("", func(c *fiber.Ctx) error {
		var conn model.Connector
		if err := c.BodyParser(&conn); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		id, err := svc.Create(c.UserContext(), &conn)
		if err != nil {
			return writeInternalError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	})

	r.Get("", func(c *fiber.Ctx) error {
		conns, err := svc.List(c.UserContext())
		if err != nil {
			return writeInternalError(c, err)
		}
		return c.JSON(conns)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validObjectID(id) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		conn, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeInternalError(c, err)
		}
		return c.JSON(conn)
	})

	r.Put("/:id", func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validObjectID(id) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var fields map[string]any
		if err := c.BodyParser(&fields); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		if err := svc.Update(c.UserContext(), id, fields); err != nil {
			return writeInternalError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true})
	})

	r.Delete("/:id", func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validObjectID(id) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeInternalError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true})
	})

	r.Post("/:id/start", func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validObjectID(id) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := svc.Start(c.UserContext(), id); err != nil {
			return writeInternalError(c, err)
		}
		return c.JSON(fiber.Map{"state": model.ConnectorStateRunning})
	})

	r.Post("/:id/stop", func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validObjectID(id) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := svc.Stop(c.UserContext(), id); err != nil {
			return writeInternalError(c, err)
		}
		return c.JSON(fiber.Map{"state": model.ConnectorStateStopped})
	})
}
