package handler

import (
	"github.com/gofiber/fiber/v2"

	"edcstudio/internal/model"
	"edcstudio/internal/service"
)

func registerAssetRoutes(r fiber.Router, svc service.AssetService) {
	r.Post("", func(c *fiber.Ctx) error {
		var a model.Asset
		if err := c.BodyParser(&a); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if !validObjectID(a.EDC) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := svc.Create(c.UserContext(), &a)
		if err != nil {
			return writeProxyError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	})

	r.Get("/by-edc/:edcId", func(c *fiber.Ctx) error {
		edcID := c.Params("edcId")
		if !validObjectID(edcID) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		assets, err := svc.ListByEDC(c.UserContext(), edcID)
		if err != nil {
			return writeProxyError(c, err)
		}
		return c.JSON(assets)
	})

	r.Get("/by-asset-id/:edcId/:assetId", func(c *fiber.Ctx) error {
		edcID := c.Params("edcId")
		if !validObjectID(edcID) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		a, err := svc.Get(c.UserContext(), edcID, c.Params("assetId"))
		if err != nil {
			return writeProxyError(c, err)
		}
		return c.JSON(a)
	})

	r.Put("/:edcId", func(c *fiber.Ctx) error {
		edcID := c.Params("edcId")
		if !validObjectID(edcID) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var a model.Asset
		if err := c.BodyParser(&a); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		if err := svc.Update(c.UserContext(), edcID, &a); err != nil {
			return writeProxyError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true})
	})

	r.Delete("/:assetId/:edcId", func(c *fiber.Ctx) error {
		edcID := c.Params("edcId")
		if !validObjectID(edcID) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := svc.Delete(c.UserContext(), edcID, c.Params("assetId")); err != nil {
			return writeProxyError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true})
	})
}
