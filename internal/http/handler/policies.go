package handler

import (
	"github.com/gofiber/fiber/v2"

	"edcstudio/internal/model"
	"edcstudio/internal/service"
)

func registerPolicyRoutes(r fiber.Router, svc service.PolicyService) {
	r.Post("", func(c *fiber.Ctx) error {
		var p model.Policy
		if err := c.BodyParser(&p); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if !validObjectID(p.EDC) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := svc.Create(c.UserContext(), &p)
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

		policies, err := svc.ListByEDC(c.UserContext(), edcID)
		if err != nil {
			return writeProxyError(c, err)
		}
		return c.JSON(policies)
	})

	r.Get("/by-policy-id/:edcId/:policyId", func(c *fiber.Ctx) error {
		edcID := c.Params("edcId")
		if !validObjectID(edcID) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		p, err := svc.Get(c.UserContext(), edcID, c.Params("policyId"))
		if err != nil {
			return writeProxyError(c, err)
		}
		return c.JSON(p)
	})

	r.Delete("/:policyId/:edcId", func(c *fiber.Ctx) error {
		edcID := c.Params("edcId")
		if !validObjectID(edcID) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := svc.Delete(c.UserContext(), edcID, c.Params("policyId")); err != nil {
			return writeProxyError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true})
	})
}
