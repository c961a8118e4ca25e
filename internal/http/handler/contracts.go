package handler

import (
	"github.com/gofiber/fiber/v2"

	"edcstudio/internal/model"
	"edcstudio/internal/service"
)

func registerContractRoutes(r fiber.Router, svc service.ContractService) {
	r.Post("", func(c *fiber.Ctx) error {
		var ct model.Contract
		if err := c.BodyParser(&ct); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if !validObjectID(ct.EDC) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := svc.Create(c.UserContext(), &ct)
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

		contracts, err := svc.ListByEDC(c.UserContext(), edcID)
		if err != nil {
			return writeProxyError(c, err)
		}
		return c.JSON(contracts)
	})

	r.Get("/by-contract-id/:edcId/:contractId", func(c *fiber.Ctx) error {
		edcID := c.Params("edcId")
		if !validObjectID(edcID) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		ct, err := svc.Get(c.UserContext(), edcID, c.Params("contractId"))
		if err != nil {
			return writeProxyError(c, err)
		}
		return c.JSON(ct)
	})

	r.Put("/:edcId", func(c *fiber.Ctx) error {
		edcID := c.Params("edcId")
		if !validObjectID(edcID) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var ct model.Contract
		if err := c.BodyParser(&ct); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		if err := svc.Update(c.UserContext(), edcID, &ct); err != nil {
			return writeProxyError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true})
	})

	r.Delete("/:contractId/:edcId", func(c *fiber.Ctx) error {
		edcID := c.Params("edcId")
		if !validObjectID(edcID) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := svc.Delete(c.UserContext(), edcID, c.Params("contractId")); err != nil {
			return writeProxyError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true})
	})
}
