package handler

import (
	"github.com/gofiber/fiber/v2"

	"edcstudio/internal/model"
	"edcstudio/internal/service"
)

type connectorPairRequest struct {
	Consumer string `json:"consumer"`
	Provider string `json:"provider"`
}

type negotiateContractRequest struct {
	Consumer        string `json:"consumer"`
	Provider        string `json:"provider"`
	ContractOfferID string `json:"contract_offer_id"`
	Asset           string `json:"asset"`
}

type contractAgreementRequest struct {
	Consumer              string `json:"consumer"`
	IDContractNegotiation string `json:"id_contract_negotiation"`
}

type startTransferRequest struct {
	Consumer            string `json:"consumer"`
	Provider            string `json:"provider"`
	ContractAgreementID string `json:"contract_agreement_id"`
}

type checkTransferRequest struct {
	Consumer          string `json:"consumer"`
	TransferProcessID string `json:"transfer_process_id"`
}

func registerTransferRoutes(r fiber.Router, svc service.TransferService) {
	r.Post("/catalog_request", func(c *fiber.Ctx) error {
		var req connectorPairRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if !validObjectID(req.Consumer) || !validObjectID(req.Provider) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		catalog, err := svc.CatalogRequest(c.UserContext(), req.Consumer, req.Provider)
		if err != nil {
			return writeProxyError(c, err)
		}
		return c.JSON(catalog)
	})

	r.Post("/negotiate_contract", func(c *fiber.Ctx) error {
		var req negotiateContractRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if !validObjectID(req.Consumer) || !validObjectID(req.Provider) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := svc.NegotiateContract(c.UserContext(), req.Consumer, req.Provider, req.ContractOfferID, req.Asset)
		if err != nil {
			return writeProxyError(c, err)
		}
		return c.JSON(res)
	})

	r.Post("/contract_agreement", func(c *fiber.Ctx) error {
		var req contractAgreementRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if !validObjectID(req.Consumer) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := svc.ContractAgreement(c.UserContext(), req.Consumer, req.IDContractNegotiation)
		if err != nil {
			return writeProxyError(c, err)
		}
		return c.JSON(res)
	})

	r.Post("/start_transfer", func(c *fiber.Ctx) error {
		var req startTransferRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if !validObjectID(req.Consumer) || !validObjectID(req.Provider) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := svc.StartTransfer(c.UserContext(), req.Consumer, req.Provider, req.ContractAgreementID)
		if err != nil {
			return writeProxyError(c, err)
		}
		return c.JSON(res)
	})

	r.Post("/start_transfer_pull", func(c *fiber.Ctx) error {
		var req startTransferRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if !validObjectID(req.Consumer) || !validObjectID(req.Provider) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := svc.StartTransferPull(c.UserContext(), req.Consumer, req.Provider, req.ContractAgreementID)
		if err != nil {
			return writeProxyError(c, err)
		}
		return c.JSON(res)
	})

	r.Post("/check_transfer", func(c *fiber.Ctx) error {
		var req checkTransferRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if !validObjectID(req.Consumer) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := svc.CheckTransfer(c.UserContext(), req.Consumer, req.TransferProcessID)
		if err != nil {
			return writeProxyError(c, err)
		}
		return c.JSON(res)
	})

	r.Post("/check_data_pull", func(c *fiber.Ctx) error {
		var req checkTransferRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if !validObjectID(req.Consumer) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := svc.CheckDataPull(c.UserContext(), req.Consumer, req.TransferProcessID)
		if err != nil {
			return writeProxyError(c, err)
		}
		return c.JSON(res)
	})

	r.Post("", func(c *fiber.Ctx) error {
		var t model.Transfer
		if err := c.BodyParser(&t); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if !validObjectID(t.Consumer) || !validObjectID(t.Provider) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		id, err := svc.CreateRecord(c.UserContext(), &t)
		if err != nil {
			return writeInternalError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	})

	r.Get("", func(c *fiber.Ctx) error {
		records, err := svc.ListRecords(c.UserContext())
		if err != nil {
			return writeInternalError(c, err)
		}
		return c.JSON(records)
	})

	r.Post("/start_http_server", func(c *fiber.Ctx) error {
		if err := svc.StartHTTPLogger(c.UserContext()); err != nil {
			return writeInternalError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true})
	})

	r.Post("/stop_http_server", func(c *fiber.Ctx) error {
		if err := svc.StopHTTPLogger(c.UserContext()); err != nil {
			return writeInternalError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true})
	})

	r.Get("/proxy_http_logger", func(c *fiber.Ctx) error {
		body, contentType, err := svc.ProxyHTTPLogger(c.UserContext())
		if err != nil {
			return writeProxyError(c, err)
		}
		if contentType != "" {
			c.Set(fiber.HeaderContentType, contentType)
		}
		return c.Send(body)
	})

	r.Get("/proxy_pull", func(c *fiber.Ctx) error {
		uri := c.Query("uri")
		if uri == "" {
			return writeError(c, fiber.StatusBadRequest, "MISSING_URI", "uri query parameter is required")
		}

		body, contentType, err := svc.ProxyPull(c.UserContext(), uri, c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return writeProxyError(c, err)
		}
		if contentType != "" {
			c.Set(fiber.HeaderContentType, contentType)
		}
		return c.Send(body)
	})
}
