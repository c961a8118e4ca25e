package handler

import (
	"github.com/gofiber/fiber/v2"

	"edcstudio/internal/model"
	"edcstudio/internal/service"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Surnames string `json:"surnames"`
}

type createUserRequest struct {
	registerRequest
	IsAdmin bool `json:"is_admin"`
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func registerAuthRoutes(r fiber.Router, svc service.UserService) {
	r.Post("/register", func(c *fiber.Ctx) error {
		var req registerRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.Username == "" || req.Email == "" || req.Password == "" {
			return writeError(c, fiber.StatusBadRequest, "MISSING_FIELDS", "username, email and password are required")
		}

		u := &model.User{
			Username: req.Username,
			Email:    req.Email,
			Name:     req.Name,
			Surnames: req.Surnames,
		}
		created, err := svc.Register(c.UserContext(), u, req.Password)
		if err != nil {
			return writeInternalError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	r.Post("/token", func(c *fiber.Ctx) error {
		var req tokenRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		token, err := svc.Login(c.UserContext(), req.Username, req.Password)
		if err != nil {
			return writeInternalError(c, err)
		}
		return c.JSON(fiber.Map{"access_token": token, "token_type": "bearer"})
	})
}

func registerUserRoutes(r fiber.Router, svc service.UserService) {
	r.Post("", func(c *fiber.Ctx) error {
		var req createUserRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.Username == "" || req.Email == "" || req.Password == "" {
			return writeError(c, fiber.StatusBadRequest, "MISSING_FIELDS", "username, email and password are required")
		}

		u := &model.User{
			Username: req.Username,
			Email:    req.Email,
			Name:     req.Name,
			Surnames: req.Surnames,
			IsAdmin:  req.IsAdmin,
		}
		created, err := svc.Create(c.UserContext(), u, req.Password)
		if err != nil {
			return writeInternalError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	r.Get("", func(c *fiber.Ctx) error {
		users, err := svc.List(c.UserContext())
		if err != nil {
			return writeInternalError(c, err)
		}
		return c.JSON(users)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validObjectID(id) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		u, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeInternalError(c, err)
		}
		return c.JSON(u)
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
}
