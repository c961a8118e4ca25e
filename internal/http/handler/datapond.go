package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"edcstudio/internal/http/middleware"
	"edcstudio/internal/service"
)

func registerDataPondRoutes(r fiber.Router, svc service.DataPondService) {
	r.Post("/upload", func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		if fh.Size > service.MaxPondFileSize {
			return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds the upload limit")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		stored, err := svc.Upload(c.UserContext(), user.Username, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeInternalError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"filename": stored.Filename,
			"size":     stored.Size,
		})
	})

	r.Get("/", func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)

		files, err := svc.List(c.UserContext(), user, c.Query("username"))
		if err != nil {
			return writeInternalError(c, err)
		}
		return c.JSON(files)
	})

	r.Get("/download/:filename", func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)

		rc, meta, err := svc.Download(c.UserContext(), user.Username, c.Params("filename"))
		if err != nil {
			return writeInternalError(c, err)
		}

		c.Set(fiber.HeaderContentType, "application/octet-stream")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", meta.Filename))
		return c.SendStream(rc, int(meta.Size))
	})

	r.Delete("/:filename", func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)

		if err := svc.Delete(c.UserContext(), user.Username, c.Params("filename")); err != nil {
			return writeInternalError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true})
	})
}
