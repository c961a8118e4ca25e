package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"edcstudio/internal/edc"
	"edcstudio/internal/http/middleware"
	"edcstudio/internal/launcher"
	"edcstudio/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError maps domain errors onto HTTP responses. Errors that match
// no known sentinel get fallbackStatus with a generic message.
func writeServiceError(c *fiber.Ctx, err error, fallbackStatus int) error {
	var statusErr *edc.StatusError

	switch {
	case errors.Is(err, service.ErrConnectorNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrFileNotFound),
		errors.Is(err, launcher.ErrRuntimeMissing):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		return writeError(c, fiber.StatusBadRequest, "EMAIL_TAKEN", err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid username or password")
	case errors.Is(err, service.ErrForbidden):
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "not allowed")
	case errors.Is(err, service.ErrFileTooLarge):
		return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
	case errors.Is(err, edc.ErrInvalidMode), errors.Is(err, edc.ErrNoPorts):
		return writeError(c, fiber.StatusBadRequest, "INVALID_CONNECTOR", err.Error())
	case errors.As(err, &statusErr):
		// Relay the EDC's own status and body so clients see what the
		// connector rejected.
		return writeError(c, statusErr.Code, "EDC_UPSTREAM", statusErr.Body)
	}

	if fallbackStatus == fiber.StatusBadGateway {
		return writeError(c, fiber.StatusBadGateway, "EDC_UNREACHABLE", "cannot reach the EDC connector")
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// writeInternalError is writeServiceError for operations with no EDC hop.
func writeInternalError(c *fiber.Ctx, err error) error {
	return writeServiceError(c, err, fiber.StatusInternalServerError)
}

// writeProxyError is writeServiceError for operations that call out to a
// connector: unmapped errors are treated as an unreachable upstream.
func writeProxyError(c *fiber.Ctx, err error) error {
	return writeServiceError(c, err, fiber.StatusBadGateway)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := ""
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
			message = e.Message
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			if message == "" {
				message = "unauthorized"
			}
			return writeError(c, status, "UNAUTHORIZED", message)
		case fiber.StatusForbidden:
			if message == "" {
				message = "forbidden"
			}
			return writeError(c, status, "FORBIDDEN", message)
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
