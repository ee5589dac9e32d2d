package controllers

import (
	"dressify/models"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every error returned by a handler or middleware in
// the response envelope. Server errors are logged with the request id and
// their cause is never sent to the client.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			if appErr.Kind == models.ServerError {
				logRequestError(logger, c, appErr.Message, err)
			}
			return c.Status(appErr.Kind.Status()).JSON(models.Failure(appErr.Message, appErr.Fields))
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(models.Failure(fe.Message, nil))
		}

		logRequestError(logger, c, "unhandled error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.Failure("Internal server error", nil))
	}
}

func logRequestError(logger *slog.Logger, c *fiber.Ctx, msg string, err error) {
	logger.Error(msg,
		"error", err,
		"method", c.Method(),
		"path", c.Path(),
		"request_id", c.Locals("requestid"),
	)
}

// NotFound answers routes that matched nothing.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(models.Failure("API endpoint not found", nil))
}
