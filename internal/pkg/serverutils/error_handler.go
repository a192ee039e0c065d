package serverutils

import (
	"errors"

	"ichibetsu-be/internal/constant"
	"ichibetsu-be/internal/pkg/apperror"
	"ichibetsu-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware catches errors escaping the handlers and renders the
// enveloped error shape. Business errors (apperror.AppError) keep their status
// and code; everything else becomes a generic 500 whose details are only
// exposed outside production.
func ErrorHandlerMiddleware(log logger.ILogger, isProd bool) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			errBody := fiber.Map{
				"code":    appErr.Code,
				"message": appErr.Message,
			}
			if appErr.Details != nil {
				errBody["details"] = appErr.Details
			}
			return ctx.Status(appErr.Status).JSON(fiber.Map{
				"success": false,
				"error":   errBody,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{
				"success": false,
				"error": fiber.Map{
					"code":    constant.CodeInternalServerError,
					"message": fiberErr.Message,
				},
			})
		}

		if log != nil {
			log.Error("http", "unhandled request error", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
		}

		errBody := fiber.Map{
			"code":    constant.CodeInternalServerError,
			"message": constant.ErrMsgServer,
		}
		if !isProd {
			errBody["details"] = err.Error()
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   errBody,
		})
	}
}
