package middleware

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

// ErrorHandler is the fiber-level catch-all for errors that escape
// the handlers.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := utils.ErrCodeInternalError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
			switch code {
			case fiber.StatusBadRequest:
				errCode = utils.ErrCodeBadRequest
			case fiber.StatusNotFound:
				errCode = utils.ErrCodeNotFound
			case fiber.StatusConflict:
				errCode = utils.ErrCodeConflict
			}
		}

		logger.Error("Unhandled error", "path", c.Path(), "error", err)

		return utils.ErrorResponse(c, code, errCode, message, nil)
	}
}
