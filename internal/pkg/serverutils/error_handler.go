package serverutils

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorMapping gives the HTTP status for errors matching Target via errors.Is.
type ErrorMapping struct {
	Target error
	Status int
}

// ErrorHandlerMiddleware renders errors returned by later handlers as an
// ErrorResponse. Unmapped errors become 500 with a generic message.
func ErrorHandlerMiddleware(mappings ...ErrorMapping) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status, message := classify(err, mappings)
		if status >= fiber.StatusInternalServerError {
			log.Printf("[ERROR] %s %s: %v", ctx.Method(), ctx.Path(), err)
		}
		return ctx.Status(status).JSON(ErrorResponse(status, message))
	}
}

func classify(err error, mappings []ErrorMapping) (int, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest, ve.Error()
	}

	for _, m := range mappings {
		if errors.Is(err, m.Target) {
			return m.Status, err.Error()
		}
	}
	return fiber.StatusInternalServerError, "Internal server error"
}
