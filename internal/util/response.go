package util

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse sends the flat {"error": message} body every route uses for
// failures. There are no structured error codes; the message plus the HTTP
// status is the whole contract.
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{"error": message})
}

// ServerError logs the underlying cause and answers with a generic message so
// data-store errors bubble out as opaque 500s.
func ServerError(c *fiber.Ctx, message string, err error) error {
	if err != nil {
		log.Printf("%s: %v", message, err)
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, message)
}
