package serverutils

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the body of every failed request.
func ErrorResponse(message string) fiber.Map {
	return fiber.Map{"error": message}
}
