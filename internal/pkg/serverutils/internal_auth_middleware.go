package serverutils

import (
	"crypto/subtle"
	"os"

	"github.com/gofiber/fiber/v2"
)

// InternalAuthMiddleware protects the assistant boundary, which is called
// by the model-invocation layer, not by end users. When INTERNAL_API_TOKEN
// is unset (local development) the check is skipped.
func InternalAuthMiddleware(ctx *fiber.Ctx) error {
	expected := os.Getenv("INTERNAL_API_TOKEN")
	if expected == "" {
		return ctx.Next()
	}

	got := ctx.Get("X-Internal-Token")
	if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}
	return ctx.Next()
}
