package websocket

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RegisterRoutes exposes the live order feed. Browsers cannot set an
// Authorization header on a websocket upgrade, so the JWT rides in the
// token query parameter instead.
func RegisterRoutes(r fiber.Router, hub *Hub) {
	feed := r.Group("/ws")

	feed.Use(func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}

		tokenStr := ctx.Query("token")
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}

		businessIdStr, _ := claims["business_id"].(string)
		businessId, err := uuid.Parse(businessIdStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}

		ctx.Locals("ws_business_id", businessId)
		return ctx.Next()
	})

	feed.Get("/orders", websocket.New(func(c *websocket.Conn) {
		businessId, _ := c.Locals("ws_business_id").(uuid.UUID)
		ServeWs(hub, c, businessId)
	}))
}
