package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/godcandidate/warehouse-management-app/internal/session"
)

type JWTConfig struct {
	Secret string
}

// RequireAuth validates the bearer token and injects the session into both
// fiber locals and the request context, so downstream layers receive the
// actor explicitly instead of reading ambient state.
func RequireAuth(cfg JWTConfig) fiber.Handler {
	secret := []byte(cfg.Secret)

	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid token signing method")
			}
			return secret, nil
		})
		if err != nil || token == nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token claims")
		}
		if typ, _ := claims["typ"].(string); typ != "" && typ != "user" {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token type")
		}

		sess := session.Session{}
		sess.UserID, _ = claims["sub"].(string)
		sess.Email, _ = claims["email"].(string)
		sess.Name, _ = claims["name"].(string)
		sess.Role, _ = claims["role"].(string)

		c.Locals("session", sess)
		c.SetUserContext(session.WithSession(c.UserContext(), sess))

		return c.Next()
	}
}
