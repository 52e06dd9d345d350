// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"errors"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// ParseUserToken verifies an HMAC-signed token and returns its user_id claim.
func ParseUserToken(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	raw, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userId, nil
}

// BearerToken reads the token from the Authorization header, falling back
// to the token query parameter used by browser websockets.
func BearerToken(ctx *fiber.Ctx) string {
	if h := ctx.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return h[len("Bearer "):]
	}
	return ctx.Query("token")
}

func JwtMiddleware(ctx *fiber.Ctx) error {
	tokenStr := BearerToken(ctx)
	if tokenStr == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
	}

	userId, err := ParseUserToken(tokenStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
	}

	ctx.Locals("user_id", userId.String())
	return ctx.Next()
}

// UserID returns the caller set by JwtMiddleware.
func UserID(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return userId, nil
}
