package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtMiddleware rejects requests without a valid bearer token and stores the
// user id in locals.
func JwtMiddleware(ctx *fiber.Ctx) error {
	userId, ok := parseBearer(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Missing or invalid token"))
	}
	ctx.Locals("user_id", userId)
	return ctx.Next()
}

// OptionalJwtMiddleware lets guests through. A valid bearer token sets
// user_id in locals; anything else leaves the request anonymous. The chat
// widget works unauthenticated, only history persistence needs a user.
func OptionalJwtMiddleware(ctx *fiber.Ctx) error {
	if userId, ok := parseBearer(ctx); ok {
		ctx.Locals("user_id", userId)
	}
	return ctx.Next()
}

func parseBearer(ctx *fiber.Ctx) (string, bool) {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return "", false
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	userId, ok := claims["user_id"].(string)
	if !ok || userId == "" {
		return "", false
	}
	return userId, true
}
